package scene

import (
	"fmt"
	"path/filepath"

	"floor-demo/internal/graphics"

	"github.com/go-gl/mathgl/mgl32"
)

// Programs are the two shaders a scene draws with
type Programs struct {
	// Lit, textured objects
	Object graphics.Program
	// Unlit light proxy
	Lamp graphics.Program
}

// Light holds the point light terms pushed to the object shader
type Light struct {
	Ambient   mgl32.Vec3
	Diffuse   mgl32.Vec3
	Specular  mgl32.Vec3
	Constant  float32
	Linear    float32
	Quadratic float32
}

// Apply uploads the light terms. The position is per frame and set by the
// renderer.
func (l Light) Apply(p graphics.Program) {
	p.Use()
	p.SetVector3("light.ambient", l.Ambient)
	p.SetVector3("light.diffuse", l.Diffuse)
	p.SetVector3("light.specular", l.Specular)
	p.SetFloat("light.constant", l.Constant)
	p.SetFloat("light.linear", l.Linear)
	p.SetFloat("light.quadratic", l.Quadratic)
}

// Scene owns everything built from a Description: the shared vertex array,
// the floor, the light proxy and the registered objects.
type Scene struct {
	Floor     *Object
	LightLamp *Object
	Light     Light
	Registry  *Registry
	Programs  Programs

	res      *Resources
	vao, vbo uint32
	owned    []*Object
}

// Build uploads the shared vertices and creates every described object.
// Relative asset paths are resolved against assetsDir. Missing textures only
// degrade the scene; a model that cannot be loaded fails the build.
func Build(desc *Description, res *Resources, progs Programs, assetsDir string) (*Scene, error) {
	s := &Scene{
		Registry: NewRegistry(),
		Programs: progs,
		res:      res,
		Light: Light{
			Ambient:   desc.Light.Ambient.Vec(),
			Diffuse:   desc.Light.Diffuse.Vec(),
			Specular:  desc.Light.Specular.Vec(),
			Constant:  desc.Light.Constant,
			Linear:    desc.Light.Linear,
			Quadratic: desc.Light.Quadratic,
		},
	}
	s.vao, s.vbo = res.Device.CreateVertexArray(graphics.SceneVertices)

	var err error
	if s.Floor, err = s.object(desc.Floor, progs.Object, assetsDir); err != nil {
		s.Release()
		return nil, fmt.Errorf("floor: %w", err)
	}
	if s.LightLamp, err = s.object(desc.Light.ObjectDescription, progs.Lamp, assetsDir); err != nil {
		s.Release()
		return nil, fmt.Errorf("light: %w", err)
	}
	for _, d := range desc.Objects {
		o, err := s.object(d, progs.Object, assetsDir)
		if err != nil {
			s.Release()
			return nil, fmt.Errorf("%s: %w", d.Name, err)
		}
		s.Registry.Add(o)
	}

	res.Log.Info().Int("objects", s.Registry.Len()).Msg("Scene built")
	return s, nil
}

func (s *Scene) object(d ObjectDescription, p graphics.Program, assetsDir string) (*Object, error) {
	var o *Object
	if d.Model != "" {
		var err error
		if o, err = NewMeshObject(s.res, p, resolve(assetsDir, d.Model)); err != nil {
			return nil, err
		}
	} else {
		r, err := graphics.ShapeRange(s.vao, d.Geometry)
		if err != nil {
			return nil, err
		}
		o = NewRangeObject(s.res, p, r)
	}
	s.owned = append(s.owned, o)

	o.SetPosition(d.Position.Vec())
	o.SetColor(d.Color.Vec())
	if d.Scale != nil {
		o.SetScale(d.Scale.Vec())
	}
	if d.Rotation != nil {
		o.SetRotation(d.Rotation.Angle, d.Rotation.Axis.Vec())
	}
	if d.Collision != nil {
		o.SetCollisionAnchor(d.Collision.Vec())
	}
	if d.Texture != "" {
		// Failure is logged and leaves the object untextured
		_ = o.LoadTexture(resolve(assetsDir, d.Texture))
	}
	return o, nil
}

// Collides reports whether pos is inside any registered object
func (s *Scene) Collides(pos mgl32.Vec3) bool {
	return s.Registry.Collides(pos)
}

// Release frees every owned object and the shared vertex array.
func (s *Scene) Release() {
	for _, o := range s.owned {
		o.Release()
	}
	s.owned = nil
	if s.vao != 0 {
		s.res.Device.DeleteVertexArray(s.vao, s.vbo)
		s.vao, s.vbo = 0, 0
	}
}

func resolve(dir, path string) string {
	if filepath.IsAbs(path) || dir == "" {
		return path
	}
	return filepath.Join(dir, path)
}
