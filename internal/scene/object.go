package scene

import (
	"fmt"

	"floor-demo/internal/graphics"
	"floor-demo/internal/texture"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
)

// CollisionReference is the fixed point the scaled collision anchor is
// measured from when deriving an object's collision radius
var CollisionReference = mgl32.Vec3{0, 0.5, 0}

// Default collision anchors for the two construction paths
var (
	RangeCollisionAnchor = mgl32.Vec3{0, 0, 0}
	MeshCollisionAnchor  = mgl32.Vec3{1.5, 0, 0}
)

// MeshLoader produces a freshly owned mesh for a model path
type MeshLoader interface {
	LoadMesh(path string) (graphics.Mesh, error)
}

// Resources are the collaborators objects draw and load through
type Resources struct {
	Device graphics.Device
	Meshes MeshLoader
	Log    zerolog.Logger
}

// geometry is either a range of the shared vertex array or an owned mesh
type geometry interface {
	vertexArray() uint32
	draw(dev graphics.Device, p graphics.Program, mode graphics.Primitive)
	release()
}

type rangeGeometry struct {
	graphics.VertexRange
}

func (g rangeGeometry) vertexArray() uint32 { return g.VAO }

func (g rangeGeometry) draw(dev graphics.Device, p graphics.Program, mode graphics.Primitive) {
	dev.DrawArrays(mode, g.First, g.Count)
}

func (g rangeGeometry) release() {}

// meshGeometry uniquely owns its mesh; release drops it exactly once
type meshGeometry struct {
	mesh graphics.Mesh
}

// Meshes bind their own arrays
func (g *meshGeometry) vertexArray() uint32 { return 0 }

func (g *meshGeometry) draw(dev graphics.Device, p graphics.Program, mode graphics.Primitive) {
	if g.mesh != nil {
		g.mesh.Draw(p)
	}
}

func (g *meshGeometry) release() {
	if g.mesh != nil {
		g.mesh.Release()
		g.mesh = nil
	}
}

// Object is a drawable with its own transform, optional texture and either
// shared-range or mesh geometry. The program and the shared vertex array
// are borrowed; mesh and texture are owned.
type Object struct {
	res     *Resources
	program graphics.Program
	geom    geometry

	// Zero means untextured
	texture uint32

	position      mgl32.Vec3
	scale         mgl32.Vec3
	color         mgl32.Vec3
	rotationAngle float32
	rotationAxis  mgl32.Vec3
	anchor        mgl32.Vec3

	model mgl32.Mat4
}

func newObject(res *Resources, p graphics.Program, g geometry, anchor mgl32.Vec3) *Object {
	return &Object{
		res:          res,
		program:      p,
		geom:         g,
		scale:        mgl32.Vec3{1, 1, 1},
		rotationAxis: mgl32.Vec3{1, 1, 1},
		anchor:       anchor,
		model:        mgl32.Ident4(),
	}
}

// NewRangeObject draws a slice of a shared vertex array
func NewRangeObject(res *Resources, p graphics.Program, r graphics.VertexRange) *Object {
	return newObject(res, p, rangeGeometry{r}, RangeCollisionAnchor)
}

// NewMeshObject loads a model and draws it instead of a vertex range
func NewMeshObject(res *Resources, p graphics.Program, modelPath string) (*Object, error) {
	o := newObject(res, p, rangeGeometry{}, MeshCollisionAnchor)
	if err := o.LoadModel(modelPath); err != nil {
		return nil, err
	}
	return o, nil
}

func (o *Object) SetPosition(position mgl32.Vec3) { o.position = position }

func (o *Object) SetScale(scale mgl32.Vec3) { o.scale = scale }

func (o *Object) SetColor(color mgl32.Vec3) { o.color = color }

func (o *Object) SetCollisionAnchor(anchor mgl32.Vec3) { o.anchor = anchor }

// SetRotation sets the rotation in degrees around axis
func (o *Object) SetRotation(angle float32, axis mgl32.Vec3) {
	o.rotationAngle = angle
	o.rotationAxis = axis
}

func (o *Object) Position() mgl32.Vec3 { return o.position }

func (o *Object) Scale() mgl32.Vec3 { return o.scale }

func (o *Object) CollisionAnchor() mgl32.Vec3 { return o.anchor }

// ModelMatrix returns the transform composed by the last Draw
func (o *Object) ModelMatrix() mgl32.Mat4 { return o.model }

// Textured reports whether a texture is bound on draw
func (o *Object) Textured() bool { return o.texture != 0 }

// HasMesh reports whether the object draws a loaded mesh
func (o *Object) HasMesh() bool {
	_, ok := o.geom.(*meshGeometry)
	return ok
}

// LoadTexture replaces the object's texture with the image at path. On
// failure the problem is logged and the object is left untextured; the
// error is returned for callers that care but is never fatal.
func (o *Object) LoadTexture(path string) error {
	o.releaseTexture()

	px, err := texture.Decode(path)
	if err == nil {
		o.texture, err = o.res.Device.CreateTexture(px)
	}
	if err != nil {
		o.texture = 0
		o.res.Log.Warn().Err(err).Str("path", path).Msg("Texture failed to load")
		return err
	}
	o.res.Log.Debug().Str("path", path).Int("width", px.Width).Int("height", px.Height).
		Int("channels", px.Channels).Msg("Texture loaded")
	return nil
}

// LoadModel switches the object to draw the model at path. A previously
// loaded mesh is released once the new one is ready; if loading fails the
// current geometry is kept.
func (o *Object) LoadModel(path string) error {
	if o.res.Meshes == nil {
		return fmt.Errorf("load model %s: no mesh loader", path)
	}
	m, err := o.res.Meshes.LoadMesh(path)
	if err != nil {
		return fmt.Errorf("load model %s: %w", path, err)
	}
	o.geom.release()
	o.geom = &meshGeometry{mesh: m}
	return nil
}

// Transform composes translate * scale * rotate. The rotation axis is
// normalized; a zero axis means no rotation.
func (o *Object) Transform() mgl32.Mat4 {
	m := mgl32.Translate3D(o.position.X(), o.position.Y(), o.position.Z())
	m = m.Mul4(mgl32.Scale3D(o.scale.X(), o.scale.Y(), o.scale.Z()))
	if o.rotationAxis.Len() > 0 {
		m = m.Mul4(mgl32.HomogRotate3D(mgl32.DegToRad(o.rotationAngle), o.rotationAxis.Normalize()))
	}
	return m
}

// Draw uploads the transform and color, binds the object's vertex array and
// texture and issues the draw. Range draws reset both bindings afterwards;
// mesh draws leave whatever the mesh bound.
func (o *Object) Draw(mode graphics.Primitive) {
	dev := o.res.Device

	o.program.Use()
	o.model = o.Transform()
	o.program.SetMatrix4("model", o.model)
	o.program.SetVector3("color", o.color)

	dev.BindVertexArray(o.geom.vertexArray())
	if o.texture != 0 {
		dev.BindTexture(o.texture)
	}
	o.geom.draw(dev, o.program, mode)
	if o.HasMesh() {
		return
	}

	dev.BindVertexArray(0)
	dev.BindTexture(0)
}

// CollisionDistance is the radius of the sphere around Position that counts
// as solid
func (o *Object) CollisionDistance() float32 {
	scaled := mgl32.Vec3{
		o.scale.X() * o.anchor.X(),
		o.scale.Y() * o.anchor.Y(),
		o.scale.Z() * o.anchor.Z(),
	}
	return CollisionReference.Sub(scaled).Len()
}

// InCollision reports whether pos lies within CollisionDistance of the object
func (o *Object) InCollision(pos mgl32.Vec3) bool {
	distance := o.position.Sub(pos).Len()
	return distance <= o.CollisionDistance()
}

// Release frees the owned mesh and texture. Safe to call more than once.
func (o *Object) Release() {
	o.geom.release()
	o.releaseTexture()
}

func (o *Object) releaseTexture() {
	if o.texture != 0 {
		o.res.Device.DeleteTexture(o.texture)
		o.texture = 0
	}
}
