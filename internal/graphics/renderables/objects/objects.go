package objects

import (
	"floor-demo/internal/graphics"
	renderer "floor-demo/internal/graphics/renderer"
	"floor-demo/internal/profiling"
	"floor-demo/internal/scene"
)

// Objects renders the lit scene: floor, registered objects and the lamp
// proxy. It owns the scene and releases it on Dispose.
type Objects struct {
	scene     *scene.Scene
	wireframe bool
}

// NewObjects creates a new objects renderable
func NewObjects(s *scene.Scene) *Objects {
	return &Objects{scene: s}
}

// Init uploads the constant light terms
func (o *Objects) Init() error {
	o.scene.Light.Apply(o.scene.Programs.Object)
	return nil
}

// Render pushes the per-frame uniforms and draws the scene
func (o *Objects) Render(ctx renderer.RenderContext) {
	defer profiling.Track("objects.Render")()

	object := o.scene.Programs.Object
	object.Use()
	object.SetVector3("light.position", o.scene.LightLamp.Position())
	object.SetVector3("viewPos", ctx.Camera.Position)
	object.SetMatrix4("view", ctx.View)
	object.SetMatrix4("projection", ctx.Proj)

	lamp := o.scene.Programs.Lamp
	lamp.Use()
	lamp.SetMatrix4("projection", ctx.Proj)
	lamp.SetMatrix4("view", ctx.View)

	o.scene.Floor.Draw(graphics.Triangles)

	mode := graphics.Triangles
	if o.wireframe {
		mode = graphics.Lines
	}
	o.scene.Registry.Draw(mode)

	o.scene.LightLamp.Draw(graphics.Triangles)
}

// Dispose releases the scene's meshes, textures and vertex array
func (o *Objects) Dispose() {
	o.scene.Release()
}

func (o *Objects) SetViewport(width, height int) {}

// ToggleWireframe switches registered objects between filled and line drawing
// and reports the new state
func (o *Objects) ToggleWireframe() bool {
	o.wireframe = !o.wireframe
	return o.wireframe
}

func (o *Objects) Wireframe() bool { return o.wireframe }
