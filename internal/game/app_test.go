package game

import (
	"testing"

	"floor-demo/internal/camera"
	"floor-demo/internal/graphics"
	"floor-demo/internal/graphics/graphicstest"
	"floor-demo/internal/graphics/renderables/hud"
	"floor-demo/internal/graphics/renderables/objects"
	"floor-demo/internal/input"
	"floor-demo/internal/physics"
	"floor-demo/internal/scene"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestApp builds an App without a window: one pyramid 0.8 ahead of a
// camera at the origin
func newTestApp(t *testing.T) *App {
	t.Helper()
	dev := graphicstest.NewDevice()
	res := &scene.Resources{Device: dev, Log: zerolog.Nop()}
	shape, err := graphics.ShapeRange(1, "pyramid")
	require.NoError(t, err)

	pyramid := scene.NewRangeObject(res, graphicstest.NewProgram("object"), shape)
	pyramid.SetPosition(mgl32.Vec3{0, 0, -0.8})
	sc := &scene.Scene{Registry: scene.NewRegistry(pyramid)}

	cam := camera.New(mgl32.Vec3{})
	cam.MovementSpeed = 1

	return &App{
		inputManager: input.NewInputManager(),
		log:          zerolog.Nop(),
		camera:       cam,
		gate:         physics.Gate{World: sc},
		objects:      objects.NewObjects(sc),
		hud:          hud.NewHUD(dev, hud.Options{}, nil, nil),
	}
}

func TestUpdateGatesMovementPerDirection(t *testing.T) {
	a := newTestApp(t)

	a.inputManager.HandleKeyEvent(glfw.KeyW, glfw.Press)
	quit := a.update(a.held, 0.5)
	assert.False(t, quit)
	assert.Equal(t, mgl32.Vec3{}, a.camera.Position, "forward runs into the pyramid")

	a.inputManager.HandleKeyEvent(glfw.KeyW, glfw.Release)
	a.inputManager.HandleKeyEvent(glfw.KeyS, glfw.Press)
	a.update(a.held, 0.5)
	assert.InDelta(t, 0.5, a.camera.Position.Z(), 1e-5)
}

func TestUpdateUsesGivenHeldState(t *testing.T) {
	a := newTestApp(t)

	right := func(d camera.Direction) bool { return d == camera.Right }
	a.update(right, 0.25)
	assert.InDelta(t, 0.25, a.camera.Position.X(), 1e-5)
}

func TestUpdateToggles(t *testing.T) {
	a := newTestApp(t)

	a.inputManager.HandleKeyEvent(glfw.KeyF, glfw.Press)
	a.inputManager.HandleKeyEvent(glfw.KeyH, glfw.Press)
	a.update(a.held, 0)
	assert.True(t, a.objects.Wireframe())
	assert.Equal(t, []string{"Objects: wireframe"}, a.status())

	// held keys toggle once, not every frame
	a.inputManager.PostUpdate()
	a.update(a.held, 0)
	assert.True(t, a.objects.Wireframe())
	assert.True(t, a.hud.Toggle(), "HUD was hidden by the first update")
}

func TestUpdateReportsQuit(t *testing.T) {
	a := newTestApp(t)
	a.inputManager.HandleKeyEvent(glfw.KeyEscape, glfw.Press)
	assert.True(t, a.update(a.held, 0.016))
}
