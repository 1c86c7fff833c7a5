package game

import (
	"fmt"
	"path/filepath"
	"time"

	"floor-demo/internal/camera"
	"floor-demo/internal/config"
	"floor-demo/internal/graphics/opengl"
	"floor-demo/internal/graphics/renderables/crosshair"
	"floor-demo/internal/graphics/renderables/hud"
	"floor-demo/internal/graphics/renderables/objects"
	"floor-demo/internal/graphics/renderer"
	"floor-demo/internal/input"
	"floor-demo/internal/logging"
	"floor-demo/internal/mesh"
	"floor-demo/internal/physics"
	"floor-demo/internal/profiling"
	"floor-demo/internal/scene"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/rs/zerolog"
)

const slowFrame = 16 * time.Millisecond

// movementActions maps camera directions to the actions that drive them
var movementActions = [...]input.Action{
	camera.Forward:  input.ActionMoveForward,
	camera.Backward: input.ActionMoveBackward,
	camera.Left:     input.ActionMoveLeft,
	camera.Right:    input.ActionMoveRight,
}

// App holds everything the frame loop touches. It is created after the
// window and its GL context and must be used from the main thread only.
type App struct {
	window       *glfw.Window
	inputManager *input.InputManager
	log          zerolog.Logger
	slowLog      zerolog.Logger

	camera *camera.Camera
	cursor camera.CursorTracker
	gate   physics.Gate

	renderer *renderer.Renderer
	objects  *objects.Objects
	hud      *hud.HUD
	shaders  []*opengl.Shader

	fpsLimiter *FPSLimiter
	lastTime   time.Time
	fps        profiling.FPSCounter
}

// NewApp compiles the shaders, builds the scene described by desc and wires
// the window callbacks
func NewApp(window *glfw.Window, cfg *config.Config, desc *scene.Description, log zerolog.Logger) (*App, error) {
	device, err := opengl.NewDevice()
	if err != nil {
		return nil, fmt.Errorf("init gl: %w", err)
	}
	log.Info().Str("version", device.Version()).Msg("OpenGL initialized")

	a := &App{
		window:       window,
		inputManager: input.NewInputManager(),
		log:          log,
		slowLog:      logging.Throttled(log, 5, 10*time.Second),
		fpsLimiter:   NewFPSLimiter(cfg.Render.FPSLimit),
	}

	objectShader, err := a.loadShader(cfg.Assets.Shaders, "object")
	if err != nil {
		return nil, err
	}
	lampShader, err := a.loadShader(cfg.Assets.Shaders, "lamp")
	if err != nil {
		a.deleteShaders()
		return nil, err
	}

	res := &scene.Resources{
		Device: device,
		Meshes: mesh.NewLoader(device, log),
		Log:    log,
	}
	sc, err := scene.Build(desc, res, scene.Programs{Object: objectShader, Lamp: lampShader}, cfg.Assets.Dir)
	if err != nil {
		a.deleteShaders()
		return nil, fmt.Errorf("build scene: %w", err)
	}

	a.objects = objects.NewObjects(sc)
	a.hud = hud.NewHUD(device, hud.Options{
		ShadersDir: cfg.Assets.Shaders,
		FontPath:   cfg.Assets.Font,
		FontSize:   cfg.Assets.FontSize,
	}, &a.fps, a.status)
	fbWidth, fbHeight := window.GetFramebufferSize()
	a.renderer, err = renderer.NewRenderer(device, renderer.Options{
		Width:      fbWidth,
		Height:     fbHeight,
		NearPlane:  cfg.Render.NearPlane,
		FarPlane:   cfg.Render.FarPlane,
		ClearColor: cfg.Render.Clear(),
	}, a.objects, crosshair.NewCrosshair(cfg.Assets.Shaders), a.hud)
	if err != nil {
		sc.Release()
		a.deleteShaders()
		return nil, err
	}

	a.camera = camera.New(cfg.Camera.Start())
	a.camera.MovementSpeed = cfg.Camera.Speed
	a.camera.MouseSensitivity = cfg.Camera.Sensitivity
	a.camera.Zoom = cfg.Camera.Zoom
	a.gate = physics.Gate{World: sc}

	SetupInputHandlers(a)

	a.lastTime = time.Now()
	return a, nil
}

func (a *App) loadShader(dir, name string) (*opengl.Shader, error) {
	s, err := opengl.NewShader(filepath.Join(dir, name+".vert"), filepath.Join(dir, name+".frag"))
	if err != nil {
		return nil, fmt.Errorf("load %s shader: %w", name, err)
	}
	a.shaders = append(a.shaders, s)
	return s, nil
}

func (a *App) deleteShaders() {
	for _, s := range a.shaders {
		s.Delete()
	}
	a.shaders = nil
}

// Run loops until the window is asked to close
func (a *App) Run() {
	for !a.window.ShouldClose() {
		a.tick()
	}
}

func (a *App) tick() {
	profiling.ResetFrame()
	now := time.Now()
	dt := now.Sub(a.lastTime).Seconds()
	a.lastTime = now

	func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()

	if a.update(a.held, float32(dt)) {
		a.window.SetShouldClose(true)
	}

	func() { defer profiling.Track("renderer.Render")(); a.renderer.Render(a.camera, dt) }()
	func() { defer profiling.Track("glfw.SwapBuffers")(); a.window.SwapBuffers() }()

	if a.fps.Tick(dt) {
		a.log.Debug().Int("fps", a.fps.FPS()).Msg("FPS")
	}

	if d := time.Since(now); d > slowFrame {
		a.slowLog.Warn().Dur("frame", d).Str("top", profiling.TopN(5)).Msg("Slow frame")
	}

	a.inputManager.PostUpdate()
	a.fpsLimiter.Wait()
}

// update applies one frame of input: the toggles, then movement gated
// against the scene. It reports whether quitting was requested.
func (a *App) update(held func(camera.Direction) bool, dt float32) bool {
	if a.inputManager.JustPressed(input.ActionToggleWireframe) {
		on := a.objects.ToggleWireframe()
		a.log.Debug().Bool("wireframe", on).Msg("Wireframe toggled")
	}
	if a.inputManager.JustPressed(input.ActionToggleHUD) {
		on := a.hud.Toggle()
		a.log.Debug().Bool("hud", on).Msg("HUD toggled")
	}

	func() {
		defer profiling.Track("game.movement")()
		blocked := a.gate.Step(a.camera, held, dt)
		for _, d := range blocked {
			a.log.Trace().Stringer("direction", d).Msg("Movement blocked")
		}
	}()

	return a.inputManager.JustPressed(input.ActionQuit)
}

func (a *App) status() []string {
	mode := "filled"
	if a.objects.Wireframe() {
		mode = "wireframe"
	}
	return []string{"Objects: " + mode}
}

func (a *App) held(d camera.Direction) bool {
	return a.inputManager.IsActive(movementActions[d])
}

// Close releases the scene and the shaders. The window is owned by the caller.
func (a *App) Close() {
	if a.renderer != nil {
		a.renderer.Dispose()
		a.renderer = nil
	}
	a.deleteShaders()
}
