package hud

import (
	"fmt"
	"path/filepath"
	"strings"

	"floor-demo/internal/graphics"
	"floor-demo/internal/graphics/opengl"
	renderer "floor-demo/internal/graphics/renderer"
	"floor-demo/internal/profiling"
	"floor-demo/internal/text"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	marginX = 10
	marginY = 20
	// Extra pixels between lines on top of the face's line height
	leading = 3

	// Characters the dynamic buffer holds before it is regrown
	initialChars = 256
)

var textColor = mgl32.Vec3{1, 1, 1}

// Options selects the overlay's shaders and font
type Options struct {
	ShadersDir string
	// Empty uses the built-in 7x13 bitmap face
	FontPath string
	FontSize float64
}

// HUD draws a debug overlay of frame rate, camera state and the slowest
// profiled sections in screen space
type HUD struct {
	device graphics.Device
	opts   Options
	fps    *profiling.FPSCounter
	status func() []string

	atlas    *text.Atlas
	shader   *opengl.Shader
	tex      uint32
	vao, vbo uint32
	capChars int

	projection mgl32.Mat4
	width      float32
	visible    bool
}

// NewHUD creates the overlay. fps is read, not ticked; the frame loop owns
// it. status, when set, contributes extra lines below the camera readout
// every frame.
func NewHUD(device graphics.Device, opts Options, fps *profiling.FPSCounter, status func() []string) *HUD {
	return &HUD{
		device:     device,
		opts:       opts,
		fps:        fps,
		status:     status,
		visible:    true,
		projection: mgl32.Ident4(),
	}
}

func (h *HUD) loadAtlas() (*text.Atlas, error) {
	if h.opts.FontPath == "" {
		return text.DefaultAtlas()
	}
	return text.LoadAtlas(h.opts.FontPath, h.opts.FontSize)
}

// Init bakes the glyph atlas and creates the text shader and buffer
func (h *HUD) Init() error {
	atlas, err := h.loadAtlas()
	if err != nil {
		return fmt.Errorf("bake font atlas: %w", err)
	}
	tex, err := h.device.CreateTexture(atlas.Pixels)
	if err != nil {
		return fmt.Errorf("upload font atlas: %w", err)
	}

	shader, err := opengl.NewShader(filepath.Join(h.opts.ShadersDir, "text.vert"), filepath.Join(h.opts.ShadersDir, "text.frag"))
	if err != nil {
		h.device.DeleteTexture(tex)
		return fmt.Errorf("load text shader: %w", err)
	}

	h.atlas = atlas
	h.tex = tex
	h.shader = shader
	h.initGL()
	return nil
}

func (h *HUD) initGL() {
	gl.GenVertexArrays(1, &h.vao)
	gl.GenBuffers(1, &h.vbo)
	gl.BindVertexArray(h.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, h.vbo)
	h.capChars = initialChars
	gl.BufferData(gl.ARRAY_BUFFER, h.capChars*6*text.FloatsPerVertex*4, nil, gl.DYNAMIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, text.FloatsPerVertex, gl.FLOAT, false, text.FloatsPerVertex*4, 0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

// Render draws the overlay lines on top of the 3D scene
func (h *HUD) Render(ctx renderer.RenderContext) {
	if !h.visible || h.shader == nil {
		return
	}
	defer profiling.Track("hud.Render")()

	vertices := h.layout(ctx)
	if len(vertices) == 0 {
		return
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	h.shader.Use()
	h.shader.SetMatrix4("projection", h.projection)
	h.shader.SetVector3("textColor", textColor)
	h.shader.SetInt("text", 0)

	h.device.BindTexture(h.tex)
	h.device.BindVertexArray(h.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, h.vbo)

	size := len(vertices) * 4
	if chars := len(vertices) / (6 * text.FloatsPerVertex); chars > h.capChars {
		h.capChars = chars
	}
	// Orphan the buffer so the driver does not wait on last frame's draw
	gl.BufferData(gl.ARRAY_BUFFER, h.capChars*6*text.FloatsPerVertex*4, nil, gl.DYNAMIC_DRAW)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, size, gl.Ptr(vertices))
	h.device.DrawArrays(graphics.Triangles, 0, int32(len(vertices)/text.FloatsPerVertex))

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	h.device.BindVertexArray(0)
	h.device.BindTexture(0)
	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
}

// layout places the readout lines at the top left and the FPS figure
// right-aligned at the top right
func (h *HUD) layout(ctx renderer.RenderContext) []float32 {
	step := float32(h.atlas.LineHeight + leading)
	vertices := h.atlas.Layout(h.lines(ctx), marginX, marginY, step, 1)
	if h.fps != nil {
		fps := fmt.Sprintf("FPS: %d", h.fps.FPS())
		w, _ := h.atlas.Measure(fps, 1)
		vertices = append(vertices, h.atlas.Layout([]string{fps}, h.width-marginX-w, marginY, step, 1)...)
	}
	return vertices
}

func (h *HUD) lines(ctx renderer.RenderContext) []string {
	cam := ctx.Camera
	lines := []string{
		fmt.Sprintf("Pos: %.2f, %.2f, %.2f", cam.Position[0], cam.Position[1], cam.Position[2]),
		fmt.Sprintf("Yaw: %.1f Pitch: %.1f FOV: %.0f", cam.Yaw, cam.Pitch, cam.Zoom),
	}
	if h.status != nil {
		lines = append(lines, h.status()...)
	}
	if top := profiling.TopN(4); top != "" {
		lines = append(lines, strings.Split(top, ", ")...)
	}
	return lines
}

// Dispose frees the atlas texture, the buffer and the text shader
func (h *HUD) Dispose() {
	if h.tex != 0 {
		h.device.DeleteTexture(h.tex)
		h.tex = 0
	}
	if h.vao != 0 {
		h.device.DeleteVertexArray(h.vao, h.vbo)
		h.vao, h.vbo = 0, 0
	}
	if h.shader != nil {
		h.shader.Delete()
		h.shader = nil
	}
}

// SetViewport maps pixel coordinates with a top-left origin onto the framebuffer
func (h *HUD) SetViewport(width, height int) {
	h.width = float32(width)
	h.projection = mgl32.Ortho(0, float32(width), float32(height), 0, -1, 1)
}

// Toggle shows or hides the overlay and reports the new state
func (h *HUD) Toggle() bool {
	h.visible = !h.visible
	return h.visible
}
