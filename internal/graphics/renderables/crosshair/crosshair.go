package crosshair

import (
	"path/filepath"

	"floor-demo/internal/graphics/opengl"
	renderer "floor-demo/internal/graphics/renderer"
	"floor-demo/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Vertices are two line segments in normalized device coordinates
var Vertices = []float32{
	-0.02, 0.0,
	0.02, 0.0,
	0.0, -0.02,
	0.0, 0.02,
}

// Crosshair draws a reticle at the screen center
type Crosshair struct {
	shadersDir  string
	shader      *opengl.Shader
	vao         uint32
	vbo         uint32
	aspectRatio float32
}

// NewCrosshair creates a new crosshair renderable
func NewCrosshair(shadersDir string) *Crosshair {
	return &Crosshair{shadersDir: shadersDir, aspectRatio: 1}
}

// Init compiles the shader and uploads the reticle
func (c *Crosshair) Init() error {
	var err error
	c.shader, err = opengl.NewShader(
		filepath.Join(c.shadersDir, "crosshair.vert"),
		filepath.Join(c.shadersDir, "crosshair.frag"),
	)
	if err != nil {
		return err
	}

	gl.GenVertexArrays(1, &c.vao)
	gl.BindVertexArray(c.vao)

	gl.GenBuffers(1, &c.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, c.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(Vertices)*4, gl.Ptr(Vertices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 2*4, 0)
	gl.BindVertexArray(0)
	return nil
}

// Render draws the reticle over everything else
func (c *Crosshair) Render(ctx renderer.RenderContext) {
	defer profiling.Track("crosshair.Render")()

	gl.Disable(gl.DEPTH_TEST)
	c.shader.Use()
	c.shader.SetFloat("aspectRatio", c.aspectRatio)

	gl.BindVertexArray(c.vao)
	gl.DrawArrays(gl.LINES, 0, int32(len(Vertices)/2))
	gl.BindVertexArray(0)
	gl.Enable(gl.DEPTH_TEST)
}

// Dispose cleans up OpenGL resources
func (c *Crosshair) Dispose() {
	if c.vao != 0 {
		gl.DeleteVertexArrays(1, &c.vao)
		c.vao = 0
	}
	if c.vbo != 0 {
		gl.DeleteBuffers(1, &c.vbo)
		c.vbo = 0
	}
	if c.shader != nil {
		c.shader.Delete()
		c.shader = nil
	}
}

// SetViewport keeps the reticle square on non-square framebuffers
func (c *Crosshair) SetViewport(width, height int) {
	if height > 0 {
		c.aspectRatio = float32(width) / float32(height)
	}
}
