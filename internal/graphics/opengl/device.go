package opengl

import (
	"fmt"

	"floor-demo/internal/graphics"
	"floor-demo/internal/texture"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	_ graphics.Device  = (*Device)(nil)
	_ graphics.Program = (*Shader)(nil)
)

// Device issues graphics.Device operations against the current GL context
type Device struct{}

// NewDevice loads the GL bindings and enables depth testing.
// The caller's context must be current on this thread.
func NewDevice() (*Device, error) {
	if err := gl.Init(); err != nil {
		return nil, err
	}
	gl.Enable(gl.DEPTH_TEST)
	return &Device{}, nil
}

// Version reports the driver's GL version string
func (d *Device) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

func (d *Device) Clear(color mgl32.Vec4) {
	gl.ClearColor(color[0], color[1], color[2], color[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (d *Device) Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (d *Device) BindVertexArray(vao uint32) {
	gl.BindVertexArray(vao)
}

// BindTexture binds tex to texture unit 0
func (d *Device) BindTexture(tex uint32) {
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tex)
}

func (d *Device) DrawArrays(mode graphics.Primitive, first, count int32) {
	switch mode {
	case graphics.Lines:
		gl.DrawArrays(gl.LINES, first, count)
	default:
		gl.DrawArrays(gl.TRIANGLES, first, count)
	}
}

func glFormat(f texture.Format) uint32 {
	switch f {
	case texture.FormatRed:
		return gl.RED
	case texture.FormatRGB:
		return gl.RGB
	default:
		return gl.RGBA
	}
}

// CreateTexture uploads pixels as a mipmapped, repeating 2D texture
func (d *Device) CreateTexture(px *texture.Pixels) (uint32, error) {
	format, err := px.Format()
	if err != nil {
		return 0, err
	}
	if want := px.Width * px.Height * px.Channels; len(px.Data) < want || want == 0 {
		return 0, fmt.Errorf("pixel data has %d bytes, need %d", len(px.Data), want)
	}

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)

	// RGB and RED rows are not 4-byte aligned in general
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		int32(glFormat(format)),
		int32(px.Width),
		int32(px.Height),
		0,
		glFormat(format),
		gl.UNSIGNED_BYTE,
		gl.Ptr(px.Data),
	)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex, nil
}

func (d *Device) DeleteTexture(tex uint32) {
	gl.DeleteTextures(1, &tex)
}

// CreateVertexArray uploads interleaved position/normal/uv vertices
func (d *Device) CreateVertexArray(vertices []float32) (uint32, uint32) {
	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	if len(vertices) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)
	}

	stride := int32(graphics.VertexStride * 4)
	// Position
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	// Normal
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	// Texture coords
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, 6*4)

	gl.BindVertexArray(0)
	return vao, vbo
}

func (d *Device) DeleteVertexArray(vao, vbo uint32) {
	if vao != 0 {
		gl.DeleteVertexArrays(1, &vao)
	}
	if vbo != 0 {
		gl.DeleteBuffers(1, &vbo)
	}
}
