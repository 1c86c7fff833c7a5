package graphics

import (
	"floor-demo/internal/texture"

	"github.com/go-gl/mathgl/mgl32"
)

// Primitive selects how a vertex range is assembled
type Primitive int

const (
	Triangles Primitive = iota
	Lines
)

func (p Primitive) String() string {
	switch p {
	case Triangles:
		return "triangles"
	case Lines:
		return "lines"
	}
	return "unknown"
}

// Program is a linked shader program with named uniforms
type Program interface {
	Use()
	SetMatrix4(name string, value mgl32.Mat4)
	SetVector3(name string, value mgl32.Vec3)
	SetFloat(name string, value float32)
}

// Mesh is GPU geometry that issues its own draw calls with the currently
// bound program state
type Mesh interface {
	Draw(p Program)
	Release()
}

// Device is the slice of GL state the scene touches. Vertex arrays created
// through it always use the interleaved position/normal/uv layout of
// SceneVertices.
type Device interface {
	Clear(color mgl32.Vec4)
	Viewport(width, height int)

	BindVertexArray(vao uint32)
	BindTexture(tex uint32)
	DrawArrays(mode Primitive, first, count int32)

	CreateTexture(px *texture.Pixels) (uint32, error)
	DeleteTexture(tex uint32)

	CreateVertexArray(vertices []float32) (vao, vbo uint32)
	DeleteVertexArray(vao, vbo uint32)
}

// VertexRange is a slice of a shared vertex array
type VertexRange struct {
	VAO   uint32
	First int32
	Count int32
}
