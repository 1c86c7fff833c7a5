package graphics

import "fmt"

// Floats per vertex in SceneVertices: position(3) + normal(3) + uv(2)
const VertexStride = 8

// SceneVertices holds every procedural shape in one buffer
var SceneVertices = []float32{
	// Floor
	-0.5, 0.0, 0.0, 0.0, 1.0, 0.0, 0.0, 0.0,
	-0.5, 0.0, -0.5, 0.0, 1.0, 0.0, 0.0, 20.0,
	0.5, 0.0, 0.0, 0.0, 1.0, 0.0, 20.0, 0.0,

	0.5, 0.0, 0.0, 0.0, 1.0, 0.0, 0.0, 20.0,
	0.5, 0.0, -0.5, 0.0, 1.0, 0.0, 20.0, 20.0,
	-0.5, 0.0, -0.5, 0.0, 1.0, 0.0, 20.0, 0.0,

	// Pyramid
	-0.5, 0.0, 0.5, 0.0, 1.0, 0.0, 0.0, 0.0,
	0.0, 0.0, -0.75, 0.0, 1.0, 0.0, 1.0, 0.0,
	0.5, 0.0, 0.5, 0.0, 1.0, 0.0, 0.5, 1.0,

	-0.5, 0.0, 0.5, 0.0, 0.5, 0.5, 0.0, 0.0,
	0.0, 0.5, 0.0, 0.0, 0.5, 0.5, 1.0, 0.0,
	0.5, 0.0, 0.5, 0.0, 0.5, 0.5, 0.5, 1.0,

	-0.5, 0.0, 0.5, -0.5, 0.25, -0.25, 0.0, 0.0,
	0.0, 0.0, -0.75, -0.5, 0.25, -0.25, 1.0, 0.0,
	0.0, 0.5, 0.0, -0.5, 0.25, -0.25, 0.5, 1.0,

	0.5, 0.0, 0.5, 0.5, 0.25, -0.25, 0.0, 0.0,
	0.0, 0.0, -0.75, 0.5, 0.25, -0.25, 1.0, 0.0,
	0.0, 0.5, 0.0, 0.5, 0.25, -0.25, 0.5, 1.0,

	// Cube
	-0.5, -0.5, -0.5, 0.0, 0.0, -1.0, 0.0, 0.0,
	0.5, -0.5, -0.5, 0.0, 0.0, -1.0, 1.0, 0.0,
	0.5, 0.5, -0.5, 0.0, 0.0, -1.0, 1.0, 1.0,
	0.5, 0.5, -0.5, 0.0, 0.0, -1.0, 1.0, 1.0,
	-0.5, 0.5, -0.5, 0.0, 0.0, -1.0, 0.0, 1.0,
	-0.5, -0.5, -0.5, 0.0, 0.0, -1.0, 0.0, 0.0,

	-0.5, -0.5, 0.5, 0.0, 0.0, 1.0, 0.0, 0.0,
	0.5, -0.5, 0.5, 0.0, 0.0, 1.0, 1.0, 0.0,
	0.5, 0.5, 0.5, 0.0, 0.0, 1.0, 1.0, 1.0,
	0.5, 0.5, 0.5, 0.0, 0.0, 1.0, 1.0, 1.0,
	-0.5, 0.5, 0.5, 0.0, 0.0, 1.0, 0.0, 1.0,
	-0.5, -0.5, 0.5, 0.0, 0.0, 1.0, 0.0, 0.0,

	-0.5, 0.5, 0.5, -1.0, 0.0, 0.0, 1.0, 0.0,
	-0.5, 0.5, -0.5, -1.0, 0.0, 0.0, 1.0, 1.0,
	-0.5, -0.5, -0.5, -1.0, 0.0, 0.0, 0.0, 1.0,
	-0.5, -0.5, -0.5, -1.0, 0.0, 0.0, 0.0, 1.0,
	-0.5, -0.5, 0.5, -1.0, 0.0, 0.0, 0.0, 0.0,
	-0.5, 0.5, 0.5, -1.0, 0.0, 0.0, 1.0, 0.0,

	0.5, 0.5, 0.5, 1.0, 0.0, 0.0, 1.0, 0.0,
	0.5, 0.5, -0.5, 1.0, 0.0, 0.0, 1.0, 1.0,
	0.5, -0.5, -0.5, 1.0, 0.0, 0.0, 0.0, 1.0,
	0.5, -0.5, -0.5, 1.0, 0.0, 0.0, 0.0, 1.0,
	0.5, -0.5, 0.5, 1.0, 0.0, 0.0, 0.0, 0.0,
	0.5, 0.5, 0.5, 1.0, 0.0, 0.0, 1.0, 0.0,

	-0.5, -0.5, -0.5, 0.0, -1.0, 0.0, 0.0, 1.0,
	0.5, -0.5, -0.5, 0.0, -1.0, 0.0, 1.0, 1.0,
	0.5, -0.5, 0.5, 0.0, -1.0, 0.0, 1.0, 0.0,
	0.5, -0.5, 0.5, 0.0, -1.0, 0.0, 1.0, 0.0,
	-0.5, -0.5, 0.5, 0.0, -1.0, 0.0, 0.0, 0.0,
	-0.5, -0.5, -0.5, 0.0, -1.0, 0.0, 0.0, 1.0,

	-0.5, 0.5, -0.5, 0.0, 1.0, 0.0, 0.0, 1.0,
	0.5, 0.5, -0.5, 0.0, 1.0, 0.0, 1.0, 1.0,
	0.5, 0.5, 0.5, 0.0, 1.0, 0.0, 1.0, 0.0,
	0.5, 0.5, 0.5, 0.0, 1.0, 0.0, 1.0, 0.0,
	-0.5, 0.5, 0.5, 0.0, 1.0, 0.0, 0.0, 0.0,
	-0.5, 0.5, -0.5, 0.0, 1.0, 0.0, 0.0, 1.0,
}

// Span addresses vertices inside SceneVertices
type Span struct {
	First int32
	Count int32
}

// Shapes names the spans of SceneVertices
var Shapes = map[string]Span{
	"floor":   {First: 0, Count: 6},
	"pyramid": {First: 6, Count: 12},
	"cube":    {First: 18, Count: 36},
}

// ShapeRange resolves a named shape against the VAO holding SceneVertices
func ShapeRange(vao uint32, name string) (VertexRange, error) {
	s, ok := Shapes[name]
	if !ok {
		return VertexRange{}, fmt.Errorf("unknown shape %q", name)
	}
	return VertexRange{VAO: vao, First: s.First, Count: s.Count}, nil
}
