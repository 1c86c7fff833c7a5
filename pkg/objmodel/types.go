package objmodel

// Floats per interleaved vertex: position(3) + normal(3) + uv(2)
const VertexSize = 8

// Model is a triangulated OBJ mesh flattened into interleaved vertex data
type Model struct {
	Name     string
	Vertices []float32

	// Axis-aligned bounds of the referenced positions
	Min [3]float32
	Max [3]float32
}

// VertexCount returns the number of vertices (not floats) in the model
func (m *Model) VertexCount() int {
	return len(m.Vertices) / VertexSize
}

// TriangleCount returns the number of triangles in the model
func (m *Model) TriangleCount() int {
	return m.VertexCount() / 3
}

type faceVertex struct {
	pos, uv, normal int
	hasUV, hasNorm  bool
}
