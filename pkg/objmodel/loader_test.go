package objmodel

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const triangleOBJ = `# single triangle
o tri
v 0 0 0
v 1 0 0
v 0 1 0
vt 0 0
vt 1 0
vt 0 1
vn 0 0 1
s off
f 1/1/1 2/2/1 3/3/1
`

func TestParseTriangle(t *testing.T) {
	m, err := Parse(strings.NewReader(triangleOBJ))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if m.VertexCount() != 3 {
		t.Fatalf("Expected 3 vertices, got %d", m.VertexCount())
	}
	want := []float32{1, 0, 0, 0, 0, 1, 1, 0}
	got := m.Vertices[VertexSize : 2*VertexSize]
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Vertex 1 mismatch: got %v, want %v", got, want)
		}
	}
}

func TestParseQuadIsFanTriangulated(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 1 1 0\nv 0 1 0\nf 1 2 3 4\n"
	m, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if m.TriangleCount() != 2 {
		t.Fatalf("Expected 2 triangles, got %d", m.TriangleCount())
	}
	// second triangle is (1, 3, 4)
	x, y := m.Vertices[3*VertexSize+0], m.Vertices[3*VertexSize+1]
	if x != 0 || y != 0 {
		t.Errorf("Fan should start every triangle at the first vertex, got (%v, %v)", x, y)
	}
	x, y = m.Vertices[5*VertexSize+0], m.Vertices[5*VertexSize+1]
	if x != 0 || y != 1 {
		t.Errorf("Last fan vertex should be (0,1), got (%v, %v)", x, y)
	}
}

func TestParseNegativeIndices(t *testing.T) {
	src := "v 0 0 0\nv 2 0 0\nv 0 2 0\nf -3 -2 -1\n"
	m, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if m.Vertices[VertexSize] != 2 {
		t.Errorf("Expected relative index -2 to resolve to (2,0,0), got x=%v", m.Vertices[VertexSize])
	}
	if m.Max != [3]float32{2, 2, 0} || m.Min != [3]float32{0, 0, 0} {
		t.Errorf("Unexpected bounds min=%v max=%v", m.Min, m.Max)
	}
}

func TestParseComputesMissingNormals(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 0 1 0\nvt 0.5 0.5\nf 1/1 2/1 3/1\n"
	m, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	for v := 0; v < 3; v++ {
		n := m.Vertices[v*VertexSize+3 : v*VertexSize+6]
		if n[0] != 0 || n[1] != 0 || n[2] != 1 {
			t.Fatalf("Vertex %d: expected face normal (0,0,1), got %v", v, n)
		}
		uv := m.Vertices[v*VertexSize+6 : v*VertexSize+8]
		if uv[0] != 0.5 || uv[1] != 0.5 {
			t.Fatalf("Vertex %d: expected uv (0.5,0.5), got %v", v, uv)
		}
	}
}

func TestParseErrors(t *testing.T) {
	cases := map[string]string{
		"zero index":   "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 0 1 2\n",
		"out of range": "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 9\n",
		"short face":   "v 0 0 0\nv 1 0 0\nf 1 2\n",
		"bad number":   "v 0 nope 0\n",
		"no faces":     "v 0 0 0\n",
	}
	for name, src := range cases {
		if _, err := Parse(strings.NewReader(src)); err == nil {
			t.Errorf("%s: expected error, got nil", name)
		}
	}
}

func TestLoaderCache(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tri.obj")
	if err := os.WriteFile(path, []byte(triangleOBJ), 0644); err != nil {
		t.Fatal(err)
	}

	loader := NewLoader()
	m1, err := loader.LoadModel(path)
	if err != nil {
		t.Fatalf("Failed to load model: %v", err)
	}
	if m1.Name != "tri" {
		t.Errorf("Expected model name 'tri', got %q", m1.Name)
	}

	m2, err := loader.LoadModel(filepath.Join(dir, ".", "tri.obj"))
	if err != nil {
		t.Fatalf("Failed to load model again: %v", err)
	}
	if m1 != m2 {
		t.Errorf("Expected cached model instance on second load")
	}
}

func TestLoaderMissingFile(t *testing.T) {
	loader := NewLoader()
	if _, err := loader.LoadModel(filepath.Join(t.TempDir(), "missing.obj")); err == nil {
		t.Fatal("Expected error for missing file")
	}
}

func TestLoadBundledSphere(t *testing.T) {
	model, err := NewLoader().LoadModel(filepath.Join("..", "..", "assets", "models", "sphere.obj"))
	if err != nil {
		t.Fatalf("LoadModel: %v", err)
	}
	if got := model.TriangleCount(); got != 720 {
		t.Errorf("TriangleCount() = %d, want 720", got)
	}
	for i := 0; i < 3; i++ {
		if model.Min[i] < -1.0001 || model.Min[i] > -0.9999 || model.Max[i] < 0.9999 || model.Max[i] > 1.0001 {
			t.Errorf("axis %d bounds = [%v, %v], want unit sphere", i, model.Min[i], model.Max[i])
		}
	}
}

func TestFaceNormal(t *testing.T) {
	n := faceNormal([3]float32{0, 0, 0}, [3]float32{3, 0, 0}, [3]float32{0, 0, -2})
	if n != [3]float32{0, 1, 0} {
		t.Errorf("Expected up-facing unit normal, got %v", n)
	}

	// collinear points have no area
	n = faceNormal([3]float32{0, 0, 0}, [3]float32{1, 1, 1}, [3]float32{2, 2, 2})
	if n != [3]float32{0, 1, 0} {
		t.Errorf("Expected fallback normal for a degenerate triangle, got %v", n)
	}
}
