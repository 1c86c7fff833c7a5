package objmodel

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

type Loader struct {
	modelCache map[string]*Model
}

func NewLoader() *Loader {
	return &Loader{
		modelCache: make(map[string]*Model),
	}
}

// LoadModel reads and triangulates the OBJ file at path.
// Parsed models are cached by cleaned path; callers must not mutate the result.
func (l *Loader) LoadModel(path string) (*Model, error) {
	key := filepath.Clean(path)
	if model, ok := l.modelCache[key]; ok {
		return model, nil
	}

	f, err := os.Open(key)
	if err != nil {
		return nil, fmt.Errorf("could not open model file: %w", err)
	}
	defer f.Close()

	model, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("could not parse model %s: %w", key, err)
	}
	model.Name = strings.TrimSuffix(filepath.Base(key), filepath.Ext(key))

	l.modelCache[key] = model
	return model, nil
}

// Parse reads Wavefront OBJ data. Only geometry statements (v, vt, vn, f) are
// interpreted; polygons are fan-triangulated and faces without normals get a
// flat face normal.
func Parse(r io.Reader) (*Model, error) {
	var (
		positions [][3]float32
		uvs       [][2]float32
		normals   [][3]float32
		faces     [][]faceVertex
	)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		ident, args := fields[0], fields[1:]

		switch ident {
		case "v", "vn":
			v, err := parseFloats(args, 3)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			vec := [3]float32{v[0], v[1], v[2]}
			if ident == "v" {
				positions = append(positions, vec)
			} else {
				normals = append(normals, vec)
			}
		case "vt":
			v, err := parseFloats(args, 2)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			uvs = append(uvs, [2]float32{v[0], v[1]})
		case "f":
			if len(args) < 3 {
				return nil, fmt.Errorf("line %d: face needs at least 3 vertices, got %d", lineNo, len(args))
			}
			face := make([]faceVertex, 0, len(args))
			for _, a := range args {
				fv, err := parseFaceVertex(a, len(positions), len(uvs), len(normals))
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				face = append(face, fv)
			}
			faces = append(faces, face)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(faces) == 0 {
		return nil, fmt.Errorf("no faces")
	}

	m := &Model{}
	first := true
	emit := func(fv faceVertex, n [3]float32) {
		p := positions[fv.pos]
		if fv.hasNorm {
			n = normals[fv.normal]
		}
		var uv [2]float32
		if fv.hasUV {
			uv = uvs[fv.uv]
		}
		m.Vertices = append(m.Vertices, p[0], p[1], p[2], n[0], n[1], n[2], uv[0], uv[1])

		for i := 0; i < 3; i++ {
			if first || p[i] < m.Min[i] {
				m.Min[i] = p[i]
			}
			if first || p[i] > m.Max[i] {
				m.Max[i] = p[i]
			}
		}
		first = false
	}

	for _, face := range faces {
		for i := 1; i+1 < len(face); i++ {
			a, b, c := face[0], face[i], face[i+1]
			n := faceNormal(positions[a.pos], positions[b.pos], positions[c.pos])
			emit(a, n)
			emit(b, n)
			emit(c, n)
		}
	}
	return m, nil
}

func parseFloats(args []string, n int) ([]float32, error) {
	if len(args) < n {
		return nil, fmt.Errorf("expected %d components, got %d", n, len(args))
	}
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		f, err := strconv.ParseFloat(args[i], 32)
		if err != nil {
			return nil, fmt.Errorf("bad number %q: %w", args[i], err)
		}
		out[i] = float32(f)
	}
	return out, nil
}

// parseFaceVertex decodes "p", "p/t", "p//n" or "p/t/n"
func parseFaceVertex(s string, nPos, nUV, nNorm int) (faceVertex, error) {
	parts := strings.Split(s, "/")
	if len(parts) > 3 {
		return faceVertex{}, fmt.Errorf("bad face vertex %q", s)
	}

	var fv faceVertex
	var err error
	if fv.pos, err = resolveIndex(parts[0], nPos); err != nil {
		return fv, err
	}
	if len(parts) > 1 && parts[1] != "" {
		if fv.uv, err = resolveIndex(parts[1], nUV); err != nil {
			return fv, err
		}
		fv.hasUV = true
	}
	if len(parts) > 2 && parts[2] != "" {
		if fv.normal, err = resolveIndex(parts[2], nNorm); err != nil {
			return fv, err
		}
		fv.hasNorm = true
	}
	return fv, nil
}

// resolveIndex converts a 1-based (or negative, relative) OBJ index to 0-based
func resolveIndex(s string, count int) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("bad index %q: %w", s, err)
	}
	switch {
	case i > 0:
		i--
	case i < 0:
		i += count
	default:
		return 0, fmt.Errorf("index 0 is invalid")
	}
	if i < 0 || i >= count {
		return 0, fmt.Errorf("index %s out of range (have %d)", s, count)
	}
	return i, nil
}

func faceNormal(a, b, c [3]float32) [3]float32 {
	u := mgl32.Vec3(b).Sub(mgl32.Vec3(a))
	v := mgl32.Vec3(c).Sub(mgl32.Vec3(a))
	n := u.Cross(v)
	// Degenerate triangles have no direction; point them up
	if n.Len() == 0 {
		return [3]float32{0, 1, 0}
	}
	return n.Normalize()
}
