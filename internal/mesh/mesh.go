package mesh

import (
	"fmt"

	"floor-demo/internal/graphics"
	"floor-demo/pkg/objmodel"

	"github.com/rs/zerolog"
)

// Mesh is an uploaded model owning its own vertex array
type Mesh struct {
	device      graphics.Device
	VAO         uint32
	VBO         uint32
	VertexCount int32
	released    bool
}

// Draw binds the mesh's vertex array and draws it with whatever program and
// texture the caller left bound
func (m *Mesh) Draw(p graphics.Program) {
	if m.released {
		return
	}
	m.device.BindVertexArray(m.VAO)
	m.device.DrawArrays(graphics.Triangles, 0, m.VertexCount)
}

// Release frees the GPU buffers; later calls are no-ops
func (m *Mesh) Release() {
	if m.released {
		return
	}
	m.released = true
	m.device.DeleteVertexArray(m.VAO, m.VBO)
}

// Loader parses models from disk and uploads a private copy per LoadMesh call.
// Parsed geometry is shared through the model cache.
type Loader struct {
	device graphics.Device
	models *objmodel.Loader
	log    zerolog.Logger
}

func NewLoader(device graphics.Device, log zerolog.Logger) *Loader {
	return &Loader{device: device, models: objmodel.NewLoader(), log: log}
}

// Upload creates a Mesh from an already parsed model
func Upload(device graphics.Device, model *objmodel.Model) (*Mesh, error) {
	if model.VertexCount() == 0 {
		return nil, fmt.Errorf("model %q has no vertices", model.Name)
	}
	vao, vbo := device.CreateVertexArray(model.Vertices)
	return &Mesh{
		device:      device,
		VAO:         vao,
		VBO:         vbo,
		VertexCount: int32(model.VertexCount()),
	}, nil
}

func (l *Loader) LoadMesh(path string) (graphics.Mesh, error) {
	model, err := l.models.LoadModel(path)
	if err != nil {
		return nil, err
	}
	m, err := Upload(l.device, model)
	if err != nil {
		return nil, err
	}
	l.log.Debug().Str("path", path).Int("triangles", model.TriangleCount()).
		Floats32("min", model.Min[:]).Floats32("max", model.Max[:]).Msg("Model loaded")
	return m, nil
}
