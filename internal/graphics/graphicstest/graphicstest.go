// Package graphicstest provides recording implementations of the graphics
// contracts for tests that run without a GL context.
package graphicstest

import (
	"errors"
	"fmt"

	"floor-demo/internal/graphics"
	"floor-demo/internal/texture"

	"github.com/go-gl/mathgl/mgl32"
)

// Call is one recorded device operation, e.g. {"DrawArrays", []any{Lines, 6, 12}}
type Call struct {
	Op   string
	Args []any
}

func (c Call) String() string {
	return fmt.Sprintf("%s%v", c.Op, c.Args)
}

// Device records every call. Texture and vertex array names are allocated
// from 1 upward so zero keeps meaning "unbound".
type Device struct {
	Calls []Call

	// When set, CreateTexture fails with this error
	TextureErr error

	nextName        uint32
	LiveTextures    map[uint32]bool
	LiveArrays      map[uint32]bool
	DeletedTextures int
	DeletedArrays   int
}

func NewDevice() *Device {
	return &Device{
		LiveTextures: make(map[uint32]bool),
		LiveArrays:   make(map[uint32]bool),
	}
}

func (d *Device) record(op string, args ...any) {
	d.Calls = append(d.Calls, Call{Op: op, Args: args})
}

func (d *Device) name() uint32 {
	d.nextName++
	return d.nextName
}

// Reset forgets recorded calls but keeps resource tracking
func (d *Device) Reset() {
	d.Calls = nil
}

// Ops returns the recorded operation names in order
func (d *Device) Ops() []string {
	ops := make([]string, len(d.Calls))
	for i, c := range d.Calls {
		ops[i] = c.Op
	}
	return ops
}

// Find returns the recorded calls with the given operation name
func (d *Device) Find(op string) []Call {
	var out []Call
	for _, c := range d.Calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

func (d *Device) Clear(color mgl32.Vec4) { d.record("Clear", color) }

func (d *Device) Viewport(width, height int) { d.record("Viewport", width, height) }

func (d *Device) BindVertexArray(vao uint32) { d.record("BindVertexArray", vao) }

func (d *Device) BindTexture(tex uint32) { d.record("BindTexture", tex) }

func (d *Device) DrawArrays(mode graphics.Primitive, first, count int32) {
	d.record("DrawArrays", mode, first, count)
}

func (d *Device) CreateTexture(px *texture.Pixels) (uint32, error) {
	if d.TextureErr != nil {
		return 0, d.TextureErr
	}
	if px == nil {
		return 0, errors.New("nil pixels")
	}
	if _, err := px.Format(); err != nil {
		return 0, err
	}
	tex := d.name()
	d.LiveTextures[tex] = true
	d.record("CreateTexture", tex)
	return tex, nil
}

func (d *Device) DeleteTexture(tex uint32) {
	d.record("DeleteTexture", tex)
	if !d.LiveTextures[tex] {
		panic(fmt.Sprintf("graphicstest: texture %d deleted twice or never created", tex))
	}
	delete(d.LiveTextures, tex)
	d.DeletedTextures++
}

func (d *Device) CreateVertexArray(vertices []float32) (uint32, uint32) {
	vao, vbo := d.name(), d.name()
	d.LiveArrays[vao] = true
	d.record("CreateVertexArray", vao, vbo, len(vertices))
	return vao, vbo
}

func (d *Device) DeleteVertexArray(vao, vbo uint32) {
	d.record("DeleteVertexArray", vao, vbo)
	if !d.LiveArrays[vao] {
		panic(fmt.Sprintf("graphicstest: vertex array %d deleted twice or never created", vao))
	}
	delete(d.LiveArrays, vao)
	d.DeletedArrays++
}

// Program records uniform uploads, keeping the latest value per name
type Program struct {
	Name  string
	Uses  int
	Mat4  map[string]mgl32.Mat4
	Vec3  map[string]mgl32.Vec3
	Float map[string]float32

	// Uniform names in upload order
	Log []string
}

func NewProgram(name string) *Program {
	return &Program{
		Name:  name,
		Mat4:  make(map[string]mgl32.Mat4),
		Vec3:  make(map[string]mgl32.Vec3),
		Float: make(map[string]float32),
	}
}

func (p *Program) Use() { p.Uses++ }

func (p *Program) SetMatrix4(name string, value mgl32.Mat4) {
	p.Mat4[name] = value
	p.Log = append(p.Log, name)
}

func (p *Program) SetVector3(name string, value mgl32.Vec3) {
	p.Vec3[name] = value
	p.Log = append(p.Log, name)
}

func (p *Program) SetFloat(name string, value float32) {
	p.Float[name] = value
	p.Log = append(p.Log, name)
}

// Mesh counts draws and releases
type Mesh struct {
	Path     string
	Draws    int
	Releases int
	DrawnBy  []graphics.Program
}

func (m *Mesh) Draw(p graphics.Program) {
	m.Draws++
	m.DrawnBy = append(m.DrawnBy, p)
}

func (m *Mesh) Release() { m.Releases++ }

// MeshLoader hands out a fresh Mesh per call and keeps them for inspection
type MeshLoader struct {
	Loaded []*Mesh

	// When set, LoadMesh fails with this error
	Err error
}

func (l *MeshLoader) LoadMesh(path string) (graphics.Mesh, error) {
	if l.Err != nil {
		return nil, l.Err
	}
	m := &Mesh{Path: path}
	l.Loaded = append(l.Loaded, m)
	return m, nil
}

// Live returns how many loaded meshes have not been released
func (l *MeshLoader) Live() int {
	n := 0
	for _, m := range l.Loaded {
		if m.Releases == 0 {
			n++
		}
	}
	return n
}
