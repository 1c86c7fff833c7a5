package renderer

import (
	"fmt"

	"floor-demo/internal/camera"
	"floor-demo/internal/graphics"

	"github.com/go-gl/mathgl/mgl32"
)

// Options configures the frame setup shared by every renderable
type Options struct {
	Width, Height int
	NearPlane     float32
	FarPlane      float32
	ClearColor    mgl32.Vec4
}

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	device      graphics.Device
	renderables []Renderable
	projection  *graphics.Projection
	clearColor  mgl32.Vec4
}

// NewRenderer creates a new renderer with the given renderables and
// initializes them in order. If one fails, the ones already initialized are
// disposed.
func NewRenderer(device graphics.Device, opts Options, rs ...Renderable) (*Renderer, error) {
	renderer := &Renderer{
		device:     device,
		projection: graphics.NewProjection(opts.Width, opts.Height, opts.NearPlane, opts.FarPlane),
		clearColor: opts.ClearColor,
	}

	for i, r := range rs {
		if err := r.Init(); err != nil {
			for j := i - 1; j >= 0; j-- {
				rs[j].Dispose()
			}
			return nil, fmt.Errorf("init renderable %d: %w", i, err)
		}
		renderer.renderables = append(renderer.renderables, r)
	}
	renderer.UpdateViewport(opts.Width, opts.Height)

	return renderer, nil
}

// Render clears the frame, computes view and projection once and hands them
// to every renderable
func (r *Renderer) Render(cam *camera.Camera, dt float64) {
	r.device.Clear(r.clearColor)

	ctx := RenderContext{
		Camera: cam,
		DT:     dt,
		View:   cam.ViewMatrix(),
		Proj:   r.projection.Matrix(cam.Zoom),
	}

	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
	r.renderables = nil
}

// Projection returns the perspective parameters
func (r *Renderer) Projection() *graphics.Projection {
	return r.projection
}

// UpdateViewport resizes the GL viewport and the projection aspect ratio.
// Minimized (zero-sized) framebuffers are ignored.
func (r *Renderer) UpdateViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.device.Viewport(width, height)
	r.projection.SetViewport(width, height)
	for _, renderable := range r.renderables {
		renderable.SetViewport(width, height)
	}
}
