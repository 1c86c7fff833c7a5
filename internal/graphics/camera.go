package graphics

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Projection holds the perspective parameters that do not come from the camera
type Projection struct {
	AspectRatio float32
	NearPlane   float32
	FarPlane    float32
}

func NewProjection(width, height int, near, far float32) *Projection {
	p := &Projection{AspectRatio: 1, NearPlane: near, FarPlane: far}
	p.SetViewport(width, height)
	return p
}

// SetViewport updates the aspect ratio; zero-sized (minimized) windows keep the old one
func (p *Projection) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	p.AspectRatio = float32(width) / float32(height)
}

// Matrix returns the perspective matrix for a vertical field of view in degrees
func (p *Projection) Matrix(fovDegrees float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(fovDegrees), p.AspectRatio, p.NearPlane, p.FarPlane)
}
