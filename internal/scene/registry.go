package scene

import (
	"floor-demo/internal/graphics"

	"github.com/go-gl/mathgl/mgl32"
)

// Registry is the ordered set of objects that are drawn together and
// collided against. It does not own its objects.
type Registry struct {
	objects []*Object
}

func NewRegistry(objects ...*Object) *Registry {
	r := &Registry{}
	for _, o := range objects {
		r.Add(o)
	}
	return r
}

// Add appends o; insertion order is draw order
func (r *Registry) Add(o *Object) {
	if o == nil {
		return
	}
	r.objects = append(r.objects, o)
}

func (r *Registry) Len() int { return len(r.objects) }

// Objects returns the registered objects in draw order. The slice is shared.
func (r *Registry) Objects() []*Object { return r.objects }

// Collides reports whether any object is in collision with pos
func (r *Registry) Collides(pos mgl32.Vec3) bool {
	for _, o := range r.objects {
		if o.InCollision(pos) {
			return true
		}
	}
	return false
}

// Draw draws every object with the given primitive
func (r *Registry) Draw(mode graphics.Primitive) {
	for _, o := range r.objects {
		o.Draw(mode)
	}
}
