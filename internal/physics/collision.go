package physics

import (
	"floor-demo/internal/camera"

	"github.com/go-gl/mathgl/mgl32"
)

// Collider answers whether a point is inside something solid
type Collider interface {
	Collides(pos mgl32.Vec3) bool
}

// ColliderFunc adapts a plain function to Collider
type ColliderFunc func(pos mgl32.Vec3) bool

func (f ColliderFunc) Collides(pos mgl32.Vec3) bool { return f(pos) }

// Gate filters camera movement against static colliders. Each direction is
// tested independently with a single trial step from the current position,
// so a fast step can pass through a thin collider.
type Gate struct {
	World Collider
}

// Blocked reports whether moving in d for deltaTime would end inside the world
func (g Gate) Blocked(c *camera.Camera, d camera.Direction, deltaTime float32) bool {
	if g.World == nil {
		return false
	}
	return g.World.Collides(c.Candidate(d, deltaTime))
}

// Step applies every held direction that is not blocked, in camera.Directions
// order, and returns the directions that were suppressed
func (g Gate) Step(c *camera.Camera, held func(camera.Direction) bool, deltaTime float32) []camera.Direction {
	var blocked []camera.Direction
	for _, d := range camera.Directions {
		if !held(d) {
			continue
		}
		if g.Blocked(c, d, deltaTime) {
			blocked = append(blocked, d)
			continue
		}
		c.ProcessKeyboard(d, deltaTime)
	}
	return blocked
}
