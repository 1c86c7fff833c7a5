package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Direction is one of the four planar movement commands
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
)

// Directions lists every movement command in the order input is processed
var Directions = [...]Direction{Forward, Backward, Left, Right}

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

const (
	DefaultYaw         = -90.0
	DefaultPitch       = 0.0
	DefaultSpeed       = 2.5
	DefaultSensitivity = 0.1
	DefaultZoom        = 45.0

	MinZoom  = 1.0
	MaxZoom  = 45.0
	MaxPitch = 89.0
)

// Camera is a free-fly viewpoint driven by Euler angles
type Camera struct {
	Position mgl32.Vec3
	Front    mgl32.Vec3
	Up       mgl32.Vec3
	Right    mgl32.Vec3
	WorldUp  mgl32.Vec3

	Yaw   float32
	Pitch float32

	MovementSpeed    float32
	MouseSensitivity float32
	Zoom             float32
}

// New creates a camera at position looking down -Z with default tuning
func New(position mgl32.Vec3) *Camera {
	c := &Camera{
		Position:         position,
		WorldUp:          mgl32.Vec3{0, 1, 0},
		Yaw:              DefaultYaw,
		Pitch:            DefaultPitch,
		MovementSpeed:    DefaultSpeed,
		MouseSensitivity: DefaultSensitivity,
		Zoom:             DefaultZoom,
	}
	c.updateVectors()
	return c
}

// ViewMatrix returns the look-at matrix for the current pose
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

// Axis returns the unit displacement for a movement command
func (c *Camera) Axis(d Direction) mgl32.Vec3 {
	switch d {
	case Forward:
		return c.Front
	case Backward:
		return c.Front.Mul(-1)
	case Left:
		return c.Right.Mul(-1)
	case Right:
		return c.Right
	}
	return mgl32.Vec3{}
}

// Candidate returns where ProcessKeyboard would move the camera, without moving it
func (c *Camera) Candidate(d Direction, deltaTime float32) mgl32.Vec3 {
	velocity := c.MovementSpeed * deltaTime
	return c.Position.Add(c.Axis(d).Mul(velocity))
}

// ProcessKeyboard moves the camera along the direction's axis
func (c *Camera) ProcessKeyboard(d Direction, deltaTime float32) {
	c.Position = c.Candidate(d, deltaTime)
}

// ProcessMouseMovement turns the camera by a cursor delta in pixels
func (c *Camera) ProcessMouseMovement(xoffset, yoffset float32, constrainPitch bool) {
	c.Yaw += xoffset * c.MouseSensitivity
	c.Pitch += yoffset * c.MouseSensitivity

	// Constrain pitch so the view never flips past vertical
	if constrainPitch {
		if c.Pitch > MaxPitch {
			c.Pitch = MaxPitch
		}
		if c.Pitch < -MaxPitch {
			c.Pitch = -MaxPitch
		}
	}
	c.updateVectors()
}

// ProcessMouseScroll narrows or widens the field of view
func (c *Camera) ProcessMouseScroll(yoffset float32) {
	c.Zoom -= yoffset
	if c.Zoom < MinZoom {
		c.Zoom = MinZoom
	}
	if c.Zoom > MaxZoom {
		c.Zoom = MaxZoom
	}
}

func (c *Camera) updateVectors() {
	yaw := float64(mgl32.DegToRad(c.Yaw))
	pitch := float64(mgl32.DegToRad(c.Pitch))
	front := mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}
	c.Front = front.Normalize()
	c.Right = c.Front.Cross(c.WorldUp).Normalize()
	c.Up = c.Right.Cross(c.Front).Normalize()
}
