package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

const eps = 1e-5

func assertVec(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	assert.True(t, want.ApproxEqualThreshold(got, eps), "want %v, got %v", want, got)
}

func assertOrthonormal(t *testing.T, c *Camera) {
	t.Helper()
	assert.InDelta(t, 1, c.Front.Len(), eps)
	assert.InDelta(t, 1, c.Right.Len(), eps)
	assert.InDelta(t, 1, c.Up.Len(), eps)
	assert.InDelta(t, 0, c.Front.Dot(c.Right), eps)
	assert.InDelta(t, 0, c.Front.Dot(c.Up), eps)
	assert.InDelta(t, 0, c.Right.Dot(c.Up), eps)
}

func TestNewLooksDownNegativeZ(t *testing.T) {
	c := New(mgl32.Vec3{0, 0.5, -1})

	assertVec(t, mgl32.Vec3{0, 0, -1}, c.Front)
	assertVec(t, mgl32.Vec3{1, 0, 0}, c.Right)
	assertVec(t, mgl32.Vec3{0, 1, 0}, c.Up)
	assert.Equal(t, float32(DefaultZoom), c.Zoom)
}

func TestProcessKeyboard(t *testing.T) {
	c := New(mgl32.Vec3{})
	c.MovementSpeed = 2

	c.ProcessKeyboard(Forward, 0.5)
	assertVec(t, mgl32.Vec3{0, 0, -1}, c.Position)

	c.ProcessKeyboard(Right, 0.25)
	assertVec(t, mgl32.Vec3{0.5, 0, -1}, c.Position)

	c.ProcessKeyboard(Backward, 0.5)
	c.ProcessKeyboard(Left, 0.25)
	assertVec(t, mgl32.Vec3{}, c.Position)
}

func TestCandidateDoesNotMove(t *testing.T) {
	c := New(mgl32.Vec3{1, 2, 3})
	got := c.Candidate(Forward, 1)

	assertVec(t, mgl32.Vec3{1, 2, 3 - DefaultSpeed}, got)
	assertVec(t, mgl32.Vec3{1, 2, 3}, c.Position)
}

func TestMouseMovementKeepsBasisOrthonormal(t *testing.T) {
	c := New(mgl32.Vec3{})
	moves := [][2]float32{{120, 40}, {-300, 15}, {33, -700}, {5000, 1000}}
	for _, m := range moves {
		c.ProcessMouseMovement(m[0], m[1], true)
		assertOrthonormal(t, c)
	}
}

func TestPitchIsClamped(t *testing.T) {
	c := New(mgl32.Vec3{})
	c.ProcessMouseMovement(0, 10000, true)
	assert.Equal(t, float32(MaxPitch), c.Pitch)

	c.ProcessMouseMovement(0, -20000, true)
	assert.Equal(t, float32(-MaxPitch), c.Pitch)

	c.ProcessMouseMovement(0, -1000, false)
	assert.Less(t, c.Pitch, float32(-MaxPitch))
}

func TestZoomIsClamped(t *testing.T) {
	c := New(mgl32.Vec3{})
	c.ProcessMouseScroll(10)
	assert.Equal(t, float32(35), c.Zoom)

	c.ProcessMouseScroll(100)
	assert.Equal(t, float32(MinZoom), c.Zoom)

	c.ProcessMouseScroll(-100)
	assert.Equal(t, float32(MaxZoom), c.Zoom)
}

func TestViewMatrix(t *testing.T) {
	c := New(mgl32.Vec3{0, 0.5, -1})
	want := mgl32.LookAtV(mgl32.Vec3{0, 0.5, -1}, mgl32.Vec3{0, 0.5, -2}, mgl32.Vec3{0, 1, 0})
	assert.True(t, want.ApproxEqualThreshold(c.ViewMatrix(), eps))
}

func TestCursorTracker(t *testing.T) {
	var tr CursorTracker

	dx, dy := tr.Offset(100, 100)
	assert.Zero(t, dx)
	assert.Zero(t, dy)

	dx, dy = tr.Offset(110, 90)
	assert.Equal(t, float32(10), dx)
	assert.Equal(t, float32(10), dy, "moving up gives positive y")

	tr.Reset()
	dx, dy = tr.Offset(500, 500)
	assert.Zero(t, dx)
	assert.Zero(t, dy)
}
