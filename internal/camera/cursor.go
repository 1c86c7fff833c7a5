package camera

// CursorTracker turns absolute cursor positions into per-event offsets.
// The first sample after Reset only records the position.
type CursorTracker struct {
	lastX, lastY float64
	primed       bool
}

// Reset forgets the last position, e.g. after the cursor was recaptured
func (t *CursorTracker) Reset() {
	t.primed = false
}

// Offset returns the movement since the previous sample. Y is reversed so
// that moving the cursor up yields a positive offset.
func (t *CursorTracker) Offset(xpos, ypos float64) (float32, float32) {
	if !t.primed {
		t.lastX, t.lastY = xpos, ypos
		t.primed = true
	}
	xoffset := xpos - t.lastX
	yoffset := t.lastY - ypos
	t.lastX, t.lastY = xpos, ypos
	return float32(xoffset), float32(yoffset)
}
