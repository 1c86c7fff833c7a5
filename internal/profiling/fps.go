package profiling

// FPSCounter turns per-frame deltas into a frames-per-second figure that
// refreshes once every second of accumulated time.
type FPSCounter struct {
	frames  int
	elapsed float64
	fps     int
}

// Tick records one frame of dt seconds and reports whether the FPS value
// was refreshed by it
func (c *FPSCounter) Tick(dt float64) bool {
	c.frames++
	c.elapsed += dt
	if c.elapsed < 1 {
		return false
	}
	c.fps = c.frames
	c.frames = 0
	c.elapsed -= 1
	if c.elapsed >= 1 {
		// a long stall; don't report catch-up frames
		c.elapsed = 0
	}
	return true
}

// FPS is the frame count of the last full second
func (c *FPSCounter) FPS() int { return c.fps }
