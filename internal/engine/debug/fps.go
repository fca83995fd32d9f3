package debug

// FPSCounter measures frames per second over a fixed refresh window. The
// reported value only changes when a window completes, so the overlay does
// not flicker every frame.
type FPSCounter struct {
	refresh float64
	elapsed float64
	frames  int
	fps     int
}

// NewFPSCounter creates a counter that refreshes every refresh seconds.
// Non-positive values use one second.
func NewFPSCounter(refresh float64) *FPSCounter {
	if refresh <= 0 {
		refresh = 1
	}
	return &FPSCounter{refresh: refresh}
}

// Tick records one frame that took dt seconds. It returns true when the
// reported value was refreshed.
func (c *FPSCounter) Tick(dt float64) bool {
	if dt < 0 {
		dt = 0
	}
	c.frames++
	c.elapsed += dt
	if c.elapsed < c.refresh {
		return false
	}
	c.fps = int(float64(c.frames)/c.elapsed + 0.5)
	c.frames = 0
	c.elapsed = 0
	return true
}

// FPS returns the rate measured over the last completed window.
func (c *FPSCounter) FPS() int {
	return c.fps
}
