package system

// Clock tracks elapsed time and the last frame's delta, in seconds.
type Clock struct {
	Elapsed float64
	Delta   float64
	Frames  int
}

// Tick records a frame of length delta. Negative deltas count as zero.
func (c *Clock) Tick(delta float64) {
	if delta < 0 {
		delta = 0
	}
	c.Delta = delta
	c.Elapsed += delta
	c.Frames++
}

// Reset puts the clock back to zero, as on scene (re)initialization.
func (c *Clock) Reset() {
	*c = Clock{}
}
