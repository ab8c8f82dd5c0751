package game

import "time"

// Clock paces the run loop.
type Clock interface {
	// Tick blocks until the next frame may start and returns the seconds
	// elapsed since the previous Tick.
	Tick() float64
}

// FrameClock caps the loop at a fixed number of frames per second.
type FrameClock struct {
	frame time.Duration
	last  time.Time
	now   func() time.Time
	sleep func(time.Duration)
}

// NewFrameClock returns a clock allowing at most fps frames per second.
func NewFrameClock(fps int) *FrameClock {
	if fps <= 0 {
		fps = 60
	}
	return &FrameClock{
		frame: time.Second / time.Duration(fps),
		now:   time.Now,
		sleep: time.Sleep,
	}
}

func (c *FrameClock) Tick() float64 {
	now := c.now()
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	if wait := c.frame - now.Sub(c.last); wait > 0 {
		c.sleep(wait)
		now = c.now()
	}
	dt := now.Sub(c.last)
	c.last = now
	return dt.Seconds()
}

// FixedClock advances by the same step every tick without waiting.
// Headless replays use it.
type FixedClock struct {
	Step float64
}

func (c FixedClock) Tick() float64 { return c.Step }
