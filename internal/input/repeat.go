package input

import "time"

// Repeat is a key-repeat policy: a held key produces a first repeat after
// Delay and then one every Interval.
type Repeat struct {
	Delay    time.Duration `yaml:"delay"`
	Interval time.Duration `yaml:"interval"`
}

// Ticks converts the policy to frame counts at the given tick rate.
// Both values are at least one tick.
func (r Repeat) Ticks(tps int) (delay, interval int) {
	return durationTicks(r.Delay, tps), durationTicks(r.Interval, tps)
}

func durationTicks(d time.Duration, tps int) int {
	if tps <= 0 {
		tps = 60
	}
	n := int((d*time.Duration(tps) + time.Second - 1) / time.Second) // ceil
	if n < 1 {
		n = 1
	}
	return n
}

// Fires reports whether a key that has been held for held frames (1 on the
// frame it went down) produces a key-down event on this frame.
func (r Repeat) Fires(held, tps int) bool {
	if held <= 0 {
		return false
	}
	if held == 1 {
		return true
	}
	delay, interval := r.Ticks(tps)
	since := held - 1 - delay
	if since < 0 {
		return false
	}
	return since%interval == 0
}
