package input

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKeySet(t *testing.T) {
	s := Keys(KeyUp, KeyEnter)
	assert.True(t, s.Has(KeyUp))
	assert.True(t, s.Has(KeyEnter))
	assert.False(t, s.Has(KeyDown))
	assert.True(t, s.Confirm())
	assert.False(t, s.Cancel())

	s = s.Without(KeyEnter).With(KeyX)
	assert.False(t, s.Confirm())
	assert.True(t, s.Cancel())
	assert.Equal(t, "[up x]", s.String())
}

func TestParseKey(t *testing.T) {
	k, ok := ParseKey(" Enter ")
	assert.True(t, ok)
	assert.Equal(t, KeyEnter, k)

	_, ok = ParseKey("f13")
	assert.False(t, ok)

	_, ok = ParseKey("none")
	assert.False(t, ok)
}

func TestEvents(t *testing.T) {
	assert.Equal(t, Event{Kind: EventKeyDown, Key: KeyDown}, Press(KeyDown))
	assert.Equal(t, Event{Kind: EventKeyUp, Key: KeyUp}, Release(KeyUp))
	assert.Equal(t, Event{Kind: EventQuit}, Quit())
	assert.Equal(t, Event{Kind: EventResize, Width: 640, Height: 480}, Resize(640, 480))
}

func TestRepeatTicks(t *testing.T) {
	menu := Repeat{Delay: 300 * time.Millisecond, Interval: 300 * time.Millisecond}
	d, i := menu.Ticks(60)
	assert.Equal(t, 18, d)
	assert.Equal(t, 18, i)

	fast := Repeat{Delay: 50 * time.Millisecond, Interval: 50 * time.Millisecond}
	d, i = fast.Ticks(60)
	assert.Equal(t, 3, d)
	assert.Equal(t, 3, i)

	zero := Repeat{}
	d, i = zero.Ticks(60)
	assert.Equal(t, 1, d)
	assert.Equal(t, 1, i)
}

func TestRepeatFires(t *testing.T) {
	r := Repeat{Delay: 50 * time.Millisecond, Interval: 50 * time.Millisecond} // 3 / 3 ticks at 60

	var fired []int
	for held := 0; held <= 12; held++ {
		if r.Fires(held, 60) {
			fired = append(fired, held)
		}
	}
	assert.Equal(t, []int{1, 4, 7, 10}, fired)
}
