package game

import (
	"fmt"
	"strings"

	"github.com/rotj-game/rotj/internal/display"
	"github.com/rotj-game/rotj/internal/input"
	"github.com/rotj-game/rotj/internal/render"
)

// ScreenState is the top-level mode deciding which view runs.
type ScreenState uint8

const (
	StateTitle ScreenState = iota
	StateMenu
	StateBeginning
	StateGame
	stateCount
)

var stateNames = [stateCount]string{"title", "menu", "beginning", "game"}

func (s ScreenState) String() string {
	if s < stateCount {
		return stateNames[s]
	}
	return fmt.Sprintf("ScreenState(%d)", uint8(s))
}

// ParseScreenState parses a state name as printed by String.
func ParseScreenState(name string) (ScreenState, error) {
	for i, n := range stateNames {
		if strings.EqualFold(n, name) {
			return ScreenState(i), nil
		}
	}
	return 0, fmt.Errorf("unknown screen state %q", name)
}

// usesMenuRepeat reports whether s reads input at menu pace.
func (s ScreenState) usesMenuRepeat() bool {
	return s == StateTitle || s == StateMenu
}

// View is one screen. The active view receives every update, draw and
// key-down of the frame; no other view runs.
type View interface {
	Update(dt float64)
	// Draw renders into buf. The buffer must not be kept after returning.
	Draw(buf *render.CellBuffer)
	HandleInput(pressed input.KeySet)
}

// MapView is the view of the map the player is on.
type MapView interface {
	View
	MapName() string
}

// Input is the event source of the host window.
type Input interface {
	// Poll returns the events queued since the last call.
	Poll() []input.Event
	// Pressed returns the keys currently held.
	Pressed() input.KeySet
	// SetRepeat changes how held keys repeat.
	SetRepeat(r input.Repeat)
}

// Window shows finished frames.
type Window interface {
	// Present clears the window to the border color and stretches buf into
	// region.
	Present(buf *render.CellBuffer, region display.FitRegion)
}
