package replay

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rotj-game/rotj/assets"
	"github.com/rotj-game/rotj/internal/display"
	"github.com/rotj-game/rotj/internal/game"
	"github.com/rotj-game/rotj/internal/input"
	"github.com/rotj-game/rotj/internal/screen"
	"github.com/rotj-game/rotj/internal/storage"
)

func TestParseRejectsBadSteps(t *testing.T) {
	tests := []struct {
		name   string
		script string
	}{
		{"unknown key", "steps:\n  - key: f12\n"},
		{"two fields", "steps:\n  - key: enter\n    wait: 2\n"},
		{"empty step", "steps:\n  - {}\n"},
		{"hold without frames", "steps:\n  - hold: up\n"},
		{"short resize", "steps:\n  - resize: [640]\n"},
		{"not yaml", "steps: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.script))
			assert.Error(t, err)
		})
	}
}

func TestInputPlaysSteps(t *testing.T) {
	s, err := Parse([]byte(`
steps:
  - key: enter
  - wait: 2
  - resize: [640, 480]
  - quit: true
`))
	require.NoError(t, err)
	in := NewInput(s, 60)

	assert.Equal(t, []input.Event{input.Press(input.KeyEnter), input.Release(input.KeyEnter)}, in.Poll())
	assert.True(t, in.Pressed().Has(input.KeyEnter))
	assert.Empty(t, in.Poll())
	assert.Zero(t, in.Pressed())
	assert.Empty(t, in.Poll())
	assert.Equal(t, []input.Event{input.Resize(640, 480)}, in.Poll())
	assert.Equal(t, []input.Event{input.Quit()}, in.Poll())
	assert.Equal(t, 5, in.Played())

	// past the end the game is asked to quit every frame
	assert.Equal(t, []input.Event{input.Quit()}, in.Poll())
	assert.Equal(t, 5, in.Played())
}

func TestHoldFollowsRepeat(t *testing.T) {
	s, err := Parse([]byte("steps:\n  - hold: up\n    frames: 10\n"))
	require.NoError(t, err)
	in := NewInput(s, 60)
	in.SetRepeat(input.Repeat{Delay: 50 * time.Millisecond, Interval: 50 * time.Millisecond})

	var downs []int
	for frame := 1; frame <= 10; frame++ {
		for _, ev := range in.Poll() {
			if ev.Kind == input.EventKeyDown {
				downs = append(downs, frame)
			}
		}
		assert.True(t, in.Pressed().Has(input.KeyUp))
	}
	assert.Equal(t, []int{1, 4, 7, 10}, downs)
}

func TestReplayNewGame(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "saves.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	deps, err := screen.LoadDeps(assets.FS, store)
	require.NoError(t, err)

	s, err := Parse([]byte(`
steps:
  - key: enter   # title
  - key: enter   # new game in slot 1
  - key: enter
  - key: enter
  - key: enter   # last page
  - resize: [640, 288]
  - wait: 3
`))
	require.NoError(t, err)

	in := NewInput(s, 60)
	capture := &Capture{}
	g := game.New(game.Options{
		Cols: 20, Rows: 18, CellW: 16, CellH: 16,
		WindowW: 320, WindowH: 288, FPS: 60,
	}, in, capture)
	g.SetClock(game.FixedClock{Step: 1.0 / 60})
	screen.Register(g, deps)

	require.NoError(t, g.Run(context.Background()))

	assert.Equal(t, game.StateGame, g.ScreenState())
	assert.Equal(t, screen.StartMap, g.MapName())
	assert.Equal(t, 9, in.Played())
	assert.Equal(t, 9, capture.Frames)
	assert.Equal(t, display.FitRegion{X: 160, Y: 0, W: 320, H: 288}, capture.Region)
	assert.Contains(t, capture.Last, "The tunnels lie")

	rec, err := store.Load(1)
	require.NoError(t, err)
	assert.Equal(t, "JUDGE 1", rec.Name())
	assert.Equal(t, 1, rec.Level())
}
