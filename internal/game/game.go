// Package game is the orchestrator: it owns the virtual surface, the screen
// state machine and the frame loop, and routes input to the active view.
package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/rotj-game/rotj/internal/config"
	"github.com/rotj-game/rotj/internal/display"
	"github.com/rotj-game/rotj/internal/input"
	"github.com/rotj-game/rotj/internal/render"
	"github.com/rotj-game/rotj/internal/session"
)

// ErrQuit is returned by Frame once the loop should end.
var ErrQuit = errors.New("quit")

// Options configures a Game.
type Options struct {
	Cols, Rows   int // virtual surface, in cells
	CellW, CellH int
	WindowW      int
	WindowH      int
	FPS          int
	MenuRepeat   input.Repeat // title and menu
	GameRepeat   input.Repeat // beginning and game
	Logger       *slog.Logger

	// Console receives the escape shutdown notice whatever the log level.
	// When nil the notice goes to Logger at warn level.
	Console io.Writer
}

// OptionsFromConfig derives Options from the loaded configuration.
func OptionsFromConfig(cfg config.Config, logger *slog.Logger) Options {
	return Options{
		Cols:       cfg.Virtual.Cols,
		Rows:       cfg.Virtual.Rows,
		CellW:      cfg.Virtual.CellWidth,
		CellH:      cfg.Virtual.CellHeight,
		WindowW:    cfg.Window.Width,
		WindowH:    cfg.Window.Height,
		FPS:        cfg.FPS,
		MenuRepeat: cfg.KeyRepeat.Menu,
		GameRepeat: cfg.KeyRepeat.Game,
		Logger:     logger,
	}
}

// Game drives exactly one active view per frame.
type Game struct {
	opts   Options
	logger *slog.Logger
	input  Input
	window Window
	clock  Clock

	buf    *render.CellBuffer
	scaler *display.Scaler

	views   [stateCount]View
	state   ScreenState
	repeat  input.Repeat
	running bool

	mapView MapView
	session *session.State
	slot    int

	closers   []func() error
	closeOnce sync.Once
	closeErr  error
}

// New creates a game in the Title state. Views are registered afterwards.
func New(opts Options, in Input, win Window) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	virtW, virtH := opts.Cols*opts.CellW, opts.Rows*opts.CellH
	g := &Game{
		opts:    opts,
		logger:  logger,
		input:   in,
		window:  win,
		clock:   NewFrameClock(opts.FPS),
		buf:     render.NewCellBuffer(opts.Cols, opts.Rows),
		scaler:  display.NewScaler(virtW, virtH, opts.WindowW, opts.WindowH),
		running: true,
	}
	g.state = StateTitle
	g.applyRepeat()
	return g
}

// Register installs the view for state.
func (g *Game) Register(state ScreenState, v View) {
	g.views[state] = v
}

// SetClock replaces the frame clock used by Run.
func (g *Game) SetClock(c Clock) { g.clock = c }

// Logger returns the game's logger.
func (g *Game) Logger() *slog.Logger { return g.logger }

// Surface returns the virtual surface. It is only valid to draw into it
// from a view's Draw.
func (g *Game) Surface() *render.CellBuffer { return g.buf }

// Scaler returns the display scaler.
func (g *Game) Scaler() *display.Scaler { return g.scaler }

// ScreenState returns the active state.
func (g *Game) ScreenState() ScreenState { return g.state }

// Repeat returns the key-repeat policy currently applied to the input.
func (g *Game) Repeat() input.Repeat { return g.repeat }

// Running reports whether the loop has not been asked to stop.
func (g *Game) Running() bool { return g.running }

// SetScreenState makes state active and applies its key-repeat policy.
// Switching to a state without a view is a programming error and panics.
func (g *Game) SetScreenState(state ScreenState) {
	if state >= stateCount || g.views[state] == nil {
		panic(fmt.Sprintf("game: no view registered for screen state %v", state))
	}
	if state != g.state {
		g.logger.Debug("screen state", "from", g.state, "to", state)
	}
	g.state = state
	g.applyRepeat()
}

func (g *Game) applyRepeat() {
	if g.state.usesMenuRepeat() {
		g.repeat = g.opts.MenuRepeat
	} else {
		g.repeat = g.opts.GameRepeat
	}
	g.input.SetRepeat(g.repeat)
}

func (g *Game) active() View {
	v := g.views[g.state]
	if v == nil {
		panic(fmt.Sprintf("game: no view registered for screen state %v", g.state))
	}
	return v
}

// Stop asks the loop to end after the current step.
func (g *Game) Stop() { g.running = false }

// Resize recomputes the fit region for a window of w x h pixels. The next
// Draw uses it.
func (g *Game) Resize(w, h int) {
	g.scaler.Resize(w, h)
	g.logger.Debug("window resized", "width", w, "height", h, "region", g.scaler.Region())
}

// HandleInput drains the input queue once. Events queued behind a stop
// request are dropped.
func (g *Game) HandleInput() {
	for _, ev := range g.input.Poll() {
		if !g.running {
			return
		}
		switch ev.Kind {
		case input.EventQuit:
			g.logger.Info("quit requested")
			g.Stop()
		case input.EventResize:
			g.Resize(ev.Width, ev.Height)
		case input.EventKeyDown:
			if ev.Key == input.KeyEscape {
				g.shutdownNotice()
				g.Stop()
				continue
			}
			g.active().HandleInput(g.input.Pressed())
		}
	}
}

func (g *Game) shutdownNotice() {
	var attrs []any
	name := g.MapName()
	if name != "" {
		attrs = append(attrs, "map", name)
	}
	if g.opts.Console == nil {
		g.logger.Warn("shutdown complete", attrs...)
		return
	}
	g.logger.Debug("shutdown complete", attrs...)
	if name != "" {
		fmt.Fprintf(g.opts.Console, "shutdown complete (map %s)\n", name)
		return
	}
	fmt.Fprintln(g.opts.Console, "shutdown complete")
}

// Update advances the active view by dt seconds.
func (g *Game) Update(dt float64) {
	g.active().Update(dt)
}

// Draw renders the active view into the virtual surface and presents it.
func (g *Game) Draw() {
	g.buf.Clear()
	g.active().Draw(g.buf)
	g.window.Present(g.buf, g.scaler.Region())
}

// Frame runs one iteration: input, then update and draw unless input asked
// to stop. It returns ErrQuit once the loop is over.
func (g *Game) Frame(dt float64) error {
	if !g.running {
		return ErrQuit
	}
	g.HandleInput()
	if !g.running {
		return ErrQuit
	}
	g.Update(dt)
	g.Draw()
	return nil
}

// Run loops until quit, escape or ctx is done. Resources registered with
// OnClose are released before it returns and their errors are returned.
// Termination itself is not an error.
func (g *Game) Run(ctx context.Context) (err error) {
	defer func() {
		if cerr := g.Close(); err == nil {
			err = cerr
		}
	}()
	for {
		if ctx.Err() != nil {
			g.logger.Info("interrupted")
			g.Stop()
			return nil
		}
		if err := g.Frame(g.clock.Tick()); err != nil {
			if errors.Is(err, ErrQuit) {
				return nil
			}
			return err
		}
	}
}

// OnClose registers fn to run once on Close. Functions run in reverse
// registration order.
func (g *Game) OnClose(fn func() error) {
	g.closers = append(g.closers, fn)
}

// Close stops the loop and releases registered resources. Only the first
// call does any work.
func (g *Game) Close() error {
	g.closeOnce.Do(func() {
		g.Stop()
		var errs []error
		for i := len(g.closers) - 1; i >= 0; i-- {
			if err := g.closers[i](); err != nil {
				errs = append(errs, err)
			}
		}
		g.closeErr = errors.Join(errs...)
	})
	return g.closeErr
}

// SetMapView makes v the map the player is on and the view of the Game
// state.
func (g *Game) SetMapView(v MapView) {
	g.mapView = v
	g.views[StateGame] = v
	g.logger.Debug("map entered", "map", v.MapName())
}

// MapView returns the current map view, or nil.
func (g *Game) MapView() MapView { return g.mapView }

// MapName returns the current map's name, or "" when no map is active.
func (g *Game) MapName() string {
	if g.mapView == nil {
		return ""
	}
	return g.mapView.MapName()
}

// State returns the loaded game state, or nil before a slot is chosen.
func (g *Game) State() *session.State { return g.session }

// SetState replaces the loaded game state.
func (g *Game) SetState(s session.State) { g.session = &s }

// UpdateState applies fn to the loaded game state. It does nothing when no
// state is loaded.
func (g *Game) UpdateState(fn func(*session.State)) {
	if g.session != nil {
		fn(g.session)
	}
}

// Slot returns the save slot in play, 0 if none.
func (g *Game) Slot() int { return g.slot }

// SetSlot records the save slot in play.
func (g *Game) SetSlot(slot int) { g.slot = slot }
