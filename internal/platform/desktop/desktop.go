// Package desktop hosts the game in an ebiten window. It turns ebiten key
// state into input events and shows the virtual surface letterboxed inside
// the window.
package desktop

import (
	"context"
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/rotj-game/rotj/internal/display"
	"github.com/rotj-game/rotj/internal/game"
	"github.com/rotj-game/rotj/internal/input"
	"github.com/rotj-game/rotj/internal/render"
	"github.com/rotj-game/rotj/internal/render/atlas"
)

// keymap binds ebiten keys to game keys. WASD doubles the arrows.
var keymap = map[ebiten.Key]input.Key{
	ebiten.KeyArrowUp:    input.KeyUp,
	ebiten.KeyW:          input.KeyUp,
	ebiten.KeyArrowDown:  input.KeyDown,
	ebiten.KeyArrowLeft:  input.KeyLeft,
	ebiten.KeyA:          input.KeyLeft,
	ebiten.KeyArrowRight: input.KeyRight,
	ebiten.KeyD:          input.KeyRight,
	ebiten.KeyEnter:      input.KeyEnter,
	ebiten.KeySpace:      input.KeySpace,
	ebiten.KeyEscape:     input.KeyEscape,
	ebiten.KeyBackspace:  input.KeyBackspace,
	ebiten.KeyC:          input.KeyC,
	ebiten.KeyE:          input.KeyE,
	ebiten.KeyS:          input.KeyS,
	ebiten.KeyX:          input.KeyX,
	ebiten.KeyZ:          input.KeyZ,
}

// Input reads the keyboard once per tick.
type Input struct {
	tps     int
	repeat  input.Repeat
	pressed input.KeySet
	queue   []input.Event
	keys    []ebiten.Key
}

func NewInput(tps int) *Input {
	return &Input{tps: tps}
}

// Queue appends an event that did not come from the keyboard.
func (in *Input) Queue(ev input.Event) {
	in.queue = append(in.queue, ev)
}

func (in *Input) Poll() []input.Event {
	events := in.queue
	in.queue = nil

	if ebiten.IsWindowBeingClosed() {
		events = append(events, input.Quit())
	}

	in.pressed = 0
	in.keys = inpututil.AppendPressedKeys(in.keys[:0])
	for _, k := range in.keys {
		key, ok := keymap[k]
		if !ok {
			continue
		}
		in.pressed = in.pressed.With(key)
		if in.repeat.Fires(inpututil.KeyPressDuration(k), in.tps) {
			events = append(events, input.Press(key))
		}
	}
	in.keys = inpututil.AppendJustReleasedKeys(in.keys[:0])
	for _, k := range in.keys {
		if key, ok := keymap[k]; ok {
			events = append(events, input.Release(key))
		}
	}
	return events
}

func (in *Input) Pressed() input.KeySet { return in.pressed }

func (in *Input) SetRepeat(r input.Repeat) { in.repeat = r }

// Window keeps the last presented frame as an image of virtual size.
type Window struct {
	renderer *atlas.GridRenderer
	frame    *ebiten.Image
	region   display.FitRegion
	border   color.RGBA
}

// NewWindow creates a window for a cols x rows surface of cellW x cellH
// pixel cells. border is the palette index of the letterbox bars.
func NewWindow(cols, rows, cellW, cellH int, border uint8) *Window {
	return &Window{
		renderer: atlas.NewGridRenderer(atlas.NewFontAtlas(), cellW, cellH),
		frame:    ebiten.NewImage(cols*cellW, rows*cellH),
		border:   render.RGBA(border),
	}
}

func (w *Window) Present(buf *render.CellBuffer, region display.FitRegion) {
	w.frame.Clear()
	w.renderer.Draw(w.frame, buf)
	w.region = region
}

// draw clears screen to the border color and stretches the frame into the
// fit region.
func (w *Window) draw(screen *ebiten.Image) {
	screen.Fill(w.border)
	b := w.frame.Bounds()
	sx, sy, tx, ty := display.Stretch(b.Dx(), b.Dy(), w.region)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(sx, sy)
	op.GeoM.Translate(tx, ty)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(w.frame, op)
}

// Host adapts a game.Game to ebiten's Update/Draw/Layout loop.
type Host struct {
	ctx    context.Context
	game   *game.Game
	input  *Input
	window *Window
	tps    int
	winW   int
	winH   int
}

func (h *Host) Update() error {
	if h.ctx.Err() != nil {
		h.game.Logger().Info("interrupted")
		return ebiten.Termination
	}
	// Update runs at a fixed TPS, so one call is one tick.
	if err := h.game.Frame(1 / float64(h.tps)); err != nil {
		if errors.Is(err, game.ErrQuit) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

func (h *Host) Draw(screen *ebiten.Image) {
	h.window.draw(screen)
}

// Layout tracks the window size 1:1 and reports changes to the game as
// resize events.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != h.winW || outsideHeight != h.winH {
		h.winW, h.winH = outsideWidth, outsideHeight
		h.input.Queue(input.Resize(outsideWidth, outsideHeight))
	}
	return outsideWidth, outsideHeight
}

// Options describes the window to open.
type Options struct {
	Title        string
	Width        int
	Height       int
	Cols, Rows   int
	CellW, CellH int
	TPS          int
	Border       uint8
}

// New creates the platform input and window a game.Game needs.
func New(opts Options) (*Input, *Window) {
	return NewInput(opts.TPS), NewWindow(opts.Cols, opts.Rows, opts.CellW, opts.CellH, opts.Border)
}

// Run opens the window and drives g until it quits, the window closes or
// ctx is done. g must have been created with in and win. The error from
// closing g is returned when the loop itself ended cleanly.
func Run(ctx context.Context, g *game.Game, in *Input, win *Window, opts Options) (err error) {
	defer func() {
		if cerr := g.Close(); err == nil {
			err = cerr
		}
	}()

	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(opts.TPS)

	h := &Host{
		ctx:    ctx,
		game:   g,
		input:  in,
		window: win,
		tps:    opts.TPS,
		winW:   opts.Width,
		winH:   opts.Height,
	}
	if err = ebiten.RunGame(h); errors.Is(err, ebiten.Termination) {
		err = nil
	}
	return err
}
