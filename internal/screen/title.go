package screen

import (
	"github.com/rotj-game/rotj/internal/game"
	"github.com/rotj-game/rotj/internal/input"
	"github.com/rotj-game/rotj/internal/render"
)

var titleArt = []string{
	"R  O  T  J",
	"~~~~~~~~~~",
}

// Title is the first screen. Any confirm key opens the slot menu.
type Title struct {
	d       Director
	elapsed float64
}

func NewTitle(d Director) *Title {
	return &Title{d: d}
}

func (t *Title) Update(dt float64) { t.elapsed += dt }

func (t *Title) Draw(buf *render.CellBuffer) {
	buf.Box(1, 2, buf.Cols-2, 6, render.ColorYellow, render.ColorBlack)
	for i, line := range titleArt {
		buf.WriteCentered(4+i, line, render.ColorYellow, render.ColorBlack)
	}
	buf.WriteCentered(10, "A TALE OF THE", render.ColorLightGray, render.ColorBlack)
	buf.WriteCentered(11, "NEPHITE WARS", render.ColorLightGray, render.ColorBlack)
	drawPrompt(buf, buf.Rows-3, "PRESS ENTER", t.elapsed)
}

func (t *Title) HandleInput(pressed input.KeySet) {
	if pressed.Confirm() {
		t.d.SetScreenState(game.StateMenu)
	}
}
