package battle

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/rotj-game/rotj/internal/render"
)

const (
	// PanelWidth is the width of a warlord panel in cells.
	PanelWidth = 10
	// PanelHeight is the height of a warlord panel in cells.
	PanelHeight = 3
	// nameChars is the width of the name and soldier text areas.
	nameChars = 8
)

// Side decides which edge of the panel the text hugs.
type Side uint8

const (
	Ally Side = iota
	Enemy
)

// Panel shows a warlord's name and soldier count during battle.
type Panel struct {
	Name     string
	Soldiers int
	Side     Side
	lines    []string
}

// NewPanel creates a panel for a warlord.
func NewPanel(name string, soldiers int, side Side) *Panel {
	title := cases.Title(language.Und).String(name)
	return &Panel{
		Name:     name,
		Soldiers: soldiers,
		Side:     side,
		lines:    strings.Split(Hyphenate(title, nameChars), "\n"),
	}
}

// SetSoldiers updates the displayed soldier count.
func (p *Panel) SetSoldiers(n int) { p.Soldiers = max(n, 0) }

// Draw paints the panel with its top-left corner at (x, y).
func (p *Panel) Draw(buf *render.CellBuffer, x, y int) {
	buf.Fill(x, y, PanelWidth, PanelHeight, ' ', render.ColorWhite, render.ColorBlack)
	textX := x
	if p.Side == Enemy {
		textX = x + PanelWidth - nameChars
	}
	for i, line := range p.lines {
		if i >= 2 {
			break
		}
		buf.WriteString(textX, y+i, line, render.ColorWhite, render.ColorBlack)
	}
	fg := uint8(render.ColorWhite)
	if p.Soldiers == 0 {
		fg = render.ColorLightRed
	}
	buf.WriteRight(textX+nameChars-1, y+2, strconv.Itoa(p.Soldiers), fg, render.ColorBlack)
}

// Hyphenate splits text longer than chars onto two lines, breaking after
// chars-1 runes and adding a hyphen unless one already sits at the break.
func Hyphenate(text string, chars int) string {
	r := []rune(text)
	if len(r) <= chars {
		return text
	}
	head := string(r[:chars-1])
	hyphen := "-"
	if strings.ContainsRune(string(r[chars-2:chars]), '-') {
		hyphen = ""
	}
	return head + hyphen + "\n" + string(r[chars-1:])
}
