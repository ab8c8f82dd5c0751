// Package render holds the virtual surface every view draws into: a fixed
// grid of CP437 character cells independent of the window size.
package render

import "strings"

// Cell represents a single character cell on screen.
type Cell struct {
	Glyph byte  // CP437 code (0-255)
	FG    uint8 // Foreground color index (0-15)
	BG    uint8 // Background color index (0-15)
}

var blank = Cell{Glyph: ' ', FG: ColorWhite, BG: ColorBlack}

// CellBuffer is a 2D grid of character cells.
type CellBuffer struct {
	Cols  int
	Rows  int
	Cells []Cell
}

// NewCellBuffer creates a new cell buffer filled with blank cells.
func NewCellBuffer(cols, rows int) *CellBuffer {
	b := &CellBuffer{Cols: cols, Rows: rows, Cells: make([]Cell, cols*rows)}
	b.Clear()
	return b
}

// Set writes a single cell at (x, y). Out-of-bounds writes are ignored.
func (b *CellBuffer) Set(x, y int, glyph byte, fg, bg uint8) {
	if x >= 0 && x < b.Cols && y >= 0 && y < b.Rows {
		b.Cells[y*b.Cols+x] = Cell{Glyph: glyph, FG: fg, BG: bg}
	}
}

// Get reads a single cell at (x, y). Out-of-bounds reads return a zero cell.
func (b *CellBuffer) Get(x, y int) Cell {
	if x >= 0 && x < b.Cols && y >= 0 && y < b.Rows {
		return b.Cells[y*b.Cols+x]
	}
	return Cell{}
}

// Clear resets all cells to blank (space on black).
func (b *CellBuffer) Clear() {
	for i := range b.Cells {
		b.Cells[i] = blank
	}
}

// WriteString writes s starting at (x, y). Each rune occupies one cell;
// runes outside CP437's single-byte range become '?'.
func (b *CellBuffer) WriteString(x, y int, s string, fg, bg uint8) {
	offset := 0
	for _, ch := range s {
		if ch > 255 {
			ch = '?'
		}
		b.Set(x+offset, y, byte(ch), fg, bg)
		offset++
	}
}

// WriteRight writes s so that its last rune lands on column right.
func (b *CellBuffer) WriteRight(right, y int, s string, fg, bg uint8) {
	b.WriteString(right-len([]rune(s))+1, y, s, fg, bg)
}

// WriteCentered writes s horizontally centered on row y.
func (b *CellBuffer) WriteCentered(y int, s string, fg, bg uint8) {
	b.WriteString((b.Cols-len([]rune(s)))/2, y, s, fg, bg)
}

// Fill paints a w x h rectangle with one cell.
func (b *CellBuffer) Fill(x, y, w, h int, glyph byte, fg, bg uint8) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			b.Set(col, row, glyph, fg, bg)
		}
	}
}

// Box draws a single-line frame with a blank interior.
func (b *CellBuffer) Box(x, y, w, h int, fg, bg uint8) {
	if w < 2 || h < 2 {
		return
	}
	b.Fill(x, y, w, h, ' ', fg, bg)
	for col := x + 1; col < x+w-1; col++ {
		b.Set(col, y, 196, fg, bg)     // ─
		b.Set(col, y+h-1, 196, fg, bg) // ─
	}
	for row := y + 1; row < y+h-1; row++ {
		b.Set(x, row, 179, fg, bg)     // │
		b.Set(x+w-1, row, 179, fg, bg) // │
	}
	b.Set(x, y, 218, fg, bg)         // ┌
	b.Set(x+w-1, y, 191, fg, bg)     // ┐
	b.Set(x, y+h-1, 192, fg, bg)     // └
	b.Set(x+w-1, y+h-1, 217, fg, bg) // ┘
}

// String dumps the glyphs as text, one line per row, with CP437 codes
// mapped to Unicode. Trailing spaces are trimmed.
func (b *CellBuffer) String() string {
	var sb strings.Builder
	for y := 0; y < b.Rows; y++ {
		var line strings.Builder
		for x := 0; x < b.Cols; x++ {
			line.WriteRune(CP437ToUnicode[b.Cells[y*b.Cols+x].Glyph])
		}
		sb.WriteString(strings.TrimRight(line.String(), " "))
		if y < b.Rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
