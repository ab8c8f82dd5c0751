// Package atlas turns a render.CellBuffer into pixels on an ebiten image
// using a generated CP437 glyph atlas.
package atlas

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/rotj-game/rotj/internal/render"
)

const (
	GlyphWidth  = 16
	GlyphHeight = 16
	atlasCols   = 16
	atlasRows   = 16
)

// FontAtlas holds the CP437 glyph atlas and cached sub-images.
type FontAtlas struct {
	image  *ebiten.Image
	glyphs [256]*ebiten.Image
}

// NewFontAtlas generates the atlas at startup. Printable ASCII comes from
// basicfont.Face7x13; box drawing, shading and the few map symbols are drawn
// by hand.
func NewFontAtlas() *FontAtlas {
	img := image.NewNRGBA(image.Rect(0, 0, atlasCols*GlyphWidth, atlasRows*GlyphHeight))
	face := basicfont.Face7x13

	for code := 0; code < 256; code++ {
		cx, cy := cellOrigin(code)
		r := render.CP437ToUnicode[code]
		switch {
		case r >= 32 && r <= 126:
			drawFontGlyph(img, face, cx, cy, r)
		case isBoxChar(byte(code)):
			bc := boxChars[byte(code)]
			drawBoxGlyph(img, cx, cy, bc)
		default:
			drawSymbolGlyph(img, cx, cy, byte(code))
		}
	}

	eimg := ebiten.NewImageFromImage(img)
	a := &FontAtlas{image: eimg}
	for code := 0; code < 256; code++ {
		x, y := cellOrigin(code)
		a.glyphs[code] = eimg.SubImage(image.Rect(x, y, x+GlyphWidth, y+GlyphHeight)).(*ebiten.Image)
	}
	return a
}

func cellOrigin(code int) (int, int) {
	return (code % atlasCols) * GlyphWidth, (code / atlasCols) * GlyphHeight
}

// Glyph returns the cached sub-image for a CP437 character code.
func (a *FontAtlas) Glyph(code byte) *ebiten.Image {
	return a.glyphs[code]
}

// drawFontGlyph renders one 7x13 basicfont glyph centered in its cell.
func drawFontGlyph(img *image.NRGBA, face font.Face, cellX, cellY int, r rune) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
		Dot:  fixed.P(cellX+4, cellY+13),
	}
	d.DrawString(string(r))
}

// boxLinks lists which edges a single-line box glyph connects to.
type boxLinks struct{ left, right, top, bottom bool }

var boxChars = map[byte]boxLinks{
	179: {top: true, bottom: true},                          // │
	180: {left: true, top: true, bottom: true},              // ┤
	191: {left: true, bottom: true},                         // ┐
	192: {right: true, top: true},                           // └
	193: {left: true, right: true, top: true},               // ┴
	194: {left: true, right: true, bottom: true},            // ┬
	195: {right: true, top: true, bottom: true},             // ├
	196: {left: true, right: true},                          // ─
	197: {left: true, right: true, top: true, bottom: true}, // ┼
	217: {left: true, top: true},                            // ┘
	218: {right: true, bottom: true},                        // ┌
}

func isBoxChar(code byte) bool {
	_, ok := boxChars[code]
	return ok
}

// drawBoxGlyph draws 2-pixel lines from the cell center to each linked edge.
func drawBoxGlyph(img *image.NRGBA, cellX, cellY int, l boxLinks) {
	cx := cellX + 7
	cy := cellY + 7
	if l.left {
		fillRect(img, cellX, cy, cx+2, cy+2)
	}
	if l.right {
		fillRect(img, cx, cy, cellX+GlyphWidth, cy+2)
	}
	if l.top {
		fillRect(img, cx, cellY, cx+2, cy+2)
	}
	if l.bottom {
		fillRect(img, cx, cy, cx+2, cellY+GlyphHeight)
	}
}

// drawSymbolGlyph draws shading blocks and map symbols.
func drawSymbolGlyph(img *image.NRGBA, cellX, cellY int, code byte) {
	switch code {
	case 176, 177, 178: // ░ ▒ ▓
		shade(img, cellX, cellY, code)
	case 219: // █
		fillRect(img, cellX, cellY, cellX+GlyphWidth, cellY+GlyphHeight)
	case 220: // ▄
		fillRect(img, cellX, cellY+GlyphHeight/2, cellX+GlyphWidth, cellY+GlyphHeight)
	case 223: // ▀
		fillRect(img, cellX, cellY, cellX+GlyphWidth, cellY+GlyphHeight/2)
	case 254: // ■
		fillRect(img, cellX+4, cellY+4, cellX+12, cellY+12)
	case 5: // ♣ tree: round crown on a trunk
		fillRect(img, cellX+5, cellY+2, cellX+11, cellY+9)
		fillRect(img, cellX+3, cellY+4, cellX+13, cellY+8)
		fillRect(img, cellX+7, cellY+9, cellX+9, cellY+14)
	case 127: // ⌂ house: roof and walls
		for i := 0; i < 6; i++ {
			fillRect(img, cellX+7-i, cellY+2+i, cellX+9+i, cellY+3+i)
		}
		fillRect(img, cellX+3, cellY+8, cellX+13, cellY+14)
	case 1, 2: // ☺ ☻ people: a head on shoulders, hollow or solid
		disc(img, cellX+8, cellY+5, 4, code == 1)
		fillRect(img, cellX+3, cellY+10, cellX+13, cellY+15)
	case 15: // ☼ chest: lid, body and lock
		fillRect(img, cellX+2, cellY+5, cellX+14, cellY+7)
		fillRect(img, cellX+3, cellY+8, cellX+13, cellY+14)
		for y := cellY + 9; y < cellY+11; y++ {
			img.SetNRGBA(cellX+7, y, color.NRGBA{})
			img.SetNRGBA(cellX+8, y, color.NRGBA{})
		}
	case 16: // ► cursor
		for i := 0; i < 6; i++ {
			fillRect(img, cellX+4, cellY+2+i, cellX+5+2*i, cellY+3+i)
			fillRect(img, cellX+4, cellY+13-i, cellX+5+2*i, cellY+14-i)
		}
	case 247: // ≈ water: two wave rows
		for x := 0; x < GlyphWidth; x++ {
			dy := 0
			if (x/2)%2 == 1 {
				dy = 1
			}
			img.SetNRGBA(cellX+x, cellY+5+dy, white)
			img.SetNRGBA(cellX+x, cellY+10+dy, white)
		}
	}
}

func shade(img *image.NRGBA, cellX, cellY int, code byte) {
	for y := 0; y < GlyphHeight; y++ {
		for x := 0; x < GlyphWidth; x++ {
			var on bool
			switch code {
			case 176:
				on = (x+y)%4 == 0
			case 177:
				on = (x+y)%2 == 0
			default:
				on = (x+y)%4 != 0
			}
			if on {
				img.SetNRGBA(cellX+x, cellY+y, white)
			}
		}
	}
}

// disc fills a circle of radius r around (cx, cy). hollow keeps only the
// outer ring.
func disc(img *image.NRGBA, cx, cy, r int, hollow bool) {
	for y := -r; y <= r; y++ {
		for x := -r; x <= r; x++ {
			d := x*x + y*y
			if d > r*r || hollow && d < (r-1)*(r-1) {
				continue
			}
			img.SetNRGBA(cx+x, cy+y, white)
		}
	}
}

var white = color.NRGBA{255, 255, 255, 255}

func fillRect(img *image.NRGBA, x0, y0, x1, y1 int) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			img.SetNRGBA(x, y, white)
		}
	}
}
