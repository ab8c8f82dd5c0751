package render

import "image/color"

// CGA 16-color palette indices.
const (
	ColorBlack        = 0
	ColorBlue         = 1
	ColorGreen        = 2
	ColorCyan         = 3
	ColorRed          = 4
	ColorMagenta      = 5
	ColorBrown        = 6
	ColorLightGray    = 7
	ColorDarkGray     = 8
	ColorLightBlue    = 9
	ColorLightGreen   = 10
	ColorLightCyan    = 11
	ColorLightRed     = 12
	ColorLightMagenta = 13
	ColorYellow       = 14
	ColorWhite        = 15
)

// Palette contains the classic CGA 16-color palette.
var Palette = [16]color.RGBA{
	{0, 0, 0, 255},       // Black
	{0, 0, 170, 255},     // Blue
	{0, 170, 0, 255},     // Green
	{0, 170, 170, 255},   // Cyan
	{170, 0, 0, 255},     // Red
	{170, 0, 170, 255},   // Magenta
	{170, 85, 0, 255},    // Brown
	{170, 170, 170, 255}, // Light Gray
	{85, 85, 85, 255},    // Dark Gray
	{85, 85, 255, 255},   // Light Blue
	{85, 255, 85, 255},   // Light Green
	{85, 255, 255, 255},  // Light Cyan
	{255, 85, 85, 255},   // Light Red
	{255, 85, 255, 255},  // Light Magenta
	{255, 255, 85, 255},  // Yellow
	{255, 255, 255, 255}, // White
}

// RGBA returns the palette entry for idx; indexes past the palette wrap.
func RGBA(idx uint8) color.RGBA {
	return Palette[idx%uint8(len(Palette))]
}
