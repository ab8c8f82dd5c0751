package render

// CP437ToUnicode maps each code page 437 byte to its Unicode rune.
var CP437ToUnicode = buildCP437()

const (
	cp437Low  = "\x00☺☻♥♦♣♠•◘○◙♂♀♪♫☼►◄↕‼¶§▬↨↑↓→←∟↔▲▼"
	cp437High = "ÇüéâäàåçêëèïîìÄÅÉæÆôöòûùÿÖÜ¢£¥₧ƒáíóúñÑªº¿⌐¬½¼¡«»" +
		"░▒▓│┤╡╢╖╕╣║╗╝╜╛┐└┴┬├─┼╞╟╚╔╩╦╠═╬╧╨╤╥╙╘╒╓╫╪┘┌█▄▌▐▀" +
		"αßΓπΣσµτΦΘΩδ∞φε∩≡±≥≤⌠⌡÷≈°∙·√ⁿ²■ "
)

func buildCP437() [256]rune {
	var t [256]rune
	i := 0
	for _, r := range cp437Low {
		t[i] = r
		i++
	}
	for ; i < 127; i++ {
		t[i] = rune(i)
	}
	t[127] = '⌂'
	i = 128
	for _, r := range cp437High {
		t[i] = r
		i++
	}
	return t
}
