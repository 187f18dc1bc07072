package consolebitmap

// BraillePatterns encodes 2x4 pixel cells as 8 dot braille patterns. The
// packing engine numbers the pixels of a cell left-right, top-bottom:
//
//	+------+
//	|(0)(1)|
//	|(2)(3)|
//	|(4)(5)|
//	|(6)(7)|
//	+------+
//
// Unicode numbers the dots column by column instead, with the bottom row
// tacked on last, and dot n sets bit n-1 of the offset from U+2800:
//
//	+------+
//	|(1)(4)|
//	|(2)(5)|
//	|(3)(6)|
//	|(7)(8)|
//	+------+
//
// See https://en.wikipedia.org/wiki/Braille_Patterns#Identifying.2C_naming_and_ordering)
type BraillePatterns struct{}

const brailleBase = '\u2800'

// dotBits maps a packed pixel bit to the braille dot bit it lights.
var dotBits = [8]uint{0, 3, 1, 4, 2, 5, 6, 7}

func (BraillePatterns) Cols() int { return 2 }
func (BraillePatterns) Rows() int { return 4 }

// Translate reorders a packed cell into Unicode dot order.
func (BraillePatterns) Translate(code uint) uint {
	var dots uint
	for bit, dot := range dotBits {
		if code&(1<<uint(bit)) != 0 {
			dots |= 1 << dot
		}
	}
	return dots
}

// Untranslate is the inverse of Translate.
func (BraillePatterns) Untranslate(dots uint) uint {
	var code uint
	for bit, dot := range dotBits {
		if dots&(1<<dot) != 0 {
			code |= 1 << uint(bit)
		}
	}
	return code
}

// Glyph returns a unicode braille character. One of:
//
//	⠀⠁⠂⠃⠄⠅⠆⠇⠈⠉⠊⠋⠌⠍⠎⠏⠐⠑⠒⠓⠔⠕⠖⠗⠘⠙⠚⠛⠜⠝⠞⠟⠠⠡⠢⠣⠤⠥⠦⠧⠨⠩⠪⠫⠬⠭⠮⠯⠰⠱⠲⠳⠴⠵⠶⠷⠸⠹⠺⠻⠼⠽⠾⠿
//	⡀⡁⡂⡃⡄⡅⡆⡇⡈⡉⡊⡋⡌⡍⡎⡏⡐⡑⡒⡓⡔⡕⡖⡗⡘⡙⡚⡛⡜⡝⡞⡟⡠⡡⡢⡣⡤⡥⡦⡧⡨⡩⡪⡫⡬⡭⡮⡯⡰⡱⡲⡳⡴⡵⡶⡷⡸⡹⡺⡻⡼⡽⡾⡿
//	⢀⢁⢂⢃⢄⢅⢆⢇⢈⢉⢊⢋⢌⢍⢎⢏⢐⢑⢒⢓⢔⢕⢖⢗⢘⢙⢚⢛⢜⢝⢞⢟⢠⢡⢢⢣⢤⢥⢦⢧⢨⢩⢪⢫⢬⢭⢮⢯⢰⢱⢲⢳⢴⢵⢶⢷⢸⢹⢺⢻⢼⢽⢾⢿
//	⣀⣁⣂⣃⣄⣅⣆⣇⣈⣉⣊⣋⣌⣍⣎⣏⣐⣑⣒⣓⣔⣕⣖⣗⣘⣙⣚⣛⣜⣝⣞⣟⣠⣡⣢⣣⣤⣥⣦⣧⣨⣩⣪⣫⣬⣭⣮⣯⣰⣱⣲⣳⣴⣵⣶⣷⣸⣹⣺⣻⣼⣽⣾⣿
func (BraillePatterns) Glyph(dots uint) rune {
	return brailleBase + rune(dots&0xff)
}

// Decode recovers the packed pixel code behind a braille glyph. ok is false
// if r is not in the Braille Patterns block.
func (b BraillePatterns) Decode(r rune) (code uint, ok bool) {
	if r < brailleBase || r > brailleBase+0xff {
		return 0, false
	}
	return b.Untranslate(uint(r - brailleBase)), true
}
