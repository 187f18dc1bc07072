package consolebitmap

// BlockElements encodes 2x2 pixel cells as quadrant block elements. Eg:
//
//	+------+
//	|(0)(1)|
//	|(2)(3)|
//	+------+
//
// Bit 0 is the top-left pixel and bit 3 the bottom-right one.
type BlockElements struct {
	Identity
}

var quadrants = [16]rune{
	' ', '▘', '▝', '▀',
	'▖', '▌', '▞', '▛',
	'▗', '▚', '▐', '▜',
	'▄', '▙', '▟', '█',
}

func (BlockElements) Cols() int { return 2 }
func (BlockElements) Rows() int { return 2 }

// Glyph returns one of:
//
//	 ▘▝▀▖▌▞▛▗▚▐▜▄▙▟█
func (BlockElements) Glyph(code uint) rune {
	return quadrants[code&0xf]
}

// HalfBlocks encodes 1x2 pixel cells as upper and lower half blocks.
type HalfBlocks struct {
	Identity
}

var halves = [4]rune{' ', '▀', '▄', '█'}

func (HalfBlocks) Cols() int { return 1 }
func (HalfBlocks) Rows() int { return 2 }

func (HalfBlocks) Glyph(code uint) rune {
	return halves[code&0x3]
}
