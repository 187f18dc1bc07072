package consolebitmap

import (
	"fmt"
	"strings"
)

/*
Pack encodes a bitmap as a series of strings, one per band of enc.Rows() pixel
rows. Each string holds one glyph per enc.Cols() pixel columns of the band.

The width of a band is the length of its first row. Rows do not have to be the
same length: any pixel past the end of a row reads as unset, as do the missing
rows of a short final band and the missing columns of a narrow final cell.

Pack panics if enc declares a non-positive cell size.
*/
func Pack(bitmap [][]bool, enc Encoding) []string {
	cols, rows := enc.Cols(), enc.Rows()
	if cols <= 0 || rows <= 0 {
		panic(fmt.Sprintf("consolebitmap: invalid cell size %dx%d", cols, rows))
	}

	out := make([]string, 0, (len(bitmap)+rows-1)/rows)
	for top := 0; top < len(bitmap); top += rows {
		band := bitmap[top:min(top+rows, len(bitmap))]
		out = append(out, packBand(band, enc, cols))
	}
	return out
}

// PackAs is Pack with the encoding chosen at compile time. E's zero value
// must be a usable Encoding, which holds for every encoding in this package.
func PackAs[E Encoding](bitmap [][]bool) []string {
	var enc E
	return Pack(bitmap, enc)
}

func packBand(band [][]bool, enc Encoding, cols int) string {
	width := len(band[0])

	var sb strings.Builder
	sb.Grow((width + cols - 1) / cols * 3)
	for left := 0; left < width; left += cols {
		var code uint
		for y, line := range band {
			code |= packLine(line, left, cols) << uint(y*cols)
		}
		sb.WriteRune(enc.Glyph(enc.Translate(code)))
	}
	return sb.String()
}

// packLine packs line[left:left+cols] into the low bits of a code, bit i
// holding line[left+i]. Positions past the end of line stay unset.
func packLine(line []bool, left, cols int) uint {
	var bits uint
	for i := 0; i < cols && left+i < len(line); i++ {
		if line[left+i] {
			bits |= 1 << uint(i)
		}
	}
	return bits
}
