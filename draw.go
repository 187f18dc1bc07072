package consolebitmap

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Pixel is any value that can stand for an on/off pixel. Non-zero values are lit.
type Pixel interface {
	~bool | constraints.Integer
}

// Draw converts rows of pixels into a boolean bitmap and packs it with enc.
func Draw[T Pixel](rows [][]T, enc Encoding) []string {
	bitmap := make([][]bool, len(rows))
	for y, row := range rows {
		bitmap[y] = lit(row)
	}
	return Pack(bitmap, enc)
}

// DrawSeq is Draw for rows produced by an iterator.
func DrawSeq[T Pixel](rows iter.Seq[iter.Seq[T]], enc Encoding) []string {
	var bitmap [][]bool
	for row := range rows {
		var line []bool
		var zero T
		for px := range row {
			line = append(line, px != zero)
		}
		bitmap = append(bitmap, line)
	}
	return Pack(bitmap, enc)
}

func lit[T Pixel](row []T) []bool {
	var zero T
	line := make([]bool, len(row))
	for x, px := range row {
		line[x] = px != zero
	}
	return line
}

// ParseBitmap builds a bitmap from representative strings. Within the strings
// the set rune marks a lit pixel and any other rune an unset one. Each row is
// as long as its string is in runes; lines are not padded.
func ParseBitmap(set rune, lines ...string) [][]bool {
	bitmap := make([][]bool, len(lines))
	for y, line := range lines {
		row := make([]bool, 0, len(line))
		for _, r := range line {
			row = append(row, r == set)
		}
		bitmap[y] = row
	}
	return bitmap
}
