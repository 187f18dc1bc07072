// Package consolebitmap renders boolean pixel bitmaps as rows of Unicode
// glyphs, packing each cell of pixels into a single character so that a
// terminal can show more than one pixel per character cell.
package consolebitmap

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

/*
Encoding describes one character set that can stand in for a block of pixels.
Each glyph covers a cell of Cols() by Rows() pixels. The packing engine reads
a cell left-right, top-bottom and sets bit row*Cols()+col of the cell's code
for every lit pixel. The code is passed through Translate and the result is
handed to Glyph.

Implementations must be stateless: Translate and Glyph are pure and Glyph must
return a rune for every code in [0, 2^(Cols()*Rows())).
*/
type Encoding interface {
	Cols() int
	Rows() int
	Translate(code uint) uint
	Glyph(code uint) rune
}

// Identity provides the identity Translate for encodings whose glyph order
// already matches the packing order. Embed it.
type Identity struct{}

func (Identity) Translate(code uint) uint {
	return code
}

// ErrUnknownEncoding is returned by Lookup for names that were never registered.
var ErrUnknownEncoding = errors.New("unknown encoding")

var encodings = map[string]Encoding{
	"block":     BlockElements{},
	"braille":   BraillePatterns{},
	"halfblock": HalfBlocks{},
}

// Lookup returns the encoding registered under name. Names are case insensitive.
func Lookup(name string) (Encoding, error) {
	enc, ok := encodings[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
	return enc, nil
}

// Names lists the registered encoding names in sorted order.
func Names() []string {
	names := make([]string, 0, len(encodings))
	for name := range encodings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
