package consolebitmap

import (
	"io"
)

type Option func(enc *Encoder)

// WithInvertedPixels flips every pixel before encoding. Positions that a
// ragged row does not store are not pixels and stay unset.
func WithInvertedPixels() Option {
	return func(enc *Encoder) {
		enc.invert = true
	}
}

// WithLineEnding sets what is written after each band. Defaults to "\n".
func WithLineEnding(eol string) Option {
	return func(enc *Encoder) {
		enc.eol = eol
	}
}

// Encoder writes bitmaps to an io.Writer as lines of glyphs.
type Encoder struct {
	writer   io.Writer // Output
	encoding Encoding
	invert   bool   // Invert pixels
	eol      string // Band terminator
}

func NewEncoder(w io.Writer, encoding Encoding, opts ...Option) *Encoder {
	enc := Encoder{
		writer:   w,
		encoding: encoding,
		eol:      "\n",
	}
	for _, opt := range opts {
		opt(&enc)
	}
	return &enc
}

// Encode writes bitmap with the given encoding and default options.
func Encode(w io.Writer, bitmap [][]bool, encoding Encoding) error {
	return NewEncoder(w, encoding).Encode(bitmap)
}

// Encode packs the bitmap and writes one line per band.
func (enc *Encoder) Encode(bitmap [][]bool) error {
	if enc.invert {
		bitmap = invert(bitmap)
	}
	for _, band := range Pack(bitmap, enc.encoding) {
		if _, err := io.WriteString(enc.writer, band+enc.eol); err != nil {
			return err
		}
	}
	return nil
}

func invert(bitmap [][]bool) [][]bool {
	out := make([][]bool, len(bitmap))
	for y, row := range bitmap {
		out[y] = make([]bool, len(row))
		for x, px := range row {
			out[y][x] = !px
		}
	}
	return out
}
