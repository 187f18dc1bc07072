package consolebitmap_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	. "github.com/kevin-cantwell/consolebitmap"
)

var _ = Describe("BraillePatterns", func() {
	enc := BraillePatterns{}

	It("is a 2x4 encoding", func() {
		Expect(enc.Cols()).To(Equal(2))
		Expect(enc.Rows()).To(Equal(4))
	})

	It("moves each pixel to its braille dot", func() {
		// Pixel bits, left-right, top-bottom, and the dot each one lights.
		dots := []uint{0x01, 0x08, 0x02, 0x10, 0x04, 0x20, 0x40, 0x80}
		for bit, dot := range dots {
			Expect(enc.Translate(1 << uint(bit))).To(Equal(dot))
		}
	})

	It("translates every cell to a distinct pattern", func() {
		seen := map[uint]bool{}
		for code := uint(0); code < 256; code++ {
			dots := enc.Translate(code)
			Expect(dots).To(BeNumerically("<", 256))
			Expect(seen).NotTo(HaveKey(dots))
			seen[dots] = true
		}
	})

	It("decodes glyphs back to the packed pixels", func() {
		for code := uint(0); code < 256; code++ {
			r := enc.Glyph(enc.Translate(code))
			Expect(r).To(BeNumerically(">=", 0x2800))
			Expect(r).To(BeNumerically("<=", 0x28ff))
			got, ok := enc.Decode(r)
			Expect(ok).To(BeTrue())
			Expect(got).To(Equal(code))
		}
	})

	It("refuses to decode other runes", func() {
		_, ok := enc.Decode('#')
		Expect(ok).To(BeFalse())
		_, ok = enc.Decode(0x2900)
		Expect(ok).To(BeFalse())
	})

	It("renders the blank and full patterns", func() {
		Expect(enc.Glyph(enc.Translate(0))).To(Equal('\u2800'))
		Expect(enc.Glyph(enc.Translate(0xff))).To(Equal('⣿'))
	})

	It("renders a checkerboard", func() {
		bitmap := ParseBitmap('#',
			"#.#.",
			".#.#",
			"#.#.",
			".#.#",
		)
		Expect(Pack(bitmap, enc)).To(Equal([]string{"⢕⢕"}))
	})

	It("renders a short final band with the missing rows unset", func() {
		bitmap := ParseBitmap('#',
			"######   ###   ",
			"# ## ## # # # ##",
			"######   ###   #",
		)
		Expect(Pack(bitmap, enc)).To(Equal([]string{"⠯⠿⠽⠂⠪⠯⠂⠲"}))
	})
})
