package consolebitmap_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	. "github.com/kevin-cantwell/consolebitmap"
)

var _ = Describe("BlockElements", func() {
	enc := BlockElements{}

	It("is a 2x2 encoding", func() {
		Expect(enc.Cols()).To(Equal(2))
		Expect(enc.Rows()).To(Equal(2))
	})

	It("does not reorder bits", func() {
		for code := uint(0); code < 16; code++ {
			Expect(enc.Translate(code)).To(Equal(code))
		}
	})

	It("maps every code to a distinct glyph", func() {
		seen := map[rune]uint{}
		for code := uint(0); code < 16; code++ {
			r := enc.Glyph(code)
			Expect(seen).NotTo(HaveKey(r))
			seen[r] = code
		}
		Expect(seen).To(HaveLen(16))
	})

	It("lights the quadrant of each bit", func() {
		Expect(enc.Glyph(0)).To(Equal(' '))
		Expect(enc.Glyph(1)).To(Equal('▘'))
		Expect(enc.Glyph(2)).To(Equal('▝'))
		Expect(enc.Glyph(4)).To(Equal('▖'))
		Expect(enc.Glyph(8)).To(Equal('▗'))
		Expect(enc.Glyph(3)).To(Equal('▀'))
		Expect(enc.Glyph(12)).To(Equal('▄'))
		Expect(enc.Glyph(5)).To(Equal('▌'))
		Expect(enc.Glyph(10)).To(Equal('▐'))
		Expect(enc.Glyph(15)).To(Equal('█'))
	})
})

var _ = Describe("HalfBlocks", func() {
	enc := HalfBlocks{}

	It("is a 1x2 encoding", func() {
		Expect(enc.Cols()).To(Equal(1))
		Expect(enc.Rows()).To(Equal(2))
	})

	It("renders one glyph per pixel column", func() {
		bitmap := ParseBitmap('#', "#.#", "..#", "#")
		Expect(Pack(bitmap, enc)).To(Equal([]string{"▀ █", "▀"}))
	})
})
