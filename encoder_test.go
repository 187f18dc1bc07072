package consolebitmap_test

import (
	"bytes"
	"errors"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	. "github.com/kevin-cantwell/consolebitmap"
)

type failingWriter struct{ n int }

var errFull = errors.New("full")

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.n == 0 {
		return 0, errFull
	}
	w.n--
	return len(p), nil
}

var _ = Describe("Encoder", func() {
	var (
		buf    bytes.Buffer
		bitmap [][]bool
	)

	BeforeEach(func() {
		buf.Reset()
		bitmap = ParseBitmap('#', "#.", ".#", "##")
	})

	It("writes one line per band", func() {
		Expect(Encode(&buf, bitmap, BlockElements{})).To(Succeed())
		Expect(buf.String()).To(Equal("▚\n▀\n"))
	})

	It("writes nothing for an empty bitmap", func() {
		Expect(Encode(&buf, nil, BraillePatterns{})).To(Succeed())
		Expect(buf.Len()).To(BeZero())
	})

	It("inverts stored pixels only", func() {
		enc := NewEncoder(&buf, BlockElements{}, WithInvertedPixels())
		Expect(enc.Encode(ParseBitmap('#', "#.", ".#", "#"))).To(Succeed())
		Expect(buf.String()).To(Equal("▞\n \n"))
	})

	It("does not modify the caller's bitmap when inverting", func() {
		enc := NewEncoder(&buf, BlockElements{}, WithInvertedPixels())
		Expect(enc.Encode(bitmap)).To(Succeed())
		Expect(bitmap).To(Equal(ParseBitmap('#', "#.", ".#", "##")))
	})

	It("uses the configured line ending", func() {
		enc := NewEncoder(&buf, BlockElements{}, WithLineEnding("\r\n"))
		Expect(enc.Encode(bitmap)).To(Succeed())
		Expect(buf.String()).To(Equal("▚\r\n▀\r\n"))
	})

	It("returns write errors", func() {
		err := Encode(&failingWriter{n: 1}, bitmap, BlockElements{})
		Expect(err).To(MatchError(errFull))
	})
})
