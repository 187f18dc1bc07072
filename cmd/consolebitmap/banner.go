package main

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// rasterize draws label in white on black with the 7x13 basic font, one line
// of the image per line of the label.
func rasterize(label string) *image.Gray {
	face := basicfont.Face7x13
	metrics := face.Metrics()
	lineHeight := metrics.Height.Ceil()

	lines := strings.Split(label, "\n")
	var width int
	for _, line := range lines {
		width = max(width, font.MeasureString(face, line).Ceil())
	}

	img := image.NewGray(image.Rect(0, 0, width, len(lines)*lineHeight))
	draw.Draw(img, img.Bounds(), image.Black, image.Point{}, draw.Src)
	d := &font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: face,
	}
	for i, line := range lines {
		d.Dot = fixed.P(0, i*lineHeight+metrics.Ascent.Ceil())
		d.DrawString(line)
	}
	return img
}

// banner renders label as a bitmap scaled by an integer factor.
func banner(label string, scale int, invert bool) [][]bool {
	var img image.Image = rasterize(label)
	if scale > 1 {
		b := img.Bounds()
		img = resize.Resize(uint(b.Dx()*scale), uint(b.Dy()*scale), img, resize.NearestNeighbor)
	}
	if invert {
		img = imaging.Invert(img)
	}
	return threshold(img)
}

// threshold converts an image to a bitmap. Pixels at least half as bright as
// white are lit.
func threshold(img image.Image) [][]bool {
	bounds := img.Bounds()
	bitmap := make([][]bool, bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		row := make([]bool, bounds.Dx())
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			gray := color.GrayModel.Convert(img.At(x, y)).(color.Gray)
			row[x-bounds.Min.X] = gray.Y >= 0x80
		}
		bitmap[y-bounds.Min.Y] = row
	}
	return bitmap
}

// fitScale returns the largest scale no bigger than scale at which a banner
// of the given pixel width fits in columns glyphs of cols pixels each.
func fitScale(width, scale, columns, cols int) int {
	for scale > 1 && (width*scale+cols-1)/cols > columns {
		scale--
	}
	return scale
}
