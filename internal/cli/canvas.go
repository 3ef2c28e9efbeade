package cli

import (
	"image"
	"strings"

	"github.com/matzehuels/miniworld/pkg/sketch"
)

// A terminal cell shows one braille character: a 2x4 grid of dots. Each dot
// covers dotScale x dotScale pixels of the drawing buffer.
const (
	dotsPerCellX = 2
	dotsPerCellY = 4
	dotScale     = 4

	// alphaThreshold is the minimum alpha for a pixel to light its dot.
	alphaThreshold = 0x40
)

// brailleBits maps a dot position within a cell to its bit in the
// U+2800 braille block.
var brailleBits = [dotsPerCellY][dotsPerCellX]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// canvasPixels returns the buffer size for a canvas of cols x rows cells.
func canvasPixels(cols, rows int) (width, height int) {
	return cols * dotsPerCellX * dotScale, rows * dotsPerCellY * dotScale
}

// cellPoint returns the buffer pixel at the center of cell (col, row).
func cellPoint(col, row int) sketch.Point {
	return sketch.Pt(
		float64(col*dotsPerCellX*dotScale+dotsPerCellX*dotScale/2),
		float64(row*dotsPerCellY*dotScale+dotsPerCellY*dotScale/2),
	)
}

// braille renders img as rows of braille characters, cols cells wide. Empty
// cells are spaces.
func braille(img *image.RGBA, cols, rows int) []string {
	lines := make([]string, rows)
	var b strings.Builder
	for row := range rows {
		b.Reset()
		for col := range cols {
			var r rune
			for dy := range dotsPerCellY {
				for dx := range dotsPerCellX {
					if dotSet(img, col*dotsPerCellX+dx, row*dotsPerCellY+dy) {
						r |= brailleBits[dy][dx]
					}
				}
			}
			if r == 0 {
				b.WriteByte(' ')
				continue
			}
			b.WriteRune(0x2800 + r)
		}
		lines[row] = b.String()
	}
	return lines
}

// dotSet reports whether any pixel covered by dot (x, y) is visible.
func dotSet(img *image.RGBA, x, y int) bool {
	bounds := img.Bounds()
	for py := y * dotScale; py < (y+1)*dotScale; py++ {
		for px := x * dotScale; px < (x+1)*dotScale; px++ {
			if !(image.Point{X: px, Y: py}).In(bounds) {
				continue
			}
			if img.RGBAAt(px, py).A >= alphaThreshold {
				return true
			}
		}
	}
	return false
}
