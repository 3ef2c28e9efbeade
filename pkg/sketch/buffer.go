package sketch

import (
	"image"
	"io"

	"github.com/gogpu/gg"
)

// Point is a position in buffer pixels, origin at the top-left corner.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Pen is the fixed stroke style of a surface.
type Pen struct {
	Width float64 // line width in pixels
	Color string  // hex color, e.g. "#3E2723"
}

// DefaultPen is a 2px dark brown pen.
var DefaultPen = Pen{Width: 2, Color: "#3E2723"}

// Buffer is a transparent raster that line segments are drawn onto.
type Buffer struct {
	dc *gg.Context
}

// NewBuffer allocates a blank buffer. Non-positive dimensions are raised
// to one pixel.
func NewBuffer(width, height int) *Buffer {
	dc := gg.NewContext(max(width, 1), max(height, 1))
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)
	return &Buffer{dc: dc}
}

// Width returns the buffer width in pixels.
func (b *Buffer) Width() int { return b.dc.Width() }

// Height returns the buffer height in pixels.
func (b *Buffer) Height() int { return b.dc.Height() }

// Line draws the segment from a to b with pen.
func (b *Buffer) Line(from, to Point, pen Pen) error {
	b.dc.SetHexColor(pen.Color)
	b.dc.SetLineWidth(pen.Width)
	b.dc.MoveTo(from.X, from.Y)
	b.dc.LineTo(to.X, to.Y)
	return b.dc.Stroke()
}

// Clear resets every pixel to transparent.
func (b *Buffer) Clear() {
	b.dc.Clear()
}

// Image returns a snapshot of the buffer.
func (b *Buffer) Image() *image.RGBA {
	img := b.dc.Image()
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	bounds := img.Bounds()
	rgba := image.NewRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			rgba.Set(x, y, img.At(x, y))
		}
	}
	return rgba
}

// Blank reports whether no pixel has any coverage.
func (b *Buffer) Blank() bool {
	img := b.Image()
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			return false
		}
	}
	return true
}

// EncodePNG writes the buffer as a PNG image.
func (b *Buffer) EncodePNG(w io.Writer) error {
	return b.dc.EncodePNG(w)
}
