package cli

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/matzehuels/miniworld/pkg/sketch"
)

func TestCanvasPixels(t *testing.T) {
	w, h := canvasPixels(60, 12)
	if w != 60*2*dotScale || h != 12*4*dotScale {
		t.Errorf("canvasPixels(60, 12) = %d x %d", w, h)
	}
}

func TestCellPointInsideCell(t *testing.T) {
	p := cellPoint(3, 2)
	cellW, cellH := float64(dotsPerCellX*dotScale), float64(dotsPerCellY*dotScale)
	if p.X <= 3*cellW || p.X >= 4*cellW || p.Y <= 2*cellH || p.Y >= 3*cellH {
		t.Errorf("cellPoint(3, 2) = %+v, not inside the cell", p)
	}
}

func TestBrailleBlank(t *testing.T) {
	const cols, rows = 10, 3
	w, h := canvasPixels(cols, rows)
	s := sketch.NewSurface(w, h, sketch.DefaultPen)

	lines := braille(s.Image(), cols, rows)
	if len(lines) != rows {
		t.Fatalf("got %d lines, want %d", len(lines), rows)
	}
	for i, line := range lines {
		if line != strings.Repeat(" ", cols) {
			t.Errorf("line %d = %q, want blanks", i, line)
		}
	}
}

func TestBrailleStroke(t *testing.T) {
	const cols, rows = 10, 3
	w, h := canvasPixels(cols, rows)
	s := sketch.NewSurface(w, h, sketch.DefaultPen)

	// Horizontal stroke through the middle of the first cell row.
	s.Begin(cellPoint(0, 0))
	s.Extend(cellPoint(cols-1, 0))
	s.End()

	lines := braille(s.Image(), cols, rows)
	if n := utf8.RuneCountInString(lines[0]); n != cols {
		t.Fatalf("line 0 has %d cells, want %d", n, cols)
	}
	for i, r := range []rune(lines[0]) {
		if i > 0 && i < cols-1 && (r < 0x2800 || r > 0x28FF) {
			t.Errorf("cell %d = %q, want a braille dot pattern", i, r)
		}
	}
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) != "" {
			t.Errorf("row below the stroke = %q, want blanks", line)
		}
	}
}

func TestBrailleBits(t *testing.T) {
	seen := map[rune]bool{}
	for _, row := range brailleBits {
		for _, bit := range row {
			if seen[bit] {
				t.Errorf("bit %#x used twice", bit)
			}
			seen[bit] = true
		}
	}
	if len(seen) != 8 {
		t.Errorf("got %d distinct bits, want 8", len(seen))
	}
}
