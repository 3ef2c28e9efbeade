package sketch

import (
	"image"
	"io"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/miniworld/pkg/observability"
)

// State is the pointer state of a surface.
type State int

const (
	// Idle waits for a pointer press.
	Idle State = iota
	// Drawing extends the current stroke on every pointer move.
	Drawing
)

// String returns "idle" or "drawing".
func (s State) String() string {
	if s == Drawing {
		return "drawing"
	}
	return "idle"
}

// Option configures a Surface.
type Option func(*Surface)

// WithLogger sets a logger for stroke lifecycle debug messages.
func WithLogger(l *log.Logger) Option {
	return func(s *Surface) { s.logger = l }
}

// WithID overrides the generated visit identifier.
func WithID(id string) Option {
	return func(s *Surface) { s.id = id }
}

// Surface captures pointer input for one page visit and renders strokes
// into its buffer. It is not safe for concurrent use.
type Surface struct {
	id       string
	buf      *Buffer
	pen      Pen
	state    State
	stroke   []Point
	segments int
	logger   *log.Logger
}

// NewSurface creates an idle surface with a blank width x height buffer.
// The size never changes afterwards.
func NewSurface(width, height int, pen Pen, opts ...Option) *Surface {
	s := &Surface{
		id:  uuid.NewString(),
		buf: NewBuffer(width, height),
		pen: pen,
	}
	for _, opt := range opts {
		opt(s)
	}
	observability.Sketch().OnAttach(s.id, s.buf.Width(), s.buf.Height())
	return s
}

// ID identifies this page visit's surface.
func (s *Surface) ID() string { return s.id }

// State returns the current pointer state.
func (s *Surface) State() State { return s.state }

// Pen returns the stroke style.
func (s *Surface) Pen() Pen { return s.pen }

// Size returns the buffer dimensions in pixels.
func (s *Surface) Size() (width, height int) {
	return s.buf.Width(), s.buf.Height()
}

// Begin starts a stroke at p and enters Drawing. A Begin while already
// Drawing abandons the current stroke and starts over at p.
func (s *Surface) Begin(p Point) {
	if s.state == Drawing {
		s.finish()
	}
	s.state = Drawing
	s.stroke = append(s.stroke[:0], p)
	observability.Sketch().OnStrokeStart(s.id)
	s.debug("stroke start", "x", p.X, "y", p.Y)
}

// Extend appends p to the current stroke and renders the segment from the
// previous point. It reports whether a segment was drawn; moves while Idle
// are ignored.
func (s *Surface) Extend(p Point) bool {
	if s.state != Drawing {
		return false
	}
	last := s.stroke[len(s.stroke)-1]
	if err := s.buf.Line(last, p, s.pen); err != nil {
		s.debug("segment failed", "err", err)
		return false
	}
	s.stroke = append(s.stroke, p)
	s.segments++
	return true
}

// End returns to Idle. Only the rendered pixels of the stroke remain.
func (s *Surface) End() {
	if s.state != Drawing {
		return
	}
	s.finish()
	s.state = Idle
}

func (s *Surface) finish() {
	n := len(s.stroke) - 1
	observability.Sketch().OnStrokeEnd(s.id, n)
	s.debug("stroke end", "segments", n)
	s.stroke = s.stroke[:0]
}

// Clear erases the buffer. The pointer state is unchanged, so a stroke in
// progress keeps drawing from its last point.
func (s *Surface) Clear() {
	s.buf.Clear()
	s.segments = 0
	observability.Sketch().OnClear(s.id)
	s.debug("cleared")
}

// Stroke returns the points of the stroke in progress, or nil when Idle.
func (s *Surface) Stroke() []Point {
	if s.state != Drawing {
		return nil
	}
	return slices.Clone(s.stroke)
}

// Segments returns the number of segments rendered since the surface was
// created or last cleared.
func (s *Surface) Segments() int { return s.segments }

// Blank reports whether the buffer shows no strokes.
func (s *Surface) Blank() bool { return s.buf.Blank() }

// Image returns a snapshot of the drawing.
func (s *Surface) Image() *image.RGBA { return s.buf.Image() }

// EncodePNG writes the drawing as a PNG image.
func (s *Surface) EncodePNG(w io.Writer) error { return s.buf.EncodePNG(w) }

func (s *Surface) debug(msg string, keyvals ...any) {
	if s.logger == nil {
		return
	}
	s.logger.Debug(msg, append([]any{"visit", s.id[:min(8, len(s.id))]}, keyvals...)...)
}
