package nav

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/miniworld/pkg/book"
	"github.com/matzehuels/miniworld/pkg/observability"
	"github.com/matzehuels/miniworld/pkg/sketch"
)

// Display is the surface a navigator renders into.
type Display interface {
	// ShowPage replaces the content region with page.
	ShowPage(page book.Page)

	// SetHeader writes the page title to the header region.
	SetHeader(title string)

	// SetIndicator writes the position indicator, e.g. "3 / 25".
	SetIndicator(text string)

	// SetControls enables or disables the previous and next controls.
	SetControls(prevEnabled, nextEnabled bool)

	// CanvasSize returns the pixel size of the drawable region. It is
	// consulted once per drawable page visit.
	CanvasSize() (width, height int)

	// AttachSurface shows surface on the drawable region, or removes the
	// drawable region when surface is nil.
	AttachSurface(surface *sketch.Surface)
}

// State is the reading position. Cursor is always a valid page index.
type State struct {
	Cursor int
}

// Option configures a Navigator.
type Option func(*Navigator)

// WithLogger sets a logger for render and navigation debug messages.
func WithLogger(l *log.Logger) Option {
	return func(n *Navigator) { n.logger = l }
}

// WithPen sets the pen of attached drawing surfaces.
func WithPen(p sketch.Pen) Option {
	return func(n *Navigator) { n.pen = p }
}

// WithStart sets the initial cursor. Out-of-range values are clamped.
func WithStart(index int) Option {
	return func(n *Navigator) { n.state.Cursor = index }
}

// Navigator holds the reading position within a store and drives a
// display. It is not safe for concurrent use.
type Navigator struct {
	store    *book.Store
	display  Display
	state    State
	pen      sketch.Pen
	surface  *sketch.Surface
	logger   *log.Logger
	handlers map[Action]func(Event)
}

// New creates a navigator positioned on the first page. Nothing is drawn
// until [Navigator.Render] is called.
func New(store *book.Store, display Display, opts ...Option) *Navigator {
	n := &Navigator{
		store:   store,
		display: display,
		pen:     sketch.DefaultPen,
	}
	for _, opt := range opts {
		opt(n)
	}
	n.state.Cursor = max(0, min(n.state.Cursor, store.Len()-1))
	n.handlers = n.bindings()
	return n
}

// State returns the current reading position.
func (n *Navigator) State() State { return n.state }

// Cursor returns the index of the current page.
func (n *Navigator) Cursor() int { return n.state.Cursor }

// Len returns the number of pages.
func (n *Navigator) Len() int { return n.store.Len() }

// Page returns the current page.
func (n *Navigator) Page() book.Page {
	p, _ := n.store.Get(n.state.Cursor)
	return p
}

// Surface returns the drawing surface of the current page, or nil when the
// page is not drawable.
func (n *Navigator) Surface() *sketch.Surface { return n.surface }

// Indicator returns the position text, "{cursor+1} / {length}".
func (n *Navigator) Indicator() string {
	return fmt.Sprintf("%d / %d", n.state.Cursor+1, n.store.Len())
}

// HasPrevious reports whether GoPrevious would move.
func (n *Navigator) HasPrevious() bool { return n.state.Cursor > 0 }

// HasNext reports whether GoNext would move.
func (n *Navigator) HasNext() bool { return n.state.Cursor < n.store.Len()-1 }

// Render shows the current page: content, header, indicator and control
// states. A drawable page gets a new blank surface; any previous surface is
// discarded.
func (n *Navigator) Render() {
	page := n.Page()

	n.display.ShowPage(page)
	n.display.SetHeader(page.Title())
	n.display.SetIndicator(n.Indicator())
	n.display.SetControls(n.HasPrevious(), n.HasNext())

	n.surface = nil
	if page.Drawable() {
		w, h := n.display.CanvasSize()
		n.surface = sketch.NewSurface(w, h, n.pen, sketch.WithLogger(n.logger))
	}
	n.display.AttachSurface(n.surface)

	observability.Navigation().OnRender(n.state.Cursor, n.store.Len(), page.Title(), page.Drawable())
	if n.logger != nil {
		n.logger.Debug("render", "page", n.Indicator(), "title", page.Title(), "drawable", page.Drawable())
	}
}

// GoNext moves to the next page and renders it. On the last page it does
// nothing and reports false.
func (n *Navigator) GoNext() bool {
	if !n.HasNext() {
		return false
	}
	n.move(n.state.Cursor + 1)
	return true
}

// GoPrevious moves to the previous page and renders it. On the first page
// it does nothing and reports false.
func (n *Navigator) GoPrevious() bool {
	if !n.HasPrevious() {
		return false
	}
	n.move(n.state.Cursor - 1)
	return true
}

// GoTo jumps to index and renders it. An index outside the book returns the
// store's out-of-range error and leaves the position unchanged.
func (n *Navigator) GoTo(index int) error {
	if _, err := n.store.Get(index); err != nil {
		return err
	}
	n.move(index)
	return nil
}

func (n *Navigator) move(to int) {
	from := n.state.Cursor
	n.state.Cursor = to
	observability.Navigation().OnNavigate(from, to)
	n.Render()
}

// PointerDown starts a stroke on the current surface.
func (n *Navigator) PointerDown(p sketch.Point) {
	if n.surface != nil {
		n.surface.Begin(p)
	}
}

// PointerMove extends the stroke in progress.
func (n *Navigator) PointerMove(p sketch.Point) {
	if n.surface != nil {
		n.surface.Extend(p)
	}
}

// PointerUp ends the stroke in progress, wherever the pointer was released.
func (n *Navigator) PointerUp() {
	if n.surface != nil {
		n.surface.End()
	}
}

// ClearDrawing erases the current surface.
func (n *Navigator) ClearDrawing() {
	if n.surface != nil {
		n.surface.Clear()
	}
}
