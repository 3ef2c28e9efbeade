package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/miniworld/pkg/book"
	"github.com/matzehuels/miniworld/pkg/nav"
	"github.com/matzehuels/miniworld/pkg/render"
	"github.com/matzehuels/miniworld/pkg/sketch"
)

// Reader styles
var (
	readerHeaderStyle  = StyleTitle
	readerCanvasStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorBrown)
	readerInkStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("94"))
	readerEnabledStyle = lipgloss.NewStyle().Foreground(colorWhite)
	readerStatusStyle  = lipgloss.NewStyle().Foreground(colorGray).Italic(true)
)

const (
	readerHeaderLines = 2 // title line and a blank line
	readerFooterLines = 2 // controls and status
	readerMaxWrap     = 80
)

// keyBindings maps keys to navigator actions. Keys handled by the reader
// itself (save, scroll, quit) are not listed.
var keyBindings = map[string]nav.Action{
	"left":  nav.ActionPrevious,
	"h":     nav.ActionPrevious,
	"right": nav.ActionNext,
	"l":     nav.ActionNext,
	"c":     nav.ActionClear,
}

// =============================================================================
// ReaderModel - Interactive book reader
// =============================================================================

// ReaderModel is the bubbletea model of the book reader. It is the display
// its navigator renders into.
type ReaderModel struct {
	nav    *nav.Navigator
	term   *render.Terminal
	theme  string
	outDir string
	logger *log.Logger

	cols, rows    int // canvas size in cells
	width, height int // terminal size, zero until the first resize

	// Regions written by the navigator.
	page      book.Page
	header    string
	indicator string
	prevOK    bool
	nextOK    bool
	surface   *sketch.Surface

	content []string // rendered page text, one entry per line
	scroll  int
	status  string
}

// ReaderOption configures a ReaderModel.
type ReaderOption func(*ReaderModel)

// withCanvasCells sets the canvas size in terminal cells.
func withCanvasCells(cols, rows int) ReaderOption {
	return func(m *ReaderModel) { m.cols, m.rows = cols, rows }
}

// withOutDir sets the directory saved drawings are written to.
func withOutDir(dir string) ReaderOption {
	return func(m *ReaderModel) { m.outDir = dir }
}

// withTheme sets the glamour style of page text.
func withTheme(theme string) ReaderOption {
	return func(m *ReaderModel) { m.theme = theme }
}

// withReaderLogger sets the logger for reader events.
func withReaderLogger(l *log.Logger) ReaderOption {
	return func(m *ReaderModel) { m.logger = l }
}

// NewReaderModel creates a reader for store. The first page shown is start
// (zero-based); an invalid start returns the store's error. navOpts are
// passed to the navigator.
func NewReaderModel(store *book.Store, start int, opts []ReaderOption, navOpts ...nav.Option) (*ReaderModel, error) {
	m := &ReaderModel{
		cols:   defaultCanvasCols,
		rows:   defaultCanvasRows,
		theme:  render.DefaultTheme,
		outDir: defaultOutDir,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(m)
	}

	term, err := render.NewTerminal(readerMaxWrap, m.theme)
	if err != nil {
		return nil, err
	}
	m.term = term

	m.nav = nav.New(store, m, navOpts...)
	if start == 0 {
		m.nav.Render()
		return m, nil
	}
	if err := m.nav.GoTo(start); err != nil {
		return nil, err
	}
	return m, nil
}

// Navigator returns the navigator driving the reader.
func (m *ReaderModel) Navigator() *nav.Navigator { return m.nav }

// =============================================================================
// nav.Display
// =============================================================================

func (m *ReaderModel) ShowPage(page book.Page) {
	m.page = page
	m.scroll = 0
	m.status = ""
	m.renderContent()
}

func (m *ReaderModel) SetHeader(title string) { m.header = title }

func (m *ReaderModel) SetIndicator(text string) { m.indicator = text }

func (m *ReaderModel) SetControls(prevEnabled, nextEnabled bool) {
	m.prevOK, m.nextOK = prevEnabled, nextEnabled
}

func (m *ReaderModel) CanvasSize() (width, height int) {
	return canvasPixels(m.cols, m.rows)
}

func (m *ReaderModel) AttachSurface(s *sketch.Surface) { m.surface = s }

// renderContent renders the current page text at the current wrap width.
func (m *ReaderModel) renderContent() {
	out, err := m.term.Render(m.page)
	if err != nil {
		m.logger.Error("render page", "title", m.page.Title(), "err", err)
		out = render.Markdown(m.page, render.WithoutCanvas())
	}
	m.content = strings.Split(strings.TrimRight(out, "\n"), "\n")
}

// =============================================================================
// bubbletea
// =============================================================================

func (m *ReaderModel) Init() tea.Cmd {
	return nil
}

func (m *ReaderModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg.String())
	case tea.MouseMsg:
		m.handleMouse(msg)
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	}
	return m, nil
}

func (m *ReaderModel) handleKey(key string) tea.Cmd {
	if action, ok := keyBindings[key]; ok {
		m.nav.Dispatch(nav.Event{Action: action})
		return nil
	}
	switch key {
	case "q", "ctrl+c", "esc":
		return tea.Quit
	case "s":
		m.save()
	case "up", "k":
		m.scrollBy(-1)
	case "down", "j":
		m.scrollBy(1)
	}
	return nil
}

func (m *ReaderModel) handleMouse(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.scrollBy(-1)
		case tea.MouseButtonWheelDown:
			m.scrollBy(1)
		case tea.MouseButtonLeft:
			if p, ok := m.canvasPoint(msg.X, msg.Y); ok {
				m.nav.Dispatch(nav.Event{Action: nav.ActionPointerDown, Point: p})
			}
		}
	case tea.MouseActionMotion:
		if p, ok := m.canvasPoint(msg.X, msg.Y); ok {
			m.nav.Dispatch(nav.Event{Action: nav.ActionPointerMove, Point: p})
		}
	case tea.MouseActionRelease:
		// Releasing anywhere, even outside the canvas, ends the stroke.
		m.nav.Dispatch(nav.Event{Action: nav.ActionPointerUp})
	}
}

// resize re-wraps the page text for a new terminal size. The canvas keeps
// the size it was attached with.
func (m *ReaderModel) resize(width, height int) {
	m.width, m.height = width, height
	defer m.scrollBy(0)

	wrap := min(readerMaxWrap, max(width-2, 20))
	if wrap == m.term.Width() {
		return
	}
	term, err := render.NewTerminal(wrap, m.theme)
	if err != nil {
		m.logger.Error("resize renderer", "err", err)
		return
	}
	m.term = term
	m.renderContent()
}

func (m *ReaderModel) scrollBy(delta int) {
	limit := max(0, len(m.content)-m.contentHeight())
	m.scroll = max(0, min(m.scroll+delta, limit))
}

// save writes the current drawing as a PNG file in the output directory.
func (m *ReaderModel) save() {
	if m.surface == nil {
		m.status = "This page has no canvas"
		return
	}
	path, err := saveDrawing(m.surface, m.outDir, m.nav.Cursor())
	if err != nil {
		m.status = "Save failed: " + err.Error()
		m.logger.Error("save drawing", "err", err)
		return
	}
	m.status = "Saved " + path
	m.logger.Info("drawing saved", "path", path, "segments", m.surface.Segments())
}

// saveDrawing writes s to dir as page-NN-<visit>.png and returns the path.
func saveDrawing(s *sketch.Surface, dir string, index int) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("page-%02d-%s.png", index+1, shortID(s.ID())))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	if err := s.EncodePNG(f); err != nil {
		f.Close()
		return "", fmt.Errorf("encode %s: %w", path, err)
	}
	return path, f.Close()
}

// =============================================================================
// Layout
// =============================================================================

// canvasRows returns the screen rows taken by the framed canvas.
func (m *ReaderModel) canvasRows() int {
	if m.surface == nil {
		return 0
	}
	return m.rows + 2
}

// contentHeight returns the number of page text lines that fit on screen.
// Before the first resize the whole page is shown.
func (m *ReaderModel) contentHeight() int {
	if m.height == 0 {
		return len(m.content)
	}
	return max(1, m.height-readerHeaderLines-readerFooterLines-m.canvasRows())
}

// visibleContent returns the page text lines currently on screen.
func (m *ReaderModel) visibleContent() []string {
	end := min(len(m.content), m.scroll+m.contentHeight())
	return m.content[m.scroll:end]
}

// canvasOrigin returns the screen position of the top-left canvas cell.
func (m *ReaderModel) canvasOrigin() (x, y int) {
	return 1, readerHeaderLines + len(m.visibleContent()) + 1
}

// canvasPoint maps a screen cell to a buffer pixel. It reports false when
// the cell lies outside the canvas or the page has none.
func (m *ReaderModel) canvasPoint(x, y int) (sketch.Point, bool) {
	if m.surface == nil {
		return sketch.Point{}, false
	}
	ox, oy := m.canvasOrigin()
	col, row := x-ox, y-oy
	if col < 0 || row < 0 || col >= m.cols || row >= m.rows {
		return sketch.Point{}, false
	}
	return cellPoint(col, row), true
}

func (m *ReaderModel) View() string {
	var b strings.Builder

	b.WriteString(m.headerLine())
	b.WriteString("\n\n")

	for _, line := range m.visibleContent() {
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.surface != nil {
		ink := braille(m.surface.Image(), m.cols, m.rows)
		b.WriteString(readerCanvasStyle.Render(readerInkStyle.Render(strings.Join(ink, "\n"))))
		b.WriteString("\n")
	}

	b.WriteString(m.controlsLine())
	b.WriteString("\n")
	b.WriteString(readerStatusStyle.Render(m.status))

	return b.String()
}

func (m *ReaderModel) headerLine() string {
	title := readerHeaderStyle.Render(m.header)
	indicator := StyleDim.Render(m.indicator)
	gap := max(2, m.width-lipgloss.Width(title)-lipgloss.Width(indicator))
	if m.width == 0 {
		gap = 2
	}
	return title + strings.Repeat(" ", gap) + indicator
}

func (m *ReaderModel) controlsLine() string {
	control := func(label string, enabled bool) string {
		if enabled {
			return readerEnabledStyle.Render(label)
		}
		return StyleDim.Render(label)
	}
	parts := []string{
		control("← prev", m.prevOK),
		control("→ next", m.nextOK),
	}
	if m.surface != nil {
		parts = append(parts, control("c "+m.clearLabel(), true), control("s save", true))
	}
	parts = append(parts, StyleDim.Render("q quit"))
	return strings.Join(parts, StyleDim.Render("  ·  "))
}

// clearLabel returns the page's own label for the clear control.
func (m *ReaderModel) clearLabel() string {
	for _, blk := range m.page.Blocks() {
		if blk.Type == book.BlockCanvas && blk.ClearLabel() != "" {
			return strings.ToLower(blk.ClearLabel())
		}
	}
	return "clear"
}
