package render

import (
	"fmt"

	"github.com/charmbracelet/glamour"

	"github.com/matzehuels/miniworld/pkg/book"
)

// DefaultTheme is the glamour style used when none is configured.
const DefaultTheme = "dark"

// Terminal renders pages as styled terminal text.
type Terminal struct {
	r     *glamour.TermRenderer
	width int
}

// NewTerminal creates a renderer that wraps text at width columns using the
// named glamour style ("dark", "light", "notty", "dracula", ...).
func NewTerminal(width int, theme string) (*Terminal, error) {
	if theme == "" {
		theme = DefaultTheme
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(theme),
		glamour.WithWordWrap(width),
		glamour.WithEmoji(),
	)
	if err != nil {
		return nil, fmt.Errorf("create terminal renderer: %w", err)
	}
	return &Terminal{r: r, width: width}, nil
}

// Width returns the wrap width.
func (t *Terminal) Width() int { return t.width }

// Render renders p. Canvas blocks are left out: interactive front ends
// draw the canvas themselves.
func (t *Terminal) Render(p book.Page) (string, error) {
	out, err := t.r.Render(Markdown(p, WithoutCanvas()))
	if err != nil {
		return "", fmt.Errorf("render %q: %w", p.Title(), err)
	}
	return out, nil
}
