package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/matzehuels/miniworld/pkg/book"
)

// Option configures Markdown rendering.
type Option func(*options)

type options struct {
	canvas bool
}

// WithoutCanvas omits the placeholder line of canvas blocks.
func WithoutCanvas() Option {
	return func(o *options) { o.canvas = false }
}

// fieldBlank is the writing line shown after a free-text field label.
const fieldBlank = "`______`"

// Markdown renders one page as Markdown. Blocks are separated by blank
// lines, in page order.
func Markdown(p book.Page, opts ...Option) string {
	o := options{canvas: true}
	for _, opt := range opts {
		opt(&o)
	}

	var parts []string
	for _, b := range p.Blocks() {
		if b.Type == book.BlockCanvas && !o.canvas {
			continue
		}
		if s := block(b); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "\n\n") + "\n"
}

func block(b book.Block) string {
	switch b.Type {
	case book.BlockHeading:
		level := min(max(b.Level, 1), 6)
		return strings.Repeat("#", level) + " " + b.Text
	case book.BlockParagraph:
		return b.Text
	case book.BlockNote:
		return "> " + b.Text
	case book.BlockList:
		return bullets(b.Items, func(int) string { return "- " })
	case book.BlockOrderedList:
		return bullets(b.Items, func(i int) string { return fmt.Sprintf("%d. ", i+1) })
	case book.BlockImage:
		imgs := make([]string, len(b.Images))
		for i, img := range b.Images {
			imgs[i] = fmt.Sprintf("![%s](%s)", img.Alt, img.Src)
		}
		return strings.Join(imgs, " ")
	case book.BlockFields:
		lines := make([]string, len(b.Items))
		for i, label := range b.Items {
			lines[i] = fmt.Sprintf("- %s: %s", label, fieldBlank)
			if b.Text != "" {
				lines[i] += " *(" + b.Text + ")*"
			}
		}
		return strings.Join(lines, "\n")
	case book.BlockQuiz:
		qs := make([]string, len(b.Questions))
		for i, q := range b.Questions {
			qs[i] = fmt.Sprintf("**%d. %s**\n\n", i+1, q.Question) +
				bullets(q.Options, func(int) string { return "- ( ) " })
		}
		return strings.Join(qs, "\n\n")
	case book.BlockCanvas:
		label := "✏️  " + b.Text
		if clear := b.ClearLabel(); clear != "" {
			label += " · [" + clear + "]"
		}
		return "> " + label
	}
	return ""
}

func bullets(items []string, marker func(int) string) string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = marker(i) + item
	}
	return strings.Join(lines, "\n")
}

// WriteBook writes every page of s as one Markdown document. Pages are
// separated by thematic breaks and prefixed with their position.
func WriteBook(w io.Writer, s *book.Store, opts ...Option) error {
	for i, p := range s.All() {
		if i > 0 {
			if _, err := io.WriteString(w, "\n---\n\n"); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "<!-- %d / %d: %s -->\n\n%s", i+1, s.Len(), p.Title(), Markdown(p, opts...)); err != nil {
			return err
		}
	}
	return nil
}
