package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/miniworld/pkg/book"
)

// pagesCommand creates the pages command that lists the book's pages.
func (c *CLI) pagesCommand() *cobra.Command {
	var drawableOnly bool

	cmd := &cobra.Command{
		Use:   "pages",
		Short: "List the pages of the book",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := c.loadStore()
			if err != nil {
				return err
			}
			return writePages(cmd.OutOrStdout(), store, drawableOnly)
		},
	}

	cmd.Flags().BoolVar(&drawableOnly, "drawable", false, "only list pages with a drawing canvas")

	return cmd
}

// writePages writes a table of page number, title, kind and canvas marker.
func writePages(w io.Writer, store *book.Store, drawableOnly bool) error {
	var rows [][]string
	var drawable []bool
	for i, p := range store.All() {
		if drawableOnly && !p.Drawable() {
			continue
		}
		canvas := ""
		if p.Drawable() {
			canvas = "✏"
		}
		rows = append(rows, []string{strconv.Itoa(i + 1), p.Title(), p.Kind().String(), canvas})
		drawable = append(drawable, p.Drawable())
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Title", "Kind", "Canvas").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			switch {
			case col == 0 || col == 2:
				return base.Foreground(colorDim)
			case row < len(drawable) && drawable[row]:
				return base.Foreground(colorAmber)
			}
			return base
		})

	_, err := fmt.Fprintf(w, "%s\n%s\n", t.Render(), StyleDim.Render(fmt.Sprintf("  %d pages, %d with a canvas", store.Len(), len(store.Drawable()))))
	return err
}
