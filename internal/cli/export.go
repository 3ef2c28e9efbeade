package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/miniworld/pkg/observability"
	"github.com/matzehuels/miniworld/pkg/render"
)

// exportCommand creates the export command that writes the book as Markdown.
func (c *CLI) exportCommand() *cobra.Command {
	var (
		output   string
		noCanvas bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the whole book as Markdown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := c.loadStore()
			if err != nil {
				return err
			}

			prog := newProgress(loggerFromContext(cmd.Context()))
			var opts []render.Option
			if noCanvas {
				opts = append(opts, render.WithoutCanvas())
			}

			var buf bytes.Buffer
			err = render.WriteBook(&buf, store, opts...)
			if err == nil {
				err = writeOutput(cmd.OutOrStdout(), output, buf.Bytes())
			}
			observability.Export().OnExport("markdown", buf.Len(), prog.elapsed(), err)
			if err != nil {
				return err
			}

			if output != "" {
				prog.done(fmt.Sprintf("Exported %d pages", store.Len()))
				printFile(output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "out", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&noCanvas, "no-canvas", false, "leave out canvas placeholders")

	return cmd
}

// writeOutput writes data to path, or to w when path is empty.
func writeOutput(w io.Writer, path string, data []byte) error {
	if path == "" {
		_, err := w.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
