package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/miniworld/pkg/cache"
	"github.com/matzehuels/miniworld/pkg/errors"
	"github.com/matzehuels/miniworld/pkg/observability"
	"github.com/matzehuels/miniworld/pkg/render/outline"
)

const (
	formatDOT = "dot"
	formatSVG = "svg"

	// outlineTTL bounds how long rendered outlines are reused.
	outlineTTL = 30 * 24 * time.Hour
)

// outlineCommand creates the outline command that draws a map of the book.
func (c *CLI) outlineCommand() *cobra.Command {
	var (
		output   string
		format   string
		detailed bool
		noCache  bool
	)

	cmd := &cobra.Command{
		Use:   "outline",
		Short: "Draw a map of the book's pages with Graphviz",
		Long: `Draw the page sequence as a Graphviz diagram. Chapters are grouped and
pages with a drawing canvas are highlighted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format != formatDOT && format != formatSVG {
				return errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q (want %s or %s)", format, formatDOT, formatSVG)
			}
			store, err := c.loadStore()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			prog := newProgress(loggerFromContext(ctx))
			data := []byte(outline.ToDOT(store, outline.Options{Detailed: detailed}))

			if format == formatSVG {
				data, err = renderOutlineSVG(ctx, newOutlineCache(noCache), string(data))
				if err != nil {
					observability.Export().OnExport(format, 0, prog.elapsed(), err)
					return errors.Wrap(errors.ErrCodeInternal, err, "render outline")
				}
			}

			err = writeOutput(cmd.OutOrStdout(), output, data)
			observability.Export().OnExport(format, len(data), prog.elapsed(), err)
			if err != nil {
				return err
			}

			if output != "" {
				prog.done(fmt.Sprintf("Rendered outline of %d pages", store.Len()))
				printFile(output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "out", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&format, "format", "f", formatDOT, "output format: dot, svg")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "show the page kind in every node")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "render the SVG even if a cached copy exists")

	return cmd
}

// renderOutlineSVG renders dot with Graphviz, reusing a cached result for
// the same input.
func renderOutlineSVG(ctx context.Context, c cache.Cache, dot string) ([]byte, error) {
	logger := loggerFromContext(ctx)
	key := cache.Key("outline.svg", dot)

	if svg, ok, err := c.Get(ctx, key); err != nil {
		logger.Warn("outline cache read failed", "err", err)
	} else if ok {
		logger.Debug("outline cache hit", "bytes", len(svg))
		return svg, nil
	}

	spinner := newSpinner(ctx, os.Stderr, "Rendering outline...")
	spinner.Start()
	svg, err := outline.RenderSVG(ctx, dot)
	spinner.Stop()
	if err != nil {
		return nil, err
	}

	if err := c.Set(ctx, key, svg, outlineTTL); err != nil {
		logger.Warn("outline cache write failed", "err", err)
	}
	return svg, nil
}

// newOutlineCache opens the file cache, falling back to no caching when it
// is disabled or the cache directory is unusable.
func newOutlineCache(disabled bool) cache.Cache {
	if disabled {
		return cache.NullCache{}
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NullCache{}
	}
	c, err := cache.NewFileCache(dir)
	if err != nil {
		return cache.NullCache{}
	}
	return c
}
