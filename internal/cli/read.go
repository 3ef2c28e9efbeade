package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/miniworld/pkg/nav"
)

const readLogFile = "read.log"

// readOpts holds the command-line flags for the read command.
type readOpts struct {
	page   int    // page to open, 1-based
	outDir string // directory for saved drawings
}

// readCommand creates the read command that opens the interactive reader.
func (c *CLI) readCommand() *cobra.Command {
	opts := readOpts{page: 1}

	cmd := &cobra.Command{
		Use:   "read",
		Short: "Open the book in the interactive reader",
		Long: `Open the book in a full-screen terminal reader.

Keys:
  ←/h  previous page      →/l  next page
  ↑/k  scroll up          ↓/j  scroll down
  c    clear the canvas   s    save the drawing as PNG
  q    quit

On canvas pages, hold the left mouse button and drag to draw.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.outDir == "" {
				opts.outDir = c.cfg.OutDir
			}
			return c.runRead(cmd.Context(), opts)
		},
	}

	cmd.Flags().IntVarP(&opts.page, "page", "p", opts.page, "page to open (1-based)")
	cmd.Flags().StringVarP(&opts.outDir, "out", "o", "", "directory for saved drawings (default from config)")

	return cmd
}

func (c *CLI) runRead(ctx context.Context, opts readOpts) error {
	store, err := c.loadStore()
	if err != nil {
		return err
	}

	logger, closeLog, err := c.readerLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	m, err := NewReaderModel(store, opts.page-1,
		[]ReaderOption{
			withCanvasCells(c.cfg.Canvas.Cols, c.cfg.Canvas.Rows),
			withOutDir(opts.outDir),
			withTheme(c.cfg.Theme),
			withReaderLogger(logger),
		},
		nav.WithLogger(logger),
		nav.WithPen(c.cfg.pen()),
	)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("reader: %w", err)
	}

	printInfo("Stopped at page %s: %s", m.Navigator().Indicator(), StyleHighlight.Render(m.Navigator().Page().Title()))
	return nil
}

// readerLogger returns the logger used while the reader owns the terminal.
// At debug level it appends to a file in the state directory; otherwise
// output is discarded.
func (c *CLI) readerLogger() (*log.Logger, func(), error) {
	level := c.Logger.GetLevel()
	if level > log.DebugLevel {
		return newLogger(io.Discard, level), func() {}, nil
	}

	dir, err := stateDir()
	if err != nil {
		return nil, nil, fmt.Errorf("locate state directory: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create state directory: %w", err)
	}
	path := filepath.Join(dir, readLogFile)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	c.Logger.Debug("reader log", "path", path)

	l := newLogger(f, level)
	// Hooks registered at startup log to the terminal; point them at the file.
	registerLogHooks(l)
	return l, func() { f.Close() }, nil
}
