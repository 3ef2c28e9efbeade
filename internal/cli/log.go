// Package cli implements the miniworld command-line interface.
//
// The read command opens the book in a full-screen terminal reader built
// on bubbletea: arrow keys turn pages, the mouse draws on canvas pages and
// drawings can be saved as PNG files. The remaining commands print the page
// list, export the book as Markdown and draw a map of the book with
// graphviz.
//
// # Commands
//
// The main commands are:
//   - read: Interactive reader with drawing canvas
//   - pages: Table of all pages
//   - export: Whole book as Markdown
//   - outline: Book map as DOT or SVG
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context. While the reader owns the terminal, log
// output goes to a file in the XDG state directory.
//
// # Example
//
//	import "github.com/matzehuels/miniworld/internal/cli"
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.RootCommand().Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/miniworld/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Exported 45 pages (12ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// elapsed returns the time since progress was created.
func (p *progress) elapsed() time.Duration {
	return time.Since(p.start)
}

// ctxKey is the type for context keys used in this package.
type ctxKey int

// loggerKey is the context key for storing a logger.
const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// =============================================================================
// Observability
// =============================================================================

// logHooks reports navigation, sketch and export events as debug logs.
// Render and stroke details are logged by the navigator and surfaces
// themselves, so those hooks stay silent here.
type logHooks struct {
	observability.NoopNavigationHooks
	observability.NoopSketchHooks
	logger *log.Logger
}

func (h logHooks) OnNavigate(from, to int) {
	h.logger.Debug("navigate", "from", from+1, "to", to+1)
}

func (h logHooks) OnAttach(visit string, width, height int) {
	h.logger.Debug("canvas attached", "visit", shortID(visit), "size", [2]int{width, height})
}

func (h logHooks) OnExport(format string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("export failed", "format", format, "err", err)
		return
	}
	h.logger.Debug("exported", "format", format, "bytes", size, "took", d.Round(time.Millisecond))
}

// registerLogHooks installs logHooks for all event groups.
func registerLogHooks(l *log.Logger) {
	h := logHooks{logger: l}
	observability.SetNavigationHooks(h)
	observability.SetSketchHooks(h)
	observability.SetExportHooks(h)
}

// shortID returns the first eight characters of a visit ID.
func shortID(id string) string {
	return id[:min(8, len(id))]
}
