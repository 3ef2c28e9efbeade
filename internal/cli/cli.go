package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/miniworld/pkg/book"
	"github.com/matzehuels/miniworld/pkg/buildinfo"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "miniworld"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string // --config
	bookPath   string // --book
	cfg        Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		cfg:    defaultConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Miniworld is a terminal reader for an interactive microscope picture book",
		Long: `Miniworld reads "Isabella y el Mundo en Miniatura" in the terminal: page through
the chapters, solve the challenges and draw what you see on the canvas pages.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/miniworld/config.toml)")
	root.PersistentFlags().StringVar(&c.bookPath, "book", "", "read a book catalog from a TOML file instead of the built-in book")

	// Register all subcommands
	root.AddCommand(c.readCommand())
	root.AddCommand(c.pagesCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.outlineCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads the configuration and, at debug level, registers logging hooks.
func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	path, explicit := c.configPath, c.configPath != ""
	if !explicit {
		path = defaultConfigPath()
	}
	cfg, err := loadConfig(path, explicit)
	if err != nil {
		return err
	}
	if c.bookPath != "" {
		cfg.Book = c.bookPath
	}
	c.cfg = cfg

	if c.Logger.GetLevel() <= log.DebugLevel {
		registerLogHooks(c.Logger)
	}
	c.Logger.Debug("config loaded", "path", path, "book", cfg.Book, "theme", cfg.Theme)

	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	return nil
}

// loadStore builds the configured book, or the built-in one.
func (c *CLI) loadStore() (*book.Store, error) {
	if c.cfg.Book == "" {
		return book.Default(), nil
	}
	cat, err := book.LoadFile(c.cfg.Book)
	if err != nil {
		return nil, err
	}
	return cat.Build()
}
