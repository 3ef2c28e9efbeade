package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/miniworld/pkg/errors"
	"github.com/matzehuels/miniworld/pkg/render"
	"github.com/matzehuels/miniworld/pkg/sketch"
)

const (
	configFile = "config.toml"

	defaultCanvasCols = 60
	defaultCanvasRows = 12
	defaultOutDir     = "drawings"
)

// Config is the user configuration read from config.toml. Flags override it.
//
//	book = "mybook.toml"
//	theme = "light"
//	out_dir = "drawings"
//
//	[pen]
//	width = 3
//	color = "#1565C0"
//
//	[canvas]
//	cols = 60
//	rows = 12
type Config struct {
	Book   string       `toml:"book"`
	Theme  string       `toml:"theme"`
	OutDir string       `toml:"out_dir"`
	Pen    PenConfig    `toml:"pen"`
	Canvas CanvasConfig `toml:"canvas"`
}

// PenConfig sets the stroke style of drawing surfaces.
type PenConfig struct {
	Width float64 `toml:"width"`
	Color string  `toml:"color"`
}

// CanvasConfig sets the terminal size of the drawing region in cells.
type CanvasConfig struct {
	Cols int `toml:"cols"`
	Rows int `toml:"rows"`
}

// defaultConfig returns the configuration used when no file exists.
func defaultConfig() Config {
	return Config{
		Theme:  render.DefaultTheme,
		OutDir: defaultOutDir,
		Pen: PenConfig{
			Width: sketch.DefaultPen.Width,
			Color: sketch.DefaultPen.Color,
		},
		Canvas: CanvasConfig{Cols: defaultCanvasCols, Rows: defaultCanvasRows},
	}
}

// loadConfig reads path over the defaults. A missing file is only an error
// when the path was given explicitly.
func loadConfig(path string, explicit bool) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		if os.IsNotExist(err) {
			return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s not found", path)
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, errors.New(errors.ErrCodeInvalidInput, "unknown config keys in %s: %s", path, strings.Join(keys, ", "))
	}

	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Pen.Width <= 0 || c.Pen.Width > 32 {
		return errors.New(errors.ErrCodeInvalidInput, "pen width must be in (0, 32], got %g", c.Pen.Width)
	}
	if err := errors.ValidateHexColor(c.Pen.Color); err != nil {
		return err
	}
	if c.Canvas.Cols < 4 || c.Canvas.Cols > 200 {
		return errors.New(errors.ErrCodeInvalidInput, "canvas cols must be in [4, 200], got %d", c.Canvas.Cols)
	}
	if c.Canvas.Rows < 2 || c.Canvas.Rows > 100 {
		return errors.New(errors.ErrCodeInvalidInput, "canvas rows must be in [2, 100], got %d", c.Canvas.Rows)
	}
	if c.OutDir == "" {
		return errors.New(errors.ErrCodeInvalidInput, "out_dir cannot be empty")
	}
	return nil
}

// pen returns the configured stroke style.
func (c Config) pen() sketch.Pen {
	return sketch.Pen{Width: c.Pen.Width, Color: c.Pen.Color}
}

// =============================================================================
// Paths
// =============================================================================

// configDir returns the config directory using XDG standard (~/.config/miniworld/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// defaultConfigPath returns the config file location, or "" when no home
// directory can be determined.
func defaultConfigPath() string {
	dir, err := configDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, configFile)
}

// stateDir returns the state directory using XDG standard (~/.local/state/miniworld/).
func stateDir() (string, error) {
	if stateHome := os.Getenv("XDG_STATE_HOME"); stateHome != "" {
		return filepath.Join(stateHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "state", appName), nil
}

// cacheDir returns the cache directory using XDG standard (~/.cache/miniworld/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
