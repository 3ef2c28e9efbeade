package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/miniworld/pkg/cache"
	"github.com/matzehuels/miniworld/pkg/errors"
	"github.com/matzehuels/miniworld/pkg/observability"
)

// execute runs the root command with args and returns its standard output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Cleanup(observability.Reset)

	c := New(io.Discard, log.InfoLevel)
	root := c.RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := New(io.Discard, log.InfoLevel).RootCommand()
	for _, name := range []string{"read", "pages", "export", "outline", "completion"} {
		if cmd, _, err := root.Find([]string{name}); err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
	for _, flag := range []string{"config", "book"} {
		if root.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("persistent flag --%s missing", flag)
		}
	}
}

func TestPagesCommand(t *testing.T) {
	out, err := execute(t, "pages")
	if err != nil {
		t.Fatalf("pages: %v", err)
	}
	for _, want := range []string{"Capítulo 1", "Desafío 1", "Juegos y Quiz 5", "Diploma", "45 pages, 30 with a canvas"} {
		if !strings.Contains(out, want) {
			t.Errorf("pages output missing %q", want)
		}
	}

	out, err = execute(t, "pages", "--drawable")
	if err != nil {
		t.Fatalf("pages --drawable: %v", err)
	}
	if strings.Contains(out, "Capítulo 1") || !strings.Contains(out, "Desafío 1") {
		t.Errorf("pages --drawable should list only canvas pages:\n%s", out)
	}
}

func TestExportCommand(t *testing.T) {
	out, err := execute(t, "export")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.HasPrefix(out, "<!-- 1 / 45: ") {
		t.Errorf("export output starts with %q", out[:min(40, len(out))])
	}
	if !strings.Contains(out, "✏️") {
		t.Error("export should include canvas placeholders by default")
	}

	path := filepath.Join(t.TempDir(), "book.md")
	if _, err := execute(t, "export", "--no-canvas", "--out", path); err != nil {
		t.Fatalf("export --out: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "<!-- 45 / 45: Diploma -->") {
		t.Error("exported file missing the diploma page")
	}
	if strings.Contains(string(data), "✏️") {
		t.Error("--no-canvas left canvas placeholders")
	}
}

func TestOutlineCommand(t *testing.T) {
	out, err := execute(t, "outline")
	if err != nil {
		t.Fatalf("outline: %v", err)
	}
	if !strings.HasPrefix(out, "digraph book {") {
		t.Errorf("outline output = %q", out[:min(40, len(out))])
	}

	_, err = execute(t, "outline", "--format", "png")
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("outline --format png: error = %v, want %s", err, errors.ErrCodeInvalidFormat)
	}
}

func TestBookFlag(t *testing.T) {
	_, err := execute(t, "pages", "--book", filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing book: error = %v, want %s", err, errors.ErrCodeFileNotFound)
	}
}

func TestConfigFlag(t *testing.T) {
	_, err := execute(t, "pages", "--config", filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing config: error = %v, want %s", err, errors.ErrCodeFileNotFound)
	}

	bad := writeFile(t, "config.toml", "[pen]\ncolor = \"nope\"\n")
	_, err = execute(t, "pages", "--config", bad)
	if !errors.Is(err, errors.ErrCodeInvalidColor) {
		t.Errorf("bad config: error = %v, want %s", err, errors.ErrCodeInvalidColor)
	}
}

func TestReadCommandRejectsBadPage(t *testing.T) {
	_, err := execute(t, "read", "--page", "99")
	if !errors.Is(err, errors.ErrCodeOutOfRange) {
		t.Errorf("read --page 99: error = %v, want %s", err, errors.ErrCodeOutOfRange)
	}
}

func TestCompletionCommand(t *testing.T) {
	out, err := execute(t, "completion", "bash")
	if err != nil {
		t.Fatalf("completion bash: %v", err)
	}
	if !strings.Contains(out, "miniworld") {
		t.Error("bash completion does not mention the program")
	}
}

func TestRenderOutlineSVGUsesCache(t *testing.T) {
	ctx := context.Background()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	const dot = "digraph book { p1 -> p2; }"

	// A cached entry is returned without invoking Graphviz.
	if err := c.Set(ctx, cache.Key("outline.svg", dot), []byte("<svg>cached</svg>"), 0); err != nil {
		t.Fatal(err)
	}
	svg, err := renderOutlineSVG(ctx, c, dot)
	if err != nil {
		t.Fatalf("renderOutlineSVG: %v", err)
	}
	if string(svg) != "<svg>cached</svg>" {
		t.Errorf("renderOutlineSVG() = %q, want the cached SVG", svg)
	}
}

func TestNewOutlineCache(t *testing.T) {
	if _, ok := newOutlineCache(true).(cache.NullCache); !ok {
		t.Error("--no-cache should disable caching")
	}

	dir := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", dir)
	fc, ok := newOutlineCache(false).(*cache.FileCache)
	if !ok {
		t.Fatal("expected a file cache")
	}
	if fc.Dir() != filepath.Join(dir, appName) {
		t.Errorf("cache dir = %q", fc.Dir())
	}
}
