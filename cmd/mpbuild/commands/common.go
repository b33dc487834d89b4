package commands

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/mpbuild/internal/config"
	"github.com/alecthomas/kong"
)

// Global carries process-level dependencies into commands. Zero values fall back
// to the real process environment and stdout.
type Global struct {
	Logger *slog.Logger
	Getenv func(string) string
	Stdout io.Writer
}

func (g *Global) getenv(key string) string {
	if g == nil || g.Getenv == nil {
		return os.Getenv(key)
	}
	return g.Getenv(key)
}

func (g *Global) stdout() io.Writer {
	if g == nil || g.Stdout == nil {
		return os.Stdout
	}
	return g.Stdout
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Project configuration file (relative to the project root)" default:"mpbuild.yaml"`
	Project string           `short:"C" name:"project" help:"Project root directory" default:"." type:"path"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Build     BuildCmd     `cmd:"" help:"Generate the bundler configuration for one platform"`
	Entries   EntriesCmd   `cmd:"" help:"Print the resolved entry graph"`
	Watch     WatchCmd     `cmd:"" help:"Regenerate the bundler configuration whenever sources change"`
	Platforms PlatformsCmd `cmd:"" help:"List supported platforms"`
	Init      InitCmd      `cmd:"" help:"Initialize a new configuration file"`
}

// AfterApply runs after flag parsing; setup logging once. Logging settings come
// from the project configuration when it parses; -v always wins.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	format := config.LogFormatText
	if cfg, err := config.Load(c.ConfigPath(), c.ProjectDir()); err == nil {
		level = cfg.Logging.Level.SlogLevel()
		format = cfg.Logging.Format
	}
	if c.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(newLogger(os.Stderr, level, format))
	return nil
}

func newLogger(w io.Writer, level slog.Level, format config.LogFormat) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if format == config.LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// ProjectDir returns the project root.
func (c *CLI) ProjectDir() string {
	if c.Project == "" {
		return "."
	}
	return c.Project
}

// ConfigPath resolves the configuration file against the project root.
func (c *CLI) ConfigPath() string {
	if filepath.IsAbs(c.Config) {
		return c.Config
	}
	return filepath.Join(c.ProjectDir(), c.Config)
}

// LoadConfig loads the project configuration.
func (c *CLI) LoadConfig() (*config.Config, error) {
	return config.Load(c.ConfigPath(), c.ProjectDir())
}

// resolvePath anchors a configured path at the project root.
func resolvePath(projectDir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(projectDir, p)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
