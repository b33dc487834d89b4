package commands

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"git.home.luguber.info/inful/mpbuild/internal/config"
	"git.home.luguber.info/inful/mpbuild/internal/logfields"
	"git.home.luguber.info/inful/mpbuild/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	BuildFlags `embed:""`
	Debounce   time.Duration `help:"Quiet period before a rebuild" default:"300ms"`
}

func (w *WatchCmd) Run(g *Global, root *CLI) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	return RunWatch(ctx, g, root, w.BuildFlags, w.Debounce)
}

// RunWatch builds once, then rebuilds on every debounced change until ctx ends.
// Build failures are logged and do not stop watching.
func RunWatch(ctx context.Context, g *Global, root *CLI, flags BuildFlags, debounce time.Duration) error {
	cfg, err := root.LoadConfig()
	if err != nil {
		return err
	}
	projectDir := root.ProjectDir()
	pctx := config.LoadEnvironment(projectDir, g.getenv).PlatformContext(flags.Platform, flags.Mode)

	rebuild := func(ctx context.Context) error {
		current, err := root.LoadConfig()
		if err != nil {
			slog.Error("Configuration reload failed; keeping previous configuration", logfields.Error(err))
			current = cfg
		} else {
			cfg = current
		}
		_, err = RunBuild(ctx, g, projectDir, current, flags)
		return err
	}
	if err := rebuild(ctx); err != nil {
		slog.Error("Initial build failed", logfields.Error(err))
	}

	ignore := []string{firstNonEmpty(flags.Out, cfg.Output.ConfigDir), pctx.OutputDir()}
	w, err := watch.New(watch.Options{
		Root:     projectDir,
		Trees:    []string{cfg.SourceDir},
		Files:    []string{root.Config, ".env", ".env.local"},
		Ignore:   ignore,
		Debounce: debounce,
	}, rebuild)
	if err != nil {
		return err
	}
	return w.Run(ctx)
}
