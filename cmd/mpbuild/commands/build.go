package commands

import (
	"context"
	"fmt"
	"log/slog"

	"git.home.luguber.info/inful/mpbuild/internal/bundler"
	"git.home.luguber.info/inful/mpbuild/internal/config"
	ferrors "git.home.luguber.info/inful/mpbuild/internal/foundation/errors"
	"git.home.luguber.info/inful/mpbuild/internal/logfields"
	"git.home.luguber.info/inful/mpbuild/internal/metrics"
)

// BuildFlags are shared by build and watch.
type BuildFlags struct {
	Platform    string `short:"p" help:"Target platform (overrides PLATFORM)"`
	Mode        string `short:"m" help:"Build mode; 'production' enables minification (overrides NODE_ENV)"`
	Format      string `short:"f" help:"Output format: json or yaml (overrides output.format)"`
	Out         string `short:"o" help:"Directory for the configuration document and build report (overrides output.config_dir)"`
	CopyNative  bool   `name:"copy-native" help:"Copy native components into the platform output directory immediately"`
	MetricsFile string `name:"metrics-file" help:"Write Prometheus metrics in textfile format (overrides metrics.textfile)"`
	Stdout      bool   `help:"Print the configuration document to stdout instead of writing files"`
}

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	BuildFlags `embed:""`
}

func (b *BuildCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.LoadConfig()
	if err != nil {
		return err
	}
	_, err = RunBuild(context.Background(), g, root.ProjectDir(), cfg, b.BuildFlags)
	return err
}

// BuildResult summarizes what a build wrote.
type BuildResult struct {
	Report      *bundler.BuildReport
	ConfigPath  string
	ReportPath  string
	MetricsPath string
	NativeFiles int
}

// RunBuild generates, writes and reports one bundler configuration. A failed
// generation writes nothing.
func RunBuild(ctx context.Context, g *Global, projectDir string, cfg *config.Config, flags BuildFlags) (*BuildResult, error) {
	format := cfg.Output.Format
	if flags.Format != "" {
		f, err := config.ParseOutputFormat(flags.Format)
		if err != nil {
			return nil, ferrors.ValidationError(fmt.Sprintf("invalid --format %q", flags.Format)).
				WithCause(err).
				WithContext("hint", "Valid formats: json, yaml").
				Build()
		}
		format = f
	}
	pctx := config.LoadEnvironment(projectDir, g.getenv).PlatformContext(flags.Platform, flags.Mode)

	gen := bundler.NewGenerator(cfg, pctx, projectDir)
	var rec *metrics.PrometheusRecorder
	metricsFile := resolvePath(projectDir, firstNonEmpty(flags.MetricsFile, cfg.Metrics.Textfile))
	if metricsFile != "" {
		rec = metrics.NewPrometheusRecorder(nil)
		gen.SetRecorder(rec)
	}

	bs, err := gen.GenerateWithState(ctx)
	if err != nil {
		return nil, err
	}
	res := &BuildResult{Report: bs.Report}

	if flags.Stdout {
		data, err := bundler.Encode(bs.Config, format)
		if err != nil {
			return nil, ferrors.InternalError("failed to encode configuration").WithCause(err).Build()
		}
		if _, err := g.stdout().Write(data); err != nil {
			return nil, ferrors.RuntimeError("failed to write configuration").WithCause(err).Build()
		}
	} else {
		outDir := resolvePath(projectDir, firstNonEmpty(flags.Out, cfg.Output.ConfigDir))
		path, err := bundler.WriteConfig(outDir, pctx.ID, format, bs.Config)
		if err != nil {
			return nil, ferrors.FileSystemError("failed to write configuration").
				WithCause(err).
				WithContext("dir", outDir).
				Build()
		}
		res.ConfigPath = path
		bs.Report.ConfigPath = path
		slog.Info("Wrote bundler configuration", logfields.Path(path))

		if flags.CopyNative && bs.Native != nil {
			n, err := bs.Native.Execute()
			if err != nil {
				return nil, ferrors.FileSystemError("failed to copy native components").
					WithCause(err).
					WithContext("dir", bs.Native.Context).
					Build()
			}
			res.NativeFiles = n
			slog.Info("Copied native components", logfields.Path(bs.Native.To), logfields.Count(n))
		}

		reportPath, err := bs.Report.Persist(outDir)
		if err != nil {
			return nil, ferrors.FileSystemError("failed to write build report").
				WithCause(err).
				WithContext("dir", outDir).
				Build()
		}
		res.ReportPath = reportPath
	}

	if rec != nil {
		if err := rec.WriteTextfile(metricsFile); err != nil {
			return nil, ferrors.FileSystemError("failed to write metrics").
				WithCause(err).
				WithContext("path", metricsFile).
				Build()
		}
		res.MetricsPath = metricsFile
	}

	slog.Info("Build complete", logfields.BuildID(bs.Report.BuildID), slog.String("summary", bs.Report.Summary()))
	return res, nil
}
