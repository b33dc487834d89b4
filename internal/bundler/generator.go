package bundler

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"git.home.luguber.info/inful/mpbuild/internal/appconfig"
	"git.home.luguber.info/inful/mpbuild/internal/config"
	"git.home.luguber.info/inful/mpbuild/internal/entry"
	"git.home.luguber.info/inful/mpbuild/internal/fsprobe"
	"git.home.luguber.info/inful/mpbuild/internal/git"
	"git.home.luguber.info/inful/mpbuild/internal/logfields"
	"git.home.luguber.info/inful/mpbuild/internal/metrics"
	"git.home.luguber.info/inful/mpbuild/internal/platform"
	"github.com/google/uuid"

	// Register the native platform providers.
	_ "git.home.luguber.info/inful/mpbuild/internal/target/platforms/all"
)

// Generator builds the bundler configuration for one project and platform.
type Generator struct {
	cfg      *config.Config
	pctx     platform.Context
	root     string
	probe    fsprobe.Prober
	parser   appconfig.EmbeddedConfigParser
	readFile func(string) ([]byte, error)
	recorder metrics.Recorder
	observer BuildObserver
}

// NewGenerator creates a generator for the project rooted at root. A nil cfg
// means defaults.
func NewGenerator(cfg *config.Config, pctx platform.Context, root string) *Generator {
	if cfg == nil {
		cfg = config.Default()
	}
	probe := fsprobe.New(root)
	return &Generator{
		cfg:      cfg,
		pctx:     pctx,
		root:     probe.Root,
		probe:    probe,
		parser:   appconfig.NewParser(appconfig.ScannerFor(string(cfg.Parser))),
		readFile: os.ReadFile,
		recorder: metrics.NoopRecorder{},
		observer: NoopObserver{},
	}
}

// SetRecorder injects a metrics recorder (optional). Returns the generator for chaining.
func (g *Generator) SetRecorder(r metrics.Recorder) *Generator {
	if r == nil {
		g.recorder = metrics.NoopRecorder{}
		return g
	}
	g.recorder = r
	return g
}

// SetObserver installs an additional build observer.
func (g *Generator) SetObserver(o BuildObserver) *Generator {
	if o == nil {
		o = NoopObserver{}
	}
	g.observer = o
	return g
}

// ResolveEntries runs entry graph resolution on its own.
func (g *Generator) ResolveEntries() (*entry.Result, error) {
	return entry.NewResolver(g.probe, g.cfg.SourceDir).Resolve(g.parser, g.readFile)
}

func (g *Generator) stages() []StageDef {
	if g.pctx.WebLike() {
		return []StageDef{{Name: StageBase, Fn: stageBase}}
	}
	return []StageDef{
		{Name: StageBase, Fn: stageBase},
		{Name: StageResolveEntries, Fn: stageResolveEntries},
		{Name: StageSelectTarget, Fn: stageSelectTarget},
		{Name: StageOptimization, Fn: stageOptimization},
		{Name: StageAssembleRules, Fn: stageAssembleRules},
		{Name: StageCorePlugins, Fn: stageCorePlugins},
		{Name: StageProvideAPI, Fn: stageProvideAPI},
		{Name: StageNativeAssets, Fn: stageNativeAssets},
	}
}

// Generate runs every stage and returns the assembled configuration. The report
// is returned even on failure; the configuration is not.
func (g *Generator) Generate(ctx context.Context) (*BuildConfig, *BuildReport, error) {
	bs, err := g.GenerateWithState(ctx)
	if err != nil {
		return nil, bs.Report, err
	}
	return bs.Config, bs.Report, nil
}

// GenerateWithState is Generate for callers that need the intermediate build state
// (the native copy plan, the resolved entry graph). The state is never nil.
func (g *Generator) GenerateWithState(ctx context.Context) (*BuildState, error) {
	report := newBuildReport(uuid.NewString(), g.pctx.ID, g.pctx.Mode())
	if rev, err := git.HeadRevision(g.root); err == nil {
		report.Revision = &rev
	} else if !errors.Is(err, git.ErrNotRepository) {
		slog.Debug("Source revision unavailable", logfields.Error(err))
	}
	slog.Info("Generating bundler configuration",
		logfields.BuildID(report.BuildID),
		logfields.Platform(g.pctx.ID),
		slog.String("mode", report.Mode))

	bs := newBuildState(g, report)
	err := runStages(ctx, bs, g.stages())
	report.Plugins = bs.Config.PluginNames()
	report.finish()
	report.deriveOutcome()
	bs.observer().OnBuildComplete(report)
	return bs, err
}
