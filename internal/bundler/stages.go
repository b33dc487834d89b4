package bundler

import (
	"context"
	"log/slog"

	"git.home.luguber.info/inful/mpbuild/internal/logfields"
	"git.home.luguber.info/inful/mpbuild/internal/target"
)

func stageBase(_ context.Context, bs *BuildState) error {
	g := bs.gen
	bs.Config.Mode = g.pctx.Mode()
	bs.Config.Devtool = Devtool(g.pctx, g.cfg.ProductionSourceMap)
	bs.Config.Output = BuildOutput(g.root, g.pctx)
	return nil
}

func stageResolveEntries(_ context.Context, bs *BuildState) error {
	res, err := bs.gen.ResolveEntries()
	if err != nil {
		return err
	}
	bs.Entries = res
	bs.Config.Entry = res.Entries
	bs.Report.Entries = len(res.Entries)
	bs.warn(res.Warnings...)
	slog.Info("Resolved entry graph",
		logfields.Entry(res.RootEntry),
		logfields.Count(len(res.Entries)),
		slog.Int("pages", len(res.App.Pages)),
		slog.Int("subpackages", len(res.App.Subpackages)))
	return nil
}

func stageSelectTarget(_ context.Context, bs *BuildState) error {
	provider, w := target.Lookup(bs.gen.pctx)
	bs.warn(w)
	desc, ws := target.Select(provider, bs.gen.probe)
	bs.warn(ws...)
	bs.Provider = provider
	bs.Config.Target = &desc
	return nil
}

func stageOptimization(_ context.Context, bs *BuildState) error {
	bs.Config.Optimization = BuildOptimization(bs.gen.pctx, bs.gen.cfg.ProductionSourceMap)
	return nil
}

func stageAssembleRules(_ context.Context, bs *BuildState) error {
	rules := AssembleRules(bs.gen.cfg.CSS.LoaderOptions)
	bs.Config.Module = &Module{Rules: rules}
	bs.Report.Rules = len(rules)
	return nil
}

func stageCorePlugins(_ context.Context, bs *BuildState) error {
	bs.Config.Resolve = &Resolve{Alias: Aliases()}
	for _, p := range CorePlugins(bs.gen.pctx) {
		bs.Config.addPlugin(p)
	}
	return nil
}

func stageProvideAPI(_ context.Context, bs *BuildState) error {
	p, ok := ProvideAPI(bs.gen.probe, bs.Provider)
	if !ok {
		slog.Debug("Platform API module not installed", logfields.Path(bs.Provider.APIModule()))
		return nil
	}
	bs.Config.addPlugin(p)
	return nil
}

func stageNativeAssets(_ context.Context, bs *BuildState) error {
	nc := PlanNativeCopy(bs.gen.probe, bs.gen.cfg.NativeDir, bs.gen.pctx)
	if nc == nil {
		slog.Debug("No native component directory", logfields.Path(bs.gen.cfg.NativeDir))
		return nil
	}
	bs.Native = nc
	bs.Report.NativeCopy = nc
	bs.Config.addPlugin(nc.Plugin())
	return nil
}
