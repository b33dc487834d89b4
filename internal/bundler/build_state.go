package bundler

import (
	"context"
	"log/slog"

	"git.home.luguber.info/inful/mpbuild/internal/entry"
	ferrors "git.home.luguber.info/inful/mpbuild/internal/foundation/errors"
	"git.home.luguber.info/inful/mpbuild/internal/logfields"
	"git.home.luguber.info/inful/mpbuild/internal/target"
)

// Stage is one step of the configuration build.
type Stage func(ctx context.Context, bs *BuildState) error

// BuildState carries mutable state for one Generate call.
type BuildState struct {
	gen      *Generator
	Config   *BuildConfig
	Report   *BuildReport
	Entries  *entry.Result
	Provider target.Provider
	Native   *NativeCopy

	pending []*ferrors.ClassifiedError
}

func newBuildState(g *Generator, report *BuildReport) *BuildState {
	return &BuildState{gen: g, Config: &BuildConfig{}, Report: report}
}

func (bs *BuildState) observer() BuildObserver {
	return multiObserver{recorderObserver{rec: bs.gen.recorder}, bs.gen.observer}
}

// warn queues warnings for the running stage.
func (bs *BuildState) warn(ws ...*ferrors.ClassifiedError) {
	for _, w := range ws {
		if w != nil {
			bs.pending = append(bs.pending, w)
		}
	}
}

// flushWarnings logs and records queued warnings against stage.
func (bs *BuildState) flushWarnings(stage StageName) StageResult {
	if len(bs.pending) == 0 {
		return StageResultSuccess
	}
	for _, w := range bs.pending {
		attrs := append([]any{logfields.Stage(string(stage))}, w.LogAttrs()...)
		slog.Warn(w.Message(), attrs...)
		bs.Report.AddIssue(stage, w)
	}
	bs.pending = nil
	return StageResultWarning
}
