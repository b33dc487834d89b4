package bundler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	ferrors "git.home.luguber.info/inful/mpbuild/internal/foundation/errors"
	"git.home.luguber.info/inful/mpbuild/internal/logfields"
)

// runStages executes stages in order, recording timing and stopping on the first
// error. Warnings raised by a stage downgrade its result but never stop the run.
func runStages(ctx context.Context, bs *BuildState, stages []StageDef) error {
	obs := bs.observer()
	for _, st := range stages {
		if err := ctx.Err(); err != nil {
			ce := ferrors.WrapError(err, ferrors.CategoryRuntime, fmt.Sprintf("build canceled before stage %s", st.Name)).
				WithCode(IssueCanceled).
				Build()
			bs.Report.AddIssue(st.Name, ce)
			bs.Report.recordStageResult(st.Name, StageResultCanceled, bs.gen.recorder)
			obs.OnStageComplete(st.Name, 0, StageResultCanceled)
			return ce
		}

		obs.OnStageStart(st.Name)
		t0 := time.Now()
		err := st.Fn(ctx, bs)
		dur := time.Since(t0)
		bs.Report.StageDurations[st.Name] = dur

		result := bs.flushWarnings(st.Name)
		if err != nil {
			result = StageResultFatal
			ce, ok := ferrors.AsClassified(err)
			if !ok {
				ce = ferrors.WrapError(err, ferrors.CategoryBuild, fmt.Sprintf("stage %s failed", st.Name)).
					Fatal().
					Build()
				err = ce
			}
			bs.Report.AddIssue(st.Name, ce)
		}
		bs.Report.recordStageResult(st.Name, result, bs.gen.recorder)
		obs.OnStageComplete(st.Name, dur, result)
		slog.Debug("Stage complete",
			logfields.Stage(string(st.Name)),
			logfields.DurationMS(float64(dur.Microseconds())/1000),
			slog.String("result", string(result)))
		if err != nil {
			return err
		}
	}
	return nil
}
