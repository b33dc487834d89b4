package bundler

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	ferrors "git.home.luguber.info/inful/mpbuild/internal/foundation/errors"
	"git.home.luguber.info/inful/mpbuild/internal/git"
	"git.home.luguber.info/inful/mpbuild/internal/metrics"
)

// BuildOutcome is the typed enumeration of final build result states.
type BuildOutcome string

const (
	OutcomeSuccess  BuildOutcome = "success"
	OutcomeWarning  BuildOutcome = "warning"
	OutcomeFailed   BuildOutcome = "failed"
	OutcomeCanceled BuildOutcome = "canceled"
)

// IssueSeverity represents normalized severity levels.
type IssueSeverity string

const (
	SeverityError   IssueSeverity = "error"
	SeverityWarning IssueSeverity = "warning"
)

// Issue codes not originating from a classified warning. Codes are a stable
// contract: append only.
const (
	IssueCanceled          = "BUILD_CANCELED"
	IssueGenericStageError = "GENERIC_STAGE_ERROR"
)

// ReportIssue is a structured, machine-parseable problem record.
type ReportIssue struct {
	Code     string         `json:"code"`
	Stage    StageName      `json:"stage"`
	Severity IssueSeverity  `json:"severity"`
	Message  string         `json:"message"`
	Context  map[string]any `json:"context,omitempty"`
}

// BuildReport captures what one configuration build did.
type BuildReport struct {
	SchemaVersion  int
	BuildID        string
	Platform       string
	Mode           string
	Revision       *git.Revision
	Start          time.Time
	End            time.Time
	Entries        int
	Rules          int
	Plugins        []string
	NativeCopy     *NativeCopy
	StageDurations map[StageName]time.Duration
	StageResults   map[StageName]StageResult
	Issues         []ReportIssue
	Outcome        BuildOutcome
	// ConfigPath is set once the configuration document has been written.
	ConfigPath string
}

func newBuildReport(buildID, platformID, mode string) *BuildReport {
	return &BuildReport{
		SchemaVersion:  1,
		BuildID:        buildID,
		Platform:       platformID,
		Mode:           mode,
		Start:          time.Now(),
		StageDurations: make(map[StageName]time.Duration),
		StageResults:   make(map[StageName]StageResult),
	}
}

// AddIssue records a classified error or warning raised during stage.
func (r *BuildReport) AddIssue(stage StageName, ce *ferrors.ClassifiedError) {
	sev := SeverityError
	if ce.IsWarning() {
		sev = SeverityWarning
	}
	code := ce.Code()
	if code == "" {
		code = IssueGenericStageError
	}
	issue := ReportIssue{Code: code, Stage: stage, Severity: sev, Message: ce.Message()}
	if ctx := ce.Context(); len(ctx) > 0 {
		issue.Context = map[string]any(ctx)
	}
	r.Issues = append(r.Issues, issue)
}

// Warnings returns the warning issues in recording order.
func (r *BuildReport) Warnings() []ReportIssue {
	var out []ReportIssue
	for _, is := range r.Issues {
		if is.Severity == SeverityWarning {
			out = append(out, is)
		}
	}
	return out
}

// HasErrors reports whether any error-severity issue was recorded.
func (r *BuildReport) HasErrors() bool {
	for _, is := range r.Issues {
		if is.Severity == SeverityError {
			return true
		}
	}
	return false
}

func (r *BuildReport) finish() { r.End = time.Now() }

// deriveOutcome sets Outcome from the recorded stage results and issues.
func (r *BuildReport) deriveOutcome() {
	for _, res := range r.StageResults {
		if res == StageResultCanceled {
			r.Outcome = OutcomeCanceled
			return
		}
	}
	switch {
	case r.HasErrors():
		r.Outcome = OutcomeFailed
	case len(r.Warnings()) > 0:
		r.Outcome = OutcomeWarning
	default:
		r.Outcome = OutcomeSuccess
	}
}

// Summary returns a human-readable single-line summary.
func (r *BuildReport) Summary() string {
	return fmt.Sprintf("platform=%s mode=%s entries=%d rules=%d plugins=%d warnings=%d duration=%s outcome=%s",
		r.Platform, r.Mode, r.Entries, r.Rules, len(r.Plugins), len(r.Warnings()),
		r.End.Sub(r.Start).Truncate(time.Millisecond), r.Outcome)
}

// ReportFileName returns the report file name for a platform.
func ReportFileName(platformID string) string {
	return "build-report." + platformID + ".json"
}

// Persist writes the report atomically into dir and returns the written path.
func (r *BuildReport) Persist(dir string) (string, error) {
	if r.End.IsZero() {
		r.finish()
		r.deriveOutcome()
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", fmt.Errorf("ensure dir for report: %w", err)
	}
	data, err := json.MarshalIndent(r.serializable(), "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal report json: %w", err)
	}
	path := filepath.Join(dir, ReportFileName(r.Platform))
	if err := writeAtomic(path, append(data, '\n')); err != nil {
		return "", err
	}
	return path, nil
}

// buildReportSerializable is the stable JSON form of BuildReport.
type buildReportSerializable struct {
	SchemaVersion  int               `json:"schema_version"`
	BuildID        string            `json:"build_id"`
	Platform       string            `json:"platform"`
	Mode           string            `json:"mode"`
	Revision       *git.Revision     `json:"revision,omitempty"`
	Start          time.Time         `json:"start"`
	End            time.Time         `json:"end"`
	DurationMS     int64             `json:"duration_ms"`
	Entries        int               `json:"entries"`
	Rules          int               `json:"rules"`
	Plugins        []string          `json:"plugins"`
	NativeCopy     *NativeCopy       `json:"native_copy,omitempty"`
	StageDurations map[string]int64  `json:"stage_durations_ms"`
	StageResults   map[string]string `json:"stage_results"`
	Issues         []ReportIssue     `json:"issues"`
	Outcome        BuildOutcome      `json:"outcome"`
	ConfigPath     string            `json:"config_path,omitempty"`
}

func (r *BuildReport) serializable() buildReportSerializable {
	durations := make(map[string]int64, len(r.StageDurations))
	for k, v := range r.StageDurations {
		durations[string(k)] = v.Milliseconds()
	}
	results := make(map[string]string, len(r.StageResults))
	for k, v := range r.StageResults {
		results[string(k)] = string(v)
	}
	issues := r.Issues
	if issues == nil {
		issues = []ReportIssue{}
	}
	plugins := r.Plugins
	if plugins == nil {
		plugins = []string{}
	}
	return buildReportSerializable{
		SchemaVersion:  r.SchemaVersion,
		BuildID:        r.BuildID,
		Platform:       r.Platform,
		Mode:           r.Mode,
		Revision:       r.Revision,
		Start:          r.Start,
		End:            r.End,
		DurationMS:     r.End.Sub(r.Start).Milliseconds(),
		Entries:        r.Entries,
		Rules:          r.Rules,
		Plugins:        plugins,
		NativeCopy:     r.NativeCopy,
		StageDurations: durations,
		StageResults:   results,
		Issues:         issues,
		Outcome:        r.Outcome,
		ConfigPath:     r.ConfigPath,
	}
}

// recordStageResult stores the stage result and forwards it to the recorder.
func (r *BuildReport) recordStageResult(stage StageName, res StageResult, rec metrics.Recorder) {
	r.StageResults[stage] = res
	if rec != nil {
		rec.IncStageResult(string(stage), metrics.ResultLabel(res))
	}
}
