package metrics

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

const namespace = "mpbuild"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	reg           *prom.Registry
	stageDuration *prom.HistogramVec
	buildDuration *prom.HistogramVec
	stageResults  *prom.CounterVec
	buildOutcome  *prom.CounterVec
	warnings      *prom.CounterVec
	entries       *prom.GaugeVec
	rules         *prom.GaugeVec
}

// NewPrometheusRecorder constructs and registers the build collectors on reg
// (a fresh registry when nil).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		reg: reg,
		stageDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "stage_duration_seconds",
			Help:      "Duration of individual pipeline stages",
			Buckets:   []float64{.0005, .001, .005, .01, .05, .1, .5, 1},
		}, []string{"stage"}),
		buildDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "build_duration_seconds",
			Help:      "Total configuration build duration",
			Buckets:   prom.DefBuckets,
		}, []string{"platform"}),
		stageResults: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "stage_results_total",
			Help:      "Stage result counts by outcome",
		}, []string{"stage", "result"}),
		buildOutcome: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "build_outcomes_total",
			Help:      "Build outcomes by final status",
		}, []string{"platform", "outcome"}),
		warnings: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "warnings_total",
			Help:      "Recoverable warnings by code",
		}, []string{"code"}),
		entries: prom.NewGaugeVec(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "entries",
			Help:      "Entries in the last resolved entry graph",
		}, []string{"platform"}),
		rules: prom.NewGaugeVec(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "loader_rules",
			Help:      "Loader rules in the last assembled asset pipeline",
		}, []string{"platform"}),
	}
	reg.MustRegister(pr.stageDuration, pr.buildDuration, pr.stageResults, pr.buildOutcome, pr.warnings, pr.entries, pr.rules)
	return pr
}

// Registry exposes the underlying registry for gathering.
func (p *PrometheusRecorder) Registry() *prom.Registry { return p.reg }

func (p *PrometheusRecorder) ObserveStageDuration(stage string, d time.Duration) {
	if p == nil {
		return
	}
	p.stageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

func (p *PrometheusRecorder) ObserveBuildDuration(platform string, d time.Duration) {
	if p == nil {
		return
	}
	p.buildDuration.WithLabelValues(platform).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncStageResult(stage string, result ResultLabel) {
	if p == nil {
		return
	}
	p.stageResults.WithLabelValues(stage, string(result)).Inc()
}

func (p *PrometheusRecorder) IncBuildOutcome(platform string, outcome BuildOutcomeLabel) {
	if p == nil {
		return
	}
	p.buildOutcome.WithLabelValues(platform, string(outcome)).Inc()
}

func (p *PrometheusRecorder) IncWarning(code string) {
	if p == nil {
		return
	}
	p.warnings.WithLabelValues(code).Inc()
}

func (p *PrometheusRecorder) SetEntries(platform string, n int) {
	if p == nil {
		return
	}
	p.entries.WithLabelValues(platform).Set(float64(n))
}

func (p *PrometheusRecorder) SetRules(platform string, n int) {
	if p == nil {
		return
	}
	p.rules.WithLabelValues(platform).Set(float64(n))
}

// WriteTextfile writes the registry in the textfile-collector format. The parent
// directory is created when missing.
func (p *PrometheusRecorder) WriteTextfile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("create metrics dir: %w", err)
	}
	if err := prom.WriteToTextfile(path, p.reg); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
