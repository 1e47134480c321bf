// pkg/analysis/analyzer.go
package analysis

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dco-tools/changeover-spc/pkg/cleaner"
	"github.com/dco-tools/changeover-spc/pkg/config"
	"github.com/dco-tools/changeover-spc/pkg/model"
	"github.com/dco-tools/changeover-spc/pkg/phase"
	"github.com/dco-tools/changeover-spc/pkg/spc"
)

// Options parameterizes one analysis run. Each run receives its own copy;
// the analyzer keeps no per-run state, so concurrent runs are independent.
type Options struct {
	AnalysisPoints       int
	TimeThresholdSeconds int
	ChangeoverType       string
	BatchLocations       []string
	ActivityAreas        []string
}

// OptionsFromConfig derives run options from the application configuration.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		AnalysisPoints:       cfg.AnalysisPoints,
		TimeThresholdSeconds: cfg.TimeThresholdSeconds,
		ChangeoverType:       cfg.ChangeoverType,
		BatchLocations:       cfg.BatchLocations,
		ActivityAreas:        cfg.ActivityAreas,
	}
}

// Analyzer orchestrates the batch and activity pipelines: cleaning, window
// selection, statistics, limits, anomaly detection, and phase summaries.
type Analyzer struct {
	cleaner *cleaner.DataCleaner
	logger  *zap.Logger
	metrics *Metrics
}

// NewAnalyzer creates a new Analyzer. metrics may be nil when
// instrumentation is not wanted (e.g. in tests).
func NewAnalyzer(logger *zap.Logger, metrics *Metrics) (*Analyzer, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	dc, err := cleaner.NewDataCleaner(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create data cleaner: %w", err)
	}
	return &Analyzer{cleaner: dc, logger: logger, metrics: metrics}, nil
}

// Run executes both pipelines on one input pair. The pipelines are
// independent: a failure on one side is reported in its error field while
// the other side's result is still returned. A nil input slice means the
// corresponding dataset was not supplied.
func (a *Analyzer) Run(batch []model.BatchRecord, activity []model.ActivityRecord, opts Options) *model.Report {
	start := time.Now()
	report := &model.Report{
		RunID:       uuid.New().String(),
		GeneratedAt: start.UTC(),
	}

	if batch != nil {
		result, err := a.AnalyzeBatch(batch, opts)
		if err != nil {
			report.BatchError = err.Error()
			a.metrics.observeRun(pipelineBatch, statusError)
			a.logger.Warn("Batch pipeline failed",
				zap.String("run_id", report.RunID),
				zap.Error(err))
		} else {
			report.Batch = result
			a.metrics.observeRun(pipelineBatch, statusOK)
			a.metrics.addAnomalies(len(result.Anomalies))
		}
	}

	if activity != nil {
		result, err := a.AnalyzeActivity(activity, opts)
		if err != nil {
			report.ActivityError = err.Error()
			a.metrics.observeRun(pipelineActivity, statusError)
			a.logger.Warn("Activity pipeline failed",
				zap.String("run_id", report.RunID),
				zap.Error(err))
		} else {
			report.Activity = result
			a.metrics.observeRun(pipelineActivity, statusOK)
		}
	}

	elapsed := time.Since(start)
	report.ElapsedMillis = elapsed.Milliseconds()
	a.metrics.observeDuration(elapsed)

	a.logger.Info("Analysis run complete",
		zap.String("run_id", report.RunID),
		zap.Duration("elapsed", elapsed))

	return report
}

// AnalyzeBatch runs the batch pipeline: clean, select the analysis window,
// compute statistics and limits, detect anomalies, and assemble the chart
// series for the presentation collaborator.
func (a *Analyzer) AnalyzeBatch(records []model.BatchRecord, opts Options) (*model.BatchAnalysis, error) {
	cleaned, steps := a.cleaner.CleanBatch(records, cleaner.BatchOptions{
		ChangeoverType:       opts.ChangeoverType,
		Locations:            opts.BatchLocations,
		TimeThresholdSeconds: opts.TimeThresholdSeconds,
	})

	window := spc.SelectWindow(cleaned, opts.AnalysisPoints)

	values := make([]float64, len(window))
	targets := make([]float64, len(window))
	for i, p := range window {
		values[i] = p.Value
		targets[i] = p.Target
	}

	statistics, err := spc.ComputeStatistics(values, targets)
	if err != nil {
		return nil, fmt.Errorf("batch pipeline: %w", err)
	}

	limits := spc.ComputeLimits(statistics.TargetMean)
	anomalies := spc.Detect(window, statistics.TargetMean, limits)

	return &model.BatchAnalysis{
		CleaningSteps: steps,
		Statistics:    statistics,
		Limits:        limits,
		Anomalies:     anomalies,
		Chart:         buildChartSeries(window, statistics, limits, anomalies),
	}, nil
}

// AnalyzeActivity runs the activity pipeline: clean, then summarize per
// phase.
func (a *Analyzer) AnalyzeActivity(records []model.ActivityRecord, opts Options) (*model.ActivityAnalysis, error) {
	cleaned, steps, info := a.cleaner.CleanActivity(records, cleaner.ActivityOptions{
		ChangeoverType: opts.ChangeoverType,
		Areas:          opts.ActivityAreas,
	})

	return &model.ActivityAnalysis{
		CleaningSteps: steps,
		BatchInfo:     info,
		Phases:        phase.Analyze(cleaned),
	}, nil
}
