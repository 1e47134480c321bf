// pkg/model/result.go
package model

import "time"

// ReferenceLine is one horizontal reference for the control chart (mean,
// median, mode, target, and the six limits).
type ReferenceLine struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// ZoneBand is a named background band for the control chart.
type ZoneBand struct {
	Name string `json:"name"`
	Band Band   `json:"band"`
}

// IndexSpan is an inclusive range of 0-based positions into the series.
type IndexSpan struct {
	First int `json:"first"`
	Last  int `json:"last"`
}

// ChartSeries carries everything a plotting collaborator needs to render the
// banded time-series and the capability histogram without recomputing
// anything: the raw series, ten reference lines, the five zone bands, the
// highlighted head/tail spans, and the 0-based positions of flagged points.
// The normal-overlay parameters are Statistics.Mean and
// Statistics.StdPopulation.
type ChartSeries struct {
	Values         []float64       `json:"values"`
	Timestamps     []time.Time     `json:"timestamps"`
	ReferenceLines []ReferenceLine `json:"reference_lines"`
	Zones          []ZoneBand      `json:"zones"`
	HeadSpan       IndexSpan       `json:"head_span"`
	TailSpan       IndexSpan       `json:"tail_span"`
	AnomalyIndexes []int           `json:"anomaly_indexes"`
}

// BatchAnalysis is the structured result of the batch pipeline.
type BatchAnalysis struct {
	CleaningSteps []string        `json:"cleaning_steps"`
	Statistics    Statistics      `json:"statistics"`
	Limits        ControlLimits   `json:"limits"`
	Anomalies     []AnomalyRecord `json:"anomalies"`
	Chart         ChartSeries     `json:"chart"`
}

// ActivityAnalysis is the structured result of the activity pipeline. Phases
// preserves the fixed phase order; phases with no records are omitted.
type ActivityAnalysis struct {
	CleaningSteps []string          `json:"cleaning_steps"`
	BatchInfo     ActivityBatchInfo `json:"batch_info"`
	Phases        []PhaseSummary    `json:"phases"`
}

// Report is one full analysis run. The two pipelines are independent: either
// side may fail while the other still reports, so each carries its own error
// string.
type Report struct {
	RunID       string    `json:"run_id"`
	GeneratedAt time.Time `json:"generated_at"`

	Batch      *BatchAnalysis `json:"batch,omitempty"`
	BatchError string         `json:"batch_error,omitempty"`

	Activity      *ActivityAnalysis `json:"activity,omitempty"`
	ActivityError string            `json:"activity_error,omitempty"`

	ElapsedMillis int64 `json:"elapsed_ms"`
}
