// pkg/analysis/metrics.go
package analysis

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	pipelineBatch    = "batch"
	pipelineActivity = "activity"

	statusOK    = "ok"
	statusError = "error"
)

// Metrics instruments analysis runs. All methods are safe on a nil
// receiver, so callers that do not collect metrics pass nil.
type Metrics struct {
	runs      *prometheus.CounterVec
	anomalies prometheus.Counter
	duration  prometheus.Histogram
}

// NewMetrics registers the analysis collectors with the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		runs: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "spc_pipeline_runs_total",
			Help: "Pipeline executions by pipeline and status.",
		}, []string{"pipeline", "status"}),
		anomalies: factory.NewCounter(prometheus.CounterOpts{
			Name: "spc_anomalies_flagged_total",
			Help: "Anomaly records produced across all runs.",
		}),
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "spc_analysis_duration_seconds",
			Help:    "Wall-clock duration of full analysis runs.",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

func (m *Metrics) observeRun(pipeline, status string) {
	if m == nil {
		return
	}
	m.runs.WithLabelValues(pipeline, status).Inc()
}

func (m *Metrics) addAnomalies(n int) {
	if m == nil {
		return
	}
	m.anomalies.Add(float64(n))
}

func (m *Metrics) observeDuration(d time.Duration) {
	if m == nil {
		return
	}
	m.duration.Observe(d.Seconds())
}
