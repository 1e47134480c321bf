package analysis

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsNilReceiverIsSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.observeRun(pipelineBatch, statusOK)
		m.addAnomalies(3)
		m.observeDuration(time.Second)
	})
}

func TestMetricsCounts(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.observeRun(pipelineBatch, statusOK)
	m.observeRun(pipelineBatch, statusOK)
	m.observeRun(pipelineActivity, statusError)
	m.addAnomalies(5)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.runs.WithLabelValues(pipelineBatch, statusOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.runs.WithLabelValues(pipelineActivity, statusError)))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.anomalies))
}
