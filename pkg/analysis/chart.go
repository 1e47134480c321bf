// pkg/analysis/chart.go
package analysis

import (
	"time"

	"github.com/dco-tools/changeover-spc/pkg/model"
)

// buildChartSeries assembles everything the plotting collaborator renders:
// the raw series, the ten reference lines, the five zone bands, the
// highlighted first/last-10% spans, and the flagged positions.
func buildChartSeries(window []model.WindowPoint, s model.Statistics, limits model.ControlLimits, anomalies []model.AnomalyRecord) model.ChartSeries {
	n := len(window)
	values := make([]float64, n)
	timestamps := make([]time.Time, n)
	for i, p := range window {
		values[i] = p.Value
		timestamps[i] = p.EndTime
	}

	span := n / 10
	if span < 1 {
		span = 1
	}

	anomalyIndexes := make([]int, len(anomalies))
	for i, a := range anomalies {
		anomalyIndexes[i] = a.Point - 1
	}

	return model.ChartSeries{
		Values:     values,
		Timestamps: timestamps,
		ReferenceLines: []model.ReferenceLine{
			{Name: "Mean", Value: s.Mean},
			{Name: "Median", Value: s.Median},
			{Name: "Mode", Value: s.Mode},
			{Name: "Target", Value: limits.TargetMean},
			{Name: "UCL", Value: limits.UCL},
			{Name: "LCL", Value: limits.LCL},
			{Name: "UWL", Value: limits.UWL},
			{Name: "LWL", Value: limits.LWL},
			{Name: "USL", Value: limits.USL},
			{Name: "LSL", Value: limits.LSL},
		},
		Zones: []model.ZoneBand{
			{Name: "red_low", Band: limits.ZoneRedLow},
			{Name: "yellow_low", Band: limits.ZoneYellowLow},
			{Name: "green", Band: limits.ZoneGreen},
			{Name: "yellow_high", Band: limits.ZoneYellowHigh},
			{Name: "red_high", Band: limits.ZoneRedHigh},
		},
		HeadSpan:       model.IndexSpan{First: 0, Last: span - 1},
		TailSpan:       model.IndexSpan{First: n - span, Last: n - 1},
		AnomalyIndexes: anomalyIndexes,
	}
}
