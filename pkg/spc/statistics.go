// pkg/spc/statistics.go
package spc

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/montanaflynn/stats"

	"github.com/dco-tools/changeover-spc/pkg/model"
)

// ErrInsufficientData indicates the analysis window is empty after cleaning
// and selection. The caller reports the condition instead of receiving
// zeroed statistics.
var ErrInsufficientData = errors.New("insufficient data: analysis window is empty")

// Capability rating thresholds on Cpk.
const (
	cpkCapable  = 1.33
	cpkMarginal = 1.00
)

// ComputeStatistics computes the descriptive statistics and capability
// indices for one analysis window. values and targets are the actual and
// planned durations in minutes, aligned by index.
func ComputeStatistics(values, targets []float64) (model.Statistics, error) {
	if len(values) == 0 {
		return model.Statistics{}, ErrInsufficientData
	}
	if len(values) != len(targets) {
		return model.Statistics{}, fmt.Errorf("value/target series length mismatch: %d vs %d", len(values), len(targets))
	}

	// The window is non-empty, so none of these can fail.
	mean, _ := stats.Mean(values)
	median, _ := stats.Median(values)
	minVal, _ := stats.Min(values)
	maxVal, _ := stats.Max(values)
	targetMean, _ := stats.Mean(targets)

	stdPop, _ := stats.StandardDeviationPopulation(values)
	var stdSample float64
	if len(values) > 1 {
		stdSample, _ = stats.StandardDeviationSample(values)
	}

	mode, modeCount := modeLowestTie(values)

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	s := model.Statistics{
		NPoints:       len(values),
		Mean:          mean,
		Median:        median,
		Mode:          mode,
		ModeCount:     modeCount,
		StdSample:     stdSample,
		StdPopulation: stdPop,
		P10:           percentile(sorted, 10),
		P25:           percentile(sorted, 25),
		P75:           percentile(sorted, 75),
		P90:           percentile(sorted, 90),
		Min:           minVal,
		Max:           maxVal,
		Range:         maxVal - minVal,
		TargetMean:    targetMean,
	}
	s.Capability = capability(mean, stdSample, stdPop, ComputeLimits(targetMean))

	return s, nil
}

// capability computes Cp/Cpk on sample variability and Ppk on population
// variability. Every index degrades to zero when the relevant standard
// deviation is zero.
func capability(mean, stdSample, stdPop float64, limits model.ControlLimits) model.Capability {
	var c model.Capability
	if stdSample > 0 {
		c.Cpu = (limits.USL - mean) / (3 * stdSample)
		c.Cpl = (mean - limits.LSL) / (3 * stdSample)
		c.Cpk = math.Min(c.Cpu, c.Cpl)
		c.Cp = (limits.USL - limits.LSL) / (6 * stdSample)
	}
	if stdPop > 0 {
		c.Ppu = (limits.USL - mean) / (3 * stdPop)
		c.Ppl = (mean - limits.LSL) / (3 * stdPop)
		c.Ppk = math.Min(c.Ppu, c.Ppl)
	}

	switch {
	case c.Cpk >= cpkCapable:
		c.Rating = model.RatingCapable
	case c.Cpk >= cpkMarginal:
		c.Rating = model.RatingMarginallyCapable
	default:
		c.Rating = model.RatingNotCapable
	}
	return c
}

// modeLowestTie returns the most frequent value and its count, preferring
// the lowest value among equally frequent ones so the result is
// deterministic.
func modeLowestTie(values []float64) (float64, int) {
	freq := make(map[float64]int, len(values))
	for _, v := range values {
		freq[v]++
	}

	mode := math.Inf(1)
	count := 0
	for v, n := range freq {
		if n > count || (n == count && v < mode) {
			mode = v
			count = n
		}
	}
	return mode, count
}

// percentile evaluates the p-th percentile of an ascending-sorted series by
// linear interpolation at rank p/100*(n-1). The stats library's Percentile
// uses a nearest-rank variant, which disagrees with the chart overlays this
// engine was calibrated against.
func percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}

	rank := p / 100 * float64(n-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo]
	}
	return sorted[lo] + (rank-float64(lo))*(sorted[hi]-sorted[lo])
}
