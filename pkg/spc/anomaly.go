// pkg/spc/anomaly.go
package spc

import (
	"math"
	"sort"
	"time"

	"github.com/dco-tools/changeover-spc/pkg/model"
)

// Run lengths of the pattern rules. A window shorter than a rule's run
// length yields no flags from that rule.
const (
	sameSideRunLength    = 9
	trendRunLength       = 6
	alternationRunLength = 14
)

// Detect applies the four control-chart rules to the ordered window (index 0
// = oldest) and returns the flagged points. Rules run in fixed order 1→4 and
// an index is attributed to the first rule that catches it, so every point
// carries exactly one rule label. The output is deduplicated by (batch id,
// timestamp) and sorted ascending by point index. The function is a pure
// computation: same input, same output.
func Detect(window []model.WindowPoint, targetMean float64, limits model.ControlLimits) []model.AnomalyRecord {
	values := make([]float64, len(window))
	for i, p := range window {
		values[i] = p.Value
	}

	flagged := make(map[int]struct{}, len(window))
	var records []model.AnomalyRecord

	attribute := func(indexes []int, rule model.Rule) {
		for _, i := range indexes {
			if _, done := flagged[i]; done {
				continue
			}
			flagged[i] = struct{}{}
			p := window[i]
			records = append(records, model.AnomalyRecord{
				Point:     i + 1,
				Line:      p.Line,
				BatchID:   p.BatchID,
				Time:      p.EndTime,
				Value:     round2(p.Value),
				Target:    round2(p.Target),
				Deviation: round2(p.Value - p.Target),
				Rule:      rule,
				RuleLabel: rule.Label(),
			})
		}
	}

	attribute(outOfControl(values, limits), model.RuleOutOfControl)
	attribute(sameSideRuns(values, targetMean), model.RuleSameSideRun)
	attribute(trendRuns(values), model.RuleTrend)
	attribute(alternatingRuns(values), model.RuleAlternation)

	records = dedupeByBusinessKey(records)
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Point < records[j].Point
	})
	return records
}

// outOfControl flags every point beyond the control limits (Rule 1).
func outOfControl(values []float64, limits model.ControlLimits) []int {
	var indexes []int
	for i, v := range values {
		if v > limits.UCL || v < limits.LCL {
			indexes = append(indexes, i)
		}
	}
	return indexes
}

// sameSideRuns flags every point of any run of 9 consecutive values strictly
// on one side of the target (Rule 2). Overlapping runs union.
func sameSideRuns(values []float64, target float64) []int {
	return scanRuns(values, sameSideRunLength, func(segment []float64) bool {
		above, below := true, true
		for _, v := range segment {
			if v <= target {
				above = false
			}
			if v >= target {
				below = false
			}
		}
		return above || below
	})
}

// trendRuns flags every point of any run of 6 strictly monotone values,
// increasing or decreasing (Rule 3).
func trendRuns(values []float64) []int {
	return scanRuns(values, trendRunLength, func(segment []float64) bool {
		increasing, decreasing := true, true
		for j := 0; j+1 < len(segment); j++ {
			if segment[j] >= segment[j+1] {
				increasing = false
			}
			if segment[j] <= segment[j+1] {
				decreasing = false
			}
		}
		return increasing || decreasing
	})
}

// alternatingRuns flags every point of any run of 14 values whose pairwise
// differences strictly alternate sign starting upward (Rule 4).
func alternatingRuns(values []float64) []int {
	return scanRuns(values, alternationRunLength, func(segment []float64) bool {
		for j := 0; j+1 < len(segment); j++ {
			if j%2 == 0 {
				if segment[j] >= segment[j+1] {
					return false
				}
			} else {
				if segment[j] <= segment[j+1] {
					return false
				}
			}
		}
		return true
	})
}

// scanRuns slides a fixed-length window over the series and collects the
// union of all indexes covered by a matching segment, sorted ascending.
func scanRuns(values []float64, runLength int, match func(segment []float64) bool) []int {
	hits := make(map[int]struct{})
	for i := 0; i+runLength <= len(values); i++ {
		if match(values[i : i+runLength]) {
			for j := i; j < i+runLength; j++ {
				hits[j] = struct{}{}
			}
		}
	}

	indexes := make([]int, 0, len(hits))
	for i := range hits {
		indexes = append(indexes, i)
	}
	sort.Ints(indexes)
	return indexes
}

type businessKey struct {
	batchID string
	at      time.Time
}

// dedupeByBusinessKey keeps the first record per (batch id, timestamp) pair
// in attribution order.
func dedupeByBusinessKey(records []model.AnomalyRecord) []model.AnomalyRecord {
	seen := make(map[businessKey]struct{}, len(records))
	out := records[:0:0]
	for _, r := range records {
		key := businessKey{batchID: r.BatchID, at: r.Time}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, r)
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
