// pkg/phase/phase.go
package phase

import (
	"math"
	"sort"

	"github.com/montanaflynn/stats"

	"github.com/dco-tools/changeover-spc/pkg/model"
)

// The four changeover phases, in reporting order. Records carry the phase
// name as the line system writes it; summaries report the English label.
var phases = []struct {
	name  string
	label string
}{
	{"清场前准备", "Pre-cleaning"},
	{"清场", "Cleaning"},
	{"切换", "Changeover"},
	{"产线配置", "Line Configuration"},
}

// topGroupLimit caps the task and operator leaderboards per phase.
const topGroupLimit = 5

// Analyze summarizes cleaned activity records per phase: duration
// statistics, the slowest tasks, the most efficient operators, and the
// single fastest and slowest record. Phases with no matching records are
// omitted.
func Analyze(records []model.CleanedActivity) []model.PhaseSummary {
	var summaries []model.PhaseSummary
	for _, ph := range phases {
		var matched []model.CleanedActivity
		for _, r := range records {
			if r.PhaseName == ph.name {
				matched = append(matched, r)
			}
		}
		if len(matched) == 0 {
			continue
		}
		summaries = append(summaries, summarize(ph.label, matched))
	}
	return summaries
}

func summarize(label string, records []model.CleanedActivity) model.PhaseSummary {
	durations := make([]float64, len(records))
	for i, r := range records {
		durations[i] = r.DurationMinutes
	}

	avg, _ := stats.Mean(durations)
	minVal, _ := stats.Min(durations)
	maxVal, _ := stats.Max(durations)
	var std float64
	if len(durations) > 1 {
		std, _ = stats.StandardDeviationSample(durations)
	}

	tasks := groupStats(records, func(r model.CleanedActivity) string { return r.TaskDescription })
	operators := groupStats(records, func(r model.CleanedActivity) string { return r.Operator })

	// Slowest tasks first, most efficient operators first.
	sort.SliceStable(tasks, func(i, j int) bool { return tasks[i].Mean > tasks[j].Mean })
	sort.SliceStable(operators, func(i, j int) bool { return operators[i].Mean < operators[j].Mean })

	summary := model.PhaseSummary{
		Phase:         label,
		AvgMinutes:    avg,
		MinMinutes:    minVal,
		MaxMinutes:    maxVal,
		StdMinutes:    std,
		RecordCount:   len(records),
		ActivityCount: len(tasks),
		TopTasks:      truncate(tasks, topGroupLimit),
		TopOperators:  truncate(operators, topGroupLimit),
	}

	fastest, slowest := extremeRecords(records)
	summary.Fastest = recordRef(fastest)
	summary.Slowest = recordRef(slowest)

	return summary
}

// groupStats aggregates durations by the given key, rounding the aggregates
// to two decimals. Groups come back sorted by name so downstream sorting by
// mean breaks ties deterministically.
func groupStats(records []model.CleanedActivity, keyOf func(model.CleanedActivity) string) []model.GroupStat {
	byKey := make(map[string][]float64)
	for _, r := range records {
		key := keyOf(r)
		byKey[key] = append(byKey[key], r.DurationMinutes)
	}

	names := make([]string, 0, len(byKey))
	for name := range byKey {
		names = append(names, name)
	}
	sort.Strings(names)

	groups := make([]model.GroupStat, 0, len(names))
	for _, name := range names {
		durations := byKey[name]
		mean, _ := stats.Mean(durations)
		minVal, _ := stats.Min(durations)
		maxVal, _ := stats.Max(durations)
		groups = append(groups, model.GroupStat{
			Name:  name,
			Mean:  round2(mean),
			Min:   round2(minVal),
			Max:   round2(maxVal),
			Count: len(durations),
		})
	}
	return groups
}

// extremeRecords returns the first occurrence of the minimum and maximum
// duration.
func extremeRecords(records []model.CleanedActivity) (fastest, slowest model.CleanedActivity) {
	fastest, slowest = records[0], records[0]
	for _, r := range records[1:] {
		if r.DurationMinutes < fastest.DurationMinutes {
			fastest = r
		}
		if r.DurationMinutes > slowest.DurationMinutes {
			slowest = r
		}
	}
	return fastest, slowest
}

func recordRef(r model.CleanedActivity) model.RecordRef {
	return model.RecordRef{
		Minutes:  r.DurationMinutes,
		Operator: r.Operator,
		Task:     r.TaskDescription,
		Batch:    r.PONumber,
	}
}

func truncate(groups []model.GroupStat, limit int) []model.GroupStat {
	if len(groups) > limit {
		return groups[:limit]
	}
	return groups
}

func round2(v float64) float64 {
	// Matches the two-decimal rounding applied to converted durations.
	return math.Round(v*100) / 100
}
