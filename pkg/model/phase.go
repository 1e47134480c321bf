// pkg/model/phase.go
package model

// GroupStat is the duration aggregate for one task description or operator
// within a phase. Values are in minutes, rounded to two decimals.
type GroupStat struct {
	Name  string  `json:"name"`
	Mean  float64 `json:"mean"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Count int     `json:"count"`
}

// RecordRef points at the single fastest or slowest activity record of a
// phase.
type RecordRef struct {
	Minutes  float64 `json:"minutes"`
	Operator string  `json:"operator"`
	Task     string  `json:"task"`
	Batch    string  `json:"batch"`
}

// PhaseSummary is the per-phase efficiency summary. TopTasks is sorted by
// descending mean duration (slowest first), TopOperators by ascending mean
// duration (most efficient first); both keep at most five entries.
type PhaseSummary struct {
	Phase         string      `json:"phase"`
	AvgMinutes    float64     `json:"avg_minutes"`
	MinMinutes    float64     `json:"min_minutes"`
	MaxMinutes    float64     `json:"max_minutes"`
	StdMinutes    float64     `json:"std_minutes"`
	RecordCount   int         `json:"record_count"`
	ActivityCount int         `json:"activity_count"`
	TopTasks      []GroupStat `json:"top_tasks"`
	TopOperators  []GroupStat `json:"top_operators"`
	Fastest       RecordRef   `json:"fastest"`
	Slowest       RecordRef   `json:"slowest"`
}
