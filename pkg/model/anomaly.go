// pkg/model/anomaly.go
package model

import "time"

// Rule identifies one of the four control-chart rules. Rules are applied in
// ascending order and a point keeps the first rule that caught it.
type Rule int

const (
	RuleOutOfControl Rule = iota + 1
	RuleSameSideRun
	RuleTrend
	RuleAlternation
)

// Label returns the reporting label for the rule.
func (r Rule) Label() string {
	switch r {
	case RuleOutOfControl:
		return "Rule 1: Point outside Zone A"
	case RuleSameSideRun:
		return "Rule 2: 9 points on same side"
	case RuleTrend:
		return "Rule 3: 6 points trend"
	case RuleAlternation:
		return "Rule 4: 14 points alternating"
	default:
		return "Unknown rule"
	}
}

// AnomalyRecord is one flagged window point with its attribution. Point is
// 1-based, matching the chart's chronological numbering.
type AnomalyRecord struct {
	Point     int       `json:"point"`
	Line      string    `json:"line"`
	BatchID   string    `json:"batch_id"`
	Time      time.Time `json:"time"`
	Value     float64   `json:"value"`
	Target    float64   `json:"target"`
	Deviation float64   `json:"deviation"`
	Rule      Rule      `json:"rule"`
	RuleLabel string    `json:"rule_label"`
}
