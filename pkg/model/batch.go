// pkg/model/batch.go
package model

import "time"

// BatchRecord is one raw changeover event as delivered by a dataset loader.
// Duration fields are in seconds and optional fields are nil when the source
// cell was blank.
type BatchRecord struct {
	ProcessOrderID    string
	EndTime           *time.Time
	Type              string
	Location          string
	ElapsedSeconds    *float64
	PlannedSeconds    *float64
	DifferenceSeconds *float64
}

// CleanedBatch is a batch record that survived every cleaning step. All
// invariants hold by construction: the process order id is non-empty and
// unique, the end time is present, and durations are in minutes rounded to
// two decimals.
type CleanedBatch struct {
	ProcessOrderID    string
	EndTime           time.Time
	Location          string
	ElapsedMinutes    float64
	PlannedMinutes    float64
	DifferenceMinutes *float64
}

// WindowPoint is one entry of the analysis window handed to the SPC stages.
// Value is the actual changeover duration and Target the planned one, both
// in minutes.
type WindowPoint struct {
	BatchID string
	Line    string
	EndTime time.Time
	Value   float64
	Target  float64
}
