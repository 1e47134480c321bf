// pkg/model/activity.go
package model

import "time"

// ActivityRecord is one raw activity-phase timing row as delivered by a
// dataset loader.
type ActivityRecord struct {
	Area            string
	ChangeoverType  string
	DurationSeconds *float64
	PhaseName       string
	TaskDescription string
	Operator        string
	PONumber        string
	CreatedAt       *time.Time
}

// CleanedActivity is an activity record that survived cleaning, with the
// duration converted to minutes.
type CleanedActivity struct {
	PhaseName       string
	TaskDescription string
	Operator        string
	PONumber        string
	CreatedAt       *time.Time
	DurationMinutes float64
}

// ActivityBatchInfo summarizes the cleaned activity dataset by batch.
type ActivityBatchInfo struct {
	TotalBatches int        `json:"total_batches"`
	TotalRecords int        `json:"total_records"`
	TimeStart    *time.Time `json:"time_start,omitempty"`
	TimeEnd      *time.Time `json:"time_end,omitempty"`
}
