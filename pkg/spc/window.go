// pkg/spc/window.go
package spc

import (
	"sort"

	"github.com/dco-tools/changeover-spc/pkg/model"
)

// SelectWindow picks the most recent n cleaned records by end time and
// returns them ordered chronologically ascending. Both sorts are stable, so
// records sharing a timestamp keep their relative input order. When fewer
// than n records exist, all of them form the window.
func SelectWindow(cleaned []model.CleanedBatch, n int) []model.WindowPoint {
	recent := make([]model.CleanedBatch, len(cleaned))
	copy(recent, cleaned)

	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].EndTime.After(recent[j].EndTime)
	})
	if n < len(recent) {
		recent = recent[:n]
	}
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].EndTime.Before(recent[j].EndTime)
	})

	window := make([]model.WindowPoint, len(recent))
	for i, r := range recent {
		window[i] = model.WindowPoint{
			BatchID: r.ProcessOrderID,
			Line:    r.Location,
			EndTime: r.EndTime,
			Value:   r.ElapsedMinutes,
			Target:  r.PlannedMinutes,
		}
	}
	return window
}
