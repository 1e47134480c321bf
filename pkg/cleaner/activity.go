// pkg/cleaner/activity.go
package cleaner

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/dco-tools/changeover-spc/pkg/model"
)

// ActivityOptions parameterizes activity cleaning.
type ActivityOptions struct {
	ChangeoverType string
	Areas          []string
}

// CleanActivity filters the activity dataset to allow-listed areas and the
// configured changeover type, drops rows with a null duration, and converts
// the duration to minutes. Alongside the step log it summarizes the cleaned
// dataset by batch.
func (c *DataCleaner) CleanActivity(records []model.ActivityRecord, opts ActivityOptions) ([]model.CleanedActivity, []string, model.ActivityBatchInfo) {
	steps := []string{fmt.Sprintf("Original rows: %d", len(records))}

	kept := records[:0:0]
	for _, r := range records {
		if containsString(opts.Areas, r.Area) {
			kept = append(kept, r)
		}
	}
	steps = append(steps, fmt.Sprintf("After filtering lines: %d", len(kept)))

	typed := kept[:0:0]
	for _, r := range kept {
		if r.ChangeoverType == opts.ChangeoverType {
			typed = append(typed, r)
		}
	}
	kept = typed
	steps = append(steps, fmt.Sprintf("After filtering '%s' type: %d", opts.ChangeoverType, len(kept)))

	before := len(kept)
	withDuration := kept[:0:0]
	for _, r := range kept {
		if r.DurationSeconds != nil {
			withDuration = append(withDuration, r)
		}
	}
	kept = withDuration
	steps = append(steps, fmt.Sprintf("After removing null Actual Duration: %d (removed %d)",
		len(kept), before-len(kept)))

	cleaned := make([]model.CleanedActivity, 0, len(kept))
	for _, r := range kept {
		cleaned = append(cleaned, model.CleanedActivity{
			PhaseName:       r.PhaseName,
			TaskDescription: r.TaskDescription,
			Operator:        r.Operator,
			PONumber:        r.PONumber,
			CreatedAt:       r.CreatedAt,
			DurationMinutes: toMinutes(*r.DurationSeconds),
		})
	}

	steps = append(steps, fmt.Sprintf("Cleaning complete, final rows: %d", len(cleaned)))

	info := activityBatchInfo(cleaned)

	c.logger.Info("Activity dataset cleaned",
		zap.Int("original_rows", len(records)),
		zap.Int("final_rows", len(cleaned)),
		zap.Int("total_batches", info.TotalBatches))

	return cleaned, steps, info
}

// activityBatchInfo counts distinct PO numbers and the created-at time range
// over the cleaned records. Rows without a PO number do not count as a
// batch.
func activityBatchInfo(cleaned []model.CleanedActivity) model.ActivityBatchInfo {
	info := model.ActivityBatchInfo{TotalRecords: len(cleaned)}

	batches := make(map[string]struct{})
	for _, r := range cleaned {
		if r.PONumber != "" {
			batches[r.PONumber] = struct{}{}
		}
		if r.CreatedAt == nil {
			continue
		}
		if info.TimeStart == nil || r.CreatedAt.Before(*info.TimeStart) {
			t := *r.CreatedAt
			info.TimeStart = &t
		}
		if info.TimeEnd == nil || r.CreatedAt.After(*info.TimeEnd) {
			t := *r.CreatedAt
			info.TimeEnd = &t
		}
	}
	info.TotalBatches = len(batches)

	return info
}
