// pkg/cleaner/cleaner.go
package cleaner

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/dco-tools/changeover-spc/pkg/model"
)

// DataCleaner applies the ordered cleaning steps to raw dataset rows and
// produces the human-readable step log reported alongside the analysis.
type DataCleaner struct {
	logger *zap.Logger
}

// NewDataCleaner creates a new DataCleaner instance.
func NewDataCleaner(logger *zap.Logger) (*DataCleaner, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	return &DataCleaner{logger: logger}, nil
}

// BatchOptions parameterizes batch cleaning. Every analysis run passes its
// own copy; the cleaner holds no per-run state.
type BatchOptions struct {
	ChangeoverType       string
	Locations            []string
	TimeThresholdSeconds int
}

// CleanBatch runs the seven batch cleaning steps in their fixed order and
// returns the surviving records (durations converted to minutes) plus the
// step log. An empty result is not an error; downstream stages decide how to
// react to a drained dataset.
//
// Step order is load-bearing: the duplicate filter defines "first
// occurrence" by input order, and the threshold filter compares seconds,
// before conversion.
func (c *DataCleaner) CleanBatch(records []model.BatchRecord, opts BatchOptions) ([]model.CleanedBatch, []string) {
	steps := []string{fmt.Sprintf("Original rows: %d", len(records))}

	// 1. Drop rows with a null process order id.
	kept := records[:0:0]
	for _, r := range records {
		if r.ProcessOrderID != "" {
			kept = append(kept, r)
		}
	}
	steps = append(steps, fmt.Sprintf("After removing null Process Order ID: %d", len(kept)))

	// 2. Drop duplicate process order ids, first occurrence wins.
	seen := make(map[string]struct{}, len(kept))
	deduped := kept[:0:0]
	for _, r := range kept {
		if _, dup := seen[r.ProcessOrderID]; dup {
			continue
		}
		seen[r.ProcessOrderID] = struct{}{}
		deduped = append(deduped, r)
	}
	kept = deduped
	steps = append(steps, fmt.Sprintf("After removing duplicates: %d", len(kept)))

	// 3. Drop rows with a null end time.
	withEnd := kept[:0:0]
	for _, r := range kept {
		if r.EndTime != nil {
			withEnd = append(withEnd, r)
		}
	}
	kept = withEnd
	steps = append(steps, fmt.Sprintf("After removing null End date/time: %d", len(kept)))

	// 4. Keep only the configured changeover type (exact match).
	typed := kept[:0:0]
	for _, r := range kept {
		if r.Type == opts.ChangeoverType {
			typed = append(typed, r)
		}
	}
	kept = typed
	steps = append(steps, fmt.Sprintf("After filtering '%s' type: %d", opts.ChangeoverType, len(kept)))

	// 5. Keep only allow-listed lines.
	located := kept[:0:0]
	for _, r := range kept {
		if containsString(opts.Locations, r.Location) {
			located = append(located, r)
		}
	}
	kept = located
	steps = append(steps, fmt.Sprintf("After filtering specified lines: %d", len(kept)))

	// 6. Drop rows whose elapsed seconds exceed the threshold. A null
	// elapsed value fails the comparison and is dropped here too.
	before := len(kept)
	threshold := float64(opts.TimeThresholdSeconds)
	within := kept[:0:0]
	for _, r := range kept {
		if r.ElapsedSeconds != nil && *r.ElapsedSeconds <= threshold {
			within = append(within, r)
		}
	}
	kept = within
	steps = append(steps, fmt.Sprintf("After removing Time Elapsed > %d: %d (removed %d)",
		opts.TimeThresholdSeconds, len(kept), before-len(kept)))

	// 7. Convert seconds to minutes.
	cleaned := make([]model.CleanedBatch, 0, len(kept))
	for _, r := range kept {
		cb := model.CleanedBatch{
			ProcessOrderID: r.ProcessOrderID,
			EndTime:        *r.EndTime,
			Location:       r.Location,
			ElapsedMinutes: toMinutes(*r.ElapsedSeconds),
		}
		if r.PlannedSeconds != nil {
			cb.PlannedMinutes = toMinutes(*r.PlannedSeconds)
		}
		if r.DifferenceSeconds != nil {
			diff := toMinutes(*r.DifferenceSeconds)
			cb.DifferenceMinutes = &diff
		}
		cleaned = append(cleaned, cb)
	}

	steps = append(steps, fmt.Sprintf("Cleaning complete, final rows: %d", len(cleaned)))
	steps = append(steps, fmt.Sprintf("Total removed: %d rows", len(records)-len(cleaned)))

	c.logger.Info("Batch dataset cleaned",
		zap.Int("original_rows", len(records)),
		zap.Int("final_rows", len(cleaned)))

	return cleaned, steps
}

// toMinutes converts seconds to minutes rounded to two decimals.
func toMinutes(seconds float64) float64 {
	return math.Round(seconds/60*100) / 100
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
