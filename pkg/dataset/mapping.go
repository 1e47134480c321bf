// pkg/dataset/mapping.go
package dataset

import (
	"strings"
	"time"

	"github.com/dco-tools/changeover-spc/pkg/model"
)

// BatchRecords maps a loaded table onto batch records. Column resolution is
// two-stage (exact name, then substring fallback for the duration columns);
// a required column missing from the header is a hard stop.
func BatchRecords(t *Table) ([]model.BatchRecord, error) {
	idxID, err := colProcessOrderID.resolve(t.Headers)
	if err != nil {
		return nil, err
	}
	idxEnd, err := colEndTime.resolve(t.Headers)
	if err != nil {
		return nil, err
	}
	idxType, err := colType.resolve(t.Headers)
	if err != nil {
		return nil, err
	}
	idxLoc, err := colLocation.resolve(t.Headers)
	if err != nil {
		return nil, err
	}
	idxElapsed, err := colElapsed.resolve(t.Headers)
	if err != nil {
		return nil, err
	}
	idxPlanned, err := colPlanned.resolve(t.Headers)
	if err != nil {
		return nil, err
	}
	idxDiff, _ := colDifference.resolve(t.Headers)

	records := make([]model.BatchRecord, 0, len(t.Rows))
	for _, row := range t.Rows {
		rec := model.BatchRecord{
			ProcessOrderID: strings.TrimSpace(cellAt(row, idxID)),
			Type:           strings.TrimSpace(cellAt(row, idxType)),
			Location:       strings.TrimSpace(cellAt(row, idxLoc)),
		}
		rec.EndTime = timePtr(cellAt(row, idxEnd))
		rec.ElapsedSeconds = floatPtr(cellAt(row, idxElapsed))
		rec.PlannedSeconds = floatPtr(cellAt(row, idxPlanned))
		rec.DifferenceSeconds = floatPtr(cellAt(row, idxDiff))
		records = append(records, rec)
	}
	return records, nil
}

// ActivityRecords maps a loaded table onto activity records. Operator, PO
// number, and created-at are optional columns.
func ActivityRecords(t *Table) ([]model.ActivityRecord, error) {
	idxArea, err := colArea.resolve(t.Headers)
	if err != nil {
		return nil, err
	}
	idxType, err := colChangeover.resolve(t.Headers)
	if err != nil {
		return nil, err
	}
	idxDur, err := colActivityDur.resolve(t.Headers)
	if err != nil {
		return nil, err
	}
	idxPhase, err := colPhaseName.resolve(t.Headers)
	if err != nil {
		return nil, err
	}
	idxTask, err := colTask.resolve(t.Headers)
	if err != nil {
		return nil, err
	}
	idxOperator, _ := colOperator.resolve(t.Headers)
	idxPO, _ := colPONumber.resolve(t.Headers)
	idxCreated, _ := colCreatedAt.resolve(t.Headers)

	records := make([]model.ActivityRecord, 0, len(t.Rows))
	for _, row := range t.Rows {
		rec := model.ActivityRecord{
			Area:            strings.TrimSpace(cellAt(row, idxArea)),
			ChangeoverType:  strings.TrimSpace(cellAt(row, idxType)),
			PhaseName:       strings.TrimSpace(cellAt(row, idxPhase)),
			TaskDescription: strings.TrimSpace(cellAt(row, idxTask)),
			Operator:        strings.TrimSpace(cellAt(row, idxOperator)),
			PONumber:        strings.TrimSpace(cellAt(row, idxPO)),
		}
		rec.DurationSeconds = floatPtr(cellAt(row, idxDur))
		rec.CreatedAt = timePtr(cellAt(row, idxCreated))
		records = append(records, rec)
	}
	return records, nil
}

func floatPtr(cell string) *float64 {
	if v, ok := parseFloat(cell); ok {
		return &v
	}
	return nil
}

func timePtr(cell string) *time.Time {
	if t, ok := parseTime(cell); ok {
		return &t
	}
	return nil
}
