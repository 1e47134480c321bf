// pkg/dataset/columns.go
package dataset

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingColumn indicates a required column could not be located even via
// the fallback substring search. This aborts the owning pipeline: no partial
// result is produced from a dataset missing a required field.
var ErrMissingColumn = errors.New("required column not found")

// column describes how to locate one field in a table header: an exact name
// plus an optional substring fallback. The fallback exists because exports
// rename duration columns when units change (e.g. "(seconds)" vs
// "(minutes)").
type column struct {
	name     string
	fallback string
	required bool
}

// resolve returns the header index for the column: exact match first, then
// the first header containing the fallback substring. Optional columns
// resolve to -1 when absent.
func (c column) resolve(headers []string) (int, error) {
	for i, h := range headers {
		if strings.TrimSpace(h) == c.name {
			return i, nil
		}
	}
	if c.fallback != "" {
		for i, h := range headers {
			if strings.Contains(h, c.fallback) {
				return i, nil
			}
		}
	}
	if c.required {
		return -1, fmt.Errorf("%w: %q", ErrMissingColumn, c.name)
	}
	return -1, nil
}

// Batch dataset columns. Durations get a substring fallback; identity and
// category columns must match exactly.
var (
	colProcessOrderID = column{name: "Process Order ID", required: true}
	colEndTime        = column{name: "End date/time", required: true}
	colType           = column{name: "Type", required: true}
	colLocation       = column{name: "Location", required: true}
	colElapsed        = column{name: "Time Elapsed (seconds)", fallback: "Time Elapsed", required: true}
	colPlanned        = column{name: "Planned Duration (seconds)", fallback: "Planned", required: true}
	colDifference     = column{name: "Changeover Planned/Actual Difference (seconds)", fallback: "Difference"}
)

// Activity dataset columns.
var (
	colArea        = column{name: "Area", required: true}
	colChangeover  = column{name: "Changeover Type", required: true}
	colActivityDur = column{name: "Actual Duration (seconds)", fallback: "Actual Duration", required: true}
	colPhaseName   = column{name: "Phase Name", required: true}
	colTask        = column{name: "Task Description", required: true}
	colOperator    = column{name: "Operator"}
	colPONumber    = column{name: "PO Number"}
	colCreatedAt   = column{name: "Created At"}
)
