// pkg/dataset/values.go
package dataset

import (
	"strconv"
	"strings"
	"time"
)

// parseFloat attempts to read a numeric cell. Blank cells return (0, false).
// Thousands separators sneak in when workbooks apply number formatting.
func parseFloat(cell string) (float64, bool) {
	cleaned := strings.TrimSpace(cell)
	if cleaned == "" {
		return 0, false
	}
	cleaned = strings.ReplaceAll(cleaned, ",", "")

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// timeFormats covers the timestamp renderings seen across exports: ISO,
// Excel's default cell formats, and the slash-separated variants.
var timeFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"01/02/2006 15:04:05",
	"01/02/2006 15:04",
	"01/02/2006",
	"1/2/06 15:04",
	"01-02-06 15:04",
	"2006/01/02 15:04:05",
	"2006/01/02",
}

// parseTime attempts to read a timestamp cell. Blank or unparseable cells
// return (zero, false); the cleaner treats those as null end times.
func parseTime(cell string) (time.Time, bool) {
	cleaned := strings.TrimSpace(cell)
	if cleaned == "" {
		return time.Time{}, false
	}

	for _, format := range timeFormats {
		if t, err := time.Parse(format, cleaned); err == nil {
			return t, true
		}
	}

	// Excel stores timestamps as day serial numbers when the cell carries no
	// date format.
	if serial, err := strconv.ParseFloat(cleaned, 64); err == nil && serial > 0 {
		return excelEpoch.Add(time.Duration(serial * float64(24*time.Hour))), true
	}

	return time.Time{}, false
}

// Excel's day zero, adjusted for the fictitious 1900-02-29.
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// cellAt returns the cell at index i, or "" when the column resolved to -1
// or the row is short.
func cellAt(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
