// pkg/dataset/csv.go
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// CSVSource reads a comma-separated file. Exactly one of Path or Reader must
// be set.
type CSVSource struct {
	Path   string
	Reader io.Reader
}

// Read implements Source.
func (s *CSVSource) Read() (*Table, error) {
	r := s.Reader
	if r == nil {
		f, err := os.Open(s.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open CSV file: %w", err)
		}
		defer f.Close()
		r = f
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // rows exported from Excel may be ragged

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}

	table := tableFromRows(records)
	if table == nil {
		return nil, errors.New("CSV file contains no tabular data")
	}
	return table, nil
}
