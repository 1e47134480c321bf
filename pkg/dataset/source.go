// pkg/dataset/source.go
package dataset

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Table is a loaded tabular dataset: one header row plus string cells. Cell
// values keep whatever formatting the source produced; coercion happens
// during record mapping.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Source provides tabular rows from some backing format.
type Source interface {
	// Read loads the full table. The first non-empty row is the header.
	Read() (*Table, error)
}

// ErrUnsupportedFormat indicates a file extension no source implementation
// handles.
var ErrUnsupportedFormat = errors.New("unsupported dataset format")

// Open creates a Source for the given file path based on its extension.
func Open(path string) (Source, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xls":
		return &ExcelSource{Path: path}, nil
	case ".csv":
		return &CSVSource{Path: path}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// FromReader creates a Source for an already-open stream, using the original
// file name to pick the format. Used by the upload endpoint.
func FromReader(name string, r io.Reader) (Source, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx", ".xls":
		return &ExcelSource{Reader: r}, nil
	case ".csv":
		return &CSVSource{Reader: r}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(name))
	}
}
