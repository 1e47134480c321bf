// pkg/server/handlers.go
package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/render"

	"github.com/dco-tools/changeover-spc/pkg/analysis"
	"github.com/dco-tools/changeover-spc/pkg/dataset"
	"github.com/dco-tools/changeover-spc/pkg/model"
)

// maxUploadBytes bounds the multipart body; the largest observed export is
// well under this.
const maxUploadBytes = 50 << 20

type errResponse struct {
	Error string `json:"error"`
}

func badRequest(w http.ResponseWriter, r *http.Request, err error) {
	render.Status(r, http.StatusBadRequest)
	render.JSON(w, r, errResponse{Error: err.Error()})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{"status": "ok"})
}

// handleAnalysis accepts a multipart upload with "batch" and/or "activity"
// file parts plus optional "analysis_points" and "time_threshold" overrides,
// runs one analysis, and returns the JSON report.
func (s *Server) handleAnalysis(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		badRequest(w, r, fmt.Errorf("invalid multipart request: %w", err))
		return
	}

	opts := analysis.OptionsFromConfig(s.cfg)
	if err := applyOverrides(r, &opts); err != nil {
		badRequest(w, r, err)
		return
	}

	batch, err := batchFromUpload(r)
	if err != nil {
		badRequest(w, r, err)
		return
	}
	activity, err := activityFromUpload(r)
	if err != nil {
		badRequest(w, r, err)
		return
	}
	if batch == nil && activity == nil {
		badRequest(w, r, fmt.Errorf("at least one of %q or %q file parts is required", "batch", "activity"))
		return
	}

	report := s.analyzer.Run(batch, activity, opts)
	render.JSON(w, r, report)
}

// applyOverrides lets a request tune the window size and time threshold
// within the same ranges the configuration enforces.
func applyOverrides(r *http.Request, opts *analysis.Options) error {
	if v := r.FormValue("analysis_points"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 10 || n > 500 {
			return fmt.Errorf("analysis_points must be an integer in [10,500]")
		}
		opts.AnalysisPoints = n
	}
	if v := r.FormValue("time_threshold"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 3600 || n > 36000 {
			return fmt.Errorf("time_threshold must be an integer in [3600,36000]")
		}
		opts.TimeThresholdSeconds = n
	}
	return nil
}

func batchFromUpload(r *http.Request) ([]model.BatchRecord, error) {
	table, err := tableFromPart(r, "batch")
	if err != nil || table == nil {
		return nil, err
	}
	records, err := dataset.BatchRecords(table)
	if err != nil {
		return nil, fmt.Errorf("batch dataset: %w", err)
	}
	return records, nil
}

func activityFromUpload(r *http.Request) ([]model.ActivityRecord, error) {
	table, err := tableFromPart(r, "activity")
	if err != nil || table == nil {
		return nil, err
	}
	records, err := dataset.ActivityRecords(table)
	if err != nil {
		return nil, fmt.Errorf("activity dataset: %w", err)
	}
	return records, nil
}

// tableFromPart loads the named file part into a table, or (nil, nil) when
// the part is absent.
func tableFromPart(r *http.Request, name string) (*dataset.Table, error) {
	file, header, err := r.FormFile(name)
	if err == http.ErrMissingFile {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %q file part: %w", name, err)
	}
	defer file.Close()

	source, err := dataset.FromReader(header.Filename, file)
	if err != nil {
		return nil, fmt.Errorf("%s dataset: %w", name, err)
	}
	table, err := source.Read()
	if err != nil {
		return nil, fmt.Errorf("%s dataset: %w", name, err)
	}
	return table, nil
}
