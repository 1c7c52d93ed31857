package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/alexiusacademia/goframe/internal/analysis"
	"github.com/alexiusacademia/goframe/internal/model"
	"github.com/alexiusacademia/goframe/internal/report"
	"github.com/alexiusacademia/goframe/internal/version"
)

// maxBodyBytes bounds the size of a posted model
const maxBodyBytes = 10 << 20

// SolveResponse is the body returned by the solve endpoint
type SolveResponse struct {
	Model   string              `json:"model"`
	Results []*model.CaseResult `json:"results"`
}

// Handler serves the analysis endpoints
type Handler struct{}

// Solve analyses a posted model. The optional query parameter "case" selects
// a single load case by index; otherwise every case is solved.
func (h *Handler) Solve(w http.ResponseWriter, r *http.Request) {
	m, results, ok := h.analyse(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, SolveResponse{Model: m.Name, Results: results})
}

// ReportPDF analyses a posted model and returns the PDF report
func (h *Handler) ReportPDF(w http.ResponseWriter, r *http.Request) {
	m, results, ok := h.analyse(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"report.pdf\"")
	if err := report.WritePDF(w, m, results); err != nil {
		log.Printf("pdf report: %v", err)
		writeError(w, http.StatusInternalServerError, "report generation error")
	}
}

// ReportXLSX analyses a posted model and returns the results workbook
func (h *Handler) ReportXLSX(w http.ResponseWriter, r *http.Request) {
	m, results, ok := h.analyse(w, r)
	if !ok {
		return
	}
	f, err := report.NewWorkbook(m, results)
	if err != nil {
		log.Printf("xlsx report: %v", err)
		writeError(w, http.StatusInternalServerError, "report generation error")
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=\"results.xlsx\"")
	if err := f.Write(w); err != nil {
		log.Printf("xlsx report: %v", err)
	}
}

// Health reports that the service is up
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": version.Version})
}

// analyse decodes, builds and solves the posted model. On failure it writes
// the error response and returns ok == false.
func (h *Handler) analyse(w http.ResponseWriter, r *http.Request) (*model.Model, []*model.CaseResult, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	m, err := model.Decode(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit))
			return nil, nil, false
		}
		var verr *model.ValidationError
		if errors.As(err, &verr) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return nil, nil, false
		}
		writeError(w, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return nil, nil, false
	}

	a, err := m.Build()
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return nil, nil, false
	}

	var results []*model.CaseResult
	if q := r.URL.Query().Get("case"); q != "" {
		k, err := strconv.Atoi(q)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid case index %q", q))
			return nil, nil, false
		}
		res, err := a.Run(k)
		if err != nil {
			writeAnalysisError(w, err)
			return nil, nil, false
		}
		results = []*model.CaseResult{res}
	} else if results, err = a.RunAll(); err != nil {
		writeAnalysisError(w, err)
		return nil, nil, false
	}

	return m, results, true
}

func writeAnalysisError(w http.ResponseWriter, err error) {
	if errors.Is(err, analysis.ErrSingularMatrix) {
		writeError(w, http.StatusUnprocessableEntity, "structure is unstable: "+err.Error())
		return
	}
	writeError(w, http.StatusUnprocessableEntity, err.Error())
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
