package handlers

import (
	"errors"
	"net/http"

	"github.com/Harshitk-cp/logos/internal/domain"
	"github.com/Harshitk-cp/logos/internal/service"
)

type AnalysisHandler struct {
	svc *service.AnalysisService
}

func NewAnalysisHandler(svc *service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{svc: svc}
}

type analyzeRequest struct {
	Text    *string              `json:"text"`
	Context *domain.QueryContext `json:"context,omitempty"`
}

type batchRequest struct {
	Queries []service.BatchItem `json:"queries"`
}

type similarRequest struct {
	Text  string `json:"text"`
	Limit int    `json:"limit,omitempty"`
}

// Analyze answers with the full report. Empty or too-short text is still a
// 200 carrying input_error.
func (h *AnalysisHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Text == nil {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}

	report, err := h.svc.Analyze(r.Context(), *req.Text, req.Context)
	if err != nil {
		writeServiceError(w, err, "failed to analyze query")
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *AnalysisHandler) Batch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	results, err := h.svc.ProcessBatch(r.Context(), req.Queries)
	if err != nil {
		writeServiceError(w, err, "failed to analyze batch")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"results": results})
}

func (h *AnalysisHandler) Diagnose(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Text == nil {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}
	writeJSON(w, http.StatusOK, h.svc.Diagnose(*req.Text))
}

func (h *AnalysisHandler) Similar(w http.ResponseWriter, r *http.Request) {
	var req similarRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Limit < 0 || req.Limit > 50 {
		writeError(w, http.StatusBadRequest, "limit must be between 0 and 50")
		return
	}

	cases, err := h.svc.SimilarCases(r.Context(), req.Text, req.Limit)
	if err != nil {
		writeServiceError(w, err, "failed to find similar cases")
		return
	}
	if cases == nil {
		cases = []domain.CaseWithScore{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"cases": cases})
}

func (h *AnalysisHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Statistics())
}

func writeServiceError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrQueryTimeout):
		writeError(w, http.StatusGatewayTimeout, err.Error())
	case errors.Is(err, service.ErrEmptyBatch), errors.Is(err, service.ErrBatchTooLarge):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrProfileNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, fallback)
	}
}
