package handlers

import (
	"net/http"
	"strings"

	"github.com/Harshitk-cp/logos/internal/domain"
	"github.com/Harshitk-cp/logos/internal/service"
	"github.com/go-chi/chi/v5"
)

type LearningHandler struct {
	svc             *service.LearningService
	maxRestoreBytes int64
}

// NewLearningHandler builds the learning endpoints. Restore bodies may be up to
// maxRestoreBytes; every other endpoint keeps the 1 MiB request limit.
func NewLearningHandler(svc *service.LearningService, maxRestoreBytes int64) *LearningHandler {
	if maxRestoreBytes <= 0 {
		maxRestoreBytes = maxBodyBytes
	}
	return &LearningHandler{svc: svc, maxRestoreBytes: maxRestoreBytes}
}

func (h *LearningHandler) Export(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Export())
}

func (h *LearningHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Reset(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to reset learning data")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *LearningHandler) Restore(w http.ResponseWriter, r *http.Request) {
	var snap domain.LearningSnapshot
	if !decodeJSONLimit(w, r, &snap, h.maxRestoreBytes) {
		return
	}
	if err := h.svc.Restore(snap); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *LearningHandler) Profile(w http.ResponseWriter, r *http.Request) {
	userID := strings.TrimSpace(chi.URLParam(r, "id"))
	if userID == "" {
		writeError(w, http.StatusBadRequest, "user id is required")
		return
	}

	p, err := h.svc.Profile(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err, "failed to get profile")
		return
	}
	writeJSON(w, http.StatusOK, p)
}
