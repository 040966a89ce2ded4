package handler

import (
	"net/http"

	"github.com/passforge/passforge-go/internal/service"
)

// StatsHandler handles HTTP requests for history statistics.
type StatsHandler struct {
	service *service.HistoryService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(svc *service.HistoryService) *StatsHandler {
	return &StatsHandler{service: svc}
}

// HandleStats handles GET /api/v1/stats requests. Statistics are recomputed
// from the retained history on every call.
func (h *StatsHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
