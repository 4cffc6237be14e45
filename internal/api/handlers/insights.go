package handlers

import (
	"errors"
	"net/http"

	"github.com/finsight/finsight-backend/internal/api/dto"
	"github.com/finsight/finsight-backend/internal/application/service"
	"github.com/finsight/finsight-backend/internal/domain/recurring"
)

// InsightsHandler serves the insights endpoint.
type InsightsHandler struct {
	*Base
}

// NewInsightsHandler creates a new insights handler.
func NewInsightsHandler(svc *service.AnalysisService) *InsightsHandler {
	return &InsightsHandler{Base: NewBase(svc)}
}

// Get handles GET /api/insights.
func (h *InsightsHandler) Get(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.Insights()
	if err != nil {
		if errors.Is(err, recurring.ErrEmptyDataset) {
			h.WriteError(w, http.StatusNotFound, dto.EmptyDatasetError())
			return
		}
		h.WriteError(w, http.StatusInternalServerError, dto.InternalError())
		return
	}

	if out == nil {
		out = []string{}
	}
	h.WriteJSON(w, http.StatusOK, dto.InsightsResponse{Insights: out})
}
