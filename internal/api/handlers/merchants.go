package handlers

import (
	"net/http"

	"github.com/finsight/finsight-backend/internal/api/dto"
	"github.com/finsight/finsight-backend/internal/application/service"
	"github.com/finsight/finsight-backend/internal/domain/merchant"
)

// MerchantsHandler serves merchant analysis and spending endpoints.
type MerchantsHandler struct {
	*Base
}

// NewMerchantsHandler creates a new merchants handler.
func NewMerchantsHandler(svc *service.AnalysisService) *MerchantsHandler {
	return &MerchantsHandler{Base: NewBase(svc)}
}

// Analysis handles GET /api/merchants/analysis?name=...
func (h *MerchantsHandler) Analysis(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		h.WriteError(w, http.StatusBadRequest, dto.BadRequestError("name query parameter is required"))
		return
	}
	includeAnomalies := ParseBoolParam(r, "anomalies", false)

	analysis, err := h.svc.MerchantAnalysis(name, includeAnomalies)
	if err != nil {
		h.WriteError(w, http.StatusInternalServerError, dto.InternalError())
		return
	}
	if analysis == nil {
		h.WriteError(w, http.StatusNotFound, dto.NotFoundError("merchant"))
		return
	}

	h.WriteJSON(w, http.StatusOK, analysis)
}

// Spending handles GET /api/merchants/spending.
func (h *MerchantsHandler) Spending(w http.ResponseWriter, r *http.Request) {
	opts := merchant.SpendingOptions{
		MinAmount: ParseFloatParam(r, "min_amount", 0),
		TopN:      ParseIntParam(r, "top", 0),
	}

	spends, err := h.svc.SpendingByMerchant(opts)
	if err != nil {
		h.WriteError(w, http.StatusInternalServerError, dto.InternalError())
		return
	}

	h.WriteJSON(w, http.StatusOK, dto.SpendingResponse{
		Merchants:  spends,
		TotalCount: len(spends),
	})
}
