package handlers

import (
	"errors"
	"net/http"

	"github.com/finsight/finsight-backend/internal/api/dto"
	"github.com/finsight/finsight-backend/internal/application/service"
	"github.com/finsight/finsight-backend/internal/domain/recurring"
	"github.com/finsight/finsight-backend/internal/infrastructure/storage"
)

// RecurringHandler serves the recurring charge and income endpoints.
type RecurringHandler struct {
	*Base
}

// NewRecurringHandler creates a new recurring handler.
func NewRecurringHandler(svc *service.AnalysisService) *RecurringHandler {
	return &RecurringHandler{Base: NewBase(svc)}
}

// Charges handles GET /api/recurring/charges.
func (h *RecurringHandler) Charges(w http.ResponseWriter, r *http.Request) {
	filters := storage.TransactionFilters{
		AccountID: r.URL.Query().Get("account_id"),
	}

	patterns, err := h.svc.RecurringCharges(filters)
	if err != nil {
		h.writeDetectionError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, dto.NewPatternListResponse(patterns))
}

// Income handles GET /api/recurring/income.
func (h *RecurringHandler) Income(w http.ResponseWriter, r *http.Request) {
	filters := storage.TransactionFilters{
		AccountID: r.URL.Query().Get("account_id"),
	}

	patterns, err := h.svc.RecurringIncome(filters)
	if err != nil {
		h.writeDetectionError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, dto.NewPatternListResponse(patterns))
}

func (h *RecurringHandler) writeDetectionError(w http.ResponseWriter, err error) {
	if errors.Is(err, recurring.ErrEmptyDataset) {
		h.WriteError(w, http.StatusNotFound, dto.EmptyDatasetError())
		return
	}
	h.WriteError(w, http.StatusInternalServerError, dto.InternalError())
}
