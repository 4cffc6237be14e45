package handlers

import (
	"net/http"

	"github.com/finsight/finsight-backend/internal/api/dto"
	"github.com/finsight/finsight-backend/internal/application/service"
)

// AccountsHandler serves account listing.
type AccountsHandler struct {
	*Base
}

// NewAccountsHandler creates a new accounts handler.
func NewAccountsHandler(svc *service.AnalysisService) *AccountsHandler {
	return &AccountsHandler{Base: NewBase(svc)}
}

// List handles GET /api/accounts.
func (h *AccountsHandler) List(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.svc.Accounts()
	if err != nil {
		h.WriteError(w, http.StatusInternalServerError, dto.InternalError())
		return
	}

	h.WriteJSON(w, http.StatusOK, dto.AccountListResponse{
		Accounts:   accounts,
		TotalCount: len(accounts),
	})
}
