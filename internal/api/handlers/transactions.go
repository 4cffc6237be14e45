package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/finsight/finsight-backend/internal/api/dto"
	"github.com/finsight/finsight-backend/internal/application/service"
	"github.com/finsight/finsight-backend/internal/domain/ledger"
	"github.com/finsight/finsight-backend/internal/infrastructure/storage"
)

// TransactionsHandler serves transaction listing and import.
type TransactionsHandler struct {
	*Base
}

// NewTransactionsHandler creates a new transactions handler.
func NewTransactionsHandler(svc *service.AnalysisService) *TransactionsHandler {
	return &TransactionsHandler{Base: NewBase(svc)}
}

// List handles GET /api/transactions.
func (h *TransactionsHandler) List(w http.ResponseWriter, r *http.Request) {
	filters := storage.TransactionFilters{
		AccountID: r.URL.Query().Get("account_id"),
		Limit:     ParseIntParam(r, "limit", 0),
	}
	if since := r.URL.Query().Get("since"); since != "" {
		parsed, err := time.Parse("2006-01-02", since)
		if err != nil {
			h.WriteError(w, http.StatusBadRequest, dto.BadRequestError("since must be YYYY-MM-DD"))
			return
		}
		filters.Since = parsed
	}

	txs, err := h.svc.Transactions(filters)
	if err != nil {
		h.WriteError(w, http.StatusInternalServerError, dto.InternalError())
		return
	}

	h.WriteJSON(w, http.StatusOK, dto.TransactionListResponse{
		Transactions: txs,
		TotalCount:   len(txs),
	})
}

// Import handles POST /api/transactions/import.
func (h *TransactionsHandler) Import(w http.ResponseWriter, r *http.Request) {
	var txs []ledger.Transaction
	if err := json.NewDecoder(r.Body).Decode(&txs); err != nil {
		h.WriteError(w, http.StatusBadRequest, dto.BadRequestError("invalid transaction payload"))
		return
	}
	if len(txs) == 0 {
		h.WriteError(w, http.StatusBadRequest, dto.BadRequestError("empty transaction payload"))
		return
	}

	count, err := h.svc.Import(txs)
	if err != nil {
		h.WriteError(w, http.StatusInternalServerError, dto.InternalError())
		return
	}

	h.WriteJSON(w, http.StatusCreated, dto.ImportResponse{
		Received: len(txs),
		Imported: count,
	})
}
