package dto

import (
	"time"

	"github.com/finsight/finsight-backend/internal/domain/ledger"
	"github.com/finsight/finsight-backend/internal/domain/merchant"
	"github.com/finsight/finsight-backend/internal/domain/recurring"
)

// HealthResponse is returned by the health check endpoint.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// NewHealthResponse creates a healthy response with the current time.
func NewHealthResponse() HealthResponse {
	return HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// PatternListResponse is returned by the recurring detection endpoints.
type PatternListResponse struct {
	Patterns        []recurring.Pattern `json:"patterns"`
	TotalCount      int                 `json:"total_count"`
	AnnualizedTotal float64             `json:"annualized_total"`
}

// NewPatternListResponse builds a response from detected patterns.
func NewPatternListResponse(patterns []recurring.Pattern) PatternListResponse {
	return PatternListResponse{
		Patterns:        patterns,
		TotalCount:      len(patterns),
		AnnualizedTotal: recurring.AnnualizedTotal(patterns),
	}
}

// SpendingResponse is returned by the merchant spending endpoint.
type SpendingResponse struct {
	Merchants  []merchant.Spend `json:"merchants"`
	TotalCount int              `json:"total_count"`
}

// InsightsResponse is returned by the insights endpoint.
type InsightsResponse struct {
	Insights []string `json:"insights"`
}

// AccountListResponse is returned when listing accounts.
type AccountListResponse struct {
	Accounts   []ledger.Account `json:"accounts"`
	TotalCount int              `json:"total_count"`
}

// TransactionListResponse is returned when listing transactions.
type TransactionListResponse struct {
	Transactions []ledger.Transaction `json:"transactions"`
	TotalCount   int                  `json:"total_count"`
}

// ImportResponse is returned after a transaction import.
type ImportResponse struct {
	Received int `json:"received"`
	Imported int `json:"imported"`
}
