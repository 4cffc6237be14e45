// Package service wires the domain engines to storage and exposes the
// operations the API and CLI binaries consume.
package service

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/finsight/finsight-backend/internal/domain/insights"
	"github.com/finsight/finsight-backend/internal/domain/ledger"
	"github.com/finsight/finsight-backend/internal/domain/merchant"
	"github.com/finsight/finsight-backend/internal/domain/recurring"
	"github.com/finsight/finsight-backend/internal/infrastructure/config"
	"github.com/finsight/finsight-backend/internal/infrastructure/storage"
)

// AnalysisService runs pattern detection and analysis over stored
// transactions.
type AnalysisService struct {
	repo      storage.Repository
	detection config.DetectionConfig
	logger    *slog.Logger
}

// NewAnalysisService creates an analysis service
func NewAnalysisService(repo storage.Repository, detection config.DetectionConfig, logger *slog.Logger) *AnalysisService {
	return &AnalysisService{
		repo:      repo,
		detection: detection,
		logger:    logger,
	}
}

// loadTransactions fetches the lookback window of transactions.
func (s *AnalysisService) loadTransactions(filters storage.TransactionFilters) ([]ledger.Transaction, error) {
	if filters.Since.IsZero() && s.detection.LookbackDays > 0 {
		filters.Since = time.Now().AddDate(0, 0, -s.detection.LookbackDays)
	}
	txs, err := s.repo.ListTransactions(filters)
	if err != nil {
		return nil, fmt.Errorf("loading transactions: %w", err)
	}
	return txs, nil
}

func (s *AnalysisService) detectorOptions(base recurring.Options) recurring.Options {
	if s.detection.MinOccurrences > base.MinOccurrences {
		base.MinOccurrences = s.detection.MinOccurrences
	}
	return base
}

// RecurringCharges detects recurring expense patterns. Returns
// recurring.ErrEmptyDataset when no transactions are stored.
func (s *AnalysisService) RecurringCharges(filters storage.TransactionFilters) ([]recurring.Pattern, error) {
	txs, err := s.loadTransactions(filters)
	if err != nil {
		return nil, err
	}
	if len(txs) == 0 {
		return nil, recurring.ErrEmptyDataset
	}

	// The store has data at this point; a side whose transactions are all
	// filtered out simply has no patterns, which is not an empty dataset.
	detector := recurring.NewDetector(s.detectorOptions(recurring.ExpenseOptions()))
	patterns, err := detector.Detect(recurring.FilterExpenses(txs))
	if err != nil {
		if !errors.Is(err, recurring.ErrEmptyDataset) {
			return nil, err
		}
		patterns = []recurring.Pattern{}
	}

	s.logger.Info("recurring charge detection complete",
		"transactions", len(txs), "patterns", len(patterns))
	return patterns, nil
}

// RecurringIncome detects recurring income patterns. Returns
// recurring.ErrEmptyDataset when no transactions are stored.
func (s *AnalysisService) RecurringIncome(filters storage.TransactionFilters) ([]recurring.Pattern, error) {
	txs, err := s.loadTransactions(filters)
	if err != nil {
		return nil, err
	}
	if len(txs) == 0 {
		return nil, recurring.ErrEmptyDataset
	}

	detector := recurring.NewDetector(s.detectorOptions(recurring.IncomeOptions()))
	patterns, err := detector.Detect(recurring.FilterIncome(txs))
	if err != nil {
		if !errors.Is(err, recurring.ErrEmptyDataset) {
			return nil, err
		}
		patterns = []recurring.Pattern{}
	}

	s.logger.Info("recurring income detection complete",
		"transactions", len(txs), "patterns", len(patterns))
	return patterns, nil
}

// MerchantAnalysis aggregates statistics for one merchant. Returns nil when
// no transactions match the name.
func (s *AnalysisService) MerchantAnalysis(name string, includeAnomalies bool) (*merchant.Analysis, error) {
	txs, err := s.loadTransactions(storage.TransactionFilters{})
	if err != nil {
		return nil, err
	}
	return merchant.Analyze(txs, name, includeAnomalies), nil
}

// SpendingByMerchant returns the per-merchant expense breakdown.
func (s *AnalysisService) SpendingByMerchant(opts merchant.SpendingOptions) ([]merchant.Spend, error) {
	txs, err := s.loadTransactions(storage.TransactionFilters{})
	if err != nil {
		return nil, err
	}
	return merchant.SpendingByMerchant(txs, opts), nil
}

// Insights combines recurring detection with weekday spending into
// plain-language observations.
func (s *AnalysisService) Insights() ([]string, error) {
	txs, err := s.loadTransactions(storage.TransactionFilters{})
	if err != nil {
		return nil, err
	}
	if len(txs) == 0 {
		return nil, recurring.ErrEmptyDataset
	}

	detector := recurring.NewDetector(s.detectorOptions(recurring.ExpenseOptions()))
	// Having no recurring expenses must not suppress weekday insights.
	patterns, err := detector.Detect(recurring.FilterExpenses(txs))
	if err != nil && !errors.Is(err, recurring.ErrEmptyDataset) {
		return nil, err
	}

	weekdays := insights.SpendByWeekday(txs)
	return insights.Generate(patterns, weekdays, time.Now()), nil
}

// Accounts lists stored accounts.
func (s *AnalysisService) Accounts() ([]ledger.Account, error) {
	return s.repo.ListAccounts()
}

// Transactions lists stored transactions with the given filters.
func (s *AnalysisService) Transactions(filters storage.TransactionFilters) ([]ledger.Transaction, error) {
	return s.loadTransactions(filters)
}

// Import persists a transaction batch and returns the number imported.
func (s *AnalysisService) Import(txs []ledger.Transaction) (int, error) {
	count, err := s.repo.ImportTransactions(txs)
	if err != nil {
		return 0, fmt.Errorf("importing transactions: %w", err)
	}
	s.logger.Info("transactions imported", "received", len(txs), "written", count)
	return count, nil
}
