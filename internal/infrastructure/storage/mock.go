package storage

import (
	"sort"

	"github.com/finsight/finsight-backend/internal/domain/ledger"
)

// MockRepository is an in-memory implementation of Repository for testing.
// It stores all data in maps and slices, making tests fast and isolated.
type MockRepository struct {
	Transactions []ledger.Transaction
	Accounts     map[string]ledger.Account

	// Hooks for test assertions
	ListTransactionsCalled   bool
	ImportTransactionsCalled bool
	LastFilters              TransactionFilters

	// Error injection for testing error paths
	ListTransactionsErr   error
	ImportTransactionsErr error
	ListAccountsErr       error
	SaveAccountErr        error
}

// NewMockRepository creates a new mock repository for testing
func NewMockRepository() *MockRepository {
	return &MockRepository{
		Accounts: make(map[string]ledger.Account),
	}
}

// Compile-time check that MockRepository implements Repository
var _ Repository = (*MockRepository)(nil)

// Close does nothing for mock
func (m *MockRepository) Close() error {
	return nil
}

// ListTransactions filters the in-memory transaction slice the same way the
// SQLite query would.
func (m *MockRepository) ListTransactions(filters TransactionFilters) ([]ledger.Transaction, error) {
	m.ListTransactionsCalled = true
	m.LastFilters = filters
	if m.ListTransactionsErr != nil {
		return nil, m.ListTransactionsErr
	}

	var out []ledger.Transaction
	for _, tx := range m.Transactions {
		if filters.AccountID != "" && tx.AccountID != filters.AccountID {
			continue
		}
		if !filters.Since.IsZero() && tx.Date.Before(filters.Since) {
			continue
		}
		if !filters.Until.IsZero() && tx.Date.After(filters.Until) {
			continue
		}
		out = append(out, tx)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	if filters.Limit > 0 && len(out) > filters.Limit {
		out = out[:filters.Limit]
	}
	return out, nil
}

// ImportTransactions upserts valid transactions by ID, matching the SQLite
// implementation's INSERT OR REPLACE semantics
func (m *MockRepository) ImportTransactions(txs []ledger.Transaction) (int, error) {
	m.ImportTransactionsCalled = true
	if m.ImportTransactionsErr != nil {
		return 0, m.ImportTransactionsErr
	}

	count := 0
	for _, tx := range txs {
		if !tx.Valid() {
			continue
		}
		replaced := false
		for i := range m.Transactions {
			if m.Transactions[i].ID == tx.ID {
				m.Transactions[i] = tx
				replaced = true
				break
			}
		}
		if !replaced {
			m.Transactions = append(m.Transactions, tx)
		}
		count++
	}
	return count, nil
}

// ListAccounts returns all accounts sorted by name
func (m *MockRepository) ListAccounts() ([]ledger.Account, error) {
	if m.ListAccountsErr != nil {
		return nil, m.ListAccountsErr
	}

	out := make([]ledger.Account, 0, len(m.Accounts))
	for _, a := range m.Accounts {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out, nil
}

// SaveAccount stores an account in the in-memory map
func (m *MockRepository) SaveAccount(account ledger.Account) error {
	if m.SaveAccountErr != nil {
		return m.SaveAccountErr
	}
	m.Accounts[account.ID] = account
	return nil
}
