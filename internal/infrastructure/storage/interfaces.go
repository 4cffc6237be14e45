// Package storage provides SQLite-backed persistence for transactions and
// accounts.
package storage

import (
	"time"

	"github.com/finsight/finsight-backend/internal/domain/ledger"
)

// TransactionFilters narrows a transaction listing.
type TransactionFilters struct {
	AccountID string
	Since     time.Time
	Until     time.Time
	Limit     int
}

// TransactionRepository handles transaction persistence.
type TransactionRepository interface {
	ListTransactions(filters TransactionFilters) ([]ledger.Transaction, error)
	ImportTransactions(txs []ledger.Transaction) (int, error)
}

// AccountRepository handles account persistence.
type AccountRepository interface {
	ListAccounts() ([]ledger.Account, error)
	SaveAccount(account ledger.Account) error
}

// Repository combines all storage operations.
type Repository interface {
	TransactionRepository
	AccountRepository
	Close() error
}
