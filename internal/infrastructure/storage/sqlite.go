package storage

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/finsight/finsight-backend/internal/domain/ledger"
)

// Storage provides SQLite database access for transactions and accounts.
// It implements the Repository interface.
type Storage struct {
	db *sql.DB
}

// Compile-time check that Storage implements Repository
var _ Repository = (*Storage)(nil)

// NewStorage creates a new storage instance with SQLite database
func NewStorage(dbPath string) (*Storage, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	// Enable foreign key constraints (SQLite-specific)
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	s := &Storage{db: db}

	if err := s.runMigrations(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	return s.db.Close()
}

// ListTransactions returns transactions matching the filters, ordered by
// date ascending.
func (s *Storage) ListTransactions(filters TransactionFilters) ([]ledger.Transaction, error) {
	query := `
	SELECT id, date, amount, charged_amount, description, memo, category,
	       account_id, is_internal_transfer
	FROM transactions`

	var conditions []string
	var args []any
	if filters.AccountID != "" {
		conditions = append(conditions, "account_id = ?")
		args = append(args, filters.AccountID)
	}
	if !filters.Since.IsZero() {
		conditions = append(conditions, "date >= ?")
		args = append(args, filters.Since)
	}
	if !filters.Until.IsZero() {
		conditions = append(conditions, "date <= ?")
		args = append(args, filters.Until)
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY date ASC"
	if filters.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filters.Limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var txs []ledger.Transaction
	for rows.Next() {
		var tx ledger.Transaction
		if err := rows.Scan(
			&tx.ID,
			&tx.Date,
			&tx.Amount,
			&tx.ChargedAmount,
			&tx.Description,
			&tx.Memo,
			&tx.Category,
			&tx.AccountID,
			&tx.IsInternalTransfer,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txs = append(txs, tx)
	}

	return txs, rows.Err()
}

// ImportTransactions upserts a batch of transactions in a single database
// transaction and returns the number of rows written. Re-importing the same
// batch is safe.
func (s *Storage) ImportTransactions(txs []ledger.Transaction) (int, error) {
	dbTx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin import transaction: %w", err)
	}

	stmt, err := dbTx.Prepare(`
	INSERT OR REPLACE INTO transactions
	(id, date, amount, charged_amount, description, memo, category,
	 account_id, is_internal_transfer)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		_ = dbTx.Rollback()
		return 0, fmt.Errorf("failed to prepare import statement: %w", err)
	}
	defer stmt.Close()

	count := 0
	for _, tx := range txs {
		if !tx.Valid() {
			continue
		}
		if _, err := stmt.Exec(
			tx.ID,
			tx.Date,
			tx.Amount,
			tx.ChargedAmount,
			tx.Description,
			tx.Memo,
			tx.Category,
			tx.AccountID,
			tx.IsInternalTransfer,
		); err != nil {
			_ = dbTx.Rollback()
			return 0, fmt.Errorf("failed to insert transaction %s: %w", tx.ID, err)
		}
		count++
	}

	if err := dbTx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit import: %w", err)
	}
	return count, nil
}

// ListAccounts returns all accounts ordered by name.
func (s *Storage) ListAccounts() ([]ledger.Account, error) {
	rows, err := s.db.Query(`SELECT id, name, type, number FROM accounts ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	var accounts []ledger.Account
	for rows.Next() {
		var a ledger.Account
		if err := rows.Scan(&a.ID, &a.Name, &a.Type, &a.Number); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, a)
	}

	return accounts, rows.Err()
}

// SaveAccount upserts an account.
func (s *Storage) SaveAccount(account ledger.Account) error {
	_, err := s.db.Exec(`
	INSERT OR REPLACE INTO accounts (id, name, type, number)
	VALUES (?, ?, ?, ?)
	`, account.ID, account.Name, account.Type, account.Number)
	return err
}
