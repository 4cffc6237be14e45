// Package ledger defines the transaction and account value types shared by
// the analysis packages.
//
// Transactions are sourced externally (bank/card scrapers feeding the store)
// and are never created or mutated by the analysis code.
package ledger

import (
	"math"
	"time"
)

// Transaction is a single bank or card movement.
// Amount is signed: negative for expenses, positive for income.
type Transaction struct {
	ID                 string    `json:"id"`
	Date               time.Time `json:"date"`
	Amount             float64   `json:"amount"`
	ChargedAmount      float64   `json:"charged_amount,omitempty"` // actual billed amount when it differs (card billing cycles)
	Description        string    `json:"description"`
	Memo               string    `json:"memo,omitempty"`
	Category           string    `json:"category,omitempty"`
	AccountID          string    `json:"account_id"`
	IsInternalTransfer bool      `json:"is_internal_transfer,omitempty"`
}

// Account identifies one of the user's bank or card accounts.
type Account struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Type   string `json:"type,omitempty"` // "bank" or "card"
	Number string `json:"number,omitempty"`
}

// ChargeValue returns the absolute amount actually charged: the billed amount
// when present, otherwise the transaction amount.
func (t Transaction) ChargeValue() float64 {
	if t.ChargedAmount != 0 {
		return math.Abs(t.ChargedAmount)
	}
	return math.Abs(t.Amount)
}

// Valid reports whether the transaction carries the minimum fields the
// analysis needs. Upstream scrapers occasionally emit partial rows; those are
// skipped rather than treated as fatal.
func (t Transaction) Valid() bool {
	if t.Date.IsZero() {
		return false
	}
	return t.Amount != 0 || t.ChargedAmount != 0
}

// IsExpense reports whether the transaction is an outgoing charge.
func (t Transaction) IsExpense() bool {
	return t.Amount < 0
}

// IsIncome reports whether the transaction is an incoming payment.
func (t Transaction) IsIncome() bool {
	return t.Amount > 0
}
