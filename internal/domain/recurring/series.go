package recurring

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/finsight/finsight-backend/internal/domain/ledger"
	"github.com/finsight/finsight-backend/internal/domain/normalizer"
)

// series is one recurring candidate: all transactions sharing a normalized
// description key. It is built fresh per detection run and discarded after
// classification, so no aliasing hazards arise from the in-place date sort.
type series struct {
	key          string
	amounts      []float64
	dates        []time.Time
	transactions []ledger.Transaction
}

// sortByDate orders the series ascending by date, reordering amounts and
// transactions in lockstep so indices stay aligned.
func (s *series) sortByDate() {
	idx := make([]int, len(s.dates))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return s.dates[idx[a]].Before(s.dates[idx[b]])
	})

	dates := make([]time.Time, len(idx))
	amounts := make([]float64, len(idx))
	txs := make([]ledger.Transaction, len(idx))
	for i, j := range idx {
		dates[i] = s.dates[j]
		amounts[i] = s.amounts[j]
		txs[i] = s.transactions[j]
	}
	s.dates = dates
	s.amounts = amounts
	s.transactions = txs
}

// groupSeries partitions transactions into series keyed by normalized
// description. Encounter order is preserved per bucket; sorting is deferred
// to classification. Transactions missing a date or amount are skipped.
func groupSeries(txs []ledger.Transaction, purpose normalizer.Purpose) map[string]*series {
	groups := make(map[string]*series)
	for _, tx := range txs {
		if !tx.Valid() {
			continue
		}

		var amount float64
		if purpose == normalizer.PurposeSource {
			amount = tx.Amount
		} else {
			amount = tx.ChargeValue()
		}
		amount = math.Abs(amount)

		key := normalizer.Normalize(tx.Description, purpose)
		if key == "" {
			continue
		}

		s, ok := groups[key]
		if !ok {
			s = &series{key: key}
			groups[key] = s
		}
		s.amounts = append(s.amounts, amount)
		s.dates = append(s.dates, tx.Date)
		s.transactions = append(s.transactions, tx)
	}
	return groups
}

// incomeKeywords mark transactions that are income-like (salary, dividends,
// refunds) and must not be grouped as merchant expenses.
var incomeKeywords = []string{
	"salary", "wage", "dividend", "interest", "refund", "bonus", "pension", "grant",
	"משכורת", "שכר", "דיבידנד", "ריבית", "החזר", "בונוס", "פנסיה", "מענק", "קצבה",
}

func matchesIncomeKeyword(description string) bool {
	lower := strings.ToLower(description)
	for _, kw := range incomeKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// FilterExpenses returns the transactions eligible for recurring charge
// detection: outgoing, not internal transfers, not income-like.
func FilterExpenses(txs []ledger.Transaction) []ledger.Transaction {
	var out []ledger.Transaction
	for _, tx := range txs {
		if !tx.Valid() || tx.IsInternalTransfer {
			continue
		}
		if !tx.IsExpense() {
			continue
		}
		if matchesIncomeKeyword(tx.Description) {
			continue
		}
		out = append(out, tx)
	}
	return out
}

// FilterIncome returns the transactions eligible for recurring income
// detection: strictly positive amounts, not internal transfers.
func FilterIncome(txs []ledger.Transaction) []ledger.Transaction {
	var out []ledger.Transaction
	for _, tx := range txs {
		if !tx.Valid() || tx.IsInternalTransfer {
			continue
		}
		if !tx.IsIncome() {
			continue
		}
		out = append(out, tx)
	}
	return out
}
