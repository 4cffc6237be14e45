package merchant

import (
	"sort"
	"strings"

	"github.com/finsight/finsight-backend/internal/domain/ledger"
	"github.com/finsight/finsight-backend/internal/domain/normalizer"
)

// Spend is a per-merchant expense aggregate.
type Spend struct {
	Merchant         string  `json:"merchant"`
	TotalAmount      float64 `json:"total_amount"`
	TransactionCount int     `json:"transaction_count"`
}

// SpendingOptions narrows a spending breakdown.
type SpendingOptions struct {
	MinAmount float64
	TopN      int
}

// SpendingByMerchant aggregates expenses by normalized merchant key and
// returns the per-merchant totals sorted descending. Income and internal
// transfers are excluded.
func SpendingByMerchant(txs []ledger.Transaction, opts SpendingOptions) []Spend {
	type bucket struct {
		total float64
		count int
	}
	buckets := make(map[string]*bucket)

	for _, tx := range txs {
		if !tx.Valid() || tx.IsInternalTransfer || !tx.IsExpense() {
			continue
		}
		key := normalizer.Normalize(tx.Description, normalizer.PurposeMerchant)
		if key == "" {
			continue
		}
		b, ok := buckets[key]
		if !ok {
			b = &bucket{}
			buckets[key] = b
		}
		b.total += tx.ChargeValue()
		b.count++
	}

	spends := make([]Spend, 0, len(buckets))
	for key, b := range buckets {
		if b.total < opts.MinAmount {
			continue
		}
		spends = append(spends, Spend{
			Merchant:         DisplayName(key),
			TotalAmount:      b.total,
			TransactionCount: b.count,
		})
	}

	sort.Slice(spends, func(i, j int) bool {
		if spends[i].TotalAmount != spends[j].TotalAmount {
			return spends[i].TotalAmount > spends[j].TotalAmount
		}
		return strings.Compare(spends[i].Merchant, spends[j].Merchant) < 0
	})

	if opts.TopN > 0 && len(spends) > opts.TopN {
		spends = spends[:opts.TopN]
	}
	return spends
}
