// Package merchant provides per-merchant spending analysis: aggregate
// statistics, purchase frequency description and anomaly detection for a
// single merchant, plus cross-merchant spending breakdowns.
package merchant

import (
	"math"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/finsight/finsight-backend/internal/domain/ledger"
	"github.com/finsight/finsight-backend/internal/domain/normalizer"
)

// anomalyStdDevs is how many standard deviations above the mean a charge has
// to sit before it is flagged as unusual.
const anomalyStdDevs = 1.5

var titleCaser = cases.Title(language.English)

// Analysis summarizes all matched transactions for one merchant.
type Analysis struct {
	MerchantName     string               `json:"merchant_name"`
	TotalAmount      float64              `json:"total_amount"`
	TransactionCount int                  `json:"transaction_count"`
	AverageAmount    float64              `json:"average_amount"`
	MinAmount        float64              `json:"min_amount"`
	MaxAmount        float64              `json:"max_amount"`
	FirstSeen        time.Time            `json:"first_seen"`
	LastSeen         time.Time            `json:"last_seen"`
	Frequency        string               `json:"frequency"`
	Anomalies        []ledger.Transaction `json:"anomalies,omitempty"`
}

// Analyze matches transactions whose normalized description contains the
// given merchant name (case-insensitive) and computes their aggregate
// statistics. Returns nil when nothing matches.
func Analyze(txs []ledger.Transaction, nameFilter string, includeAnomalies bool) *Analysis {
	filter := strings.ToLower(strings.TrimSpace(nameFilter))
	if filter == "" {
		return nil
	}

	var matched []ledger.Transaction
	for _, tx := range txs {
		if !tx.Valid() {
			continue
		}
		key := normalizer.Normalize(tx.Description, normalizer.PurposeMerchant)
		if strings.Contains(key, filter) {
			matched = append(matched, tx)
		}
	}
	if len(matched) == 0 {
		return nil
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].Date.Before(matched[j].Date)
	})

	amounts := make([]float64, len(matched))
	for i, tx := range matched {
		amounts[i] = tx.ChargeValue()
	}

	total := 0.0
	minAmount := amounts[0]
	maxAmount := amounts[0]
	for _, a := range amounts {
		total += a
		if a < minAmount {
			minAmount = a
		}
		if a > maxAmount {
			maxAmount = a
		}
	}

	a := &Analysis{
		MerchantName:     DisplayName(normalizer.Normalize(matched[0].Description, normalizer.PurposeMerchant)),
		TotalAmount:      total,
		TransactionCount: len(matched),
		AverageAmount:    total / float64(len(matched)),
		MinAmount:        minAmount,
		MaxAmount:        maxAmount,
		FirstSeen:        matched[0].Date,
		LastSeen:         matched[len(matched)-1].Date,
		Frequency:        frequencyDescriptor(matched),
	}
	if includeAnomalies {
		a.Anomalies = findAnomalies(matched, amounts)
	}
	return a
}

// frequencyDescriptor buckets the mean gap between visits into a human
// readable label. Fewer than two transactions gives no gap to measure.
func frequencyDescriptor(txs []ledger.Transaction) string {
	if len(txs) < 2 {
		return "irregular"
	}

	var totalDays float64
	for i := 1; i < len(txs); i++ {
		totalDays += txs[i].Date.Sub(txs[i-1].Date).Hours() / 24
	}
	meanGap := totalDays / float64(len(txs)-1)

	switch {
	case meanGap <= 2:
		return "daily"
	case meanGap <= 10:
		return "weekly"
	case meanGap <= 35:
		return "monthly"
	default:
		return "irregular"
	}
}

// findAnomalies flags charges sitting more than anomalyStdDevs population
// standard deviations above the mean charge.
func findAnomalies(txs []ledger.Transaction, amounts []float64) []ledger.Transaction {
	if len(amounts) < 2 {
		return nil
	}

	var sum float64
	for _, a := range amounts {
		sum += a
	}
	mean := sum / float64(len(amounts))

	var sqSum float64
	for _, a := range amounts {
		diff := a - mean
		sqSum += diff * diff
	}
	stdDev := math.Sqrt(sqSum / float64(len(amounts)))

	threshold := mean + anomalyStdDevs*stdDev
	var anomalies []ledger.Transaction
	for i, a := range amounts {
		if a > threshold {
			anomalies = append(anomalies, txs[i])
		}
	}
	return anomalies
}

// DisplayName turns a normalized key into a presentable merchant name.
// Short tokens stay upper-cased (acronyms like BP, IBM), longer words get
// title casing.
func DisplayName(key string) string {
	words := strings.Fields(key)
	for i, w := range words {
		if len(w) > 2 {
			words[i] = titleCaser.String(w)
		} else {
			words[i] = strings.ToUpper(w)
		}
	}
	return strings.Join(words, " ")
}
