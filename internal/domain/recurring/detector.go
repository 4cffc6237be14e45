// Package recurring implements the recurring pattern detection engine: it
// groups transactions into candidate series by normalized description, tests
// each series for temporal regularity, classifies its cadence and projects
// the next expected occurrence.
//
// One parametrized Detector serves both recurring charges and recurring
// income; the two call sites differ only in their Options preset.
package recurring

import (
	"errors"
	"math"
	"sort"
	"time"

	"github.com/finsight/finsight-backend/internal/domain/ledger"
)

// ErrEmptyDataset is returned when detection is invoked with no transactions.
// Callers surface it as "no transactions found" rather than an empty result,
// since consumers cannot distinguish "nothing recurring" from "nothing to
// analyze".
var ErrEmptyDataset = errors.New("no transactions to analyze")

// Pattern is one detected recurring series.
type Pattern struct {
	SeriesKey        string     `json:"series_key"`
	AverageAmount    float64    `json:"average_amount"`
	TotalAmount      float64    `json:"total_amount"`
	Frequency        Cadence    `json:"frequency"`
	Occurrences      int        `json:"occurrences"`
	LastDate         time.Time  `json:"last_date"`
	NextExpectedDate *time.Time `json:"next_expected_date,omitempty"`
	IsRecurring      bool       `json:"is_recurring"`
}

// Detector runs recurring pattern detection over a transaction set.
// It holds no state besides its options; detection is a pure function of its
// input, so concurrent calls are independent.
type Detector struct {
	opts Options
}

// NewDetector creates a detector with the given options.
func NewDetector(opts Options) *Detector {
	if opts.MinOccurrences < 2 {
		opts.MinOccurrences = 2
	}
	return &Detector{opts: opts}
}

// Detect groups the transactions into series and returns the recurring
// patterns, sorted descending by total amount. The input is expected to be
// pre-filtered (FilterExpenses or FilterIncome). Returns ErrEmptyDataset when
// there is nothing to analyze.
func (d *Detector) Detect(txs []ledger.Transaction) ([]Pattern, error) {
	if len(txs) == 0 {
		return nil, ErrEmptyDataset
	}

	groups := groupSeries(txs, d.opts.Purpose)

	patterns := make([]Pattern, 0, len(groups))
	for _, s := range groups {
		if len(s.transactions) < d.opts.MinOccurrences {
			continue
		}
		s.sortByDate()

		p := d.classify(s, computeIntervals(s))
		if !p.IsRecurring {
			continue
		}
		patterns = append(patterns, p)
	}

	// Descending by total amount; key breaks ties so repeated runs over the
	// same dataset always yield the same order.
	sort.Slice(patterns, func(i, j int) bool {
		if patterns[i].TotalAmount != patterns[j].TotalAmount {
			return patterns[i].TotalAmount > patterns[j].TotalAmount
		}
		return patterns[i].SeriesKey < patterns[j].SeriesKey
	})

	return patterns, nil
}

// classify decides whether a date-sorted series is regular and buckets its
// mean gap into a cadence.
func (d *Detector) classify(s *series, stats intervalStats) Pattern {
	p := Pattern{
		SeriesKey:     s.key,
		AverageAmount: mean(s.amounts),
		TotalAmount:   sum(s.amounts),
		Occurrences:   len(s.transactions),
		LastDate:      s.dates[len(s.dates)-1],
		Frequency:     CadenceUnknown,
	}

	// Zero intervals means a single transaction slipped past the occurrence
	// filter; never recurring, never a division by zero.
	if len(stats.intervals) == 0 {
		return p
	}

	tolerance := d.opts.Tolerance
	if len(stats.intervals) == 1 {
		tolerance = d.opts.PairTolerance
	}
	regular := stats.stdDevDays < stats.meanDays*tolerance

	// A single interval cannot statistically reject regularity, so the
	// lenient path classifies a two-transaction series by its bucket alone.
	pairLeniency := len(stats.intervals) == 1 && d.opts.PairLenient

	if !regular && !pairLeniency {
		return p
	}

	cadence := d.opts.Thresholds.Bucket(stats.meanDays)
	if cadence == CadenceUnknown {
		return p
	}

	p.Frequency = cadence
	p.IsRecurring = true
	next := p.LastDate.AddDate(0, 0, int(math.Round(stats.meanDays)))
	p.NextExpectedDate = &next
	return p
}

// AnnualizedTotal projects the yearly cost (or income) of a pattern batch by
// multiplying each average amount with its cadence's annual multiplier.
func AnnualizedTotal(patterns []Pattern) float64 {
	var total float64
	for _, p := range patterns {
		total += p.AverageAmount * p.Frequency.AnnualMultiplier()
	}
	return total
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return sum(values) / float64(len(values))
}

func sum(values []float64) float64 {
	var s float64
	for _, v := range values {
		s += v
	}
	return s
}
