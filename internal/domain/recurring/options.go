package recurring

import "github.com/finsight/finsight-backend/internal/domain/normalizer"

// Options parametrizes a Detector. The expense and income presets differ only
// in constants: income series (salary-like) are expected to be near-exact
// monthly cycles, so the income path is stricter, while expense merchants
// exhibit more date jitter from billing drift and weekend shifts.
type Options struct {
	// Purpose selects the description normalization mode for grouping.
	Purpose normalizer.Purpose

	// MinOccurrences discards series with fewer transactions before
	// classification. Below 2 a series is not statistically testable.
	MinOccurrences int

	// Tolerance is the relative std-dev bound for series with two or more
	// intervals: regular when stdDev < mean * Tolerance.
	Tolerance float64

	// PairTolerance replaces Tolerance when the series has exactly one
	// interval (two transactions).
	PairTolerance float64

	// PairLenient treats a two-transaction series as recurring whenever a
	// cadence bucket is assigned, even if the regularity test failed: a
	// single interval cannot statistically reject regularity.
	PairLenient bool

	// Thresholds buckets the mean day-gap into a cadence.
	Thresholds Thresholds
}

// ExpenseOptions returns the preset for recurring charge detection.
func ExpenseOptions() Options {
	return Options{
		Purpose:        normalizer.PurposeMerchant,
		MinOccurrences: 2,
		Tolerance:      0.5,
		PairTolerance:  0.7,
		PairLenient:    true,
		Thresholds: Thresholds{
			Weekly:     7,
			Monthly:    35,
			Quarterly:  95,
			SemiAnnual: 190,
			Annual:     380,
		},
	}
}

// IncomeOptions returns the preset for recurring income detection.
// The income path keeps its 30% tolerance even for two-transaction series and
// has no pair leniency; whether that asymmetry with the expense path is
// intentional is an open follow-up, so both behaviors are preserved as-is.
func IncomeOptions() Options {
	return Options{
		Purpose:        normalizer.PurposeSource,
		MinOccurrences: 2,
		Tolerance:      0.3,
		PairTolerance:  0.3,
		PairLenient:    false,
		Thresholds: Thresholds{
			Weekly:     7,
			Monthly:    31,
			Quarterly:  93,
			SemiAnnual: 186,
			Annual:     366,
		},
	}
}
