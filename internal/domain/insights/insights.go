// Package insights derives plain-language observations from detected
// recurring patterns and weekday spending aggregates.
package insights

import (
	"fmt"
	"time"

	"github.com/finsight/finsight-backend/internal/domain/recurring"
)

const (
	// costlyMonthlyThreshold is the average amount above which a monthly
	// pattern gets flagged for review.
	costlyMonthlyThreshold = 100.0

	// staleDays is how long a monthly pattern may go unseen before it is
	// called out as possibly cancelled.
	staleDays = 45

	// weekdayRatioThreshold is the min ratio between the highest and lowest
	// per-day spending averages that yields a weekday comparison insight.
	weekdayRatioThreshold = 2.0
)

// Generate evaluates the insight rules against detected patterns and weekday
// spending. Rules run in a fixed order so output order is stable.
func Generate(patterns []recurring.Pattern, weekdays []WeekdaySpend, now time.Time) []string {
	var out []string

	for _, p := range patterns {
		if p.Frequency == recurring.CadenceMonthly && p.AverageAmount > costlyMonthlyThreshold {
			out = append(out, fmt.Sprintf(
				"%s charges %.2f monthly, worth a review", p.SeriesKey, p.AverageAmount))
		}
	}

	for _, p := range patterns {
		if p.Frequency != recurring.CadenceMonthly {
			continue
		}
		if now.Sub(p.LastDate).Hours()/24 > staleDays {
			out = append(out, fmt.Sprintf(
				"%s has not charged in over %d days, possibly cancelled", p.SeriesKey, staleDays))
		}
	}

	if insight, ok := weekdayComparison(weekdays); ok {
		out = append(out, insight)
	}

	if len(patterns) > 0 {
		out = append(out, fmt.Sprintf(
			"recurring charges project to %.2f per year", recurring.AnnualizedTotal(patterns)))
	}

	return out
}

// weekdayComparison compares the highest and lowest average daily spend
// across weekdays. Both ends need at least one spending day.
func weekdayComparison(weekdays []WeekdaySpend) (string, bool) {
	var hi, lo *WeekdaySpend
	for i := range weekdays {
		w := &weekdays[i]
		if w.Days == 0 {
			continue
		}
		if hi == nil || w.AveragePerDay > hi.AveragePerDay {
			hi = w
		}
		if lo == nil || w.AveragePerDay < lo.AveragePerDay {
			lo = w
		}
	}
	if hi == nil || lo == nil || hi == lo || lo.AveragePerDay <= 0 {
		return "", false
	}

	ratio := hi.AveragePerDay / lo.AveragePerDay
	if ratio <= weekdayRatioThreshold {
		return "", false
	}
	return fmt.Sprintf("you spend %.1fx more on %ss than on %ss",
		ratio, hi.Weekday, lo.Weekday), true
}
