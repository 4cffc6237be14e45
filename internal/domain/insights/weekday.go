package insights

import (
	"github.com/finsight/finsight-backend/internal/domain/ledger"
)

// WeekdaySpend aggregates expense totals for one day of the week.
type WeekdaySpend struct {
	Weekday       string  `json:"weekday"`
	TotalAmount   float64 `json:"total_amount"`
	Days          int     `json:"days"`
	AveragePerDay float64 `json:"average_per_day"`
}

var weekdayNames = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// SpendByWeekday buckets expenses by day of week. Days counts distinct
// calendar dates with spending, so a weekday with two shopping trips on the
// same date still averages over one day.
func SpendByWeekday(txs []ledger.Transaction) []WeekdaySpend {
	totals := [7]float64{}
	seenDates := [7]map[string]struct{}{}
	for i := range seenDates {
		seenDates[i] = make(map[string]struct{})
	}

	for _, tx := range txs {
		if !tx.Valid() || tx.IsInternalTransfer || !tx.IsExpense() {
			continue
		}
		wd := int(tx.Date.Weekday())
		totals[wd] += tx.ChargeValue()
		seenDates[wd][tx.Date.Format("2006-01-02")] = struct{}{}
	}

	out := make([]WeekdaySpend, 7)
	for i := 0; i < 7; i++ {
		days := len(seenDates[i])
		avg := 0.0
		if days > 0 {
			avg = totals[i] / float64(days)
		}
		out[i] = WeekdaySpend{
			Weekday:       weekdayNames[i],
			TotalAmount:   totals[i],
			Days:          days,
			AveragePerDay: avg,
		}
	}
	return out
}
