package insights

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finsight/finsight-backend/internal/domain/ledger"
	"github.com/finsight/finsight-backend/internal/domain/recurring"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGenerate_CostlyMonthlyPattern(t *testing.T) {
	now := date(2025, time.June, 15)
	patterns := []recurring.Pattern{
		{SeriesKey: "gym city", AverageAmount: 150, Frequency: recurring.CadenceMonthly, LastDate: now.AddDate(0, 0, -10)},
	}

	out := Generate(patterns, nil, now)
	require.NotEmpty(t, out)
	assert.Contains(t, out[0], "gym city")
	assert.Contains(t, out[0], "150.00")
	assert.Contains(t, out[0], "review")
}

func TestGenerate_ExactlyAtThresholdNotFlagged(t *testing.T) {
	now := date(2025, time.June, 15)
	patterns := []recurring.Pattern{
		{SeriesKey: "mid sub", AverageAmount: 100, Frequency: recurring.CadenceMonthly, LastDate: now.AddDate(0, 0, -10)},
	}

	out := Generate(patterns, nil, now)
	for _, insight := range out {
		assert.NotContains(t, insight, "review")
	}
}

func TestGenerate_StaleMonthlyPattern(t *testing.T) {
	now := date(2025, time.June, 15)
	patterns := []recurring.Pattern{
		{SeriesKey: "old club", AverageAmount: 50, Frequency: recurring.CadenceMonthly, LastDate: now.AddDate(0, 0, -46)},
		{SeriesKey: "fresh sub", AverageAmount: 50, Frequency: recurring.CadenceMonthly, LastDate: now.AddDate(0, 0, -44)},
	}

	out := Generate(patterns, nil, now)

	var stale []string
	for _, insight := range out {
		if strings.Contains(insight, "possibly cancelled") {
			stale = append(stale, insight)
		}
	}
	require.Len(t, stale, 1)
	assert.Contains(t, stale[0], "old club")
}

func TestGenerate_WeekdayRatio(t *testing.T) {
	weekdays := SpendByWeekday([]ledger.Transaction{
		// Friday 2025-06-06 and Tuesday 2025-06-03.
		{ID: "1", Date: date(2025, time.June, 6), Amount: -300, Description: "MALL", AccountID: "a"},
		{ID: "2", Date: date(2025, time.June, 3), Amount: -100, Description: "KIOSK", AccountID: "a"},
	})

	out := Generate(nil, weekdays, date(2025, time.June, 15))
	require.Len(t, out, 1)
	assert.Contains(t, out[0], "3.0x")
	assert.Contains(t, out[0], "Fridays")
	assert.Contains(t, out[0], "Tuesdays")
}

func TestGenerate_WeekdayRatioBelowThreshold(t *testing.T) {
	weekdays := SpendByWeekday([]ledger.Transaction{
		{ID: "1", Date: date(2025, time.June, 6), Amount: -150, Description: "MALL", AccountID: "a"},
		{ID: "2", Date: date(2025, time.June, 3), Amount: -100, Description: "KIOSK", AccountID: "a"},
	})

	out := Generate(nil, weekdays, date(2025, time.June, 15))
	assert.Empty(t, out)
}

func TestGenerate_AnnualProjection(t *testing.T) {
	now := date(2025, time.June, 15)
	patterns := []recurring.Pattern{
		{SeriesKey: "insurance co", AverageAmount: 300, Frequency: recurring.CadenceQuarterly, LastDate: now.AddDate(0, 0, -20)},
	}

	out := Generate(patterns, nil, now)
	require.NotEmpty(t, out)
	assert.Contains(t, out[len(out)-1], "1200.00")
}

func TestSpendByWeekday(t *testing.T) {
	txs := []ledger.Transaction{
		// Mondays.
		{ID: "1", Date: date(2025, time.June, 2), Amount: -100, Description: "SHOP", AccountID: "a"},
		{ID: "2", Date: date(2025, time.June, 9), Amount: -300, Description: "SHOP", AccountID: "a"},
		// Friday.
		{ID: "3", Date: date(2025, time.June, 6), Amount: -50, Description: "CAFE", AccountID: "a"},
		// Income excluded.
		{ID: "4", Date: date(2025, time.June, 2), Amount: 500, Description: "SALARY", AccountID: "a"},
	}

	out := SpendByWeekday(txs)
	require.Len(t, out, 7)

	monday := out[time.Monday]
	assert.Equal(t, "Monday", monday.Weekday)
	assert.InDelta(t, 400, monday.TotalAmount, 0.001)
	assert.Equal(t, 2, monday.Days)
	assert.InDelta(t, 200, monday.AveragePerDay, 0.001)

	friday := out[time.Friday]
	assert.InDelta(t, 50, friday.TotalAmount, 0.001)
	assert.Equal(t, 1, friday.Days)

	sunday := out[time.Sunday]
	assert.Zero(t, sunday.TotalAmount)
	assert.Zero(t, sunday.Days)
}
