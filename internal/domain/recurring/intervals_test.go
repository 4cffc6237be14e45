package recurring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/finsight/finsight-backend/internal/domain/ledger"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestComputeIntervals(t *testing.T) {
	s := &series{
		dates: []time.Time{
			date(2025, time.January, 1),
			date(2025, time.January, 11),
			date(2025, time.February, 5),
		},
	}

	stats := computeIntervals(s)

	assert.Equal(t, []int{10, 25}, stats.intervals)
	assert.InDelta(t, 17.5, stats.meanDays, 0.001)
	assert.InDelta(t, 7.5, stats.stdDevDays, 0.001)
}

func TestComputeIntervals_PopulationStdDev(t *testing.T) {
	// Intervals [28, 32]: mean 30, population std dev 2 (sample would be ~2.83).
	s := &series{
		dates: []time.Time{
			date(2025, time.March, 1),
			date(2025, time.March, 29),
			date(2025, time.April, 30),
		},
	}

	stats := computeIntervals(s)

	assert.InDelta(t, 30.0, stats.meanDays, 0.001)
	assert.InDelta(t, 2.0, stats.stdDevDays, 0.001)
}

func TestComputeIntervals_SingleTransaction(t *testing.T) {
	s := &series{dates: []time.Time{date(2025, time.June, 1)}}

	stats := computeIntervals(s)

	assert.Empty(t, stats.intervals)
	assert.Zero(t, stats.meanDays)
	assert.Zero(t, stats.stdDevDays)
}

func TestSortByDate_Lockstep(t *testing.T) {
	s := &series{
		key:     "acme",
		amounts: []float64{30, 10, 20},
		dates: []time.Time{
			date(2025, time.March, 1),
			date(2025, time.January, 1),
			date(2025, time.February, 1),
		},
		transactions: []ledger.Transaction{
			{ID: "c"}, {ID: "a"}, {ID: "b"},
		},
	}

	s.sortByDate()

	assert.Equal(t, []float64{10, 20, 30}, s.amounts)
	assert.Equal(t, "a", s.transactions[0].ID)
	assert.Equal(t, "b", s.transactions[1].ID)
	assert.Equal(t, "c", s.transactions[2].ID)
	assert.True(t, s.dates[0].Before(s.dates[1]))
	assert.True(t, s.dates[1].Before(s.dates[2]))
}
