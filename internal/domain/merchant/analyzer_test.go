package merchant

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finsight/finsight-backend/internal/domain/ledger"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func marketTx(id string, amount float64, day time.Time) ledger.Transaction {
	return ledger.Transaction{
		ID:          id,
		Date:        day,
		Amount:      -amount,
		Description: "SUPER MARKET #12",
		AccountID:   "acc-1",
	}
}

func TestAnalyze_Basic(t *testing.T) {
	txs := []ledger.Transaction{
		marketTx("1", 50, date(2025, time.January, 5)),
		marketTx("2", 60, date(2025, time.February, 5)),
		marketTx("3", 70, date(2025, time.March, 5)),
	}

	a := Analyze(txs, "super market", false)
	require.NotNil(t, a)

	assert.Equal(t, "Super Market", a.MerchantName)
	assert.InDelta(t, 180, a.TotalAmount, 0.001)
	assert.Equal(t, 3, a.TransactionCount)
	assert.InDelta(t, 60, a.AverageAmount, 0.001)
	assert.InDelta(t, 50, a.MinAmount, 0.001)
	assert.InDelta(t, 70, a.MaxAmount, 0.001)
	assert.Equal(t, date(2025, time.January, 5), a.FirstSeen)
	assert.Equal(t, date(2025, time.March, 5), a.LastSeen)
	assert.Equal(t, "monthly", a.Frequency)
}

func TestAnalyze_NotFoundReturnsNil(t *testing.T) {
	txs := []ledger.Transaction{
		marketTx("1", 50, date(2025, time.January, 5)),
	}

	assert.Nil(t, Analyze(txs, "bookstore", false))
	assert.Nil(t, Analyze(txs, "   ", false))
}

func TestAnalyze_CaseInsensitiveSubstring(t *testing.T) {
	txs := []ledger.Transaction{
		marketTx("1", 50, date(2025, time.January, 5)),
		marketTx("2", 60, date(2025, time.February, 5)),
	}

	a := Analyze(txs, "SUPER", false)
	require.NotNil(t, a)
	assert.Equal(t, 2, a.TransactionCount)
}

func TestAnalyze_FrequencyBuckets(t *testing.T) {
	tests := []struct {
		name    string
		gapDays int
		want    string
	}{
		{"daily", 1, "daily"},
		{"weekly", 7, "weekly"},
		{"monthly", 30, "monthly"},
		{"irregular", 90, "irregular"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := date(2025, time.January, 1)
			txs := []ledger.Transaction{
				marketTx("1", 50, start),
				marketTx("2", 50, start.AddDate(0, 0, tt.gapDays)),
				marketTx("3", 50, start.AddDate(0, 0, 2*tt.gapDays)),
			}

			a := Analyze(txs, "super market", false)
			require.NotNil(t, a)
			assert.Equal(t, tt.want, a.Frequency)
		})
	}
}

func TestAnalyze_SingleTransactionIsIrregular(t *testing.T) {
	txs := []ledger.Transaction{
		marketTx("1", 50, date(2025, time.January, 5)),
	}

	a := Analyze(txs, "super market", false)
	require.NotNil(t, a)
	assert.Equal(t, "irregular", a.Frequency)
}

func TestAnalyze_AnomalyDetection(t *testing.T) {
	// Amounts [100,100,100,100,500]: mean 180, population std dev 160,
	// threshold 180 + 1.5*160 = 420. Only the 500 charge crosses it.
	txs := []ledger.Transaction{
		marketTx("1", 100, date(2025, time.January, 1)),
		marketTx("2", 100, date(2025, time.February, 1)),
		marketTx("3", 100, date(2025, time.March, 1)),
		marketTx("4", 100, date(2025, time.April, 1)),
		marketTx("5", 500, date(2025, time.May, 1)),
	}

	a := Analyze(txs, "super market", true)
	require.NotNil(t, a)
	require.Len(t, a.Anomalies, 1)
	assert.Equal(t, "5", a.Anomalies[0].ID)
}

func TestAnalyze_AnomaliesOnlyWhenRequested(t *testing.T) {
	txs := []ledger.Transaction{
		marketTx("1", 100, date(2025, time.January, 1)),
		marketTx("2", 500, date(2025, time.February, 1)),
	}

	a := Analyze(txs, "super market", false)
	require.NotNil(t, a)
	assert.Empty(t, a.Anomalies)
}

func TestSpendingByMerchant(t *testing.T) {
	txs := []ledger.Transaction{
		{ID: "1", Date: date(2025, time.January, 5), Amount: -150, Description: "SUPER MARKET #12", AccountID: "a"},
		{ID: "2", Date: date(2025, time.January, 20), Amount: -100, Description: "SUPER MARKET #14", AccountID: "a"},
		{ID: "3", Date: date(2025, time.January, 8), Amount: -40, Description: "CORNER CAFE", AccountID: "a"},
		{ID: "4", Date: date(2025, time.January, 10), Amount: 5000, Description: "SALARY", AccountID: "a"},
		{ID: "5", Date: date(2025, time.January, 11), Amount: -900, Description: "MOVE SAVINGS", AccountID: "a", IsInternalTransfer: true},
	}

	spends := SpendingByMerchant(txs, SpendingOptions{})
	require.Len(t, spends, 2)

	assert.Equal(t, "Super Market", spends[0].Merchant)
	assert.InDelta(t, 250, spends[0].TotalAmount, 0.001)
	assert.Equal(t, 2, spends[0].TransactionCount)

	assert.Equal(t, "Corner Cafe", spends[1].Merchant)
	assert.InDelta(t, 40, spends[1].TotalAmount, 0.001)
}

func TestSpendingByMerchant_MinAmountAndTopN(t *testing.T) {
	txs := []ledger.Transaction{
		{ID: "1", Date: date(2025, time.January, 5), Amount: -300, Description: "BIG BOX", AccountID: "a"},
		{ID: "2", Date: date(2025, time.January, 6), Amount: -200, Description: "MID SHOP", AccountID: "a"},
		{ID: "3", Date: date(2025, time.January, 7), Amount: -10, Description: "TINY KIOSK", AccountID: "a"},
	}

	spends := SpendingByMerchant(txs, SpendingOptions{MinAmount: 50, TopN: 1})
	require.Len(t, spends, 1)
	assert.Equal(t, "Big Box", spends[0].Merchant)
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "BP Station", DisplayName("bp station"))
	assert.Equal(t, "Super Market", DisplayName("super market"))
}
