package services

import (
	"testing"
	"time"

	"atm-simulator/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func recordTx(s *Statistics, txType models.TransactionType, amount, status string) {
	s.IncrementCounter(MetricTransaction, map[string]string{
		"operation": string(txType),
		"status":    status,
		"amount":    amount,
	})
}

func TestStatistics_Transactions(t *testing.T) {
	stats := NewStatistics()

	recordTx(stats, models.TransactionTypeDeposit, "5000.00", StatusSuccess)
	recordTx(stats, models.TransactionTypeWithdrawal, "3000.00", StatusSuccess)
	recordTx(stats, models.TransactionTypeWithdrawal, "60000.00", StatusRejected)
	recordTx(stats, models.TransactionTypeTransferOut, "100.50", StatusSuccess)

	snap := stats.Snapshot()
	assert.Equal(t, 4, snap.TotalTransactions)
	assert.Equal(t, 3, snap.SuccessfulTransactions)
	assert.Equal(t, 1, snap.FailedTransactions)
	assert.True(t, snap.TotalDeposited.Equal(decimal.NewFromInt(5000)))
	assert.True(t, snap.TotalWithdrawn.Equal(decimal.NewFromInt(3000)))
	assert.True(t, snap.TotalTransferred.Equal(decimal.RequireFromString("100.50")))
	assert.Equal(t, 1, snap.TransactionTypeCount[models.TransactionTypeWithdrawal])
	assert.InDelta(t, 75.0, snap.SuccessRate(), 0.001)
}

func TestStatistics_Logins(t *testing.T) {
	stats := NewStatistics()

	stats.IncrementCounter(MetricAuthentication, map[string]string{"event_type": AuthEventFailure})
	stats.IncrementCounter(MetricAuthentication, map[string]string{"event_type": AuthEventBlocked})
	stats.IncrementCounter(MetricAuthentication, map[string]string{"event_type": AuthEventSuccess})
	stats.IncrementCounter(MetricAuthentication, map[string]string{"event_type": AuthEventLocked})

	snap := stats.Snapshot()
	assert.Equal(t, 3, snap.LoginAttempts)
	assert.Equal(t, 2, snap.FailedLoginAttempts)
}

func TestStatistics_SessionDuration(t *testing.T) {
	stats := NewStatistics()

	stats.RecordProcessingTime(MetricSessionDuration, 2*time.Minute)
	stats.RecordProcessingTime("other", time.Hour)

	snap := stats.Snapshot()
	assert.Equal(t, 1, snap.SessionsEnded)
	assert.Equal(t, 2*time.Minute, snap.TotalSessionTime)
}

func TestStatistics_SnapshotIsACopy(t *testing.T) {
	stats := NewStatistics()
	recordTx(stats, models.TransactionTypeDeposit, "1", StatusSuccess)

	snap := stats.Snapshot()
	snap.TransactionTypeCount[models.TransactionTypeDeposit] = 99

	assert.Equal(t, 1, stats.Snapshot().TransactionTypeCount[models.TransactionTypeDeposit])
}

func TestStatistics_Reset(t *testing.T) {
	stats := NewStatistics()
	recordTx(stats, models.TransactionTypeDeposit, "1", StatusSuccess)

	stats.Reset()

	snap := stats.Snapshot()
	assert.Zero(t, snap.TotalTransactions)
	assert.True(t, snap.TotalDeposited.IsZero())
	assert.Zero(t, snap.SuccessRate())
}

func TestStatistics_Report(t *testing.T) {
	stats := NewStatistics()
	recordTx(stats, models.TransactionTypeDeposit, "5000", StatusSuccess)
	stats.IncrementCounter(MetricAuthentication, map[string]string{"event_type": AuthEventSuccess})

	report := stats.Report("INR")

	assert.Contains(t, report, "Total Transactions: 1")
	assert.Contains(t, report, "Success Rate: 100.00%")
	assert.Contains(t, report, "Total Deposited: ₹5,000.00")
	assert.Contains(t, report, "Total Login Attempts: 1")
}
