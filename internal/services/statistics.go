package services

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"atm-simulator/internal/models"

	"github.com/shopspring/decimal"
)

// Metric names the ATM service reports through MetricsRecorderInterface
const (
	MetricAuthentication      = "authentication_event"
	MetricTransaction         = "transaction.processed"
	MetricTransactionAmount   = "transaction_amount"
	MetricSessionEvent        = "session_event"
	MetricSessionDuration     = "session_duration"
	MetricAccountBalance      = "account_balance"
	MetricCircuitBreakerState = "circuit_breaker.state"
)

// Tag values used with the metric names above
const (
	StatusSuccess  = "success"
	StatusRejected = "rejected"

	AuthEventSuccess = "success"
	AuthEventFailure = "failure"
	AuthEventLocked  = "locked"
	AuthEventBlocked = "blocked"
)

// StatisticsSnapshot is a point-in-time copy of the collected statistics
type StatisticsSnapshot struct {
	TotalTransactions      int
	SuccessfulTransactions int
	FailedTransactions     int
	TotalDeposited         decimal.Decimal
	TotalWithdrawn         decimal.Decimal
	TotalTransferred       decimal.Decimal
	TransactionTypeCount   map[models.TransactionType]int
	LoginAttempts          int
	FailedLoginAttempts    int
	SessionsEnded          int
	TotalSessionTime       time.Duration
}

// SuccessRate is the percentage of transactions that succeeded
func (s StatisticsSnapshot) SuccessRate() float64 {
	if s.TotalTransactions == 0 {
		return 0
	}
	return float64(s.SuccessfulTransactions) * 100 / float64(s.TotalTransactions)
}

// Statistics is an in-process MetricsRecorder that keeps the running totals
// shown in the ATM statistics report. Amounts are read from the "amount" tag
// of transaction counters so totals stay exact.
type Statistics struct {
	mu    sync.Mutex
	stats StatisticsSnapshot
}

func NewStatistics() *Statistics {
	s := &Statistics{}
	s.Reset()
	return s
}

func (s *Statistics) IncrementCounter(name string, tags map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch name {
	case MetricTransaction:
		s.stats.TotalTransactions++
		if tags["status"] != StatusSuccess {
			s.stats.FailedTransactions++
			return
		}
		s.stats.SuccessfulTransactions++

		txType := models.TransactionType(tags["operation"])
		s.stats.TransactionTypeCount[txType]++

		amount, err := decimal.NewFromString(tags["amount"])
		if err != nil {
			return
		}
		switch txType {
		case models.TransactionTypeDeposit:
			s.stats.TotalDeposited = s.stats.TotalDeposited.Add(amount)
		case models.TransactionTypeWithdrawal:
			s.stats.TotalWithdrawn = s.stats.TotalWithdrawn.Add(amount)
		case models.TransactionTypeTransfer, models.TransactionTypeTransferOut:
			s.stats.TotalTransferred = s.stats.TotalTransferred.Add(amount)
		}
	case MetricAuthentication:
		switch tags["event_type"] {
		case AuthEventSuccess:
			s.stats.LoginAttempts++
		case AuthEventFailure, AuthEventBlocked:
			s.stats.LoginAttempts++
			s.stats.FailedLoginAttempts++
		}
	}
}

func (s *Statistics) RecordProcessingTime(name string, duration time.Duration) {
	if name != MetricSessionDuration {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats.SessionsEnded++
	s.stats.TotalSessionTime += duration
}

// RecordGauge is a no-op; gauges carry no running totals
func (s *Statistics) RecordGauge(string, float64, map[string]string) {}

// Snapshot returns a copy safe to read while the collector keeps counting
func (s *Statistics) Snapshot() StatisticsSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.stats
	out.TransactionTypeCount = make(map[models.TransactionType]int, len(s.stats.TransactionTypeCount))
	for k, v := range s.stats.TransactionTypeCount {
		out.TransactionTypeCount[k] = v
	}
	return out
}

func (s *Statistics) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stats = StatisticsSnapshot{
		TotalDeposited:       decimal.Zero,
		TotalWithdrawn:       decimal.Zero,
		TotalTransferred:     decimal.Zero,
		TransactionTypeCount: make(map[models.TransactionType]int),
	}
}

// Report renders the statistics block printed when the console exits
func (s *Statistics) Report(currency string) string {
	snap := s.Snapshot()

	var b strings.Builder
	b.WriteString("========== ATM STATISTICS REPORT ==========\n")
	fmt.Fprintf(&b, "Total Transactions: %d\n", snap.TotalTransactions)
	fmt.Fprintf(&b, "Successful: %d\n", snap.SuccessfulTransactions)
	fmt.Fprintf(&b, "Failed: %d\n", snap.FailedTransactions)
	fmt.Fprintf(&b, "Success Rate: %.2f%%\n", snap.SuccessRate())
	b.WriteString("\nFinancial Summary:\n")
	fmt.Fprintf(&b, "Total Deposited: %s\n", FormatMoney(snap.TotalDeposited, currency))
	fmt.Fprintf(&b, "Total Withdrawn: %s\n", FormatMoney(snap.TotalWithdrawn, currency))
	fmt.Fprintf(&b, "Total Transferred: %s\n", FormatMoney(snap.TotalTransferred, currency))
	b.WriteString("\nLogin Statistics:\n")
	fmt.Fprintf(&b, "Total Login Attempts: %d\n", snap.LoginAttempts)
	fmt.Fprintf(&b, "Failed Login Attempts: %d\n", snap.FailedLoginAttempts)
	b.WriteString("===========================================\n")
	return b.String()
}
