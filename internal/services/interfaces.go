package services

import (
	"io"
	"time"

	"atm-simulator/internal/config"
	"atm-simulator/internal/models"

	"github.com/shopspring/decimal"
)

// ATMServiceInterface is the session policy adapters drive
type ATMServiceInterface interface {
	Authenticate(pin string) bool
	IsAuthenticated() bool
	DepositMoney(amount decimal.Decimal) bool
	WithdrawMoney(amount decimal.Decimal) bool
	TransferMoney(amount decimal.Decimal, targetAccountID string) bool
	ChangePin(oldPin, newPin string) bool

	CanWithdrawWithMinBalance(amount decimal.Decimal) bool
	CalculateTransactionFee(txType models.TransactionType, amount decimal.Decimal) decimal.Decimal
	CalculateInterest() decimal.Decimal
	ApplyInterest() bool

	IsSessionTimedOut() bool
	ResetSessionTimeout()
	SessionID() string
	SessionStartTime() time.Time
	SessionDuration() time.Duration
	ExpireSession()
	EndSession()
	IsSessionEnded() bool

	ResetDailyLimits()
	ResetLockout()
	ResetFailedLoginAttempts()
	SetAccountFrozen(frozen bool)
	SetCardStatus(status models.CardStatus)

	CheckBalance() decimal.Decimal
	HolderName() string
	AccountType() models.AccountType
	MaskedAccountNumber() string
	IsOwnAccount(accountID string) bool
	FailedLoginAttempts() int
	IsAccountFrozen() bool
	CardStatus() models.CardStatus
	DailyTransactionCount() int
	DailyWithdrawnAmount() decimal.Decimal
	RemainingDailyWithdrawalLimit() decimal.Decimal
	Policy() config.PolicyConfig

	MiniStatement(n int) []models.Transaction
	TransactionHistory() []models.Transaction
	GenerateReceipt(txType models.TransactionType, amount decimal.Decimal) string
	GenerateBalanceReceipt() string
	Statement() *models.AccountStatement
}

// AuditLoggerInterface receives the audit trail of a session.
// account is always the masked account number.
type AuditLoggerInterface interface {
	LogSessionStarted(sessionID, account string)
	LogSessionEnded(sessionID, account string, duration time.Duration)
	LogSessionTimeout(sessionID, account string, elapsed time.Duration)
	LogAuthenticationAttempt(sessionID, account string, success bool, failedAttempts int)
	LogAuthenticationBlocked(sessionID, account, reason string)
	LogAccountLocked(sessionID, account string, failedAttempts int)
	LogAccountUnlocked(sessionID, account string)
	LogTransactionCompleted(sessionID, account string, txType models.TransactionType, amount, balance decimal.Decimal)
	LogPinChange(sessionID, account string, success bool)
	LogInterestApplied(sessionID, account string, interest, balance decimal.Decimal)
	LogDailyReset(sessionID, account string)
	LogCardStatusChange(sessionID, account string, oldStatus, newStatus models.CardStatus)
}

// AuditServiceInterface reads back the persisted audit trail
type AuditServiceInterface interface {
	SessionTrail(sessionID string) ([]*models.AuditLog, error)
	Activity(q ActivityQuery, offset, limit int) ([]*models.AuditLog, int64, error)
	RecentFailedLogins(account string, window time.Duration) (int64, error)
	Purge(olderThan time.Duration) (int64, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() CircuitBreakerState
	Reset()
	GetFailureCount() int
}

// StatementServiceInterface builds and exports account statements
type StatementServiceInterface interface {
	GenerateStatement(source StatementSource) *models.AccountStatement
	Export(statement *models.AccountStatement, format ExportFormat, w io.Writer) error
	ExportToFile(statement *models.AccountStatement, format ExportFormat, dir string) (string, error)
}
