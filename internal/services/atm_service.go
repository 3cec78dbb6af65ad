package services

import (
	"errors"
	"strings"
	"time"

	"atm-simulator/internal/config"
	"atm-simulator/internal/models"
	"atm-simulator/internal/validation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrNilAccount = errors.New("ATM service requires an account")

// Reasons reported when authentication is refused before the PIN is checked
const (
	BlockedReasonFrozen       = "account_frozen"
	BlockedReasonCardBlocked  = "card_blocked"
	BlockedReasonCardExpired  = "card_expired"
	BlockedReasonSessionEnded = "session_ended"
)

// ATMService applies session policy on top of one Account: PIN lockout,
// daily caps, card and frozen flags, fees, interest and the session clock.
//
// Every rejected operation returns false without saying why; callers that
// need a reason re-derive it from the public predicates.
//
// An ATMService is owned by a single session and is not safe for
// concurrent use.
type ATMService struct {
	account    *models.Account
	policy     config.PolicyConfig
	audit      AuditLoggerInterface
	metrics    MetricsRecorderInterface
	receipts   *ReceiptGenerator
	statements StatementServiceInterface
	now        func() time.Time

	sessionID        string
	sessionStartTime time.Time
	authenticated    bool
	ended            bool

	failedLoginAttempts int
	isAccountFrozen     bool
	cardStatus          models.CardStatus

	dailyTransactionCount int
	dailyWithdrawnAmount  decimal.Decimal
}

type ATMOption func(*ATMService)

func WithPolicy(policy config.PolicyConfig) ATMOption {
	return func(s *ATMService) {
		s.policy = policy
	}
}

func WithAuditLogger(audit AuditLoggerInterface) ATMOption {
	return func(s *ATMService) {
		s.audit = audit
	}
}

// WithMetrics sets the recorder outcomes are reported to, typically a
// *Statistics or a MetricsFanout
func WithMetrics(metrics MetricsRecorderInterface) ATMOption {
	return func(s *ATMService) {
		s.metrics = metrics
	}
}

func WithClock(now func() time.Time) ATMOption {
	return func(s *ATMService) {
		s.now = now
	}
}

func WithReceiptGenerator(receipts *ReceiptGenerator) ATMOption {
	return func(s *ATMService) {
		s.receipts = receipts
	}
}

func WithStatementService(statements StatementServiceInterface) ATMOption {
	return func(s *ATMService) {
		s.statements = statements
	}
}

func WithSessionID(id string) ATMOption {
	return func(s *ATMService) {
		s.sessionID = id
	}
}

// WithCarriedState starts the session with the lockout, card status and
// daily counters of previous, so ending a session neither unlocks the card
// nor resets the day's quota.
func WithCarriedState(previous ATMServiceInterface) ATMOption {
	return func(s *ATMService) {
		if previous == nil {
			return
		}
		s.failedLoginAttempts = previous.FailedLoginAttempts()
		s.isAccountFrozen = previous.IsAccountFrozen()
		s.cardStatus = previous.CardStatus()
		s.dailyTransactionCount = previous.DailyTransactionCount()
		s.dailyWithdrawnAmount = previous.DailyWithdrawnAmount()
	}
}

// NewATMService starts a session for account. The session clock starts now.
func NewATMService(account *models.Account, opts ...ATMOption) (*ATMService, error) {
	if account == nil {
		return nil, ErrNilAccount
	}

	s := &ATMService{
		account:              account,
		policy:               config.DefaultPolicy(),
		metrics:              noopMetrics{},
		now:                  time.Now,
		cardStatus:           models.CardStatusActive,
		dailyWithdrawnAmount: decimal.Zero,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.audit == nil {
		s.audit = NewAuditLogger(nil, WithAuditClock(s.now))
	}
	if s.receipts == nil {
		s.receipts = NewReceiptGenerator(s.policy, s.now)
	}
	if s.statements == nil {
		s.statements = NewStatementService(s.policy, s.now)
	}
	if s.sessionID == "" {
		s.sessionID = uuid.NewString()
	}

	s.sessionStartTime = s.now()
	s.audit.LogSessionStarted(s.sessionID, s.account.MaskedAccountNumber())
	s.metrics.IncrementCounter(MetricSessionEvent, map[string]string{"event_type": "started"})

	return s, nil
}

// Authenticate checks pin against the account. A frozen account, an unusable
// card or an ended session refuse without checking the PIN and without
// counting an attempt. Reaching MaxFailedAttempts consecutive failures
// freezes the account until ResetLockout.
func (s *ATMService) Authenticate(pin string) bool {
	masked := s.account.MaskedAccountNumber()

	if reason := s.blockedReason(); reason != "" {
		s.authenticated = false
		s.audit.LogAuthenticationBlocked(s.sessionID, masked, reason)
		s.metrics.IncrementCounter(MetricAuthentication, map[string]string{"event_type": AuthEventBlocked})
		return false
	}

	if s.account.ValidatePin(pin) {
		s.failedLoginAttempts = 0
		s.authenticated = true
		s.audit.LogAuthenticationAttempt(s.sessionID, masked, true, 0)
		s.metrics.IncrementCounter(MetricAuthentication, map[string]string{"event_type": AuthEventSuccess})
		return true
	}

	s.failedLoginAttempts++
	s.authenticated = false
	s.audit.LogAuthenticationAttempt(s.sessionID, masked, false, s.failedLoginAttempts)
	s.metrics.IncrementCounter(MetricAuthentication, map[string]string{"event_type": AuthEventFailure})

	if s.failedLoginAttempts >= s.policy.MaxFailedAttempts {
		s.isAccountFrozen = true
		s.audit.LogAccountLocked(s.sessionID, masked, s.failedLoginAttempts)
		s.metrics.IncrementCounter(MetricAuthentication, map[string]string{"event_type": AuthEventLocked})
	}

	return false
}

// IsAuthenticated reports whether the last Authenticate call succeeded and
// nothing has frozen the account or ended the session since
func (s *ATMService) IsAuthenticated() bool {
	return s.authenticated && s.blockedReason() == ""
}

// DepositMoney rejects non-positive amounts and deposits beyond the daily
// transaction count
func (s *ATMService) DepositMoney(amount decimal.Decimal) bool {
	txType := models.TransactionTypeDeposit

	if !validation.IsValidAmount(amount) || s.blockedReason() != "" {
		return s.reject(txType)
	}
	if s.dailyTransactionCount >= s.policy.MaxDailyTransactions {
		return s.reject(txType)
	}
	if !s.account.Deposit(amount) {
		return s.reject(txType)
	}

	s.dailyTransactionCount++
	s.complete(txType, amount)
	return true
}

// WithdrawMoney applies the daily count and amount caps, and the minimum
// balance when EnforceMinimumBalance is set. Only a withdrawal the account
// accepts consumes quota.
func (s *ATMService) WithdrawMoney(amount decimal.Decimal) bool {
	txType := models.TransactionTypeWithdrawal

	if !validation.IsValidAmount(amount) || s.blockedReason() != "" {
		return s.reject(txType)
	}
	if !s.withinDailyCaps(amount) {
		return s.reject(txType)
	}
	if s.policy.EnforceMinimumBalance && !s.CanWithdrawWithMinBalance(amount) {
		return s.reject(txType)
	}
	if !s.account.Withdraw(amount) {
		return s.reject(txType)
	}

	s.dailyWithdrawnAmount = s.dailyWithdrawnAmount.Add(amount)
	s.dailyTransactionCount++
	s.complete(txType, amount)
	return true
}

// TransferMoney moves amount out of the account towards targetAccountID.
// Transfers to an empty target or to the session's own account are
// rejected. Daily caps apply only when CapTransfers is set.
func (s *ATMService) TransferMoney(amount decimal.Decimal, targetAccountID string) bool {
	txType := models.TransactionTypeTransferOut
	target := strings.TrimSpace(targetAccountID)

	if !validation.IsValidAmount(amount) || s.blockedReason() != "" {
		return s.reject(txType)
	}
	if target == "" || s.IsOwnAccount(target) {
		return s.reject(txType)
	}
	if s.policy.CapTransfers && !s.withinDailyCaps(amount) {
		return s.reject(txType)
	}
	if !s.account.Transfer(amount, target) {
		return s.reject(txType)
	}

	if s.policy.CapTransfers {
		s.dailyWithdrawnAmount = s.dailyWithdrawnAmount.Add(amount)
		s.dailyTransactionCount++
	}
	s.complete(txType, amount)
	return true
}

// ChangePin delegates to the account. The attempt is audited without either PIN.
func (s *ATMService) ChangePin(oldPin, newPin string) bool {
	if s.blockedReason() != "" {
		return false
	}

	ok := s.account.ChangePin(oldPin, newPin)
	s.audit.LogPinChange(s.sessionID, s.account.MaskedAccountNumber(), ok)
	return ok
}

// CanWithdrawWithMinBalance reports whether balance - amount stays at or
// above the minimum balance
func (s *ATMService) CanWithdrawWithMinBalance(amount decimal.Decimal) bool {
	return s.account.Balance().Sub(amount).GreaterThanOrEqual(s.policy.MinimumBalance)
}

// CalculateTransactionFee charges TransferFeeRate on transfers strictly above
// TransferFeeThreshold, rounded to paise. Every other case is free.
func (s *ATMService) CalculateTransactionFee(txType models.TransactionType, amount decimal.Decimal) decimal.Decimal {
	if txType != models.TransactionTypeTransfer && txType != models.TransactionTypeTransferOut {
		return decimal.Zero
	}
	if !amount.GreaterThan(s.policy.TransferFeeThreshold) {
		return decimal.Zero
	}
	return amount.Mul(s.policy.TransferFeeRate).Round(validation.MoneyScale)
}

// CalculateInterest is a flat SavingsInterestRate on the current balance for
// savings accounts, zero otherwise
func (s *ATMService) CalculateInterest() decimal.Decimal {
	if s.account.Type() != models.AccountTypeSavings {
		return decimal.Zero
	}
	return s.account.Balance().Mul(s.policy.SavingsInterestRate).Round(validation.MoneyScale)
}

// ApplyInterest credits CalculateInterest when it is positive. Interest is
// not a customer transaction and does not touch the daily counters.
func (s *ATMService) ApplyInterest() bool {
	interest := s.CalculateInterest()
	if !interest.IsPositive() {
		return false
	}
	if !s.account.Deposit(interest) {
		return false
	}

	s.audit.LogInterestApplied(s.sessionID, s.account.MaskedAccountNumber(), interest, s.account.Balance())
	return true
}

// IsSessionTimedOut is purely time based: elapsed >= SessionTimeout
func (s *ATMService) IsSessionTimedOut() bool {
	return s.SessionDuration() >= s.policy.SessionTimeout
}

func (s *ATMService) ResetSessionTimeout() {
	s.sessionStartTime = s.now()
}

// ExpireSession records a timeout and ends the session
func (s *ATMService) ExpireSession() {
	if s.ended {
		return
	}

	s.audit.LogSessionTimeout(s.sessionID, s.account.MaskedAccountNumber(), s.SessionDuration())
	s.metrics.IncrementCounter(MetricSessionEvent, map[string]string{"event_type": "timeout"})
	s.EndSession()
}

// EndSession logs the end of the session. Every later operation is refused.
func (s *ATMService) EndSession() {
	if s.ended {
		return
	}

	duration := s.SessionDuration()
	s.ended = true
	s.authenticated = false
	s.audit.LogSessionEnded(s.sessionID, s.account.MaskedAccountNumber(), duration)
	s.metrics.IncrementCounter(MetricSessionEvent, map[string]string{"event_type": "ended"})
	s.metrics.RecordProcessingTime(MetricSessionDuration, duration)
}

func (s *ATMService) IsSessionEnded() bool {
	return s.ended
}

func (s *ATMService) SessionID() string {
	return s.sessionID
}

func (s *ATMService) SessionStartTime() time.Time {
	return s.sessionStartTime
}

func (s *ATMService) SessionDuration() time.Duration {
	return s.now().Sub(s.sessionStartTime)
}

// ResetDailyLimits is the daily rollover: both daily counters return to zero
func (s *ATMService) ResetDailyLimits() {
	s.dailyTransactionCount = 0
	s.dailyWithdrawnAmount = decimal.Zero
	s.audit.LogDailyReset(s.sessionID, s.account.MaskedAccountNumber())
}

// ResetLockout is the administrative unlock: unfreezes and clears attempts
func (s *ATMService) ResetLockout() {
	s.isAccountFrozen = false
	s.failedLoginAttempts = 0
	s.audit.LogAccountUnlocked(s.sessionID, s.account.MaskedAccountNumber())
}

// ResetFailedLoginAttempts clears the counter but leaves a frozen account frozen
func (s *ATMService) ResetFailedLoginAttempts() {
	s.failedLoginAttempts = 0
}

func (s *ATMService) SetAccountFrozen(frozen bool) {
	if frozen == s.isAccountFrozen {
		return
	}

	s.isAccountFrozen = frozen
	if frozen {
		s.authenticated = false
		s.audit.LogAccountLocked(s.sessionID, s.account.MaskedAccountNumber(), s.failedLoginAttempts)
		return
	}
	s.audit.LogAccountUnlocked(s.sessionID, s.account.MaskedAccountNumber())
}

func (s *ATMService) SetCardStatus(status models.CardStatus) {
	if status == s.cardStatus {
		return
	}

	old := s.cardStatus
	s.cardStatus = status
	if !status.IsUsable() {
		s.authenticated = false
	}
	s.audit.LogCardStatusChange(s.sessionID, s.account.MaskedAccountNumber(), old, status)
}

func (s *ATMService) CheckBalance() decimal.Decimal {
	return s.account.Balance()
}

func (s *ATMService) HolderName() string {
	return s.account.HolderName()
}

func (s *ATMService) AccountType() models.AccountType {
	return s.account.Type()
}

func (s *ATMService) MaskedAccountNumber() string {
	return s.account.MaskedAccountNumber()
}

// IsOwnAccount reports whether accountID is the session's account
func (s *ATMService) IsOwnAccount(accountID string) bool {
	return strings.TrimSpace(accountID) == s.account.AccountNumber()
}

func (s *ATMService) FailedLoginAttempts() int {
	return s.failedLoginAttempts
}

func (s *ATMService) IsAccountFrozen() bool {
	return s.isAccountFrozen
}

func (s *ATMService) CardStatus() models.CardStatus {
	return s.cardStatus
}

func (s *ATMService) DailyTransactionCount() int {
	return s.dailyTransactionCount
}

func (s *ATMService) DailyWithdrawnAmount() decimal.Decimal {
	return s.dailyWithdrawnAmount
}

// RemainingDailyWithdrawalLimit never goes below zero
func (s *ATMService) RemainingDailyWithdrawalLimit() decimal.Decimal {
	remaining := s.policy.DailyWithdrawalLimit.Sub(s.dailyWithdrawnAmount)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}

func (s *ATMService) Policy() config.PolicyConfig {
	return s.policy
}

// MiniStatement returns the last n records; n <= 0 uses MiniStatementSize
func (s *ATMService) MiniStatement(n int) []models.Transaction {
	if n <= 0 {
		n = s.policy.MiniStatementSize
	}
	return s.account.LastTransactions(n)
}

func (s *ATMService) TransactionHistory() []models.Transaction {
	return s.account.TransactionHistory()
}

// GenerateReceipt renders a numbered receipt for a transaction of txType
// against the current balance
func (s *ATMService) GenerateReceipt(txType models.TransactionType, amount decimal.Decimal) string {
	return s.receipts.Generate(ReceiptData{
		AccountNumber:   s.account.MaskedAccountNumber(),
		HolderName:      s.account.HolderName(),
		TransactionType: txType,
		Amount:          amount,
		Balance:         s.account.Balance(),
	})
}

func (s *ATMService) GenerateBalanceReceipt() string {
	return s.receipts.GenerateBalance(s.account.MaskedAccountNumber(), s.account.HolderName(), s.account.Balance())
}

// Statement snapshots the account history for export
func (s *ATMService) Statement() *models.AccountStatement {
	return s.statements.GenerateStatement(s.account)
}

// blockedReason is non-empty when the session may not authenticate or transact
func (s *ATMService) blockedReason() string {
	switch {
	case s.ended:
		return BlockedReasonSessionEnded
	case s.isAccountFrozen:
		return BlockedReasonFrozen
	case s.cardStatus == models.CardStatusBlocked:
		return BlockedReasonCardBlocked
	case !s.cardStatus.IsUsable():
		return BlockedReasonCardExpired
	default:
		return ""
	}
}

func (s *ATMService) withinDailyCaps(amount decimal.Decimal) bool {
	if s.dailyTransactionCount >= s.policy.MaxDailyTransactions {
		return false
	}
	return !s.dailyWithdrawnAmount.Add(amount).GreaterThan(s.policy.DailyWithdrawalLimit)
}

func (s *ATMService) complete(txType models.TransactionType, amount decimal.Decimal) {
	balance := s.account.Balance()
	s.audit.LogTransactionCompleted(s.sessionID, s.account.MaskedAccountNumber(), txType, amount, balance)

	// "amount" feeds Statistics totals only; PrometheusMetrics drops it so
	// amounts never become label values.
	s.metrics.IncrementCounter(MetricTransaction, map[string]string{
		"operation": string(txType),
		"status":    StatusSuccess,
		"amount":    amount.StringFixed(2),
	})
	s.metrics.RecordGauge(MetricTransactionAmount, amount.InexactFloat64(), map[string]string{"operation": string(txType)})
	s.metrics.RecordGauge(MetricAccountBalance, balance.InexactFloat64(), nil)
}

// reject counts the rejection without a reason
func (s *ATMService) reject(txType models.TransactionType) bool {
	s.metrics.IncrementCounter(MetricTransaction, map[string]string{
		"operation": string(txType),
		"status":    StatusRejected,
	})
	return false
}
