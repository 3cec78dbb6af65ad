package services

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"time"

	"atm-simulator/internal/models"
	"atm-simulator/internal/repositories"

	"github.com/shopspring/decimal"
)

// AuditLogger writes the session audit trail to slog and, when a store is
// configured, persists each event through the audit log repository.
type AuditLogger struct {
	logger  *slog.Logger
	repo    repositories.AuditLogRepositoryInterface
	breaker CircuitBreakerInterface
	now     func() time.Time
}

type AuditLoggerOption func(*AuditLogger)

// WithAuditStore persists events through repo. Persistence is skipped while
// breaker is open; a nil breaker persists unconditionally.
func WithAuditStore(repo repositories.AuditLogRepositoryInterface, breaker CircuitBreakerInterface) AuditLoggerOption {
	return func(al *AuditLogger) {
		al.repo = repo
		al.breaker = breaker
	}
}

func WithAuditClock(now func() time.Time) AuditLoggerOption {
	return func(al *AuditLogger) {
		al.now = now
	}
}

func NewAuditLogger(logger *slog.Logger, opts ...AuditLoggerOption) *AuditLogger {
	if logger == nil {
		logger = slog.Default()
	}

	al := &AuditLogger{
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(al)
	}
	return al
}

func (al *AuditLogger) LogSessionStarted(sessionID, account string) {
	al.emit(slog.LevelInfo, "session started", &models.AuditLog{
		SessionID: sessionID,
		Account:   account,
		Action:    models.AuditActionSessionStarted,
		Status:    models.AuditStatusSuccess,
	})
}

func (al *AuditLogger) LogSessionEnded(sessionID, account string, duration time.Duration) {
	entry := &models.AuditLog{
		SessionID: sessionID,
		Account:   account,
		Action:    models.AuditActionSessionEnded,
		Status:    models.AuditStatusSuccess,
	}
	entry.SetMetadata("duration_ms", duration.Milliseconds())
	al.emit(slog.LevelInfo, "session ended", entry)
}

func (al *AuditLogger) LogSessionTimeout(sessionID, account string, elapsed time.Duration) {
	entry := &models.AuditLog{
		SessionID: sessionID,
		Account:   account,
		Action:    models.AuditActionSessionTimeout,
		Status:    models.AuditStatusRejected,
	}
	entry.SetMetadata("elapsed_ms", elapsed.Milliseconds())
	al.emit(slog.LevelWarn, "session timed out", entry)
}

func (al *AuditLogger) LogAuthenticationAttempt(sessionID, account string, success bool, failedAttempts int) {
	entry := &models.AuditLog{
		SessionID: sessionID,
		Account:   account,
		Action:    models.AuditActionAuthenticate,
		Status:    models.AuditStatusSuccess,
	}
	level := slog.LevelInfo
	msg := "authentication succeeded"
	if !success {
		entry.Action = models.AuditActionFailedLogin
		entry.Status = models.AuditStatusRejected
		level = slog.LevelWarn
		msg = "authentication failed"
	}
	entry.SetMetadata("failed_attempts", failedAttempts)
	al.emit(level, msg, entry)
}

func (al *AuditLogger) LogAuthenticationBlocked(sessionID, account, reason string) {
	entry := &models.AuditLog{
		SessionID: sessionID,
		Account:   account,
		Action:    models.AuditActionFailedLogin,
		Status:    models.AuditStatusRejected,
	}
	entry.SetMetadata("reason", reason)
	al.emit(slog.LevelWarn, "authentication blocked", entry)
}

func (al *AuditLogger) LogAccountLocked(sessionID, account string, failedAttempts int) {
	entry := &models.AuditLog{
		SessionID: sessionID,
		Account:   account,
		Action:    models.AuditActionAccountLocked,
		Status:    models.AuditStatusRejected,
	}
	entry.SetMetadata("failed_attempts", failedAttempts)
	al.emit(slog.LevelWarn, "account locked", entry)
}

func (al *AuditLogger) LogAccountUnlocked(sessionID, account string) {
	al.emit(slog.LevelInfo, "account unlocked", &models.AuditLog{
		SessionID: sessionID,
		Account:   account,
		Action:    models.AuditActionAccountUnlock,
		Status:    models.AuditStatusSuccess,
	})
}

func (al *AuditLogger) LogTransactionCompleted(sessionID, account string, txType models.TransactionType, amount, balance decimal.Decimal) {
	entry := &models.AuditLog{
		SessionID: sessionID,
		Account:   account,
		Action:    auditActionFor(txType),
		Status:    models.AuditStatusSuccess,
		Amount:    amount.StringFixed(2),
	}
	entry.SetMetadata("transaction_type", string(txType))
	entry.SetMetadata("balance", balance.StringFixed(2))
	al.emit(slog.LevelInfo, "transaction completed", entry)
}

func (al *AuditLogger) LogPinChange(sessionID, account string, success bool) {
	entry := &models.AuditLog{
		SessionID: sessionID,
		Account:   account,
		Action:    models.AuditActionPinChanged,
		Status:    models.AuditStatusSuccess,
	}
	level := slog.LevelInfo
	if !success {
		entry.Status = models.AuditStatusRejected
		level = slog.LevelWarn
	}
	al.emit(level, "pin change", entry)
}

func (al *AuditLogger) LogInterestApplied(sessionID, account string, interest, balance decimal.Decimal) {
	entry := &models.AuditLog{
		SessionID: sessionID,
		Account:   account,
		Action:    models.AuditActionInterest,
		Status:    models.AuditStatusSuccess,
		Amount:    interest.StringFixed(2),
	}
	entry.SetMetadata("balance", balance.StringFixed(2))
	al.emit(slog.LevelInfo, "interest applied", entry)
}

func (al *AuditLogger) LogDailyReset(sessionID, account string) {
	al.emit(slog.LevelInfo, "daily limits reset", &models.AuditLog{
		SessionID: sessionID,
		Account:   account,
		Action:    models.AuditActionDailyReset,
		Status:    models.AuditStatusSuccess,
	})
}

func (al *AuditLogger) LogCardStatusChange(sessionID, account string, oldStatus, newStatus models.CardStatus) {
	entry := &models.AuditLog{
		SessionID: sessionID,
		Account:   account,
		Action:    models.AuditActionCardStatus,
		Status:    models.AuditStatusSuccess,
	}
	entry.SetMetadata("old_status", string(oldStatus))
	entry.SetMetadata("new_status", string(newStatus))
	al.emit(slog.LevelWarn, "card status change", entry)
}

// LogCircuitBreakerStateChange is only written to slog; the store it guards
// may be the thing that is failing.
func (al *AuditLogger) LogCircuitBreakerStateChange(service string, oldState, newState CircuitBreakerState) {
	al.logger.Warn("circuit breaker state change",
		slog.String("event_type", "circuit_breaker_state_change"),
		slog.String("service", service),
		slog.String("old_state", oldState.String()),
		slog.String("new_state", newState.String()),
		slog.Time("timestamp", al.now()),
	)
}

func (al *AuditLogger) emit(level slog.Level, msg string, entry *models.AuditLog) {
	entry.CreatedAt = al.now()

	attrs := []slog.Attr{
		slog.String("event_type", entry.Action),
		slog.String("session_id", entry.SessionID),
		slog.String("account", entry.Account),
		slog.String("status", entry.Status),
	}
	if entry.Amount != "" {
		attrs = append(attrs, slog.String("amount", entry.Amount))
	}
	for _, key := range slices.Sorted(maps.Keys(entry.Metadata)) {
		attrs = append(attrs, slog.Any(key, entry.Metadata[key]))
	}
	attrs = append(attrs, slog.Time("timestamp", entry.CreatedAt))

	al.logger.LogAttrs(context.Background(), level, msg, attrs...)
	al.persist(entry)
}

func (al *AuditLogger) persist(entry *models.AuditLog) {
	if al.repo == nil {
		return
	}
	if al.breaker != nil && al.breaker.IsOpen() {
		return
	}

	if err := al.repo.Create(entry); err != nil {
		al.logger.Warn("failed to persist audit event",
			slog.String("event_type", entry.Action),
			slog.String("session_id", entry.SessionID),
			slog.String("error", err.Error()),
		)
		if al.breaker != nil {
			al.breaker.RecordFailure()
		}
		return
	}

	if al.breaker != nil {
		al.breaker.RecordSuccess()
	}
}

func auditActionFor(txType models.TransactionType) string {
	switch txType {
	case models.TransactionTypeDeposit, models.TransactionTypeTransferIn:
		return models.AuditActionDeposit
	case models.TransactionTypeWithdrawal:
		return models.AuditActionWithdrawal
	case models.TransactionTypeTransferOut, models.TransactionTypeTransfer:
		return models.AuditActionTransfer
	default:
		return fmt.Sprintf("transaction_%s", txType)
	}
}
