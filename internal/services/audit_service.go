package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"atm-simulator/internal/models"
	"atm-simulator/internal/repositories"
)

// AuditService answers questions about the persisted audit trail
type AuditService struct {
	repo repositories.AuditLogRepositoryInterface
	now  func() time.Time
}

func NewAuditService(repo repositories.AuditLogRepositoryInterface) *AuditService {
	return &AuditService{
		repo: repo,
		now:  time.Now,
	}
}

var (
	ErrInvalidSessionID = errors.New("session ID is required")
	ErrInvalidAccount   = errors.New("account is required")
	ErrUnmaskedAccount  = errors.New("audit queries take the masked account number")
	ErrAuditDateRange   = errors.New("invalid date range: start date must be before end date")
	ErrInvalidRetention = errors.New("retention must be positive")
	ErrUnknownActivity  = errors.New("unknown audit action")
)

// ValidateActivityType checks action against the audit actions a session emits
func ValidateActivityType(action string) error {
	validActions := map[string]bool{
		models.AuditActionAuthenticate:   true,
		models.AuditActionFailedLogin:    true,
		models.AuditActionAccountLocked:  true,
		models.AuditActionAccountUnlock:  true,
		models.AuditActionDeposit:        true,
		models.AuditActionWithdrawal:     true,
		models.AuditActionTransfer:       true,
		models.AuditActionPinChanged:     true,
		models.AuditActionInterest:       true,
		models.AuditActionDailyReset:     true,
		models.AuditActionCardStatus:     true,
		models.AuditActionSessionStarted: true,
		models.AuditActionSessionEnded:   true,
		models.AuditActionSessionTimeout: true,
	}

	if !validActions[action] {
		return fmt.Errorf("invalid activity type: %s", action)
	}
	return nil
}

// SessionTrail returns every event of a session in the order it happened
func (s *AuditService) SessionTrail(sessionID string) ([]*models.AuditLog, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, ErrInvalidSessionID
	}
	return s.repo.SessionTrail(sessionID)
}

// ActivityQuery selects audit events for the operator view. Empty fields
// match everything. Account takes the masked number.
type ActivityQuery struct {
	Account string
	Action  string
	From    time.Time
	To      time.Time
}

// Activity pages through the events matching q, newest first.
func (s *AuditService) Activity(q ActivityQuery, offset, limit int) ([]*models.AuditLog, int64, error) {
	if q.Account != "" {
		if err := validateMaskedAccount(q.Account); err != nil {
			return nil, 0, err
		}
	}
	if q.Action != "" {
		if err := ValidateActivityType(q.Action); err != nil {
			return nil, 0, fmt.Errorf("%w: %s", ErrUnknownActivity, q.Action)
		}
	}
	if !q.From.IsZero() && !q.To.IsZero() && q.From.After(q.To) {
		return nil, 0, ErrAuditDateRange
	}

	return s.repo.Find(repositories.AuditFilter{
		Account: q.Account,
		Action:  q.Action,
		From:    q.From,
		To:      q.To,
	}, offset, limit)
}

// RecentFailedLogins counts failed PIN entries for account within window
func (s *AuditService) RecentFailedLogins(account string, window time.Duration) (int64, error) {
	if err := validateMaskedAccount(account); err != nil {
		return 0, err
	}
	return s.repo.Count(repositories.AuditFilter{
		Account: account,
		Action:  models.AuditActionFailedLogin,
		From:    s.now().Add(-window),
	})
}

// Purge deletes events older than the retention period
func (s *AuditService) Purge(olderThan time.Duration) (int64, error) {
	if olderThan <= 0 {
		return 0, ErrInvalidRetention
	}

	deleted, err := s.repo.DeleteBefore(s.now().Add(-olderThan))
	if err != nil {
		return 0, fmt.Errorf("failed to purge audit logs: %w", err)
	}
	return deleted, nil
}

func validateMaskedAccount(account string) error {
	if strings.TrimSpace(account) == "" {
		return ErrInvalidAccount
	}
	if !strings.HasPrefix(account, models.MaskPrefix) {
		return ErrUnmaskedAccount
	}
	return nil
}
