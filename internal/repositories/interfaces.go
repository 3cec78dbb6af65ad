package repositories

import (
	"time"

	"atm-simulator/internal/models"
)

// AuditFilter narrows an audit trail query. Zero-valued fields match
// everything; From and To are inclusive.
type AuditFilter struct {
	SessionID string
	Account   string
	Action    string
	From      time.Time
	To        time.Time
}

// AuditLogRepositoryInterface is the audit store as seen by the services.
type AuditLogRepositoryInterface interface {
	Create(log *models.AuditLog) error
	// SessionTrail lists one session's events oldest first.
	SessionTrail(sessionID string) ([]*models.AuditLog, error)
	// Find pages through matching events newest first and reports the total.
	Find(filter AuditFilter, offset, limit int) ([]*models.AuditLog, int64, error)
	Count(filter AuditFilter) (int64, error)
	DeleteBefore(cutoff time.Time) (int64, error)
}
