package repositories

import (
	"errors"
	"fmt"
	"time"

	"atm-simulator/internal/models"

	"gorm.io/gorm"
)

const (
	defaultPageSize = 10
	maxPageSize     = 1000
)

var ErrNilAuditLog = errors.New("audit log cannot be nil")

// AuditLogRepository stores audit events with gorm. It works the same on
// the sqlite and postgres audit stores.
type AuditLogRepository struct {
	db *gorm.DB
}

func NewAuditLogRepository(db *gorm.DB) AuditLogRepositoryInterface {
	return &AuditLogRepository{db: db}
}

func (r *AuditLogRepository) Create(log *models.AuditLog) error {
	if log == nil {
		return ErrNilAuditLog
	}
	if err := r.db.Create(log).Error; err != nil {
		return fmt.Errorf("failed to store audit event %s: %w", log.Action, err)
	}
	return nil
}

func (r *AuditLogRepository) SessionTrail(sessionID string) ([]*models.AuditLog, error) {
	var logs []*models.AuditLog
	if err := r.filtered(AuditFilter{SessionID: sessionID}).Order("created_at ASC").Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("failed to load session trail: %w", err)
	}
	return logs, nil
}

func (r *AuditLogRepository) Find(filter AuditFilter, offset, limit int) ([]*models.AuditLog, int64, error) {
	if limit <= 0 || limit > maxPageSize {
		limit = defaultPageSize
	}
	offset = max(offset, 0)

	total, err := r.Count(filter)
	if err != nil {
		return nil, 0, err
	}

	var logs []*models.AuditLog
	if err := r.filtered(filter).Order("created_at DESC").Offset(offset).Limit(limit).Find(&logs).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to query audit events: %w", err)
	}
	return logs, total, nil
}

func (r *AuditLogRepository) Count(filter AuditFilter) (int64, error) {
	var total int64
	if err := r.filtered(filter).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count audit events: %w", err)
	}
	return total, nil
}

func (r *AuditLogRepository) DeleteBefore(cutoff time.Time) (int64, error) {
	result := r.db.Where("created_at < ?", cutoff).Delete(&models.AuditLog{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete audit events: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *AuditLogRepository) filtered(f AuditFilter) *gorm.DB {
	q := r.db.Model(&models.AuditLog{})
	if f.SessionID != "" {
		q = q.Where("session_id = ?", f.SessionID)
	}
	if f.Account != "" {
		q = q.Where("account = ?", f.Account)
	}
	if f.Action != "" {
		q = q.Where("action = ?", f.Action)
	}
	if !f.From.IsZero() {
		q = q.Where("created_at >= ?", f.From)
	}
	if !f.To.IsZero() {
		q = q.Where("created_at <= ?", f.To)
	}
	return q
}
