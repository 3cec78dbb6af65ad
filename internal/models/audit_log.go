package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AuditActionAuthenticate   = "authenticate"
	AuditActionFailedLogin    = "failed_login"
	AuditActionAccountLocked  = "account_locked"
	AuditActionAccountUnlock  = "account_unlock"
	AuditActionDeposit        = "deposit"
	AuditActionWithdrawal     = "withdrawal"
	AuditActionTransfer       = "transfer"
	AuditActionPinChanged     = "pin_changed"
	AuditActionInterest       = "interest_applied"
	AuditActionDailyReset     = "daily_reset"
	AuditActionCardStatus     = "card_status_changed"
	AuditActionSessionStarted = "session_started"
	AuditActionSessionEnded   = "session_ended"
	AuditActionSessionTimeout = "session_timeout"

	AuditStatusSuccess  = "success"
	AuditStatusRejected = "rejected"
)

// AuditLog is one persisted audit event of an ATM session.
// Account always holds the masked account number.
type AuditLog struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	SessionID string    `gorm:"type:varchar(64);not null;index" json:"session_id"`
	Account   string    `gorm:"type:varchar(32);not null;index" json:"account"`
	Action    string    `gorm:"type:varchar(100);not null;index" json:"action"`
	Status    string    `gorm:"type:varchar(20);not null" json:"status"`
	Amount    string    `gorm:"type:varchar(32)" json:"amount,omitempty"`
	Metadata  JSONBMap  `gorm:"type:text" json:"metadata,omitempty"`
	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
}

func (al *AuditLog) SetMetadata(key string, value interface{}) {
	if al.Metadata == nil {
		al.Metadata = make(JSONBMap)
	}
	al.Metadata[key] = value
}

func (al *AuditLog) GetMetadata(key string, defaultValue interface{}) interface{} {
	if al.Metadata == nil {
		return defaultValue
	}

	if value, exists := al.Metadata[key]; exists {
		return value
	}

	return defaultValue
}

func (al *AuditLog) String() string {
	amount := "-"
	if al.Amount != "" {
		amount = al.Amount
	}

	return fmt.Sprintf("AuditLog[Session: %s, Account: %s, Action: %s, Status: %s, Amount: %s, Time: %s]",
		al.SessionID, al.Account, al.Action, al.Status, amount, al.CreatedAt.Format(time.RFC3339))
}

func (al *AuditLog) TableName() string {
	return "audit_logs"
}

func (al *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if al.ID == uuid.Nil {
		al.ID = uuid.New()
	}

	if al.CreatedAt.IsZero() {
		al.CreatedAt = time.Now()
	}
	return nil
}

// JSONBMap is a free-form metadata map stored as JSON text
type JSONBMap map[string]interface{}

// Value implements driver.Valuer interface
func (m JSONBMap) Value() (driver.Value, error) {
	if len(m) == 0 {
		return nil, nil
	}
	bytes, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	// Return string for SQLite compatibility
	return string(bytes), nil
}

func (m *JSONBMap) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into JSONBMap", value)
	}

	if len(bytes) == 0 {
		*m = nil
		return nil
	}

	return json.Unmarshal(bytes, m)
}
