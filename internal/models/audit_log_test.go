package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAuditLog_SetMetadata(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    interface{}
		expected JSONBMap
	}{
		{
			name:  "set string value",
			key:   "reason",
			value: "lockout",
			expected: JSONBMap{
				"reason": "lockout",
			},
		},
		{
			name:  "set numeric value",
			key:   "attempts",
			value: 3,
			expected: JSONBMap{
				"attempts": 3,
			},
		},
		{
			name:  "set boolean value",
			key:   "success",
			value: true,
			expected: JSONBMap{
				"success": true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := &AuditLog{}
			log.SetMetadata(tt.key, tt.value)
			assert.NotNil(t, log.Metadata)
			assert.Equal(t, tt.expected, log.Metadata)
		})
	}
}

func TestAuditLog_GetMetadata(t *testing.T) {
	m := JSONBMap{
		"reason":   "lockout",
		"attempts": float64(3),
		"success":  true,
	}
	log := &AuditLog{
		Metadata: m,
	}

	tests := []struct {
		name         string
		key          string
		defaultValue interface{}
		expected     interface{}
	}{
		{
			name:         "get existing string value",
			key:          "reason",
			defaultValue: "",
			expected:     "lockout",
		},
		{
			name:         "get existing numeric value",
			key:          "attempts",
			defaultValue: 0,
			expected:     float64(3),
		},
		{
			name:         "get existing boolean value",
			key:          "success",
			defaultValue: false,
			expected:     true,
		},
		{
			name:         "get non-existing value returns default",
			key:          "nonexistent",
			defaultValue: "default",
			expected:     "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := log.GetMetadata(tt.key, tt.defaultValue)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestAuditLog_String(t *testing.T) {
	log := &AuditLog{
		SessionID: "session-123",
		Account:   "XXXXX7890",
		Action:    AuditActionWithdrawal,
		Status:    AuditStatusSuccess,
		Amount:    "3000.00",
	}

	str := log.String()
	assert.Contains(t, str, "withdrawal")
	assert.Contains(t, str, "session-123")
	assert.Contains(t, str, "XXXXX7890")
	assert.Contains(t, str, "3000.00")
}

func TestAuditLog_BeforeCreate(t *testing.T) {
	log := &AuditLog{Action: AuditActionDeposit}

	assert.NoError(t, log.BeforeCreate(nil))
	assert.NotEqual(t, uuid.Nil, log.ID)
	assert.False(t, log.CreatedAt.IsZero())
}

func TestJSONBMap_ValueAndScan(t *testing.T) {
	m := JSONBMap{"attempts": float64(2)}

	value, err := m.Value()
	assert.NoError(t, err)

	var scanned JSONBMap
	assert.NoError(t, scanned.Scan(value))
	assert.Equal(t, m, scanned)

	empty, err := JSONBMap{}.Value()
	assert.NoError(t, err)
	assert.Nil(t, empty)

	assert.Error(t, scanned.Scan(42))
}
