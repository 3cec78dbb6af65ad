package database

import (
	"io"
	"log/slog"
	"testing"

	"atm-simulator/internal/config"
	"atm-simulator/internal/models"

	"gorm.io/gorm"
)

// SetupTestDB opens a private in-memory sqlite audit store for one test and
// closes it when the test finishes. A single connection keeps every query
// on the same in-memory database.
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := Initialize(&config.DatabaseConfig{
		Driver:         DriverSQLite,
		Path:           ":memory:",
		MaxConnections: 1,
		MaxIdleConns:   1,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("opening test audit store: %v", err)
	}

	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("closing test audit store: %v", err)
		}
	})
	return db
}

// CleanupTestDB empties the audit trail between tests sharing one store.
func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.AuditLog{}).Error; err != nil {
		t.Logf("clearing audit_logs: %v", err)
	}
}
