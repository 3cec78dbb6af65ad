package database

import (
	"testing"
	"time"

	"atm-simulator/internal/config"
	"atm-simulator/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sqliteConfig() *config.DatabaseConfig {
	return &config.DatabaseConfig{
		Driver:          DriverSQLite,
		Path:            ":memory:",
		MaxConnections:  1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Minute,
	}
}

func TestNew_UnsupportedDriver(t *testing.T) {
	cfg := sqliteConfig()
	cfg.Driver = "oracle"

	db, err := New(cfg)

	assert.Nil(t, db)
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestInitialize_SQLite(t *testing.T) {
	db, err := Initialize(sqliteConfig(), quietLogger())
	require.NoError(t, err)
	defer db.Close()

	assert.NoError(t, db.HealthCheck())
	assert.True(t, db.Migrator().HasTable(&models.AuditLog{}))

	log := &models.AuditLog{
		SessionID: "session-1",
		Account:   "XXXXX7890",
		Action:    models.AuditActionDeposit,
		Status:    models.AuditStatusSuccess,
		Amount:    "100.00",
	}
	require.NoError(t, db.Create(log).Error)

	var count int64
	require.NoError(t, db.Model(&models.AuditLog{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSetupTestDB(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	assert.True(t, db.Migrator().HasTable("audit_logs"))
	assert.Equal(t, DriverSQLite, db.config.Driver)
}
