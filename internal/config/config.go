package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Security SecurityConfig
	Logging  LoggingConfig
	Policy   PolicyConfig
	Account  AccountConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	Environment  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	// Driver is "sqlite" or "postgres"
	Driver          string
	Path            string
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	MigrationsPath  string
	// AutoMigrate applies the SQL migrations when the postgres store opens
	AutoMigrate bool
}

type SecurityConfig struct {
	RateLimitPerSecond int
	RateLimitBurst     int

	// AdminKey guards the operator routes of the kiosk; empty disables them
	AdminKey string
}

type LoggingConfig struct {
	Level  string
	Format string
}

// PolicyConfig holds the business rules an ATM session enforces
type PolicyConfig struct {
	MaxFailedAttempts    int
	MaxDailyTransactions int
	DailyWithdrawalLimit decimal.Decimal
	MinimumBalance       decimal.Decimal
	SessionTimeout       time.Duration
	TransferFeeRate      decimal.Decimal
	TransferFeeThreshold decimal.Decimal
	SavingsInterestRate  decimal.Decimal
	Currency             string
	BankName             string
	BankTagline          string
	MiniStatementSize    int

	// HistoryLimit caps retained history records; 0 means unbounded
	HistoryLimit int

	// EnforceMinimumBalance makes WithdrawMoney reject withdrawals that
	// would leave less than MinimumBalance
	EnforceMinimumBalance bool

	// CapTransfers applies the daily count and withdrawal caps to transfers
	CapTransfers bool
}

// AccountConfig seeds the demo account used by the binaries
type AccountConfig struct {
	Number         string
	HolderName     string
	Pin            string
	InitialBalance decimal.Decimal
	Type           string
}

// DefaultPolicy returns the standard ATM policy
func DefaultPolicy() PolicyConfig {
	return PolicyConfig{
		MaxFailedAttempts:    3,
		MaxDailyTransactions: 20,
		DailyWithdrawalLimit: decimal.NewFromInt(50000),
		MinimumBalance:       decimal.NewFromInt(500),
		SessionTimeout:       5 * time.Minute,
		TransferFeeRate:      decimal.RequireFromString("0.01"),
		TransferFeeThreshold: decimal.NewFromInt(10000),
		SavingsInterestRate:  decimal.RequireFromString("0.04"),
		Currency:             "INR",
		BankName:             "STATE BANK ATM SYSTEM",
		BankTagline:          "Serving India Since 1806",
		MiniStatementSize:    5,
	}
}

// Load builds the configuration from the environment, reading a .env
// file first when one exists
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("Failed to read .env file", "error", err)
	}

	defaults := DefaultPolicy()

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			Environment:  getEnv("APP_ENV", "development"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
		},
		Database: DatabaseConfig{
			Driver:          getEnv("DB_DRIVER", "sqlite"),
			Path:            getEnv("DB_PATH", "file::memory:?cache=shared"),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "atm_user"),
			Password:        getEnv("DB_PASSWORD", "atm_password"),
			Name:            getEnv("DB_NAME", "atm_audit"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 10),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 2),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
			MigrationsPath:  getEnv("DB_MIGRATIONS_PATH", "db/migrations"),
			AutoMigrate:     getBoolEnv("AUTO_MIGRATE", false),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 5),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 10),
			AdminKey:           getEnv("ATM_ADMIN_KEY", ""),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
		Policy: PolicyConfig{
			MaxFailedAttempts:     getIntEnv("ATM_MAX_FAILED_ATTEMPTS", defaults.MaxFailedAttempts),
			MaxDailyTransactions:  getIntEnv("ATM_MAX_DAILY_TRANSACTIONS", defaults.MaxDailyTransactions),
			DailyWithdrawalLimit:  getDecimalEnv("ATM_DAILY_WITHDRAWAL_LIMIT", defaults.DailyWithdrawalLimit),
			MinimumBalance:        getDecimalEnv("ATM_MINIMUM_BALANCE", defaults.MinimumBalance),
			SessionTimeout:        getDurationEnv("ATM_SESSION_TIMEOUT", defaults.SessionTimeout),
			TransferFeeRate:       getDecimalEnv("ATM_TRANSFER_FEE_RATE", defaults.TransferFeeRate),
			TransferFeeThreshold:  getDecimalEnv("ATM_TRANSFER_FEE_THRESHOLD", defaults.TransferFeeThreshold),
			SavingsInterestRate:   getDecimalEnv("ATM_SAVINGS_INTEREST_RATE", defaults.SavingsInterestRate),
			Currency:              getEnv("ATM_CURRENCY", defaults.Currency),
			BankName:              getEnv("ATM_BANK_NAME", defaults.BankName),
			BankTagline:           getEnv("ATM_BANK_TAGLINE", defaults.BankTagline),
			MiniStatementSize:     getIntEnv("ATM_MINI_STATEMENT_SIZE", defaults.MiniStatementSize),
			HistoryLimit:          getIntEnv("ATM_HISTORY_LIMIT", defaults.HistoryLimit),
			EnforceMinimumBalance: getBoolEnv("ATM_ENFORCE_MINIMUM_BALANCE", defaults.EnforceMinimumBalance),
			CapTransfers:          getBoolEnv("ATM_CAP_TRANSFERS", defaults.CapTransfers),
		},
		Account: AccountConfig{
			Number:         getEnv("ATM_ACCOUNT_NUMBER", "1234567890"),
			HolderName:     getEnv("ATM_ACCOUNT_HOLDER", "Rajesh Kumar"),
			Pin:            getEnv("ATM_ACCOUNT_PIN", "1234"),
			InitialBalance: getDecimalEnv("ATM_ACCOUNT_BALANCE", decimal.NewFromInt(50000)),
			Type:           strings.ToUpper(getEnv("ATM_ACCOUNT_TYPE", "SAVINGS")),
		},
	}
}

// Validate reports policy values that would make the ATM unusable
func (p PolicyConfig) Validate() error {
	switch {
	case p.MaxFailedAttempts <= 0:
		return fmt.Errorf("max failed attempts must be positive, got %d", p.MaxFailedAttempts)
	case p.MaxDailyTransactions <= 0:
		return fmt.Errorf("max daily transactions must be positive, got %d", p.MaxDailyTransactions)
	case !p.DailyWithdrawalLimit.IsPositive():
		return fmt.Errorf("daily withdrawal limit must be positive, got %s", p.DailyWithdrawalLimit)
	case p.MinimumBalance.IsNegative():
		return fmt.Errorf("minimum balance cannot be negative, got %s", p.MinimumBalance)
	case p.SessionTimeout <= 0:
		return fmt.Errorf("session timeout must be positive, got %s", p.SessionTimeout)
	case p.TransferFeeRate.IsNegative() || p.SavingsInterestRate.IsNegative():
		return fmt.Errorf("rates cannot be negative")
	case p.HistoryLimit < 0:
		return fmt.Errorf("history limit cannot be negative, got %d", p.HistoryLimit)
	}
	return nil
}

func (c *DatabaseConfig) DSN() string {
	if c.Driver == "sqlite" {
		return c.Path
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// MigrationURL returns the golang-migrate database URL for postgres
func (c *DatabaseConfig) MigrationURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode)
}

// SlogLevel maps the configured level name to a slog.Level
func (c LoggingConfig) SlogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getDecimalEnv(key string, defaultValue decimal.Decimal) decimal.Decimal {
	if value := os.Getenv(key); value != "" {
		if d, err := decimal.NewFromString(value); err == nil {
			return d
		}
	}
	return defaultValue
}
