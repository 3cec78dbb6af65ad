package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"atm-simulator/internal/config"
	"atm-simulator/internal/database"
	"atm-simulator/internal/handlers"
	"atm-simulator/internal/models"
	"atm-simulator/internal/repositories"
	"atm-simulator/internal/services"

	"github.com/prometheus/client_golang/prometheus"
)

const auditStoreService = "audit_store"

// NewLogger builds the process logger from the logging configuration.
// Format "json" selects the JSON handler, anything else the text handler.
func NewLogger(cfg config.LoggingConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if strings.EqualFold(cfg.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

type appOptions struct {
	// persistAudit opens the audit store and writes events through it
	persistAudit bool

	// registerer receives the Prometheus collectors; nil disables them
	registerer prometheus.Registerer

	now func() time.Time
}

// app holds the collaborators shared by every subcommand
type app struct {
	cfg        *config.Config
	logger     *slog.Logger
	now        func() time.Time
	stats      *services.Statistics
	metrics    services.MetricsRecorderInterface
	statements *services.StatementService
	audit      *services.AuditLogger

	// db and auditStore are nil when the audit store is disabled
	db         *database.DB
	auditStore *services.AuditService
}

func newApp(cfg *config.Config, logger *slog.Logger, opts appOptions) (*app, error) {
	if err := cfg.Policy.Validate(); err != nil {
		return nil, fmt.Errorf("invalid ATM policy: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	now := opts.now
	if now == nil {
		now = time.Now
	}

	a := &app{
		cfg:        cfg,
		logger:     logger,
		now:        now,
		stats:      services.NewStatistics(),
		statements: services.NewStatementService(cfg.Policy, now),
	}

	recorders := []services.MetricsRecorderInterface{a.stats}
	if opts.registerer != nil {
		recorders = append(recorders, services.NewPrometheusMetrics(opts.registerer))
	}
	a.metrics = services.NewMetricsFanout(recorders...)

	if !opts.persistAudit {
		a.audit = services.NewAuditLogger(logger, services.WithAuditClock(now))
		return a, nil
	}

	db, err := database.Initialize(&cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open audit store: %w", err)
	}

	repo := repositories.NewAuditLogRepository(db.DB)
	breaker := services.NewCircuitBreaker(
		services.DefaultCircuitBreakerConfig(),
		services.OnStateChange(a.breakerStateChanged),
		services.WithBreakerClock(now),
	)

	a.db = db
	a.audit = services.NewAuditLogger(logger, services.WithAuditStore(repo, breaker), services.WithAuditClock(now))
	a.auditStore = services.NewAuditService(repo)

	return a, nil
}

func (a *app) breakerStateChanged(from, to services.CircuitBreakerState) {
	a.audit.LogCircuitBreakerStateChange(auditStoreService, from, to)
	a.metrics.RecordGauge(services.MetricCircuitBreakerState, float64(to), map[string]string{"service": auditStoreService})
}

// newSession opens an ATM session on the configured account
func (a *app) newSession(opts ...services.ATMOption) (*services.ATMService, error) {
	account, err := a.openAccount()
	if err != nil {
		return nil, err
	}
	return a.sessionOn(account, opts...)
}

// openAccount builds the configured account with an empty history
func (a *app) openAccount() (*models.Account, error) {
	acct := a.cfg.Account

	account, err := models.NewAccount(models.AccountParams{
		AccountNumber:  acct.Number,
		HolderName:     acct.HolderName,
		InitialBalance: acct.InitialBalance,
		Pin:            acct.Pin,
		Type:           models.AccountType(acct.Type),
		HistoryLimit:   a.cfg.Policy.HistoryLimit,
		Now:            a.now,
	})
	if err != nil {
		return nil, fmt.Errorf("invalid account configuration: %w", err)
	}
	return account, nil
}

func (a *app) sessionOn(account *models.Account, opts ...services.ATMOption) (*services.ATMService, error) {
	base := []services.ATMOption{
		services.WithPolicy(a.cfg.Policy),
		services.WithAuditLogger(a.audit),
		services.WithMetrics(a.metrics),
		services.WithClock(a.now),
		services.WithStatementService(a.statements),
	}
	return services.NewATMService(account, append(base, opts...)...)
}

// sessionFactory opens each following kiosk session on account, keeping
// the lockout, card status and daily counters of the session it replaces
func (a *app) sessionFactory(account *models.Account) handlers.SessionFactory {
	return func(ended services.ATMServiceInterface) (services.ATMServiceInterface, error) {
		session, err := a.sessionOn(account, services.WithCarriedState(ended))
		if err != nil {
			return nil, err
		}
		a.logger.Info("Opened kiosk session", "session_id", session.SessionID(), "previous_session_id", ended.SessionID())
		return session, nil
	}
}

func (a *app) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}
