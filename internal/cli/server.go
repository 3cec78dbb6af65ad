package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"atm-simulator/internal/config"
	"atm-simulator/internal/handlers"
	"atm-simulator/internal/middleware"
	"atm-simulator/internal/services"

	"github.com/google/subcommands"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 10 * time.Second

// server is the kiosk HTTP API around a single ATM session
type server struct {
	echo     *echo.Echo
	limiter  *middleware.RateLimiter
	sessions *handlers.SessionHandler
}

func (a *app) auditService() services.AuditServiceInterface {
	if a.auditStore == nil {
		return nil
	}
	return a.auditStore
}

func (a *app) healthChecker() handlers.HealthChecker {
	if a.db == nil {
		return nil
	}
	return a.db
}

// newServer wires the handlers, middleware and routes for session. next
// replaces the session once it has ended; nil keeps the ended session.
// gatherer backs the /metrics endpoint.
func newServer(a *app, session services.ATMServiceInterface, next handlers.SessionFactory, gatherer prometheus.Gatherer) *server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.ErrorHandler(a.logger)
	e.Server.ReadTimeout = a.cfg.Server.ReadTimeout
	e.Server.WriteTimeout = a.cfg.Server.WriteTimeout

	limiter := middleware.NewRateLimiter(a.cfg.Security)

	e.Use(middleware.RequestID())
	e.Use(middleware.AccessLog(a.logger))
	e.Use(middleware.PanicRecovery(a.logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(limiter.Middleware())

	var opts []handlers.SessionHandlerOption
	if next != nil {
		opts = append(opts, handlers.WithSessionFactory(next))
	}
	sessions := handlers.NewSessionHandler(session, a.statements, opts...)
	audit := handlers.NewAuditHandler(sessions, a.auditService())
	health := handlers.NewHealthCheckHandler(a.healthChecker(), sessions)

	e.GET("/health", health.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	requireSession := middleware.RequireSession(sessions)

	s := e.Group("/session")
	s.GET("", sessions.GetSession)
	s.POST("/authenticate", sessions.Authenticate)
	s.POST("/end", sessions.EndSession)
	s.GET("/balance", sessions.Balance, requireSession)
	s.POST("/deposit", sessions.Deposit, requireSession)
	s.POST("/withdraw", sessions.Withdraw, requireSession)
	s.POST("/transfer", sessions.Transfer, requireSession)
	s.POST("/pin", sessions.ChangePin, requireSession)
	s.GET("/statement", sessions.MiniStatement, requireSession)
	s.GET("/statement/export", sessions.ExportStatement, requireSession)
	s.GET("/receipt", sessions.Receipt, requireSession)
	s.GET("/audit", audit.SessionTrail, requireSession)

	if key := a.cfg.Security.AdminKey; key != "" {
		admin := handlers.NewAdminHandler(sessions, a.auditService())

		g := e.Group("/admin", middleware.RequireAdminKey(key))
		g.POST("/reset-daily", admin.ResetDailyLimits)
		g.POST("/unlock", admin.Unlock)
		g.POST("/reset-attempts", admin.ResetFailedAttempts)
		g.POST("/freeze", admin.SetFrozen)
		g.POST("/card", admin.SetCardStatus)
		g.POST("/interest", admin.ApplyInterest)
		g.GET("/audit", admin.ListActivity)
		g.GET("/failed-logins", admin.FailedLogins)
		g.DELETE("/audit", admin.PurgeActivity)
	} else {
		a.logger.Warn("ATM_ADMIN_KEY is not set, operator routes are disabled")
	}

	return &server{echo: e, limiter: limiter, sessions: sessions}
}

// Run serves on addr until ctx is done, then shuts down gracefully
func (s *server) Run(ctx context.Context, addr string) error {
	go s.limiter.Run(ctx)

	errCh := make(chan error, 1)
	go func() {
		if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.echo.Shutdown(shutdownCtx)
}

type serveCmd struct {
	noAudit bool
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "serve the kiosk session over HTTP" }
func (*serveCmd) Usage() string {
	return `atm serve [-no-audit]

  Opens one ATM session at a time on the configured account and exposes it
  as a JSON API under /session. Authenticating after a session has ended
  opens the next one. Operator routes are mounted under /admin when
  ATM_ADMIN_KEY is set. Prometheus metrics are served on /metrics.
`
}

func (p *serveCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.noAudit, "no-audit", false, "Keep the audit trail in the log only, without opening the audit store.")
}

func (p *serveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg := config.Load()
	logger := NewLogger(cfg.Logging, os.Stderr)

	if cfg.IsProduction() && cfg.Security.AdminKey == "" {
		fmt.Fprintln(os.Stderr, "ATM_ADMIN_KEY must be set when APP_ENV is production")
		return subcommands.ExitFailure
	}

	a, err := newApp(cfg, logger, appOptions{
		persistAudit: !p.noAudit,
		registerer:   prometheus.DefaultRegisterer,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	account, err := a.openAccount()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	session, err := a.sessionOn(account)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)
	logger.Info("Starting ATM kiosk server", "addr", addr, "session_id", session.SessionID(), "environment", cfg.Server.Environment)

	srv := newServer(a, session, a.sessionFactory(account), prometheus.DefaultGatherer)
	defer srv.sessions.Close()

	if err := srv.Run(ctx, addr); err != nil {
		logger.Error("Server stopped", "error", err)
		return subcommands.ExitFailure
	}

	logger.Info("Server stopped")
	return subcommands.ExitSuccess
}
