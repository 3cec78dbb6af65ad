package handlers

import (
	"net/http"
	"time"

	"atm-simulator/internal/errors"
	"atm-simulator/internal/services"

	"github.com/labstack/echo/v4"
)

// HealthChecker reports whether a backing store is reachable
type HealthChecker interface {
	HealthCheck() error
}

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	db       HealthChecker
	sessions *SessionHandler
}

// NewHealthCheckHandler creates a new health check handler. db is nil when
// the audit store is disabled.
func NewHealthCheckHandler(db HealthChecker, sessions *SessionHandler) *HealthCheckHandler {
	return &HealthCheckHandler{db: db, sessions: sessions}
}

// HealthCheck adds the health check endpoint
// @Summary Health check
// @Description Check API and audit store connectivity status
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string,time=string,session=string,auditStore=string} "Service is healthy"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Service unavailable (audit store unreachable)"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	store := "disabled"
	if h.db != nil {
		if err := h.db.HealthCheck(); err != nil {
			return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Audit store connection failed"))
		}
		store = "up"
	}

	session := "active"
	if h.sessions != nil {
		_ = h.sessions.withSession(func(s services.ATMServiceInterface) error {
			if s.IsSessionEnded() {
				session = "ended"
			}
			return nil
		})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status":     "healthy",
		"time":       time.Now().UTC().Format(time.RFC3339),
		"session":    session,
		"auditStore": store,
	})
}
