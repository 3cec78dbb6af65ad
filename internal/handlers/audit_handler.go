package handlers

import (
	"net/http"

	"atm-simulator/internal/dto"
	"atm-simulator/internal/errors"
	"atm-simulator/internal/services"

	"github.com/labstack/echo/v4"
)

// AuditHandler serves the persisted audit trail of the kiosk session
type AuditHandler struct {
	sessions *SessionHandler
	audit    services.AuditServiceInterface
}

func NewAuditHandler(sessions *SessionHandler, audit services.AuditServiceInterface) *AuditHandler {
	return &AuditHandler{
		sessions: sessions,
		audit:    audit,
	}
}

// SessionTrail returns every audit event of the current session
// @Summary Session audit trail
// @Tags Session
// @Produce json
// @Success 200 {object} SuccessResponse{data=dto.AuditTrailResponse}
// @Failure 401 {object} errors.ErrorResponse "AUTH_005 - Not logged in"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Audit store disabled"
// @Router /session/audit [get]
func (h *AuditHandler) SessionTrail(c echo.Context) error {
	if h.audit == nil {
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Audit store is disabled"))
	}

	sessionID := h.sessions.SessionID()
	logs, err := h.audit.SessionTrail(sessionID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.AuditTrailResponse{
			SessionID: sessionID,
			Entries:   dto.ToAuditEntries(logs),
		},
	})
}
