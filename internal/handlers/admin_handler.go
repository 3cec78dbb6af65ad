package handlers

import (
	stderrors "errors"
	"net/http"
	"time"

	"atm-simulator/internal/dto"
	"atm-simulator/internal/errors"
	"atm-simulator/internal/models"
	"atm-simulator/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// AdminHandler handles the operator endpoints of the kiosk: daily rollover,
// lockout reset, card and freeze flags, interest, and audit queries
type AdminHandler struct {
	sessions *SessionHandler
	audit    services.AuditServiceInterface
}

// NewAdminHandler creates a new admin handler. audit may be nil when the
// audit store is disabled.
func NewAdminHandler(sessions *SessionHandler, audit services.AuditServiceInterface) *AdminHandler {
	return &AdminHandler{
		sessions: sessions,
		audit:    audit,
	}
}

// ResetDailyLimits runs the daily rollover
// @Summary Reset daily limits (admin)
// @Tags Admin
// @Security AdminKey
// @Produce json
// @Success 200 {object} SuccessResponse{data=dto.SessionResponse}
// @Router /admin/reset-daily [post]
func (h *AdminHandler) ResetDailyLimits(c echo.Context) error {
	return h.sessions.withSession(func(s services.ATMServiceInterface) error {
		s.ResetDailyLimits()
		return c.JSON(http.StatusOK, SuccessResponse{
			Data:    sessionResponse(s),
			Message: "Daily limits reset",
		})
	})
}

// Unlock clears the lockout and the failed attempt counter
// @Summary Unlock account (admin)
// @Tags Admin
// @Security AdminKey
// @Produce json
// @Success 200 {object} SuccessResponse{data=dto.SessionResponse}
// @Router /admin/unlock [post]
func (h *AdminHandler) Unlock(c echo.Context) error {
	return h.sessions.withSession(func(s services.ATMServiceInterface) error {
		s.ResetLockout()
		return c.JSON(http.StatusOK, SuccessResponse{
			Data:    sessionResponse(s),
			Message: "Account unlocked",
		})
	})
}

// ResetFailedAttempts clears the failed attempt counter but keeps a frozen
// account frozen
// @Summary Reset failed PIN attempts (admin)
// @Tags Admin
// @Security AdminKey
// @Produce json
// @Success 200 {object} SuccessResponse{data=dto.SessionResponse}
// @Router /admin/reset-attempts [post]
func (h *AdminHandler) ResetFailedAttempts(c echo.Context) error {
	return h.sessions.withSession(func(s services.ATMServiceInterface) error {
		s.ResetFailedLoginAttempts()
		return c.JSON(http.StatusOK, SuccessResponse{Data: sessionResponse(s)})
	})
}

// SetFrozen freezes or unfreezes the account
// @Summary Freeze or unfreeze account (admin)
// @Tags Admin
// @Security AdminKey
// @Accept json
// @Produce json
// @Param request body dto.FreezeRequest true "Frozen flag"
// @Success 200 {object} SuccessResponse{data=dto.SessionResponse}
// @Router /admin/freeze [post]
func (h *AdminHandler) SetFrozen(c echo.Context) error {
	var req dto.FreezeRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	return h.sessions.withSession(func(s services.ATMServiceInterface) error {
		s.SetAccountFrozen(req.Frozen)
		return c.JSON(http.StatusOK, SuccessResponse{Data: sessionResponse(s)})
	})
}

// SetCardStatus blocks, expires or reactivates the card
// @Summary Set card status (admin)
// @Tags Admin
// @Security AdminKey
// @Accept json
// @Produce json
// @Param request body dto.CardStatusRequest true "Card status"
// @Success 200 {object} SuccessResponse{data=dto.SessionResponse}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid status"
// @Router /admin/card [post]
func (h *AdminHandler) SetCardStatus(c echo.Context) error {
	var req dto.CardStatusRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	status, err := models.ParseCardStatus(req.Status)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}

	return h.sessions.withSession(func(s services.ATMServiceInterface) error {
		s.SetCardStatus(status)
		return c.JSON(http.StatusOK, SuccessResponse{Data: sessionResponse(s)})
	})
}

// ApplyInterest credits savings interest on the current balance
// @Summary Apply interest (admin)
// @Tags Admin
// @Security AdminKey
// @Produce json
// @Success 200 {object} SuccessResponse{data=dto.BalanceResponse}
// @Failure 422 {object} errors.ErrorResponse "ACCOUNT_004 - No interest due"
// @Router /admin/interest [post]
func (h *AdminHandler) ApplyInterest(c echo.Context) error {
	return h.sessions.withSession(func(s services.ATMServiceInterface) error {
		interest := s.CalculateInterest()
		if !s.ApplyInterest() {
			return SendError(c, errors.AccountOperationNotPermitted, errors.WithDetails("No interest is due on this account"))
		}

		currency := s.Policy().Currency
		return c.JSON(http.StatusOK, SuccessResponse{
			Data: dto.BalanceResponse{
				AccountNumber: s.MaskedAccountNumber(),
				HolderName:    s.HolderName(),
				AccountType:   string(s.AccountType()),
				Balance:       s.CheckBalance().StringFixed(2),
				Formatted:     services.FormatMoney(s.CheckBalance(), currency),
				Currency:      currency,
			},
			Message: "Interest of " + services.FormatMoney(interest, currency) + " applied",
		})
	})
}

// ListActivity lists persisted audit events, optionally narrowed to one
// masked account, one action and a time range
// @Summary List audit activity (admin)
// @Tags Admin
// @Security AdminKey
// @Produce json
// @Param account query string false "Masked account number"
// @Param action query string false "Audit action, e.g. failed_login"
// @Param from query string false "Start (RFC3339)"
// @Param to query string false "End (RFC3339), defaults to now"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 100)" default(20)
// @Success 200 {object} SuccessResponse{data=[]dto.AuditEntry}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_* - Invalid filter or pagination"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Audit store disabled"
// @Router /admin/audit [get]
func (h *AdminHandler) ListActivity(c echo.Context) error {
	if h.audit == nil {
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Audit store is disabled"))
	}

	page := getIntParam(c, "page", 1)
	limit := getIntParam(c, "limit", defaultPageLimit)
	if page < 1 {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("page: must be greater than 0"))
	}
	if limit < 1 || limit > maxPageLimit {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("limit: must be between 1 and 100"))
	}

	q := services.ActivityQuery{
		Account: c.QueryParam("account"),
		Action:  c.QueryParam("action"),
		To:      time.Now(),
	}
	var err error
	if raw := c.QueryParam("from"); raw != "" {
		if q.From, err = time.Parse(time.RFC3339, raw); err != nil {
			return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("from: must be an RFC3339 timestamp"))
		}
	}
	if raw := c.QueryParam("to"); raw != "" {
		if q.To, err = time.Parse(time.RFC3339, raw); err != nil {
			return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("to: must be an RFC3339 timestamp"))
		}
	}

	logs, total, err := h.audit.Activity(q, (page-1)*limit, limit)
	switch {
	case stderrors.Is(err, services.ErrAuditDateRange):
		return SendError(c, errors.ValidationOutOfRange, errors.WithDetails(err.Error()))
	case stderrors.Is(err, services.ErrUnmaskedAccount), stderrors.Is(err, services.ErrUnknownActivity):
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	case err != nil:
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.ToAuditEntries(logs),
		Meta: map[string]interface{}{
			"total":       total,
			"page":        page,
			"limit":       limit,
			"total_pages": (total + int64(limit) - 1) / int64(limit),
		},
	})
}

// FailedLogins counts the persisted wrong PIN entries for the kiosk's
// account within a window
// @Summary Recent failed PIN entries (admin)
// @Tags Admin
// @Security AdminKey
// @Produce json
// @Param window query string false "Go duration" default(15m)
// @Success 200 {object} SuccessResponse
// @Router /admin/failed-logins [get]
func (h *AdminHandler) FailedLogins(c echo.Context) error {
	if h.audit == nil {
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Audit store is disabled"))
	}

	window := 15 * time.Minute
	if raw := c.QueryParam("window"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("window: must be a positive duration such as 15m"))
		}
		window = d
	}

	var account string
	_ = h.sessions.withSession(func(s services.ATMServiceInterface) error {
		account = s.MaskedAccountNumber()
		return nil
	})

	count, err := h.audit.RecentFailedLogins(account, window)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: map[string]interface{}{
			"account":      account,
			"window":       window.String(),
			"failedLogins": count,
		},
	})
}

// PurgeActivity deletes audit events older than the retention window
// @Summary Purge audit activity (admin)
// @Tags Admin
// @Security AdminKey
// @Produce json
// @Param olderThan query string true "Retention as a Go duration, e.g. 720h"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid retention"
// @Router /admin/audit [delete]
func (h *AdminHandler) PurgeActivity(c echo.Context) error {
	if h.audit == nil {
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Audit store is disabled"))
	}

	retention, err := time.ParseDuration(c.QueryParam("olderThan"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("olderThan: must be a duration such as 720h"))
	}

	deleted, err := h.audit.Purge(retention)
	if stderrors.Is(err, services.ErrInvalidRetention) {
		return SendError(c, errors.ValidationOutOfRange, errors.WithDetails(err.Error()))
	}
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    map[string]int64{"deleted": deleted},
		Message: "Audit activity purged",
	})
}
