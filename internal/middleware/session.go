package middleware

import (
	"crypto/subtle"
	"net/http"

	"atm-simulator/internal/errors"
	"atm-simulator/internal/handlers"

	"github.com/labstack/echo/v4"
)

// AdminKeyHeader carries the operator key on /admin routes
const AdminKeyHeader = "X-Admin-Key"

// SessionGuard reports why a request must be refused, or "" to let it
// through, and restarts the session window after a request succeeds.
// *handlers.SessionHandler satisfies it.
type SessionGuard interface {
	CheckSession() errors.ErrorCode
	RefreshSession()
}

// RequireSession refuses requests unless the customer is authenticated
// inside the session window. A request answered below 400 counts as
// activity and restarts the window.
func RequireSession(guard SessionGuard) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if code := guard.CheckSession(); code != "" {
				return handlers.SendError(c, code)
			}
			if err := next(c); err != nil {
				return err
			}
			if c.Response().Status < http.StatusBadRequest {
				guard.RefreshSession()
			}
			return nil
		}
	}
}

// RequireAdminKey refuses requests whose X-Admin-Key does not match key.
// An empty key refuses everything.
func RequireAdminKey(key string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			provided := c.Request().Header.Get(AdminKeyHeader)
			if key == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(key)) != 1 {
				return handlers.SendError(c, errors.AuthNotLoggedIn, errors.WithDetails("Operator key required"))
			}
			return next(c)
		}
	}
}
