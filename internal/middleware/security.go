package middleware

import (
	"github.com/labstack/echo/v4"
)

// kioskHeaders are sent on every response. Balances, receipts and
// statements must never be cached by a browser or proxy.
var kioskHeaders = [][2]string{
	{"X-Content-Type-Options", "nosniff"},
	{"X-Frame-Options", "DENY"},
	{"Strict-Transport-Security", "max-age=31536000; includeSubDomains"},
	{"Referrer-Policy", "no-referrer"},
	{"Cache-Control", "no-store, no-cache, must-revalidate, private"},
	{"Pragma", "no-cache"},
	{"Expires", "0"},
}

const defaultCSP = "default-src 'self'"

// routeCSP overrides the content security policy per route. The HTML
// statement export carries an inline stylesheet and nothing else.
var routeCSP = map[string]string{
	"/session/statement/export": "default-src 'none'; style-src 'unsafe-inline'",
}

// SecurityHeaders sets the kiosk's fixed response headers.
func SecurityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			for _, kv := range kioskHeaders {
				h.Set(kv[0], kv[1])
			}

			csp, ok := routeCSP[c.Path()]
			if !ok {
				csp = defaultCSP
			}
			h.Set("Content-Security-Policy", csp)

			return next(c)
		}
	}
}
