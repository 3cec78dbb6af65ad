package handlers

import (
	"log/slog"
	"net/http"

	"atm-simulator/internal/errors"

	"github.com/labstack/echo/v4"
)

// Error responses
//
// Handlers never build error bodies by hand:
//
//  1. SendError for refusals the customer can act on (4xx). Rejected session
//     operations go through SendRejection, which asks errors.ExplainRejection
//     for the code.
//  2. SendSystemError for failures of the audit store or other internals (500).
//     The internal error is logged, never returned.

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	errorResponse := errors.NewErrorResponse(code, getTraceID(c), opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendRejection explains a refused session operation to the client
func SendRejection(c echo.Context, session errors.SessionInspector, rejection errors.Rejection) error {
	return SendError(c, errors.ExplainRejection(session, rejection))
}

// SendSystemError wraps a system error with generic message and logs the internal error
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, internal := errors.WrapSystemError(err, traceID)
	slog.Error("Request failed", "trace_id", traceID, "path", c.Path(), "error", internal)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}
