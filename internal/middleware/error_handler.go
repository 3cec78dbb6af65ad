package middleware

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"

	"atm-simulator/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var apiErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "atm_api_errors_total",
		Help: "Error responses sent by the kiosk API, by code, route and status",
	},
	[]string{"code", "route", "status"},
)

// echoStatusCodes covers the statuses echo raises itself, before a handler
// has had the chance to pick a code.
var echoStatusCodes = map[int]errors.ErrorCode{
	http.StatusBadRequest:            errors.ValidationGeneral,
	http.StatusUnsupportedMediaType:  errors.ValidationGeneral,
	http.StatusRequestEntityTooLarge: errors.ValidationOutOfRange,
	http.StatusUnauthorized:          errors.AuthNotLoggedIn,
	http.StatusForbidden:             errors.AccountOperationNotPermitted,
	http.StatusNotFound:              errors.SystemRouteNotFound,
	http.StatusMethodNotAllowed:      errors.SystemRouteNotFound,
	http.StatusUnprocessableEntity:   errors.TransactionValidationFailed,
	http.StatusTooManyRequests:       errors.SystemRateLimitExceeded,
	http.StatusInternalServerError:   errors.SystemInternalError,
	http.StatusServiceUnavailable:    errors.SystemServiceUnavailable,
}

// ErrorHandler renders errors that escaped a handler in the kiosk's error
// envelope. Unknown errors become SYSTEM_001 and are logged, never echoed.
func ErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		traceID := GetTraceID(c)
		if traceID == "" {
			traceID = "unknown"
		}

		resp, status := errorResponseFor(err, traceID)

		level := slog.LevelWarn
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		logger.Log(c.Request().Context(), level, "request failed",
			"trace_id", traceID,
			"code", resp.Error.Code,
			"status", status,
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"error", err,
		)

		apiErrorsTotal.WithLabelValues(resp.Error.Code, c.Path(), strconv.Itoa(status)).Inc()

		if sendErr := c.JSON(status, resp); sendErr != nil {
			logger.Error("writing error response", "trace_id", traceID, "error", sendErr)
		}
	}
}

func errorResponseFor(err error, traceID string) (*errors.ErrorResponse, int) {
	var httpErr *echo.HTTPError
	if stderrors.As(err, &httpErr) {
		code, ok := echoStatusCodes[httpErr.Code]
		if !ok {
			code = errors.SystemUnexpectedError
		}
		return errors.NewErrorResponse(code, traceID, errors.WithMessage(fmt.Sprint(httpErr.Message))), httpErr.Code
	}

	var invalid validator.ValidationErrors
	if stderrors.As(err, &invalid) {
		fields := make(map[string]string, len(invalid))
		for _, fe := range invalid {
			fields[fe.Field()] = describeFieldError(fe)
		}
		return errors.NewValidationError(fields, traceID), http.StatusBadRequest
	}

	resp, _ := errors.WrapSystemError(err, traceID)
	return resp, resp.GetHTTPStatus()
}

// fieldMessages holds the fixed messages of the kiosk's own validation tags.
var fieldMessages = map[string]string{
	"required":       "is required",
	"pin":            "must be exactly 4 digits",
	"money":          "must be a non-negative amount with at most 2 decimal places",
	"positive_money": "must be a positive amount with at most 2 decimal places",
	"account_number": "must be a valid account number",
}

func describeFieldError(fe validator.FieldError) string {
	if msg, ok := fieldMessages[fe.Tag()]; ok {
		return msg
	}

	unit := ""
	if fe.Kind() == reflect.String {
		unit = " characters long"
	}
	switch fe.Tag() {
	case "min":
		return "must be at least " + fe.Param() + unit
	case "max":
		return "must be at most " + fe.Param() + unit
	case "len":
		return "must be exactly " + fe.Param() + " characters long"
	case "oneof":
		return "must be one of: " + fe.Param()
	}
	return fmt.Sprintf("failed validation for '%s'", fe.Tag())
}
