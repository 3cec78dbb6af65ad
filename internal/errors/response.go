package errors

import (
	"fmt"
	"maps"
	"net/http"
	"slices"
)

// ErrorResponse is the body returned for every refused or failed request.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
	TraceID string   `json:"trace_id"`
}

type ErrorOption func(*ErrorResponse)

// WithDetails replaces the detail lines of the response.
func WithDetails(details ...string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Details = details
	}
}

// WithMessage replaces the catalogue message of the code.
func WithMessage(message string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Message = message
	}
}

// NewErrorResponse builds the response for code with its catalogue message.
func NewErrorResponse(code ErrorCode, traceID string, opts ...ErrorOption) *ErrorResponse {
	er := &ErrorResponse{Error: ErrorDetail{
		Code:    string(code),
		Message: GetErrorMessage(code),
		TraceID: traceID,
	}}
	for _, opt := range opts {
		opt(er)
	}
	return er
}

// NewValidationError reports one "field: problem" line per invalid field,
// ordered by field name so repeated requests produce identical bodies.
func NewValidationError(fieldErrors map[string]string, traceID string) *ErrorResponse {
	details := make([]string, 0, len(fieldErrors))
	for _, field := range slices.Sorted(maps.Keys(fieldErrors)) {
		details = append(details, field+": "+fieldErrors[field])
	}
	return NewErrorResponse(ValidationGeneral, traceID, WithDetails(details...))
}

// WrapSystemError answers with SYSTEM_001 and hands err back for the log.
// Nothing from err reaches the client.
func WrapSystemError(err error, traceID string) (*ErrorResponse, error) {
	return NewErrorResponse(SystemInternalError, traceID), err
}

// httpStatus groups the codes by how the kiosk API answers them. Malformed
// input is 400, a missing or expired session 401, an unusable card 403 and
// a well formed request the account cannot honour 422.
var httpStatus = func() map[ErrorCode]int {
	groups := map[int][]ErrorCode{
		http.StatusBadRequest: {
			ValidationGeneral, ValidationRequiredField, ValidationInvalidFormat,
			ValidationOutOfRange, ValidationInvalidPin, TransactionInvalidAmount,
			TransferSameAccount, TransferMissingTarget, TransferInvalidAmount,
			AccountInvalidNumber,
		},
		http.StatusUnauthorized: {
			AuthInvalidPin, AuthNotLoggedIn, SessionTimedOut, SessionEnded,
		},
		http.StatusForbidden: {
			AuthAccountFrozen, AuthCardBlocked, AuthCardExpired,
		},
		http.StatusNotFound: {SystemRouteNotFound},
		http.StatusUnprocessableEntity: {
			AccountInsufficientBalance, AccountMinimumBalance,
			AccountOperationNotPermitted, AuthPinChangeFailed,
			TransactionInsufficientFunds, TransactionValidationFailed,
			TransactionInvalidType, TransferInsufficientFunds,
			LimitDailyTransactions, LimitDailyWithdrawal,
		},
		http.StatusTooManyRequests:    {SystemRateLimitExceeded},
		http.StatusServiceUnavailable: {SystemServiceUnavailable},
	}

	table := make(map[ErrorCode]int)
	for status, codes := range groups {
		for _, code := range codes {
			table[code] = status
		}
	}
	return table
}()

// GetHTTPStatus returns the status for code. Codes outside the table,
// including the remaining SYSTEM_* codes, are 500.
func GetHTTPStatus(code ErrorCode) int {
	if status, ok := httpStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func (er *ErrorResponse) GetHTTPStatus() int {
	return GetHTTPStatus(ErrorCode(er.Error.Code))
}

func (er *ErrorResponse) String() string {
	return fmt.Sprintf("[%s] %s (trace: %s)", er.Error.Code, er.Error.Message, er.Error.TraceID)
}
