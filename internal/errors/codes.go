package errors

// ErrorCode represents a standardized error code surfaced by the ATM adapters
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthInvalidPin      ErrorCode = "AUTH_001"
	AuthAccountFrozen   ErrorCode = "AUTH_002"
	AuthCardBlocked     ErrorCode = "AUTH_003"
	AuthCardExpired     ErrorCode = "AUTH_004"
	AuthNotLoggedIn     ErrorCode = "AUTH_005"
	AuthPinChangeFailed ErrorCode = "AUTH_006"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidPin    ErrorCode = "VALIDATION_005"
)

// Account error codes (ACCOUNT_*)
const (
	AccountInsufficientBalance   ErrorCode = "ACCOUNT_001"
	AccountMinimumBalance        ErrorCode = "ACCOUNT_002"
	AccountInvalidNumber         ErrorCode = "ACCOUNT_003"
	AccountOperationNotPermitted ErrorCode = "ACCOUNT_004"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionInvalidAmount     ErrorCode = "TRANSACTION_001"
	TransactionInsufficientFunds ErrorCode = "TRANSACTION_002"
	TransactionValidationFailed  ErrorCode = "TRANSACTION_003"
	TransactionInvalidType       ErrorCode = "TRANSACTION_004"
)

// Transfer error codes (TRANSFER_*)
const (
	TransferSameAccount       ErrorCode = "TRANSFER_001"
	TransferMissingTarget     ErrorCode = "TRANSFER_002"
	TransferInsufficientFunds ErrorCode = "TRANSFER_003"
	TransferInvalidAmount     ErrorCode = "TRANSFER_004"
)

// Limit error codes (LIMIT_*)
const (
	LimitDailyTransactions ErrorCode = "LIMIT_001"
	LimitDailyWithdrawal   ErrorCode = "LIMIT_002"
)

// Session error codes (SESSION_*)
const (
	SessionTimedOut ErrorCode = "SESSION_001"
	SessionEnded    ErrorCode = "SESSION_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
	SystemRouteNotFound      ErrorCode = "SYSTEM_007"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthInvalidPin:      "Incorrect PIN",
	AuthAccountFrozen:   "Account is locked after too many failed PIN attempts",
	AuthCardBlocked:     "Card is blocked",
	AuthCardExpired:     "Card has expired",
	AuthNotLoggedIn:     "Please authenticate with your PIN first",
	AuthPinChangeFailed: "PIN change failed",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidPin:    "PIN must be exactly 4 digits",

	// Account errors
	AccountInsufficientBalance:   "Insufficient account balance",
	AccountMinimumBalance:        "Operation would breach the minimum balance",
	AccountInvalidNumber:         "Invalid account number",
	AccountOperationNotPermitted: "Account operation not permitted",

	// Transaction errors
	TransactionInvalidAmount:     "Amount must be positive with at most two decimal places",
	TransactionInsufficientFunds: "Insufficient account balance for this transaction",
	TransactionValidationFailed:  "Transaction validation failed",
	TransactionInvalidType:       "Invalid transaction type",

	// Transfer errors
	TransferSameAccount:       "Cannot transfer to the same account",
	TransferMissingTarget:     "Target account is required",
	TransferInsufficientFunds: "Insufficient balance for this transfer",
	TransferInvalidAmount:     "Invalid transfer amount",

	// Limit errors
	LimitDailyTransactions: "Daily transaction limit reached",
	LimitDailyWithdrawal:   "Daily withdrawal limit exceeded",

	// Session errors
	SessionTimedOut: "Session timed out. Please start again",
	SessionEnded:    "Session has ended",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemRouteNotFound:      "Requested resource does not exist",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
