package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthMissingAPIKey ErrorCode = "AUTH_001"
	AuthInvalidAPIKey ErrorCode = "AUTH_002"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
	ValidationDateRange     ErrorCode = "VALIDATION_006"
)

// Resource error codes (RESOURCE_*)
const (
	ResourceNotFound ErrorCode = "RESOURCE_001"
)

// Upstream ledger source error codes (UPSTREAM_*)
const (
	UpstreamUnavailable ErrorCode = "UPSTREAM_001"
	UpstreamBadPayload  ErrorCode = "UPSTREAM_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemConfigurationError ErrorCode = "SYSTEM_002"
	SystemUnexpectedError    ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
	SystemServiceUnavailable ErrorCode = "SYSTEM_005"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthMissingAPIKey: "API key is required",
	AuthInvalidAPIKey: "Could not validate credentials. Invalid API Key.",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid date format or range",
	ValidationDateRange:     "start_date cannot be after end_date",

	// Resource errors
	ResourceNotFound: "Resource not found",

	// Upstream errors
	UpstreamUnavailable: "Failed to connect to the ledger data source",
	UpstreamBadPayload:  "The ledger data source returned an unreadable payload",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemServiceUnavailable: "Service temporarily unavailable",
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
