package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Input errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
)

// Resource errors
const (
	// ErrCodeNotFound indicates the requested resource was not found.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
)

// Recipe and configuration errors
const (
	// ErrCodeInvalidConfig indicates a configuration or recipe document is malformed.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
	// ErrCodeUnknownOperator indicates a recipe names an operator that is not registered.
	ErrCodeUnknownOperator ErrorCode = "UNKNOWN_OPERATOR"
)

// Internal errors
const (
	// ErrCodeInternal indicates an unexpected failure.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)
