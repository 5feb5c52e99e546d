package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError is the unified error type of the query engines.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// Is reports whether target is an *AppError with the same code.
// A NO_MATCH error also matches EMPTY_SEQUENCE targets.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	if t.Code == e.Code {
		return true
	}
	return t.Code == ErrCodeEmptySequence && IsEmptyCode(e.Code)
}

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Sentinels for errors.Is. They are never returned directly.
var (
	ErrEmpty           = New(ErrCodeEmptySequence, "sequence contains no elements")
	ErrNoMatch         = New(ErrCodeNoMatch, "no element satisfies the condition")
	ErrTooMany         = New(ErrCodeTooMany, "sequence contains more than one matching element")
	ErrOutOfRange      = New(ErrCodeOutOfRange, "index out of range")
	ErrDivideByZero    = New(ErrCodeDivideByZero, "division by zero")
	ErrDuplicateKey    = New(ErrCodeDuplicateKey, "duplicate key")
	ErrInvalidArgument = New(ErrCodeInvalidArgument, "invalid argument")
)

// --- Constructors ---

// Empty creates an error for an operation over a sequence with no elements.
func Empty(op string) *AppError {
	return &AppError{
		Code: ErrCodeEmptySequence, Message: fmt.Sprintf("%s: sequence contains no elements", op),
		Details: map[string]any{"operation": op},
	}
}

// NoMatch creates an error for an operation whose predicate matched nothing.
func NoMatch(op string) *AppError {
	return &AppError{
		Code: ErrCodeNoMatch, Message: fmt.Sprintf("%s: no element satisfies the condition", op),
		Details: map[string]any{"operation": op},
	}
}

// TooMany creates an error for an operation that required a single match but found n.
func TooMany(op string, n int) *AppError {
	return &AppError{
		Code: ErrCodeTooMany, Message: fmt.Sprintf("%s: expected exactly one element, found %d", op, n),
		Details: map[string]any{"operation": op, "matches": n},
	}
}

// OutOfRange creates an error for an index or count outside [0, length].
func OutOfRange(op string, index, length int) *AppError {
	return &AppError{
		Code: ErrCodeOutOfRange, Message: fmt.Sprintf("%s: index %d out of range for length %d", op, index, length),
		Details: map[string]any{"operation": op, "index": index, "length": length},
	}
}

// DivideByZero creates an error for an average-like aggregate over no elements.
func DivideByZero(op string) *AppError {
	return &AppError{
		Code: ErrCodeDivideByZero, Message: fmt.Sprintf("%s: division by zero on empty sequence", op),
		Details: map[string]any{"operation": op},
	}
}

// DuplicateKey creates an error for a key produced by more than one element.
func DuplicateKey(key any) *AppError {
	return &AppError{
		Code: ErrCodeDuplicateKey, Message: fmt.Sprintf("duplicate key: %v", key),
		Details: map[string]any{"key": key},
	}
}

// InvalidArgument creates an error for an argument that failed validation.
func InvalidArgument(field, reason string) *AppError {
	details := make(map[string]any)
	if field != "" {
		details["field"] = field
	}
	return &AppError{
		Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("Invalid argument: %s", reason),
		Details: details,
	}
}

// Validation creates an error for a failed validation with a prepared message.
func Validation(message string) *AppError {
	return &AppError{Code: ErrCodeInvalidArgument, Message: message}
}

// CodeOf returns the code of the first *AppError in err's chain, or "" if none.
func CodeOf(err error) ErrorCode {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}
