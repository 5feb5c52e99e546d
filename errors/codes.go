package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Element access errors
const (
	// ErrCodeEmptySequence indicates the sequence has no elements at all.
	ErrCodeEmptySequence ErrorCode = "EMPTY_SEQUENCE"
	// ErrCodeNoMatch indicates no element satisfied the predicate.
	ErrCodeNoMatch ErrorCode = "NO_MATCH"
	// ErrCodeTooMany indicates more than one element matched where exactly one was required.
	ErrCodeTooMany ErrorCode = "TOO_MANY_ELEMENTS"
	// ErrCodeOutOfRange indicates an index or count beyond the sequence length.
	ErrCodeOutOfRange ErrorCode = "OUT_OF_RANGE"
)

// Aggregation and conversion errors
const (
	// ErrCodeDivideByZero indicates an average-like aggregate over no elements.
	ErrCodeDivideByZero ErrorCode = "DIVISION_BY_ZERO"
	// ErrCodeDuplicateKey indicates two elements projected to the same map key.
	ErrCodeDuplicateKey ErrorCode = "DUPLICATE_KEY"
)

// Validation errors
const (
	// ErrCodeInvalidArgument indicates an argument failed validation.
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
)

// emptyCodes are the codes that count as an empty-result condition.
var emptyCodes = map[ErrorCode]bool{
	ErrCodeEmptySequence: true,
	ErrCodeNoMatch:       true,
}

// IsEmptyCode returns true if the code is an empty-result condition.
func IsEmptyCode(code ErrorCode) bool {
	return emptyCodes[code]
}
