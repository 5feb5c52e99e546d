// Package errors defines the error conditions raised by the query engines.
//
// Every failure is an *AppError carrying a machine-readable ErrorCode.
// Callers match conditions with the standard library:
//
//	if _, err := seq.First(nil); errors.Is(err, lkerrors.ErrEmpty) {
//	    // no element
//	}
//
// ErrNoMatch is reported when a predicate matched nothing; it also matches
// ErrEmpty, so callers that do not care about the distinction test for
// ErrEmpty only.
package errors
