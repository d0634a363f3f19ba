package ers

import (
	"errors"
	"fmt"
)

// Wrap produces a wrapped error if the err is non-nil, wrapping the
// error with the provided annotation. When the error is nil, Wrap
// returns nil.
func Wrap(err error, annotation string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", annotation, err)
}

// Is is a wrapper around errors.Is, to let ers stand in for the
// standard errors package at call sites.
func Is(err, target error) bool { return errors.Is(err, target) }

// NilFunction panics with an error rooted in ErrNilFunction, and
// annotated with the name of the operation, when isNil is true.
func NilFunction(isNil bool, op string) {
	if isNil {
		panic(Wrap(ErrNilFunction, op))
	}
}
