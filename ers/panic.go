package ers

import "fmt"

// PanicError holds a recovered panic value that was not itself an
// error.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("%s: [%T] %v", ErrRecoveredPanic, e.Value, e.Value)
}

// Is reports true for ErrRecoveredPanic.
func (*PanicError) Is(target error) bool { return Is(ErrRecoveredPanic, target) }

// ParsePanic converts the result of recover() into an error. If no
// panic is detected, ParsePanic returns nil. Error values are returned
// unchanged, everything else is captured in a *PanicError.
//
// ParsePanic is the inverse of Panic.
func ParsePanic(r any) error {
	switch val := r.(type) {
	case nil:
		return nil
	case error:
		return val
	default:
		return &PanicError{Value: val}
	}
}

// Panic raises the error as a panic when it is non-nil. Errors that
// were produced by ParsePanic from a non-error value panic with that
// original value again.
func Panic(err error) {
	if err == nil {
		return
	}
	if pe, ok := err.(*PanicError); ok {
		panic(pe.Value)
	}
	panic(err)
}

// WithRecoverCall runs a function without arguments that does not
// produce an error and, if the function panics, converts it into an
// error.
func WithRecoverCall(fn func()) (err error) {
	defer func() { err = ParsePanic(recover()) }()
	fn()
	return
}

// WithRecoverDo runs a function with a panic handler that converts
// the panic to an error.
func WithRecoverDo[T any](fn func() T) (out T, err error) {
	defer func() { err = ParsePanic(recover()) }()
	out = fn()
	return
}
