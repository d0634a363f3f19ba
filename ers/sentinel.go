package ers

// ErrNilFunction is the root of the panic raised when a constructor,
// combinator, or adapter receives a nil function.
const ErrNilFunction Error = Error("nil function")

// ErrRecoveredPanic is at the root of any error produced by
// converting a non-error panic value into an error.
const ErrRecoveredPanic Error = Error("recovered panic")
