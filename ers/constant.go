// Package ers holds the error values shared by the lava packages: the
// sentinel raised when a nil function reaches a constructor, and the
// helpers that move failures between the panic of an unchecked
// function and the error result of a checked one.
package ers

// Error is a string type for declaring sentinel errors as constants.
//
// The empty Error is equal to a nil error for the purposes of Is.
type Error string

// Error implements the error interface.
func (e Error) Error() string { return string(e) }

// Is reports whether err is the same constant.
func (e Error) Is(err error) bool {
	switch {
	case err == nil && e == "":
		return e == ""
	case (err == nil) != (e == ""):
		return false
	default:
		switch x := err.(type) {
		case Error:
			return x == e
		default:
			return false
		}
	}
}
