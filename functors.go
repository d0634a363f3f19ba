package lava

import "github.com/tinyj/lava/ft"

// The functor constants below never return an error.

// NoOp returns the Runnable that does nothing.
func NoOp() Runnable { return func() error { return nil } }

// Constant returns a Supplier that always produces value.
func Constant[R any](value R) Supplier[R] { return func() (R, error) { return value, nil } }

// Zero returns a Supplier of the zero value of R.
func Zero[R any]() Supplier[R] { return Constant(ft.Zero[R]()) }

// Identity returns the function that returns its argument.
func Identity[X any]() Function[X, X] { return func(x X) (X, error) { return x, nil } }

func ToString[X any]() Function[X, string] {
	return func(x X) (string, error) { return ft.ToString(x), nil }
}

// First returns the binary function that returns its first argument.
func First[X, Y any]() BiFunction[X, Y, X] { return func(x X, _ Y) (X, error) { return x, nil } }

// Second returns the binary function that returns its second
// argument.
func Second[X, Y any]() BiFunction[X, Y, Y] { return func(_ X, y Y) (Y, error) { return y, nil } }

func True[X any]() Predicate[X]  { return func(X) (bool, error) { return true, nil } }
func False[X any]() Predicate[X] { return func(X) (bool, error) { return false, nil } }

// IsNull returns the predicate that holds for nil values.
func IsNull[X any]() Predicate[X] { return func(x X) (bool, error) { return ft.IsNull(x), nil } }

// NonNull returns the predicate that holds for non-nil values.
func NonNull[X any]() Predicate[X] { return func(x X) (bool, error) { return ft.NonNull(x), nil } }

// IsEqualTo returns the predicate that holds for values equal to
// reference.
func IsEqualTo[X comparable](reference X) Predicate[X] {
	return func(x X) (bool, error) { return x == reference, nil }
}

// Equals returns the equality relation.
func Equals[X comparable]() BiPredicate[X, X] {
	return func(x, y X) (bool, error) { return ft.Equals(x, y), nil }
}
