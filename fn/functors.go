package fn

import "github.com/tinyj/lava/ft"

// NoOp returns the Runnable that does nothing.
func NoOp() Runnable { return ft.NoOp }

// Constant returns a Supplier that always produces value.
func Constant[R any](value R) Supplier[R] { return ft.Constant(value) }

// Zero returns a Supplier of the zero value of R.
func Zero[R any]() Supplier[R] { return ft.Zero[R] }

// Identity returns the function that returns its argument.
func Identity[X any]() Function[X, X] { return ft.Identity[X] }

// ToString returns the function that renders its argument with
// fmt.Sprint.
func ToString[X any]() Function[X, string] { return ft.ToString[X] }

// First returns the binary function that returns its first argument.
func First[X, Y any]() BiFunction[X, Y, X] { return ft.First[X, Y] }

// Second returns the binary function that returns its second
// argument.
func Second[X, Y any]() BiFunction[X, Y, Y] { return ft.Second[X, Y] }

func True[X any]() Predicate[X]  { return ft.True[X] }
func False[X any]() Predicate[X] { return ft.False[X] }

// IsNull returns the predicate that holds for nil values.
func IsNull[X any]() Predicate[X] { return ft.IsNull[X] }

// NonNull returns the predicate that holds for non-nil values.
func NonNull[X any]() Predicate[X] { return ft.NonNull[X] }

// IsEqualTo returns the predicate that holds for values equal to
// reference.
func IsEqualTo[X comparable](reference X) Predicate[X] { return ft.IsEqualTo(reference) }

// Equals returns the equality relation.
func Equals[X comparable]() BiPredicate[X, X] { return ft.Equals[X] }
