// Package ft provides the functor constants: small, stateless
// functions (or closures over a single immutable value) that other
// lava packages hand out as identity, no-op, constant, and comparison
// functions of every shape.
//
// The functions in this package are plain Go functions, so they can be
// passed anywhere a func value of the right signature is expected:
//
//	slices.IndexFunc(items, ft.IsEqualTo("needle"))
//	fn.MakeBiFunction(ft.First[string, int])
package ft

import (
	"fmt"
	"reflect"

	"github.com/samber/lo"
)

// NoOp does absolutely nothing. This is equivalent to `func() {}`.
func NoOp() {}

// Constant produces a function that always returns the value
// provided.
func Constant[T any](value T) func() T { return func() T { return value } }

// Zero returns the zero value for a given type. The compiler can't
// determine the type automatically (typically), so have to invoke
// this as `Zero[int]()`. For pointers, maps, slices, and interfaces
// this is nil.
func Zero[T any]() (zero T) { return zero }

// Identity returns its argument.
func Identity[T any](in T) T { return in }

// ToString returns the string representation of its argument, as
// produced by fmt.Sprint. Values implementing fmt.Stringer are
// rendered with their String method.
func ToString[T any](in T) string { return fmt.Sprint(in) }

// First takes two arguments and returns the first.
func First[X, Y any](x X, _ Y) X { return x }

// Second takes two arguments and returns the second.
func Second[X, Y any](_ X, y Y) Y { return y }

// True is the predicate that holds for every value.
func True[T any](T) bool { return true }

// False is the predicate that holds for no value.
func False[T any](T) bool { return false }

// IsNull returns true when the value is nil, or is a nil pointer,
// map, slice, channel, or function. Values of types that cannot be
// nil are never null.
func IsNull[T any](in T) bool { return lo.IsNil(in) }

// NonNull is the negation of IsNull.
func NonNull[T any](in T) bool { return !IsNull(in) }

// IsEqualTo returns a predicate that is true when its argument equals
// the reference value.
func IsEqualTo[T comparable](reference T) func(T) bool {
	return func(in T) bool { return in == reference }
}

// Equals reports whether both arguments are equal.
func Equals[T comparable](x, y T) bool { return x == y }

// IsDeepEqualTo is IsEqualTo for types that are not comparable, using
// reflect.DeepEqual.
func IsDeepEqualTo[T any](reference T) func(T) bool {
	return func(in T) bool { return reflect.DeepEqual(in, reference) }
}

// DeepEquals reports whether both arguments are deeply equal.
func DeepEquals[T any](x, y T) bool { return reflect.DeepEqual(x, y) }
