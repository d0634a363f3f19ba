package fn

import "github.com/tinyj/lava/ers"

// Function converts a value of one type into a value of another.
type Function[X, R any] func(X) R

// MakeFunction converts a function literal into a Function.
func MakeFunction[X, R any](op func(X) R) Function[X, R] { return op }

// UnaryOp is MakeFunction for functions whose argument and result
// types are the same.
func UnaryOp[X any](op func(X) X) Function[X, X] { return op }

func (f Function[X, R]) Apply(x X) R { return f(x) }

// AndThen returns a function that passes the result of f to after.
func AndThen[X, R, V any](f Function[X, R], after Function[R, V]) Function[X, V] {
	ers.NilFunction(after == nil, "fn.AndThen")
	return func(x X) V { return after(f(x)) }
}

// Compose returns a function that passes the result of before to f.
func Compose[U, X, R any](f Function[X, R], before Function[U, X]) Function[U, R] {
	ers.NilFunction(before == nil, "fn.Compose")
	return func(u U) R { return f(before(u)) }
}

// BiFunction produces a value from two arguments.
type BiFunction[X, Y, R any] func(X, Y) R

// MakeBiFunction converts a function literal into a BiFunction.
func MakeBiFunction[X, Y, R any](op func(X, Y) R) BiFunction[X, Y, R] { return op }

// BinaryOp is MakeBiFunction for functions where both arguments and
// the result share a type.
func BinaryOp[X any](op func(X, X) X) BiFunction[X, X, X] { return op }

func (f BiFunction[X, Y, R]) Apply(x X, y Y) R { return f(x, y) }

// Flip returns a BiFunction that takes the arguments in the opposite
// order.
func (f BiFunction[X, Y, R]) Flip() BiFunction[Y, X, R] { return func(y Y, x X) R { return f(x, y) } }

// BiAndThen returns a function that passes the result of f to after.
func BiAndThen[X, Y, R, V any](f BiFunction[X, Y, R], after Function[R, V]) BiFunction[X, Y, V] {
	ers.NilFunction(after == nil, "fn.BiAndThen")
	return func(x X, y Y) V { return after(f(x, y)) }
}
