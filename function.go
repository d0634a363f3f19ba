package lava

import (
	"github.com/samber/mo"

	"github.com/tinyj/lava/ers"
	"github.com/tinyj/lava/fn"
)

// Function converts a value of one type into a value of another, or
// fails.
type Function[X, R any] func(X) (R, error)

// MakeFunction converts a function literal into a Function.
func MakeFunction[X, R any](op func(X) (R, error)) Function[X, R] { return op }

// UnaryOp is MakeFunction for functions whose argument and result
// types are the same.
func UnaryOp[X any](op func(X) (X, error)) Function[X, X] { return op }

func (f Function[X, R]) Apply(x X) (R, error) { return f(x) }

// Result applies the function and captures the outcome in a
// mo.Result.
func (f Function[X, R]) Result(x X) mo.Result[R] {
	out, err := f(x)
	return mo.TupleToResult(out, err)
}

// Unchecked returns an fn.Function that panics with the error.
func (f Function[X, R]) Unchecked() fn.Function[X, R] {
	ers.NilFunction(f == nil, "lava.Function.Unchecked")
	return func(x X) R { out, err := f(x); ers.Panic(err); return out }
}

// AndThen returns a function that passes the result of f to
// after. When f fails, after is not called.
func AndThen[X, R, V any](f Function[X, R], after Function[R, V]) Function[X, V] {
	ers.NilFunction(after == nil, "lava.AndThen")
	return func(x X) (out V, _ error) {
		r, err := f(x)
		if err != nil {
			return out, err
		}
		return after(r)
	}
}

// Compose returns a function that passes the result of before to
// f. When before fails, f is not called.
func Compose[U, X, R any](f Function[X, R], before Function[U, X]) Function[U, R] {
	ers.NilFunction(before == nil, "lava.Compose")
	return AndThen(before, f)
}

// BiFunction produces a value from two arguments, or fails.
type BiFunction[X, Y, R any] func(X, Y) (R, error)

// MakeBiFunction converts a function literal into a BiFunction.
func MakeBiFunction[X, Y, R any](op func(X, Y) (R, error)) BiFunction[X, Y, R] { return op }

// BinaryOp is MakeBiFunction for functions where both arguments and
// the result share a type.
func BinaryOp[X any](op func(X, X) (X, error)) BiFunction[X, X, X] { return op }

func (f BiFunction[X, Y, R]) Apply(x X, y Y) (R, error) { return f(x, y) }

func (f BiFunction[X, Y, R]) Result(x X, y Y) mo.Result[R] {
	out, err := f(x, y)
	return mo.TupleToResult(out, err)
}

// Flip returns a BiFunction that takes the arguments in the opposite
// order.
func (f BiFunction[X, Y, R]) Flip() BiFunction[Y, X, R] {
	return func(y Y, x X) (R, error) { return f(x, y) }
}

func (f BiFunction[X, Y, R]) Unchecked() fn.BiFunction[X, Y, R] {
	ers.NilFunction(f == nil, "lava.BiFunction.Unchecked")
	return func(x X, y Y) R { out, err := f(x, y); ers.Panic(err); return out }
}

// BiAndThen returns a function that passes the result of f to after.
func BiAndThen[X, Y, R, V any](f BiFunction[X, Y, R], after Function[R, V]) BiFunction[X, Y, V] {
	ers.NilFunction(after == nil, "lava.BiAndThen")
	return func(x X, y Y) (out V, _ error) {
		r, err := f(x, y)
		if err != nil {
			return out, err
		}
		return after(r)
	}
}
