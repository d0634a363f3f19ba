package binder

import (
	"github.com/tinyj/lava"
	"github.com/tinyj/lava/ers"
	"github.com/tinyj/lava/fn"
)

// Function enables currying on an fn.Function.
type Function[X, R any] struct {
	bound fn.Function[X, R]
}

// BindFunction starts currying bound.
func BindFunction[X, R any](bound func(X) R) Function[X, R] {
	ers.NilFunction(bound == nil, "binder.BindFunction")
	return Function[X, R]{bound: bound}
}

// Bind fixes the argument.
func (b Function[X, R]) Bind(x X) fn.Supplier[R] { return func() R { return b.bound(x) } }

// LinkTo returns a Supplier that calls x on every invocation and
// applies the bound function to the result.
func (b Function[X, R]) LinkTo(x fn.Supplier[X]) fn.Supplier[R] {
	ers.NilFunction(x == nil, "binder.Function.LinkTo")
	return func() R { return b.bound(x()) }
}

func (b Function[X, R]) Bound() fn.Function[X, R] { return b.bound }
func (b Function[X, R]) Apply(x X) R              { return b.bound(x) }

func (b Function[X, R]) Lava() LavaFunction[X, R] {
	return LavaFunction[X, R]{bound: lava.FromFunction[X, R](b.bound)}
}

// MapFunction maps the argument through x before applying the bound
// function, which is function composition.
func MapFunction[U, X, R any](b Function[X, R], x func(U) X) Function[U, R] {
	ers.NilFunction(x == nil, "binder.MapFunction")
	return BindFunction(func(u U) R { return b.bound(x(u)) })
}

// MapFunction2 maps a pair of arguments onto the single argument of
// the bound function.
func MapFunction2[U, V, X, R any](b Function[X, R], x func(U, V) X) BiFunction[U, V, R] {
	ers.NilFunction(x == nil, "binder.MapFunction2")
	return BindBiFunction(func(u U, v V) R { return b.bound(x(u, v)) })
}

// FunctionAndThen maps the result of the bound function through after.
func FunctionAndThen[X, R, V any](b Function[X, R], after func(R) V) Function[X, V] {
	ers.NilFunction(after == nil, "binder.FunctionAndThen")
	return BindFunction(func(x X) V { return after(b.bound(x)) })
}
