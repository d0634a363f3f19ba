package binder

import (
	"github.com/samber/lo"

	"github.com/tinyj/lava"
	"github.com/tinyj/lava/ers"
	"github.com/tinyj/lava/fn"
)

// BiFunction enables currying on an fn.BiFunction.
//
// Every method returns a new function or binder, the receiver is never
// modified. Binders returned from BindFirst, BindSecond, LinkFirst,
// and LinkSecond can be curried further; use Bound to unwrap them
// when the extra indirection matters.
type BiFunction[X, Y, R any] struct {
	bound fn.BiFunction[X, Y, R]
}

// BindBiFunction starts currying bound.
func BindBiFunction[X, Y, R any](bound func(X, Y) R) BiFunction[X, Y, R] {
	ers.NilFunction(bound == nil, "binder.BindBiFunction")
	return BiFunction[X, Y, R]{bound: bound}
}

// Flip swaps the arguments.
func (b BiFunction[X, Y, R]) Flip() BiFunction[Y, X, R] {
	return BiFunction[Y, X, R]{bound: b.bound.Flip()}
}

// Bind fixes both arguments.
func (b BiFunction[X, Y, R]) Bind(x X, y Y) fn.Supplier[R] { return func() R { return b.bound(x, y) } }

// BindFirst fixes the first argument.
func (b BiFunction[X, Y, R]) BindFirst(x X) Function[Y, R] {
	return Function[Y, R]{bound: lo.Partial[X, Y, R](b.bound, x)}
}

// BindSecond fixes the second argument.
func (b BiFunction[X, Y, R]) BindSecond(y Y) Function[X, R] {
	return Function[X, R]{bound: func(x X) R { return b.bound(x, y) }}
}

// Link returns a Supplier that calls x and then y on every invocation
// and applies the bound function to the results.
func (b BiFunction[X, Y, R]) Link(x fn.Supplier[X], y fn.Supplier[Y]) fn.Supplier[R] {
	ers.NilFunction(x == nil, "binder.BiFunction.Link")
	ers.NilFunction(y == nil, "binder.BiFunction.Link")
	return func() R { return b.bound(x(), y()) }
}

// LinkFirst feeds the first argument from x on every call.
func (b BiFunction[X, Y, R]) LinkFirst(x fn.Supplier[X]) Function[Y, R] {
	ers.NilFunction(x == nil, "binder.BiFunction.LinkFirst")
	return Function[Y, R]{bound: func(y Y) R { return b.bound(x(), y) }}
}

// LinkSecond feeds the second argument from y on every call.
func (b BiFunction[X, Y, R]) LinkSecond(y fn.Supplier[Y]) Function[X, R] {
	ers.NilFunction(y == nil, "binder.BiFunction.LinkSecond")
	return Function[X, R]{bound: func(x X) R { return b.bound(x, y()) }}
}

// Bound returns the wrapped function.
func (b BiFunction[X, Y, R]) Bound() fn.BiFunction[X, Y, R] { return b.bound }

// Apply calls the wrapped function.
func (b BiFunction[X, Y, R]) Apply(x X, y Y) R { return b.bound(x, y) }

// Lava returns the checked counterpart of the binder. Panics of the
// bound function become errors.
func (b BiFunction[X, Y, R]) Lava() LavaBiFunction[X, Y, R] {
	return LavaBiFunction[X, Y, R]{bound: lava.FromBiFunction[X, Y, R](b.bound)}
}

// MapBiFunction maps both arguments: x and y are called on every
// invocation and their results are passed to the bound function.
func MapBiFunction[U, V, X, Y, R any](b BiFunction[X, Y, R], x func(U) X, y func(V) Y) BiFunction[U, V, R] {
	ers.NilFunction(x == nil || y == nil, "binder.MapBiFunction")
	return BindBiFunction(func(u U, v V) R { return b.bound(x(u), y(v)) })
}

// MapBiFunctionFirst maps the first argument.
func MapBiFunctionFirst[U, X, Y, R any](b BiFunction[X, Y, R], x func(U) X) BiFunction[U, Y, R] {
	ers.NilFunction(x == nil, "binder.MapBiFunctionFirst")
	return BindBiFunction(func(u U, y Y) R { return b.bound(x(u), y) })
}

// MapBiFunctionSecond maps the second argument.
func MapBiFunctionSecond[V, X, Y, R any](b BiFunction[X, Y, R], y func(V) Y) BiFunction[X, V, R] {
	ers.NilFunction(y == nil, "binder.MapBiFunctionSecond")
	return BindBiFunction(func(x X, v V) R { return b.bound(x, y(v)) })
}

// BiFunctionAndThen maps the result of the bound function through
// after.
func BiFunctionAndThen[X, Y, R, V any](b BiFunction[X, Y, R], after func(R) V) BiFunction[X, Y, V] {
	ers.NilFunction(after == nil, "binder.BiFunctionAndThen")
	return BindBiFunction(func(x X, y Y) V { return after(b.bound(x, y)) })
}
