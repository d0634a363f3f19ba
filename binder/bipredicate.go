package binder

import (
	"github.com/samber/lo"

	"github.com/tinyj/lava"
	"github.com/tinyj/lava/ers"
	"github.com/tinyj/lava/fn"
)

// BiPredicate enables currying on an fn.BiPredicate.
type BiPredicate[X, Y any] struct {
	bound fn.BiPredicate[X, Y]
}

// BindBiPredicate starts currying bound.
func BindBiPredicate[X, Y any](bound func(X, Y) bool) BiPredicate[X, Y] {
	ers.NilFunction(bound == nil, "binder.BindBiPredicate")
	return BiPredicate[X, Y]{bound: bound}
}

// Flip swaps the arguments.
func (b BiPredicate[X, Y]) Flip() BiPredicate[Y, X] { return BiPredicate[Y, X]{bound: b.bound.Flip()} }

// Bind fixes both arguments.
func (b BiPredicate[X, Y]) Bind(x X, y Y) fn.Condition { return func() bool { return b.bound(x, y) } }

// BindFirst fixes the first argument.
func (b BiPredicate[X, Y]) BindFirst(x X) Predicate[Y] {
	return Predicate[Y]{bound: lo.Partial[X, Y, bool](b.bound, x)}
}

// BindSecond fixes the second argument.
func (b BiPredicate[X, Y]) BindSecond(y Y) Predicate[X] {
	return Predicate[X]{bound: func(x X) bool { return b.bound(x, y) }}
}

// Link returns a Condition that calls x and then y on every test.
func (b BiPredicate[X, Y]) Link(x fn.Supplier[X], y fn.Supplier[Y]) fn.Condition {
	ers.NilFunction(x == nil, "binder.BiPredicate.Link")
	ers.NilFunction(y == nil, "binder.BiPredicate.Link")
	return func() bool { return b.bound(x(), y()) }
}

func (b BiPredicate[X, Y]) LinkFirst(x fn.Supplier[X]) Predicate[Y] {
	ers.NilFunction(x == nil, "binder.BiPredicate.LinkFirst")
	return Predicate[Y]{bound: func(y Y) bool { return b.bound(x(), y) }}
}

func (b BiPredicate[X, Y]) LinkSecond(y fn.Supplier[Y]) Predicate[X] {
	ers.NilFunction(y == nil, "binder.BiPredicate.LinkSecond")
	return Predicate[X]{bound: func(x X) bool { return b.bound(x, y()) }}
}

func (b BiPredicate[X, Y]) Negate() BiPredicate[X, Y] {
	return BiPredicate[X, Y]{bound: b.bound.Negate()}
}
func (b BiPredicate[X, Y]) Bound() fn.BiPredicate[X, Y] { return b.bound }
func (b BiPredicate[X, Y]) Test(x X, y Y) bool          { return b.bound(x, y) }

func (b BiPredicate[X, Y]) Lava() LavaBiPredicate[X, Y] {
	return LavaBiPredicate[X, Y]{bound: lava.FromBiPredicate[X, Y](b.bound)}
}

func MapBiPredicate[U, V, X, Y any](b BiPredicate[X, Y], x func(U) X, y func(V) Y) BiPredicate[U, V] {
	ers.NilFunction(x == nil || y == nil, "binder.MapBiPredicate")
	return BindBiPredicate(func(u U, v V) bool { return b.bound(x(u), y(v)) })
}

func MapBiPredicateFirst[U, X, Y any](b BiPredicate[X, Y], x func(U) X) BiPredicate[U, Y] {
	ers.NilFunction(x == nil, "binder.MapBiPredicateFirst")
	return BindBiPredicate(func(u U, y Y) bool { return b.bound(x(u), y) })
}

func MapBiPredicateSecond[V, X, Y any](b BiPredicate[X, Y], y func(V) Y) BiPredicate[X, V] {
	ers.NilFunction(y == nil, "binder.MapBiPredicateSecond")
	return BindBiPredicate(func(x X, v V) bool { return b.bound(x, y(v)) })
}
