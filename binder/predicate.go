package binder

import (
	"github.com/tinyj/lava"
	"github.com/tinyj/lava/ers"
	"github.com/tinyj/lava/fn"
)

// Predicate enables currying on an fn.Predicate.
type Predicate[X any] struct {
	bound fn.Predicate[X]
}

// BindPredicate starts currying bound.
func BindPredicate[X any](bound func(X) bool) Predicate[X] {
	ers.NilFunction(bound == nil, "binder.BindPredicate")
	return Predicate[X]{bound: bound}
}

// Bind fixes the argument.
func (b Predicate[X]) Bind(x X) fn.Condition { return func() bool { return b.bound(x) } }

// LinkTo returns a Condition that calls x on every test and tests the
// result.
func (b Predicate[X]) LinkTo(x fn.Supplier[X]) fn.Condition {
	ers.NilFunction(x == nil, "binder.Predicate.LinkTo")
	return func() bool { return b.bound(x()) }
}

func (b Predicate[X]) Negate() Predicate[X]   { return Predicate[X]{bound: b.bound.Negate()} }
func (b Predicate[X]) Bound() fn.Predicate[X] { return b.bound }
func (b Predicate[X]) Test(x X) bool          { return b.bound(x) }
func (b Predicate[X]) Lava() LavaPredicate[X] {
	return LavaPredicate[X]{bound: lava.FromPredicate[X](b.bound)}
}

func MapPredicate[U, X any](b Predicate[X], x func(U) X) Predicate[U] {
	ers.NilFunction(x == nil, "binder.MapPredicate")
	return BindPredicate(func(u U) bool { return b.bound(x(u)) })
}

func MapPredicate2[U, V, X any](b Predicate[X], x func(U, V) X) BiPredicate[U, V] {
	ers.NilFunction(x == nil, "binder.MapPredicate2")
	return BindBiPredicate(func(u U, v V) bool { return b.bound(x(u, v)) })
}

// TestFirst lifts the predicate to a BiPredicate that tests only its
// first argument.
func TestFirst[X, Y any](b Predicate[X]) BiPredicate[X, Y] {
	return BiPredicate[X, Y]{bound: func(x X, _ Y) bool { return b.bound(x) }}
}

// TestSecond lifts the predicate to a BiPredicate that tests only its
// second argument.
func TestSecond[X, Y any](b Predicate[Y]) BiPredicate[X, Y] {
	return BiPredicate[X, Y]{bound: func(_ X, y Y) bool { return b.bound(y) }}
}
