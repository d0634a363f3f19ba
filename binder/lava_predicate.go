package binder

import (
	"github.com/tinyj/lava"
	"github.com/tinyj/lava/ers"
)

// LavaPredicate enables currying on a lava.Predicate.
type LavaPredicate[X any] struct {
	bound lava.Predicate[X]
}

// BindLavaPredicate starts currying bound.
func BindLavaPredicate[X any](bound func(X) (bool, error)) LavaPredicate[X] {
	ers.NilFunction(bound == nil, "binder.BindLavaPredicate")
	return LavaPredicate[X]{bound: bound}
}

func (b LavaPredicate[X]) Bind(x X) lava.Condition {
	return func() (bool, error) { return b.bound(x) }
}

func (b LavaPredicate[X]) LinkTo(x lava.Supplier[X]) lava.Condition {
	ers.NilFunction(x == nil, "binder.LavaPredicate.LinkTo")
	return func() (bool, error) {
		v, err := x()
		if err != nil {
			return false, err
		}
		return b.bound(v)
	}
}

func (b LavaPredicate[X]) Negate() LavaPredicate[X] { return LavaPredicate[X]{bound: b.bound.Negate()} }
func (b LavaPredicate[X]) Bound() lava.Predicate[X] { return b.bound }
func (b LavaPredicate[X]) Test(x X) (bool, error)   { return b.bound(x) }
func (b LavaPredicate[X]) Unchecked() Predicate[X]  { return Predicate[X]{bound: b.bound.Unchecked()} }

func MapLavaPredicate[U, X any](b LavaPredicate[X], x func(U) (X, error)) LavaPredicate[U] {
	ers.NilFunction(x == nil, "binder.MapLavaPredicate")
	return LavaPredicate[U]{bound: func(u U) (bool, error) {
		v, err := x(u)
		if err != nil {
			return false, err
		}
		return b.bound(v)
	}}
}

func MapLavaPredicate2[U, V, X any](b LavaPredicate[X], x func(U, V) (X, error)) LavaBiPredicate[U, V] {
	ers.NilFunction(x == nil, "binder.MapLavaPredicate2")
	return LavaBiPredicate[U, V]{bound: func(u U, v V) (bool, error) {
		val, err := x(u, v)
		if err != nil {
			return false, err
		}
		return b.bound(val)
	}}
}

// LavaTestFirst lifts the predicate to a LavaBiPredicate that tests
// only its first argument.
func LavaTestFirst[X, Y any](b LavaPredicate[X]) LavaBiPredicate[X, Y] {
	return LavaBiPredicate[X, Y]{bound: func(x X, _ Y) (bool, error) { return b.bound(x) }}
}

// LavaTestSecond lifts the predicate to a LavaBiPredicate that tests
// only its second argument.
func LavaTestSecond[X, Y any](b LavaPredicate[Y]) LavaBiPredicate[X, Y] {
	return LavaBiPredicate[X, Y]{bound: func(_ X, y Y) (bool, error) { return b.bound(y) }}
}

// LavaBiPredicate enables currying on a lava.BiPredicate.
type LavaBiPredicate[X, Y any] struct {
	bound lava.BiPredicate[X, Y]
}

// BindLavaBiPredicate starts currying bound.
func BindLavaBiPredicate[X, Y any](bound func(X, Y) (bool, error)) LavaBiPredicate[X, Y] {
	ers.NilFunction(bound == nil, "binder.BindLavaBiPredicate")
	return LavaBiPredicate[X, Y]{bound: bound}
}

func (b LavaBiPredicate[X, Y]) Flip() LavaBiPredicate[Y, X] {
	return LavaBiPredicate[Y, X]{bound: b.bound.Flip()}
}

func (b LavaBiPredicate[X, Y]) Bind(x X, y Y) lava.Condition {
	return func() (bool, error) { return b.bound(x, y) }
}

func (b LavaBiPredicate[X, Y]) BindFirst(x X) LavaPredicate[Y] {
	return LavaPredicate[Y]{bound: func(y Y) (bool, error) { return b.bound(x, y) }}
}

func (b LavaBiPredicate[X, Y]) BindSecond(y Y) LavaPredicate[X] {
	return LavaPredicate[X]{bound: func(x X) (bool, error) { return b.bound(x, y) }}
}

// Link returns a Condition that calls x, then y, then the bound
// predicate. The first error stops the chain.
func (b LavaBiPredicate[X, Y]) Link(x lava.Supplier[X], y lava.Supplier[Y]) lava.Condition {
	ers.NilFunction(x == nil || y == nil, "binder.LavaBiPredicate.Link")
	return func() (bool, error) {
		xv, err := x()
		if err != nil {
			return false, err
		}
		yv, err := y()
		if err != nil {
			return false, err
		}
		return b.bound(xv, yv)
	}
}

func (b LavaBiPredicate[X, Y]) LinkFirst(x lava.Supplier[X]) LavaPredicate[Y] {
	ers.NilFunction(x == nil, "binder.LavaBiPredicate.LinkFirst")
	return LavaPredicate[Y]{bound: func(y Y) (bool, error) {
		xv, err := x()
		if err != nil {
			return false, err
		}
		return b.bound(xv, y)
	}}
}

func (b LavaBiPredicate[X, Y]) LinkSecond(y lava.Supplier[Y]) LavaPredicate[X] {
	ers.NilFunction(y == nil, "binder.LavaBiPredicate.LinkSecond")
	return LavaPredicate[X]{bound: func(x X) (bool, error) {
		yv, err := y()
		if err != nil {
			return false, err
		}
		return b.bound(x, yv)
	}}
}

func (b LavaBiPredicate[X, Y]) Negate() LavaBiPredicate[X, Y] {
	return LavaBiPredicate[X, Y]{bound: b.bound.Negate()}
}

func (b LavaBiPredicate[X, Y]) Bound() lava.BiPredicate[X, Y] { return b.bound }
func (b LavaBiPredicate[X, Y]) Test(x X, y Y) (bool, error)   { return b.bound(x, y) }

func (b LavaBiPredicate[X, Y]) Unchecked() BiPredicate[X, Y] {
	return BiPredicate[X, Y]{bound: b.bound.Unchecked()}
}

func MapLavaBiPredicate[U, V, X, Y any](b LavaBiPredicate[X, Y], x func(U) (X, error), y func(V) (Y, error)) LavaBiPredicate[U, V] {
	ers.NilFunction(x == nil || y == nil, "binder.MapLavaBiPredicate")
	return LavaBiPredicate[U, V]{bound: func(u U, v V) (bool, error) {
		xv, err := x(u)
		if err != nil {
			return false, err
		}
		yv, err := y(v)
		if err != nil {
			return false, err
		}
		return b.bound(xv, yv)
	}}
}

func MapLavaBiPredicateFirst[U, X, Y any](b LavaBiPredicate[X, Y], x func(U) (X, error)) LavaBiPredicate[U, Y] {
	ers.NilFunction(x == nil, "binder.MapLavaBiPredicateFirst")
	return LavaBiPredicate[U, Y]{bound: func(u U, y Y) (bool, error) {
		xv, err := x(u)
		if err != nil {
			return false, err
		}
		return b.bound(xv, y)
	}}
}

func MapLavaBiPredicateSecond[V, X, Y any](b LavaBiPredicate[X, Y], y func(V) (Y, error)) LavaBiPredicate[X, V] {
	ers.NilFunction(y == nil, "binder.MapLavaBiPredicateSecond")
	return LavaBiPredicate[X, V]{bound: func(x X, v V) (bool, error) {
		yv, err := y(v)
		if err != nil {
			return false, err
		}
		return b.bound(x, yv)
	}}
}
