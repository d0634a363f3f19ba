package lava

import (
	"github.com/samber/mo"

	"github.com/tinyj/lava/ers"
	"github.com/tinyj/lava/fn"
)

// Predicate tests a single value, or fails.
type Predicate[X any] func(X) (bool, error)

// MakePredicate converts a function literal into a Predicate.
func MakePredicate[X any](op func(X) (bool, error)) Predicate[X] { return op }

func (p Predicate[X]) Test(x X) (bool, error) { return p(x) }

func (p Predicate[X]) Result(x X) mo.Result[bool] {
	ok, err := p(x)
	return mo.TupleToResult(ok, err)
}

// Negate returns a predicate that holds when p does not. Errors pass
// through unchanged.
func (p Predicate[X]) Negate() Predicate[X] {
	return func(x X) (bool, error) {
		ok, err := p(x)
		if err != nil {
			return false, err
		}
		return !ok, nil
	}
}

// And returns the short-circuiting conjunction of p and other. The
// first error ends the evaluation.
func (p Predicate[X]) And(other Predicate[X]) Predicate[X] {
	ers.NilFunction(other == nil, "lava.Predicate.And")
	return func(x X) (bool, error) {
		if ok, err := p(x); err != nil || !ok {
			return false, err
		}
		return other(x)
	}
}

// Or returns the short-circuiting disjunction of p and other. The
// first error ends the evaluation.
func (p Predicate[X]) Or(other Predicate[X]) Predicate[X] {
	ers.NilFunction(other == nil, "lava.Predicate.Or")
	return func(x X) (bool, error) {
		ok, err := p(x)
		switch {
		case err != nil:
			return false, err
		case ok:
			return true, nil
		default:
			return other(x)
		}
	}
}

// Unchecked returns an fn.Predicate that panics with the error.
func (p Predicate[X]) Unchecked() fn.Predicate[X] {
	ers.NilFunction(p == nil, "lava.Predicate.Unchecked")
	return func(x X) bool { ok, err := p(x); ers.Panic(err); return ok }
}

// BiPredicate tests a pair of values, or fails.
type BiPredicate[X, Y any] func(X, Y) (bool, error)

// MakeBiPredicate converts a function literal into a BiPredicate.
func MakeBiPredicate[X, Y any](op func(X, Y) (bool, error)) BiPredicate[X, Y] { return op }

// Relation is MakeBiPredicate for predicates over two values of the
// same type.
func Relation[X any](op func(X, X) (bool, error)) BiPredicate[X, X] { return op }

func (p BiPredicate[X, Y]) Test(x X, y Y) (bool, error) { return p(x, y) }

func (p BiPredicate[X, Y]) Result(x X, y Y) mo.Result[bool] {
	ok, err := p(x, y)
	return mo.TupleToResult(ok, err)
}

func (p BiPredicate[X, Y]) Negate() BiPredicate[X, Y] {
	return func(x X, y Y) (bool, error) {
		ok, err := p(x, y)
		if err != nil {
			return false, err
		}
		return !ok, nil
	}
}

func (p BiPredicate[X, Y]) And(other BiPredicate[X, Y]) BiPredicate[X, Y] {
	ers.NilFunction(other == nil, "lava.BiPredicate.And")
	return func(x X, y Y) (bool, error) {
		if ok, err := p(x, y); err != nil || !ok {
			return false, err
		}
		return other(x, y)
	}
}

func (p BiPredicate[X, Y]) Or(other BiPredicate[X, Y]) BiPredicate[X, Y] {
	ers.NilFunction(other == nil, "lava.BiPredicate.Or")
	return func(x X, y Y) (bool, error) {
		ok, err := p(x, y)
		switch {
		case err != nil:
			return false, err
		case ok:
			return true, nil
		default:
			return other(x, y)
		}
	}
}

// Flip returns a BiPredicate that takes the arguments in the opposite
// order.
func (p BiPredicate[X, Y]) Flip() BiPredicate[Y, X] {
	return func(y Y, x X) (bool, error) { return p(x, y) }
}

func (p BiPredicate[X, Y]) Unchecked() fn.BiPredicate[X, Y] {
	ers.NilFunction(p == nil, "lava.BiPredicate.Unchecked")
	return func(x X, y Y) bool { ok, err := p(x, y); ers.Panic(err); return ok }
}
