package fn

import "github.com/tinyj/lava/ers"

// Predicate tests a single value.
type Predicate[X any] func(X) bool

// MakePredicate converts a function literal into a Predicate.
func MakePredicate[X any](op func(X) bool) Predicate[X] { return op }

func (p Predicate[X]) Test(x X) bool { return p(x) }

// Negate returns a predicate that holds when p does not.
func (p Predicate[X]) Negate() Predicate[X] { return func(x X) bool { return !p(x) } }

// And returns the short-circuiting conjunction of p and other.
func (p Predicate[X]) And(other Predicate[X]) Predicate[X] {
	ers.NilFunction(other == nil, "fn.Predicate.And")
	return func(x X) bool { return p(x) && other(x) }
}

// Or returns the short-circuiting disjunction of p and other.
func (p Predicate[X]) Or(other Predicate[X]) Predicate[X] {
	ers.NilFunction(other == nil, "fn.Predicate.Or")
	return func(x X) bool { return p(x) || other(x) }
}

// BiPredicate tests a pair of values.
type BiPredicate[X, Y any] func(X, Y) bool

// MakeBiPredicate converts a function literal into a BiPredicate.
func MakeBiPredicate[X, Y any](op func(X, Y) bool) BiPredicate[X, Y] { return op }

// Relation is MakeBiPredicate for predicates over two values of the
// same type.
func Relation[X any](op func(X, X) bool) BiPredicate[X, X] { return op }

func (p BiPredicate[X, Y]) Test(x X, y Y) bool { return p(x, y) }

func (p BiPredicate[X, Y]) Negate() BiPredicate[X, Y] { return func(x X, y Y) bool { return !p(x, y) } }

func (p BiPredicate[X, Y]) And(other BiPredicate[X, Y]) BiPredicate[X, Y] {
	ers.NilFunction(other == nil, "fn.BiPredicate.And")
	return func(x X, y Y) bool { return p(x, y) && other(x, y) }
}

func (p BiPredicate[X, Y]) Or(other BiPredicate[X, Y]) BiPredicate[X, Y] {
	ers.NilFunction(other == nil, "fn.BiPredicate.Or")
	return func(x X, y Y) bool { return p(x, y) || other(x, y) }
}

// Flip returns a BiPredicate that takes the arguments in the opposite
// order.
func (p BiPredicate[X, Y]) Flip() BiPredicate[Y, X] { return func(y Y, x X) bool { return p(x, y) } }
