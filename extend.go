package lava

import "github.com/tinyj/lava/ers"

// RunnableToConsumer extends a Runnable to a Consumer that ignores
// its argument.
func RunnableToConsumer[X any](r Runnable) Consumer[X] {
	ers.NilFunction(r == nil, "lava.RunnableToConsumer")
	return func(X) error { return r() }
}

func RunnableToBiConsumer[X, Y any](r Runnable) BiConsumer[X, Y] {
	ers.NilFunction(r == nil, "lava.RunnableToBiConsumer")
	return func(X, Y) error { return r() }
}

// ConsumerToBiConsumer ignores the second argument.
func ConsumerToBiConsumer[X, Y any](c Consumer[X]) BiConsumer[X, Y] {
	ers.NilFunction(c == nil, "lava.ConsumerToBiConsumer")
	return func(x X, _ Y) error { return c(x) }
}

// SupplierToFunction extends a Supplier to a Function that ignores
// its argument.
func SupplierToFunction[X, R any](s Supplier[R]) Function[X, R] {
	ers.NilFunction(s == nil, "lava.SupplierToFunction")
	return func(X) (R, error) { return s() }
}

func SupplierToBiFunction[X, Y, R any](s Supplier[R]) BiFunction[X, Y, R] {
	ers.NilFunction(s == nil, "lava.SupplierToBiFunction")
	return func(X, Y) (R, error) { return s() }
}

// FunctionToBiFunction ignores the second argument.
func FunctionToBiFunction[X, Y, R any](f Function[X, R]) BiFunction[X, Y, R] {
	ers.NilFunction(f == nil, "lava.FunctionToBiFunction")
	return func(x X, _ Y) (R, error) { return f(x) }
}

func ConditionToPredicate[X any](c Condition) Predicate[X] {
	ers.NilFunction(c == nil, "lava.ConditionToPredicate")
	return func(X) (bool, error) { return c() }
}

func ConditionToBiPredicate[X, Y any](c Condition) BiPredicate[X, Y] {
	ers.NilFunction(c == nil, "lava.ConditionToBiPredicate")
	return func(X, Y) (bool, error) { return c() }
}

// PredicateToBiPredicate ignores the second argument.
func PredicateToBiPredicate[X, Y any](p Predicate[X]) BiPredicate[X, Y] {
	ers.NilFunction(p == nil, "lava.PredicateToBiPredicate")
	return func(x X, _ Y) (bool, error) { return p(x) }
}
