package fn

import "github.com/tinyj/lava/ers"

// RunnableToConsumer extends a Runnable to a Consumer that ignores
// its argument.
func RunnableToConsumer[X any](r Runnable) Consumer[X] {
	ers.NilFunction(r == nil, "fn.RunnableToConsumer")
	return func(X) { r() }
}

// RunnableToBiConsumer extends a Runnable to a BiConsumer that
// ignores both arguments.
func RunnableToBiConsumer[X, Y any](r Runnable) BiConsumer[X, Y] {
	ers.NilFunction(r == nil, "fn.RunnableToBiConsumer")
	return func(X, Y) { r() }
}

// ConsumerToBiConsumer ignores the second argument.
func ConsumerToBiConsumer[X, Y any](c Consumer[X]) BiConsumer[X, Y] {
	ers.NilFunction(c == nil, "fn.ConsumerToBiConsumer")
	return func(x X, _ Y) { c(x) }
}

// SupplierToFunction extends a Supplier to a Function that ignores
// its argument.
func SupplierToFunction[X, R any](s Supplier[R]) Function[X, R] {
	ers.NilFunction(s == nil, "fn.SupplierToFunction")
	return func(X) R { return s() }
}

func SupplierToBiFunction[X, Y, R any](s Supplier[R]) BiFunction[X, Y, R] {
	ers.NilFunction(s == nil, "fn.SupplierToBiFunction")
	return func(X, Y) R { return s() }
}

// FunctionToBiFunction ignores the second argument.
func FunctionToBiFunction[X, Y, R any](f Function[X, R]) BiFunction[X, Y, R] {
	ers.NilFunction(f == nil, "fn.FunctionToBiFunction")
	return func(x X, _ Y) R { return f(x) }
}

func ConditionToPredicate[X any](c Condition) Predicate[X] {
	ers.NilFunction(c == nil, "fn.ConditionToPredicate")
	return func(X) bool { return c() }
}

func ConditionToBiPredicate[X, Y any](c Condition) BiPredicate[X, Y] {
	ers.NilFunction(c == nil, "fn.ConditionToBiPredicate")
	return func(X, Y) bool { return c() }
}

// PredicateToBiPredicate ignores the second argument.
func PredicateToBiPredicate[X, Y any](p Predicate[X]) BiPredicate[X, Y] {
	ers.NilFunction(p == nil, "fn.PredicateToBiPredicate")
	return func(x X, _ Y) bool { return p(x) }
}
