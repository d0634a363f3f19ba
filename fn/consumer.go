package fn

import "github.com/tinyj/lava/ers"

// Consumer accepts a single value and returns nothing.
type Consumer[X any] func(X)

// MakeConsumer converts a function literal into a Consumer.
func MakeConsumer[X any](op func(X)) Consumer[X] { return op }

func (c Consumer[X]) Accept(x X) { c(x) }

// AndThen returns a consumer that passes each value to the base
// consumer and then to next.
func (c Consumer[X]) AndThen(next Consumer[X]) Consumer[X] {
	ers.NilFunction(next == nil, "fn.Consumer.AndThen")
	return func(x X) { c(x); next(x) }
}

// BiConsumer accepts two values and returns nothing.
type BiConsumer[X, Y any] func(X, Y)

// MakeBiConsumer converts a function literal into a BiConsumer.
func MakeBiConsumer[X, Y any](op func(X, Y)) BiConsumer[X, Y] { return op }

func (c BiConsumer[X, Y]) Accept(x X, y Y) { c(x, y) }

func (c BiConsumer[X, Y]) AndThen(next BiConsumer[X, Y]) BiConsumer[X, Y] {
	ers.NilFunction(next == nil, "fn.BiConsumer.AndThen")
	return func(x X, y Y) { c(x, y); next(x, y) }
}

// Flip returns a BiConsumer that takes the arguments in the opposite
// order.
func (c BiConsumer[X, Y]) Flip() BiConsumer[Y, X] { return func(y Y, x X) { c(x, y) } }
