package lava

import (
	"github.com/tinyj/lava/ers"
	"github.com/tinyj/lava/fn"
)

// Consumer accepts a single value and may fail.
type Consumer[X any] func(X) error

// MakeConsumer converts a function literal into a Consumer.
func MakeConsumer[X any](op func(X) error) Consumer[X] { return op }

func (c Consumer[X]) Accept(x X) error { return c(x) }

// AndThen returns a consumer that passes each value to the base
// consumer and, if it succeeds, to next.
func (c Consumer[X]) AndThen(next Consumer[X]) Consumer[X] {
	ers.NilFunction(next == nil, "lava.Consumer.AndThen")
	return func(x X) error {
		if err := c(x); err != nil {
			return err
		}
		return next(x)
	}
}

// Unchecked returns an fn.Consumer that panics with the error.
func (c Consumer[X]) Unchecked() fn.Consumer[X] {
	ers.NilFunction(c == nil, "lava.Consumer.Unchecked")
	return func(x X) { ers.Panic(c(x)) }
}

// BiConsumer accepts two values and may fail.
type BiConsumer[X, Y any] func(X, Y) error

// MakeBiConsumer converts a function literal into a BiConsumer.
func MakeBiConsumer[X, Y any](op func(X, Y) error) BiConsumer[X, Y] { return op }

func (c BiConsumer[X, Y]) Accept(x X, y Y) error { return c(x, y) }

func (c BiConsumer[X, Y]) AndThen(next BiConsumer[X, Y]) BiConsumer[X, Y] {
	ers.NilFunction(next == nil, "lava.BiConsumer.AndThen")
	return func(x X, y Y) error {
		if err := c(x, y); err != nil {
			return err
		}
		return next(x, y)
	}
}

// Flip returns a BiConsumer that takes the arguments in the opposite
// order.
func (c BiConsumer[X, Y]) Flip() BiConsumer[Y, X] { return func(y Y, x X) error { return c(x, y) } }

func (c BiConsumer[X, Y]) Unchecked() fn.BiConsumer[X, Y] {
	ers.NilFunction(c == nil, "lava.BiConsumer.Unchecked")
	return func(x X, y Y) { ers.Panic(c(x, y)) }
}
