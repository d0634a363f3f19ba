package binder

import (
	"github.com/tinyj/lava"
	"github.com/tinyj/lava/ers"
	"github.com/tinyj/lava/fn"
)

// Consumer enables currying on an fn.Consumer.
type Consumer[X any] struct {
	bound fn.Consumer[X]
}

// BindConsumer starts currying bound.
func BindConsumer[X any](bound func(X)) Consumer[X] {
	ers.NilFunction(bound == nil, "binder.BindConsumer")
	return Consumer[X]{bound: bound}
}

// Bind fixes the argument.
func (b Consumer[X]) Bind(x X) fn.Runnable { return func() { b.bound(x) } }

// LinkTo returns a Runnable that calls x on every run and passes the
// result to the bound consumer.
func (b Consumer[X]) LinkTo(x fn.Supplier[X]) fn.Runnable {
	ers.NilFunction(x == nil, "binder.Consumer.LinkTo")
	return func() { b.bound(x()) }
}

func (b Consumer[X]) AndThen(after fn.Consumer[X]) Consumer[X] {
	ers.NilFunction(after == nil, "binder.Consumer.AndThen")
	return Consumer[X]{bound: b.bound.AndThen(after)}
}

// Bound returns the wrapped function.
func (b Consumer[X]) Bound() fn.Consumer[X] { return b.bound }
func (b Consumer[X]) Accept(x X)            { b.bound(x) }

// Lava returns the checked counterpart of the binder. Panics of the
// bound function become errors.
func (b Consumer[X]) Lava() LavaConsumer[X] {
	return LavaConsumer[X]{bound: lava.FromConsumer[X](b.bound)}
}

// MapConsumer maps the argument: x is called on every invocation and
// its result is passed to the bound consumer.
func MapConsumer[U, X any](b Consumer[X], x func(U) X) Consumer[U] {
	ers.NilFunction(x == nil, "binder.MapConsumer")
	return BindConsumer(func(u U) { b.bound(x(u)) })
}

// MapConsumer2 maps a pair of arguments onto the single argument of
// the bound consumer.
func MapConsumer2[U, V, X any](b Consumer[X], x func(U, V) X) BiConsumer[U, V] {
	ers.NilFunction(x == nil, "binder.MapConsumer2")
	return BindBiConsumer(func(u U, v V) { b.bound(x(u, v)) })
}
