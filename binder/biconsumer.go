package binder

import (
	"github.com/tinyj/lava"
	"github.com/tinyj/lava/ers"
	"github.com/tinyj/lava/fn"
)

// BiConsumer enables currying on an fn.BiConsumer.
type BiConsumer[X, Y any] struct {
	bound fn.BiConsumer[X, Y]
}

// BindBiConsumer starts currying bound.
func BindBiConsumer[X, Y any](bound func(X, Y)) BiConsumer[X, Y] {
	ers.NilFunction(bound == nil, "binder.BindBiConsumer")
	return BiConsumer[X, Y]{bound: bound}
}

// Flip swaps the arguments.
func (b BiConsumer[X, Y]) Flip() BiConsumer[Y, X] { return BiConsumer[Y, X]{bound: b.bound.Flip()} }

// Bind fixes both arguments.
func (b BiConsumer[X, Y]) Bind(x X, y Y) fn.Runnable { return func() { b.bound(x, y) } }

// BindFirst fixes the first argument.
func (b BiConsumer[X, Y]) BindFirst(x X) Consumer[Y] {
	return Consumer[Y]{bound: func(y Y) { b.bound(x, y) }}
}

// BindSecond fixes the second argument.
func (b BiConsumer[X, Y]) BindSecond(y Y) Consumer[X] {
	return Consumer[X]{bound: func(x X) { b.bound(x, y) }}
}

// Link returns a Runnable that calls x and then y on every run and
// passes the results to the bound consumer.
func (b BiConsumer[X, Y]) Link(x fn.Supplier[X], y fn.Supplier[Y]) fn.Runnable {
	ers.NilFunction(x == nil, "binder.BiConsumer.Link")
	ers.NilFunction(y == nil, "binder.BiConsumer.Link")
	return func() { b.bound(x(), y()) }
}

// LinkFirst feeds the first argument from x on every call.
func (b BiConsumer[X, Y]) LinkFirst(x fn.Supplier[X]) Consumer[Y] {
	ers.NilFunction(x == nil, "binder.BiConsumer.LinkFirst")
	return Consumer[Y]{bound: func(y Y) { b.bound(x(), y) }}
}

// LinkSecond feeds the second argument from y on every call.
func (b BiConsumer[X, Y]) LinkSecond(y fn.Supplier[Y]) Consumer[X] {
	ers.NilFunction(y == nil, "binder.BiConsumer.LinkSecond")
	return Consumer[X]{bound: func(x X) { b.bound(x, y()) }}
}

func (b BiConsumer[X, Y]) AndThen(after fn.BiConsumer[X, Y]) BiConsumer[X, Y] {
	ers.NilFunction(after == nil, "binder.BiConsumer.AndThen")
	return BiConsumer[X, Y]{bound: b.bound.AndThen(after)}
}

func (b BiConsumer[X, Y]) Bound() fn.BiConsumer[X, Y] { return b.bound }
func (b BiConsumer[X, Y]) Accept(x X, y Y)            { b.bound(x, y) }

func (b BiConsumer[X, Y]) Lava() LavaBiConsumer[X, Y] {
	return LavaBiConsumer[X, Y]{bound: lava.FromBiConsumer[X, Y](b.bound)}
}

// MapBiConsumer maps both arguments.
func MapBiConsumer[U, V, X, Y any](b BiConsumer[X, Y], x func(U) X, y func(V) Y) BiConsumer[U, V] {
	ers.NilFunction(x == nil || y == nil, "binder.MapBiConsumer")
	return BindBiConsumer(func(u U, v V) { b.bound(x(u), y(v)) })
}

// MapBiConsumerFirst maps the first argument.
func MapBiConsumerFirst[U, X, Y any](b BiConsumer[X, Y], x func(U) X) BiConsumer[U, Y] {
	ers.NilFunction(x == nil, "binder.MapBiConsumerFirst")
	return BindBiConsumer(func(u U, y Y) { b.bound(x(u), y) })
}

// MapBiConsumerSecond maps the second argument.
func MapBiConsumerSecond[V, X, Y any](b BiConsumer[X, Y], y func(V) Y) BiConsumer[X, V] {
	ers.NilFunction(y == nil, "binder.MapBiConsumerSecond")
	return BindBiConsumer(func(x X, v V) { b.bound(x, y(v)) })
}
