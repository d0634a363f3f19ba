package lava

import (
	"github.com/samber/mo"

	"github.com/tinyj/lava/ers"
)

// The From functions turn unchecked functions into checked ones. A
// panic in the wrapped function is recovered and returned as the
// error: error values unchanged, anything else as an
// *ers.PanicError. Calling Unchecked on the result panics with the
// original value again.

// FromRunnable returns a Runnable that reports a panic of op as its
// error.
func FromRunnable(op func()) Runnable {
	ers.NilFunction(op == nil, "lava.FromRunnable")
	return func() error { return ers.WithRecoverCall(op) }
}

func FromSupplier[R any](op func() R) Supplier[R] {
	ers.NilFunction(op == nil, "lava.FromSupplier")
	return func() (R, error) { return ers.WithRecoverDo(op) }
}

func FromCondition(op func() bool) Condition {
	ers.NilFunction(op == nil, "lava.FromCondition")
	return func() (bool, error) { return ers.WithRecoverDo(op) }
}

func FromConsumer[X any](op func(X)) Consumer[X] {
	ers.NilFunction(op == nil, "lava.FromConsumer")
	return func(x X) error { return ers.WithRecoverCall(func() { op(x) }) }
}

func FromBiConsumer[X, Y any](op func(X, Y)) BiConsumer[X, Y] {
	ers.NilFunction(op == nil, "lava.FromBiConsumer")
	return func(x X, y Y) error { return ers.WithRecoverCall(func() { op(x, y) }) }
}

// FromFunction returns a Function that reports a panic of op as its
// error, with the zero value as the result.
func FromFunction[X, R any](op func(X) R) Function[X, R] {
	ers.NilFunction(op == nil, "lava.FromFunction")
	return func(x X) (R, error) { return ers.WithRecoverDo(func() R { return op(x) }) }
}

func FromBiFunction[X, Y, R any](op func(X, Y) R) BiFunction[X, Y, R] {
	ers.NilFunction(op == nil, "lava.FromBiFunction")
	return func(x X, y Y) (R, error) { return ers.WithRecoverDo(func() R { return op(x, y) }) }
}

func FromPredicate[X any](op func(X) bool) Predicate[X] {
	ers.NilFunction(op == nil, "lava.FromPredicate")
	return func(x X) (bool, error) { return ers.WithRecoverDo(func() bool { return op(x) }) }
}

func FromBiPredicate[X, Y any](op func(X, Y) bool) BiPredicate[X, Y] {
	ers.NilFunction(op == nil, "lava.FromBiPredicate")
	return func(x X, y Y) (bool, error) { return ers.WithRecoverDo(func() bool { return op(x, y) }) }
}

// FromResult adapts a function producing a mo.Result into a Supplier.
func FromResult[R any](op func() mo.Result[R]) Supplier[R] {
	ers.NilFunction(op == nil, "lava.FromResult")
	return func() (R, error) { return op().Get() }
}
