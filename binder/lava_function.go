package binder

import (
	"github.com/tinyj/lava"
	"github.com/tinyj/lava/ers"
)

// LavaFunction enables currying on a lava.Function.
type LavaFunction[X, R any] struct {
	bound lava.Function[X, R]
}

// BindLavaFunction starts currying bound.
func BindLavaFunction[X, R any](bound func(X) (R, error)) LavaFunction[X, R] {
	ers.NilFunction(bound == nil, "binder.BindLavaFunction")
	return LavaFunction[X, R]{bound: bound}
}

func (b LavaFunction[X, R]) Bind(x X) lava.Supplier[R] {
	return func() (R, error) { return b.bound(x) }
}

// LinkTo returns a Supplier that calls x on every invocation. An error
// from x is returned without calling the bound function.
func (b LavaFunction[X, R]) LinkTo(x lava.Supplier[X]) lava.Supplier[R] {
	ers.NilFunction(x == nil, "binder.LavaFunction.LinkTo")
	return func() (R, error) {
		v, err := x()
		if err != nil {
			var zero R
			return zero, err
		}
		return b.bound(v)
	}
}

func (b LavaFunction[X, R]) Bound() lava.Function[X, R] { return b.bound }
func (b LavaFunction[X, R]) Apply(x X) (R, error)       { return b.bound(x) }

func (b LavaFunction[X, R]) Unchecked() Function[X, R] {
	return Function[X, R]{bound: b.bound.Unchecked()}
}

func MapLavaFunction[U, X, R any](b LavaFunction[X, R], x func(U) (X, error)) LavaFunction[U, R] {
	ers.NilFunction(x == nil, "binder.MapLavaFunction")
	return LavaFunction[U, R]{bound: lava.Compose(b.bound, lava.Function[U, X](x))}
}

func MapLavaFunction2[U, V, X, R any](b LavaFunction[X, R], x func(U, V) (X, error)) LavaBiFunction[U, V, R] {
	ers.NilFunction(x == nil, "binder.MapLavaFunction2")
	return LavaBiFunction[U, V, R]{bound: lava.BiAndThen(lava.BiFunction[U, V, X](x), b.bound)}
}

// LavaFunctionAndThen maps the result of the bound function through
// after. after is not called when the bound function fails.
func LavaFunctionAndThen[X, R, V any](b LavaFunction[X, R], after func(R) (V, error)) LavaFunction[X, V] {
	ers.NilFunction(after == nil, "binder.LavaFunctionAndThen")
	return LavaFunction[X, V]{bound: lava.AndThen(b.bound, lava.Function[R, V](after))}
}

// LavaBiFunction enables currying on a lava.BiFunction.
type LavaBiFunction[X, Y, R any] struct {
	bound lava.BiFunction[X, Y, R]
}

// BindLavaBiFunction starts currying bound.
func BindLavaBiFunction[X, Y, R any](bound func(X, Y) (R, error)) LavaBiFunction[X, Y, R] {
	ers.NilFunction(bound == nil, "binder.BindLavaBiFunction")
	return LavaBiFunction[X, Y, R]{bound: bound}
}

func (b LavaBiFunction[X, Y, R]) Flip() LavaBiFunction[Y, X, R] {
	return LavaBiFunction[Y, X, R]{bound: b.bound.Flip()}
}

func (b LavaBiFunction[X, Y, R]) Bind(x X, y Y) lava.Supplier[R] {
	return func() (R, error) { return b.bound(x, y) }
}

func (b LavaBiFunction[X, Y, R]) BindFirst(x X) LavaFunction[Y, R] {
	return LavaFunction[Y, R]{bound: func(y Y) (R, error) { return b.bound(x, y) }}
}

func (b LavaBiFunction[X, Y, R]) BindSecond(y Y) LavaFunction[X, R] {
	return LavaFunction[X, R]{bound: func(x X) (R, error) { return b.bound(x, y) }}
}

// Link returns a Supplier that calls x, then y, then the bound
// function. The first error stops the chain.
func (b LavaBiFunction[X, Y, R]) Link(x lava.Supplier[X], y lava.Supplier[Y]) lava.Supplier[R] {
	ers.NilFunction(x == nil || y == nil, "binder.LavaBiFunction.Link")
	return func() (R, error) {
		var zero R
		xv, err := x()
		if err != nil {
			return zero, err
		}
		yv, err := y()
		if err != nil {
			return zero, err
		}
		return b.bound(xv, yv)
	}
}

func (b LavaBiFunction[X, Y, R]) LinkFirst(x lava.Supplier[X]) LavaFunction[Y, R] {
	ers.NilFunction(x == nil, "binder.LavaBiFunction.LinkFirst")
	return LavaFunction[Y, R]{bound: func(y Y) (R, error) {
		xv, err := x()
		if err != nil {
			var zero R
			return zero, err
		}
		return b.bound(xv, y)
	}}
}

func (b LavaBiFunction[X, Y, R]) LinkSecond(y lava.Supplier[Y]) LavaFunction[X, R] {
	ers.NilFunction(y == nil, "binder.LavaBiFunction.LinkSecond")
	return LavaFunction[X, R]{bound: func(x X) (R, error) {
		yv, err := y()
		if err != nil {
			var zero R
			return zero, err
		}
		return b.bound(x, yv)
	}}
}

func (b LavaBiFunction[X, Y, R]) Bound() lava.BiFunction[X, Y, R] { return b.bound }
func (b LavaBiFunction[X, Y, R]) Apply(x X, y Y) (R, error)       { return b.bound(x, y) }

func (b LavaBiFunction[X, Y, R]) Unchecked() BiFunction[X, Y, R] {
	return BiFunction[X, Y, R]{bound: b.bound.Unchecked()}
}

func MapLavaBiFunction[U, V, X, Y, R any](b LavaBiFunction[X, Y, R], x func(U) (X, error), y func(V) (Y, error)) LavaBiFunction[U, V, R] {
	ers.NilFunction(x == nil || y == nil, "binder.MapLavaBiFunction")
	return LavaBiFunction[U, V, R]{bound: func(u U, v V) (R, error) {
		var zero R
		xv, err := x(u)
		if err != nil {
			return zero, err
		}
		yv, err := y(v)
		if err != nil {
			return zero, err
		}
		return b.bound(xv, yv)
	}}
}

func MapLavaBiFunctionFirst[U, X, Y, R any](b LavaBiFunction[X, Y, R], x func(U) (X, error)) LavaBiFunction[U, Y, R] {
	ers.NilFunction(x == nil, "binder.MapLavaBiFunctionFirst")
	return LavaBiFunction[U, Y, R]{bound: func(u U, y Y) (R, error) {
		xv, err := x(u)
		if err != nil {
			var zero R
			return zero, err
		}
		return b.bound(xv, y)
	}}
}

func MapLavaBiFunctionSecond[V, X, Y, R any](b LavaBiFunction[X, Y, R], y func(V) (Y, error)) LavaBiFunction[X, V, R] {
	ers.NilFunction(y == nil, "binder.MapLavaBiFunctionSecond")
	return LavaBiFunction[X, V, R]{bound: func(x X, v V) (R, error) {
		yv, err := y(v)
		if err != nil {
			var zero R
			return zero, err
		}
		return b.bound(x, yv)
	}}
}

func LavaBiFunctionAndThen[X, Y, R, V any](b LavaBiFunction[X, Y, R], after func(R) (V, error)) LavaBiFunction[X, Y, V] {
	ers.NilFunction(after == nil, "binder.LavaBiFunctionAndThen")
	return LavaBiFunction[X, Y, V]{bound: lava.BiAndThen(b.bound, lava.Function[R, V](after))}
}
