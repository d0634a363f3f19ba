package binder

import (
	"github.com/tinyj/lava"
	"github.com/tinyj/lava/ers"
)

// LavaConsumer enables currying on a lava.Consumer. Linked suppliers
// and mapping functions may fail; their error is returned and the
// bound consumer is not called.
type LavaConsumer[X any] struct {
	bound lava.Consumer[X]
}

// BindLavaConsumer starts currying bound.
func BindLavaConsumer[X any](bound func(X) error) LavaConsumer[X] {
	ers.NilFunction(bound == nil, "binder.BindLavaConsumer")
	return LavaConsumer[X]{bound: bound}
}

func (b LavaConsumer[X]) Bind(x X) lava.Runnable { return func() error { return b.bound(x) } }

func (b LavaConsumer[X]) LinkTo(x lava.Supplier[X]) lava.Runnable {
	ers.NilFunction(x == nil, "binder.LavaConsumer.LinkTo")
	return func() error {
		v, err := x()
		if err != nil {
			return err
		}
		return b.bound(v)
	}
}

func (b LavaConsumer[X]) AndThen(after lava.Consumer[X]) LavaConsumer[X] {
	ers.NilFunction(after == nil, "binder.LavaConsumer.AndThen")
	return LavaConsumer[X]{bound: b.bound.AndThen(after)}
}

func (b LavaConsumer[X]) Bound() lava.Consumer[X] { return b.bound }
func (b LavaConsumer[X]) Accept(x X) error        { return b.bound(x) }

// Unchecked returns a binder whose bound consumer panics on error.
func (b LavaConsumer[X]) Unchecked() Consumer[X] { return Consumer[X]{bound: b.bound.Unchecked()} }

func MapLavaConsumer[U, X any](b LavaConsumer[X], x func(U) (X, error)) LavaConsumer[U] {
	ers.NilFunction(x == nil, "binder.MapLavaConsumer")
	return BindLavaConsumer(func(u U) error {
		v, err := x(u)
		if err != nil {
			return err
		}
		return b.bound(v)
	})
}

func MapLavaConsumer2[U, V, X any](b LavaConsumer[X], x func(U, V) (X, error)) LavaBiConsumer[U, V] {
	ers.NilFunction(x == nil, "binder.MapLavaConsumer2")
	return BindLavaBiConsumer(func(u U, v V) error {
		val, err := x(u, v)
		if err != nil {
			return err
		}
		return b.bound(val)
	})
}

// LavaBiConsumer enables currying on a lava.BiConsumer.
type LavaBiConsumer[X, Y any] struct {
	bound lava.BiConsumer[X, Y]
}

// BindLavaBiConsumer starts currying bound.
func BindLavaBiConsumer[X, Y any](bound func(X, Y) error) LavaBiConsumer[X, Y] {
	ers.NilFunction(bound == nil, "binder.BindLavaBiConsumer")
	return LavaBiConsumer[X, Y]{bound: bound}
}

func (b LavaBiConsumer[X, Y]) Flip() LavaBiConsumer[Y, X] {
	return LavaBiConsumer[Y, X]{bound: b.bound.Flip()}
}

func (b LavaBiConsumer[X, Y]) Bind(x X, y Y) lava.Runnable {
	return func() error { return b.bound(x, y) }
}

func (b LavaBiConsumer[X, Y]) BindFirst(x X) LavaConsumer[Y] {
	return LavaConsumer[Y]{bound: func(y Y) error { return b.bound(x, y) }}
}

func (b LavaBiConsumer[X, Y]) BindSecond(y Y) LavaConsumer[X] {
	return LavaConsumer[X]{bound: func(x X) error { return b.bound(x, y) }}
}

// Link returns a Runnable that calls x, then y, then the bound
// consumer. The first error stops the chain.
func (b LavaBiConsumer[X, Y]) Link(x lava.Supplier[X], y lava.Supplier[Y]) lava.Runnable {
	ers.NilFunction(x == nil || y == nil, "binder.LavaBiConsumer.Link")
	return func() error {
		xv, err := x()
		if err != nil {
			return err
		}
		yv, err := y()
		if err != nil {
			return err
		}
		return b.bound(xv, yv)
	}
}

func (b LavaBiConsumer[X, Y]) LinkFirst(x lava.Supplier[X]) LavaConsumer[Y] {
	ers.NilFunction(x == nil, "binder.LavaBiConsumer.LinkFirst")
	return LavaConsumer[Y]{bound: func(y Y) error {
		xv, err := x()
		if err != nil {
			return err
		}
		return b.bound(xv, y)
	}}
}

func (b LavaBiConsumer[X, Y]) LinkSecond(y lava.Supplier[Y]) LavaConsumer[X] {
	ers.NilFunction(y == nil, "binder.LavaBiConsumer.LinkSecond")
	return LavaConsumer[X]{bound: func(x X) error {
		yv, err := y()
		if err != nil {
			return err
		}
		return b.bound(x, yv)
	}}
}

func (b LavaBiConsumer[X, Y]) AndThen(after lava.BiConsumer[X, Y]) LavaBiConsumer[X, Y] {
	ers.NilFunction(after == nil, "binder.LavaBiConsumer.AndThen")
	return LavaBiConsumer[X, Y]{bound: b.bound.AndThen(after)}
}

func (b LavaBiConsumer[X, Y]) Bound() lava.BiConsumer[X, Y] { return b.bound }
func (b LavaBiConsumer[X, Y]) Accept(x X, y Y) error        { return b.bound(x, y) }

func (b LavaBiConsumer[X, Y]) Unchecked() BiConsumer[X, Y] {
	return BiConsumer[X, Y]{bound: b.bound.Unchecked()}
}

func MapLavaBiConsumer[U, V, X, Y any](b LavaBiConsumer[X, Y], x func(U) (X, error), y func(V) (Y, error)) LavaBiConsumer[U, V] {
	ers.NilFunction(x == nil || y == nil, "binder.MapLavaBiConsumer")
	return BindLavaBiConsumer(func(u U, v V) error {
		xv, err := x(u)
		if err != nil {
			return err
		}
		yv, err := y(v)
		if err != nil {
			return err
		}
		return b.bound(xv, yv)
	})
}

func MapLavaBiConsumerFirst[U, X, Y any](b LavaBiConsumer[X, Y], x func(U) (X, error)) LavaBiConsumer[U, Y] {
	ers.NilFunction(x == nil, "binder.MapLavaBiConsumerFirst")
	return BindLavaBiConsumer(func(u U, y Y) error {
		xv, err := x(u)
		if err != nil {
			return err
		}
		return b.bound(xv, y)
	})
}

func MapLavaBiConsumerSecond[V, X, Y any](b LavaBiConsumer[X, Y], y func(V) (Y, error)) LavaBiConsumer[X, V] {
	ers.NilFunction(y == nil, "binder.MapLavaBiConsumerSecond")
	return BindLavaBiConsumer(func(x X, v V) error {
		yv, err := y(v)
		if err != nil {
			return err
		}
		return b.bound(x, yv)
	})
}
