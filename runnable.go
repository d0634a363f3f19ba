package lava

import (
	"github.com/samber/mo"

	"github.com/tinyj/lava/ers"
	"github.com/tinyj/lava/fn"
)

// Runnable is a function without arguments that may fail.
type Runnable func() error

// MakeRunnable converts a function literal into a Runnable.
func MakeRunnable(op func() error) Runnable { return op }

// Run calls the function.
func (r Runnable) Run() error { return r() }

// AndThen returns a Runnable that runs the base function and, if it
// succeeds, next.
func (r Runnable) AndThen(next Runnable) Runnable {
	ers.NilFunction(next == nil, "lava.Runnable.AndThen")
	return func() error {
		if err := r(); err != nil {
			return err
		}
		return next()
	}
}

// Unchecked returns an fn.Runnable that panics with the error.
func (r Runnable) Unchecked() fn.Runnable {
	ers.NilFunction(r == nil, "lava.Runnable.Unchecked")
	return func() { ers.Panic(r()) }
}

// Supplier produces a value, or an error, without taking arguments.
type Supplier[R any] func() (R, error)

// MakeSupplier converts a function literal into a Supplier.
func MakeSupplier[R any](op func() (R, error)) Supplier[R] { return op }

func (s Supplier[R]) Get() (R, error) { return s() }

// Result calls the supplier and captures the outcome in a mo.Result.
func (s Supplier[R]) Result() mo.Result[R] {
	out, err := s()
	return mo.TupleToResult(out, err)
}

// Unchecked returns an fn.Supplier that panics with the error.
func (s Supplier[R]) Unchecked() fn.Supplier[R] {
	ers.NilFunction(s == nil, "lava.Supplier.Unchecked")
	return func() R { out, err := s(); ers.Panic(err); return out }
}

// Condition is a Supplier of booleans.
type Condition func() (bool, error)

// BooleanSupplier is another name for Condition.
type BooleanSupplier = Condition

// MakeCondition converts a function literal into a Condition.
func MakeCondition(op func() (bool, error)) Condition { return op }

func (c Condition) Test() (bool, error) { return c() }

// Negate returns a condition that holds when c does not. Errors pass
// through unchanged.
func (c Condition) Negate() Condition {
	return func() (bool, error) {
		ok, err := c()
		if err != nil {
			return false, err
		}
		return !ok, nil
	}
}

func (c Condition) Unchecked() fn.Condition {
	ers.NilFunction(c == nil, "lava.Condition.Unchecked")
	return func() bool { ok, err := c(); ers.Panic(err); return ok }
}
