package fn

import "github.com/tinyj/lava/ers"

// Runnable is a function without arguments or results, called only
// for its side effects.
type Runnable func()

// MakeRunnable converts a function literal into a Runnable.
func MakeRunnable(op func()) Runnable { return op }

// Run calls the function.
func (r Runnable) Run() { r() }

// AndThen returns a Runnable that runs the base function and then
// next.
func (r Runnable) AndThen(next Runnable) Runnable {
	ers.NilFunction(next == nil, "fn.Runnable.AndThen")
	return func() { r(); next() }
}

// Supplier produces a value without taking arguments.
type Supplier[R any] func() R

// MakeSupplier converts a function literal into a Supplier.
func MakeSupplier[R any](op func() R) Supplier[R] { return op }

// Get calls the supplier.
func (s Supplier[R]) Get() R { return s() }

// Condition is a supplier of booleans.
type Condition func() bool

// BooleanSupplier is another name for Condition.
type BooleanSupplier = Condition

// MakeCondition converts a function literal into a Condition.
func MakeCondition(op func() bool) Condition { return op }

// Test calls the condition.
func (c Condition) Test() bool { return c() }

// Negate returns a condition that holds when c does not.
func (c Condition) Negate() Condition { return func() bool { return !c() } }
