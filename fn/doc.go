// Package fn provides the unchecked function shapes: named function
// types for the zero, one, and two argument forms of runnables,
// suppliers, consumers, functions, and predicates. None of these
// shapes return an error; failures propagate as panics. The checked
// counterparts live in the root lava package.
//
// Every shape is an ordinary Go function type, so a function literal
// can be used wherever a shape is expected, and the methods on each
// type provide composition without wrapping:
//
//	isEven := fn.MakePredicate(func(n int) bool { return n%2 == 0 })
//	isOddPositive := isEven.Negate().And(func(n int) bool { return n > 0 })
//
// The package also provides the functor constants typed to each shape
// (Identity, NoOp, True, ...), type-fixing constructors, and adapters
// that extend a function to a larger arity by ignoring arguments.
package fn
