// Package binder provides currying, flipping, and linking for the
// function shapes in the fn and lava packages.
//
// A binder wraps exactly one function (its bound function) and is
// itself callable with the same arguments. Its methods fix arguments
// (Bind, BindFirst, BindSecond), swap them (Flip), or feed them from
// suppliers on every call (LinkTo, Link, LinkFirst, LinkSecond):
//
//	greet := binder.BindBiFunction(func(greeting, name string) string {
//		return greeting + ", " + name
//	})
//	hello := greet.BindFirst("hello")   // binder.Function[string, string]
//	hello.Apply("gopher")               // "hello, gopher"
//	greet.Flip().Apply("gopher", "hi")  // "hi, gopher"
//
// Go methods cannot introduce type parameters, so the combinators that
// change an argument type (mapping an argument through a function, or
// mapping the result) are package-level functions: MapBiFunctionFirst,
// FunctionAndThen, TestFirst, and so on.
//
// The Lava binders wrap the checked shapes of the root lava package.
// When a linked supplier or a mapping function fails, the error is
// returned and the bound function is not called.
//
// Binders must be created with the Bind constructors, which panic with
// an error rooted in lava.ErrNilFunction when given a nil function.
package binder
