// Package lava provides the checked function shapes: function types
// that report failure through an error result rather than a panic.
// Each shape mirrors one of the unchecked shapes in the fn package,
// and values convert in both directions:
//
//	parse := lava.MakeFunction(strconv.Atoi)
//	mustParse := parse.Unchecked()        // fn.Function[string, int], panics on error
//	parse = lava.FromFunction(mustParse)  // recovers the panic as an error again
//
// Converting a checked function to an unchecked one and back yields a
// function with the same results and the same errors; the same holds
// for the opposite direction and the panics of unchecked functions.
//
// The package also provides the functor constants typed to the
// checked shapes, type-fixing constructors, arity adapters, and
// Result adapters built on github.com/samber/mo. Currying, flipping,
// and linking binders for every shape live in the binder package.
package lava

import "github.com/tinyj/lava/ers"

// ErrNilFunction is the root of the panic raised when a constructor,
// adapter, or binder receives a nil function.
const ErrNilFunction = ers.ErrNilFunction
