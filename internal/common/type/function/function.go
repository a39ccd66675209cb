// Released under an MIT license. See LICENSE.

// Package function provides lispy's callable type, used for both native
// builtins and user-defined closures.
package function

import (
	"github.com/michaelmacinnis/lispy/internal/common/interface/entity"
	"github.com/michaelmacinnis/lispy/internal/common/struct/env"
	"github.com/michaelmacinnis/lispy/internal/common/struct/frame"
)

const name = "function"

// Fn is the signature of everything callable from lispy.
type Fn func(r *env.T, args ...entity.I) (entity.I, error)

// T (function) is a named routine with an optional captured frame.
type T struct {
	closure *frame.T
	fn      Fn
	lazy    bool
	name    string
}

type function = T

// Closure creates a function that runs with the frame c pushed.
func Closure(name string, c *frame.T, lazy bool, fn Fn) entity.I {
	return &function{closure: c, fn: fn, lazy: lazy, name: name}
}

// Native creates a function with no captured frame.
func Native(name string, lazy bool, fn Fn) entity.I {
	return &function{fn: fn, lazy: lazy, name: name}
}

// Strict is shorthand for a native function with evaluated arguments.
func Strict(name string, fn Fn) entity.I {
	return Native(name, false, fn)
}

// Lazy is shorthand for a native function with quoted arguments.
func Lazy(name string, fn Fn) entity.I {
	return Native(name, true, fn)
}

// Callable returns the function's underlying routine.
func (f *function) Callable() Fn {
	return f.fn
}

// Captured returns the frame captured at definition, or nil.
func (f *function) Captured() *frame.T {
	return f.closure
}

// Equal returns true if e is the same function as f.
func (f *function) Equal(e entity.I) bool {
	p, ok := e.(*function)

	return ok && p == f
}

// Identifier returns the name the function was created with.
func (f *function) Identifier() string {
	return f.name
}

// Lazy returns true if arguments are passed to f unevaluated.
func (f *function) Lazy() bool {
	return f.lazy
}

// Name returns the type name for function.
func (f *function) Name() string {
	return name
}

// Rename returns a copy of f with a new name.
func (f *function) Rename(n string) entity.I {
	c := *f
	c.name = n

	return &c
}

// String returns the printed representation of f.
func (f *function) String() string {
	return "<fun(" + f.name + ")>"
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t function

	// The function type is an entity.
	_ = entity.I(&t)
}
