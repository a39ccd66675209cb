// Released under an MIT license. See LICENSE.

// Package env provides lispy's runtime: the global frame and the stack of
// active frames.
package env

import (
	"errors"
	"io"
	"os"

	"github.com/michaelmacinnis/lispy/internal/common/interface/entity"
	"github.com/michaelmacinnis/lispy/internal/common/struct/frame"
)

// ErrStackUnderflow is returned when popping would remove the global frame.
var ErrStackUnderflow = errors.New("stack underflow") //nolint:gochecknoglobals

// T (env) owns a global frame and the frames active above it. Only one
// call is in flight against a given env at a time.
type T struct {
	global *frame.T
	out    io.Writer
	stack  []*frame.T
}

type env = T

// New creates an env whose global frame is seeded with builtins.
func New(builtins map[string]entity.I) *env {
	g := frame.New(nil, frame.Global, builtins)

	return &env{
		global: g,
		out:    os.Stdout,
		stack:  []*frame.T{g},
	}
}

// Current returns the frame at the top of the stack.
func (e *env) Current() *frame.T {
	return e.stack[len(e.stack)-1]
}

// Depth returns the number of frames above the global frame.
func (e *env) Depth() int {
	return len(e.stack) - 1
}

// Global returns the global frame.
func (e *env) Global() *frame.T {
	return e.global
}

// Lookup resolves k starting from the current frame.
func (e *env) Lookup(k string) (entity.I, error) {
	return e.Current().Lookup(k)
}

// Output returns the writer used by printing builtins.
func (e *env) Output() io.Writer {
	return e.out
}

// Pop removes the frame at the top of the stack and returns it.
func (e *env) Pop() (*frame.T, error) {
	if len(e.stack) == 1 {
		return nil, ErrStackUnderflow
	}

	n := len(e.stack) - 1
	f := e.stack[n]

	e.stack[n] = nil
	e.stack = e.stack[:n]

	return f, nil
}

// Push makes f the current frame.
func (e *env) Push(f *frame.T) {
	e.stack = append(e.stack, f)
}

// SetOutput replaces the writer used by printing builtins.
func (e *env) SetOutput(w io.Writer) {
	e.out = w
}
