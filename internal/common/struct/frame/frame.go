// Released under an MIT license. See LICENSE.

// Package frame provides lispy's scope frame type.
package frame

import (
	"errors"
	"fmt"
	"strings"

	"github.com/michaelmacinnis/lispy/internal/common/interface/entity"
	"github.com/michaelmacinnis/lispy/internal/common/struct/hash"
)

// Global is the caller label of the outermost frame.
const Global = "<global>"

//nolint:gochecknoglobals
var (
	// ErrUnboundName is returned when a name is bound nowhere in the chain.
	ErrUnboundName = errors.New("unbound name")

	// ErrInvalidDepth is returned for a negative insertion depth.
	ErrInvalidDepth = errors.New("invalid depth")

	// ErrNoSuchScope is returned when an insertion depth passes the global frame.
	ErrNoSuchScope = errors.New("no such scope")
)

// T (frame) is a lexical scope. Frames form a tree: closures defined in the
// same scope share the same parent.
type T struct {
	caller string
	depth  int
	names  *hash.T
	parent *frame
}

type frame = T

// New creates a frame whose parent is p. A nil parent creates a global frame.
func New(p *frame, caller string, names map[string]entity.I) *frame {
	f := &frame{caller: caller, names: hash.New(names), parent: p}

	if p != nil {
		f.depth = p.depth + 1
	}

	return f
}

// Caller returns the label of the routine that created f.
func (f *frame) Caller() string {
	return f.caller
}

// Depth returns the number of frames between f and the global frame.
func (f *frame) Depth() int {
	return f.depth
}

// Insert binds k to v in the frame depth levels above f.
func (f *frame) Insert(k string, v entity.I, depth int) error {
	if depth < 0 {
		return fmt.Errorf("%w: %d cannot be negative", ErrInvalidDepth, depth)
	}

	target := f
	for ; depth > 0; depth-- {
		if target.parent == nil {
			return fmt.Errorf("%w: cannot go past %s", ErrNoSuchScope, Global)
		}

		target = target.parent
	}

	target.names.Set(k, v)

	return nil
}

// Lookup retrieves the value bound to k in f or the nearest enclosing frame.
func (f *frame) Lookup(k string) (entity.I, error) {
	var trace []string

	for s := f; s != nil; s = s.parent {
		if v, ok := s.names.Get(k); ok {
			return v, nil
		}

		trace = append(trace, s.caller)
	}

	return nil, fmt.Errorf("%w: %s (searched %s)", ErrUnboundName, k, strings.Join(trace, ", "))
}

// Names returns the frame's own name table.
func (f *frame) Names() *hash.T {
	return f.names
}

// Parent returns the enclosing frame or nil for the global frame.
func (f *frame) Parent() *frame {
	return f.parent
}
