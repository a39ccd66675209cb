// Released under an MIT license. See LICENSE.

// Package eval reduces lispy entities to normal form.
//
// Reduction is a sequence of local rewrites. Compute performs exactly one
// rewrite and reports whether anything changed; Evaluate repeats it until
// nothing does. EvaluateWhileThreadsafe does the same but stops before any
// step that would read or write the runtime's frames.
package eval

import (
	"errors"
	"fmt"

	"github.com/michaelmacinnis/lispy/internal/common/interface/entity"
	"github.com/michaelmacinnis/lispy/internal/common/struct/env"
	"github.com/michaelmacinnis/lispy/internal/common/type/function"
	"github.com/michaelmacinnis/lispy/internal/common/type/sexpr"
	"github.com/michaelmacinnis/lispy/internal/common/type/sigil"
	"github.com/michaelmacinnis/lispy/internal/common/type/str"
	"github.com/michaelmacinnis/lispy/internal/common/type/sym"
	"github.com/michaelmacinnis/lispy/internal/common/type/vector"
)

// ErrNotCallable is returned when the head of an application is not a function.
var ErrNotCallable = errors.New("not callable") //nolint:gochecknoglobals

// Status reports how far EvaluateWhileThreadsafe got.
type Status int

// Evaluation statuses.
const (
	// Full means the entity reached normal form.
	Full Status = iota

	// Partial means reduction stopped before a thread-unsafe step.
	Partial
)

func (s Status) String() string {
	if s == Full {
		return "full"
	}

	return "partial"
}

// Compute performs one reduction step on e. When changed is false, next is
// e itself and e is in normal form.
func Compute(e entity.I, r *env.T) (next entity.I, changed bool, err error) {
	switch e := e.(type) {
	case *sym.T:
		v, err := r.Lookup(e.Identifier())
		if err != nil {
			if at := e.Source(); at != nil {
				err = fmt.Errorf("%s: %w", at, err)
			}

			return nil, false, err
		}

		return v, true, nil

	case *sexpr.T:
		v, err := apply(e, r)
		if err != nil {
			return nil, false, err
		}

		return v, true, nil

	case *vector.T:
		return step(e, r)

	case *sigil.T:
		return sexpr.New(sym.New(e.Function()), str.New(e.Text())), true, nil
	}

	// Integers, strings, atoms, functions, quoted entities and values
	// defined by interop modules are already in normal form.
	return e, false, nil
}

// Evaluate reduces e until it reaches normal form.
func Evaluate(e entity.I, r *env.T) (entity.I, error) {
	for {
		next, changed, err := Compute(e, r)
		if err != nil {
			return nil, err
		}

		if !changed {
			return e, nil
		}

		e = next
	}
}

// EvaluateWhileThreadsafe reduces e until it reaches normal form or until
// the next step would touch shared state. The entity reached is returned
// in either case.
func EvaluateWhileThreadsafe(e entity.I, r *env.T) (Status, entity.I, error) {
	for {
		if !Threadsafe(e) {
			return Partial, e, nil
		}

		next, changed, err := Compute(e, r)
		if err != nil {
			return Partial, e, err
		}

		if !changed {
			return Full, e, nil
		}

		e = next
	}
}

// Threadsafe reports whether reducing e can proceed without reading or
// writing the runtime. Names and applications are never safe. A vector is
// safe when all of its elements are.
func Threadsafe(e entity.I) bool {
	switch e := e.(type) {
	case *sym.T, *sexpr.T:
		return false
	case *vector.T:
		for _, c := range e.Elements() {
			if !Threadsafe(c) {
				return false
			}
		}
	}

	return true
}

func apply(s *sexpr.T, r *env.T) (entity.I, error) {
	head, err := Evaluate(s.Op(), r)
	if err != nil {
		return nil, err
	}

	f, ok := head.(*function.T)
	if !ok {
		return nil, fmt.Errorf("%w: %s (%s)", ErrNotCallable, head, head.Name())
	}

	return Call(r, f, s.Args()...)
}

// step advances every element of v by one reduction step, in order.
func step(v *vector.T, r *env.T) (entity.I, bool, error) {
	if v.Done() {
		return v, false, nil
	}

	es := v.Elements()
	next := make([]entity.I, len(es))
	computed := 0

	for i, e := range es {
		n, changed, err := Compute(e, r)
		if err != nil {
			return nil, false, err
		}

		if !changed {
			computed++
		}

		next[i] = n
	}

	if computed == len(es) {
		return v, false, nil
	}

	return vector.Computed(computed, next...), true, nil
}
