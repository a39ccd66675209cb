// Released under an MIT license. See LICENSE.

// Package sexpr provides lispy's application type: an operator followed by
// zero or more operands.
package sexpr

import (
	"strings"

	"github.com/michaelmacinnis/lispy/internal/common/interface/entity"
)

const name = "sexpr"

// T (sexpr) is a pending application.
type T struct {
	es []entity.I
}

type sexpr = T

// New creates an application of op to args.
func New(op entity.I, args ...entity.I) entity.I {
	es := make([]entity.I, 0, len(args)+1)
	es = append(es, op)
	es = append(es, args...)

	return &sexpr{es: es}
}

// Args returns the operands. The slice must not be modified.
func (s *sexpr) Args() []entity.I {
	return s.es[1:]
}

// Elements returns the operator followed by the operands. The slice must
// not be modified.
func (s *sexpr) Elements() []entity.I {
	return s.es
}

// Equal returns true if e is an sexpr with elements equal to those of s.
func (s *sexpr) Equal(e entity.I) bool {
	return Is(e) && entity.All(s.es, To(e).es)
}

// Name returns the type name for sexpr.
func (s *sexpr) Name() string {
	return name
}

// Op returns the operator.
func (s *sexpr) Op() entity.I {
	return s.es[0]
}

// String returns the literal representation of s.
func (s *sexpr) String() string {
	parts := make([]string, len(s.es))
	for i, e := range s.es {
		parts[i] = e.String()
	}

	return "(" + strings.Join(parts, " ") + ")"
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t sexpr

	// The sexpr type is an entity.
	_ = entity.I(&t)
}
