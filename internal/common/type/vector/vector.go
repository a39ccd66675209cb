// Released under an MIT license. See LICENSE.

// Package vector provides lispy's vector type. A vector is both data and a
// collection whose elements are reduced in lock step.
package vector

import (
	"strings"

	"github.com/michaelmacinnis/lispy/internal/common/interface/entity"
)

const name = "vector"

// T (vector) is an ordered sequence of entities.
type T struct {
	es       []entity.I
	computed int // Number of elements found at a fixpoint during the last round.
}

type vector = T

// New creates a vector of es.
func New(es ...entity.I) entity.I {
	return &vector{es: es}
}

// Computed creates a vector of es where n of the elements were found at a
// fixpoint. The count is clamped to the number of elements.
func Computed(n int, es ...entity.I) entity.I {
	if n < 0 {
		n = 0
	} else if n > len(es) {
		n = len(es)
	}

	return &vector{es: es, computed: n}
}

// Computed returns the number of elements found at a fixpoint.
func (v *vector) Computed() int {
	return v.computed
}

// Done returns true if every element was at a fixpoint during the last round.
func (v *vector) Done() bool {
	return v.computed == len(v.es)
}

// Elements returns the elements of v. The slice must not be modified.
func (v *vector) Elements() []entity.I {
	return v.es
}

// Equal returns true if e is a vector with elements equal to those of v.
// The computed count is not part of a vector's value.
func (v *vector) Equal(e entity.I) bool {
	return Is(e) && entity.All(v.es, To(e).es)
}

// Len returns the number of elements in v.
func (v *vector) Len() int {
	return len(v.es)
}

// Name returns the type name for vector.
func (v *vector) Name() string {
	return name
}

// String returns the literal representation of v.
func (v *vector) String() string {
	parts := make([]string, len(v.es))
	for i, e := range v.es {
		parts[i] = e.String()
	}

	return "[" + strings.Join(parts, " ") + "]"
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t vector

	// The vector type is an entity.
	_ = entity.I(&t)
}
