// Released under an MIT license. See LICENSE.

// Package quoted provides lispy's quoted entity type. A quoted entity is
// opaque to reduction until a consumer unwraps it.
package quoted

import (
	"github.com/michaelmacinnis/lispy/internal/common/interface/entity"
)

const name = "quoted"

// T (quoted) holds an entity that must not be reduced yet.
type T struct {
	e entity.I
}

type quoted = T

// New quotes the entity e.
func New(e entity.I) entity.I {
	return &quoted{e: e}
}

// Equal returns true if e is quoted and the quoted entities are equal.
func (q *quoted) Equal(e entity.I) bool {
	return Is(e) && entity.Equal(q.e, To(e).e)
}

// Inner returns the quoted entity.
func (q *quoted) Inner() entity.I {
	return q.e
}

// Name returns the type name for quoted.
func (q *quoted) Name() string {
	return name
}

// String returns the literal representation of q.
func (q *quoted) String() string {
	return "&" + q.e.String()
}

// Unwrap returns the inner entity if e is quoted and e otherwise.
func Unwrap(e entity.I) entity.I {
	if q, ok := e.(*quoted); ok {
		return q.e
	}

	return e
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t quoted

	// The quoted type is an entity.
	_ = entity.I(&t)
}
