// Released under an MIT license. See LICENSE.

// Package sym provides lispy's name type: an unresolved variable reference.
package sym

import (
	"github.com/michaelmacinnis/lispy/internal/common/interface/entity"
	"github.com/michaelmacinnis/lispy/internal/common/struct/loc"
	"github.com/michaelmacinnis/lispy/internal/common/struct/token"
)

const name = "name"

// T (sym) is an identifier together with where it was read, if known.
type T struct {
	identifier string
	source     *loc.T
}

type sym = T

// New creates a sym for the identifier v.
func New(v string) entity.I {
	return &sym{identifier: v}
}

// Token creates a sym from a token, keeping its lexical location.
func Token(t *token.T) entity.I {
	return &sym{identifier: t.Value(), source: t.Source()}
}

// Equal returns true if e is a sym with the same identifier.
// Source locations are not compared.
func (s *sym) Equal(e entity.I) bool {
	return Is(e) && s.identifier == To(e).identifier
}

// Identifier returns the text of the sym s.
func (s *sym) Identifier() string {
	return s.identifier
}

// Name returns the type name for the sym s.
func (s *sym) Name() string {
	return name
}

// Source returns the lexical location for a sym that has it.
func (s *sym) Source() *loc.T {
	return s.source
}

// String returns the text of the sym s.
func (s *sym) String() string {
	return s.identifier
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t sym

	// The sym type is an entity.
	_ = entity.I(&t)
}
