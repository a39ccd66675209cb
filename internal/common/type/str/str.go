// Released under an MIT license. See LICENSE.

// Package str provides lispy's string type.
package str

import (
	"strconv"

	"github.com/michaelmacinnis/lispy/internal/common/interface/entity"
)

const name = "string"

// T (str) wraps Go's string type.
type T string

type str = T

// New creates a new str entity.
func New(v string) entity.I {
	s := str(v)

	return &s
}

// Equal returns true if the entity e wraps the same string and false otherwise.
func (s *str) Equal(e entity.I) bool {
	return Is(e) && s.Raw() == To(e).Raw()
}

// Name returns the name of the str type.
func (s *str) Name() string {
	return name
}

// Raw returns the text of the str s.
func (s *str) Raw() string {
	return string(*s)
}

// String returns the literal representation of the str s.
func (s *str) String() string {
	return strconv.Quote(string(*s))
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t str

	// The str type is an entity.
	_ = entity.I(&t)
}
