// Released under an MIT license. See LICENSE.

// Package sigil provides lispy's sigil string type. A sigil string is sugar
// for applying the function named sigil<tag> to its text.
package sigil

import (
	"strconv"

	"github.com/michaelmacinnis/lispy/internal/common/interface/entity"
)

const name = "sigil"

// T (sigil) is a short tag and the raw text that follows it.
type T struct {
	tag  string
	text string
}

type sigil = T

// New creates a sigil string with the tag and text.
func New(tag, text string) entity.I {
	return &sigil{tag: tag, text: text}
}

// Equal returns true if e is a sigil string with the same tag and text.
func (s *sigil) Equal(e entity.I) bool {
	if !Is(e) {
		return false
	}

	o := To(e)

	return s.tag == o.tag && s.text == o.text
}

// Function returns the name of the function that handles this sigil.
func (s *sigil) Function() string {
	return "sigil<" + s.tag + ">"
}

// Name returns the type name for sigil.
func (s *sigil) Name() string {
	return name
}

// String returns the literal representation of s.
func (s *sigil) String() string {
	return "~" + s.tag + strconv.Quote(s.text)
}

// Tag returns the sigil's tag.
func (s *sigil) Tag() string {
	return s.tag
}

// Text returns the sigil's text.
func (s *sigil) Text() string {
	return s.text
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t sigil

	// The sigil type is an entity.
	_ = entity.I(&t)
}
