// Released under an MIT license. See LICENSE.

// Package loc provides the type used to track the source of tokens and names.
package loc

import (
	"strconv"
)

// T (loc) is a lexical location.
type T struct {
	Char int    // Character position (column).
	Line int    // Line number (row).
	Name string // Label for the source of this token.
}

type loc = T

// New creates a location at the start of the source labelled name.
func New(name string) *loc {
	return &loc{Char: 1, Line: 1, Name: name}
}

// Advance moves l past the rune r.
func (l *loc) Advance(r rune) {
	if r == '\n' {
		l.Line++
		l.Char = 1

		return
	}

	l.Char++
}

func (l *loc) String() string {
	return l.Name + ":" + strconv.Itoa(l.Line) + ":" + strconv.Itoa(l.Char)
}
