// Released under an MIT license. See LICENSE.

// Package atom provides lispy's symbolic tag type.
package atom

import (
	"sync"

	"github.com/michaelmacinnis/lispy/internal/common/interface/entity"
)

const name = "atom"

// T (atom) wraps Go's string type. Atoms are interned.
type T string

type atom = T

//nolint:gochecknoglobals
var (
	False = New("False")
	Nil   = New("Nil")
	True  = New("True")

	cache  = map[string]*atom{}
	cachel = &sync.RWMutex{}
)

// New creates an atom with the tag v (without the leading colon).
func New(v string) entity.I {
	cachel.RLock()
	p, ok := cache[v]
	cachel.RUnlock()

	if ok {
		return p
	}

	cachel.Lock()
	defer cachel.Unlock()

	if p, ok = cache[v]; ok {
		return p
	}

	a := atom(v)
	p = &a
	cache[v] = p

	return p
}

// Bool returns True or False.
func Bool(b bool) entity.I {
	if b {
		return True
	}

	return False
}

// Equal returns true if e is an atom with the same tag as a.
func (a *atom) Equal(e entity.I) bool {
	return Is(e) && a.Tag() == To(e).Tag()
}

// Name returns the type name for the atom a.
func (a *atom) Name() string {
	return name
}

// String returns the literal representation of the atom a.
func (a *atom) String() string {
	return ":" + a.Tag()
}

// Tag returns the tag of the atom a without the leading colon.
func (a *atom) Tag() string {
	return string(*a)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t atom

	// The atom type is an entity.
	_ = entity.I(&t)
}
