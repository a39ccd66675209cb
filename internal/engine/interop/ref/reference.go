// Released under an MIT license. See LICENSE.

package ref

import (
	"slices"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/zephyrtronium/contains"

	"github.com/michaelmacinnis/lispy/internal/common/interface/entity"
	"github.com/michaelmacinnis/lispy/internal/common/type/quoted"
	"github.com/michaelmacinnis/lispy/internal/common/type/sexpr"
	"github.com/michaelmacinnis/lispy/internal/common/type/vector"
)

const name = "reference"

var ids atomic.Uintptr //nolint:gochecknoglobals

// T (reference) is a mutable cell. It is the only entity whose value can
// change after construction, so it is the only one that can contain itself.
type T struct {
	sync.RWMutex
	id uintptr
	v  entity.I
}

type reference = T

// New creates a reference to v.
func New(v entity.I) *reference {
	return &reference{id: ids.Add(1), v: v}
}

// Equal returns true if e is the same reference as r.
func (r *reference) Equal(e entity.I) bool {
	o, ok := e.(*reference)

	return ok && o == r
}

// Get returns the referenced value.
func (r *reference) Get() entity.I {
	r.RLock()
	defer r.RUnlock()

	return r.v
}

// Name returns the type name for reference.
func (r *reference) Name() string {
	return name
}

// Set replaces the referenced value.
func (r *reference) Set(v entity.I) {
	r.Lock()
	defer r.Unlock()

	r.v = v
}

// String returns the printed form of r. A reference met again inside
// its own value is shown as (ref ...).
func (r *reference) String() string {
	var b strings.Builder

	render(&b, r, &contains.Set{}, nil)

	return b.String()
}

// UniqueID returns an identifier no other reference shares.
func (r *reference) UniqueID() uintptr {
	return r.id
}

// render writes e to b. The ids in path are the references being printed
// around e. Seen holds every reference printed so far, so only a repeat
// needs the path searched.
func render(b *strings.Builder, e entity.I, seen *contains.Set, path []uintptr) {
	switch e := e.(type) {
	case *reference:
		id := e.UniqueID()
		if !seen.Add(id) && slices.Contains(path, id) {
			b.WriteString("(ref ...)")

			return
		}

		b.WriteString("(ref ")
		render(b, e.Get(), seen, append(path, id))
		b.WriteString(")")

	case *quoted.T:
		b.WriteString("&")
		render(b, e.Inner(), seen, path)

	case *sexpr.T:
		sequence(b, "(", e.Elements(), ")", seen, path)

	case *vector.T:
		sequence(b, "[", e.Elements(), "]", seen, path)

	default:
		b.WriteString(e.String())
	}
}

func sequence(b *strings.Builder, open string, es []entity.I, close string, seen *contains.Set, path []uintptr) {
	b.WriteString(open)

	for i, e := range es {
		if i > 0 {
			b.WriteString(" ")
		}

		render(b, e, seen, path)
	}

	b.WriteString(close)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t reference

	// The reference type is an entity.
	_ = entity.I(&t)
}
