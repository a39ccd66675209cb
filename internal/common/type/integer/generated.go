// Released under an MIT license. See LICENSE.

package integer

import "github.com/michaelmacinnis/lispy/internal/common/interface/entity"

// Is returns true if e is a *T.
func Is(e entity.I) bool {
	_, ok := e.(*T)

	return ok
}

// To returns a *T if e is a *T; Otherwise it panics.
func To(e entity.I) *T {
	if t, ok := e.(*T); ok {
		return t
	}

	panic(e.Name() + " used where " + name + " expected")
}
