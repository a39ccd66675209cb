// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/lispy/internal/common/interface/entity"
	"github.com/michaelmacinnis/lispy/internal/common/struct/env"
	"github.com/michaelmacinnis/lispy/internal/common/type/atom"
	"github.com/michaelmacinnis/lispy/internal/common/type/integer"
	"github.com/michaelmacinnis/lispy/internal/common/type/str"
	"github.com/michaelmacinnis/lispy/internal/common/type/vector"
	"github.com/michaelmacinnis/lispy/internal/common/validate"
)

// Truthy reports whether e counts as true. The empty string, zero, the
// empty vector, :False and :Nil are false. Everything else is true.
func Truthy(e entity.I) bool {
	switch e := e.(type) {
	case *atom.T:
		return e != atom.False && e != atom.Nil
	case *integer.T:
		return e.Sign() != 0
	case *str.T:
		return e.Raw() != ""
	case *vector.T:
		return e.Len() != 0
	}

	return true
}

func toBool(_ *env.T, args ...entity.I) (entity.I, error) {
	if err := validate.Arity(args, 1); err != nil {
		return nil, err
	}

	return atom.Bool(Truthy(args[0])), nil
}
