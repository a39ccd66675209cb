// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/lispy/internal/common/interface/entity"
	"github.com/michaelmacinnis/lispy/internal/common/struct/env"
	"github.com/michaelmacinnis/lispy/internal/common/type/atom"
	"github.com/michaelmacinnis/lispy/internal/common/validate"
)

func eq(_ *env.T, args ...entity.I) (entity.I, error) {
	if err := validate.Variadic(args, 2, -1); err != nil {
		return nil, err
	}

	for _, e := range args[1:] {
		if !args[0].Equal(e) {
			return atom.False, nil
		}
	}

	return atom.True, nil
}

func gt(_ *env.T, args ...entity.I) (entity.I, error) {
	return ordered(args, 1)
}

func lt(_ *env.T, args ...entity.I) (entity.I, error) {
	return ordered(args, -1)
}

// ordered checks that each adjacent pair of integers compares as c.
func ordered(args []entity.I, c int) (entity.I, error) {
	if err := validate.Variadic(args, 2, -1); err != nil {
		return nil, err
	}

	is, err := validate.Integers(args)
	if err != nil {
		return nil, err
	}

	for n := 1; n < len(is); n++ {
		if is[n-1].Int().Cmp(is[n].Int()) != c {
			return atom.False, nil
		}
	}

	return atom.True, nil
}
