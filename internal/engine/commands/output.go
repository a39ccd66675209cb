// Released under an MIT license. See LICENSE.

package commands

import (
	"fmt"

	"github.com/michaelmacinnis/lispy/internal/common/interface/entity"
	"github.com/michaelmacinnis/lispy/internal/common/struct/env"
	"github.com/michaelmacinnis/lispy/internal/common/type/atom"
	"github.com/michaelmacinnis/lispy/internal/common/validate"
)

func printLine(r *env.T, args ...entity.I) (entity.I, error) {
	if err := validate.Arity(args, 1); err != nil {
		return nil, err
	}

	if _, err := fmt.Fprintln(r.Output(), args[0]); err != nil {
		return nil, err
	}

	return atom.Nil, nil
}

func quit(_ *env.T, _ ...entity.I) (entity.I, error) {
	return nil, ErrQuit
}
