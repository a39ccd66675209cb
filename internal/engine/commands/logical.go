// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/lispy/internal/common/interface/entity"
	"github.com/michaelmacinnis/lispy/internal/common/struct/env"
	"github.com/michaelmacinnis/lispy/internal/common/type/atom"
	"github.com/michaelmacinnis/lispy/internal/common/type/quoted"
	"github.com/michaelmacinnis/lispy/internal/common/validate"
	"github.com/michaelmacinnis/lispy/internal/engine/eval"
)

// The functions in this file receive their arguments quoted.

func and(r *env.T, args ...entity.I) (entity.I, error) {
	return shortCircuit(r, args, false, atom.True)
}

// ifThenElse returns the chosen branch unreduced. The caller reduces it.
func ifThenElse(r *env.T, args ...entity.I) (entity.I, error) {
	if err := validate.Variadic(args, 2, 3); err != nil {
		return nil, err
	}

	c, err := eval.Evaluate(quoted.Unwrap(args[0]), r)
	if err != nil {
		return nil, err
	}

	if Truthy(c) {
		return quoted.Unwrap(args[1]), nil
	}

	if len(args) == 3 {
		return quoted.Unwrap(args[2]), nil
	}

	return atom.Nil, nil
}

func or(r *env.T, args ...entity.I) (entity.I, error) {
	return shortCircuit(r, args, true, atom.False)
}

// shortCircuit evaluates args in order and returns the first value whose
// truth is stop. If there is none it returns the last value, or otherwise
// when there are no arguments.
func shortCircuit(r *env.T, args []entity.I, stop bool, otherwise entity.I) (entity.I, error) {
	v := otherwise

	for _, a := range args {
		var err error

		v, err = eval.Evaluate(quoted.Unwrap(a), r)
		if err != nil {
			return nil, err
		}

		if Truthy(v) == stop {
			break
		}
	}

	return v, nil
}
