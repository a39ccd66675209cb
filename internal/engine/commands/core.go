// Released under an MIT license. See LICENSE.

package commands

import (
	"fmt"

	"github.com/michaelmacinnis/lispy/internal/common/interface/entity"
	"github.com/michaelmacinnis/lispy/internal/common/struct/env"
	"github.com/michaelmacinnis/lispy/internal/common/type/atom"
	"github.com/michaelmacinnis/lispy/internal/common/type/function"
	"github.com/michaelmacinnis/lispy/internal/common/type/quoted"
	"github.com/michaelmacinnis/lispy/internal/common/validate"
	"github.com/michaelmacinnis/lispy/internal/engine/eval"
)

// Anonymous is the name given to functions created by fun and syntax.
const Anonymous = "lambda"

// Define binds k to v in the global frame of r. An anonymous function
// takes k as its name.
func Define(r *env.T, k string, v entity.I) error {
	if f, ok := v.(*function.T); ok && f.Identifier() == Anonymous {
		v = f.Rename(k)
	}

	c := r.Current()

	return c.Insert(k, v, c.Depth())
}

func define(r *env.T, args ...entity.I) (entity.I, error) {
	if err := validate.Arity(args, 2); err != nil {
		return nil, err
	}

	k, err := validate.Identifier(args[0])
	if err != nil {
		return nil, err
	}

	v, err := eval.Evaluate(quoted.Unwrap(args[1]), r)
	if err != nil {
		return nil, err
	}

	if err := Define(r, k, v); err != nil {
		return nil, err
	}

	return v, nil
}

func defsyntax(r *env.T, args ...entity.I) (entity.I, error) {
	return named(r, args, true)
}

func defun(r *env.T, args ...entity.I) (entity.I, error) {
	return named(r, args, false)
}

func evaluate(r *env.T, args ...entity.I) (entity.I, error) {
	if err := validate.Arity(args, 1); err != nil {
		return nil, err
	}

	return eval.Evaluate(quoted.Unwrap(args[0]), r)
}

func fun(r *env.T, args ...entity.I) (entity.I, error) {
	return anonymous(r, args, false)
}

// loop calls f with the state until f returns [:return v].
// A result of [:next s...] replaces the state with s.
func loop(r *env.T, args ...entity.I) (entity.I, error) {
	if err := validate.Arity(args, 2); err != nil {
		return nil, err
	}

	state, err := validate.Vector(args[0])
	if err != nil {
		return nil, err
	}

	f, err := validate.Function(args[1])
	if err != nil {
		return nil, err
	}

	es := state.Elements()

	for {
		v, err := eval.Call(r, f, es...)
		if err != nil {
			return nil, err
		}

		tag, rest, err := directive(v)
		if err != nil {
			return nil, err
		}

		switch tag {
		case "next":
			es = rest
		case "return":
			if len(rest) != 1 {
				return nil, fmt.Errorf("%w: :return takes 1 value, got %d",
					validate.ErrArityMismatch, len(rest))
			}

			return rest[0], nil
		default:
			return nil, fmt.Errorf("%w: expected :next or :return, got :%s",
				validate.ErrTypeMismatch, tag)
		}
	}
}

func syntax(r *env.T, args ...entity.I) (entity.I, error) {
	return anonymous(r, args, true)
}

func anonymous(r *env.T, args []entity.I, lazy bool) (entity.I, error) {
	if err := validate.Arity(args, 2); err != nil {
		return nil, err
	}

	params, err := validate.Identifiers(args[0])
	if err != nil {
		return nil, err
	}

	return eval.CreateFunction(r, Anonymous, params, quoted.Unwrap(args[1]), lazy), nil
}

func directive(v entity.I) (string, []entity.I, error) {
	l, err := validate.Vector(v)
	if err == nil && l.Len() > 0 {
		var a *atom.T

		es := l.Elements()

		a, err = validate.Atom(es[0])
		if err == nil {
			return a.Tag(), es[1:], nil
		}
	}

	return "", nil, fmt.Errorf("%w: loop expected [:next ...] or [:return v], got %s",
		validate.ErrTypeMismatch, v)
}

func named(r *env.T, args []entity.I, lazy bool) (entity.I, error) {
	if err := validate.Arity(args, 3); err != nil {
		return nil, err
	}

	k, err := validate.Identifier(args[0])
	if err != nil {
		return nil, err
	}

	params, err := validate.Identifiers(args[1])
	if err != nil {
		return nil, err
	}

	f := eval.CreateFunction(r, k, params, quoted.Unwrap(args[2]), lazy)

	if err := Define(r, k, f); err != nil {
		return nil, err
	}

	return f, nil
}
