// Released under an MIT license. See LICENSE.

// Package functools provides linked lists and mapping helpers.
package functools

import (
	"errors"
	"fmt"

	"github.com/michaelmacinnis/lispy/internal/common/interface/entity"
	"github.com/michaelmacinnis/lispy/internal/common/struct/env"
	"github.com/michaelmacinnis/lispy/internal/common/type/atom"
	"github.com/michaelmacinnis/lispy/internal/common/type/function"
	"github.com/michaelmacinnis/lispy/internal/common/type/sexpr"
	"github.com/michaelmacinnis/lispy/internal/common/type/vector"
	"github.com/michaelmacinnis/lispy/internal/common/validate"
	"github.com/michaelmacinnis/lispy/internal/engine/eval"
)

// ErrNotList is returned when a linked list operation gets something else.
var ErrNotList = errors.New("not a linked list") //nolint:gochecknoglobals

// Interop returns the functools module.
func Interop(_ *env.T) map[string]entity.I {
	m := map[string]entity.I{
		"emp": Empty,
	}

	cons := function.Strict("+>", func(_ *env.T, args ...entity.I) (entity.I, error) {
		if err := validate.Arity(args, 2); err != nil {
			return nil, err
		}

		l, err := list(args[1])
		if err != nil {
			return nil, err
		}

		return New(args[0], l), nil
	})

	var lmap entity.I

	lmap = function.Strict("lmap", func(_ *env.T, args ...entity.I) (entity.I, error) {
		if err := validate.Arity(args, 2); err != nil {
			return nil, err
		}

		l, err := list(args[1])
		if err != nil {
			return nil, err
		}

		if l == Empty {
			return l, nil
		}

		return sexpr.New(cons, sexpr.New(args[0], l.Head()), sexpr.New(lmap, args[0], l.Rest())), nil
	})

	m["+>"] = cons
	m["lmap"] = lmap

	for k, fn := range map[string]function.Fn{
		"emp?":     isEmpty,
		"lforeach": foreach,
		"lhead":    head,
		"lrest":    rest,
		"map":      Map,
	} {
		m[k] = function.Strict(k, fn)
	}

	return m
}

func foreach(r *env.T, args ...entity.I) (entity.I, error) {
	if err := validate.Arity(args, 2); err != nil {
		return nil, err
	}

	f, err := validate.Function(args[0])
	if err != nil {
		return nil, err
	}

	l, err := list(args[1])
	if err != nil {
		return nil, err
	}

	for _, e := range l.Elements() {
		if _, err := eval.Call(r, f, e); err != nil {
			return nil, err
		}
	}

	return atom.Nil, nil
}

func head(_ *env.T, args ...entity.I) (entity.I, error) {
	l, err := single(args)
	if err != nil {
		return nil, err
	}

	if l == Empty {
		return atom.Nil, nil
	}

	return l.Head(), nil
}

func isEmpty(_ *env.T, args ...entity.I) (entity.I, error) {
	l, err := single(args)
	if err != nil {
		return nil, err
	}

	return atom.Bool(l == Empty), nil
}

func list(e entity.I) (*LinkedList, error) {
	if l, ok := e.(*LinkedList); ok {
		return l, nil
	}

	return nil, fmt.Errorf("%w: %s %s", ErrNotList, e.Name(), e)
}

// Map rewrites (map f [a b]) to [(f a) (f b)].
func Map(_ *env.T, args ...entity.I) (entity.I, error) {
	if err := validate.Arity(args, 2); err != nil {
		return nil, err
	}

	v, err := validate.Vector(args[1])
	if err != nil {
		return nil, err
	}

	es := make([]entity.I, v.Len())
	for i, e := range v.Elements() {
		es[i] = sexpr.New(args[0], e)
	}

	return vector.New(es...), nil
}

func rest(_ *env.T, args ...entity.I) (entity.I, error) {
	l, err := single(args)
	if err != nil {
		return nil, err
	}

	if l == Empty {
		return atom.Nil, nil
	}

	return l.Rest(), nil
}

func single(args []entity.I) (*LinkedList, error) {
	if err := validate.Arity(args, 1); err != nil {
		return nil, err
	}

	return list(args[0])
}
