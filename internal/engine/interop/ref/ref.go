// Released under an MIT license. See LICENSE.

// Package ref provides mutable references.
package ref

import (
	"errors"
	"fmt"

	"github.com/michaelmacinnis/lispy/internal/common/interface/entity"
	"github.com/michaelmacinnis/lispy/internal/common/struct/env"
	"github.com/michaelmacinnis/lispy/internal/common/type/atom"
	"github.com/michaelmacinnis/lispy/internal/common/type/function"
	"github.com/michaelmacinnis/lispy/internal/common/validate"
	"github.com/michaelmacinnis/lispy/internal/engine/eval"
)

// ErrNotReference is returned when a reference operation gets something else.
var ErrNotReference = errors.New("not a reference") //nolint:gochecknoglobals

// Interop returns the ref module.
func Interop(_ *env.T) map[string]entity.I {
	m := map[string]entity.I{}

	for k, fn := range map[string]function.Fn{
		"change!": change,
		"get!":    get,
		"make":    makeRef,
		"set!":    set,
	} {
		m[k] = function.Strict(k, fn)
	}

	return m
}

// change replaces the referenced value with the result of calling f on it.
func change(r *env.T, args ...entity.I) (entity.I, error) {
	if err := validate.Arity(args, 2); err != nil {
		return nil, err
	}

	ref, err := toRef(args[0])
	if err != nil {
		return nil, err
	}

	f, err := validate.Function(args[1])
	if err != nil {
		return nil, err
	}

	v, err := eval.Call(r, f, ref.Get())
	if err != nil {
		return nil, err
	}

	ref.Set(v)

	return v, nil
}

func get(_ *env.T, args ...entity.I) (entity.I, error) {
	if err := validate.Arity(args, 1); err != nil {
		return nil, err
	}

	ref, err := toRef(args[0])
	if err != nil {
		return nil, err
	}

	return ref.Get(), nil
}

func makeRef(_ *env.T, args ...entity.I) (entity.I, error) {
	if err := validate.Arity(args, 1); err != nil {
		return nil, err
	}

	return New(args[0]), nil
}

func toRef(e entity.I) (*T, error) {
	if r, ok := e.(*T); ok {
		return r, nil
	}

	return nil, fmt.Errorf("%w: %s %s", ErrNotReference, e.Name(), e)
}

func set(_ *env.T, args ...entity.I) (entity.I, error) {
	if err := validate.Arity(args, 2); err != nil {
		return nil, err
	}

	ref, err := toRef(args[0])
	if err != nil {
		return nil, err
	}

	ref.Set(args[1])

	return atom.Nil, nil
}
