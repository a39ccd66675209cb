// Released under an MIT license. See LICENSE.

package commands

import (
	"fmt"
	"log/slog"

	"github.com/michaelmacinnis/lispy/internal/common/interface/entity"
	"github.com/michaelmacinnis/lispy/internal/common/struct/env"
	"github.com/michaelmacinnis/lispy/internal/common/struct/frame"
	"github.com/michaelmacinnis/lispy/internal/common/type/atom"
	"github.com/michaelmacinnis/lispy/internal/common/type/function"
	"github.com/michaelmacinnis/lispy/internal/common/validate"
	"github.com/michaelmacinnis/lispy/internal/engine/interop"
)

// importModule binds the named values of a module, or all of them for
// :all, in the global frame.
func importModule(r *env.T, args ...entity.I) (entity.I, error) {
	if err := validate.Variadic(args, 2, -1); err != nil {
		return nil, err
	}

	name, m, err := load(r, args[0])
	if err != nil {
		return nil, err
	}

	if len(args) == 2 && args[1] == atom.New("all") {
		r.Global().Names().Merge(m)

		return atom.Nil, nil
	}

	for _, e := range args[1:] {
		a, err := validate.Atom(e)
		if err != nil {
			return nil, err
		}

		v, ok := m[a.Tag()]
		if !ok {
			return nil, fmt.Errorf("%w: %s in %s", frame.ErrUnboundName, a.Tag(), name)
		}

		r.Global().Names().Set(a.Tag(), v)
	}

	return atom.Nil, nil
}

// accessor returns an accessor for a module: (acc :name) is the value
// the module binds to name.
func accessor(r *env.T, args ...entity.I) (entity.I, error) {
	if err := validate.Arity(args, 1); err != nil {
		return nil, err
	}

	name, m, err := load(r, args[0])
	if err != nil {
		return nil, err
	}

	label := "interop<" + name + ">"

	return function.Strict(label, func(_ *env.T, args ...entity.I) (entity.I, error) {
		if err := validate.Arity(args, 1); err != nil {
			return nil, err
		}

		a, err := validate.Atom(args[0])
		if err != nil {
			return nil, err
		}

		v, ok := m[a.Tag()]
		if !ok {
			return nil, fmt.Errorf("%w: %s in %s", frame.ErrUnboundName, a.Tag(), name)
		}

		return v, nil
	}), nil
}

func load(r *env.T, e entity.I) (string, map[string]entity.I, error) {
	s, err := validate.String(e)
	if err != nil {
		return "", nil, err
	}

	l, err := interop.Lookup(s.Raw())
	if err != nil {
		return "", nil, err
	}

	slog.Info("loaded module", slog.String("name", s.Raw()))

	return s.Raw(), l(r), nil
}
