// Released under an MIT license. See LICENSE.

package commands

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/michaelmacinnis/lispy/internal/common/interface/entity"
	"github.com/michaelmacinnis/lispy/internal/common/struct/env"
	"github.com/michaelmacinnis/lispy/internal/common/type/integer"
	"github.com/michaelmacinnis/lispy/internal/common/type/str"
	"github.com/michaelmacinnis/lispy/internal/common/type/vector"
	"github.com/michaelmacinnis/lispy/internal/common/validate"
)

// ErrIndexOutOfRange is returned by nth for an index past either end.
var ErrIndexOutOfRange = errors.New("index out of range") //nolint:gochecknoglobals

func length(_ *env.T, args ...entity.I) (entity.I, error) {
	if err := validate.Arity(args, 1); err != nil {
		return nil, err
	}

	if s, ok := args[0].(*str.T); ok {
		return integer.New(int64(utf8.RuneCountInString(s.Raw()))), nil
	}

	v, err := validate.Vector(args[0])
	if err != nil {
		return nil, err
	}

	return integer.New(int64(v.Len())), nil
}

func nth(_ *env.T, args ...entity.I) (entity.I, error) {
	if err := validate.Arity(args, 2); err != nil {
		return nil, err
	}

	v, err := validate.Vector(args[0])
	if err != nil {
		return nil, err
	}

	i, err := validate.Integer(args[1])
	if err != nil {
		return nil, err
	}

	if !i.Int().IsInt64() || i.Int().Int64() < 0 || i.Int().Int64() >= int64(v.Len()) {
		return nil, fmt.Errorf("%w: %s for %s", ErrIndexOutOfRange, i, validate.Count(v.Len(), "element", "s"))
	}

	return v.Elements()[i.Int().Int64()], nil
}

// push returns a new vector with the remaining arguments appended.
func push(_ *env.T, args ...entity.I) (entity.I, error) {
	if err := validate.Variadic(args, 1, -1); err != nil {
		return nil, err
	}

	v, err := validate.Vector(args[0])
	if err != nil {
		return nil, err
	}

	es := make([]entity.I, 0, v.Len()+len(args)-1)
	es = append(es, v.Elements()...)
	es = append(es, args[1:]...)

	return vector.New(es...), nil
}
