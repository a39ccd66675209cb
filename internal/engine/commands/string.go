// Released under an MIT license. See LICENSE.

package commands

import (
	"strings"

	"github.com/michaelmacinnis/lispy/internal/common/interface/entity"
	"github.com/michaelmacinnis/lispy/internal/common/struct/env"
	"github.com/michaelmacinnis/lispy/internal/common/type/str"
	"github.com/michaelmacinnis/lispy/internal/common/validate"
)

// Text returns the raw text of a string and the canonical text of anything else.
func Text(e entity.I) string {
	if s, ok := e.(*str.T); ok {
		return s.Raw()
	}

	return e.String()
}

func format(_ *env.T, args ...entity.I) (entity.I, error) {
	if err := validate.Arity(args, 1); err != nil {
		return nil, err
	}

	if str.Is(args[0]) {
		return args[0], nil
	}

	return str.New(Text(args[0])), nil
}

func join(_ *env.T, args ...entity.I) (entity.I, error) {
	var b strings.Builder

	for _, e := range args {
		s, err := validate.String(e)
		if err != nil {
			return nil, err
		}

		b.WriteString(s.Raw())
	}

	return str.New(b.String()), nil
}
