// Released under an MIT license. See LICENSE.

// Package clock provides the current time and strftime formatting.
package clock

import (
	"time"

	"gitlab.com/variadico/lctime"

	"github.com/michaelmacinnis/lispy/internal/common/interface/entity"
	"github.com/michaelmacinnis/lispy/internal/common/struct/env"
	"github.com/michaelmacinnis/lispy/internal/common/type/function"
	"github.com/michaelmacinnis/lispy/internal/common/type/integer"
	"github.com/michaelmacinnis/lispy/internal/common/type/str"
	"github.com/michaelmacinnis/lispy/internal/common/validate"
)

// Interop returns the time module.
func Interop(_ *env.T) map[string]entity.I {
	return map[string]entity.I{
		"format": function.Strict("format", format),
		"now":    function.Strict("now", now),
	}
}

// format formats the unix time in seconds as UTC using a strftime layout.
func format(_ *env.T, args ...entity.I) (entity.I, error) {
	if err := validate.Arity(args, 2); err != nil {
		return nil, err
	}

	layout, err := validate.String(args[0])
	if err != nil {
		return nil, err
	}

	seconds, err := validate.Integer(args[1])
	if err != nil {
		return nil, err
	}

	t := time.Unix(seconds.Int().Int64(), 0).UTC()

	return str.New(lctime.Strftime(layout.Raw(), t)), nil
}

func now(_ *env.T, args ...entity.I) (entity.I, error) {
	if err := validate.Arity(args, 0); err != nil {
		return nil, err
	}

	return integer.New(time.Now().Unix()), nil
}
