// Released under an MIT license. See LICENSE.

// Package text provides Unicode-aware string functions.
package text

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/width"

	"github.com/michaelmacinnis/lispy/internal/common/interface/entity"
	"github.com/michaelmacinnis/lispy/internal/common/struct/env"
	"github.com/michaelmacinnis/lispy/internal/common/type/atom"
	"github.com/michaelmacinnis/lispy/internal/common/type/function"
	"github.com/michaelmacinnis/lispy/internal/common/type/str"
	"github.com/michaelmacinnis/lispy/internal/common/type/vector"
	"github.com/michaelmacinnis/lispy/internal/common/validate"
)

// Interop returns the strings module.
func Interop(_ *env.T) map[string]entity.I {
	m := map[string]entity.I{}

	for k, fn := range map[string]function.Fn{
		"contains?": contains,
		"lower":     convert(cases.Lower(language.Und).String),
		"split":     split,
		"title":     convert(cases.Title(language.Und).String),
		"upper":     convert(cases.Upper(language.Und).String),
		"width":     convert(width.Narrow.String),
	} {
		m[k] = function.Strict(k, fn)
	}

	return m
}

func contains(_ *env.T, args ...entity.I) (entity.I, error) {
	s, err := strs(args, 2)
	if err != nil {
		return nil, err
	}

	return atom.Bool(strings.Contains(s[0], s[1])), nil
}

// convert lifts a string transformation into a function of one string.
func convert(f func(string) string) function.Fn {
	return func(_ *env.T, args ...entity.I) (entity.I, error) {
		s, err := strs(args, 1)
		if err != nil {
			return nil, err
		}

		return str.New(f(s[0])), nil
	}
}

func split(_ *env.T, args ...entity.I) (entity.I, error) {
	s, err := strs(args, 2)
	if err != nil {
		return nil, err
	}

	parts := strings.Split(s[0], s[1])

	es := make([]entity.I, len(parts))
	for i, p := range parts {
		es[i] = str.New(p)
	}

	return vector.New(es...), nil
}

func strs(args []entity.I, n int) ([]string, error) {
	if err := validate.Arity(args, n); err != nil {
		return nil, err
	}

	ss := make([]string, n)

	for i, a := range args {
		s, err := validate.String(a)
		if err != nil {
			return nil, err
		}

		ss[i] = s.Raw()
	}

	return ss, nil
}
