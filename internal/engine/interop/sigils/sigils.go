// Released under an MIT license. See LICENSE.

// Package sigils provides string templates for the ~% and ~f sigils.
package sigils

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/michaelmacinnis/lispy/internal/common/interface/entity"
	"github.com/michaelmacinnis/lispy/internal/common/struct/env"
	"github.com/michaelmacinnis/lispy/internal/common/type/atom"
	"github.com/michaelmacinnis/lispy/internal/common/type/function"
	"github.com/michaelmacinnis/lispy/internal/common/type/sexpr"
	"github.com/michaelmacinnis/lispy/internal/common/type/str"
	"github.com/michaelmacinnis/lispy/internal/common/type/sym"
	"github.com/michaelmacinnis/lispy/internal/common/type/vector"
	"github.com/michaelmacinnis/lispy/internal/common/validate"
	"github.com/michaelmacinnis/lispy/internal/engine/eval"
)

// ErrMissingKey is returned when a named template finds no value for a name.
var ErrMissingKey = errors.New("missing key") //nolint:gochecknoglobals

var named = regexp.MustCompile(`%\(([^{}]+?)\)`) //nolint:gochecknoglobals

// Interop returns the sigils module.
func Interop(_ *env.T) map[string]entity.I {
	return map[string]entity.I{
		"sigil<%>": function.Strict("sigil<%>", positional),
		"sigil<f>": function.Strict("sigil<f>", keyword),
	}
}

// Placeholders returns the offsets of each lone % in s. A % next to
// another % is literal.
func Placeholders(s string) []int {
	var at []int

	for i := 0; i < len(s); i++ {
		if s[i] != '%' {
			continue
		}

		if (i > 0 && s[i-1] == '%') || (i+1 < len(s) && s[i+1] == '%') {
			continue
		}

		at = append(at, i)
	}

	return at
}

// format returns the text of (format e) evaluated in r.
func format(r *env.T, e entity.I) (string, error) {
	v, err := eval.Evaluate(sexpr.New(sym.New("format"), e), r)
	if err != nil {
		return "", err
	}

	s, err := validate.String(v)
	if err != nil {
		return "", err
	}

	return s.Raw(), nil
}

// keyword returns a function that fills each %(name) in the template with
// the value found for :name. Values come from a [:key value ...] vector or
// from calling a function with the key.
func keyword(_ *env.T, args ...entity.I) (entity.I, error) {
	if err := validate.Arity(args, 1); err != nil {
		return nil, err
	}

	t, err := validate.String(args[0])
	if err != nil {
		return nil, err
	}

	template := t.Raw()
	matches := named.FindAllStringSubmatchIndex(template, -1)

	return function.Strict("sigil<f>.substitute", func(r *env.T, args ...entity.I) (entity.I, error) {
		if err := validate.Arity(args, 1); err != nil {
			return nil, err
		}

		var b strings.Builder

		prev := 0

		for _, m := range matches {
			v, err := lookup(r, args[0], template[m[2]:m[3]])
			if err != nil {
				return nil, err
			}

			s, err := format(r, v)
			if err != nil {
				return nil, err
			}

			b.WriteString(template[prev:m[0]])
			b.WriteString(s)

			prev = m[1]
		}

		b.WriteString(template[prev:])

		return str.New(b.String()), nil
	}), nil
}

func lookup(r *env.T, from entity.I, k string) (entity.I, error) {
	key := atom.New(k)

	if v, ok := from.(*vector.T); ok {
		es := v.Elements()
		for i := 0; i+1 < len(es); i += 2 {
			if es[i].Equal(key) {
				return es[i+1], nil
			}
		}

		return nil, fmt.Errorf("%w: %s in %s", ErrMissingKey, key, v)
	}

	return eval.Evaluate(sexpr.New(from, key), r)
}

// positional returns a function that fills each lone % in the template
// with the next argument.
func positional(_ *env.T, args ...entity.I) (entity.I, error) {
	if err := validate.Arity(args, 1); err != nil {
		return nil, err
	}

	t, err := validate.String(args[0])
	if err != nil {
		return nil, err
	}

	template := t.Raw()
	at := Placeholders(template)

	return function.Strict("sigil<%>.substitute", func(r *env.T, args ...entity.I) (entity.I, error) {
		if err := validate.Arity(args, len(at)); err != nil {
			return nil, fmt.Errorf("%s: %w", t, err)
		}

		var b strings.Builder

		prev := 0

		for i, offset := range at {
			s, err := format(r, args[i])
			if err != nil {
				return nil, err
			}

			b.WriteString(template[prev:offset])
			b.WriteString(s)

			prev = offset + 1
		}

		b.WriteString(template[prev:])

		return str.New(b.String()), nil
	}), nil
}
