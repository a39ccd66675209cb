// Released under an MIT license. See LICENSE.

// Package validate checks the arguments passed to native functions.
package validate

import (
	"errors"
	"fmt"

	"github.com/michaelmacinnis/lispy/internal/common/interface/entity"
	"github.com/michaelmacinnis/lispy/internal/common/type/atom"
	"github.com/michaelmacinnis/lispy/internal/common/type/function"
	"github.com/michaelmacinnis/lispy/internal/common/type/integer"
	"github.com/michaelmacinnis/lispy/internal/common/type/quoted"
	"github.com/michaelmacinnis/lispy/internal/common/type/str"
	"github.com/michaelmacinnis/lispy/internal/common/type/sym"
	"github.com/michaelmacinnis/lispy/internal/common/type/vector"
)

//nolint:gochecknoglobals
var (
	// ErrArityMismatch is returned when a routine gets the wrong number of arguments.
	ErrArityMismatch = errors.New("arity mismatch")

	// ErrTypeMismatch is returned when an argument has the wrong variant.
	ErrTypeMismatch = errors.New("type mismatch")
)

// Arity checks that exactly expected arguments were passed.
func Arity(actual []entity.I, expected int) error {
	if len(actual) != expected {
		return fmt.Errorf("%w: expected %s, passed %d",
			ErrArityMismatch, Count(expected, "argument", "s"), len(actual))
	}

	return nil
}

// Variadic checks that between min and max arguments were passed.
// A negative max means there is no upper bound.
func Variadic(actual []entity.I, min, max int) error {
	n := len(actual)
	if n < min {
		return fmt.Errorf("%w: expected at least %s, passed %d",
			ErrArityMismatch, Count(min, "argument", "s"), n)
	}

	if max >= 0 && n > max {
		return fmt.Errorf("%w: expected at most %s, passed %d",
			ErrArityMismatch, Count(max, "argument", "s"), n)
	}

	return nil
}

// Count returns n and label, pluralized with p when n is not one.
func Count(n int, label string, p string) string {
	if n == 1 {
		p = ""
	}

	return fmt.Sprintf("%d %s%s", n, label, p)
}

// Atom returns e as an atom or a type mismatch error.
func Atom(e entity.I) (*atom.T, error) {
	if a, ok := e.(*atom.T); ok {
		return a, nil
	}

	return nil, mismatch("atom", e)
}

// Function returns e as a function or a type mismatch error.
func Function(e entity.I) (*function.T, error) {
	if f, ok := e.(*function.T); ok {
		return f, nil
	}

	return nil, mismatch("function", e)
}

// Integer returns e as an integer or a type mismatch error.
func Integer(e entity.I) (*integer.T, error) {
	if i, ok := e.(*integer.T); ok {
		return i, nil
	}

	return nil, mismatch("integer", e)
}

// Integers converts every entity in es to an integer.
func Integers(es []entity.I) ([]*integer.T, error) {
	is := make([]*integer.T, len(es))

	for n, e := range es {
		i, err := Integer(e)
		if err != nil {
			return nil, err
		}

		is[n] = i
	}

	return is, nil
}

// Identifier returns the identifier of a name, possibly quoted.
func Identifier(e entity.I) (string, error) {
	if s, ok := quoted.Unwrap(e).(*sym.T); ok {
		return s.Identifier(), nil
	}

	return "", mismatch("name", e)
}

// Identifiers returns the identifiers in a vector of names, possibly quoted.
func Identifiers(e entity.I) ([]string, error) {
	v, err := Vector(quoted.Unwrap(e))
	if err != nil {
		return nil, err
	}

	ids := make([]string, v.Len())

	for i, n := range v.Elements() {
		id, err := Identifier(n)
		if err != nil {
			return nil, err
		}

		ids[i] = id
	}

	return ids, nil
}

// String returns e as a str or a type mismatch error.
func String(e entity.I) (*str.T, error) {
	if s, ok := e.(*str.T); ok {
		return s, nil
	}

	return nil, mismatch("string", e)
}

// Vector returns e as a vector or a type mismatch error.
func Vector(e entity.I) (*vector.T, error) {
	if v, ok := e.(*vector.T); ok {
		return v, nil
	}

	return nil, mismatch("vector", e)
}

func mismatch(expected string, e entity.I) error {
	return fmt.Errorf("%w: expected %s, got %s %s", ErrTypeMismatch, expected, e.Name(), e)
}
