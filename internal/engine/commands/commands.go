// Released under an MIT license. See LICENSE.

// Package commands provides lispy's standard library.
package commands

import (
	"errors"

	"github.com/michaelmacinnis/lispy/internal/common/interface/entity"
	"github.com/michaelmacinnis/lispy/internal/common/type/function"
	"github.com/michaelmacinnis/lispy/internal/engine/interop/functools"
)

// ErrQuit is returned by quit! to end a session.
var ErrQuit = errors.New("quit") //nolint:gochecknoglobals

// Builtins returns a fresh table of the standard library's functions,
// suitable for seeding a runtime's global frame.
func Builtins() map[string]entity.I {
	m := map[string]entity.I{}

	for k, fn := range strict() {
		m[k] = function.Strict(k, fn)
	}

	for k, fn := range lazy() {
		m[k] = function.Lazy(k, fn)
	}

	return m
}

func lazy() map[string]function.Fn {
	return map[string]function.Fn{
		"and":       and,
		"define":    define,
		"defsyntax": defsyntax,
		"defun":     defun,
		"fun":       fun,
		"if":        ifThenElse,
		"or":        or,
		"syntax":    syntax,
	}
}

func strict() map[string]function.Fn {
	return map[string]function.Fn{
		"%":       mod,
		"*":       mul,
		"**":      pow,
		"+":       add,
		"-":       sub,
		"/":       div,
		"<":       lt,
		"=":       eq,
		">":       gt,
		"bool":    toBool,
		"eval":    evaluate,
		"format":  format,
		"import":  importModule,
		"interop": accessor,
		"join":    join,
		"len":     length,
		"loop":    loop,
		"map":     functools.Map,
		"neg":     neg,
		"nth":     nth,
		"print!":  printLine,
		"push":    push,
		"quit!":   quit,
		"type":    typeOf,
	}
}
