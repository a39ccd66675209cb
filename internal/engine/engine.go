// Released under an MIT license. See LICENSE.

// Package engine provides an evaluator for parsed lispy code.
package engine

import (
	"fmt"
	"log/slog"

	"github.com/michaelmacinnis/lispy/internal/common/interface/entity"
	"github.com/michaelmacinnis/lispy/internal/common/struct/env"
	"github.com/michaelmacinnis/lispy/internal/common/type/atom"
	"github.com/michaelmacinnis/lispy/internal/engine/boot"
	"github.com/michaelmacinnis/lispy/internal/engine/commands"
	"github.com/michaelmacinnis/lispy/internal/engine/eval"
	"github.com/michaelmacinnis/lispy/internal/reader"
)

const prelude = "<boot>"

// New creates a runtime seeded with the standard library and the prelude.
func New() (*env.T, error) {
	r := env.New(commands.Builtins())

	if _, _, err := CompileAndRun(prelude, boot.Script(), r); err != nil {
		return nil, fmt.Errorf("%s: %w", prelude, err)
	}

	return r, nil
}

// CompileAndRun parses text and runs it with Run.
func CompileAndRun(label, text string, r *env.T) (entity.I, *env.T, error) {
	es, err := reader.Compile(label, text)
	if err != nil {
		return nil, r, err
	}

	return Run(es, r)
}

// Run evaluates es in order against r and returns the value of the last
// one, or :Nil if there are none. A nil r is replaced by a new runtime.
//
// Each expression is reduced as far as it can be without touching the
// runtime before the remainder is evaluated against it.
func Run(es []entity.I, r *env.T) (entity.I, *env.T, error) {
	if r == nil {
		var err error

		r, err = New()
		if err != nil {
			return nil, nil, err
		}
	}

	v := atom.Nil

	for _, e := range es {
		slog.Debug("evaluating", slog.String("expression", e.String()))

		status, next, err := eval.EvaluateWhileThreadsafe(e, r)
		if err != nil {
			return nil, r, err
		}

		if status == eval.Partial {
			next, err = eval.Evaluate(next, r)
			if err != nil {
				return nil, r, err
			}
		}

		v = next
	}

	return v, r, nil
}
