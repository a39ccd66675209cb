// Released under an MIT license. See LICENSE.

// Package snapshot saves and restores the global definitions of a runtime
// as YAML.
package snapshot

import (
	"fmt"
	"io"
	"log/slog"

	"gopkg.in/yaml.v2"

	"github.com/michaelmacinnis/lispy/internal/common/interface/entity"
	"github.com/michaelmacinnis/lispy/internal/common/struct/env"
	"github.com/michaelmacinnis/lispy/internal/common/type/function"
	"github.com/michaelmacinnis/lispy/internal/engine/eval"
	"github.com/michaelmacinnis/lispy/internal/reader"
)

const label = "<snapshot>"

// Restore evaluates each definition read from rd into the global frame of r.
func Restore(rd io.Reader, r *env.T) error {
	b, err := io.ReadAll(rd)
	if err != nil {
		return err
	}

	var m yaml.MapSlice
	if err := yaml.Unmarshal(b, &m); err != nil {
		return err
	}

	for _, item := range m {
		k, ok := item.Key.(string)
		if !ok {
			return fmt.Errorf("%s: key %v is not a name", label, item.Key)
		}

		var text string

		switch v := item.Value.(type) {
		case string:
			text = v
		case int:
			text = fmt.Sprint(v)
		default:
			return fmt.Errorf("%s: %s: value %v is not source text", label, k, item.Value)
		}

		es, err := reader.Compile(label, text)
		if err != nil {
			return fmt.Errorf("%s: %w", k, err)
		}

		if len(es) != 1 {
			return fmt.Errorf("%s: %s: expected 1 expression, found %d", label, k, len(es))
		}

		v, err := eval.Evaluate(es[0], r)
		if err != nil {
			return fmt.Errorf("%s: %w", k, err)
		}

		if err := r.Global().Insert(k, v, 0); err != nil {
			return err
		}
	}

	return nil
}

// Save writes the global definitions of r to w in name order. Functions
// and values without a readable form are skipped.
func Save(w io.Writer, r *env.T) error {
	names := r.Global().Names()

	var m yaml.MapSlice

	for _, k := range names.Keys() {
		v, ok := names.Get(k)
		if !ok || !Readable(v) {
			slog.Debug("not saving", slog.String("name", k))

			continue
		}

		m = append(m, yaml.MapItem{Key: k, Value: v.String()})
	}

	b, err := yaml.Marshal(m)
	if err != nil {
		return err
	}

	_, err = w.Write(b)

	return err
}

// Readable returns true if reading the printed form of e gives back e.
func Readable(e entity.I) bool {
	if function.Is(e) {
		return false
	}

	es, err := reader.Compile(label, e.String())

	return err == nil && len(es) == 1 && es[0].Equal(e)
}
