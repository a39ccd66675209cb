// Released under an MIT license. See LICENSE.

/*
Lispy is a small homoiconic language in the Lisp family. Programs are
trees of values that double as data and are run by rewriting them,
step by step, until nothing changes:

	(defun factorial [n]
	    (loop [1 n]
	        (fun [acc x]
	            (if x
	                [:next (* acc x) (- x 1)]
	                [:return acc]))))

	(factorial 10)

Run a script with "lispy run FILE" or start a REPL with "lispy".
*/
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/michaelmacinnis/lispy/internal/common/struct/env"
	"github.com/michaelmacinnis/lispy/internal/engine"
	"github.com/michaelmacinnis/lispy/internal/engine/commands"
	"github.com/michaelmacinnis/lispy/internal/system/options"
	"github.com/michaelmacinnis/lispy/internal/system/snapshot"
	"github.com/michaelmacinnis/lispy/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "lispy: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := options.Parse(); err != nil {
		return err
	}

	done, err := logging(options.LogLevel(), options.LogFile())
	if err != nil {
		return err
	}
	defer done()

	r, err := engine.New()
	if err != nil {
		return err
	}

	for _, path := range options.Prelude() {
		if err := source(path, r); err != nil {
			return err
		}
	}

	if err := restore(options.Load(), r); err != nil {
		return err
	}

	switch options.Mode() {
	case options.Run:
		err = source(options.File(), r)
	case options.RunRepl:
		err = source(options.File(), r)
		if err == nil {
			err = repl(r)
		}
	default:
		err = repl(r)
	}

	if errors.Is(err, commands.ErrQuit) {
		err = nil
	}

	if err != nil {
		return err
	}

	return save(options.Save(), r)
}

// level maps a level name to a slog level. The none level is reported as false.
func level(name string) (slog.Level, bool, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, true, nil
	case "info":
		return slog.LevelInfo, true, nil
	case "warn":
		return slog.LevelWarn, true, nil
	case "error":
		return slog.LevelError, true, nil
	case "none", "":
		return 0, false, nil
	}

	return 0, false, fmt.Errorf("unknown log level %q", name)
}

// logging installs the default logger and returns a function that
// releases its resources.
func logging(name, path string) (func(), error) {
	l, enabled, err := level(name)
	if err != nil {
		return nil, err
	}

	var w io.Writer = os.Stderr

	done := func() {}

	switch {
	case !enabled:
		w = io.Discard
	case path != "":
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, err
		}

		w = f
		done = func() { _ = f.Close() }
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l})))

	return done, nil
}

func repl(r *env.T) error {
	if options.Interactive() {
		return ui.Interactive(r, options.History())
	}

	return ui.Batch(r, os.Stdin, os.Stdout)
}

// restore loads a snapshot into r. A missing snapshot is skipped.
func restore(path string, r *env.T) error {
	if path == "" {
		return nil
	}

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Warn("no snapshot to restore", slog.String("path", path))

		return nil
	} else if err != nil {
		return err
	}
	defer f.Close()

	slog.Info("restoring snapshot", slog.String("path", path))

	return snapshot.Restore(f, r)
}

func save(path string, r *env.T) error {
	if path == "" {
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := snapshot.Save(f, r); err != nil {
		_ = f.Close()

		return err
	}

	slog.Info("saved snapshot", slog.String("path", path))

	return f.Close()
}

func source(path string, r *env.T) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	_, _, err = engine.CompileAndRun(path, string(b), r)

	return err
}
