// Released under an MIT license. See LICENSE.

// Package ui provides a command-line interface for lispy.
package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/michaelmacinnis/lispy/internal/common/interface/entity"
	"github.com/michaelmacinnis/lispy/internal/common/struct/env"
	"github.com/michaelmacinnis/lispy/internal/engine"
	"github.com/michaelmacinnis/lispy/internal/engine/commands"
	"github.com/michaelmacinnis/lispy/internal/reader"
	"github.com/michaelmacinnis/lispy/internal/system/history"
)

// Messages shown around a session.
const (
	Banner   = "[REPL]"
	Farewell = "Bye for now!"
)

const (
	continuation = ".. "
	label        = "<repl>"
	prompt       = "|> "
)

// ErrAborted is returned by a Prompter when the user abandons the current input.
var ErrAborted = errors.New("aborted") //nolint:gochecknoglobals

// Prompter returns the next line of input. It shows p first if it can.
// It returns io.EOF when there is no more input.
type Prompter func(p string) (string, error)

// Batch runs expressions read from in without prompting.
func Batch(r *env.T, in io.Reader, w io.Writer) error {
	s := bufio.NewScanner(in)

	return Loop(r, func(string) (string, error) {
		if s.Scan() {
			return s.Text(), nil
		}

		if err := s.Err(); err != nil {
			return "", err
		}

		return "", io.EOF
	}, w)
}

// Complete returns the names bound in the global frame of r that extend
// the word ending at pos in line, along with the text around that word.
func Complete(r *env.T, line string, pos int) (head string, cs []string, tail string) {
	start := strings.LastIndexAny(line[:pos], " \t,([&") + 1

	head = line[:start]
	tail = line[pos:]
	prefix := line[start:pos]

	for _, k := range r.Global().Names().Keys() {
		if strings.HasPrefix(k, prefix) {
			cs = append(cs, k)
		}
	}

	return head, cs, tail
}

// Interactive runs a line-editing session on the terminal. History is
// read from and written back to path.
func Interactive(r *env.T, path string) error {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)
	cli.SetWordCompleter(func(line string, pos int) (string, []string, string) {
		return Complete(r, line, pos)
	})

	if err := history.Load(path, cli.ReadHistory); err != nil {
		slog.Warn("cannot read history", slog.String("path", path), slog.Any("error", err))
	}

	fmt.Println(Banner)

	err := Loop(r, func(p string) (string, error) {
		line, err := cli.Prompt(p)
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", ErrAborted
		}

		if err == nil && strings.TrimSpace(line) != "" {
			cli.AppendHistory(line)
		}

		return line, err
	}, os.Stdout)

	if herr := history.Save(path, cli.WriteHistory); herr != nil {
		slog.Warn("cannot write history", slog.String("path", path), slog.Any("error", herr))
	}

	return err
}

// Loop reads lines with next until they form complete expressions, runs
// each expression against r and prints its value to w. Errors are
// printed and the loop continues. It ends at the end of input or when
// quit! is called.
func Loop(r *env.T, next Prompter, w io.Writer) error {
	pending := ""

	for {
		p := prompt
		if pending != "" {
			p = continuation
		}

		line, err := next(p)
		if errors.Is(err, ErrAborted) {
			pending = ""

			continue
		} else if errors.Is(err, io.EOF) {
			if strings.TrimSpace(pending) != "" {
				report(w, reader.ErrIncomplete)
			}

			return nil
		} else if err != nil {
			return err
		}

		pending += line + "\n"

		es, err := reader.Compile(label, pending)
		if errors.Is(err, reader.ErrIncomplete) {
			continue
		}

		pending = ""

		if err != nil {
			report(w, err)

			continue
		}

		if quit := evaluate(r, es, w); quit {
			fmt.Fprintln(w, Farewell)

			return nil
		}
	}
}

// evaluate runs es in order, printing each value, until one fails. It
// returns true if quit! was called.
func evaluate(r *env.T, es []entity.I, w io.Writer) bool {
	for _, e := range es {
		v, _, err := engine.Run([]entity.I{e}, r)
		if errors.Is(err, commands.ErrQuit) {
			return true
		} else if err != nil {
			report(w, err)

			return false
		}

		fmt.Fprintln(w, v)
	}

	return false
}

func report(w io.Writer, err error) {
	slog.Debug("evaluation failed", slog.Any("error", err))

	fmt.Fprintf(w, "error: %v\n", err)
}
