// Released under an MIT license. See LICENSE.

package eval

import (
	"fmt"
	"log/slog"

	"github.com/michaelmacinnis/lispy/internal/common/interface/entity"
	"github.com/michaelmacinnis/lispy/internal/common/struct/env"
	"github.com/michaelmacinnis/lispy/internal/common/struct/frame"
	"github.com/michaelmacinnis/lispy/internal/common/type/function"
	"github.com/michaelmacinnis/lispy/internal/common/type/quoted"
	"github.com/michaelmacinnis/lispy/internal/common/validate"
)

// Call applies f to args.
//
// Lazy functions receive each argument quoted and unreduced. Otherwise the
// arguments are evaluated left to right. A function with a captured frame
// runs with that frame pushed; the frame is popped again however the call
// ends. The value returned by f is reduced to normal form before the frame
// is popped.
func Call(r *env.T, f *function.T, args ...entity.I) (v entity.I, err error) {
	prepared := make([]entity.I, len(args))

	for i, a := range args {
		if f.Lazy() {
			prepared[i] = quoted.New(a)

			continue
		}

		prepared[i], err = Evaluate(a, r)
		if err != nil {
			return nil, err
		}
	}

	if c := f.Captured(); c != nil {
		r.Push(c)

		defer func() {
			if _, perr := r.Pop(); perr != nil && err == nil {
				err = perr
			}
		}()
	}

	v, err = invoke(r, f, prepared)
	if err != nil {
		return nil, err
	}

	return Evaluate(v, r)
}

// CreateFunction creates a user-defined function. The function captures
// the current frame of r; every call binds params to the arguments in a
// new frame whose parent is the captured frame, so scoping is lexical.
func CreateFunction(r *env.T, name string, params []string, body entity.I, lazy bool) entity.I {
	var captured *frame.T
	if r != nil {
		captured = r.Current()
	}

	return function.Closure(name, captured, lazy, func(r *env.T, args ...entity.I) (entity.I, error) {
		if err := validate.Arity(args, len(params)); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}

		names := make(map[string]entity.I, len(params))
		for i, p := range params {
			names[p] = args[i]
		}

		parent := captured
		if parent == nil {
			parent = r.Current()
		}

		r.Push(frame.New(parent, name, names))

		defer func() {
			_, _ = r.Pop()
		}()

		return Evaluate(body, r)
	})
}

// invoke runs the routine behind f. A panic in a native routine is
// converted into an error so that callers can unwind cleanly.
func invoke(r *env.T, f *function.T, args []entity.I) (v entity.I, err error) {
	defer func() {
		p := recover()
		if p == nil {
			return
		}

		slog.Debug("recovered from panic", slog.String("function", f.Identifier()), slog.Any("panic", p))

		switch p := p.(type) {
		case error:
			err = fmt.Errorf("%s: %w", f.Identifier(), p)
		default:
			err = fmt.Errorf("%s: %v", f.Identifier(), p)
		}
	}()

	return f.Callable()(r, args...)
}
