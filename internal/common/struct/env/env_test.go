package env

import (
	"errors"
	"testing"

	"github.com/michaelmacinnis/lispy/internal/common/interface/entity"
	"github.com/michaelmacinnis/lispy/internal/common/struct/frame"
	"github.com/michaelmacinnis/lispy/internal/common/type/integer"
)

func TestPushPop(t *testing.T) {
	r := New(map[string]entity.I{"x": integer.New(1)})

	if r.Current() != r.Global() || r.Depth() != 0 {
		t.Fatal("a new env must start at its global frame")
	}

	f := frame.New(r.Global(), "f", map[string]entity.I{"x": integer.New(2)})
	r.Push(f)

	v, err := r.Lookup("x")
	if err != nil || !v.Equal(integer.New(2)) {
		t.Fatalf("expected 2, got %v %v", v, err)
	}

	p, err := r.Pop()
	if err != nil || p != f {
		t.Fatalf("expected to pop the pushed frame, got %v %v", p, err)
	}

	v, _ = r.Lookup("x")
	if !v.Equal(integer.New(1)) {
		t.Fatalf("expected 1, got %s", v)
	}

	if _, err := r.Pop(); !errors.Is(err, ErrStackUnderflow) {
		t.Fatalf("expected stack underflow, got %v", err)
	}
}

func TestIndependentGlobals(t *testing.T) {
	builtins := map[string]entity.I{"x": integer.New(1)}

	a := New(builtins)
	b := New(builtins)

	if err := a.Global().Insert("x", integer.New(5), 0); err != nil {
		t.Fatal(err)
	}

	v, _ := b.Lookup("x")
	if !v.Equal(integer.New(1)) {
		t.Fatalf("runtimes share a global frame: %s", v)
	}
}
