package function

import (
	"testing"

	"github.com/michaelmacinnis/lispy/internal/common/interface/entity"
	"github.com/michaelmacinnis/lispy/internal/common/struct/env"
	"github.com/michaelmacinnis/lispy/internal/common/struct/frame"
)

func nothing(*env.T, ...entity.I) (entity.I, error) {
	return nil, nil
}

func TestIdentity(t *testing.T) {
	a := Strict("f", nothing)
	b := Strict("f", nothing)

	if !a.Equal(a) || a.Equal(b) {
		t.Fatal("functions are equal only to themselves")
	}
}

func TestRename(t *testing.T) {
	c := frame.New(nil, frame.Global, nil)

	f := To(Closure("lambda", c, true, nothing))
	g := To(f.Rename("named"))

	if g.Identifier() != "named" || g.String() != "<fun(named)>" {
		t.Fatalf("unexpected rename %s", g)
	}

	if !g.Lazy() || g.Captured() != c {
		t.Fatal("renaming must keep the calling convention and captured frame")
	}

	if f.Identifier() != "lambda" {
		t.Fatal("renaming must not modify the original")
	}
}
