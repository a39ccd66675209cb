package functools

import (
	"errors"
	"testing"

	"github.com/michaelmacinnis/lispy/internal/common/interface/entity"
	"github.com/michaelmacinnis/lispy/internal/common/type/integer"
	"github.com/michaelmacinnis/lispy/internal/common/type/sexpr"
	"github.com/michaelmacinnis/lispy/internal/common/type/sym"
	"github.com/michaelmacinnis/lispy/internal/common/type/vector"
	"github.com/michaelmacinnis/lispy/internal/common/validate"
)

func TestMap(t *testing.T) {
	f := sym.New("f")

	v, err := Map(nil, f, vector.New(integer.New(1), integer.New(2)))
	if err != nil {
		t.Fatal(err)
	}

	expected := vector.New(sexpr.New(f, integer.New(1)), sexpr.New(f, integer.New(2)))
	if !v.Equal(expected) {
		t.Fatalf("expected %s, got %s", expected, v)
	}

	if _, err := Map(nil, f, integer.New(1)); !errors.Is(err, validate.ErrTypeMismatch) {
		t.Fatalf("expected type mismatch, got %v", err)
	}
}

func TestLinkedList(t *testing.T) {
	l := New(integer.New(1), New(integer.New(2), Empty))

	if s := l.String(); s != "(+> 1 (+> 2 emp))" {
		t.Fatalf("unexpected printed form %s", s)
	}

	if !entity.All(l.Elements(), []entity.I{integer.New(1), integer.New(2)}) {
		t.Fatalf("unexpected elements %v", l.Elements())
	}

	if _, err := list(integer.New(1)); !errors.Is(err, ErrNotList) {
		t.Fatalf("expected not a list, got %v", err)
	}
}
