package commands

import (
	"errors"
	"math/big"
	"testing"

	"github.com/michaelmacinnis/lispy/internal/common/interface/entity"
	"github.com/michaelmacinnis/lispy/internal/common/type/atom"
	"github.com/michaelmacinnis/lispy/internal/common/type/integer"
	"github.com/michaelmacinnis/lispy/internal/common/type/str"
	"github.com/michaelmacinnis/lispy/internal/common/type/vector"
)

func TestFloor(t *testing.T) {
	for _, c := range []struct{ a, b, q, m int64 }{
		{7, 2, 3, 1},
		{-7, 2, -4, 1},
		{7, -2, -4, -1},
		{-7, -2, 3, -1},
		{6, 3, 2, 0},
	} {
		q, m := floor(big.NewInt(c.a), big.NewInt(c.b))
		if q.Int64() != c.q || m.Int64() != c.m {
			t.Fatalf("floor(%d, %d): expected %d %d, got %s %s", c.a, c.b, c.q, c.m, q, m)
		}
	}
}

func TestDivisionByZero(t *testing.T) {
	for _, fn := range []func(...entity.I) (entity.I, error){
		func(args ...entity.I) (entity.I, error) { return div(nil, args...) },
		func(args ...entity.I) (entity.I, error) { return mod(nil, args...) },
	} {
		if _, err := fn(integer.New(1), integer.New(0)); !errors.Is(err, ErrDivisionByZero) {
			t.Fatalf("expected division by zero, got %v", err)
		}
	}
}

func TestTruthy(t *testing.T) {
	for e, expected := range map[entity.I]bool{
		atom.False:                  false,
		atom.Nil:                    false,
		atom.True:                   true,
		atom.New("x"):               true,
		integer.New(0):              false,
		integer.New(-1):             true,
		str.New(""):                 false,
		str.New("0"):                true,
		vector.New():                false,
		vector.New(integer.New(0)): true,
	} {
		if Truthy(e) != expected {
			t.Fatalf("Truthy(%v): expected %v", e, expected)
		}
	}
}

func TestBuiltinsAreFresh(t *testing.T) {
	a := Builtins()
	b := Builtins()

	if len(a) != len(strict())+len(lazy()) {
		t.Fatalf("expected %d builtins, got %d", len(strict())+len(lazy()), len(a))
	}

	if a["+"].Equal(b["+"]) {
		t.Fatal("each table must hold its own functions")
	}
}
