package vector

import (
	"testing"

	"github.com/michaelmacinnis/lispy/internal/common/type/atom"
	"github.com/michaelmacinnis/lispy/internal/common/type/integer"
)

func TestComputedIsClamped(t *testing.T) {
	es := []int64{1, 2}

	for n, expected := range map[int]int{-1: 0, 0: 0, 1: 1, 2: 2, 5: 2} {
		v := To(Computed(n, integer.New(es[0]), integer.New(es[1])))
		if v.Computed() != expected {
			t.Fatalf("Computed(%d): expected %d, got %d", n, expected, v.Computed())
		}
	}
}

func TestEqualityIgnoresCursor(t *testing.T) {
	a := Computed(0, atom.True, integer.New(1))
	b := Computed(2, atom.True, integer.New(1))

	if !a.Equal(b) || !b.Equal(a) {
		t.Fatal("vectors with equal elements must be equal")
	}

	if a.Equal(New(atom.True)) || a.Equal(New(atom.True, integer.New(2))) {
		t.Fatal("vectors with different elements must differ")
	}

	if !To(b).Done() || To(a).Done() {
		t.Fatal("done must follow the cursor")
	}

	if !To(New()).Done() {
		t.Fatal("an empty vector is done")
	}
}

func TestString(t *testing.T) {
	if s := New(atom.New("a"), integer.New(-1), New()).String(); s != "[:a -1 []]" {
		t.Fatalf("unexpected printed form %s", s)
	}
}
