package snapshot

import (
	"bytes"
	"strings"
	"testing"

	"github.com/michaelmacinnis/lispy/internal/engine"
)

func TestRoundTrip(t *testing.T) {
	_, r, err := engine.CompileAndRun(t.Name(), `
		(define answer 42)
		(define greeting "hello\nworld")
		(define tags [:a :b [1 2]])
		(define code &(+ 1 2))
		(defun twice [x] (* 2 x))
		(define cell (((interop "ref") :make) 0))
	`, nil)
	if err != nil {
		t.Fatal(err)
	}

	var b bytes.Buffer

	if err := Save(&b, r); err != nil {
		t.Fatal(err)
	}

	text := b.String()

	for _, absent := range []string{"twice", "cell", "inc"} {
		if strings.Contains(text, absent+":") {
			t.Fatalf("%s should not be saved:\n%s", absent, text)
		}
	}

	fresh, err := engine.New()
	if err != nil {
		t.Fatal(err)
	}

	if err := Restore(&b, fresh); err != nil {
		t.Fatal(err)
	}

	for _, k := range []string{"answer", "greeting", "tags", "code"} {
		expected, err := r.Lookup(k)
		if err != nil {
			t.Fatal(err)
		}

		actual, err := fresh.Lookup(k)
		if err != nil {
			t.Fatalf("%s was not restored: %v", k, err)
		}

		if !expected.Equal(actual) {
			t.Fatalf("%s: expected %s, got %s", k, expected, actual)
		}
	}
}

func TestRestoreEvaluates(t *testing.T) {
	r, err := engine.New()
	if err != nil {
		t.Fatal(err)
	}

	if err := Restore(strings.NewReader("sum: (+ 1 2)\n"), r); err != nil {
		t.Fatal(err)
	}

	v, err := r.Lookup("sum")
	if err != nil || v.String() != "3" {
		t.Fatalf("expected 3, got %v %v", v, err)
	}
}

func TestRestoreRejectsBadText(t *testing.T) {
	r, err := engine.New()
	if err != nil {
		t.Fatal(err)
	}

	for _, text := range []string{"x: (+ 1\n", "x: 1 2\n", "- not a mapping\n"} {
		if err := Restore(strings.NewReader(text), r); err == nil {
			t.Fatalf("%q: expected an error", text)
		}
	}
}

