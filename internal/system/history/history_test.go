package history

import (
	"io"
	"path/filepath"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")

	err := Save(path, func(w io.Writer) (int, error) {
		return io.WriteString(w, "(+ 1 2)\n")
	})
	if err != nil {
		t.Fatal(err)
	}

	var text string

	err = Load(path, func(r io.Reader) (int, error) {
		b, err := io.ReadAll(r)
		text = string(b)

		return len(b), err
	})
	if err != nil {
		t.Fatal(err)
	}

	if text != "(+ 1 2)\n" {
		t.Fatalf("unexpected history %q", text)
	}
}

func TestMissingFile(t *testing.T) {
	called := false

	err := Load(filepath.Join(t.TempDir(), "missing"), func(io.Reader) (int, error) {
		called = true

		return 0, nil
	})
	if err != nil || called {
		t.Fatalf("a missing history file must be skipped: %v %v", err, called)
	}
}
