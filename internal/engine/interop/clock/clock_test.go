package clock

import (
	"testing"
	"time"

	"github.com/michaelmacinnis/lispy/internal/common/type/function"
	"github.com/michaelmacinnis/lispy/internal/common/type/integer"
	"github.com/michaelmacinnis/lispy/internal/common/type/str"
)

func TestFormat(t *testing.T) {
	f := function.To(Interop(nil)["format"])

	v, err := f.Callable()(nil, str.New("%Y-%m-%d %H:%M:%S"), integer.New(86400))
	if err != nil {
		t.Fatal(err)
	}

	if !v.Equal(str.New("1970-01-02 00:00:00")) {
		t.Fatalf("unexpected format %s", v)
	}
}

func TestNow(t *testing.T) {
	f := function.To(Interop(nil)["now"])

	before := time.Now().Unix()

	v, err := f.Callable()(nil)
	if err != nil {
		t.Fatal(err)
	}

	n := integer.To(v).Int().Int64()
	if n < before || n > time.Now().Unix() {
		t.Fatalf("now returned %d", n)
	}
}
