// Released under an MIT license. See LICENSE.

// Package interop is the registry of modules that lispy programs can load
// with interop and import.
package interop

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/michaelmacinnis/lispy/internal/common/interface/entity"
	"github.com/michaelmacinnis/lispy/internal/common/struct/env"
	"github.com/michaelmacinnis/lispy/internal/engine/interop/clock"
	"github.com/michaelmacinnis/lispy/internal/engine/interop/db"
	"github.com/michaelmacinnis/lispy/internal/engine/interop/functools"
	"github.com/michaelmacinnis/lispy/internal/engine/interop/ref"
	"github.com/michaelmacinnis/lispy/internal/engine/interop/sigils"
	"github.com/michaelmacinnis/lispy/internal/engine/interop/text"
)

// Prefix may precede the name of a bundled module.
const Prefix = "$."

// ErrUnknownModule is returned by Lookup for a name with no module.
var ErrUnknownModule = errors.New("unknown module") //nolint:gochecknoglobals

// Loader builds a module's table of values for the runtime r.
type Loader func(r *env.T) map[string]entity.I

func modules() map[string]Loader {
	return map[string]Loader{
		"functools": functools.Interop,
		"ref":       ref.Interop,
		"sigils":    sigils.Interop,
		"sql":       db.Interop,
		"strings":   text.Interop,
		"time":      clock.Interop,
	}
}

// Lookup returns the loader for the module called name.
func Lookup(name string) (Loader, error) {
	l, ok := modules()[strings.TrimPrefix(name, Prefix)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownModule, name)
	}

	return l, nil
}

// Names returns the names of all modules in sorted order.
func Names() []string {
	m := modules()

	ns := make([]string, 0, len(m))
	for k := range m {
		ns = append(ns, k)
	}

	sort.Strings(ns)

	return ns
}
