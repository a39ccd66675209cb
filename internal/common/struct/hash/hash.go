// Released under an MIT license. See LICENSE.

// Package hash provides lispy's name to value mapping type.
package hash

import (
	"sort"
	"sync"

	"github.com/michaelmacinnis/lispy/internal/common/interface/entity"
)

// T (hash) maps names to values.
type T struct {
	sync.RWMutex
	m map[string]entity.I
}

type hash = T

// New creates a new hash, optionally seeded with the bindings in m.
func New(m map[string]entity.I) *hash {
	h := &hash{m: make(map[string]entity.I, len(m))}

	for k, v := range m {
		h.m[k] = v
	}

	return h
}

// Get retrieves the value associated with the name k in the hash h.
func (h *hash) Get(k string) (entity.I, bool) {
	if h == nil {
		return nil, false
	}

	h.RLock()
	defer h.RUnlock()

	v, ok := h.m[k]

	return v, ok
}

// Keys returns the names bound in h in sorted order.
func (h *hash) Keys() []string {
	h.RLock()
	defer h.RUnlock()

	ks := make([]string, 0, len(h.m))
	for k := range h.m {
		ks = append(ks, k)
	}

	sort.Strings(ks)

	return ks
}

// Merge associates every name in m with its value in the hash h.
func (h *hash) Merge(m map[string]entity.I) {
	h.Lock()
	defer h.Unlock()

	for k, v := range m {
		h.m[k] = v
	}
}

// Set associates the name k with the entity v in the hash h.
func (h *hash) Set(k string, v entity.I) {
	h.Lock()
	defer h.Unlock()

	h.m[k] = v
}
