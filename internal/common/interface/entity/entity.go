// Released under an MIT license. See LICENSE.

// Package entity defines the interface for all lispy values.
package entity

// I (entity) is the single value and expression type lispy operates on.
// Every entity is immutable once constructed.
type I interface {
	Equal(e I) bool
	Name() string
	String() string
}

// Equal reports whether a and b are structurally equal. Nil entities are
// only equal to each other.
func Equal(a, b I) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return a.Equal(b)
}

// All reports whether every entity in a is equal to the entity at the same
// position in b.
func All(a, b []I) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}

	return true
}
