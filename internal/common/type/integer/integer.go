// Released under an MIT license. See LICENSE.

// Package integer provides lispy's arbitrary-precision integer type.
package integer

import (
	"math/big"

	"github.com/michaelmacinnis/lispy/internal/common/interface/entity"
)

const name = "integer"

// T (integer) wraps Go's big.Int type.
type T big.Int

type integer = T

// New creates an integer from the int64 i.
func New(i int64) entity.I {
	return Big(big.NewInt(i))
}

// Big wraps the *big.Int b as an integer. The caller must not modify b
// afterwards.
func Big(b *big.Int) entity.I {
	return (*integer)(b)
}

// Parse creates an integer from its decimal representation s.
func Parse(s string) (entity.I, bool) {
	v, ok := (&big.Int{}).SetString(s, 10)
	if !ok {
		return nil, false
	}

	return Big(v), true
}

// Equal returns true if e is an integer with the same value as i.
func (i *integer) Equal(e entity.I) bool {
	return Is(e) && i.Int().Cmp(To(e).Int()) == 0
}

// Int returns the value of the integer i. It must not be modified.
func (i *integer) Int() *big.Int {
	return (*big.Int)(i)
}

// Name returns the type name for the integer i.
func (i *integer) Name() string {
	return name
}

// Sign returns -1, 0 or +1 depending on the sign of i.
func (i *integer) Sign() int {
	return i.Int().Sign()
}

// String returns the decimal text of the integer i.
func (i *integer) String() string {
	return i.Int().String()
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t integer

	// The integer type is an entity.
	_ = entity.I(&t)
}
