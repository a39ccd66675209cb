// Released under an MIT license. See LICENSE.

package commands

import (
	"errors"
	"math/big"

	"github.com/michaelmacinnis/lispy/internal/common/interface/entity"
	"github.com/michaelmacinnis/lispy/internal/common/struct/env"
	"github.com/michaelmacinnis/lispy/internal/common/type/integer"
	"github.com/michaelmacinnis/lispy/internal/common/validate"
)

//nolint:gochecknoglobals
var (
	// ErrDivisionByZero is returned by / and % for a zero divisor.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrNegativeExponent is returned by ** for a negative exponent.
	ErrNegativeExponent = errors.New("negative exponent")
)

func add(_ *env.T, args ...entity.I) (entity.I, error) {
	is, err := validate.Integers(args)
	if err != nil {
		return nil, err
	}

	sum := &big.Int{}
	for _, i := range is {
		sum.Add(sum, i.Int())
	}

	return integer.Big(sum), nil
}

func div(_ *env.T, args ...entity.I) (entity.I, error) {
	a, b, err := operands(args)
	if err != nil {
		return nil, err
	}

	q, _ := floor(a, b)

	return integer.Big(q), nil
}

func mod(_ *env.T, args ...entity.I) (entity.I, error) {
	a, b, err := operands(args)
	if err != nil {
		return nil, err
	}

	_, m := floor(a, b)

	return integer.Big(m), nil
}

func mul(_ *env.T, args ...entity.I) (entity.I, error) {
	is, err := validate.Integers(args)
	if err != nil {
		return nil, err
	}

	product := big.NewInt(1)
	for _, i := range is {
		product.Mul(product, i.Int())
	}

	return integer.Big(product), nil
}

func neg(_ *env.T, args ...entity.I) (entity.I, error) {
	if err := validate.Arity(args, 1); err != nil {
		return nil, err
	}

	i, err := validate.Integer(args[0])
	if err != nil {
		return nil, err
	}

	return integer.Big((&big.Int{}).Neg(i.Int())), nil
}

func pow(_ *env.T, args ...entity.I) (entity.I, error) {
	if err := validate.Arity(args, 2); err != nil {
		return nil, err
	}

	is, err := validate.Integers(args)
	if err != nil {
		return nil, err
	}

	if is[1].Sign() < 0 {
		return nil, ErrNegativeExponent
	}

	return integer.Big((&big.Int{}).Exp(is[0].Int(), is[1].Int(), nil)), nil
}

// sub subtracts the remaining arguments from the first. With a single
// argument it negates.
func sub(_ *env.T, args ...entity.I) (entity.I, error) {
	if err := validate.Variadic(args, 1, -1); err != nil {
		return nil, err
	}

	is, err := validate.Integers(args)
	if err != nil {
		return nil, err
	}

	difference := (&big.Int{}).Set(is[0].Int())

	if len(is) == 1 {
		return integer.Big(difference.Neg(difference)), nil
	}

	for _, i := range is[1:] {
		difference.Sub(difference, i.Int())
	}

	return integer.Big(difference), nil
}

// floor returns the quotient rounded toward negative infinity and the
// remainder with the sign of the divisor.
func floor(a, b *big.Int) (*big.Int, *big.Int) {
	q, m := (&big.Int{}).QuoRem(a, b, &big.Int{})

	if m.Sign() != 0 && m.Sign() != b.Sign() {
		q.Sub(q, big.NewInt(1))
		m.Add(m, b)
	}

	return q, m
}

func operands(args []entity.I) (*big.Int, *big.Int, error) {
	if err := validate.Arity(args, 2); err != nil {
		return nil, nil, err
	}

	is, err := validate.Integers(args)
	if err != nil {
		return nil, nil, err
	}

	if is[1].Sign() == 0 {
		return nil, nil, ErrDivisionByZero
	}

	return is[0].Int(), is[1].Int(), nil
}
