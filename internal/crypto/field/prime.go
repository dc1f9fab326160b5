package field

import (
	"fmt"
	"math"
)

// MaxModulus bounds the modulus so that the product of two reduced values
// always fits in an int64.
const MaxModulus = math.MaxInt32

// Prime is a residue class modulo a fixed modulus, kept in [0, modulus).
// The zero value has no modulus and every operation on it fails with
// ErrInvalidModulus; build elements with NewPrime.
type Prime struct {
	value   int64
	modulus int64
}

var _ Element = Prime{}

// NewPrime reduces value into [0, modulus). Negative values wrap around.
func NewPrime(value, modulus int64) (Prime, error) {
	if modulus < 2 || modulus > MaxModulus {
		return Prime{}, fmt.Errorf("%w: %d", ErrInvalidModulus, modulus)
	}
	return Prime{value: reduce(value, modulus), modulus: modulus}, nil
}

// MustPrime is like NewPrime but panics on an invalid modulus.
func MustPrime(value, modulus int64) Prime {
	e, err := NewPrime(value, modulus)
	if err != nil {
		panic(err)
	}
	return e
}

func reduce(v, m int64) int64 {
	if m < 2 {
		return 0
	}
	r := v % m
	if r < 0 {
		r += m
	}
	return r
}

func (e Prime) Value() int64   { return e.value }
func (e Prime) Modulus() int64 { return e.modulus }

func (e Prime) operand(other Element) (Prime, error) {
	if e.modulus < 2 {
		return Prime{}, fmt.Errorf("%w: %d", ErrInvalidModulus, e.modulus)
	}
	o, ok := other.(Prime)
	if !ok {
		return Prime{}, ErrKindMismatch
	}
	if o.modulus != e.modulus {
		return Prime{}, fmt.Errorf("%w: %d != %d", ErrModulusMismatch, e.modulus, o.modulus)
	}
	return o, nil
}

func (e Prime) Add(other Element) (Element, error) {
	o, err := e.operand(other)
	if err != nil {
		return nil, err
	}
	return Prime{value: reduce(e.value+o.value, e.modulus), modulus: e.modulus}, nil
}

func (e Prime) Sub(other Element) (Element, error) {
	o, err := e.operand(other)
	if err != nil {
		return nil, err
	}
	return Prime{value: reduce(e.value-o.value, e.modulus), modulus: e.modulus}, nil
}

func (e Prime) Mul(other Element) (Element, error) {
	o, err := e.operand(other)
	if err != nil {
		return nil, err
	}
	return Prime{value: reduce(e.value*o.value, e.modulus), modulus: e.modulus}, nil
}

// Div computes e * other^-1. The inverse comes from the extended Euclidean
// algorithm on (other, modulus).
func (e Prime) Div(other Element) (Element, error) {
	o, err := e.operand(other)
	if err != nil {
		return nil, err
	}
	inv, err := o.Inverse()
	if err != nil {
		return nil, err
	}
	return Prime{value: reduce(e.value*inv.value, e.modulus), modulus: e.modulus}, nil
}

// Inverse returns the multiplicative inverse of e.
func (e Prime) Inverse() (Prime, error) {
	if e.modulus < 2 {
		return Prime{}, fmt.Errorf("%w: %d", ErrInvalidModulus, e.modulus)
	}
	if e.value == 0 {
		return Prime{}, ErrDivisionByZero
	}
	gcd, x, _ := ExtendedGCD(e.value, e.modulus)
	if gcd != 1 {
		return Prime{}, fmt.Errorf("%w: gcd(%d, %d) = %d", ErrNotInvertible, e.value, e.modulus, gcd)
	}
	return Prime{value: reduce(x, e.modulus), modulus: e.modulus}, nil
}

// Pow raises e to n by square-and-multiply, reducing every intermediate product.
func (e Prime) Pow(n uint64) (Element, error) {
	if e.modulus < 2 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidModulus, e.modulus)
	}
	result := int64(1) % e.modulus
	base := e.value
	for n > 0 {
		if n&1 == 1 {
			result = reduce(result*base, e.modulus)
		}
		base = reduce(base*base, e.modulus)
		n >>= 1
	}
	return Prime{value: result, modulus: e.modulus}, nil
}

func (e Prime) Neg() Element {
	return Prime{value: reduce(-e.value, e.modulus), modulus: e.modulus}
}

func (e Prime) FromInt(v int64) Element {
	return Prime{value: reduce(v, e.modulus), modulus: e.modulus}
}

func (e Prime) IsZero() bool { return e.value == 0 }

func (e Prime) Equal(other Element) bool {
	o, ok := other.(Prime)
	return ok && o == e
}

func (e Prime) String() string {
	return fmt.Sprintf("%d (mod %d)", e.value, e.modulus)
}
