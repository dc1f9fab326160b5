package field

import (
	"math"
	"strconv"
)

// Tolerance is the relative error under which two Real values compare equal.
const Tolerance = 1e-9

// Real approximates a coordinate over the real numbers. It exists for
// exploring curve shapes; exact work belongs to Prime.
type Real struct {
	value float64
}

var _ Element = Real{}

func NewReal(v float64) Real { return Real{value: v} }

func (e Real) Value() float64 { return e.value }

func (e Real) operand(other Element) (Real, error) {
	o, ok := other.(Real)
	if !ok {
		return Real{}, ErrKindMismatch
	}
	return o, nil
}

func (e Real) Add(other Element) (Element, error) {
	o, err := e.operand(other)
	if err != nil {
		return nil, err
	}
	return Real{value: e.value + o.value}, nil
}

func (e Real) Sub(other Element) (Element, error) {
	o, err := e.operand(other)
	if err != nil {
		return nil, err
	}
	return Real{value: e.value - o.value}, nil
}

func (e Real) Mul(other Element) (Element, error) {
	o, err := e.operand(other)
	if err != nil {
		return nil, err
	}
	return Real{value: e.value * o.value}, nil
}

func (e Real) Div(other Element) (Element, error) {
	o, err := e.operand(other)
	if err != nil {
		return nil, err
	}
	if o.value == 0 {
		return nil, ErrDivisionByZero
	}
	return Real{value: e.value / o.value}, nil
}

func (e Real) Pow(n uint64) (Element, error) {
	return Real{value: math.Pow(e.value, float64(n))}, nil
}

func (e Real) Neg() Element { return Real{value: -e.value} }

func (e Real) FromInt(v int64) Element { return Real{value: float64(v)} }

// IsZero reports whether e is within an absolute Tolerance of zero.
func (e Real) IsZero() bool { return math.Abs(e.value) <= Tolerance }

func (e Real) Equal(other Element) bool {
	o, ok := other.(Real)
	if !ok {
		return false
	}
	scale := math.Max(1, math.Max(math.Abs(e.value), math.Abs(o.value)))
	return math.Abs(e.value-o.value) <= Tolerance*scale
}

func (e Real) String() string {
	return strconv.FormatFloat(e.value, 'g', -1, 64)
}
