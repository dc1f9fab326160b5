package curves

import (
	"errors"
	"fmt"

	"github.com/smallyu/go-weierstrass/internal/crypto/field"
)

// Point is an element of the group of a Curve: either the point at infinity
// (no coordinates) or an affine pair that satisfies the curve equation.
// Points are immutable values.
type Point struct {
	curve Curve
	x, y  field.Element
}

// NewPoint validates (x, y) against curve. Passing nil for both coordinates
// yields the point at infinity.
func NewPoint(x, y field.Element, curve Curve) (Point, error) {
	if x == nil && y == nil {
		return Identity(curve), nil
	}
	if x == nil || y == nil {
		return Point{}, ErrInvalidPoint
	}
	ok, err := curve.CheckPoint(x, y)
	if err != nil {
		return Point{}, err
	}
	if !ok {
		return Point{}, fmt.Errorf("%w: (%s, %s) on %s", ErrPointNotOnCurve, x, y, curve)
	}
	return Point{curve: curve, x: x, y: y}, nil
}

// NewPrimePoint is shorthand for a point with coordinates in the prime field
// of the given modulus.
func NewPrimePoint(x, y, modulus int64, curve Curve) (Point, error) {
	fx, err := field.NewPrime(x, modulus)
	if err != nil {
		return Point{}, err
	}
	return NewPoint(fx, fx.FromInt(y), curve)
}

// Identity returns the point at infinity of curve.
func Identity(curve Curve) Point {
	return Point{curve: curve}
}

func (p Point) IsIdentity() bool { return p.x == nil }

func (p Point) Curve() Curve { return p.curve }

// X returns the abscissa, nil for the point at infinity.
func (p Point) X() field.Element { return p.x }

// Y returns the ordinate, nil for the point at infinity.
func (p Point) Y() field.Element { return p.y }

// Equal reports whether p and q lie on the same curve with the same coordinates.
func (p Point) Equal(q Point) bool {
	if !p.curve.Equal(q.curve) {
		return false
	}
	if p.IsIdentity() || q.IsIdentity() {
		return p.IsIdentity() && q.IsIdentity()
	}
	return p.x.Equal(q.x) && p.y.Equal(q.y)
}

// Neg returns the additive inverse (x, -y).
func (p Point) Neg() Point {
	if p.IsIdentity() {
		return p
	}
	return Point{curve: p.curve, x: p.x, y: p.y.Neg()}
}

// Add applies the group law.
func (p Point) Add(q Point) (Point, error) {
	if !p.curve.Equal(q.curve) {
		return Point{}, fmt.Errorf("%w: %s and %s", ErrCurveMismatch, p.curve, q.curve)
	}
	switch {
	case p.IsIdentity():
		return q, nil
	case q.IsIdentity():
		return p, nil
	case p.x.Equal(q.x) && !p.y.Equal(q.y):
		// q = -p
		return Identity(p.curve), nil
	case p.Equal(q) && p.y.IsZero():
		// vertical tangent
		return Identity(p.curve), nil
	case p.Equal(q):
		return p.double()
	default:
		return p.chord(q)
	}
}

// double computes 2p with slope s = (3x^2 + a) / 2y.
func (p Point) double() (Point, error) {
	ev := evaluator{}
	num := ev.add(ev.mul(p.x.FromInt(3), ev.pow(p.x, 2)), p.x.FromInt(p.curve.A))
	s := ev.div(num, ev.mul(p.y.FromInt(2), p.y))

	// x3 = s^2 - 2x
	x3 := ev.sub(ev.pow(s, 2), ev.mul(p.x.FromInt(2), p.x))
	// y3 = s(x - x3) - y
	y3 := ev.sub(ev.mul(s, ev.sub(p.x, x3)), p.y)
	if ev.err != nil {
		return Point{}, ev.err
	}
	return p.result(x3, y3)
}

// chord computes p + q for distinct, non-inverse points.
func (p Point) chord(q Point) (Point, error) {
	ev := evaluator{}
	s := ev.div(ev.sub(q.y, p.y), ev.sub(q.x, p.x))

	// x3 = s^2 - (x1 + x2)
	x3 := ev.sub(ev.pow(s, 2), ev.add(p.x, q.x))
	// y3 = s(x1 - x3) - y1
	y3 := ev.sub(ev.mul(s, ev.sub(p.x, x3)), p.y)
	if ev.err != nil {
		return Point{}, ev.err
	}
	return p.result(x3, y3)
}

// result revalidates a point produced by the group law. For exact
// coordinates a failure means the arithmetic above is wrong, not that the
// input was bad. Real coordinates accumulate rounding error with every step,
// so they are accepted as computed.
func (p Point) result(x, y field.Element) (Point, error) {
	if _, exact := x.(field.Prime); !exact {
		if _, err := x.Sub(y); err != nil {
			return Point{}, err
		}
		return Point{curve: p.curve, x: x, y: y}, nil
	}
	r, err := NewPoint(x, y, p.curve)
	if errors.Is(err, ErrPointNotOnCurve) {
		panic(fmt.Sprintf("curves: group law left the curve: %v", err))
	}
	return r, err
}

// ScalarMul computes k*p by adding p to the identity k times.
func (p Point) ScalarMul(k uint64) (Point, error) {
	acc := Identity(p.curve)
	for i := uint64(0); i < k; i++ {
		next, err := acc.Add(p)
		if err != nil {
			return Point{}, fmt.Errorf("scalar mul step %d: %w", i+1, err)
		}
		acc = next
	}
	return acc, nil
}

func (p Point) String() string {
	if p.IsIdentity() {
		return "Infinity"
	}
	return fmt.Sprintf("(%s, %s)", coordString(p.x), coordString(p.y))
}

func coordString(e field.Element) string {
	if v, ok := e.(field.Prime); ok {
		return fmt.Sprint(v.Value())
	}
	return e.String()
}
