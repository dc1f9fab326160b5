package curves

import (
	"fmt"
	"math"
	"strings"

	"github.com/smallyu/go-weierstrass/internal/crypto/field"
)

// Curve is a short Weierstrass curve y^2 = x^3 + a*x + b. The field is
// implied by the coordinates of the points built on it.
type Curve struct {
	A, B int64
}

// New returns the curve y^2 = x^3 + a*x + b.
func New(a, b int64) Curve {
	return Curve{A: a, B: b}
}

// Equal reports coefficient equality.
func (c Curve) Equal(other Curve) bool {
	return c.A == other.A && c.B == other.B
}

// CheckPoint reports whether y^2 == x^3 + a*x + b in the field of x and y.
// The coefficients are cast into that field. x and y from different fields
// fail with the field's mismatch error.
func (c Curve) CheckPoint(x, y field.Element) (bool, error) {
	if _, err := x.Sub(y); err != nil {
		return false, err
	}
	lhs, err := y.Pow(2)
	if err != nil {
		return false, err
	}
	rhs, err := c.rhs(x)
	if err != nil {
		return false, err
	}
	return lhs.Equal(rhs), nil
}

// rhs evaluates x^3 + a*x + b.
func (c Curve) rhs(x field.Element) (field.Element, error) {
	ev := evaluator{}
	cube := ev.pow(x, 3)
	ax := ev.mul(x.FromInt(c.A), x)
	r := ev.add(ev.add(cube, ax), x.FromInt(c.B))
	return r, ev.err
}

// RealPointAt lifts x onto the real curve, taking the non-negative root.
func (c Curve) RealPointAt(x float64) (Point, error) {
	fx := field.NewReal(x)
	r, err := c.rhs(fx)
	if err != nil {
		return Point{}, err
	}
	v := r.(field.Real).Value()
	if v < 0 {
		if v > -field.Tolerance {
			v = 0
		} else {
			return Point{}, fmt.Errorf("%w: no real root at x = %g", ErrPointNotOnCurve, x)
		}
	}
	return NewPoint(fx, field.NewReal(math.Sqrt(v)), c)
}

// CountPoints enumerates every (x, y) in [0, p) x [0, p) and returns the number
// of affine solutions plus one for the point at infinity. It is O(p^2) and
// only meant for small curves.
func (c Curve) CountPoints(p int64) (uint64, error) {
	zero, err := field.NewPrime(0, p)
	if err != nil {
		return 0, err
	}
	count := uint64(1)
	for x := int64(0); x < p; x++ {
		fx := zero.FromInt(x)
		for y := int64(0); y < p; y++ {
			ok, err := c.CheckPoint(fx, zero.FromInt(y))
			if err != nil {
				return 0, err
			}
			if ok {
				count++
			}
		}
	}
	return count, nil
}

// HasseBound returns the interval [p + 1 - 2*sqrt(p), p + 1 + 2*sqrt(p)].
func HasseBound(p int64) (lo, hi float64) {
	mid := float64(p) + 1
	spread := 2 * math.Sqrt(float64(p))
	return mid - spread, mid + spread
}

// CheckHasse verifies that count lies within the Hasse interval for p.
func CheckHasse(count uint64, p int64) error {
	lo, hi := HasseBound(p)
	if n := float64(count); n < lo || n > hi {
		return fmt.Errorf("%w: %d not in [%.2f, %.2f]", ErrHasseViolation, count, lo, hi)
	}
	return nil
}

func (c Curve) String() string {
	var b strings.Builder
	b.WriteString("y^2 = x^3")
	writeTerm(&b, c.A, "x")
	writeTerm(&b, c.B, "")
	return b.String()
}

func writeTerm(b *strings.Builder, coeff int64, symbol string) {
	switch {
	case coeff == 0:
		return
	case coeff < 0:
		fmt.Fprintf(b, " - %d%s", -coeff, symbol)
	default:
		fmt.Fprintf(b, " + %d%s", coeff, symbol)
	}
}

// evaluator chains field operations, keeping the first error.
type evaluator struct {
	err error
}

func (ev *evaluator) do(op func(field.Element) (field.Element, error), b field.Element) field.Element {
	if ev.err != nil {
		return nil
	}
	r, err := op(b)
	ev.err = err
	return r
}

func (ev *evaluator) add(a, b field.Element) field.Element {
	if ev.err != nil {
		return nil
	}
	return ev.do(a.Add, b)
}

func (ev *evaluator) sub(a, b field.Element) field.Element {
	if ev.err != nil {
		return nil
	}
	return ev.do(a.Sub, b)
}

func (ev *evaluator) mul(a, b field.Element) field.Element {
	if ev.err != nil {
		return nil
	}
	return ev.do(a.Mul, b)
}

func (ev *evaluator) div(a, b field.Element) field.Element {
	if ev.err != nil {
		return nil
	}
	return ev.do(a.Div, b)
}

func (ev *evaluator) pow(a field.Element, n uint64) field.Element {
	if ev.err != nil {
		return nil
	}
	r, err := a.Pow(n)
	ev.err = err
	return r
}
