package curves

import (
	"fmt"

	"github.com/smallyu/go-weierstrass/pkg/ecdh"
)

// WeierstrassGroup exposes the points of a toy Curve to the key exchange.
type WeierstrassGroup struct {
	Curve Curve
}

var _ ecdh.Group[Point] = WeierstrassGroup{}

// NewWeierstrassGroup returns the group of points on c.
func NewWeierstrassGroup(c Curve) WeierstrassGroup {
	return WeierstrassGroup{Curve: c}
}

func (g WeierstrassGroup) Name() string {
	return g.Curve.String()
}

func (g WeierstrassGroup) ScalarMul(p Point, k uint64) (Point, error) {
	if !p.curve.Equal(g.Curve) {
		return Point{}, fmt.Errorf("%w: %s is not on %s", ErrCurveMismatch, p, g.Curve)
	}
	return p.ScalarMul(k)
}

func (g WeierstrassGroup) Equal(p, q Point) bool {
	return p.Equal(q)
}

func (g WeierstrassGroup) Describe(p Point) string {
	return p.String()
}
