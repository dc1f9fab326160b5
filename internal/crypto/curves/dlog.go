package curves

import "fmt"

// NaiveFactor searches for the least k in [1, limit] with k*p == target by
// repeated addition. It stops early once the multiples of p wrap around to
// the identity, since every later multiple repeats an earlier one; limit is
// usually the curve's point count. found is false when no such k exists.
func (p Point) NaiveFactor(target Point, limit uint64) (k uint64, found bool, err error) {
	if limit == 0 {
		return 0, false, ErrNoSearchBound
	}
	if !p.curve.Equal(target.curve) {
		return 0, false, fmt.Errorf("%w: %s and %s", ErrCurveMismatch, p.curve, target.curve)
	}

	generator := p
	for k = 1; k <= limit; k++ {
		if generator.Equal(target) {
			return k, true, nil
		}
		if generator.IsIdentity() {
			return 0, false, nil
		}
		if generator, err = generator.Add(p); err != nil {
			return 0, false, err
		}
	}
	return 0, false, nil
}

// Order returns the smallest n >= 1 with n*p at infinity, searching up to limit.
func (p Point) Order(limit uint64) (uint64, bool, error) {
	return p.NaiveFactor(Identity(p.curve), limit)
}
