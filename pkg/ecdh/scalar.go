package ecdh

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

// RandomScalar draws a private scalar uniformly from [1, max) using r.
// Passing a seeded reader makes sessions reproducible; nothing here is
// suitable for real key material.
func RandomScalar(r io.Reader, max uint64) (uint64, error) {
	if max < 2 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidBound, max)
	}
	n, err := rand.Int(r, new(big.Int).SetUint64(max-1))
	if err != nil {
		return 0, fmt.Errorf("failed to sample scalar: %w", err)
	}
	return n.Uint64() + 1, nil
}
