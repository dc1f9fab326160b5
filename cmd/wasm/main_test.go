//go:build js && wasm

package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalarArg(t *testing.T) {
	for _, v := range []float64{0, 1, 655, 1 << 53} {
		k, err := scalarArg(v)
		require.NoError(t, err, "%v", v)
		assert.Equal(t, uint64(v), k)
	}

	for _, v := range []float64{-1, -0.5, 2.5, math.NaN(), math.Inf(1), math.Inf(-1), 1<<53 + 2} {
		_, err := scalarArg(v)
		assert.Error(t, err, "%v", v)
	}
}
