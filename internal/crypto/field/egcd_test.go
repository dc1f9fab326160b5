package field

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestExtendedGCD(t *testing.T) {
	tests := []struct {
		a, b, gcd int64
	}{
		{240, 46, 2},
		{3, 7, 1},
		{7, 0, 7},
		{0, 5, 5},
		{1021, 379, 1},
	}
	for _, tt := range tests {
		gcd, x, y := ExtendedGCD(tt.a, tt.b)
		assert.Equal(t, tt.gcd, gcd, "gcd(%d, %d)", tt.a, tt.b)
		assert.Equal(t, gcd, tt.a*x+tt.b*y, "bezout identity for (%d, %d)", tt.a, tt.b)
	}

	gcd, x, y := ExtendedGCD(7, 0)
	assert.Equal(t, [3]int64{7, 1, 0}, [3]int64{gcd, x, y})
}

func TestExtendedGCDBezout(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())
	properties.Property("a*x + b*y == gcd", prop.ForAll(
		func(a, b int64) bool {
			gcd, x, y := ExtendedGCD(a, b)
			return a*x+b*y == gcd && (gcd == 0 || (a%gcd == 0 && b%gcd == 0))
		},
		gen.Int64Range(0, 1<<20), gen.Int64Range(0, 1<<20),
	))
	properties.TestingRun(t)
}
