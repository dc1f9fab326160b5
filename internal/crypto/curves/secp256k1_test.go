package curves

import (
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecp256k1Group(t *testing.T) {
	group := NewSecp256k1()
	assert.Equal(t, "secp256k1", group.Name())

	g := group.BasePoint()
	assert.Equal(t,
		"0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798",
		group.Describe(g))

	one, err := group.ScalarMul(g, 1)
	require.NoError(t, err)
	assert.True(t, group.Equal(one, g))

	var doubled secp256k1.JacobianPoint
	secp256k1.AddNonConst(&g, &g, &doubled)
	two, err := group.ScalarMul(g, 2)
	require.NoError(t, err)
	assert.True(t, group.Equal(two, doubled))
	assert.False(t, group.Equal(two, g))

	zero, err := group.ScalarMul(g, 0)
	require.NoError(t, err)
	assert.Equal(t, "Infinity", group.Describe(zero))

	a, b := uint64(0xdeadbeef), uint64(0xfeedface)
	ga, _ := group.ScalarMul(g, a)
	gb, _ := group.ScalarMul(g, b)
	gab, err := group.ScalarMul(ga, b)
	require.NoError(t, err)
	gba, err := group.ScalarMul(gb, a)
	require.NoError(t, err)
	assert.True(t, group.Equal(gab, gba))
}

func TestWeierstrassGroup(t *testing.T) {
	c := New(0, 6)
	group := NewWeierstrassGroup(c)
	assert.Equal(t, "y^2 = x^3 + 6", group.Name())

	g := mustPoint(t, 13, 15, 43, c)
	two, err := group.ScalarMul(g, 2)
	require.NoError(t, err)
	assert.True(t, group.Equal(two, mustPoint(t, 33, 34, 43, c)))
	assert.Equal(t, "(33, 34)", group.Describe(two))

	_, err = group.ScalarMul(mustPoint(t, 379, 1011, exerciseModulus, exerciseCurve), 2)
	assert.ErrorIs(t, err, ErrCurveMismatch)
}
