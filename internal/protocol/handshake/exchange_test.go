package handshake

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/smallyu/go-weierstrass/internal/crypto/curves"
	"github.com/smallyu/go-weierstrass/internal/logger"
	"github.com/smallyu/go-weierstrass/internal/transport/mocknet"
	"github.com/smallyu/go-weierstrass/pkg/ecdh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Disable()
	m.Run()
}

func TestExchangeSameGenerator(t *testing.T) {
	group := curves.NewWeierstrassGroup(exchangeCurve)
	g := point(t, 13, 15)

	sharedA, sharedB, err := Exchange(context.Background(), group,
		Party[curves.Point]{ID: "alice", Generator: g, Secret: 7},
		Party[curves.Point]{ID: "bob", Generator: g, Secret: 11},
	)
	require.NoError(t, err)
	assert.True(t, sharedA.Equal(sharedB), "%s != %s", sharedA, sharedB)
	assert.True(t, sharedA.Equal(point(t, 13, 28)))
}

func TestExchangeDifferentGenerators(t *testing.T) {
	group := curves.NewWeierstrassGroup(exchangeCurve)

	sharedA, sharedB, err := Exchange(context.Background(), group,
		Party[curves.Point]{ID: "alice", Generator: point(t, 13, 15), Secret: 7},
		Party[curves.Point]{ID: "bob", Generator: point(t, 9, 2), Secret: 11},
	)
	require.NoError(t, err)
	assert.False(t, sharedA.Equal(sharedB), "generators differ, secrets must too")
	// alice multiplies bob's 11*(9,2); bob multiplies alice's 7*(13,15).
	assert.True(t, sharedA.Equal(point(t, 9, 41)), "alice got %s", sharedA)
	assert.True(t, sharedB.Equal(point(t, 13, 28)), "bob got %s", sharedB)
}

func TestExchangeSeededScalars(t *testing.T) {
	group := curves.NewWeierstrassGroup(exchangeCurve)
	g := point(t, 9, 2)
	r := rand.New(rand.NewSource(2024))

	for i := 0; i < 20; i++ {
		ra, err := ecdh.RandomScalar(r, 39)
		require.NoError(t, err)
		rb, err := ecdh.RandomScalar(r, 39)
		require.NoError(t, err)

		sharedA, sharedB, err := Exchange(context.Background(), group,
			Party[curves.Point]{ID: "alice", Generator: g, Secret: ra},
			Party[curves.Point]{ID: "bob", Generator: g, Secret: rb},
		)
		require.NoError(t, err)
		require.True(t, sharedA.Equal(sharedB), "ra=%d rb=%d", ra, rb)

		want, err := g.ScalarMul(ra * rb)
		require.NoError(t, err)
		require.True(t, sharedA.Equal(want))
	}
}

func TestExchangeProductionGroups(t *testing.T) {
	ctx := context.Background()

	t.Run("secp256k1", func(t *testing.T) {
		group := curves.NewSecp256k1()
		g := group.BasePoint()
		sharedA, sharedB, err := Exchange(ctx, group,
			Party[secp256k1Point]{ID: "alice", Generator: g, Secret: 0x1234_5678_9abc},
			Party[secp256k1Point]{ID: "bob", Generator: g, Secret: 0xfedc_ba98_7654},
		)
		require.NoError(t, err)
		assert.True(t, group.Equal(sharedA, sharedB))
	})

	t.Run("ed25519", func(t *testing.T) {
		group := curves.NewEd25519()
		g := group.BasePoint()
		sharedA, sharedB, err := Exchange(ctx, group,
			Party[ed25519Point]{ID: "alice", Generator: g, Secret: 31337},
			Party[ed25519Point]{ID: "bob", Generator: g, Secret: 4242},
		)
		require.NoError(t, err)
		assert.True(t, group.Equal(sharedA, sharedB))
	})
}

func TestExchangeConvergenceProperty(t *testing.T) {
	group := curves.NewWeierstrassGroup(curves.New(-3, -3))
	g, err := curves.NewPrimePoint(379, 1011, 1021, curves.New(-3, -3))
	require.NoError(t, err)

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 20
	properties := gopter.NewProperties(parameters)
	properties.Property("r1*(r2*G) == r2*(r1*G)", prop.ForAll(
		func(r1, r2 uint64) bool {
			a, b, err := Exchange(context.Background(), group,
				Party[curves.Point]{ID: "a", Generator: g, Secret: r1},
				Party[curves.Point]{ID: "b", Generator: g, Secret: r2},
			)
			return err == nil && a.Equal(b)
		},
		gen.UInt64Range(1, 120), gen.UInt64Range(1, 120),
	))
	properties.TestingRun(t)
}

func TestExchangeFailurePropagates(t *testing.T) {
	group := curves.NewWeierstrassGroup(exchangeCurve)
	foreign, err := curves.NewPrimePoint(379, 1011, 1021, curves.New(-3, -3))
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		_, _, err := Exchange(context.Background(), group,
			Party[curves.Point]{ID: "alice", Generator: point(t, 13, 15), Secret: 7},
			Party[curves.Point]{ID: "bob", Generator: foreign, Secret: 11},
		)
		done <- err
	}()

	select {
	case err := <-done:
		require.Error(t, err)
		var pe *ecdh.PartyError
		require.True(t, errors.As(err, &pe))
		assert.Equal(t, "bob", pe.PartyID)
		assert.ErrorIs(t, err, curves.ErrCurveMismatch)
	case <-time.After(5 * time.Second):
		t.Fatal("alice kept waiting after bob failed")
	}
}

func TestRunBlocksUntilCancelled(t *testing.T) {
	alice, _ := mocknet.NewLink[ecdh.Message[curves.Point]]()
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := Run(ctx, testParams(t, 7), alice)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	var pe *ecdh.PartyError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "alice", pe.PartyID)
	assert.Equal(t, "Handshake AwaitingPeerPoint", pe.Phase)
}

func TestRunSkipsLoopback(t *testing.T) {
	ctx := context.Background()
	alice, bob := mocknet.NewLink[ecdh.Message[curves.Point]]()
	params := testParams(t, 7)

	// A looped-back copy of alice's own message arrives before bob's.
	self, _ := point(t, 13, 15).ScalarMul(7)
	require.NoError(t, bob.Out.Send(ctx, &PointMessage[curves.Point]{FromParty: "alice", ToParty: "alice", RoundNum: 1, Value: self}))
	peer, _ := point(t, 13, 15).ScalarMul(11)
	require.NoError(t, bob.Out.Send(ctx, &PointMessage[curves.Point]{FromParty: "bob", ToParty: "alice", RoundNum: 1, Value: peer}))

	shared, err := Run(ctx, params, alice)
	require.NoError(t, err)
	assert.True(t, shared.Equal(point(t, 13, 28)))

	sent, err := bob.In.Receive(ctx)
	require.NoError(t, err)
	assert.True(t, sent.Point().Equal(self))
}

func TestRunSendFailure(t *testing.T) {
	out := mocknet.NewQueue[ecdh.Message[curves.Point]]()
	out.Close()
	endpoint := mocknetEndpoint(out, mocknet.NewQueue[ecdh.Message[curves.Point]]())

	_, err := Run(context.Background(), testParams(t, 7), endpoint)
	assert.ErrorIs(t, err, mocknet.ErrClosed)
}

func TestRunInvalidParams(t *testing.T) {
	alice, _ := mocknet.NewLink[ecdh.Message[curves.Point]]()
	params := testParams(t, 7)
	params.PeerID = params.PartyID

	_, err := Run(context.Background(), params, alice)
	var pe *ecdh.PartyError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, ComputingPublicPoint.String(), pe.Phase)

	_, err = Run[curves.Point](context.Background(), nil, alice)
	assert.Error(t, err)
}
