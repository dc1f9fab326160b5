package handshake

import (
	"context"

	"github.com/smallyu/go-weierstrass/internal/transport/mocknet"
	"github.com/smallyu/go-weierstrass/pkg/ecdh"
	"golang.org/x/sync/errgroup"
)

// Party describes one side of a two-party exchange.
type Party[P any] struct {
	ID        string
	Generator P
	Secret    uint64
}

func (p Party[P]) params(group ecdh.Group[P], peer string) *ecdh.Parameters[P] {
	return &ecdh.Parameters[P]{
		PartyID:   p.ID,
		PeerID:    peer,
		Group:     group,
		Generator: p.Generator,
		Secret:    p.Secret,
	}
}

// Exchange runs a and b concurrently over an in-memory link and returns the
// secret each of them derived. The secrets agree only when both parties use
// the same generator. If one party fails, the other stops waiting.
func Exchange[P any](ctx context.Context, group ecdh.Group[P], a, b Party[P]) (sharedA, sharedB P, err error) {
	linkA, linkB := mocknet.NewLink[ecdh.Message[P]]()

	var resA, resB P
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		shared, err := Run(ctx, a.params(group, b.ID), linkA)
		resA = shared
		return err
	})
	eg.Go(func() error {
		shared, err := Run(ctx, b.params(group, a.ID), linkB)
		resB = shared
		return err
	})
	if err := eg.Wait(); err != nil {
		var zero P
		return zero, zero, err
	}
	return resA, resB, nil
}
