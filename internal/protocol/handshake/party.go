package handshake

import (
	"context"
	"fmt"

	"github.com/smallyu/go-weierstrass/internal/logger"
	"github.com/smallyu/go-weierstrass/internal/transport"
	"github.com/smallyu/go-weierstrass/pkg/ecdh"
)

// Run drives one party to completion: it sends the public point, blocks until
// the peer's point arrives on endpoint.In and returns the shared secret.
// There is no built-in timeout; cancel ctx to give up waiting.
func Run[P any](ctx context.Context, params *ecdh.Parameters[P], endpoint transport.Endpoint[ecdh.Message[P]]) (P, error) {
	var zero P
	if params == nil {
		return zero, ecdh.NewPartyError("", ComputingPublicPoint.String(), fmt.Errorf("handshake: nil parameters"))
	}
	sm, out, err := NewStateMachine(params)
	if err != nil {
		return zero, ecdh.NewPartyError(params.PartyID, ComputingPublicPoint.String(), err)
	}
	log := logger.Logger().With().
		Str("party", params.PartyID).
		Str("group", params.Group.Name()).
		Logger()

	for {
		for _, msg := range out {
			if err := endpoint.Out.Send(ctx, msg); err != nil {
				return zero, ecdh.NewPartyError(params.PartyID, sm.Details(), fmt.Errorf("failed to send to %s: %w", msg.To(), err))
			}
			log.Debug().Str("to", msg.To()).Str("public", params.Group.Describe(msg.Point())).Msg("sent public point")
		}

		if shared, ok := sm.Result(); ok {
			log.Debug().Str("shared", params.Group.Describe(shared)).Msg("derived shared secret")
			return shared, nil
		}

		log.Debug().Str("state", sm.Details()).Msg("waiting for peer")
		msg, err := endpoint.In.Receive(ctx)
		if err != nil {
			return zero, ecdh.NewPartyError(params.PartyID, sm.Details(), err)
		}

		next, newOut, err := sm.Update(msg)
		if err != nil {
			return zero, ecdh.NewPartyError(params.PartyID, sm.Details(), err)
		}
		sm, out = next, newOut
	}
}
