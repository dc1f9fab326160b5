package handshake

import (
	"fmt"

	"github.com/smallyu/go-weierstrass/pkg/ecdh"
)

// round1 computes the public point r*G and addresses it to the peer.
func (s *state[P]) round1() (ecdh.StateMachine[P], []ecdh.Message[P], error) {
	public, err := s.params.Group.ScalarMul(s.params.Generator, s.params.Secret)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to compute public point: %w", err)
	}

	msg := &PointMessage[P]{
		FromParty: s.params.PartyID,
		ToParty:   s.params.PeerID,
		RoundNum:  1,
		Value:     public,
	}

	// The message is handed out; from here on we only wait for the peer.
	s.phase = AwaitingPeerPoint

	return s, []ecdh.Message[P]{msg}, nil
}
