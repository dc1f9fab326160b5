package handshake

import (
	"errors"
	"fmt"

	"github.com/smallyu/go-weierstrass/pkg/ecdh"
)

type state[P any] struct {
	params *ecdh.Parameters[P]

	// Current round number (1-based)
	round int
	phase Phase
}

// NewStateMachine initializes one party of the handshake.
// It immediately executes Round 1 logic to produce the public point message.
func NewStateMachine[P any](params *ecdh.Parameters[P]) (ecdh.StateMachine[P], []ecdh.Message[P], error) {
	if err := validate(params); err != nil {
		return nil, nil, err
	}
	s := &state[P]{
		params: params,
		round:  1,
		phase:  ComputingPublicPoint,
	}
	return s.round1()
}

func validate[P any](params *ecdh.Parameters[P]) error {
	switch {
	case params == nil:
		return errors.New("handshake: nil parameters")
	case params.Group == nil:
		return errors.New("handshake: no group configured")
	case params.PartyID == "" || params.PeerID == "":
		return errors.New("handshake: party and peer IDs are required")
	case params.PartyID == params.PeerID:
		return fmt.Errorf("handshake: party %s cannot exchange with itself", params.PartyID)
	}
	return nil
}

func (s *state[P]) Update(msg ecdh.Message[P]) (ecdh.StateMachine[P], []ecdh.Message[P], error) {
	// Validate message round
	if msg.RoundNumber() != uint32(s.round) {
		return nil, nil, fmt.Errorf("%w: round %d, expected %d", ecdh.ErrInvalidMsg, msg.RoundNumber(), s.round)
	}

	// Validate sender
	senderID := msg.From()
	if senderID == s.params.PartyID {
		return s, nil, nil // Ignore own messages if looped back
	}
	if senderID != s.params.PeerID {
		return nil, nil, fmt.Errorf("%w: unexpected sender %q", ecdh.ErrInvalidMsg, senderID)
	}
	if to := msg.To(); to != "" && to != s.params.PartyID {
		return nil, nil, fmt.Errorf("%w: addressed to %q", ecdh.ErrInvalidMsg, to)
	}

	return s.round2(msg)
}

func (s *state[P]) Result() (P, bool) {
	var zero P
	return zero, false
}

func (s *state[P]) Details() string {
	return fmt.Sprintf("Handshake %s", s.phase)
}

type finishedState[P any] struct {
	shared P
}

func (s *finishedState[P]) Update(msg ecdh.Message[P]) (ecdh.StateMachine[P], []ecdh.Message[P], error) {
	return nil, nil, ecdh.ErrProtocolDone
}

func (s *finishedState[P]) Result() (P, bool) {
	return s.shared, true
}

func (s *finishedState[P]) Details() string {
	return "Handshake " + Done.String()
}
