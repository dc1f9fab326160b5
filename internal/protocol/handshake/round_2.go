package handshake

import (
	"fmt"

	"github.com/smallyu/go-weierstrass/pkg/ecdh"
)

// round2 derives the shared secret r*(peer public point).
func (s *state[P]) round2(msg ecdh.Message[P]) (ecdh.StateMachine[P], []ecdh.Message[P], error) {
	shared, err := s.params.Group.ScalarMul(msg.Point(), s.params.Secret)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to derive shared secret: %w", err)
	}

	// Protocol Finished!
	return &finishedState[P]{shared: shared}, nil, nil
}
