package ecdh

import "errors"

// Common errors returned by the key exchange.
var (
	ErrInvalidMsg   = errors.New("invalid message received")
	ErrProtocolDone = errors.New("protocol already finished")
	ErrInvalidBound = errors.New("scalar bound must be at least 2")
)

// Group is the arithmetic a party needs to run the exchange. P is the point
// representation; it is passed and returned by value and never mutated.
type Group[P any] interface {
	// Name identifies the group in logs (e.g. "secp256k1").
	Name() string

	// ScalarMul computes k * p.
	ScalarMul(p P, k uint64) (P, error)

	// Equal reports whether p and q are the same group element.
	Equal(p, q P) bool

	// Describe renders p for humans.
	Describe(p P) string
}

// Message carries a point from one party to another.
type Message[P any] interface {
	// From returns the sender's party identifier.
	From() string

	// To returns the intended recipient.
	To() string

	// RoundNumber returns the protocol round this message belongs to.
	RoundNumber() uint32

	// Point returns the carried group element.
	Point() P
}

// StateMachine drives one party of the exchange.
// It follows a functional state transition pattern.
type StateMachine[P any] interface {
	// Update applies an incoming message to the current state.
	// It returns:
	// - next: The new state machine.
	// - out: Messages to be sent to the peer.
	// - err: An error if the transition failed.
	Update(msg Message[P]) (next StateMachine[P], out []Message[P], err error)

	// Result returns the shared secret once the exchange is done.
	Result() (P, bool)

	// Details returns metadata about the current state (e.g. "Handshake AwaitingPeerPoint").
	Details() string
}

// Parameters configures one party of an exchange session.
type Parameters[P any] struct {
	PartyID   string   // The identity of the local party
	PeerID    string   // The identity of the only other party
	Group     Group[P] // Arithmetic for the chosen curve
	Generator P        // Agreed base point; parties with different generators will not converge
	Secret    uint64   // Private scalar, never sent
}
