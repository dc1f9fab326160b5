package handshake

import "github.com/smallyu/go-weierstrass/pkg/ecdh"

// Phase is where a party stands in the handshake.
type Phase int

const (
	ComputingPublicPoint Phase = iota
	AwaitingPeerPoint
	Done
)

func (p Phase) String() string {
	switch p {
	case ComputingPublicPoint:
		return "ComputingPublicPoint"
	case AwaitingPeerPoint:
		return "AwaitingPeerPoint"
	case Done:
		return "Done"
	default:
		return "Unknown"
	}
}

// PointMessage is a concrete implementation of ecdh.Message carrying a
// party's public point.
type PointMessage[P any] struct {
	FromParty string
	ToParty   string
	RoundNum  uint32
	Value     P
}

var _ ecdh.Message[int] = (*PointMessage[int])(nil)

func (m *PointMessage[P]) From() string {
	return m.FromParty
}

func (m *PointMessage[P]) To() string {
	return m.ToParty
}

func (m *PointMessage[P]) RoundNumber() uint32 {
	return m.RoundNum
}

func (m *PointMessage[P]) Point() P {
	return m.Value
}
