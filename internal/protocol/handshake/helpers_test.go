package handshake

import (
	"filippo.io/edwards25519"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/smallyu/go-weierstrass/internal/transport"
	"github.com/smallyu/go-weierstrass/internal/transport/mocknet"
	"github.com/smallyu/go-weierstrass/pkg/ecdh"
)

type (
	secp256k1Point = secp256k1.JacobianPoint
	ed25519Point   = *edwards25519.Point
)

func mocknetEndpoint[P any](out, in *mocknet.Queue[ecdh.Message[P]]) transport.Endpoint[ecdh.Message[P]] {
	return transport.Endpoint[ecdh.Message[P]]{Out: out, In: in}
}
