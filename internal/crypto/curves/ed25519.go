package curves

import (
	"encoding/binary"
	"encoding/hex"

	"filippo.io/edwards25519"
	"github.com/smallyu/go-weierstrass/pkg/ecdh"
)

// Ed25519Group runs the key exchange over the twisted Edwards curve behind
// Ed25519. It is not a Weierstrass curve; the exchange only needs the group.
type Ed25519Group struct{}

var _ ecdh.Group[*edwards25519.Point] = Ed25519Group{}

func NewEd25519() Ed25519Group {
	return Ed25519Group{}
}

func (Ed25519Group) Name() string {
	return "Ed25519"
}

func (Ed25519Group) BasePoint() *edwards25519.Point {
	return edwards25519.NewGeneratorPoint()
}

func (Ed25519Group) ScalarMul(p *edwards25519.Point, k uint64) (*edwards25519.Point, error) {
	// edwards25519 uses little-endian scalars; any uint64 is below the group order.
	var buf [32]byte
	binary.LittleEndian.PutUint64(buf[:8], k)
	s, err := edwards25519.NewScalar().SetCanonicalBytes(buf[:])
	if err != nil {
		return nil, err
	}
	return edwards25519.NewIdentityPoint().ScalarMult(s, p), nil
}

func (Ed25519Group) Equal(p, q *edwards25519.Point) bool {
	return p.Equal(q) == 1
}

func (Ed25519Group) Describe(p *edwards25519.Point) string {
	return hex.EncodeToString(p.Bytes())
}
