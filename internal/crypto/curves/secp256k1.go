package curves

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/smallyu/go-weierstrass/pkg/ecdh"
)

// Secp256k1Group runs the key exchange over secp256k1 (y^2 = x^3 + 7), a
// short Weierstrass curve of cryptographic size.
type Secp256k1Group struct{}

// Secp256k1Point is the point type the secp256k1 group operates on.
type Secp256k1Point = secp256k1.JacobianPoint

var _ ecdh.Group[secp256k1.JacobianPoint] = Secp256k1Group{}

// NewSecp256k1 returns the secp256k1 group.
func NewSecp256k1() Secp256k1Group {
	return Secp256k1Group{}
}

func (Secp256k1Group) Name() string {
	return "secp256k1"
}

// BasePoint returns the standard generator G in affine form.
func (Secp256k1Group) BasePoint() secp256k1.JacobianPoint {
	var one secp256k1.ModNScalar
	one.SetInt(1)
	var g secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(&one, &g)
	g.ToAffine()
	return g
}

// ScalarMul returns k*p normalized to affine coordinates. The infinity point
// normalizes to (0, 0).
func (Secp256k1Group) ScalarMul(p secp256k1.JacobianPoint, k uint64) (secp256k1.JacobianPoint, error) {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], k)
	var s secp256k1.ModNScalar
	s.SetByteSlice(buf[:])

	var r secp256k1.JacobianPoint
	secp256k1.ScalarMultNonConst(&s, &p, &r)
	r.ToAffine()
	return r, nil
}

func (Secp256k1Group) Equal(p, q secp256k1.JacobianPoint) bool {
	p.ToAffine()
	q.ToAffine()
	return p.X.Equals(&q.X) && p.Y.Equals(&q.Y)
}

// Describe renders the compressed SEC1 encoding in hex.
func (Secp256k1Group) Describe(p secp256k1.JacobianPoint) string {
	p.ToAffine()
	if p.X.IsZero() && p.Y.IsZero() {
		return "Infinity"
	}
	return hex.EncodeToString(secp256k1.NewPublicKey(&p.X, &p.Y).SerializeCompressed())
}
