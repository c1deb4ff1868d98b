// Package signature holds the final aggregated threshold Schnorr
// signature and its verification, which is the ordinary single-key
// Schnorr verification equation regardless of how R and z were produced.
package signature

import (
	"github.com/thresh-sig/frost/curve"
	"github.com/thresh-sig/frost/hashing"
)

// Signature is a Schnorr signature (R, z) over the secp256k1 group.
type Signature struct {
	R *curve.Point
	Z *curve.Scalar
}

// Verify checks the signature against group public key y and message msg:
// recomputes c = H(y || R || msg) and checks z*G == R + c*Y.
func (s *Signature) Verify(y *curve.Point, msg []byte) bool {
	c := hashing.Challenge(s.R, y, msg)
	lhs := curve.BaseMul(s.Z)
	rhs := curve.Add(s.R, curve.Mul(y, c))
	return lhs.Equal(rhs)
}
