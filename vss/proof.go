package vss

import (
	"fmt"

	"github.com/thresh-sig/frost/curve"
	"github.com/thresh-sig/frost/errs"
	"github.com/thresh-sig/frost/hashing"
)

// Proof is a Schnorr proof of knowledge of the constant term of a party's
// secret polynomial, binding the proof to that party's id so it cannot be
// replayed by another participant.
type Proof struct {
	R *curve.Point  // nonce commitment k*G
	Z *curve.Scalar // response k + a_0*c
}

// Prove builds the id proof for a party holding secret a0 (the constant
// term of its polynomial) and committed point a0G = a0*G.
func Prove(id *curve.Scalar, a0 *curve.Scalar, a0G *curve.Point) (*Proof, error) {
	k, err := curve.RandomScalar()
	if err != nil {
		return nil, fmt.Errorf("vss: generating id proof nonce: %w", err)
	}
	r := curve.BaseMul(k)
	c := hashing.IDProofChallenge(id, a0G, r)
	z := k.Add(a0.Mul(c))
	return &Proof{R: r, Z: z}, nil
}

// Verify checks the id proof against the claimed commitment to the
// constant term, a0G, for the given party id.
func (p *Proof) Verify(id *curve.Scalar, a0G *curve.Point) error {
	c := hashing.IDProofChallenge(id, a0G, p.R)
	lhs := curve.BaseMul(p.Z)
	rhs := curve.Add(p.R, curve.Mul(a0G, c))
	if !lhs.Equal(rhs) {
		idBytes := id.Bytes()
		return &errs.BadIdProof{ID: scalarToUint64(idBytes)}
	}
	return nil
}

// scalarToUint64 recovers a small party id from its 32-byte big-endian
// encoding. Party ids are always assigned as small sequential integers,
// so the low 8 bytes are sufficient.
func scalarToUint64(b [32]byte) uint64 {
	var v uint64
	for i := 24; i < 32; i++ {
		v = v<<8 | uint64(b[i])
	}
	return v
}
