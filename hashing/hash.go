// Package hashing implements the domain-separated hash-to-scalar functions
// the protocol uses to derive binding values and Schnorr challenges. Both
// follow the BIP-340 tagged-hash construction: SHA256(SHA256(tag) ||
// SHA256(tag) || msg).
package hashing

import (
	"crypto/sha256"

	"github.com/thresh-sig/frost/curve"
)

const (
	tagBinding   = "FROST/binding"
	tagChallenge = "FROST/challenge"
	tagIDProof   = "FROST/id-proof"
)

// taggedHash computes the BIP-340 tagged hash of msg under tag.
func taggedHash(tag string, msg ...[]byte) [32]byte {
	tagHash := sha256.Sum256([]byte(tag))
	h := sha256.New()
	h.Write(tagHash[:])
	h.Write(tagHash[:])
	for _, m := range msg {
		h.Write(m)
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// toScalar reduces a tagged-hash digest into a curve scalar.
func toScalar(digest [32]byte) *curve.Scalar {
	s, err := curve.ScalarFromBytes(digest[:])
	if err != nil {
		// ScalarFromBytes only fails on wrong-length input; digest is
		// always exactly 32 bytes.
		panic(err)
	}
	return s
}

// NoncePair is a public nonce commitment (D, E) = (d*G, e*G), one entry of
// a signing subset's row in the nonce matrix at a fixed slot.
type NoncePair struct {
	D, E *curve.Point
}

// Binding computes rho_i, the binding factor for signer id, over the full
// ordered list of the signing subset's nonce commitments at the slot being
// used and the message: H(id || D_1 || E_1 || ... || D_t || E_t || msg).
// Every signer in the subset hashes the same signers slice and differs only
// in id.
//
// The baseline construction binds the per-signer id and the full commitment
// row but not the signer id *list* itself. A deployment wanting replay
// protection across differing signer subsets sharing the same nonce
// commitments can extend this by additionally hashing in the sorted signer
// id list; that extension is not implemented here.
func Binding(id *curve.Scalar, signers []NoncePair, msg []byte) *curve.Scalar {
	parts := make([][]byte, 0, 2+2*len(signers))
	idBytes := id.Bytes()
	parts = append(parts, idBytes[:])
	dBufs := make([][33]byte, len(signers))
	eBufs := make([][33]byte, len(signers))
	for i, np := range signers {
		dBufs[i] = np.D.Compressed()
		eBufs[i] = np.E.Compressed()
		parts = append(parts, dBufs[i][:], eBufs[i][:])
	}
	parts = append(parts, msg)
	digest := taggedHash(tagBinding, parts...)
	return toScalar(digest)
}

// Challenge computes the Schnorr challenge c = H(Y || R || msg) binding the
// group public key Y, the group commitment R, and the message.
func Challenge(r, y *curve.Point, msg []byte) *curve.Scalar {
	rBytes := r.Compressed()
	yBytes := y.Compressed()
	digest := taggedHash(tagChallenge, yBytes[:], rBytes[:], msg)
	return toScalar(digest)
}

// IDProofChallenge computes the challenge for a party's Schnorr
// proof-of-knowledge of the constant term of its secret polynomial,
// binding the party's id and the commitment to the constant term.
func IDProofChallenge(id *curve.Scalar, commitment, noncePoint *curve.Point) *curve.Scalar {
	idBytes := id.Bytes()
	cBytes := commitment.Compressed()
	rBytes := noncePoint.Compressed()
	digest := taggedHash(tagIDProof, idBytes[:], cBytes[:], rBytes[:])
	return toScalar(digest)
}
