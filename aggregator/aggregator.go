// Package aggregator implements the SignatureAggregator: the party that
// holds the group's polynomial commitments and public nonce matrix,
// sequences signing sessions over a chosen T-subset, verifies every
// signer's partial response, and assembles the final signature.
package aggregator

import (
	"fmt"

	"github.com/thresh-sig/frost/curve"
	"github.com/thresh-sig/frost/errs"
	"github.com/thresh-sig/frost/hashing"
	"github.com/thresh-sig/frost/party"
	"github.com/thresh-sig/frost/signature"
	"github.com/thresh-sig/frost/vss"
)

// PartialSig is one signer's contribution to a signing session, as
// collected by the orchestrator from each party's Sign call.
type PartialSig struct {
	ID        uint64
	Z         *curve.Scalar
	PublicKey *curve.Point // Y_i, carried as an extra integrity check; recomputed and compared
}

// Aggregator holds group-wide DKG output and the public nonce matrix, and
// drives signing sessions.
type Aggregator struct {
	N, T int

	commitments []*party.PolyCommitment
	groupPoly   *vss.Commitment // coefficient-wise sum of all parties' commitments
	y           *curve.Point

	matrix      [][]party.PublicNonce
	nonceCtr    int
	numNonces   int
	quarantined map[uint64]int
}

// New constructs an Aggregator from the group's N polynomial commitments
// and its N x K public nonce matrix, verifying every id proof up front.
func New(n, t int, commitments []*party.PolyCommitment, matrix [][]party.PublicNonce) (*Aggregator, error) {
	if len(commitments) != n {
		return nil, &errs.SizeMismatch{What: "polynomial commitments", Want: n, Got: len(commitments)}
	}

	vssCommitments := make([]*vss.Commitment, n)
	for i, c := range commitments {
		if err := c.Proof.Verify(curve.FromUint64(c.ID), c.Commitment.ConstantPoint()); err != nil {
			return nil, err
		}
		vssCommitments[i] = c.Commitment
	}

	if len(matrix) != n {
		return nil, &errs.SizeMismatch{What: "nonce matrix rows", Want: n, Got: len(matrix)}
	}
	k := len(matrix[0])
	for _, row := range matrix {
		if len(row) != k {
			return nil, &errs.SizeMismatch{What: "nonce matrix row length", Want: k, Got: len(row)}
		}
	}

	groupPoly := vss.SumAllCoefficients(vssCommitments)

	return &Aggregator{
		N:           n,
		T:           t,
		commitments: commitments,
		groupPoly:   groupPoly,
		y:           groupPoly.ConstantPoint(),
		matrix:      matrix,
		numNonces:   k,
		quarantined: make(map[uint64]int),
	}, nil
}

// GroupKey returns Y, the group public key.
func (a *Aggregator) GroupKey() *curve.Point {
	return a.y
}

// NonceCounter returns the aggregator's current nonce slot index.
func (a *Aggregator) NonceCounter() int {
	return a.nonceCtr
}

// Quarantined returns the current strike count observed for each signer id
// whose partial response has ever failed verification across signing
// attempts. This is a caller-facing hint for subset reselection; it never
// changes the pass/fail outcome of any single Sign call.
func (a *Aggregator) Quarantined() map[uint64]int {
	out := make(map[uint64]int, len(a.quarantined))
	for k, v := range a.quarantined {
		out[k] = v
	}
	return out
}

// Sign verifies and aggregates one partial signature per signer in
// signers, advancing the nonce counter only on success. needsRefill
// reports whether this signing session consumed the last available
// nonce slot; the caller must refresh every party's nonce batch (§4.7)
// before signing again.
func (a *Aggregator) Sign(msg []byte, sigShares []PartialSig, signers []uint64) (sig *signature.Signature, needsRefill bool, err error) {
	if len(sigShares) != len(signers) {
		return nil, false, &errs.SizeMismatch{What: "signature shares vs signers", Want: len(signers), Got: len(sigShares)}
	}
	for i, share := range sigShares {
		if share.ID != signers[i] {
			return nil, false, fmt.Errorf("aggregator: sig share %d does not match signer id %d", share.ID, signers[i])
		}
	}

	row := make([]hashing.NoncePair, len(signers))
	for i, sid := range signers {
		idx := int(sid) - 1
		if idx < 0 || idx >= len(a.matrix) || a.nonceCtr >= len(a.matrix[idx]) {
			return nil, false, &errs.NonceMissing{ID: sid, Index: uint64(a.nonceCtr)}
		}
		pn := a.matrix[idx][a.nonceCtr]
		row[i] = hashing.NoncePair{D: pn.D, E: pn.E}
	}

	signerScalars := make([]*curve.Scalar, len(signers))
	for i, sid := range signers {
		signerScalars[i] = curve.FromUint64(sid)
	}

	rPoints := make([]*curve.Point, len(signers))
	for i := range signers {
		rho := hashing.Binding(signerScalars[i], row, msg)
		rPoints[i] = curve.Add(row[i].D, curve.Mul(row[i].E, rho))
	}
	r := curve.SumPoints(rPoints...)
	c := hashing.Challenge(r, a.y, msg)

	var failed []uint64
	z := curve.Zero()
	for i, share := range sigShares {
		lambda := vss.Lagrange(signerScalars[i], signerScalars)
		yK := a.groupPoly.EvalInExponent(signerScalars[i])
		if share.PublicKey != nil && !share.PublicKey.Equal(yK) {
			failed = append(failed, share.ID)
			continue
		}
		lhs := curve.BaseMul(share.Z)
		rhs := curve.Add(rPoints[i], curve.Mul(yK, c.Mul(lambda)))
		if !lhs.Equal(rhs) {
			failed = append(failed, share.ID)
			continue
		}
		z = z.Add(share.Z)
	}

	if len(failed) > 0 {
		for _, id := range failed {
			a.quarantined[id]++
		}
		return nil, false, &errs.BadSigners{IDs: failed}
	}

	a.nonceCtr++
	if a.nonceCtr >= a.numNonces {
		a.nonceCtr = 0
		return &signature.Signature{R: r, Z: z}, true, nil
	}

	return &signature.Signature{R: r, Z: z}, false, nil
}

// SetGroupNonces replaces the full nonce matrix and resets the nonce
// counter to 0, per the exhaustion refresh policy.
func (a *Aggregator) SetGroupNonces(matrix [][]party.PublicNonce) error {
	if len(matrix) != a.N {
		return &errs.SizeMismatch{What: "nonce matrix rows", Want: a.N, Got: len(matrix)}
	}
	k := len(matrix[0])
	for _, row := range matrix {
		if len(row) != k {
			return &errs.SizeMismatch{What: "nonce matrix row length", Want: k, Got: len(row)}
		}
	}
	a.matrix = matrix
	a.numNonces = k
	a.nonceCtr = 0
	return nil
}

// SetPartyNonces replaces a single row of the nonce matrix after one
// party's loss-triggered refresh, and resets the nonce counter to 0
// because slot indices across rows must agree.
func (a *Aggregator) SetPartyNonces(id uint64, row []party.PublicNonce) error {
	idx := int(id) - 1
	if idx < 0 || idx >= len(a.matrix) {
		return &errs.SizeMismatch{What: "nonce matrix party index", Want: len(a.matrix), Got: idx + 1}
	}
	if len(row) != a.numNonces {
		return &errs.SizeMismatch{What: "nonce row length", Want: a.numNonces, Got: len(row)}
	}
	a.matrix[idx] = row
	a.nonceCtr = 0
	return nil
}
