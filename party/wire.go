package party

import (
	"fmt"

	"github.com/thresh-sig/frost/curve"
	"github.com/thresh-sig/frost/ephemeral"
	"github.com/thresh-sig/frost/vss"
	"github.com/thresh-sig/frost/wire"
)

// ToWire encodes a PolyCommitment into its wire.Commit broadcast form.
func (pc *PolyCommitment) ToWire() wire.Commit {
	points := make([][]byte, len(pc.Commitment.Points))
	for i, p := range pc.Commitment.Points {
		compressed := p.Compressed()
		points[i] = compressed[:]
	}
	proofR := pc.Proof.R.Compressed()
	return wire.Commit{
		ID:           pc.ID,
		Points:       points,
		ProofR:       proofR[:],
		ProofZ:       pc.Proof.Z.Bytes(),
		EphemeralPub: pc.EphemeralPublicKey.Bytes(),
	}
}

// PolyCommitmentFromWire decodes a wire.Commit back into a PolyCommitment.
func PolyCommitmentFromWire(w wire.Commit) (*PolyCommitment, error) {
	points := make([]*curve.Point, len(w.Points))
	for i, b := range w.Points {
		p, err := curve.PointFromCompressed(b)
		if err != nil {
			return nil, fmt.Errorf("party: decoding commitment point %d: %w", i, err)
		}
		points[i] = p
	}
	r, err := curve.PointFromCompressed(w.ProofR)
	if err != nil {
		return nil, fmt.Errorf("party: decoding id proof nonce: %w", err)
	}
	z, err := curve.ScalarFromBytes(w.ProofZ[:])
	if err != nil {
		return nil, fmt.Errorf("party: decoding id proof response: %w", err)
	}
	ephemeralPub, err := ephemeral.ParsePublicKey(w.EphemeralPub)
	if err != nil {
		return nil, fmt.Errorf("party: decoding ephemeral public key: %w", err)
	}
	return &PolyCommitment{
		ID:                 w.ID,
		Proof:              &vss.Proof{R: r, Z: z},
		Commitment:         &vss.Commitment{Points: points},
		EphemeralPublicKey: ephemeralPub,
	}, nil
}

// ToWireNonceBatch encodes a batch of public nonce commitments into its wire.NonceBatch
// broadcast form.
func ToWireNonceBatch(id uint64, pubs []PublicNonce) wire.NonceBatch {
	d := make([][]byte, len(pubs))
	e := make([][]byte, len(pubs))
	for i, pn := range pubs {
		dc := pn.D.Compressed()
		ec := pn.E.Compressed()
		d[i] = dc[:]
		e[i] = ec[:]
	}
	return wire.NonceBatch{ID: id, D: d, E: e}
}

// NonceBatchFromWire decodes a wire.NonceBatch back into public nonce
// commitments.
func NonceBatchFromWire(w wire.NonceBatch) ([]PublicNonce, error) {
	if len(w.D) != len(w.E) {
		return nil, fmt.Errorf("party: nonce batch D/E length mismatch (%d vs %d)", len(w.D), len(w.E))
	}
	pubs := make([]PublicNonce, len(w.D))
	for i := range w.D {
		d, err := curve.PointFromCompressed(w.D[i])
		if err != nil {
			return nil, fmt.Errorf("party: decoding D[%d]: %w", i, err)
		}
		e, err := curve.PointFromCompressed(w.E[i])
		if err != nil {
			return nil, fmt.Errorf("party: decoding E[%d]: %w", i, err)
		}
		pubs[i] = PublicNonce{D: d, E: e}
	}
	return pubs, nil
}
