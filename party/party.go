// Package party implements one participant's state across the DKG round,
// the nonce lifecycle, and the signing protocol: a degree-(t-1) secret
// polynomial, the shares it receives from peers, its derived signing
// share and group public key, its private nonce batch, and the public
// nonce matrix it tracks for the rest of the group.
package party

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/thresh-sig/frost/curve"
	"github.com/thresh-sig/frost/ephemeral"
	"github.com/thresh-sig/frost/errs"
	"github.com/thresh-sig/frost/hashing"
	"github.com/thresh-sig/frost/vss"
)

// PolyCommitment is a party's broadcast polynomial commitment plus its
// Schnorr proof of knowledge of the constant term: A_i = (id_proof_i, phi_i).
// EphemeralPublicKey is published alongside it so every other party can
// derive the per-peer key used to decrypt the Share this party later sends
// it confidentially.
type PolyCommitment struct {
	ID                 uint64
	Proof              *vss.Proof
	Commitment         *vss.Commitment
	EphemeralPublicKey *ephemeral.PublicKey
}

// PublicNonce is the public commitment (D, E) to one (d, e) nonce pair.
type PublicNonce struct {
	D, E *curve.Point
}

// nonceSecret is one entry of a party's private nonce batch.
type nonceSecret struct {
	d, e     *curve.Scalar
	consumed bool
}

// Party holds one participant's full DKG and signing state. It is not
// safe for concurrent use: per spec, the core is single-threaded per
// party.
type Party struct {
	ID uint64
	N  int
	T  int

	poly      *vss.Polynomial
	ephemeral *ephemeral.KeyPair

	received map[uint64]*curve.Scalar
	x        *curve.Scalar
	y        *curve.Point

	nonces []nonceSecret
	matrix [][]PublicNonce // N rows indexed by (id-1), K columns
}

// New creates a party holding a freshly generated random degree-(t-1)
// polynomial. id must be the party's nonzero group identifier (by
// convention, its 1-based index).
func New(id uint64, n, t int) (*Party, error) {
	if id == 0 {
		return nil, fmt.Errorf("party: id must be nonzero")
	}
	if t < 1 || t > n {
		return nil, fmt.Errorf("party: threshold %d out of range for group size %d", t, n)
	}
	poly, err := vss.Generate(t)
	if err != nil {
		return nil, fmt.Errorf("party: generating polynomial: %w", err)
	}
	keyPair, err := ephemeral.GenerateKeyPair()
	if err != nil {
		return nil, fmt.Errorf("party: generating ephemeral key pair: %w", err)
	}
	return &Party{
		ID:        id,
		N:         n,
		T:         t,
		poly:      poly,
		ephemeral: keyPair,
		received:  make(map[uint64]*curve.Scalar, n),
	}, nil
}

func (p *Party) idScalar() *curve.Scalar {
	return curve.FromUint64(p.ID)
}

// PolyCommitment returns this party's broadcast commitment to its secret
// polynomial, together with a Schnorr proof of knowledge of the constant
// term bound to its id and the ephemeral public key peers will use to
// decrypt the Share this party sends them.
func (p *Party) PolyCommitment() (*PolyCommitment, error) {
	commitment := vss.Commit(p.poly)
	proof, err := vss.Prove(p.idScalar(), p.poly.Constant(), commitment.ConstantPoint())
	if err != nil {
		return nil, fmt.Errorf("party: proving id proof: %w", err)
	}
	return &PolyCommitment{
		ID:                 p.ID,
		Proof:              proof,
		Commitment:         commitment,
		EphemeralPublicKey: p.ephemeral.PublicKey,
	}, nil
}

// Shares evaluates this party's polynomial at every recipient's id and
// encrypts each evaluation under a per-recipient key derived from this
// party's ephemeral private key and the recipient's published ephemeral
// public key, so only that recipient can recover its share. recipients
// must include this party's own PolyCommitment if it is to receive its
// own self-evaluation.
func (p *Party) Shares(recipients []*PolyCommitment) (map[uint64][]byte, error) {
	shares := make(map[uint64][]byte, len(recipients))
	for _, r := range recipients {
		share := p.poly.Eval(curve.FromUint64(r.ID))
		shareBytes := share.Bytes()
		symKey := p.ephemeral.PrivateKey.Ecdh(r.EphemeralPublicKey)
		ciphertext, err := symKey.Encrypt(shareBytes[:])
		if err != nil {
			return nil, fmt.Errorf("party: encrypting share for party %d: %w", r.ID, err)
		}
		shares[r.ID] = ciphertext
	}
	return shares, nil
}

// ComputeSecret decrypts every received Share using the sender's published
// ephemeral public key, verifies every polynomial commitment's id proof
// and every decrypted evaluation against its sender's commitment, then
// derives this party's signing share and the group public key.
//
// received must contain exactly one ciphertext per party in all (including
// this party's own self-evaluation); all must have exactly N entries.
func (p *Party) ComputeSecret(received map[uint64][]byte, all []*PolyCommitment) error {
	if len(all) != p.N {
		return &errs.SizeMismatch{What: "polynomial commitments", Want: p.N, Got: len(all)}
	}

	for _, a := range all {
		if err := a.Proof.Verify(curve.FromUint64(a.ID), a.Commitment.ConstantPoint()); err != nil {
			return err
		}
	}

	self := p.idScalar()
	x := curve.Zero()
	y := curve.Identity()
	decrypted := make(map[uint64]*curve.Scalar, p.N)
	for _, a := range all {
		ciphertext, ok := received[a.ID]
		if !ok {
			return &errs.BadShare{FromID: a.ID, ToID: p.ID}
		}
		symKey := p.ephemeral.PrivateKey.Ecdh(a.EphemeralPublicKey)
		plaintext, err := symKey.Decrypt(ciphertext)
		if err != nil {
			return &errs.BadShare{FromID: a.ID, ToID: p.ID}
		}
		share, err := curve.ScalarFromBytes(plaintext)
		if err != nil {
			return &errs.BadShare{FromID: a.ID, ToID: p.ID}
		}
		if !a.Commitment.Verify(self, share) {
			return &errs.BadShare{FromID: a.ID, ToID: p.ID}
		}
		decrypted[a.ID] = share
		x = x.Add(share)
		y = curve.Add(y, a.Commitment.ConstantPoint())
	}

	p.received = decrypted
	p.x = x
	p.y = y
	return nil
}

// SigningShare returns x_i, this party's share of the implicit group
// secret. Valid only after ComputeSecret succeeds.
func (p *Party) SigningShare() *curve.Scalar {
	return p.x
}

// GroupKey returns Y, the group public key. Valid only after
// ComputeSecret succeeds.
func (p *Party) GroupKey() *curve.Point {
	return p.y
}

// GenNonces generates k fresh (d, e) pairs, replacing any existing batch,
// and returns their public commitments for broadcast.
func (p *Party) GenNonces(k int) ([]PublicNonce, error) {
	nonces := make([]nonceSecret, k)
	pubs := make([]PublicNonce, k)
	for i := 0; i < k; i++ {
		d, err := curve.RandomScalar()
		if err != nil {
			return nil, fmt.Errorf("party: generating nonce d: %w", err)
		}
		e, err := curve.RandomScalar()
		if err != nil {
			return nil, fmt.Errorf("party: generating nonce e: %w", err)
		}
		nonces[i] = nonceSecret{d: d, e: e}
		pubs[i] = PublicNonce{D: curve.BaseMul(d), E: curve.BaseMul(e)}
	}
	p.nonces = nonces
	return pubs, nil
}

// SetGroupNonces installs a full N-row public nonce matrix, as broadcast
// after every party runs GenNonces.
func (p *Party) SetGroupNonces(matrix [][]PublicNonce) error {
	if len(matrix) != p.N {
		return &errs.SizeMismatch{What: "nonce matrix rows", Want: p.N, Got: len(matrix)}
	}
	k := len(matrix[0])
	for _, row := range matrix {
		if len(row) != k {
			return &errs.SizeMismatch{What: "nonce matrix row length", Want: k, Got: len(row)}
		}
	}
	p.matrix = matrix
	return nil
}

// SetPartyNonces replaces a single row of the public nonce matrix, used
// when one party refreshes its batch after losing it.
func (p *Party) SetPartyNonces(id uint64, row []PublicNonce) error {
	idx := int(id) - 1
	if idx < 0 || idx >= len(p.matrix) {
		return &errs.SizeMismatch{What: "nonce matrix party index", Want: len(p.matrix), Got: idx + 1}
	}
	if len(p.matrix[idx]) > 0 && len(row) != len(p.matrix[idx]) {
		return &errs.SizeMismatch{What: "nonce row length", Want: len(p.matrix[idx]), Got: len(row)}
	}
	p.matrix[idx] = row
	return nil
}

// Sign produces this party's partial response z_i for msg, using the
// nonce pair at nonceIndex and the given signer subset (which must
// include this party's own id). The nonce slot is marked consumed and
// must never be used again for any subsequent sign call.
func (p *Party) Sign(msg []byte, signers []uint64, nonceIndex int) (*curve.Scalar, error) {
	if nonceIndex < 0 || nonceIndex >= len(p.nonces) {
		return nil, &errs.NonceMissing{ID: p.ID, Index: uint64(nonceIndex)}
	}
	secret := p.nonces[nonceIndex]
	if secret.consumed {
		return nil, &errs.NonceExhausted{ID: p.ID}
	}

	selfPos := slices.Index(signers, p.ID)
	if selfPos == -1 {
		return nil, fmt.Errorf("party: %d is not a member of the signer subset", p.ID)
	}

	row := make([]hashing.NoncePair, len(signers))
	for i, sid := range signers {
		idx := int(sid) - 1
		if idx < 0 || idx >= len(p.matrix) || nonceIndex >= len(p.matrix[idx]) {
			return nil, &errs.NonceMissing{ID: sid, Index: uint64(nonceIndex)}
		}
		pn := p.matrix[idx][nonceIndex]
		row[i] = hashing.NoncePair{D: pn.D, E: pn.E}
	}

	signerScalars := make([]*curve.Scalar, len(signers))
	rPoints := make([]*curve.Point, len(signers))
	var rhoSelf *curve.Scalar
	for i, sid := range signers {
		sidScalar := curve.FromUint64(sid)
		signerScalars[i] = sidScalar
		rho := hashing.Binding(sidScalar, row, msg)
		rPoints[i] = curve.Add(row[i].D, curve.Mul(row[i].E, rho))
		if sid == p.ID {
			rhoSelf = rho
		}
	}
	r := curve.SumPoints(rPoints...)
	c := hashing.Challenge(r, p.y, msg)
	lambda := vss.Lagrange(p.idScalar(), signerScalars)

	z := secret.d.Add(rhoSelf.Mul(secret.e)).Add(c.Mul(lambda).Mul(p.x))

	p.nonces[nonceIndex].consumed = true
	return z, nil
}
