package aggregator_test

import (
	"errors"
	"testing"

	"github.com/thresh-sig/frost/aggregator"
	"github.com/thresh-sig/frost/curve"
	"github.com/thresh-sig/frost/errs"
	"github.com/thresh-sig/frost/party"
)

// group bundles the full DKG output for n parties with threshold t, ready
// to drive signing sessions against an Aggregator built from the same
// commitments and nonce matrix.
type group struct {
	parties []*party.Party
	agg     *aggregator.Aggregator
}

func newGroup(t *testing.T, n, thresh, numNonces int) *group {
	t.Helper()

	parties := make([]*party.Party, n)
	for i := 0; i < n; i++ {
		p, err := party.New(uint64(i+1), n, thresh)
		if err != nil {
			t.Fatal(err)
		}
		parties[i] = p
	}

	commitments := make([]*party.PolyCommitment, n)
	for i, p := range parties {
		c, err := p.PolyCommitment()
		if err != nil {
			t.Fatal(err)
		}
		commitments[i] = c
	}

	ciphertextsBySender := make([]map[uint64][]byte, n)
	for i, p := range parties {
		cts, err := p.Shares(commitments)
		if err != nil {
			t.Fatalf("party %d: Shares: %v", p.ID, err)
		}
		ciphertextsBySender[i] = cts
	}
	for i, p := range parties {
		received := make(map[uint64][]byte, n)
		for j, sender := range parties {
			received[sender.ID] = ciphertextsBySender[j][uint64(i+1)]
		}
		if err := p.ComputeSecret(received, commitments); err != nil {
			t.Fatalf("party %d: ComputeSecret: %v", p.ID, err)
		}
	}

	matrix := make([][]party.PublicNonce, n)
	for i, p := range parties {
		pubs, err := p.GenNonces(numNonces)
		if err != nil {
			t.Fatal(err)
		}
		matrix[i] = pubs
	}
	for _, p := range parties {
		if err := p.SetGroupNonces(matrix); err != nil {
			t.Fatal(err)
		}
	}

	agg, err := aggregator.New(n, thresh, commitments, matrix)
	if err != nil {
		t.Fatal(err)
	}

	return &group{parties: parties, agg: agg}
}

func (g *group) sign(t *testing.T, msg []byte, signers []uint64, nonceIndex int) (*aggregator.Aggregator, []aggregator.PartialSig) {
	t.Helper()
	byID := make(map[uint64]*party.Party, len(g.parties))
	for _, p := range g.parties {
		byID[p.ID] = p
	}

	shares := make([]aggregator.PartialSig, len(signers))
	for i, id := range signers {
		z, err := byID[id].Sign(msg, signers, nonceIndex)
		if err != nil {
			t.Fatalf("party %d: Sign: %v", id, err)
		}
		shares[i] = aggregator.PartialSig{ID: id, Z: z}
	}
	return g.agg, shares
}

// Basic group of 3 parties, threshold 2: a 2-of-3 signing session must
// produce a signature that verifies under the group's public key.
func TestSignBasicTwoOfThree(t *testing.T) {
	g := newGroup(t, 3, 2, 4)
	msg := []byte("basic threshold signing")
	signers := []uint64{1, 2}

	agg, shares := g.sign(t, msg, signers, 0)
	sig, needsRefill, err := agg.Sign(msg, shares, signers)
	if err != nil {
		t.Fatal(err)
	}
	if needsRefill {
		t.Fatalf("unexpected refill after consuming 1 of 4 nonces")
	}
	if !sig.Verify(agg.GroupKey(), msg) {
		t.Fatalf("aggregated signature failed to verify")
	}
}

// A larger group that exhausts its nonce batch mid-way through a run of
// signing sessions must report needsRefill exactly once it consumes the
// last slot; after every party and the aggregator install a fresh batch,
// the remaining sessions still verify.
func TestSignReportsRefillOnLastNonce(t *testing.T) {
	const n, thresh, numNonces, rounds = 10, 7, 5, 7
	g := newGroup(t, n, thresh, numNonces)
	signers := make([]uint64, thresh)
	for i := range signers {
		signers[i] = uint64(i + 1)
	}

	refills := 0
	for round := 0; round < rounds; round++ {
		msg := []byte{byte(round)}
		agg, shares := g.sign(t, msg, signers, agg0NonceCounter(g.agg, round, numNonces))
		sig, needsRefill, err := agg.Sign(msg, shares, signers)
		if err != nil {
			t.Fatalf("round %d: %v", round, err)
		}
		if !sig.Verify(agg.GroupKey(), msg) {
			t.Fatalf("round %d: signature failed to verify", round)
		}
		if needsRefill {
			refills++
			matrix := make([][]party.PublicNonce, n)
			for i, p := range g.parties {
				pubs, err := p.GenNonces(numNonces)
				if err != nil {
					t.Fatal(err)
				}
				matrix[i] = pubs
			}
			for _, p := range g.parties {
				if err := p.SetGroupNonces(matrix); err != nil {
					t.Fatal(err)
				}
			}
			if err := g.agg.SetGroupNonces(matrix); err != nil {
				t.Fatal(err)
			}
		}
	}
	if refills != 1 {
		t.Fatalf("expected exactly 1 refill over %d rounds of a %d-slot batch, got %d", rounds, numNonces, refills)
	}
}

// agg0NonceCounter returns the nonce slot the aggregator will consume on
// the given 0-based round, independent of the aggregator's internal
// counter so the test can prepare each party's Sign call against the
// same slot the aggregator expects.
func agg0NonceCounter(agg *aggregator.Aggregator, round, numNonces int) int {
	return round % numNonces
}

// A corrupted partial response must be rejected without advancing the
// nonce counter, and a second, honest attempt against the same nonce
// index must then succeed.
func TestSignRejectsCorruptShareAndRetrySucceeds(t *testing.T) {
	g := newGroup(t, 5, 3, 2)
	msg := []byte("retry after corruption")
	signers := []uint64{1, 2, 3}

	agg, shares := g.sign(t, msg, signers, 0)
	corrupted := make([]aggregator.PartialSig, len(shares))
	copy(corrupted, shares)
	corrupted[0].Z = corrupted[0].Z.Add(curve.One())

	_, needsRefill, err := agg.Sign(msg, corrupted, signers)
	if err == nil {
		t.Fatalf("expected an error from a corrupted partial response")
	}
	var badSigners *errs.BadSigners
	if !errors.As(err, &badSigners) {
		t.Fatalf("expected *errs.BadSigners, got %T", err)
	}
	if needsRefill {
		t.Fatalf("a failed signing attempt must not report needsRefill")
	}
	if agg.NonceCounter() != 0 {
		t.Fatalf("nonce counter advanced after a failed signing attempt")
	}

	sig, needsRefill, err := agg.Sign(msg, shares, signers)
	if err != nil {
		t.Fatalf("retry with the honest shares failed: %v", err)
	}
	if needsRefill {
		t.Fatalf("unexpected refill after consuming 1 of 2 nonces")
	}
	if !sig.Verify(agg.GroupKey(), msg) {
		t.Fatalf("retried signature failed to verify")
	}
}

// A party whose constant-term commitment was tampered with without
// updating its id proof must be rejected at Aggregator construction.
func TestNewRejectsTamperedCommitment(t *testing.T) {
	const n, thresh = 4, 3
	parties := make([]*party.Party, n)
	for i := 0; i < n; i++ {
		p, err := party.New(uint64(i+1), n, thresh)
		if err != nil {
			t.Fatal(err)
		}
		parties[i] = p
	}
	commitments := make([]*party.PolyCommitment, n)
	for i, p := range parties {
		c, err := p.PolyCommitment()
		if err != nil {
			t.Fatal(err)
		}
		commitments[i] = c
	}

	// Tamper with party 1's first commitment point without regenerating
	// its id proof.
	commitments[0].Commitment.Points[0] = curve.BaseMul(curve.FromUint64(999999))

	matrix := make([][]party.PublicNonce, n)
	for i, p := range parties {
		pubs, err := p.GenNonces(1)
		if err != nil {
			t.Fatal(err)
		}
		matrix[i] = pubs
	}

	_, err := aggregator.New(n, thresh, commitments, matrix)
	if err == nil {
		t.Fatalf("expected Aggregator construction to reject a tampered commitment")
	}
	var badID *errs.BadIdProof
	if !errors.As(err, &badID) {
		t.Fatalf("expected *errs.BadIdProof, got %T", err)
	}
}

// A single party's nonce refresh after a loss must reset the shared
// nonce counter to 0.
func TestSetPartyNoncesResetsCounter(t *testing.T) {
	g := newGroup(t, 3, 2, 3)
	msg := []byte("advance the counter")
	signers := []uint64{1, 2}

	agg, shares := g.sign(t, msg, signers, 0)
	if _, _, err := agg.Sign(msg, shares, signers); err != nil {
		t.Fatal(err)
	}
	if agg.NonceCounter() != 1 {
		t.Fatalf("expected nonce counter at 1 after one signing session, got %d", agg.NonceCounter())
	}

	lostParty := g.parties[0]
	freshRow, err := lostParty.GenNonces(3)
	if err != nil {
		t.Fatal(err)
	}
	if err := agg.SetPartyNonces(lostParty.ID, freshRow); err != nil {
		t.Fatal(err)
	}
	if agg.NonceCounter() != 0 {
		t.Fatalf("expected nonce counter reset to 0 after a party nonce refresh, got %d", agg.NonceCounter())
	}
}

// Two different (overlapping) signer subsets both of size threshold must
// produce signatures that verify under the same group key.
func TestDifferentSignerSubsetsBothVerify(t *testing.T) {
	g := newGroup(t, 5, 3, 2)
	msg := []byte("either subset works")

	subsetA := []uint64{1, 2, 3}
	agg, sharesA := g.sign(t, msg, subsetA, 0)
	sigA, _, err := agg.Sign(msg, sharesA, subsetA)
	if err != nil {
		t.Fatal(err)
	}
	if !sigA.Verify(agg.GroupKey(), msg) {
		t.Fatalf("signature from subset A failed to verify")
	}

	subsetB := []uint64{2, 4, 5}
	_, sharesB := g.sign(t, msg, subsetB, 1)
	sigB, _, err := agg.Sign(msg, sharesB, subsetB)
	if err != nil {
		t.Fatal(err)
	}
	if !sigB.Verify(agg.GroupKey(), msg) {
		t.Fatalf("signature from subset B failed to verify")
	}
}
