package party_test

import (
	"bytes"
	"testing"

	"github.com/thresh-sig/frost/curve"
	"github.com/thresh-sig/frost/internal/testutils"
	"github.com/thresh-sig/frost/party"
)

func TestPolyCommitmentWireRoundTrip(t *testing.T) {
	p, err := party.New(1, 3, 2)
	if err != nil {
		t.Fatal(err)
	}
	pc, err := p.PolyCommitment()
	if err != nil {
		t.Fatal(err)
	}

	decoded, err := party.PolyCommitmentFromWire(pc.ToWire())
	if err != nil {
		t.Fatal(err)
	}
	if decoded.ID != pc.ID {
		t.Fatalf("ID mismatch: got %d, want %d", decoded.ID, pc.ID)
	}
	if err := decoded.Proof.Verify(curve.FromUint64(decoded.ID), decoded.Commitment.ConstantPoint()); err != nil {
		t.Fatalf("id proof decoded from wire form failed to verify: %v", err)
	}
	if !bytes.Equal(decoded.EphemeralPublicKey.Bytes(), pc.EphemeralPublicKey.Bytes()) {
		t.Fatalf("ephemeral public key did not survive the wire round trip")
	}
}

func TestNonceBatchWireRoundTrip(t *testing.T) {
	p, err := party.New(2, 3, 2)
	if err != nil {
		t.Fatal(err)
	}
	pubs, err := p.GenNonces(3)
	if err != nil {
		t.Fatal(err)
	}

	decoded, err := party.NonceBatchFromWire(party.ToWireNonceBatch(p.ID, pubs))
	if err != nil {
		t.Fatal(err)
	}
	if len(decoded) != len(pubs) {
		t.Fatalf("decoded %d public nonces, want %d", len(decoded), len(pubs))
	}
	for i := range pubs {
		testutils.AssertPointsEqual(t, "D", pubs[i].D, decoded[i].D)
		testutils.AssertPointsEqual(t, "E", pubs[i].E, decoded[i].E)
	}
}
