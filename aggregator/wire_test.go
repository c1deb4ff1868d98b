package aggregator_test

import (
	"testing"

	"github.com/thresh-sig/frost/aggregator"
	"github.com/thresh-sig/frost/curve"
)

func TestPartialSigWireRoundTrip(t *testing.T) {
	z, err := curve.RandomScalar()
	if err != nil {
		t.Fatal(err)
	}
	y := curve.BaseMul(z)
	ps := aggregator.PartialSig{ID: 5, Z: z, PublicKey: y}

	decoded, err := aggregator.PartialSigFromWire(ps.ToWire(2))
	if err != nil {
		t.Fatal(err)
	}
	if decoded.ID != ps.ID {
		t.Fatalf("ID mismatch: got %d, want %d", decoded.ID, ps.ID)
	}
	if !decoded.Z.Equal(ps.Z) {
		t.Fatalf("Z did not survive a wire round trip")
	}
	if !decoded.PublicKey.Equal(ps.PublicKey) {
		t.Fatalf("PublicKey did not survive a wire round trip")
	}
}

func TestPartialSigWireRoundTripWithoutPublicKey(t *testing.T) {
	z, err := curve.RandomScalar()
	if err != nil {
		t.Fatal(err)
	}
	ps := aggregator.PartialSig{ID: 1, Z: z}

	decoded, err := aggregator.PartialSigFromWire(ps.ToWire(0))
	if err != nil {
		t.Fatal(err)
	}
	if decoded.PublicKey != nil {
		t.Fatalf("expected a nil PublicKey to survive the wire round trip as nil, got %v", decoded.PublicKey)
	}
}
