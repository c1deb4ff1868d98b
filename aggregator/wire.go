package aggregator

import (
	"fmt"

	"github.com/thresh-sig/frost/curve"
	"github.com/thresh-sig/frost/wire"
)

// ToWire encodes a PartialSig into its wire.PartialSig form.
func (ps PartialSig) ToWire(nonceIndex uint64) wire.PartialSig {
	var pub []byte
	if ps.PublicKey != nil {
		c := ps.PublicKey.Compressed()
		pub = c[:]
	}
	return wire.PartialSig{
		ID:         ps.ID,
		Z:          ps.Z.Bytes(),
		PublicKey:  pub,
		NonceIndex: nonceIndex,
	}
}

// PartialSigFromWire decodes a wire.PartialSig back into a PartialSig.
func PartialSigFromWire(w wire.PartialSig) (PartialSig, error) {
	z, err := curve.ScalarFromBytes(w.Z[:])
	if err != nil {
		return PartialSig{}, fmt.Errorf("aggregator: decoding partial response: %w", err)
	}
	var pub *curve.Point
	if len(w.PublicKey) > 0 {
		pub, err = curve.PointFromCompressed(w.PublicKey)
		if err != nil {
			return PartialSig{}, fmt.Errorf("aggregator: decoding public key: %w", err)
		}
	}
	return PartialSig{ID: w.ID, Z: z, PublicKey: pub}, nil
}
