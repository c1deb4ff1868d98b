package signature

import (
	"fmt"

	"github.com/thresh-sig/frost/curve"
	"github.com/thresh-sig/frost/wire"
)

// ToWire encodes s into its wire.Signature form.
func (s *Signature) ToWire() wire.Signature {
	r := s.R.Compressed()
	return wire.Signature{R: r[:], Z: s.Z.Bytes()}
}

// FromWire decodes a wire.Signature back into a Signature.
func FromWire(w wire.Signature) (*Signature, error) {
	r, err := curve.PointFromCompressed(w.R)
	if err != nil {
		return nil, fmt.Errorf("signature: decoding R: %w", err)
	}
	z, err := curve.ScalarFromBytes(w.Z[:])
	if err != nil {
		return nil, fmt.Errorf("signature: decoding z: %w", err)
	}
	return &Signature{R: r, Z: z}, nil
}
