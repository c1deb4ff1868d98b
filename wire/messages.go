// Package wire defines the canonical on-the-wire message shapes the
// protocol exchanges between parties and the aggregator, and their CBOR
// encoding.
package wire

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// Commit is a party's broadcast polynomial commitment plus its Schnorr id
// proof, sent once per party during DKG.
type Commit struct {
	ID           uint64   `cbor:"id"`
	Points       [][]byte `cbor:"points"`        // compressed Feldman commitment points, a_0*G .. a_{t-1}*G
	ProofR       []byte   `cbor:"proof_r"`       // compressed nonce commitment of the id proof
	ProofZ       [32]byte `cbor:"proof_z"`       // id proof response scalar
	EphemeralPub []byte   `cbor:"ephemeral_pub"` // compressed ephemeral ECDH public key for confidential Share delivery
}

// Share is a single private polynomial evaluation sent confidentially from
// FromID to ToID during DKG, sealed under a key derived from the sender's
// ephemeral private key and the recipient's published ephemeral public key.
type Share struct {
	FromID uint64 `cbor:"from_id"`
	ToID   uint64 `cbor:"to_id"`
	Value  []byte `cbor:"value"` // nonce||ciphertext sealing s_{from->to}
}

// NonceBatch is a party's public commitment to a batch of single-use
// nonce pairs, indexed 0..len-1.
type NonceBatch struct {
	ID uint64   `cbor:"id"`
	D  [][]byte `cbor:"d"` // compressed D_j = d_j*G, one per nonce index
	E  [][]byte `cbor:"e"` // compressed E_j = e_j*G, one per nonce index
}

// PartialSig is one signer's contribution to a signature over a message.
type PartialSig struct {
	ID         uint64   `cbor:"id"`
	Z          [32]byte `cbor:"z"`          // partial response z_i
	PublicKey  []byte   `cbor:"public_key"` // compressed Y_i, carried for the aggregator's extra integrity check
	NonceIndex uint64   `cbor:"nonce_index"`
}

// Signature is the final aggregated threshold signature.
type Signature struct {
	R []byte   `cbor:"r"` // compressed group commitment R
	Z [32]byte `cbor:"z"` // aggregated response z
}

// Encode serializes v to its canonical CBOR form.
func Encode(v interface{}) ([]byte, error) {
	b, err := cbor.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("wire: encoding %T: %w", v, err)
	}
	return b, nil
}

// Decode deserializes b into v, which must be a pointer to one of this
// package's message types.
func Decode(b []byte, v interface{}) error {
	if err := cbor.Unmarshal(b, v); err != nil {
		return fmt.Errorf("wire: decoding %T: %w", v, err)
	}
	return nil
}
