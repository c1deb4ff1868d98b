package ephemeral

import (
	"crypto/sha256"

	"github.com/btcsuite/btcd/btcec"
)

// SymmetricEcdhKey is a per-peer symmetric key derived from an ECDH
// exchange between one party's ephemeral private key and another party's
// published ephemeral public key. Two parties that each run Ecdh against
// the other's public key arrive at the same SymmetricEcdhKey without ever
// transmitting it.
type SymmetricEcdhKey struct {
	box *box
}

// Ecdh derives the symmetric key a sender uses to seal a Share addressed
// to the party holding publicKey, and the same key that party derives to
// open it with its own private key and the sender's public key.
func (pk *PrivateKey) Ecdh(publicKey *PublicKey) *SymmetricEcdhKey {
	shared := btcec.GenerateSharedSecret(
		(*btcec.PrivateKey)(pk),
		(*btcec.PublicKey)(publicKey),
	)

	return &SymmetricEcdhKey{
		box: newBox(sha256.Sum256(shared)),
	}
}

// Encrypt seals a DKG share value so only the peer that can derive this
// same key can recover it.
func (sek *SymmetricEcdhKey) Encrypt(plaintext []byte) ([]byte, error) {
	return sek.box.encrypt(plaintext)
}

// Decrypt recovers a share value previously sealed with Encrypt under the
// matching key.
func (sek *SymmetricEcdhKey) Decrypt(ciphertext []byte) (plaintext []byte, err error) {
	return sek.box.decrypt(ciphertext)
}
