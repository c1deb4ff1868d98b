// Package ephemeral provides confidential point-to-point delivery of DKG
// private share values between parties. Each party generates an ephemeral
// ECDH key pair, publishes the public half alongside its Commit message,
// and derives a per-peer symmetric key to encrypt the Share it privately
// sends to that peer.
package ephemeral

import (
	"fmt"

	"github.com/btcsuite/btcd/btcec"
)

// PrivateKey is an ephemeral ECDH private key.
type PrivateKey btcec.PrivateKey

// PublicKey is an ephemeral ECDH public key.
type PublicKey btcec.PublicKey

// KeyPair bundles an ephemeral private key with its public counterpart.
type KeyPair struct {
	PrivateKey *PrivateKey
	PublicKey  *PublicKey
}

// GenerateKeyPair generates a new ephemeral secp256k1 key pair for ECDH.
func GenerateKeyPair() (*KeyPair, error) {
	priv, err := btcec.NewPrivateKey(btcec.S256())
	if err != nil {
		return nil, fmt.Errorf("ephemeral: generating key pair: %w", err)
	}
	return &KeyPair{
		PrivateKey: (*PrivateKey)(priv),
		PublicKey:  (*PublicKey)(priv.PubKey()),
	}, nil
}

// Bytes returns the compressed serialization of the public key, suitable
// for inclusion alongside a Commit message on the wire.
func (pub *PublicKey) Bytes() []byte {
	return (*btcec.PublicKey)(pub).SerializeCompressed()
}

// ParsePublicKey decodes a compressed public key previously produced by
// Bytes.
func ParsePublicKey(b []byte) (*PublicKey, error) {
	pub, err := btcec.ParsePubKey(b, btcec.S256())
	if err != nil {
		return nil, fmt.Errorf("ephemeral: parsing public key: %w", err)
	}
	return (*PublicKey)(pub), nil
}
