package ephemeral

import (
	"crypto/rand"
	"errors"
	"io"

	"golang.org/x/crypto/nacl/secretbox"
)

const nonceSize = 24

// box is an authenticated symmetric encryption box keyed by a 32-byte
// secret, built on NaCl's secretbox (XSalsa20-Poly1305). Every call to
// encrypt draws a fresh random nonce and prepends it to the ciphertext, so
// the same plaintext never produces the same output twice.
type box struct {
	key [32]byte
}

// newBox constructs a box from a 32-byte symmetric key, typically the
// SHA-256 hash of an ECDH shared secret.
func newBox(key [32]byte) *box {
	return &box{key: key}
}

// encrypt seals plaintext under b's key, returning nonce||ciphertext.
func (b *box) encrypt(plaintext []byte) ([]byte, error) {
	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return nil, err
	}
	out := make([]byte, nonceSize, nonceSize+len(plaintext)+secretbox.Overhead)
	copy(out, nonce[:])
	return secretbox.Seal(out, plaintext, &nonce, &b.key), nil
}

// decrypt opens a ciphertext previously produced by encrypt.
func (b *box) decrypt(ciphertext []byte) ([]byte, error) {
	if len(ciphertext) < nonceSize {
		return nil, errors.New("symmetric key decryption failed")
	}
	var nonce [nonceSize]byte
	copy(nonce[:], ciphertext[:nonceSize])

	plaintext, ok := secretbox.Open(nil, ciphertext[nonceSize:], &nonce, &b.key)
	if !ok {
		return nil, errors.New("symmetric key decryption failed")
	}
	return plaintext, nil
}
