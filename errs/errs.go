// Package errs declares the typed, identifiable-abort errors the protocol
// raises. Each carries the information a caller needs to react
// programmatically (which id, which share, which subset) rather than a
// bare string.
package errs

import "fmt"

// BadIdProof reports that a party's Schnorr proof of knowledge of its
// polynomial's constant term failed to verify.
type BadIdProof struct {
	ID uint64
}

func (e *BadIdProof) Error() string {
	return fmt.Sprintf("errs: party %d's id proof failed verification", e.ID)
}

// BadShare reports that a private polynomial evaluation received from
// FromID failed Feldman verification against the sender's commitment.
type BadShare struct {
	FromID, ToID uint64
}

func (e *BadShare) Error() string {
	return fmt.Sprintf("errs: share from party %d to party %d failed verification", e.FromID, e.ToID)
}

// BadSigners reports that signature aggregation failed because one or more
// signers' partial responses did not verify. IDs lists every signer whose
// contribution was rejected.
type BadSigners struct {
	IDs []uint64
}

func (e *BadSigners) Error() string {
	return fmt.Sprintf("errs: signers %v produced invalid partial responses", e.IDs)
}

// NonceExhausted reports that a party was asked to sign with a nonce slot
// it already consumed in an earlier session. Reusing a nonce pair breaks
// the scheme's security, so this always aborts rather than retrying.
type NonceExhausted struct {
	ID uint64
}

func (e *NonceExhausted) Error() string {
	return fmt.Sprintf("errs: party %d's nonce slot was already consumed", e.ID)
}

// NonceMissing reports that the aggregator or a party was asked to use a
// nonce index that was never populated. A slot that was populated but has
// already been consumed is reported as NonceExhausted instead.
type NonceMissing struct {
	ID    uint64
	Index uint64
}

func (e *NonceMissing) Error() string {
	return fmt.Sprintf("errs: party %d has no nonce at index %d", e.ID, e.Index)
}

// SizeMismatch reports that a collection the protocol expects to be sized
// exactly N (participants) or T (signers) was not.
type SizeMismatch struct {
	What      string
	Want, Got int
}

func (e *SizeMismatch) Error() string {
	return fmt.Sprintf("errs: %s: want size %d, got %d", e.What, e.Want, e.Got)
}
