// Package bandwidth measures the serialized size of the protocol's wire
// messages, the measurement half of the protocol driver's
// bandwidth-accounting responsibility (plotting stays external).
package bandwidth

import (
	"fmt"

	"github.com/thresh-sig/frost/wire"
)

// Report breaks down the bytes transmitted during one DKG round or one
// signing session.
type Report struct {
	Commits     int
	Shares      int
	NonceBatch  int
	PartialSigs int
	Signature   int
}

// Total returns the sum of every accounted category.
func (r Report) Total() int {
	return r.Commits + r.Shares + r.NonceBatch + r.PartialSigs + r.Signature
}

// MeasureDKG sums the CBOR-encoded size of every Commit and Share message
// broadcast or privately delivered during one DKG round.
func MeasureDKG(commits []wire.Commit, shares []wire.Share) (Report, error) {
	var r Report
	for _, c := range commits {
		b, err := wire.Encode(c)
		if err != nil {
			return r, fmt.Errorf("bandwidth: measuring commit: %w", err)
		}
		r.Commits += len(b)
	}
	for _, s := range shares {
		b, err := wire.Encode(s)
		if err != nil {
			return r, fmt.Errorf("bandwidth: measuring share: %w", err)
		}
		r.Shares += len(b)
	}
	return r, nil
}

// MeasureNonceBatch sums the CBOR-encoded size of every party's broadcast
// NonceBatch message.
func MeasureNonceBatch(batches []wire.NonceBatch) (int, error) {
	total := 0
	for _, nb := range batches {
		b, err := wire.Encode(nb)
		if err != nil {
			return 0, fmt.Errorf("bandwidth: measuring nonce batch: %w", err)
		}
		total += len(b)
	}
	return total, nil
}

// MeasureSigning sums the CBOR-encoded size of every partial signature
// submitted and the final aggregated signature for one signing session.
func MeasureSigning(partials []wire.PartialSig, sig wire.Signature) (Report, error) {
	var r Report
	for _, p := range partials {
		b, err := wire.Encode(p)
		if err != nil {
			return r, fmt.Errorf("bandwidth: measuring partial sig: %w", err)
		}
		r.PartialSigs += len(b)
	}
	b, err := wire.Encode(sig)
	if err != nil {
		return r, fmt.Errorf("bandwidth: measuring signature: %w", err)
	}
	r.Signature = len(b)
	return r, nil
}
