package main

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/thresh-sig/frost/aggregator"
	"github.com/thresh-sig/frost/party"
	"github.com/thresh-sig/frost/signature"
)

// runSigningSession drives one signing round over signers, fanning each
// signer's partial response computation out concurrently, then asks the
// aggregator to verify and assemble the final signature.
func runSigningSession(
	s *session,
	msg []byte,
	signers []uint64,
	nonceIndex int,
) (*signature.Signature, bool, error) {
	byID := make(map[uint64]*party.Party, len(s.parties))
	for _, p := range s.parties {
		byID[p.ID] = p
	}

	partials := make([]aggregator.PartialSig, len(signers))
	g, _ := errgroup.WithContext(context.Background())
	for i, id := range signers {
		i, id := i, id
		g.Go(func() error {
			p, ok := byID[id]
			if !ok {
				return fmt.Errorf("signer %d not found in session", id)
			}
			z, err := p.Sign(msg, signers, nonceIndex)
			if err != nil {
				return fmt.Errorf("signer %d: %w", id, err)
			}
			// PublicKey is left nil: the aggregator recomputes each
			// signer's Y_i from the polynomial commitments itself, so
			// the wire field exists for transports that want the extra
			// cross-check but this in-process driver doesn't need to
			// populate it.
			partials[i] = aggregator.PartialSig{ID: id, Z: z}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, false, err
	}

	return s.agg.Sign(msg, partials, signers)
}
