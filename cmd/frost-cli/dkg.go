package main

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/thresh-sig/frost/aggregator"
	"github.com/thresh-sig/frost/bandwidth"
	"github.com/thresh-sig/frost/party"
	"github.com/thresh-sig/frost/wire"
)

// session bundles the in-memory result of one completed DKG run: every
// party's live state, the aggregator that will drive signing, and the
// bandwidth this setup phase consumed.
type session struct {
	parties      []*party.Party
	agg          *aggregator.Aggregator
	dkgBandwidth bandwidth.Report
}

// runDKG executes the setup phase entirely in-process, fanning independent
// per-party work out across goroutines the way distinct hosts would run
// it: commitment broadcast, share evaluation, confidential redistribution,
// and signing-share derivation.
func runDKG(n, t int) (*session, error) {
	parties := make([]*party.Party, n)
	for i := 0; i < n; i++ {
		p, err := party.New(uint64(i+1), n, t)
		if err != nil {
			return nil, fmt.Errorf("frost-cli: creating party %d: %w", i+1, err)
		}
		parties[i] = p
	}

	// Each party broadcasts its polynomial commitment and id proof.
	commitments := make([]*party.PolyCommitment, n)
	g, _ := errgroup.WithContext(context.Background())
	for i, p := range parties {
		i, p := i, p
		g.Go(func() error {
			c, err := p.PolyCommitment()
			if err != nil {
				return fmt.Errorf("party %d: %w", p.ID, err)
			}
			commitments[i] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("frost-cli: broadcasting commitments: %w", err)
	}

	// Each party evaluates and encrypts its polynomial for every recipient,
	// sealing each share under a key derived from its own ephemeral private
	// key and that recipient's published ephemeral public key.
	ciphertextsBySender := make([]map[uint64][]byte, n)
	g2, _ := errgroup.WithContext(context.Background())
	for i, p := range parties {
		i, p := i, p
		g2.Go(func() error {
			cts, err := p.Shares(commitments)
			if err != nil {
				return fmt.Errorf("party %d: %w", p.ID, err)
			}
			ciphertextsBySender[i] = cts
			return nil
		})
	}
	if err := g2.Wait(); err != nil {
		return nil, fmt.Errorf("frost-cli: evaluating shares: %w", err)
	}

	// Each party decrypts the shares addressed to it and verifies them
	// against the sender's Feldman commitment.
	g3, _ := errgroup.WithContext(context.Background())
	for _, p := range parties {
		p := p
		g3.Go(func() error {
			received := make(map[uint64][]byte, n)
			for i, sender := range parties {
				received[sender.ID] = ciphertextsBySender[i][p.ID]
			}
			if err := p.ComputeSecret(received, commitments); err != nil {
				return fmt.Errorf("party %d: %w", p.ID, err)
			}
			return nil
		})
	}
	if err := g3.Wait(); err != nil {
		return nil, fmt.Errorf("frost-cli: computing signing shares: %w", err)
	}

	// Each party generates and broadcasts its nonce batch.
	matrix := make([][]party.PublicNonce, n)
	g4, _ := errgroup.WithContext(context.Background())
	for i, p := range parties {
		i, p := i, p
		g4.Go(func() error {
			pubs, err := p.GenNonces(numNonces)
			if err != nil {
				return fmt.Errorf("party %d: %w", p.ID, err)
			}
			matrix[i] = pubs
			return nil
		})
	}
	if err := g4.Wait(); err != nil {
		return nil, fmt.Errorf("frost-cli: generating nonces: %w", err)
	}
	for _, p := range parties {
		if err := p.SetGroupNonces(matrix); err != nil {
			return nil, fmt.Errorf("frost-cli: installing nonce matrix on party %d: %w", p.ID, err)
		}
	}

	agg, err := aggregator.New(n, t, commitments, matrix)
	if err != nil {
		return nil, fmt.Errorf("frost-cli: constructing aggregator: %w", err)
	}

	dkgBandwidth, err := measureDKGRound(commitments, ciphertextsBySender, matrix)
	if err != nil {
		return nil, fmt.Errorf("frost-cli: measuring DKG bandwidth: %w", err)
	}

	return &session{parties: parties, agg: agg, dkgBandwidth: dkgBandwidth}, nil
}

// measureDKGRound serializes every message this DKG round transmitted —
// broadcast commitments, encrypted shares, and broadcast nonce batches —
// and totals their wire size via bandwidth.MeasureDKG/MeasureNonceBatch.
func measureDKGRound(commitments []*party.PolyCommitment, ciphertextsBySender []map[uint64][]byte, matrix [][]party.PublicNonce) (bandwidth.Report, error) {
	commits := make([]wire.Commit, len(commitments))
	for i, c := range commitments {
		commits[i] = c.ToWire()
	}

	var shares []wire.Share
	for i, cts := range ciphertextsBySender {
		fromID := commitments[i].ID
		for toID, ciphertext := range cts {
			shares = append(shares, wire.Share{FromID: fromID, ToID: toID, Value: ciphertext})
		}
	}

	report, err := bandwidth.MeasureDKG(commits, shares)
	if err != nil {
		return report, err
	}

	batches := make([]wire.NonceBatch, len(matrix))
	for i, row := range matrix {
		batches[i] = party.ToWireNonceBatch(commitments[i].ID, row)
	}
	nonceBandwidth, err := bandwidth.MeasureNonceBatch(batches)
	if err != nil {
		return report, err
	}
	report.NonceBatch = nonceBandwidth
	return report, nil
}

// selectParties deterministically chooses the first t party ids out of n.
// A deployment wanting randomized subset selection for load distribution
// across parties can swap this out; kept deterministic here so CLI runs
// are reproducible.
func selectParties(n, t int) []uint64 {
	signers := make([]uint64, t)
	for i := 0; i < t; i++ {
		signers[i] = uint64(i + 1)
	}
	return signers
}
