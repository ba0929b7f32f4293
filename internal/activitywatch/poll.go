package activitywatch

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/gabapcia/solwatch/internal/pkg/logger"

	"golang.org/x/sync/errgroup"
)

// runPoll polls every watched address immediately and then on every tick
// until ctx is done.
func (s *service) runPoll(ctx context.Context) {
	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		s.pollAll(ctx)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// pollAll resynchronizes the watched set and the push subscriptions, then
// polls every address with bounded concurrency. Failures are logged per
// address and never abort the tick.
func (s *service) pollAll(ctx context.Context) {
	addresses, err := s.registry.Refresh(ctx)
	if err != nil {
		logger.Warn(ctx, "could not refresh watched wallets, using last known set", "error", err)
		addresses = s.registry.Snapshot()
	}

	s.reconcileSubscriptions(ctx, addresses)

	var g errgroup.Group
	g.SetLimit(s.concurrency)

	for _, address := range addresses {
		g.Go(func() error {
			s.pollAddressAndLog(ctx, address)
			return nil
		})
	}

	_ = g.Wait()
}

func (s *service) pollAddressAndLog(ctx context.Context, address string) {
	if err := s.pollAddress(ctx, address); err != nil && ctx.Err() == nil {
		s.metrics.pollErrors.Add(ctx, 1)
		logger.Warn(ctx, "error polling wallet",
			"wallet.address", address,
			"error", err,
		)
	}
}

// pollAddress fetches the most recent signatures of address and processes
// the ones not seen yet, oldest first.
func (s *service) pollAddress(ctx context.Context, address string) error {
	records, err := s.chain.GetRecentSignatures(ctx, address, s.signatureWindow)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return err
	}

	novel := make([]SignatureRecord, 0, len(records))
	for _, record := range records {
		done, err := s.ledger.Has(ctx, record.Signature)
		if err != nil {
			return err
		}

		if !done {
			novel = append(novel, record)
		}
	}

	if len(novel) == 0 {
		return nil
	}

	s.metrics.discovered.Add(ctx, int64(len(novel)))

	// signatures are listed newest first
	slices.Reverse(novel)

	for _, record := range novel {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		s.processSignature(ctx, record.Signature)
	}

	return nil
}
