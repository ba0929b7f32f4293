package activitywatch

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/solwatch/internal/pkg/logger"
	"github.com/gabapcia/solwatch/internal/txclassify"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// processSignature handles signature at most once at a time in this
// process. Concurrent callers for the same signature wait for the running
// call instead of repeating it. Errors are logged; an unprocessed signature
// is picked up again by a later poll.
func (s *service) processSignature(ctx context.Context, signature string) {
	_, err, _ := s.inflight.Do(signature, func() (any, error) {
		return nil, s.handleSignature(ctx, signature)
	})
	if err != nil && ctx.Err() == nil {
		logger.Warn(ctx, "error processing transaction",
			"tx.signature", signature,
			"error", err,
		)
	}
}

// handleSignature runs check, fetch, classify, emit and mark for one
// signature. The signature is marked processed even when no watched address
// produced an event, or when the node returned a transaction that cannot be
// read, so it is not fetched again.
func (s *service) handleSignature(ctx context.Context, signature string) (err error) {
	ctx, span := s.tracer.Start(ctx, "activitywatch.handleSignature",
		trace.WithAttributes(attribute.String("tx.signature", signature)),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	done, err := s.ledger.Has(ctx, signature)
	if err != nil {
		return fmt.Errorf("checking dedup ledger: %w", err)
	}
	if done {
		return nil
	}

	tx, err := s.fetchTransaction(ctx, signature)
	if errors.Is(err, ErrMalformedTransaction) {
		logger.Debug(ctx, "transaction not classifiable",
			"tx.signature", signature,
			"error", err,
		)
		return s.markProcessed(ctx, ProcessedRecord{Signature: signature})
	}
	if err != nil {
		return fmt.Errorf("fetching transaction: %w", err)
	}

	events, addresses := s.classify(ctx, tx)
	span.SetAttributes(attribute.Int("tx.events", len(events)))

	for _, event := range events {
		s.metrics.emitted.Add(ctx, 1)
		if err := s.emitter.Emit(ctx, event); err != nil {
			logger.Error(ctx, "error emitting activity event",
				"tx.signature", signature,
				"wallet.address", event.Address,
				"error", err,
			)
		}
	}

	return s.markProcessed(ctx, ProcessedRecord{
		Signature: signature,
		Slot:      tx.Slot,
		Addresses: addresses,
		Events:    len(events),
	})
}

// markProcessed stamps record with the current time and stores it.
func (s *service) markProcessed(ctx context.Context, record ProcessedRecord) error {
	record.ProcessedAt = s.now().UTC()
	if err := s.ledger.MarkProcessed(ctx, record.Signature, record); err != nil {
		return fmt.Errorf("marking signature as processed: %w", err)
	}

	return nil
}

// fetchTransaction fetches the transaction using the fetch retry policy.
func (s *service) fetchTransaction(ctx context.Context, signature string) (txclassify.Transaction, error) {
	var tx txclassify.Transaction
	err := s.fetchRetry.Execute(ctx, func() error {
		var err error
		tx, err = s.chain.GetTransaction(ctx, signature)
		return err
	})

	return tx, err
}

// classify runs the classifier for every watched address present in the
// transaction. It returns the events and the watched addresses involved.
func (s *service) classify(ctx context.Context, tx txclassify.Transaction) ([]txclassify.Event, []string) {
	var (
		events    []txclassify.Event
		addresses []string
	)

	for _, address := range s.registry.Snapshot() {
		if !tx.Mentions(address) {
			continue
		}
		addresses = append(addresses, address)

		event, ok := s.classifier.Classify(ctx, tx, address)
		if !ok {
			logger.Debug(ctx, "transaction not reportable for wallet",
				"tx.signature", tx.Signature,
				"wallet.address", address,
			)
			continue
		}

		events = append(events, event)
	}

	return events, addresses
}
