package activitywatch

import (
	"context"
	"time"
)

// ProcessedRecord is the metadata stored with a processed signature.
type ProcessedRecord struct {
	Signature   string    `json:"signature"`
	ProcessedAt time.Time `json:"processedAt"`
	Slot        uint64    `json:"slot"`
	Addresses   []string  `json:"addresses,omitempty"`
	Events      int       `json:"events"`
}

// DedupLedger records the signatures that were already turned into events.
//
// Implementations are usually backed by durable storage shared across
// processes so that a restart, or a second instance, does not report the
// same transaction again.
type DedupLedger interface {
	// Has reports whether signature was marked processed.
	Has(ctx context.Context, signature string) (bool, error)

	// MarkProcessed records signature as processed. It must be safe to call
	// more than once for the same signature; the first record written wins.
	MarkProcessed(ctx context.Context, signature string, record ProcessedRecord) error
}

// nopLedger is a DedupLedger that remembers nothing. Every signature is seen
// as new, which is only acceptable for local development.
type nopLedger struct{}

var _ DedupLedger = (*nopLedger)(nil)

func (nopLedger) Has(context.Context, string) (bool, error) {
	return false, nil
}

func (nopLedger) MarkProcessed(context.Context, string, ProcessedRecord) error {
	return nil
}
