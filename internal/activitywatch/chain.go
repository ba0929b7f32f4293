package activitywatch

import (
	"context"
	"errors"

	"github.com/gabapcia/solwatch/internal/txclassify"
)

// ErrNotFound is returned by a ChainSource when the node has no record for
// the requested address or signature yet.
var ErrNotFound = errors.New("not found")

// ErrMalformedTransaction is returned by a ChainSource when the node returned
// a transaction it cannot decode or whose account references do not resolve.
var ErrMalformedTransaction = errors.New("malformed transaction")

// Confirmation levels reported for a signature.
const (
	ConfirmationProcessed = "processed"
	ConfirmationConfirmed = "confirmed"
	ConfirmationFinalized = "finalized"
)

// SignatureRecord is a signature listed for an address.
type SignatureRecord struct {
	Signature          string
	Slot               uint64
	BlockTime          *int64 // unix seconds, nil when the node does not know it
	ConfirmationStatus string
	Failed             bool
}

// ChainSource reads signatures and transactions from the chain.
type ChainSource interface {
	// GetRecentSignatures returns at most limit signatures that involve
	// address, newest first.
	GetRecentSignatures(ctx context.Context, address string, limit int) ([]SignatureRecord, error)

	// GetTransaction returns the full transaction for signature. It returns
	// ErrNotFound while the node has not indexed the transaction and
	// ErrMalformedTransaction when the returned transaction cannot be read.
	GetTransaction(ctx context.Context, signature string) (txclassify.Transaction, error)
}
