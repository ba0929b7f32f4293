// Package walletregistry manages the set of Solana addresses under watch.
//
// Mutations are validated, persisted through a WalletStorage and mirrored in
// an in-memory set that the activity watcher reads. Observers are told about
// every address that enters or leaves the set, including changes made by
// other processes and picked up by Refresh.
package walletregistry

import (
	"context"
	"sync"
	"time"
)

// Observer is notified after the watched set changes.
type Observer interface {
	WalletAdded(ctx context.Context, address string)
	WalletRemoved(ctx context.Context, address string)
}

// Service defines the interface for registering and unregistering
// wallets that should be actively monitored for activity.
type Service interface {
	// StartWatching registers a wallet for activity monitoring.
	//
	// Returns a validator.ErrValidationFailed error when the address is not a
	// base58 32-byte public key, ErrWalletAlreadyRegistered when the address
	// is already watched, or the storage error.
	StartWatching(ctx context.Context, address, label string) error

	// StopWatching unregisters a wallet from activity monitoring.
	//
	// Returns a validation error, ErrWalletNotFound, or the storage error.
	StopWatching(ctx context.Context, address string) error

	// ListWatching returns every watched wallet ordered by registration time.
	ListWatching(ctx context.Context) ([]WatchedWallet, error)

	// Refresh synchronizes the in-memory set with storage and returns the
	// watched addresses.
	Refresh(ctx context.Context) ([]string, error)

	// Snapshot returns the in-memory watched addresses without touching storage.
	Snapshot() []string

	// Contains reports whether the address is in the in-memory set.
	Contains(address string) bool

	// Observe registers an observer for subsequent changes.
	Observe(o Observer)
}

// service is the concrete implementation of the Service interface.
type service struct {
	mu      sync.RWMutex
	wallets map[string]WatchedWallet

	observersMu sync.RWMutex
	observers   []Observer

	walletStorage WalletStorage
	now           func() time.Time
}

// Ensure compile-time compliance with the Service interface.
var _ Service = (*service)(nil)

// Observe registers o for subsequent changes of the watched set.
func (s *service) Observe(o Observer) {
	s.observersMu.Lock()
	defer s.observersMu.Unlock()

	s.observers = append(s.observers, o)
}

func (s *service) notifyAdded(ctx context.Context, address string) {
	s.observersMu.RLock()
	defer s.observersMu.RUnlock()

	for _, o := range s.observers {
		o.WalletAdded(ctx, address)
	}
}

func (s *service) notifyRemoved(ctx context.Context, address string) {
	s.observersMu.RLock()
	defer s.observersMu.RUnlock()

	for _, o := range s.observers {
		o.WalletRemoved(ctx, address)
	}
}

// New creates a new instance of the walletregistry service using the
// provided WalletStorage implementation. The in-memory set starts empty;
// call Refresh to load it.
func New(ws WalletStorage) *service {
	return &service{
		wallets:       make(map[string]WatchedWallet),
		walletStorage: ws,
		now:           time.Now,
	}
}
