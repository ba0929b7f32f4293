package walletregistry

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/gabapcia/solwatch/internal/pkg/validator"
)

var (
	// ErrWalletAlreadyRegistered is returned when the address is already watched.
	ErrWalletAlreadyRegistered = errors.New("wallet already registered")

	// ErrWalletNotFound is returned when the address is not watched.
	ErrWalletNotFound = errors.New("wallet not found")
)

// WatchedWallet is an address under watch.
type WatchedWallet struct {
	Address string    `json:"address" validate:"solana_address"`
	Label   string    `json:"label,omitempty" validate:"max=64"`
	AddedAt time.Time `json:"addedAt"`
}

// WalletStorage defines the persistence interface of the watched wallets.
// It is the source of truth shared by every solwatch process.
type WalletStorage interface {
	// RegisterWallet persists w. It returns ErrWalletAlreadyRegistered when
	// the address is already stored, leaving the stored record untouched.
	RegisterWallet(ctx context.Context, w WatchedWallet) error

	// UnregisterWallet removes the address. It returns ErrWalletNotFound
	// when the address is not stored.
	UnregisterWallet(ctx context.Context, address string) error

	// ListWallets returns every stored wallet in no particular order.
	ListWallets(ctx context.Context) ([]WatchedWallet, error)
}

// buildWatchedWallet constructs and validates a WatchedWallet.
func buildWatchedWallet(address, label string, addedAt time.Time) (WatchedWallet, error) {
	w := WatchedWallet{
		Address: strings.TrimSpace(address),
		Label:   strings.TrimSpace(label),
		AddedAt: addedAt.UTC(),
	}

	return w, validator.Validate(w)
}

// validateAddress checks a bare address using the same rules as WatchedWallet.
func validateAddress(address string) (string, error) {
	w, err := buildWatchedWallet(address, "", time.Time{})
	return w.Address, err
}

// sortWallets orders wallets by registration time, then by address.
func sortWallets(wallets []WatchedWallet) {
	slices.SortFunc(wallets, func(a, b WatchedWallet) int {
		if c := a.AddedAt.Compare(b.AddedAt); c != 0 {
			return c
		}
		return strings.Compare(a.Address, b.Address)
	})
}

// StartWatching validates and registers a wallet, then notifies observers.
func (s *service) StartWatching(ctx context.Context, address, label string) error {
	w, err := buildWatchedWallet(address, label, s.now())
	if err != nil {
		return err
	}

	if err := s.walletStorage.RegisterWallet(ctx, w); err != nil {
		return err
	}

	s.mu.Lock()
	s.wallets[w.Address] = w
	s.mu.Unlock()

	s.notifyAdded(ctx, w.Address)
	return nil
}

// StopWatching validates the address and unregisters it, then notifies observers.
func (s *service) StopWatching(ctx context.Context, address string) error {
	address, err := validateAddress(address)
	if err != nil {
		return err
	}

	if err := s.walletStorage.UnregisterWallet(ctx, address); err != nil {
		return err
	}

	s.mu.Lock()
	delete(s.wallets, address)
	s.mu.Unlock()

	s.notifyRemoved(ctx, address)
	return nil
}

// ListWatching returns the stored wallets ordered by registration time.
func (s *service) ListWatching(ctx context.Context) ([]WatchedWallet, error) {
	wallets, err := s.walletStorage.ListWallets(ctx)
	if err != nil {
		return nil, err
	}

	sortWallets(wallets)
	return wallets, nil
}

// Refresh reloads the in-memory set from storage, notifies observers about
// wallets added or removed elsewhere, and returns the watched addresses.
func (s *service) Refresh(ctx context.Context) ([]string, error) {
	wallets, err := s.walletStorage.ListWallets(ctx)
	if err != nil {
		return nil, err
	}

	next := make(map[string]WatchedWallet, len(wallets))
	for _, w := range wallets {
		next[w.Address] = w
	}

	var added, removed []string

	s.mu.Lock()
	for address := range next {
		if _, ok := s.wallets[address]; !ok {
			added = append(added, address)
		}
	}
	for address := range s.wallets {
		if _, ok := next[address]; !ok {
			removed = append(removed, address)
		}
	}
	s.wallets = next
	s.mu.Unlock()

	slices.Sort(added)
	slices.Sort(removed)

	for _, address := range added {
		s.notifyAdded(ctx, address)
	}
	for _, address := range removed {
		s.notifyRemoved(ctx, address)
	}

	return s.Snapshot(), nil
}

// Snapshot returns the watched addresses currently held in memory, sorted.
func (s *service) Snapshot() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	addresses := make([]string, 0, len(s.wallets))
	for address := range s.wallets {
		addresses = append(addresses, address)
	}

	slices.Sort(addresses)
	return addresses
}

// Contains reports whether address is in the in-memory set.
func (s *service) Contains(address string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.wallets[address]
	return ok
}
