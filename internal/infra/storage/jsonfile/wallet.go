package jsonfile

import (
	"context"
	"maps"
	"slices"

	"github.com/gabapcia/solwatch/internal/walletregistry"
)

// reloadWallets replaces the in-memory wallets with the content of
// wallets.json, which another process may have rewritten.
func (s *store) reloadWallets() error {
	wallets := make(map[string]walletregistry.WatchedWallet)
	if err := s.load(walletsFile, &wallets); err != nil {
		return err
	}

	if wallets == nil {
		wallets = make(map[string]walletregistry.WatchedWallet)
	}

	s.wallets = wallets
	return nil
}

func (s *store) RegisterWallet(_ context.Context, w walletregistry.WatchedWallet) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.reloadWallets(); err != nil {
		return err
	}

	if _, ok := s.wallets[w.Address]; ok {
		return walletregistry.ErrWalletAlreadyRegistered
	}

	next := maps.Clone(s.wallets)
	next[w.Address] = w
	if err := s.save(walletsFile, next); err != nil {
		return err
	}

	s.wallets = next
	return nil
}

func (s *store) UnregisterWallet(_ context.Context, address string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.reloadWallets(); err != nil {
		return err
	}

	if _, ok := s.wallets[address]; !ok {
		return walletregistry.ErrWalletNotFound
	}

	next := maps.Clone(s.wallets)
	delete(next, address)
	if err := s.save(walletsFile, next); err != nil {
		return err
	}

	s.wallets = next
	return nil
}

func (s *store) ListWallets(context.Context) ([]walletregistry.WatchedWallet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.reloadWallets(); err != nil {
		return nil, err
	}

	return slices.Collect(maps.Values(s.wallets)), nil
}
