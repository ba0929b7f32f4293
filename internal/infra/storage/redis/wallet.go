package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gabapcia/solwatch/internal/walletregistry"
)

// walletStorageKey is the hash holding every watched wallet, keyed by
// address, with the JSON encoded wallet as value.
//
// Format: "solwatch:wallets"
var walletStorageKey = fmt.Sprintf("%s:wallets", keyPrefix)

// RegisterWallet stores w unless its address is already present.
func (c *client) RegisterWallet(ctx context.Context, w walletregistry.WatchedWallet) error {
	value, err := json.Marshal(w)
	if err != nil {
		return err
	}

	ok, err := c.conn.HSetNX(ctx, walletStorageKey, w.Address, value).Result()
	if err != nil {
		return err
	}

	if !ok {
		return walletregistry.ErrWalletAlreadyRegistered
	}

	return nil
}

// UnregisterWallet removes address from the watched wallets.
func (c *client) UnregisterWallet(ctx context.Context, address string) error {
	n, err := c.conn.HDel(ctx, walletStorageKey, address).Result()
	if err != nil {
		return err
	}

	if n == 0 {
		return walletregistry.ErrWalletNotFound
	}

	return nil
}

// ListWallets returns every watched wallet. Entries that do not decode are
// returned as bare addresses.
func (c *client) ListWallets(ctx context.Context) ([]walletregistry.WatchedWallet, error) {
	entries, err := c.conn.HGetAll(ctx, walletStorageKey).Result()
	if err != nil {
		return nil, err
	}

	wallets := make([]walletregistry.WatchedWallet, 0, len(entries))
	for address, value := range entries {
		var w walletregistry.WatchedWallet
		if err := json.Unmarshal([]byte(value), &w); err != nil || w.Address != address {
			w = walletregistry.WatchedWallet{Address: address}
		}

		wallets = append(wallets, w)
	}

	return wallets, nil
}

// Compile-time assertion to ensure *client satisfies the walletregistry.WalletStorage interface
var _ walletregistry.WalletStorage = new(client)
