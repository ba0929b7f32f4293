package walletregistry

import (
	"errors"
	"testing"
	"time"

	"github.com/gabapcia/solwatch/internal/pkg/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	walletA = "9WzDXwBbmkg8ZTbNMqUxvQRAyrZzDsGYdLVL9zYtAWWM"
	walletB = "7xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgAsU"
	walletC = "4Nd1mBQtrMJVYVfKf2PJy9NZUZdTAsp7D4xWLs4gDB4T"
)

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (*service, *WalletStorageMock) {
	storage := NewWalletStorageMock(t)
	s := New(storage)
	s.now = func() time.Time { return fixedNow }
	return s, storage
}

func TestBuildWatchedWallet(t *testing.T) {
	t.Run("should build and validate a correct wallet", func(t *testing.T) {
		w, err := buildWatchedWallet("  "+walletA+" ", " treasury ", fixedNow)
		require.NoError(t, err)
		assert.Equal(t, walletA, w.Address)
		assert.Equal(t, "treasury", w.Label)
		assert.Equal(t, fixedNow, w.AddedAt)
	})

	t.Run("should reject a non base58 address", func(t *testing.T) {
		_, err := buildWatchedWallet("0x1234567890abcdef1234567890abcdef12345678", "", fixedNow)
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
	})

	t.Run("should reject an empty address", func(t *testing.T) {
		_, err := buildWatchedWallet("", "", fixedNow)
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
	})

	t.Run("should reject an overly long label", func(t *testing.T) {
		label := make([]byte, 65)
		for i := range label {
			label[i] = 'x'
		}

		_, err := buildWatchedWallet(walletA, string(label), fixedNow)
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
	})
}

func TestService_StartWatching(t *testing.T) {
	t.Run("should register a wallet and notify observers", func(t *testing.T) {
		ctx := t.Context()
		s, storage := newTestService(t)
		observer := NewObserverMock(t)
		s.Observe(observer)

		expected := WatchedWallet{Address: walletA, Label: "main", AddedAt: fixedNow}
		storage.EXPECT().RegisterWallet(ctx, expected).Return(nil).Once()
		observer.EXPECT().WalletAdded(ctx, walletA).Return().Once()

		err := s.StartWatching(ctx, walletA, "main")
		require.NoError(t, err)
		assert.True(t, s.Contains(walletA))
		assert.Equal(t, []string{walletA}, s.Snapshot())
	})

	t.Run("should return a validation error without touching storage", func(t *testing.T) {
		ctx := t.Context()
		s, _ := newTestService(t)

		err := s.StartWatching(ctx, "not-an-address", "")
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
		assert.Empty(t, s.Snapshot())
	})

	t.Run("should leave the set unchanged when the wallet is already registered", func(t *testing.T) {
		ctx := t.Context()
		s, storage := newTestService(t)
		observer := NewObserverMock(t)
		s.Observe(observer)

		storage.EXPECT().RegisterWallet(ctx, WatchedWallet{Address: walletA, AddedAt: fixedNow}).Return(ErrWalletAlreadyRegistered).Once()

		err := s.StartWatching(ctx, walletA, "")
		assert.ErrorIs(t, err, ErrWalletAlreadyRegistered)
		assert.False(t, s.Contains(walletA))
	})

	t.Run("should return storage errors", func(t *testing.T) {
		ctx := t.Context()
		s, storage := newTestService(t)

		storageErr := errors.New("storage down")
		storage.EXPECT().RegisterWallet(ctx, WatchedWallet{Address: walletA, AddedAt: fixedNow}).Return(storageErr).Once()

		err := s.StartWatching(ctx, walletA, "")
		assert.ErrorIs(t, err, storageErr)
	})
}

func TestService_StopWatching(t *testing.T) {
	t.Run("should unregister a wallet and notify observers", func(t *testing.T) {
		ctx := t.Context()
		s, storage := newTestService(t)
		s.wallets[walletA] = WatchedWallet{Address: walletA}

		observer := NewObserverMock(t)
		s.Observe(observer)

		storage.EXPECT().UnregisterWallet(ctx, walletA).Return(nil).Once()
		observer.EXPECT().WalletRemoved(ctx, walletA).Return().Once()

		err := s.StopWatching(ctx, walletA)
		require.NoError(t, err)
		assert.False(t, s.Contains(walletA))
	})

	t.Run("should return a validation error for an invalid address", func(t *testing.T) {
		ctx := t.Context()
		s, _ := newTestService(t)

		err := s.StopWatching(ctx, "")
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
	})

	t.Run("should return not found without notifying", func(t *testing.T) {
		ctx := t.Context()
		s, storage := newTestService(t)
		s.Observe(NewObserverMock(t))

		storage.EXPECT().UnregisterWallet(ctx, walletB).Return(ErrWalletNotFound).Once()

		err := s.StopWatching(ctx, walletB)
		assert.ErrorIs(t, err, ErrWalletNotFound)
	})
}

func TestService_ListWatching(t *testing.T) {
	t.Run("should return wallets ordered by registration time", func(t *testing.T) {
		ctx := t.Context()
		s, storage := newTestService(t)

		storage.EXPECT().ListWallets(ctx).Return([]WatchedWallet{
			{Address: walletC, AddedAt: fixedNow.Add(time.Hour)},
			{Address: walletB, AddedAt: fixedNow},
			{Address: walletA, AddedAt: fixedNow},
		}, nil).Once()

		wallets, err := s.ListWatching(ctx)
		require.NoError(t, err)
		require.Len(t, wallets, 3)
		assert.Equal(t, walletB, wallets[0].Address)
		assert.Equal(t, walletA, wallets[1].Address)
		assert.Equal(t, walletC, wallets[2].Address)
	})

	t.Run("should return storage errors", func(t *testing.T) {
		ctx := t.Context()
		s, storage := newTestService(t)

		storageErr := errors.New("storage down")
		storage.EXPECT().ListWallets(ctx).Return(nil, storageErr).Once()

		_, err := s.ListWatching(ctx)
		assert.ErrorIs(t, err, storageErr)
	})
}

func TestService_Refresh(t *testing.T) {
	t.Run("should sync the set and notify about external changes", func(t *testing.T) {
		ctx := t.Context()
		s, storage := newTestService(t)
		s.wallets[walletA] = WatchedWallet{Address: walletA}
		s.wallets[walletB] = WatchedWallet{Address: walletB}

		observer := NewObserverMock(t)
		s.Observe(observer)

		storage.EXPECT().ListWallets(ctx).Return([]WatchedWallet{
			{Address: walletB},
			{Address: walletC},
		}, nil).Once()
		observer.EXPECT().WalletAdded(ctx, walletC).Return().Once()
		observer.EXPECT().WalletRemoved(ctx, walletA).Return().Once()

		addresses, err := s.Refresh(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{walletC, walletB}, addresses)
		assert.False(t, s.Contains(walletA))
	})

	t.Run("should keep the current set when storage fails", func(t *testing.T) {
		ctx := t.Context()
		s, storage := newTestService(t)
		s.wallets[walletA] = WatchedWallet{Address: walletA}

		storageErr := errors.New("storage down")
		storage.EXPECT().ListWallets(ctx).Return(nil, storageErr).Once()

		_, err := s.Refresh(ctx)
		assert.ErrorIs(t, err, storageErr)
		assert.True(t, s.Contains(walletA))
	})

	t.Run("should not notify when nothing changed", func(t *testing.T) {
		ctx := t.Context()
		s, storage := newTestService(t)
		s.wallets[walletA] = WatchedWallet{Address: walletA}
		s.Observe(NewObserverMock(t))

		storage.EXPECT().ListWallets(ctx).Return([]WatchedWallet{{Address: walletA}}, nil).Once()

		addresses, err := s.Refresh(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{walletA}, addresses)
	})
}
