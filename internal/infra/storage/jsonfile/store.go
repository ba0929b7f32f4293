// Package jsonfile keeps the watched wallets and the dedup ledger in two JSON
// files inside a directory. It serves single-process deployments that have no
// Redis available.
package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gabapcia/solwatch/internal/activitywatch"
	"github.com/gabapcia/solwatch/internal/walletregistry"
)

const (
	walletsFile   = "wallets.json"
	processedFile = "processed.json"
)

type store struct {
	dir       string
	retention time.Duration
	now       func() time.Time

	mu        sync.Mutex
	wallets   map[string]walletregistry.WatchedWallet
	processed map[string]activitywatch.ProcessedRecord
}

var (
	_ walletregistry.WalletStorage = (*store)(nil)
	_ activitywatch.DedupLedger    = (*store)(nil)
)

// Option configures optional store behavior.
type Option func(*store)

// WithRetention drops processed records older than d whenever the ledger is
// written. Zero keeps every record.
func WithRetention(d time.Duration) Option {
	return func(s *store) {
		s.retention = d
	}
}

// Open loads the store from dir, creating the directory when needed.
// Missing files are treated as empty.
func Open(dir string, opts ...Option) (*store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	s := &store{
		dir:       dir,
		now:       time.Now,
		wallets:   make(map[string]walletregistry.WatchedWallet),
		processed: make(map[string]activitywatch.ProcessedRecord),
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.load(walletsFile, &s.wallets); err != nil {
		return nil, err
	}

	if err := s.load(processedFile, &s.processed); err != nil {
		return nil, err
	}

	if s.wallets == nil {
		s.wallets = make(map[string]walletregistry.WatchedWallet)
	}
	if s.processed == nil {
		s.processed = make(map[string]activitywatch.ProcessedRecord)
	}

	return s, nil
}

func (s *store) load(name string, v any) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decoding %s: %w", name, err)
	}

	return nil
}

// save writes v to name through a temporary file renamed over the target,
// so readers never observe a partial file.
func (s *store) save(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, name+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}

	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}

	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), filepath.Join(s.dir, name))
}
