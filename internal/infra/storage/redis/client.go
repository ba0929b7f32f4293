// Package redis stores the watched wallets and the dedup ledger in Redis so
// that several solwatch processes share one view of both.
package redis

import (
	"context"
	"time"

	redis "github.com/redis/go-redis/v9"
)

// keyPrefix namespaces every key written by solwatch.
const keyPrefix = "solwatch"

// defaultDedupTTL is how long a processed signature is remembered.
const defaultDedupTTL = 7 * 24 * time.Hour

type client struct {
	conn     *redis.Client
	dedupTTL time.Duration
}

// Option configures optional client behavior.
type Option func(*client)

// WithDedupTTL sets the retention of processed signatures. Zero keeps them
// forever.
func WithDedupTTL(ttl time.Duration) Option {
	return func(c *client) {
		c.dedupTTL = ttl
	}
}

func (c *client) Close() error {
	return c.conn.Close()
}

func NewClient(ctx context.Context, addr, username, password string, db int, opts ...Option) (*client, error) {
	conn := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       db,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	c := &client{
		conn:     conn,
		dedupTTL: defaultDedupTTL,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}
