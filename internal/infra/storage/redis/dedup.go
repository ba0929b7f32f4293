package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gabapcia/solwatch/internal/activitywatch"
)

// dedupKey returns the key of a processed signature.
//
// Format: "solwatch:dedup:{signature}"
func dedupKey(signature string) string {
	return fmt.Sprintf("%s:dedup:%s", keyPrefix, signature)
}

// Has reports whether signature has a processed record.
func (c *client) Has(ctx context.Context, signature string) (bool, error) {
	n, err := c.conn.Exists(ctx, dedupKey(signature)).Result()
	if err != nil {
		return false, err
	}

	return n > 0, nil
}

// MarkProcessed stores record under the signature key with SETNX, so the
// first process to finish a signature keeps its record and later calls are
// no-ops.
func (c *client) MarkProcessed(ctx context.Context, signature string, record activitywatch.ProcessedRecord) error {
	record.Signature = signature

	value, err := json.Marshal(record)
	if err != nil {
		return err
	}

	return c.conn.SetNX(ctx, dedupKey(signature), value, c.dedupTTL).Err()
}

// Compile-time assertion to ensure client implements the DedupLedger interface.
var _ activitywatch.DedupLedger = new(client)
