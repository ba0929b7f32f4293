package solana

import (
	"context"
	"encoding/json"

	"github.com/gabapcia/solwatch/internal/activitywatch"
)

// SignatureResponse is an item of the getSignaturesForAddress result.
type SignatureResponse struct {
	Signature          string `json:"signature"`
	Slot               uint64 `json:"slot"`
	BlockTime          *int64 `json:"blockTime"`
	Err                any    `json:"err"`
	ConfirmationStatus string `json:"confirmationStatus"`
}

func (r SignatureResponse) toSignatureRecord() activitywatch.SignatureRecord {
	return activitywatch.SignatureRecord{
		Signature:          r.Signature,
		Slot:               r.Slot,
		BlockTime:          r.BlockTime,
		ConfirmationStatus: r.ConfirmationStatus,
		Failed:             r.Err != nil,
	}
}

// GetRecentSignatures returns the newest signatures involving address,
// newest first, as listed by getSignaturesForAddress.
func (c *client) GetRecentSignatures(ctx context.Context, address string, limit int) ([]activitywatch.SignatureRecord, error) {
	config := map[string]any{
		"commitment": commitment,
	}
	if limit > 0 {
		config["limit"] = limit
	}

	data, err := c.conn.Fetch(ctx, "getSignaturesForAddress", address, config)
	if err != nil {
		return nil, err
	}

	var resp []SignatureResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, err
	}

	records := make([]activitywatch.SignatureRecord, len(resp))
	for i, r := range resp {
		records[i] = r.toSignatureRecord()
	}

	return records, nil
}
