package solana

import (
	"context"
	"encoding/json"

	"github.com/gabapcia/solwatch/internal/activitywatch"
)

// TokenSupplyResponse is the result of getTokenSupply.
type TokenSupplyResponse struct {
	Value struct {
		Amount   string `json:"amount"`
		Decimals uint8  `json:"decimals"`
	} `json:"value"`
}

// GetTokenDecimals returns the number of decimals of mint. It returns
// activitywatch.ErrNotFound when the node does not know the mint.
func (c *client) GetTokenDecimals(ctx context.Context, mint string) (uint8, error) {
	data, err := c.conn.Fetch(ctx, "getTokenSupply", mint, map[string]any{
		"commitment": commitment,
	})
	if err != nil {
		return 0, err
	}

	if isNull(data) {
		return 0, activitywatch.ErrNotFound
	}

	var resp TokenSupplyResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return 0, err
	}

	return resp.Value.Decimals, nil
}
