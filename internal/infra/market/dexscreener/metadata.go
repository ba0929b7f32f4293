package dexscreener

import (
	"context"

	"github.com/gabapcia/solwatch/internal/pkg/logger"
	"github.com/gabapcia/solwatch/internal/txclassify"
)

// GetMetadata describes mint using the decimals source for its decimals and
// the most liquid pair for its name and symbol. Results are cached only when
// both lookups succeeded.
func (c *client) GetMetadata(ctx context.Context, mint string) txclassify.TokenMetadata {
	if md, ok := c.metadata.Get(mint); ok {
		return md
	}

	md := txclassify.UnknownToken
	complete := true

	if c.decimals != nil {
		decimals, err := c.decimals.GetTokenDecimals(ctx, mint)
		if err != nil {
			logger.Warn(ctx, "token decimals lookup failed", "token.mint", mint, "error", err)
			complete = false
		} else {
			md.Decimals = decimals
		}
	}

	pair, found, err := c.fetchPair(ctx, mint)
	switch {
	case err != nil:
		logger.Warn(ctx, "token metadata lookup failed", "token.mint", mint, "error", err)
		complete = false
	case found:
		if pair.BaseToken.Name != "" {
			md.Name = pair.BaseToken.Name
		}
		md.Symbol = pair.BaseToken.Symbol
	}

	if complete {
		c.metadata.Add(mint, md)
	}

	return md
}
