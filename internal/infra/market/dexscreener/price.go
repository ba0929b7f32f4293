package dexscreener

import (
	"context"
	"errors"
	"strconv"

	"github.com/gabapcia/solwatch/internal/pkg/logger"
	"github.com/gabapcia/solwatch/internal/txclassify"
)

// ErrUnexpectedStatus is returned when the API answers with a non-200 status.
var ErrUnexpectedStatus = errors.New("unexpected http status")

// GetPrice returns the USD price of mint taken from its most liquid Solana
// pair. Mints without a usable pair are cached as nil; failed requests are
// not cached.
func (c *client) GetPrice(ctx context.Context, mint string) *txclassify.Price {
	if price, ok := c.prices.Get(mint); ok {
		return price
	}

	pair, found, err := c.fetchPair(ctx, mint)
	if err != nil {
		logger.Warn(ctx, "price lookup failed", "token.mint", mint, "error", err)
		return nil
	}

	var price *txclassify.Price
	if found {
		price = toPrice(pair)
	}

	c.prices.Add(mint, price)
	return price
}

func toPrice(p PairResponse) *txclassify.Price {
	usd, err := strconv.ParseFloat(p.PriceUSD, 64)
	if err != nil || usd <= 0 {
		return nil
	}

	marketCap := p.MarketCap
	if marketCap == 0 {
		marketCap = p.FDV
	}

	return &txclassify.Price{
		USD:       usd,
		Volume24h: p.Volume.H24,
		MarketCap: marketCap,
	}
}
