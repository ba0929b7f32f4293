package txclassify

import (
	"context"

	"github.com/shopspring/decimal"
)

// shortMint abbreviates a mint address for display when no symbol is known.
func shortMint(mint string) string {
	if len(mint) <= 8 {
		return mint
	}
	return mint[:4] + "..." + mint[len(mint)-4:]
}

// value attaches the unit price and the USD value of amount to t when a
// price is available.
func value(t *TokenAmount, price *Price) {
	if price == nil {
		return
	}

	unit := price.USD
	total := decimal.NewFromFloat(price.USD).Mul(t.Amount).InexactFloat64()

	t.PriceUSD = &unit
	t.ValueUSD = &total
}

// describe builds a token leg from a raw absolute amount. The decimals seen in
// the transaction token balances take precedence over metadata.
func (c *classifier) describe(ctx context.Context, mint string, decimals uint8, raw decimal.Decimal) TokenAmount {
	meta := c.metadata.GetMetadata(ctx, mint)

	symbol := meta.Symbol
	if symbol == "" {
		symbol = shortMint(mint)
	}

	name := meta.Name
	if name == "" {
		name = UnknownToken.Name
	}

	t := TokenAmount{
		Mint:     mint,
		Symbol:   symbol,
		Name:     name,
		Decimals: decimals,
		Raw:      raw,
		Amount:   raw.Shift(-int32(decimals)),
	}

	value(&t, c.prices.GetPrice(ctx, mint))
	return t
}

// describeNative builds a SOL leg from an absolute lamport amount.
func (c *classifier) describeNative(ctx context.Context, lamports decimal.Decimal) TokenAmount {
	t := TokenAmount{
		Mint:     NativeMint,
		Symbol:   "SOL",
		Name:     "Solana",
		Decimals: nativeDecimals,
		Raw:      lamports,
		Amount:   lamports.Shift(-int32(nativeDecimals)),
	}

	value(&t, c.prices.GetPrice(ctx, NativeMint))
	return t
}
