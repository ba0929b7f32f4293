package txclassify

import "context"

// Price is a market snapshot of a token.
type Price struct {
	USD       float64
	Volume24h float64
	MarketCap float64
}

// PriceSource looks up token prices. Implementations never fail: a missing
// or unavailable price is reported as nil.
type PriceSource interface {
	GetPrice(ctx context.Context, mint string) *Price
}

// TokenMetadata describes a token mint.
type TokenMetadata struct {
	Name     string
	Symbol   string
	Decimals uint8
}

// UnknownToken is returned by metadata sources when nothing is known about a mint.
var UnknownToken = TokenMetadata{Name: "Unknown Token", Decimals: 9}

// MetadataSource looks up token metadata. Implementations never fail and
// fall back to UnknownToken.
type MetadataSource interface {
	GetMetadata(ctx context.Context, mint string) TokenMetadata
}

type nopPriceSource struct{}

func (nopPriceSource) GetPrice(context.Context, string) *Price { return nil }

type nopMetadataSource struct{}

func (nopMetadataSource) GetMetadata(context.Context, string) TokenMetadata { return UnknownToken }
