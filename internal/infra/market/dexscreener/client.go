// Package dexscreener prices Solana tokens and names them using the public
// DexScreener API. Token decimals come from a separate source, usually the
// RPC node. Every lookup is cached for a fixed time and never fails: missing
// data is reported as nil or as txclassify.UnknownToken.
package dexscreener

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"

	"github.com/gabapcia/solwatch/internal/txclassify"
)

const (
	// DefaultBaseURL is the public DexScreener API.
	DefaultBaseURL = "https://api.dexscreener.com"

	// solanaChainID is the chain identifier DexScreener uses for Solana pairs.
	solanaChainID = "solana"

	defaultPriceTTL    = 30 * time.Second
	defaultMetadataTTL = time.Hour
	defaultCacheSize   = 4096

	// requestTimeout bounds one shared lookup, which outlives the caller that
	// started it.
	requestTimeout = 10 * time.Second
)

// DecimalsSource returns the number of decimals of a mint.
type DecimalsSource interface {
	GetTokenDecimals(ctx context.Context, mint string) (uint8, error)
}

type client struct {
	baseURL    string
	httpClient *http.Client
	decimals   DecimalsSource

	prices   *expirable.LRU[string, *txclassify.Price]
	metadata *expirable.LRU[string, txclassify.TokenMetadata]
	inflight singleflight.Group
}

var (
	_ txclassify.PriceSource    = (*client)(nil)
	_ txclassify.MetadataSource = (*client)(nil)
)

type config struct {
	baseURL     string
	decimals    DecimalsSource
	priceTTL    time.Duration
	metadataTTL time.Duration
	cacheSize   int
}

// Option configures optional client behavior.
type Option func(*config)

// WithBaseURL overrides the API location.
func WithBaseURL(u string) Option {
	return func(c *config) {
		c.baseURL = u
	}
}

// WithDecimalsSource sets where token decimals are read from. Without it,
// decimals default to those of txclassify.UnknownToken.
func WithDecimalsSource(s DecimalsSource) Option {
	return func(c *config) {
		c.decimals = s
	}
}

// WithPriceTTL sets how long a price stays cached.
func WithPriceTTL(d time.Duration) Option {
	return func(c *config) {
		c.priceTTL = d
	}
}

// WithMetadataTTL sets how long token metadata stays cached.
func WithMetadataTTL(d time.Duration) Option {
	return func(c *config) {
		c.metadataTTL = d
	}
}

// WithCacheSize bounds the number of mints kept in each cache.
func WithCacheSize(n int) Option {
	return func(c *config) {
		c.cacheSize = n
	}
}

// NewClient returns a price and metadata source backed by DexScreener.
func NewClient(httpClient *http.Client, opts ...Option) *client {
	cfg := config{
		baseURL:     DefaultBaseURL,
		priceTTL:    defaultPriceTTL,
		metadataTTL: defaultMetadataTTL,
		cacheSize:   defaultCacheSize,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &client{
		baseURL:    cfg.baseURL,
		httpClient: httpClient,
		decimals:   cfg.decimals,
		prices:     expirable.NewLRU[string, *txclassify.Price](cfg.cacheSize, nil, cfg.priceTTL),
		metadata:   expirable.NewLRU[string, txclassify.TokenMetadata](cfg.cacheSize, nil, cfg.metadataTTL),
	}
}

type (
	tokenResponse struct {
		Address string `json:"address"`
		Name    string `json:"name"`
		Symbol  string `json:"symbol"`
	}

	// PairResponse is a trading pair listed by the tokens endpoint.
	PairResponse struct {
		ChainID    string        `json:"chainId"`
		DexID      string        `json:"dexId"`
		BaseToken  tokenResponse `json:"baseToken"`
		QuoteToken tokenResponse `json:"quoteToken"`
		PriceUSD   string        `json:"priceUsd"`
		Volume     struct {
			H24 float64 `json:"h24"`
		} `json:"volume"`
		Liquidity struct {
			USD float64 `json:"usd"`
		} `json:"liquidity"`
		MarketCap float64 `json:"marketCap"`
		FDV       float64 `json:"fdv"`
	}

	tokensResponse struct {
		Pairs []PairResponse `json:"pairs"`
	}
)

// bestPair returns the Solana pair with the most liquidity whose base token
// is mint.
func bestPair(pairs []PairResponse, mint string) (PairResponse, bool) {
	var (
		best  PairResponse
		found bool
	)

	for _, p := range pairs {
		if p.ChainID != solanaChainID || p.BaseToken.Address != mint {
			continue
		}

		if !found || p.Liquidity.USD > best.Liquidity.USD {
			best, found = p, true
		}
	}

	return best, found
}

// fetchPair loads the most liquid pair of mint. Concurrent lookups of the
// same mint share one request, which is not canceled with the caller that
// started it.
func (c *client) fetchPair(ctx context.Context, mint string) (PairResponse, bool, error) {
	v, err, _ := c.inflight.Do(mint, func() (any, error) {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), requestTimeout)
		defer cancel()

		endpoint := fmt.Sprintf("%s/latest/dex/tokens/%s", c.baseURL, url.PathEscape(mint))

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")

		res, err := c.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer res.Body.Close()

		if res.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("%w: %s", ErrUnexpectedStatus, res.Status)
		}

		var data tokensResponse
		if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
			return nil, err
		}

		return data.Pairs, nil
	})
	if err != nil {
		return PairResponse{}, false, err
	}

	pair, ok := bestPair(v.([]PairResponse), mint)
	return pair, ok, nil
}
