// Package txclassify turns confirmed Solana transactions into typed activity
// events from the point of view of one watched address.
//
// Classification runs in four steps: relevance, type determination from the
// first recognized instruction, extraction of balance deltas, and best-effort
// enrichment with prices and token metadata. Balance deltas are computed on
// raw integer amounts; scaling by the token decimals only happens when the
// event legs are built.
package txclassify

import (
	"context"
	"fmt"

	"github.com/gabapcia/solwatch/internal/pkg/types"

	"github.com/shopspring/decimal"
)

// Classifier classifies transactions for a watched address.
type Classifier interface {
	// Classify returns the event describing what tx did to address. The
	// boolean is false when the transaction does not involve address, is
	// malformed, or has no reportable balance change.
	Classify(ctx context.Context, tx Transaction, address string) (Event, bool)
}

type classifier struct {
	prices   PriceSource
	metadata MetadataSource
}

var _ Classifier = (*classifier)(nil)

type config struct {
	prices   PriceSource
	metadata MetadataSource
}

// Option configures the classifier collaborators.
type Option func(*config)

// WithPriceSource sets the source used to value event legs in USD.
func WithPriceSource(p PriceSource) Option {
	return func(c *config) {
		c.prices = p
	}
}

// WithMetadataSource sets the source used to resolve token symbols and names.
func WithMetadataSource(m MetadataSource) Option {
	return func(c *config) {
		c.metadata = m
	}
}

// New creates a Classifier. Without options no prices are looked up and every
// token is described as UnknownToken.
func New(opts ...Option) *classifier {
	cfg := config{
		prices:   nopPriceSource{},
		metadata: nopMetadataSource{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &classifier{
		prices:   cfg.prices,
		metadata: cfg.metadata,
	}
}

// determineType scans the top-level instructions in order and returns the
// category of the first one that belongs to a swap venue or a transfer
// program, with the venue name for swaps.
func determineType(tx Transaction) (ActivityType, string) {
	for _, ix := range tx.Instructions {
		if name, ok := dexPrograms[ix.ProgramID]; ok {
			return ActivitySwap, name
		}

		if _, ok := transferPrograms[ix.ProgramID]; ok {
			return ActivityTransfer, ""
		}
	}

	return ActivityUnknown, unknownPlatform
}

func (c *classifier) Classify(ctx context.Context, tx Transaction, address string) (Event, bool) {
	idx := tx.AccountIndex(address)
	if idx < 0 || tx.Meta == nil {
		return Event{}, false
	}

	event := Event{
		Signature: tx.Signature,
		Address:   address,
		Slot:      tx.Slot,
		BlockTime: tx.BlockTime,
		Failed:    tx.Failed(),
	}

	kind, platform := determineType(tx)

	var ok bool
	switch kind {
	case ActivitySwap:
		ok = c.extractSwap(ctx, tx, address, platform, &event)
	case ActivityTransfer:
		ok = c.extractTransfer(ctx, tx, idx, address, &event)
	default:
		ok = extractUnknown(tx, &event)
	}

	if !ok {
		return Event{}, false
	}

	if event.Failed {
		event.Description += " (failed)"
	}

	return event, true
}

// extractSwap requires exactly one debited and one credited mint among the
// token accounts owned by address.
func (c *classifier) extractSwap(ctx context.Context, tx Transaction, address, platform string, event *Event) bool {
	deltas, ok := tx.tokenAccountDeltas()
	if !ok {
		return false
	}

	type leg struct {
		delta    decimal.Decimal
		decimals uint8
	}

	byMint := types.NewDefaultMap[string](func() leg { return leg{delta: decimal.Zero} })
	for _, d := range deltas {
		if d.owner != address {
			continue
		}

		byMint.Update(d.mint, func(l leg) leg {
			return leg{delta: l.delta.Add(d.delta), decimals: d.decimals}
		})
	}

	var (
		nonZero   int
		negatives int
		positives int
		inMint    string
		outMint   string
		inLeg     leg
		outLeg    leg
	)
	for mint, l := range byMint.ToMap() {
		switch l.delta.Sign() {
		case -1:
			nonZero++
			negatives++
			inMint, inLeg = mint, l
		case 1:
			nonZero++
			positives++
			outMint, outLeg = mint, l
		}
	}

	if nonZero < 2 || negatives != 1 || positives != 1 {
		return false
	}

	in := c.describe(ctx, inMint, inLeg.decimals, inLeg.delta.Abs())
	out := c.describe(ctx, outMint, outLeg.decimals, outLeg.delta)

	event.Type = ActivitySwap
	event.Platform = platform
	event.Swap = &SwapDetails{In: in, Out: out}
	event.ValueUSD = in.ValueUSD
	event.Description = fmt.Sprintf("Swapped %s %s for %s %s on %s",
		in.Amount.String(), in.Symbol,
		out.Amount.String(), out.Symbol,
		platform,
	)

	return true
}

// extractTransfer reports the native balance change of address, or the first
// non-zero token account change owned by address when the native change is
// zero.
func (c *classifier) extractTransfer(ctx context.Context, tx Transaction, idx int, address string, event *Event) bool {
	native, ok := tx.nativeDelta(idx)
	if !ok {
		return false
	}

	var token TokenAmount
	delta := native

	switch {
	case !native.IsZero():
		token = c.describeNative(ctx, native.Abs())
	default:
		deltas, ok := tx.tokenAccountDeltas()
		if !ok {
			return false
		}

		found := false
		for _, d := range deltas {
			if d.owner != address || d.delta.IsZero() {
				continue
			}

			delta = d.delta
			token = c.describe(ctx, d.mint, d.decimals, d.delta.Abs())
			found = true
			break
		}

		if !found {
			return false
		}
	}

	direction, verb := DirectionReceived, "Received"
	if delta.Sign() < 0 {
		direction, verb = DirectionSent, "Sent"
	}

	event.Type = ActivityTransfer
	event.Platform = "Transfer"
	event.Transfer = &TransferDetails{Direction: direction, Token: token}
	event.ValueUSD = token.ValueUSD
	event.Description = fmt.Sprintf("%s %s %s", verb, token.Amount.String(), token.Symbol)

	return true
}

// extractUnknown labels the activity with the first well-known program found
// in the instructions. It always succeeds.
func extractUnknown(tx Transaction, event *Event) bool {
	event.Type = ActivityUnknown
	event.Platform = unknownPlatform
	event.Description = "Unknown activity"

	for _, ix := range tx.Instructions {
		program, ok := labeledPrograms[ix.ProgramID]
		if !ok {
			continue
		}

		if program.defi {
			event.Type = ActivityDeFi
		}
		event.Platform = program.name
		event.Description = "Interacted with " + program.name
		break
	}

	return true
}
