package txclassify

import (
	"time"

	"github.com/shopspring/decimal"
)

// ActivityType is the semantic category of an activity event.
type ActivityType string

const (
	ActivitySwap     ActivityType = "SWAP"
	ActivityTransfer ActivityType = "TRANSFER"
	ActivityDeFi     ActivityType = "DEFI"
	ActivityUnknown  ActivityType = "UNKNOWN"
)

// Direction tells whether a transfer credited or debited the watched address.
type Direction string

const (
	DirectionReceived Direction = "RECEIVED"
	DirectionSent     Direction = "SENT"
)

// TokenAmount is one leg of an activity. Raw is the absolute amount in base
// units; Amount is Raw scaled by Decimals.
type TokenAmount struct {
	Mint     string          `json:"mint"`
	Symbol   string          `json:"symbol"`
	Name     string          `json:"name"`
	Decimals uint8           `json:"decimals"`
	Raw      decimal.Decimal `json:"raw"`
	Amount   decimal.Decimal `json:"amount"`
	PriceUSD *float64        `json:"priceUsd,omitempty"`
	ValueUSD *float64        `json:"valueUsd,omitempty"`
}

// SwapDetails holds the two legs of a swap.
type SwapDetails struct {
	In  TokenAmount `json:"in"`
	Out TokenAmount `json:"out"`
}

// TransferDetails holds the single leg of a transfer.
type TransferDetails struct {
	Direction Direction   `json:"direction"`
	Token     TokenAmount `json:"token"`
}

// Event is a classified activity of a watched address within one transaction.
// Events are values and are never mutated after Classify returns them.
type Event struct {
	Signature   string           `json:"signature"`
	Address     string           `json:"address"`
	Slot        uint64           `json:"slot"`
	BlockTime   *time.Time       `json:"blockTime,omitempty"`
	Type        ActivityType     `json:"type"`
	Platform    string           `json:"platform"`
	Description string           `json:"description"`
	ValueUSD    *float64         `json:"valueUsd,omitempty"`
	Failed      bool             `json:"failed,omitempty"`
	Swap        *SwapDetails     `json:"swap,omitempty"`
	Transfer    *TransferDetails `json:"transfer,omitempty"`
}
