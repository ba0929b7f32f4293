package txclassify

import (
	"math/big"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// AccountKey is the canonical representation of an account referenced by a
// transaction. Data sources normalize whatever shape the node returns into
// this type before classification.
type AccountKey struct {
	Pubkey   string
	Signer   bool
	Writable bool
}

// Instruction is a top-level instruction of a transaction.
type Instruction struct {
	ProgramID string
	Accounts  []string
	Data      string
}

// TokenBalance is the balance of one token account at a point in time.
// Amount holds the raw integer amount in base units.
type TokenBalance struct {
	AccountIndex int
	Mint         string
	Owner        string
	Amount       string
	Decimals     uint8
}

// Meta carries the execution results of a transaction. PreBalances and
// PostBalances are lamport balances parallel to the transaction account keys.
type Meta struct {
	Err               any
	Fee               uint64
	PreBalances       []uint64
	PostBalances      []uint64
	PreTokenBalances  []TokenBalance
	PostTokenBalances []TokenBalance
	LogMessages       []string
}

// Transaction is a confirmed transaction with its execution metadata.
type Transaction struct {
	Signature    string
	Slot         uint64
	BlockTime    *time.Time
	AccountKeys  []AccountKey
	Instructions []Instruction
	Meta         *Meta
}

// Failed reports whether the transaction was executed with an error.
func (tx Transaction) Failed() bool {
	return tx.Meta != nil && tx.Meta.Err != nil
}

// AccountIndex returns the position of address in the account keys, or -1.
func (tx Transaction) AccountIndex(address string) int {
	for i, key := range tx.AccountKeys {
		if key.Pubkey == address {
			return i
		}
	}
	return -1
}

// Mentions reports whether address is one of the transaction account keys.
func (tx Transaction) Mentions(address string) bool {
	return tx.AccountIndex(address) >= 0
}

// nativeDelta returns post minus pre lamports at index idx. ok is false when
// the balance arrays are not usable for idx.
func (tx Transaction) nativeDelta(idx int) (decimal.Decimal, bool) {
	m := tx.Meta
	if m == nil || len(m.PreBalances) != len(m.PostBalances) || idx < 0 || idx >= len(m.PreBalances) {
		return decimal.Zero, false
	}

	pre := decimal.NewFromBigInt(new(big.Int).SetUint64(m.PreBalances[idx]), 0)
	post := decimal.NewFromBigInt(new(big.Int).SetUint64(m.PostBalances[idx]), 0)
	return post.Sub(pre), true
}

// tokenAccountDelta is the balance change of a single token account.
type tokenAccountDelta struct {
	accountIndex int
	mint         string
	owner        string
	decimals     uint8
	delta        decimal.Decimal
}

// parseRawAmount parses a raw base-unit amount. Empty means zero.
func parseRawAmount(s string) (decimal.Decimal, bool) {
	if s == "" {
		return decimal.Zero, true
	}

	d, err := decimal.NewFromString(s)
	if err != nil || !d.IsInteger() {
		return decimal.Zero, false
	}
	return d, true
}

// tokenAccountDeltas computes post minus pre for every token account present
// in either snapshot, in ascending account index order. A missing snapshot
// counts as a zero balance. ok is false when an amount cannot be parsed.
func (tx Transaction) tokenAccountDeltas() ([]tokenAccountDelta, bool) {
	if tx.Meta == nil {
		return nil, false
	}

	pre := make(map[int]TokenBalance, len(tx.Meta.PreTokenBalances))
	for _, b := range tx.Meta.PreTokenBalances {
		pre[b.AccountIndex] = b
	}

	post := make(map[int]TokenBalance, len(tx.Meta.PostTokenBalances))
	for _, b := range tx.Meta.PostTokenBalances {
		post[b.AccountIndex] = b
	}

	indexes := make([]int, 0, len(pre)+len(post))
	for idx := range pre {
		indexes = append(indexes, idx)
	}
	for idx := range post {
		if _, seen := pre[idx]; !seen {
			indexes = append(indexes, idx)
		}
	}
	slices.Sort(indexes)

	deltas := make([]tokenAccountDelta, 0, len(indexes))
	for _, idx := range indexes {
		before := pre[idx]
		after, hasAfter := post[idx]

		ref := after
		if !hasAfter {
			ref = before
		}

		// A zero-value snapshot has an empty amount, which parses as zero.
		preAmount, ok := parseRawAmount(before.Amount)
		if !ok {
			return nil, false
		}

		postAmount, ok := parseRawAmount(after.Amount)
		if !ok {
			return nil, false
		}

		deltas = append(deltas, tokenAccountDelta{
			accountIndex: idx,
			mint:         ref.Mint,
			owner:        ref.Owner,
			decimals:     ref.Decimals,
			delta:        postAmount.Sub(preAmount),
		})
	}

	return deltas, true
}
