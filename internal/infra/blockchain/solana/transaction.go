package solana

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/solwatch/internal/activitywatch"
	"github.com/gabapcia/solwatch/internal/txclassify"
)

var errUnexpectedAccountRef = errors.New("unexpected account reference")

type (
	// AccountKeyResponse is an entry of message.accountKeys. The node returns
	// plain strings for the json encoding and objects for jsonParsed; both
	// decode into this type.
	AccountKeyResponse struct {
		Pubkey   string `json:"pubkey"`
		Signer   bool   `json:"signer"`
		Writable bool   `json:"writable"`
		Source   string `json:"source"`

		plain bool
	}

	// InstructionResponse is a top-level instruction. Parsed instructions
	// carry the program id and a parsed payload, compiled ones carry
	// indexes into the account keys.
	InstructionResponse struct {
		ProgramID      string          `json:"programId"`
		ProgramIDIndex *int            `json:"programIdIndex"`
		Accounts       json.RawMessage `json:"accounts"`
		Data           string          `json:"data"`
	}

	// UITokenAmountResponse is the amount of a token balance.
	UITokenAmountResponse struct {
		Amount   string `json:"amount"`
		Decimals uint8  `json:"decimals"`
	}

	// TokenBalanceResponse is an entry of meta.preTokenBalances or
	// meta.postTokenBalances.
	TokenBalanceResponse struct {
		AccountIndex  int                   `json:"accountIndex"`
		Mint          string                `json:"mint"`
		Owner         string                `json:"owner"`
		UITokenAmount UITokenAmountResponse `json:"uiTokenAmount"`
	}

	// LoadedAddressesResponse lists the accounts loaded from lookup tables by
	// a versioned transaction.
	LoadedAddressesResponse struct {
		Writable []string `json:"writable"`
		Readonly []string `json:"readonly"`
	}

	// MetaResponse is the execution metadata of a transaction.
	MetaResponse struct {
		Err               any                      `json:"err"`
		Fee               uint64                   `json:"fee"`
		PreBalances       []uint64                 `json:"preBalances"`
		PostBalances      []uint64                 `json:"postBalances"`
		PreTokenBalances  []TokenBalanceResponse   `json:"preTokenBalances"`
		PostTokenBalances []TokenBalanceResponse   `json:"postTokenBalances"`
		LogMessages       []string                 `json:"logMessages"`
		LoadedAddresses   *LoadedAddressesResponse `json:"loadedAddresses"`
	}

	// TransactionResponse is the result of getTransaction.
	TransactionResponse struct {
		Slot        uint64        `json:"slot"`
		BlockTime   *int64        `json:"blockTime"`
		Meta        *MetaResponse `json:"meta"`
		Transaction struct {
			Signatures []string `json:"signatures"`
			Message    struct {
				AccountKeys  []AccountKeyResponse  `json:"accountKeys"`
				Instructions []InstructionResponse `json:"instructions"`
			} `json:"message"`
		} `json:"transaction"`
	}
)

// UnmarshalJSON accepts both the string and the object form of an account key.
func (k *AccountKeyResponse) UnmarshalJSON(data []byte) error {
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte(`"`)) {
		*k = AccountKeyResponse{plain: true}
		return json.Unmarshal(data, &k.Pubkey)
	}

	type alias AccountKeyResponse
	var v alias
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	*k = AccountKeyResponse(v)
	return nil
}

// accountKeys returns the canonical account keys, appending the lookup table
// addresses when the node listed only the static keys.
func (r TransactionResponse) accountKeys() []txclassify.AccountKey {
	raw := r.Transaction.Message.AccountKeys
	keys := make([]txclassify.AccountKey, 0, len(raw))

	plain := len(raw) > 0
	for _, k := range raw {
		keys = append(keys, txclassify.AccountKey{Pubkey: k.Pubkey, Signer: k.Signer, Writable: k.Writable})
		plain = plain && k.plain
	}

	if plain && r.Meta != nil && r.Meta.LoadedAddresses != nil {
		for _, address := range r.Meta.LoadedAddresses.Writable {
			keys = append(keys, txclassify.AccountKey{Pubkey: address, Writable: true})
		}
		for _, address := range r.Meta.LoadedAddresses.Readonly {
			keys = append(keys, txclassify.AccountKey{Pubkey: address})
		}
	}

	return keys
}

// resolve returns the account key at idx.
func resolve(keys []txclassify.AccountKey, idx int) (string, error) {
	if idx < 0 || idx >= len(keys) {
		return "", fmt.Errorf("%w: index %d out of %d keys", errUnexpectedAccountRef, idx, len(keys))
	}
	return keys[idx].Pubkey, nil
}

// toInstruction resolves the program and the accounts of i against keys.
func (i InstructionResponse) toInstruction(keys []txclassify.AccountKey) (txclassify.Instruction, error) {
	ix := txclassify.Instruction{ProgramID: i.ProgramID, Data: i.Data}

	if ix.ProgramID == "" && i.ProgramIDIndex != nil {
		programID, err := resolve(keys, *i.ProgramIDIndex)
		if err != nil {
			return ix, err
		}
		ix.ProgramID = programID
	}

	if len(i.Accounts) == 0 {
		return ix, nil
	}

	var names []string
	if err := json.Unmarshal(i.Accounts, &names); err == nil {
		ix.Accounts = names
		return ix, nil
	}

	var indexes []int
	if err := json.Unmarshal(i.Accounts, &indexes); err != nil {
		return ix, fmt.Errorf("%w: %s", errUnexpectedAccountRef, i.Accounts)
	}

	ix.Accounts = make([]string, len(indexes))
	for n, idx := range indexes {
		account, err := resolve(keys, idx)
		if err != nil {
			return ix, err
		}
		ix.Accounts[n] = account
	}

	return ix, nil
}

func toTokenBalances(balances []TokenBalanceResponse) []txclassify.TokenBalance {
	if balances == nil {
		return nil
	}

	out := make([]txclassify.TokenBalance, len(balances))
	for i, b := range balances {
		out[i] = txclassify.TokenBalance{
			AccountIndex: b.AccountIndex,
			Mint:         b.Mint,
			Owner:        b.Owner,
			Amount:       b.UITokenAmount.Amount,
			Decimals:     b.UITokenAmount.Decimals,
		}
	}

	return out
}

// toTransaction converts the RPC response into the canonical transaction.
func (r TransactionResponse) toTransaction(signature string) (txclassify.Transaction, error) {
	keys := r.accountKeys()

	tx := txclassify.Transaction{
		Signature:    signature,
		Slot:         r.Slot,
		AccountKeys:  keys,
		Instructions: make([]txclassify.Instruction, 0, len(r.Transaction.Message.Instructions)),
	}

	if len(r.Transaction.Signatures) > 0 {
		tx.Signature = r.Transaction.Signatures[0]
	}

	if r.BlockTime != nil {
		t := time.Unix(*r.BlockTime, 0).UTC()
		tx.BlockTime = &t
	}

	for _, i := range r.Transaction.Message.Instructions {
		ix, err := i.toInstruction(keys)
		if err != nil {
			return txclassify.Transaction{}, err
		}
		tx.Instructions = append(tx.Instructions, ix)
	}

	if r.Meta != nil {
		tx.Meta = &txclassify.Meta{
			Err:               r.Meta.Err,
			Fee:               r.Meta.Fee,
			PreBalances:       r.Meta.PreBalances,
			PostBalances:      r.Meta.PostBalances,
			PreTokenBalances:  toTokenBalances(r.Meta.PreTokenBalances),
			PostTokenBalances: toTokenBalances(r.Meta.PostTokenBalances),
			LogMessages:       r.Meta.LogMessages,
		}
	}

	return tx, nil
}

// GetTransaction fetches a confirmed transaction in jsonParsed encoding. A
// null result, returned while the node has not indexed the transaction, maps
// to activitywatch.ErrNotFound. Decode and account resolution failures wrap
// activitywatch.ErrMalformedTransaction.
func (c *client) GetTransaction(ctx context.Context, signature string) (txclassify.Transaction, error) {
	data, err := c.conn.Fetch(ctx, "getTransaction", signature, map[string]any{
		"encoding":                       "jsonParsed",
		"commitment":                     commitment,
		"maxSupportedTransactionVersion": 0,
	})
	if err != nil {
		return txclassify.Transaction{}, err
	}

	if isNull(data) {
		return txclassify.Transaction{}, activitywatch.ErrNotFound
	}

	var resp TransactionResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return txclassify.Transaction{}, fmt.Errorf("%w: %w", activitywatch.ErrMalformedTransaction, err)
	}

	tx, err := resp.toTransaction(signature)
	if err != nil {
		return txclassify.Transaction{}, fmt.Errorf("%w: %w", activitywatch.ErrMalformedTransaction, err)
	}

	return tx, nil
}

func isNull(data json.RawMessage) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
