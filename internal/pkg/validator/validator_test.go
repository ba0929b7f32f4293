package validator

import (
	"errors"
	"testing"

	gvalidator "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatError(t *testing.T) {
	t.Run("should transform validation errors to formatted errors", func(t *testing.T) {
		type TestStruct struct {
			Name string `validate:"required"`
		}

		err := gvalidator.New().Struct(TestStruct{})
		require.Error(t, err)

		formattedErr := formatError(err)

		assert.ErrorIs(t, formattedErr, ErrValidationFailed)
		assert.Contains(t, formattedErr.Error(), "'Name': value '' does not meet the requirements for the 'required' validation")
	})

	t.Run("should return original error when not validation error", func(t *testing.T) {
		originalErr := errors.New("database connection failed")
		assert.Equal(t, originalErr, formatError(originalErr))
	})
}

func TestIsSolanaAddress(t *testing.T) {
	testCases := []struct {
		name    string
		address string
		valid   bool
	}{
		{name: "system program", address: "11111111111111111111111111111111", valid: true},
		{name: "token program", address: "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA", valid: true},
		{name: "wrapped sol mint", address: "So11111111111111111111111111111111111111112", valid: true},
		{name: "empty", address: "", valid: false},
		{name: "hex address", address: "0x1234567890abcdef1234567890abcdef12345678", valid: false},
		{name: "too short", address: "abc", valid: false},
		{name: "too long", address: "5VERv8NMvzbJMEkV8xnrLkEaWRtSz9CosKDYjCJjBRnbJLgp8uirBgmQpjKhoR4tjF3ZpRzrFmBV6UjKdiSZkQUW", valid: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.valid, IsSolanaAddress(tc.address))
		})
	}
}

func TestValidate(t *testing.T) {
	type Wallet struct {
		Address string `validate:"solana_address"`
		Label   string `validate:"max=8"`
	}

	t.Run("should pass for a valid wallet", func(t *testing.T) {
		err := Validate(Wallet{Address: "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA", Label: "main"})
		assert.NoError(t, err)
	})

	t.Run("should fail for a malformed address", func(t *testing.T) {
		err := Validate(Wallet{Address: "not-base58!"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidationFailed)
		assert.Contains(t, err.Error(), "'Address': value 'not-base58!' does not meet the requirements for the 'solana_address' validation")
	})

	t.Run("should report every failing field", func(t *testing.T) {
		err := Validate(Wallet{Address: "", Label: "a-very-long-label"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidationFailed)
		assert.Contains(t, err.Error(), "'Address'")
		assert.Contains(t, err.Error(), "'Label'")
	})

	t.Run("should return a non validation error for non-struct input", func(t *testing.T) {
		err := Validate("string")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrValidationFailed)
	})
}
