package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTransaction(t *testing.T) {
	tests := []struct {
		name            string
		candidate       TransactionCandidate
		expectedReasons []string
		expectedPayload Payload
	}{
		{
			name: "valid init",
			candidate: TransactionCandidate{
				Type: TransactionTypeInitFT,
				Data: []byte(`{"symbol":"GLD","name":"Gold","decimals":2}`),
			},
			expectedPayload: InitFTPayload{Symbol: "GLD", Name: "Gold", Decimals: 2},
		},
		{
			name: "init without decimals defaults to zero",
			candidate: TransactionCandidate{
				Type: TransactionTypeInitFT,
				Data: []byte(`{"symbol":"GLD","name":"Gold"}`),
			},
			expectedPayload: InitFTPayload{Symbol: "GLD", Name: "Gold"},
		},
		{
			name: "init missing symbol and name",
			candidate: TransactionCandidate{
				Type: TransactionTypeInitFT,
				Data: []byte(`{"symbol":"  "}`),
			},
			expectedReasons: []string{"Symbol is missing or empty.", "Name is missing or empty."},
		},
		{
			name: "init leaves symbol length and decimals sign to execution",
			candidate: TransactionCandidate{
				Type: TransactionTypeInitFT,
				Data: []byte(`{"symbol":"ABCDEFGHIJK","name":"` + strings.Repeat("n", 67) + `","decimals":-1}`),
			},
			expectedPayload: InitFTPayload{Symbol: "ABCDEFGHIJK", Name: strings.Repeat("n", 67), Decimals: -1},
		},
		{
			name: "init with negative value is accepted",
			candidate: TransactionCandidate{
				Type:  TransactionTypeInitFT,
				Value: -5,
				Data:  []byte(`{"symbol":"GLD","name":"Gold"}`),
			},
			expectedPayload: InitFTPayload{Symbol: "GLD", Name: "Gold"},
		},
		{
			name: "init with fractional decimals reads zero",
			candidate: TransactionCandidate{
				Type: TransactionTypeInitFT,
				Data: []byte(`{"symbol":"GLD","name":"Gold","decimals":1.5}`),
			},
			expectedPayload: InitFTPayload{Symbol: "GLD", Name: "Gold"},
		},
		{
			name: "init with string decimals reads zero",
			candidate: TransactionCandidate{
				Type: TransactionTypeInitFT,
				Data: []byte(`{"symbol":"GLD","name":"Gold","decimals":"18"}`),
			},
			expectedPayload: InitFTPayload{Symbol: "GLD", Name: "Gold"},
		},
		{
			name: "init with out of range decimals reads zero",
			candidate: TransactionCandidate{
				Type: TransactionTypeInitFT,
				Data: []byte(`{"symbol":"GLD","name":"Gold","decimals":4294967296}`),
			},
			expectedPayload: InitFTPayload{Symbol: "GLD", Name: "Gold"},
		},
		{
			name: "valid mint",
			candidate: TransactionCandidate{
				Type:        TransactionTypeMintFT,
				FromAddress: "alice",
				ToAddress:   "bob",
				Value:       100,
				Data:        []byte(`{"token_address":"0xabc"}`),
			},
			expectedPayload: MintFTPayload{TokenAddress: "0xabc"},
		},
		{
			name: "mint accumulates every violation",
			candidate: TransactionCandidate{
				Type: TransactionTypeMintFT,
				Data: []byte(`{}`),
			},
			expectedReasons: []string{
				"Token address is missing or empty.",
				"From address is missing or empty.",
				"To address is missing or empty.",
				"Value must be greater than zero.",
			},
		},
		{
			name: "valid burn without recipient",
			candidate: TransactionCandidate{
				Type:        TransactionTypeBurnFT,
				FromAddress: "alice",
				Value:       1,
				Data:        []byte(`{"token_address":"0xabc"}`),
			},
			expectedPayload: BurnFTPayload{TokenAddress: "0xabc"},
		},
		{
			name: "transfer with zero value",
			candidate: TransactionCandidate{
				Type:        TransactionTypeTransferFT,
				FromAddress: "alice",
				ToAddress:   "bob",
				Data:        []byte(`{"token_address":"0xabc"}`),
			},
			expectedReasons: []string{"Value must be greater than zero."},
		},
		{
			name: "payload is not an object",
			candidate: TransactionCandidate{
				Type:        TransactionTypeTransferFT,
				FromAddress: "alice",
				ToAddress:   "bob",
				Value:       1,
				Data:        []byte(`"0xabc"`),
			},
			expectedReasons: []string{"Invalid JSON data field."},
		},
		{
			name: "payload is missing",
			candidate: TransactionCandidate{
				Type: TransactionTypeInitFT,
			},
			expectedReasons: []string{"Invalid JSON data field."},
		},
		{
			name: "nft types are rejected",
			candidate: TransactionCandidate{
				Type: TransactionTypeInitNFT,
				Data: []byte(`{}`),
			},
			expectedReasons: []string{"InitNft is not supported."},
		},
		{
			name: "unknown type is rejected",
			candidate: TransactionCandidate{
				Type: TransactionTypeNone,
				Data: []byte(`{}`),
			},
			expectedReasons: []string{"TransactionType 'None' is not valid."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, err := ValidateTransaction(tt.candidate)
			if tt.expectedReasons == nil {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedPayload, payload)
				return
			}

			require.Error(t, err)
			assert.Nil(t, payload)
			assert.True(t, errors.Is(err, ErrValidation))

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.expectedReasons, verr.Reasons)
		})
	}
}

func TestValidateTransaction_MalformedField(t *testing.T) {
	_, err := ValidateTransaction(TransactionCandidate{
		Type:        TransactionTypeMintFT,
		FromAddress: "alice",
		ToAddress:   "bob",
		Value:       1,
		Data:        []byte(`{"token_address":42}`),
	})
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Reasons, 2)
	assert.True(t, strings.HasPrefix(verr.Reasons[0], "Payload is malformed: "))
	assert.Contains(t, verr.Reasons, "Token address is missing or empty.")
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Reasons: []string{"Symbol is missing or empty.", "Name is missing or empty."}}
	assert.Equal(t, "invalid transaction metadata: Symbol is missing or empty. Name is missing or empty.", err.Error())
}

func TestDecodePayload(t *testing.T) {
	payload, err := DecodePayload(TransactionTypeTransferFT, []byte(`{"token_address":"0xabc","extra":true}`))
	require.NoError(t, err)
	tokenPayload, ok := payload.(TokenPayload)
	require.True(t, ok)
	assert.Equal(t, "0xabc", tokenPayload.Token())
	assert.Equal(t, TransactionTypeTransferFT, payload.TransactionType())

	_, err = DecodePayload(TransactionTypeMintNFT, []byte(`{}`))
	assert.ErrorIs(t, err, ErrUnsupportedTransactionType)

	_, err = DecodePayload(TransactionTypeMintFT, []byte(`[1,2]`))
	assert.ErrorIs(t, err, ErrInvalidPayload)
}
