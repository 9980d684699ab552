package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

// ErrInvalidPayload is returned when a transaction payload is missing or is not a JSON object
var ErrInvalidPayload = errors.New("invalid JSON data field")

// Payload is the type-specific part of a transaction.
// Each supported TransactionType has exactly one payload variant.
type Payload interface {
	TransactionType() TransactionType
}

// TokenPayload is implemented by payloads that reference an existing token
type TokenPayload interface {
	Payload
	Token() string
}

// InitFTPayload carries the metadata of a new fungible token
type InitFTPayload struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Decimals int32  `json:"decimals"`
}

func (InitFTPayload) TransactionType() TransactionType { return TransactionTypeInitFT }

// UnmarshalJSON reads decimals leniently: anything that is not an integer in int32 range counts as 0
func (p *InitFTPayload) UnmarshalJSON(data []byte) error {
	var raw struct {
		Symbol   string          `json:"symbol"`
		Name     string          `json:"name"`
		Decimals json.RawMessage `json:"decimals"`
	}
	err := json.Unmarshal(data, &raw)

	p.Symbol = raw.Symbol
	p.Name = raw.Name
	p.Decimals = 0

	var decimals int64
	if len(raw.Decimals) > 0 && json.Unmarshal(raw.Decimals, &decimals) == nil &&
		decimals >= math.MinInt32 && decimals <= math.MaxInt32 {
		p.Decimals = int32(decimals)
	}
	return err
}

// MintFTPayload names the token whose supply is increased
type MintFTPayload struct {
	TokenAddress string `json:"token_address"`
}

func (MintFTPayload) TransactionType() TransactionType { return TransactionTypeMintFT }
func (p MintFTPayload) Token() string                  { return p.TokenAddress }

// BurnFTPayload names the token whose supply is decreased
type BurnFTPayload struct {
	TokenAddress string `json:"token_address"`
}

func (BurnFTPayload) TransactionType() TransactionType { return TransactionTypeBurnFT }
func (p BurnFTPayload) Token() string                  { return p.TokenAddress }

// TransferFTPayload names the token being moved between wallets
type TransferFTPayload struct {
	TokenAddress string `json:"token_address"`
}

func (TransferFTPayload) TransactionType() TransactionType { return TransactionTypeTransferFT }
func (p TransferFTPayload) Token() string                  { return p.TokenAddress }

// IsJSONObject reports whether data holds a single JSON object
func IsJSONObject(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return false
	}
	return json.Valid(trimmed)
}

// DecodePayload decodes raw payload JSON into the variant matching txType.
// A field of the wrong JSON type yields the partially decoded payload together with the decoding error.
func DecodePayload(txType TransactionType, data []byte) (Payload, error) {
	if !IsJSONObject(data) {
		return nil, ErrInvalidPayload
	}

	var payload Payload
	var err error
	switch txType {
	case TransactionTypeInitFT:
		var p InitFTPayload
		err = json.Unmarshal(data, &p)
		payload = p
	case TransactionTypeMintFT:
		var p MintFTPayload
		err = json.Unmarshal(data, &p)
		payload = p
	case TransactionTypeBurnFT:
		var p BurnFTPayload
		err = json.Unmarshal(data, &p)
		payload = p
	case TransactionTypeTransferFT:
		var p TransferFTPayload
		err = json.Unmarshal(data, &p)
		payload = p
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedTransactionType, txType.DisplayName())
	}

	if err != nil {
		return payload, fmt.Errorf("failed to decode %s payload: %w", txType.DisplayName(), err)
	}
	return payload, nil
}
