package domain

import (
	"errors"
	"fmt"
	"strings"
)

// TransactionCandidate is a transaction proposed by a caller, before it is persisted
type TransactionCandidate struct {
	Type        TransactionType
	FromAddress string
	ToAddress   string
	Value       int64
	Data        []byte
}

// ValidateTransaction checks a candidate's payload and addresses against the rules of its type.
// On success it returns the decoded payload. On failure it returns a *ValidationError listing
// every violated rule.
func ValidateTransaction(c TransactionCandidate) (Payload, error) {
	verr := &ValidationError{}

	if !IsJSONObject(c.Data) {
		verr.add("Invalid JSON data field.")
		return nil, verr
	}

	switch {
	case c.Type.IsNonFungible():
		verr.add(fmt.Sprintf("%s is not supported.", c.Type.DisplayName()))
		return nil, verr
	case !c.Type.IsFungible():
		verr.add("TransactionType 'None' is not valid.")
		return nil, verr
	}

	payload, err := DecodePayload(c.Type, c.Data)
	if err != nil {
		if payload == nil {
			verr.add(fmt.Sprintf("%s is not supported.", c.Type.DisplayName()))
			return nil, verr
		}
		verr.add(fmt.Sprintf("Payload is malformed: %s.", errors.Unwrap(err)))
	}

	switch p := payload.(type) {
	case InitFTPayload:
		validateInitFT(verr, p, c)
	case MintFTPayload:
		validateMintFT(verr, p, c)
	case BurnFTPayload:
		validateBurnFT(verr, p, c)
	case TransferFTPayload:
		validateTransferFT(verr, p, c)
	}

	if err := verr.errOrNil(); err != nil {
		return nil, err
	}
	return payload, nil
}

// Init only needs token metadata; supply and decimals are checked when the token is created
func validateInitFT(verr *ValidationError, p InitFTPayload, _ TransactionCandidate) {
	if isBlank(p.Symbol) {
		verr.add("Symbol is missing or empty.")
	}
	if isBlank(p.Name) {
		verr.add("Name is missing or empty.")
	}
}

func validateMintFT(verr *ValidationError, p MintFTPayload, c TransactionCandidate) {
	requireTokenAddress(verr, p.TokenAddress)
	requireFromAddress(verr, c.FromAddress)
	requireToAddress(verr, c.ToAddress)
	requirePositiveValue(verr, c.Value)
}

// Burn has no recipient
func validateBurnFT(verr *ValidationError, p BurnFTPayload, c TransactionCandidate) {
	requireTokenAddress(verr, p.TokenAddress)
	requireFromAddress(verr, c.FromAddress)
	requirePositiveValue(verr, c.Value)
}

func validateTransferFT(verr *ValidationError, p TransferFTPayload, c TransactionCandidate) {
	requireTokenAddress(verr, p.TokenAddress)
	requireFromAddress(verr, c.FromAddress)
	requireToAddress(verr, c.ToAddress)
	requirePositiveValue(verr, c.Value)
}

func requireTokenAddress(verr *ValidationError, address string) {
	if isBlank(address) {
		verr.add("Token address is missing or empty.")
	}
}

func requireFromAddress(verr *ValidationError, address string) {
	if isBlank(address) {
		verr.add("From address is missing or empty.")
	}
}

func requireToAddress(verr *ValidationError, address string) {
	if isBlank(address) {
		verr.add("To address is missing or empty.")
	}
}

func requirePositiveValue(verr *ValidationError, value int64) {
	if value <= 0 {
		verr.add("Value must be greater than zero.")
	}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
