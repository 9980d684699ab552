package domain

import (
	"fmt"
	"strings"
)

// TransactionType represents the operation a transaction asks the ledger to perform
type TransactionType string

const (
	TransactionTypeInitFT      TransactionType = "INIT_FT"
	TransactionTypeMintFT      TransactionType = "MINT_FT"
	TransactionTypeBurnFT      TransactionType = "BURN_FT"
	TransactionTypeTransferFT  TransactionType = "TRANSFER_FT"
	TransactionTypeInitNFT     TransactionType = "INIT_NFT"
	TransactionTypeMintNFT     TransactionType = "MINT_NFT"
	TransactionTypeBurnNFT     TransactionType = "BURN_NFT"
	TransactionTypeTransferNFT TransactionType = "TRANSFER_NFT"
	// TransactionTypeNone is stored for any unrecognized type tag
	TransactionTypeNone TransactionType = ""
)

// ParseTransactionType maps a wire type tag to a TransactionType.
// Unknown tags map to TransactionTypeNone.
func ParseTransactionType(s string) TransactionType {
	switch t := TransactionType(strings.TrimSpace(s)); t {
	case TransactionTypeInitFT,
		TransactionTypeMintFT,
		TransactionTypeBurnFT,
		TransactionTypeTransferFT,
		TransactionTypeInitNFT,
		TransactionTypeMintNFT,
		TransactionTypeBurnNFT,
		TransactionTypeTransferNFT:
		return t
	default:
		return TransactionTypeNone
	}
}

// IsFungible reports whether the type is one of the four supported token operations
func (t TransactionType) IsFungible() bool {
	switch t {
	case TransactionTypeInitFT, TransactionTypeMintFT, TransactionTypeBurnFT, TransactionTypeTransferFT:
		return true
	default:
		return false
	}
}

// IsNonFungible reports whether the type is one of the reserved NFT variants
func (t TransactionType) IsNonFungible() bool {
	switch t {
	case TransactionTypeInitNFT, TransactionTypeMintNFT, TransactionTypeBurnNFT, TransactionTypeTransferNFT:
		return true
	default:
		return false
	}
}

// DisplayName returns the CamelCase name used in user-facing messages (e.g. "InitNft")
func (t TransactionType) DisplayName() string {
	if t == TransactionTypeNone {
		return "None"
	}

	var b strings.Builder
	for _, part := range strings.Split(strings.ToLower(string(t)), "_") {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}

// TransactionStatus represents the lifecycle state of a transaction
type TransactionStatus string

const (
	TransactionStatusRaw     TransactionStatus = "RAW"
	TransactionStatusSuccess TransactionStatus = "SUCCESS"
	TransactionStatusFail    TransactionStatus = "FAIL"
)

// ParseTransactionStatus parses a status string
func ParseTransactionStatus(s string) (TransactionStatus, error) {
	switch status := TransactionStatus(strings.ToUpper(strings.TrimSpace(s))); status {
	case TransactionStatusRaw, TransactionStatusSuccess, TransactionStatusFail:
		return status, nil
	default:
		return "", fmt.Errorf("invalid transaction status: %s", s)
	}
}

// IsTerminal reports whether the status can no longer change
func (s TransactionStatus) IsTerminal() bool {
	return s == TransactionStatusSuccess || s == TransactionStatusFail
}
