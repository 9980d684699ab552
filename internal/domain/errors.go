package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is the base error for lookups of a missing entity
	ErrNotFound = errors.New("not found")

	// ErrTransactionNotFound is returned when a transaction is not found
	ErrTransactionNotFound = fmt.Errorf("transaction %w", ErrNotFound)

	// ErrBlockNotFound is returned when a block is not found
	ErrBlockNotFound = fmt.Errorf("block %w", ErrNotFound)

	// ErrTokenNotFound is returned when a fungible token is not found
	ErrTokenNotFound = fmt.Errorf("token %w", ErrNotFound)

	// ErrWalletNotFound is returned when no wallet exists for an (owner, token) pair
	ErrWalletNotFound = fmt.Errorf("wallet %w", ErrNotFound)

	// ErrUnauthorized is the base error for operations the requester is not allowed to perform
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotTokenOwner is returned when someone other than the token owner tries to mint
	ErrNotTokenOwner = fmt.Errorf("%w: only owner can mint token", ErrUnauthorized)

	// ErrInsufficientBalance is returned when a wallet cannot cover a debit
	ErrInsufficientBalance = errors.New("insufficient balance in sender's wallet")

	// ErrInsufficientSupply is returned when a burn exceeds the token's total supply
	ErrInsufficientSupply = errors.New("insufficient token supply to burn")

	// ErrInvalidAmount is returned when a balance or supply change is negative or would overflow
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidTokenMetadata is returned when a new token's symbol, name or decimals cannot be stored
	ErrInvalidTokenMetadata = errors.New("invalid token metadata")

	// ErrUnsupportedTransactionType is returned when executing an NFT or unknown transaction type
	ErrUnsupportedTransactionType = errors.New("unsupported transaction type")

	// ErrTransactionAlreadyMined is returned when a mined transaction would be executed or updated again
	ErrTransactionAlreadyMined = errors.New("transaction already mined")

	// ErrConflict is returned when a write collides with a unique constraint
	ErrConflict = errors.New("conflict")

	// ErrValidation is the base error wrapped by ValidationError
	ErrValidation = errors.New("validation failed")
)

// ValidationError collects every rule a candidate transaction violates
type ValidationError struct {
	Reasons []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid transaction metadata: %s", strings.Join(e.Reasons, " "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// add records a violated rule
func (e *ValidationError) add(reason string) {
	e.Reasons = append(e.Reasons, reason)
}

// errOrNil returns the error when at least one rule was violated
func (e *ValidationError) errOrNil() error {
	if len(e.Reasons) == 0 {
		return nil
	}
	return e
}
