package ledger

import (
	"fmt"
	"math"

	"github.com/feral-file/ff-ledger/internal/domain"
)

// Stamp identifies the mined transaction that produced a state change
type Stamp struct {
	BlockNumber     int64
	TransactionHash string
}

// addAmount adds a non-negative amount to a non-negative total without overflowing
func addAmount(total, amount int64) (int64, error) {
	if amount < 0 {
		return 0, fmt.Errorf("%w: %d is negative", domain.ErrInvalidAmount, amount)
	}
	if total > math.MaxInt64-amount {
		return 0, fmt.Errorf("%w: %d + %d overflows", domain.ErrInvalidAmount, total, amount)
	}
	return total + amount, nil
}
