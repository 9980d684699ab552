package dto

import (
	"encoding/json"
	"strings"

	apierrors "github.com/feral-file/ff-ledger/internal/api/shared/errors"
)

// CreateTransactionRequest represents the request body for submitting a transaction
type CreateTransactionRequest struct {
	FromAddress     string          `json:"from_address"`
	ToAddress       string          `json:"to_address"`
	TransactionType string          `json:"transaction_type"`
	Value           int64           `json:"value"`
	Data            json.RawMessage `json:"data"`
}

// CreateBlockRequest represents the request body for mining a block
type CreateBlockRequest struct {
	MinerAddress string `json:"miner_address"`
}

// Validate validates the request body
func (r *CreateBlockRequest) Validate() error {
	if strings.TrimSpace(r.MinerAddress) == "" {
		return apierrors.NewValidationError("miner_address is required")
	}
	return nil
}

// UpdateMaintenanceRequest represents the request body for toggling maintenance mode
type UpdateMaintenanceRequest struct {
	Maintenance *bool `json:"maintenance"`
}

// Validate validates the request body
func (r *UpdateMaintenanceRequest) Validate() error {
	if r.Maintenance == nil {
		return apierrors.NewValidationError("maintenance is required")
	}
	return nil
}
