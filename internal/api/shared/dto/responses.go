package dto

import (
	"encoding/json"
	"time"

	"github.com/feral-file/ff-ledger/internal/domain"
	"github.com/feral-file/ff-ledger/internal/store/schema"
)

// TransactionResponse represents a transaction
type TransactionResponse struct {
	ID              int64           `json:"id"`
	BlockNumber     *int64          `json:"block_number"`
	TransactionHash string          `json:"transaction_hash"`
	FromAddress     string          `json:"from_address"`
	ToAddress       string          `json:"to_address"`
	TransactionType string          `json:"transaction_type"`
	Value           int64           `json:"value"`
	Data            json.RawMessage `json:"data"`
	Timestamp       time.Time       `json:"timestamp"`
	IsMined         bool            `json:"is_mined"`
	Status          string          `json:"status"`
	FailureReason   *string         `json:"failure_reason,omitempty"`
}

// TransactionListResponse represents a paginated list of transactions
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"items"`
	Offset       *uint64               `json:"offset,omitempty"`
	Total        uint64                `json:"total"`
}

// BlockResponse represents a block
type BlockResponse struct {
	BlockNumber      int64     `json:"block_number"`
	BlockHash        string    `json:"block_hash"`
	ParentHash       string    `json:"parent_hash"`
	MinerAddress     string    `json:"miner_address"`
	Timestamp        time.Time `json:"timestamp"`
	TransactionCount int       `json:"transaction_count"`
}

// BlockListResponse represents a paginated list of blocks
type BlockListResponse struct {
	Blocks []BlockResponse `json:"items"`
	Offset *uint64         `json:"offset,omitempty"`
	Total  uint64          `json:"total"`
}

// WalletResponse represents the balance of one token held by one address
type WalletResponse struct {
	Address         string `json:"address"`
	TokenAddress    string `json:"token_address"`
	Balance         int64  `json:"balance"`
	BlockNumber     int64  `json:"block_number"`
	TransactionHash string `json:"transaction_hash"`
}

// WalletListResponse represents a paginated list of wallets
type WalletListResponse struct {
	Wallets []WalletResponse `json:"items"`
	Offset  *uint64          `json:"offset,omitempty"`
	Total   uint64           `json:"total"`
}

// FungibleTokenResponse represents a fungible token
type FungibleTokenResponse struct {
	Address         string `json:"address"`
	Symbol          string `json:"symbol"`
	Name            string `json:"name"`
	OwnerAddress    string `json:"owner_address"`
	Decimals        int32  `json:"decimals"`
	TotalSupply     int64  `json:"total_supply"`
	BlockNumber     int64  `json:"block_number"`
	TransactionHash string `json:"transaction_hash"`
}

// FungibleTokenListResponse represents a paginated list of fungible tokens
type FungibleTokenListResponse struct {
	FungibleTokens []FungibleTokenResponse `json:"items"`
	Offset         *uint64                 `json:"offset,omitempty"`
	Total          uint64                  `json:"total"`
}

// MaintenanceResponse represents the maintenance status of the service
type MaintenanceResponse struct {
	Maintenance bool      `json:"maintenance"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NextOffset returns the offset of the following page, or nil on the last page
func NextOffset(offset uint64, count int, total uint64) *uint64 {
	next := offset + uint64(count)
	if count == 0 || next >= total {
		return nil
	}
	return &next
}

// MapTransactionToDTO maps a schema.Transaction to TransactionResponse
func MapTransactionToDTO(txn *schema.Transaction) *TransactionResponse {
	if txn == nil {
		return nil
	}

	txType := string(txn.TransactionType)
	if txn.TransactionType == domain.TransactionTypeNone {
		txType = "NONE"
	}

	return &TransactionResponse{
		ID:              txn.ID,
		BlockNumber:     txn.BlockNumber,
		TransactionHash: txn.TransactionHash,
		FromAddress:     txn.FromAddress,
		ToAddress:       txn.ToAddress,
		TransactionType: txType,
		Value:           txn.Value,
		Data:            json.RawMessage(txn.Data),
		Timestamp:       txn.Timestamp,
		IsMined:         txn.IsMined,
		Status:          string(txn.Status),
		FailureReason:   txn.FailureReason,
	}
}

// MapBlockToDTO maps a schema.Block to BlockResponse
func MapBlockToDTO(block *schema.Block) *BlockResponse {
	if block == nil {
		return nil
	}

	return &BlockResponse{
		BlockNumber:      block.BlockNumber,
		BlockHash:        block.BlockHash,
		ParentHash:       block.ParentHash,
		MinerAddress:     block.MinerAddress,
		Timestamp:        block.Timestamp,
		TransactionCount: block.TransactionCount,
	}
}

// MapWalletToDTO maps a schema.Wallet to WalletResponse
func MapWalletToDTO(wallet *schema.Wallet) *WalletResponse {
	if wallet == nil {
		return nil
	}

	return &WalletResponse{
		Address:         wallet.Address,
		TokenAddress:    wallet.TokenAddress,
		Balance:         wallet.Balance,
		BlockNumber:     wallet.BlockNumber,
		TransactionHash: wallet.TransactionHash,
	}
}

// MapFungibleTokenToDTO maps a schema.FungibleToken to FungibleTokenResponse
func MapFungibleTokenToDTO(token *schema.FungibleToken) *FungibleTokenResponse {
	if token == nil {
		return nil
	}

	return &FungibleTokenResponse{
		Address:         token.Address,
		Symbol:          token.Symbol,
		Name:            token.Name,
		OwnerAddress:    token.OwnerAddress,
		Decimals:        token.Decimals,
		TotalSupply:     token.TotalSupply,
		BlockNumber:     token.BlockNumber,
		TransactionHash: token.TransactionHash,
	}
}

// MapServiceContextToDTO maps a schema.ServiceContext to MaintenanceResponse
func MapServiceContextToDTO(sc *schema.ServiceContext) *MaintenanceResponse {
	if sc == nil {
		return nil
	}

	return &MaintenanceResponse{
		Maintenance: sc.Maintenance,
		UpdatedAt:   sc.UpdatedAt,
	}
}
