package store

import (
	"context"

	"github.com/feral-file/ff-ledger/internal/domain"
	"github.com/feral-file/ff-ledger/internal/store/schema"
)

//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore,Transactor=MockTransactor,BlockStore=MockBlockStore,TransactionStore=MockTransactionStore,FungibleTokenStore=MockFungibleTokenStore,WalletStore=MockWalletStore,ServiceContextStore=MockServiceContextStore

// Transactor runs a function inside one atomic database unit.
// The context passed to fn carries the unit; store calls made with it join the unit.
// Calling WithinTransaction with a context that already carries a unit opens a savepoint.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// BlockStore persists blocks
type BlockStore interface {
	// CreateBlock inserts a block and fills in its assigned number
	CreateBlock(ctx context.Context, block *schema.Block) error
	// GetBlockByNumber retrieves a block by its number
	GetBlockByNumber(ctx context.Context, blockNumber int64) (*schema.Block, error)
	// GetLatestBlock retrieves the block with the highest number
	GetLatestBlock(ctx context.Context) (*schema.Block, error)
	// ListBlocks retrieves blocks newest first
	ListBlocks(ctx context.Context, filter BlockQueryFilter) ([]schema.Block, uint64, error)
	// DeleteBlock deletes a block and reports whether it existed
	DeleteBlock(ctx context.Context, blockNumber int64) (bool, error)
}

// TransactionStore persists transactions
type TransactionStore interface {
	// CreateTransaction inserts a transaction and fills in its assigned id
	CreateTransaction(ctx context.Context, txn *schema.Transaction) error
	// GetTransactionByHash retrieves a transaction by its hash
	GetTransactionByHash(ctx context.Context, hash string) (*schema.Transaction, error)
	// GetTransactionByID retrieves a transaction by its id
	GetTransactionByID(ctx context.Context, id int64) (*schema.Transaction, error)
	// ListTransactions retrieves transactions newest first
	ListTransactions(ctx context.Context, filter TransactionQueryFilter) ([]schema.Transaction, uint64, error)
	// ListPendingTransactionsForUpdate locks and returns up to limit unmined transactions, oldest first.
	// Rows locked by another unit are skipped.
	ListPendingTransactionsForUpdate(ctx context.Context, limit int) ([]schema.Transaction, error)
	// UpdateTransaction applies a partial update to an unmined transaction
	UpdateTransaction(ctx context.Context, id int64, input UpdateTransactionInput) (*schema.Transaction, error)
	// DeleteTransaction deletes a transaction and reports whether it existed
	DeleteTransaction(ctx context.Context, id int64) (bool, error)
}

// FungibleTokenStore persists fungible tokens
type FungibleTokenStore interface {
	// CreateFungibleToken inserts a token
	CreateFungibleToken(ctx context.Context, token *schema.FungibleToken) error
	// GetFungibleToken retrieves a token by its address
	GetFungibleToken(ctx context.Context, address string) (*schema.FungibleToken, error)
	// GetFungibleTokenForUpdate retrieves a token by its address and locks its row
	GetFungibleTokenForUpdate(ctx context.Context, address string) (*schema.FungibleToken, error)
	// UpdateFungibleTokenSupply sets the total supply and stamps the change
	UpdateFungibleTokenSupply(ctx context.Context, input UpdateFungibleTokenSupplyInput) error
	// ListFungibleTokens retrieves tokens
	ListFungibleTokens(ctx context.Context, filter FungibleTokenQueryFilter) ([]schema.FungibleToken, uint64, error)
}

// WalletStore persists wallets
type WalletStore interface {
	// GetWallet retrieves the wallet of an (owner, token) pair
	GetWallet(ctx context.Context, address, tokenAddress string) (*schema.Wallet, error)
	// GetWalletForUpdate retrieves the wallet of an (owner, token) pair and locks its row
	GetWalletForUpdate(ctx context.Context, address, tokenAddress string) (*schema.Wallet, error)
	// UpsertWallet inserts a wallet or overwrites the balance and stamp of the existing one
	UpsertWallet(ctx context.Context, wallet *schema.Wallet) error
	// ListWallets retrieves wallets
	ListWallets(ctx context.Context, filter WalletQueryFilter) ([]schema.Wallet, uint64, error)
}

// ServiceContextStore persists the global service switches
type ServiceContextStore interface {
	// GetServiceContext retrieves the service context, creating it when absent
	GetServiceContext(ctx context.Context) (*schema.ServiceContext, error)
	// SetMaintenance sets the maintenance flag
	SetMaintenance(ctx context.Context, maintenance bool) (*schema.ServiceContext, error)
}

// Store defines the interface for database operations
type Store interface {
	Transactor
	BlockStore
	TransactionStore
	FungibleTokenStore
	WalletStore
	ServiceContextStore
}

// BlockQueryFilter holds the filters for listing blocks
type BlockQueryFilter struct {
	MinerAddress string
	Limit        int
	Offset       uint64
}

// TransactionQueryFilter holds the filters for listing transactions.
// Nil and empty fields are not applied.
type TransactionQueryFilter struct {
	IsMined     *bool
	Status      *domain.TransactionStatus
	FromAddress string
	ToAddress   string
	BlockNumber *int64
	Limit       int
	Offset      uint64
}

// FungibleTokenQueryFilter holds the filters for listing fungible tokens
type FungibleTokenQueryFilter struct {
	OwnerAddress string
	Limit        int
	Offset       uint64
}

// WalletQueryFilter holds the filters for listing wallets
type WalletQueryFilter struct {
	Address      string
	TokenAddress string
	Limit        int
	Offset       uint64
}

// UpdateTransactionInput holds the fields of a partial transaction update.
// Nil fields are left unchanged.
type UpdateTransactionInput struct {
	BlockNumber   *int64
	IsMined       *bool
	Status        *domain.TransactionStatus
	FailureReason *string
}

// UpdateFungibleTokenSupplyInput holds a new total supply and the change that produced it
type UpdateFungibleTokenSupplyInput struct {
	Address         string
	TotalSupply     int64
	BlockNumber     int64
	TransactionHash string
}
