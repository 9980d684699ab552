package executor

import (
	"context"

	"github.com/feral-file/ff-ledger/internal/api/shared/constants"
	"github.com/feral-file/ff-ledger/internal/api/shared/dto"
	apierrors "github.com/feral-file/ff-ledger/internal/api/shared/errors"
	"github.com/feral-file/ff-ledger/internal/domain"
	"github.com/feral-file/ff-ledger/internal/ledger"
	"github.com/feral-file/ff-ledger/internal/store"
)

// Executor is the interface for the API executor
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// CreateTransaction validates and stores a submitted transaction
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*dto.TransactionResponse, error)
	// GetTransaction retrieves a transaction by its hash
	GetTransaction(ctx context.Context, hash string) (*dto.TransactionResponse, error)
	// GetTransactions retrieves transactions with optional filters
	GetTransactions(ctx context.Context, isMined *bool, status *domain.TransactionStatus, fromAddress, toAddress string, limit *int, offset *uint64) (*dto.TransactionListResponse, error)
	// DeleteTransaction deletes a transaction by its id
	DeleteTransaction(ctx context.Context, id int64) error

	// CreateBlock mines a block
	CreateBlock(ctx context.Context, minerAddress string) (*dto.BlockResponse, error)
	// GetBlock retrieves a block by its number
	GetBlock(ctx context.Context, blockNumber int64) (*dto.BlockResponse, error)
	// GetBlocks retrieves blocks newest first
	GetBlocks(ctx context.Context, minerAddress string, limit *int, offset *uint64) (*dto.BlockListResponse, error)
	// DeleteBlock deletes a block by its number
	DeleteBlock(ctx context.Context, blockNumber int64) error

	// GetWallet retrieves the wallet of an address for a token
	GetWallet(ctx context.Context, address, tokenAddress string) (*dto.WalletResponse, error)
	// GetWallets retrieves wallets with optional filters
	GetWallets(ctx context.Context, address, tokenAddress string, limit *int, offset *uint64) (*dto.WalletListResponse, error)

	// GetFungibleToken retrieves a fungible token by its address
	GetFungibleToken(ctx context.Context, address string) (*dto.FungibleTokenResponse, error)
	// GetFungibleTokens retrieves fungible tokens with optional filters
	GetFungibleTokens(ctx context.Context, ownerAddress string, limit *int, offset *uint64) (*dto.FungibleTokenListResponse, error)

	// GetMaintenance retrieves the maintenance status
	GetMaintenance(ctx context.Context) (*dto.MaintenanceResponse, error)
	// SetMaintenance turns maintenance mode on or off
	SetMaintenance(ctx context.Context, maintenance bool) (*dto.MaintenanceResponse, error)
}

type executor struct {
	transactions ledger.TransactionService
	blocks       ledger.BlockService
	wallets      ledger.WalletLedger
	tokens       ledger.TokenRegistry
	maintenance  ledger.MaintenanceService
}

func NewExecutor(
	transactions ledger.TransactionService,
	blocks ledger.BlockService,
	wallets ledger.WalletLedger,
	tokens ledger.TokenRegistry,
	maintenance ledger.MaintenanceService,
) Executor {
	return &executor{
		transactions: transactions,
		blocks:       blocks,
		wallets:      wallets,
		tokens:       tokens,
		maintenance:  maintenance,
	}
}

// page applies defaults to pagination parameters
func page(limit *int, offset *uint64) (int, uint64) {
	l := constants.DEFAULT_PAGE_SIZE
	if limit != nil && *limit > 0 {
		l = min(*limit, constants.MAX_PAGE_SIZE)
	}
	o := constants.DEFAULT_OFFSET
	if offset != nil {
		o = *offset
	}
	return l, o
}

func (e *executor) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	txn, err := e.transactions.Create(ctx, ledger.CreateTransactionInput{
		FromAddress:     req.FromAddress,
		ToAddress:       req.ToAddress,
		TransactionType: req.TransactionType,
		Value:           req.Value,
		Data:            req.Data,
	})
	if err != nil {
		return nil, apierrors.FromDomainError(err, "Failed to create transaction")
	}
	return dto.MapTransactionToDTO(txn), nil
}

func (e *executor) GetTransaction(ctx context.Context, hash string) (*dto.TransactionResponse, error) {
	txn, err := e.transactions.Get(ctx, hash)
	if err != nil {
		return nil, apierrors.FromDomainError(err, "Failed to get transaction")
	}
	return dto.MapTransactionToDTO(txn), nil
}

func (e *executor) GetTransactions(ctx context.Context, isMined *bool, status *domain.TransactionStatus, fromAddress, toAddress string, limit *int, offset *uint64) (*dto.TransactionListResponse, error) {
	l, o := page(limit, offset)
	txns, total, err := e.transactions.List(ctx, store.TransactionQueryFilter{
		IsMined:     isMined,
		Status:      status,
		FromAddress: fromAddress,
		ToAddress:   toAddress,
		Limit:       l,
		Offset:      o,
	})
	if err != nil {
		return nil, apierrors.FromDomainError(err, "Failed to list transactions")
	}

	items := make([]dto.TransactionResponse, len(txns))
	for i := range txns {
		items[i] = *dto.MapTransactionToDTO(&txns[i])
	}
	return &dto.TransactionListResponse{
		Transactions: items,
		Offset:       dto.NextOffset(o, len(items), total),
		Total:        total,
	}, nil
}

func (e *executor) DeleteTransaction(ctx context.Context, id int64) error {
	if err := e.transactions.Delete(ctx, id); err != nil {
		return apierrors.FromDomainError(err, "Failed to delete transaction")
	}
	return nil
}

func (e *executor) CreateBlock(ctx context.Context, minerAddress string) (*dto.BlockResponse, error) {
	block, err := e.blocks.Create(ctx, minerAddress)
	if err != nil {
		return nil, apierrors.FromDomainError(err, "Failed to mine block")
	}
	return dto.MapBlockToDTO(block), nil
}

func (e *executor) GetBlock(ctx context.Context, blockNumber int64) (*dto.BlockResponse, error) {
	block, err := e.blocks.Get(ctx, blockNumber)
	if err != nil {
		return nil, apierrors.FromDomainError(err, "Failed to get block")
	}
	return dto.MapBlockToDTO(block), nil
}

func (e *executor) GetBlocks(ctx context.Context, minerAddress string, limit *int, offset *uint64) (*dto.BlockListResponse, error) {
	l, o := page(limit, offset)
	blocks, total, err := e.blocks.List(ctx, store.BlockQueryFilter{
		MinerAddress: minerAddress,
		Limit:        l,
		Offset:       o,
	})
	if err != nil {
		return nil, apierrors.FromDomainError(err, "Failed to list blocks")
	}

	items := make([]dto.BlockResponse, len(blocks))
	for i := range blocks {
		items[i] = *dto.MapBlockToDTO(&blocks[i])
	}
	return &dto.BlockListResponse{
		Blocks: items,
		Offset: dto.NextOffset(o, len(items), total),
		Total:  total,
	}, nil
}

func (e *executor) DeleteBlock(ctx context.Context, blockNumber int64) error {
	if err := e.blocks.Delete(ctx, blockNumber); err != nil {
		return apierrors.FromDomainError(err, "Failed to delete block")
	}
	return nil
}

func (e *executor) GetWallet(ctx context.Context, address, tokenAddress string) (*dto.WalletResponse, error) {
	wallet, err := e.wallets.Get(ctx, address, tokenAddress)
	if err != nil {
		return nil, apierrors.FromDomainError(err, "Failed to get wallet")
	}
	return dto.MapWalletToDTO(wallet), nil
}

func (e *executor) GetWallets(ctx context.Context, address, tokenAddress string, limit *int, offset *uint64) (*dto.WalletListResponse, error) {
	l, o := page(limit, offset)
	wallets, total, err := e.wallets.List(ctx, store.WalletQueryFilter{
		Address:      address,
		TokenAddress: tokenAddress,
		Limit:        l,
		Offset:       o,
	})
	if err != nil {
		return nil, apierrors.FromDomainError(err, "Failed to list wallets")
	}

	items := make([]dto.WalletResponse, len(wallets))
	for i := range wallets {
		items[i] = *dto.MapWalletToDTO(&wallets[i])
	}
	return &dto.WalletListResponse{
		Wallets: items,
		Offset:  dto.NextOffset(o, len(items), total),
		Total:   total,
	}, nil
}

func (e *executor) GetFungibleToken(ctx context.Context, address string) (*dto.FungibleTokenResponse, error) {
	token, err := e.tokens.Get(ctx, address)
	if err != nil {
		return nil, apierrors.FromDomainError(err, "Failed to get fungible token")
	}
	return dto.MapFungibleTokenToDTO(token), nil
}

func (e *executor) GetFungibleTokens(ctx context.Context, ownerAddress string, limit *int, offset *uint64) (*dto.FungibleTokenListResponse, error) {
	l, o := page(limit, offset)
	tokens, total, err := e.tokens.List(ctx, store.FungibleTokenQueryFilter{
		OwnerAddress: ownerAddress,
		Limit:        l,
		Offset:       o,
	})
	if err != nil {
		return nil, apierrors.FromDomainError(err, "Failed to list fungible tokens")
	}

	items := make([]dto.FungibleTokenResponse, len(tokens))
	for i := range tokens {
		items[i] = *dto.MapFungibleTokenToDTO(&tokens[i])
	}
	return &dto.FungibleTokenListResponse{
		FungibleTokens: items,
		Offset:         dto.NextOffset(o, len(items), total),
		Total:          total,
	}, nil
}

func (e *executor) GetMaintenance(ctx context.Context) (*dto.MaintenanceResponse, error) {
	sc, err := e.maintenance.Get(ctx)
	if err != nil {
		return nil, apierrors.FromDomainError(err, "Failed to get maintenance status")
	}
	return dto.MapServiceContextToDTO(sc), nil
}

func (e *executor) SetMaintenance(ctx context.Context, maintenance bool) (*dto.MaintenanceResponse, error) {
	sc, err := e.maintenance.Update(ctx, maintenance)
	if err != nil {
		return nil, apierrors.FromDomainError(err, "Failed to update maintenance status")
	}
	return dto.MapServiceContextToDTO(sc), nil
}
