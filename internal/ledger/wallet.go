package ledger

import (
	"context"
	"fmt"

	"github.com/feral-file/ff-ledger/internal/domain"
	"github.com/feral-file/ff-ledger/internal/store"
	"github.com/feral-file/ff-ledger/internal/store/schema"
)

// WalletLedger keeps the balance of every (owner, token) pair
//
//go:generate mockgen -source=wallet.go -destination=../mocks/wallet_ledger.go -package=mocks -mock_names=WalletLedger=MockWalletLedger
type WalletLedger interface {
	// Get returns the wallet of an owner for a token
	Get(ctx context.Context, owner, tokenAddress string) (*schema.Wallet, error)
	// GetForUpdate returns the wallet of an owner for a token and locks it until the enclosing unit ends
	GetForUpdate(ctx context.Context, owner, tokenAddress string) (*schema.Wallet, error)
	// Upsert writes a wallet as given
	Upsert(ctx context.Context, wallet *schema.Wallet) error
	// Credit adds amount to a wallet, creating it when absent
	Credit(ctx context.Context, owner, tokenAddress string, amount int64, stamp Stamp) (*schema.Wallet, error)
	// Debit removes amount from an existing wallet
	Debit(ctx context.Context, owner, tokenAddress string, amount int64, stamp Stamp) (*schema.Wallet, error)
	// List returns wallets matching the filter and the total number of matches
	List(ctx context.Context, filter store.WalletQueryFilter) ([]schema.Wallet, uint64, error)
}

type walletLedger struct {
	store store.WalletStore
}

// NewWalletLedger creates a new wallet ledger
func NewWalletLedger(st store.WalletStore) WalletLedger {
	return &walletLedger{store: st}
}

func (l *walletLedger) Get(ctx context.Context, owner, tokenAddress string) (*schema.Wallet, error) {
	wallet, err := l.store.GetWallet(ctx, owner, tokenAddress)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		return nil, domain.ErrWalletNotFound
	}
	return wallet, nil
}

func (l *walletLedger) GetForUpdate(ctx context.Context, owner, tokenAddress string) (*schema.Wallet, error) {
	wallet, err := l.store.GetWalletForUpdate(ctx, owner, tokenAddress)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		return nil, domain.ErrWalletNotFound
	}
	return wallet, nil
}

func (l *walletLedger) Upsert(ctx context.Context, wallet *schema.Wallet) error {
	if wallet.Balance < 0 {
		return fmt.Errorf("%w: balance %d is negative", domain.ErrInvalidAmount, wallet.Balance)
	}
	return l.store.UpsertWallet(ctx, wallet)
}

func (l *walletLedger) Credit(ctx context.Context, owner, tokenAddress string, amount int64, stamp Stamp) (*schema.Wallet, error) {
	wallet, err := l.store.GetWalletForUpdate(ctx, owner, tokenAddress)
	if err != nil {
		return nil, err
	}

	var balance int64
	if wallet != nil {
		balance = wallet.Balance
	}
	balance, err = addAmount(balance, amount)
	if err != nil {
		return nil, err
	}

	updated := &schema.Wallet{
		Address:         owner,
		TokenAddress:    tokenAddress,
		Balance:         balance,
		BlockNumber:     stamp.BlockNumber,
		TransactionHash: stamp.TransactionHash,
	}
	if err := l.store.UpsertWallet(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (l *walletLedger) Debit(ctx context.Context, owner, tokenAddress string, amount int64, stamp Stamp) (*schema.Wallet, error) {
	if amount < 0 {
		return nil, fmt.Errorf("%w: %d is negative", domain.ErrInvalidAmount, amount)
	}

	wallet, err := l.GetForUpdate(ctx, owner, tokenAddress)
	if err != nil {
		return nil, err
	}
	if wallet.Balance < amount {
		return nil, domain.ErrInsufficientBalance
	}

	updated := &schema.Wallet{
		Address:         owner,
		TokenAddress:    tokenAddress,
		Balance:         wallet.Balance - amount,
		BlockNumber:     stamp.BlockNumber,
		TransactionHash: stamp.TransactionHash,
	}
	if err := l.store.UpsertWallet(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (l *walletLedger) List(ctx context.Context, filter store.WalletQueryFilter) ([]schema.Wallet, uint64, error) {
	return l.store.ListWallets(ctx, filter)
}
