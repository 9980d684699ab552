package ledger

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/feral-file/ff-ledger/internal/domain"
	"github.com/feral-file/ff-ledger/internal/store"
	"github.com/feral-file/ff-ledger/internal/store/schema"
)

// TokenRegistry keeps fungible token metadata and total supply
//
//go:generate mockgen -source=token.go -destination=../mocks/token_registry.go -package=mocks -mock_names=TokenRegistry=MockTokenRegistry
type TokenRegistry interface {
	// Get returns a token by its address
	Get(ctx context.Context, address string) (*schema.FungibleToken, error)
	// Create registers a new token
	Create(ctx context.Context, token *schema.FungibleToken) error
	// Mint increases the supply of a token. Only the token owner may mint.
	Mint(ctx context.Context, address, requester string, amount int64, stamp Stamp) (*schema.FungibleToken, error)
	// Burn decreases the supply of a token on behalf of the holder of wallet.
	// The wallet itself is not changed.
	Burn(ctx context.Context, address string, wallet *schema.Wallet, amount int64, stamp Stamp) (*schema.FungibleToken, error)
	// List returns tokens matching the filter and the total number of matches
	List(ctx context.Context, filter store.FungibleTokenQueryFilter) ([]schema.FungibleToken, uint64, error)
}

type tokenRegistry struct {
	store store.FungibleTokenStore
}

// NewTokenRegistry creates a new token registry
func NewTokenRegistry(st store.FungibleTokenStore) TokenRegistry {
	return &tokenRegistry{store: st}
}

func (r *tokenRegistry) Get(ctx context.Context, address string) (*schema.FungibleToken, error) {
	token, err := r.store.GetFungibleToken(ctx, address)
	if err != nil {
		return nil, err
	}
	if token == nil {
		return nil, domain.ErrTokenNotFound
	}
	return token, nil
}

func (r *tokenRegistry) Create(ctx context.Context, token *schema.FungibleToken) error {
	if token.TotalSupply < 0 {
		return fmt.Errorf("%w: total supply %d is negative", domain.ErrInvalidAmount, token.TotalSupply)
	}
	if n := utf8.RuneCountInString(token.Symbol); n > domain.MAX_TOKEN_SYMBOL_LENGTH {
		return fmt.Errorf("%w: symbol has %d characters, at most %d allowed",
			domain.ErrInvalidTokenMetadata, n, domain.MAX_TOKEN_SYMBOL_LENGTH)
	}
	if n := utf8.RuneCountInString(token.Name); n > domain.MAX_TOKEN_NAME_LENGTH {
		return fmt.Errorf("%w: name has %d characters, at most %d allowed",
			domain.ErrInvalidTokenMetadata, n, domain.MAX_TOKEN_NAME_LENGTH)
	}
	if token.Decimals < 0 {
		return fmt.Errorf("%w: decimals %d is negative", domain.ErrInvalidTokenMetadata, token.Decimals)
	}
	return r.store.CreateFungibleToken(ctx, token)
}

func (r *tokenRegistry) getForUpdate(ctx context.Context, address string) (*schema.FungibleToken, error) {
	token, err := r.store.GetFungibleTokenForUpdate(ctx, address)
	if err != nil {
		return nil, err
	}
	if token == nil {
		return nil, domain.ErrTokenNotFound
	}
	return token, nil
}

func (r *tokenRegistry) Mint(ctx context.Context, address, requester string, amount int64, stamp Stamp) (*schema.FungibleToken, error) {
	token, err := r.getForUpdate(ctx, address)
	if err != nil {
		return nil, err
	}
	if token.OwnerAddress != requester {
		return nil, domain.ErrNotTokenOwner
	}

	supply, err := addAmount(token.TotalSupply, amount)
	if err != nil {
		return nil, err
	}
	return r.setSupply(ctx, token, supply, stamp)
}

func (r *tokenRegistry) Burn(ctx context.Context, address string, wallet *schema.Wallet, amount int64, stamp Stamp) (*schema.FungibleToken, error) {
	if amount < 0 {
		return nil, fmt.Errorf("%w: %d is negative", domain.ErrInvalidAmount, amount)
	}

	token, err := r.getForUpdate(ctx, address)
	if err != nil {
		return nil, err
	}
	if wallet == nil || wallet.TokenAddress != address || wallet.Balance < amount {
		return nil, domain.ErrInsufficientBalance
	}
	if token.TotalSupply < amount {
		return nil, domain.ErrInsufficientSupply
	}
	return r.setSupply(ctx, token, token.TotalSupply-amount, stamp)
}

func (r *tokenRegistry) setSupply(ctx context.Context, token *schema.FungibleToken, supply int64, stamp Stamp) (*schema.FungibleToken, error) {
	err := r.store.UpdateFungibleTokenSupply(ctx, store.UpdateFungibleTokenSupplyInput{
		Address:         token.Address,
		TotalSupply:     supply,
		BlockNumber:     stamp.BlockNumber,
		TransactionHash: stamp.TransactionHash,
	})
	if err != nil {
		return nil, err
	}

	updated := *token
	updated.TotalSupply = supply
	updated.BlockNumber = stamp.BlockNumber
	updated.TransactionHash = stamp.TransactionHash
	return &updated, nil
}

func (r *tokenRegistry) List(ctx context.Context, filter store.FungibleTokenQueryFilter) ([]schema.FungibleToken, uint64, error) {
	return r.store.ListFungibleTokens(ctx, filter)
}
