package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/feral-file/ff-ledger/internal/domain"
	"github.com/feral-file/ff-ledger/internal/store/schema"
)

const pgUniqueViolation = "23505"

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// Zero values fall back to the defaults of NormalizeConnectionPoolSettings.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
//
// MaxIdleConns never exceeds MaxOpenConns.
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns <= 0 {
		maxOpenConns = 20
	}
	if maxIdleConns <= 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime <= 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime <= 0 {
		connMaxIdleTime = 10 * time.Minute
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

type txKey struct{}

// conn returns the unit carried by ctx, or the root connection
func (s *pgStore) conn(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok && tx != nil {
		return tx.WithContext(ctx)
	}
	return s.db.WithContext(ctx)
}

// isUniqueViolation reports whether err was raised by a unique or primary key constraint
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// WithinTransaction runs fn inside a database transaction, or a savepoint when ctx already carries one
func (s *pgStore) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return s.conn(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// =============================================================================
// Blocks
// =============================================================================

// CreateBlock inserts a block. A block whose hash or parent hash is already taken yields domain.ErrConflict.
func (s *pgStore) CreateBlock(ctx context.Context, block *schema.Block) error {
	if err := s.conn(ctx).Create(block).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("failed to create block: %w", domain.ErrConflict)
		}
		return fmt.Errorf("failed to create block: %w", err)
	}
	return nil
}

// GetBlockByNumber retrieves a block by its number
func (s *pgStore) GetBlockByNumber(ctx context.Context, blockNumber int64) (*schema.Block, error) {
	var block schema.Block
	err := s.conn(ctx).Where("block_number = ?", blockNumber).First(&block).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get block: %w", err)
	}
	return &block, nil
}

// GetLatestBlock retrieves the block with the highest number
func (s *pgStore) GetLatestBlock(ctx context.Context) (*schema.Block, error) {
	var block schema.Block
	err := s.conn(ctx).Order("block_number DESC").First(&block).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest block: %w", err)
	}
	return &block, nil
}

// ListBlocks retrieves blocks newest first
func (s *pgStore) ListBlocks(ctx context.Context, filter BlockQueryFilter) ([]schema.Block, uint64, error) {
	query := s.conn(ctx).Model(&schema.Block{})
	if filter.MinerAddress != "" {
		query = query.Where("miner_address = ?", filter.MinerAddress)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count blocks: %w", err)
	}

	query = query.Order("block_number DESC").Limit(filter.Limit).Offset(int(filter.Offset)) //nolint:gosec,G115

	var blocks []schema.Block
	if err := query.Find(&blocks).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list blocks: %w", err)
	}

	return blocks, uint64(total), nil //nolint:gosec,G115
}

// DeleteBlock deletes a block. Transactions mined in it keep their outcome and lose the block reference.
func (s *pgStore) DeleteBlock(ctx context.Context, blockNumber int64) (bool, error) {
	result := s.conn(ctx).Where("block_number = ?", blockNumber).Delete(&schema.Block{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete block: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// =============================================================================
// Transactions
// =============================================================================

// CreateTransaction inserts a transaction
func (s *pgStore) CreateTransaction(ctx context.Context, txn *schema.Transaction) error {
	if err := s.conn(ctx).Create(txn).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("failed to create transaction: %w", domain.ErrConflict)
		}
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// GetTransactionByHash retrieves a transaction by its hash
func (s *pgStore) GetTransactionByHash(ctx context.Context, hash string) (*schema.Transaction, error) {
	var txn schema.Transaction
	err := s.conn(ctx).Where("transaction_hash = ?", hash).First(&txn).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &txn, nil
}

// GetTransactionByID retrieves a transaction by its id
func (s *pgStore) GetTransactionByID(ctx context.Context, id int64) (*schema.Transaction, error) {
	var txn schema.Transaction
	err := s.conn(ctx).Where("id = ?", id).First(&txn).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &txn, nil
}

// ListTransactions retrieves transactions newest first
func (s *pgStore) ListTransactions(ctx context.Context, filter TransactionQueryFilter) ([]schema.Transaction, uint64, error) {
	query := s.conn(ctx).Model(&schema.Transaction{})

	if filter.IsMined != nil {
		query = query.Where("is_mined = ?", *filter.IsMined)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.FromAddress != "" {
		query = query.Where("from_address = ?", filter.FromAddress)
	}
	if filter.ToAddress != "" {
		query = query.Where("to_address = ?", filter.ToAddress)
	}
	if filter.BlockNumber != nil {
		query = query.Where("block_number = ?", *filter.BlockNumber)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	query = query.Order("id DESC").Limit(filter.Limit).Offset(int(filter.Offset)) //nolint:gosec,G115

	var txns []schema.Transaction
	if err := query.Find(&txns).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list transactions: %w", err)
	}

	return txns, uint64(total), nil //nolint:gosec,G115
}

// ListPendingTransactionsForUpdate locks and returns up to limit unmined transactions, oldest first.
// It must run inside WithinTransaction for the locks to outlive the query.
func (s *pgStore) ListPendingTransactionsForUpdate(ctx context.Context, limit int) ([]schema.Transaction, error) {
	var txns []schema.Transaction
	err := s.conn(ctx).
		Where("is_mined = ?", false).
		Order("id ASC").
		Limit(limit).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Find(&txns).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list pending transactions: %w", err)
	}
	return txns, nil
}

// UpdateTransaction applies a partial update to an unmined transaction.
// Mined transactions are final: updating one yields domain.ErrTransactionAlreadyMined.
func (s *pgStore) UpdateTransaction(ctx context.Context, id int64, input UpdateTransactionInput) (*schema.Transaction, error) {
	updates := map[string]interface{}{}
	if input.BlockNumber != nil {
		updates["block_number"] = *input.BlockNumber
	}
	if input.IsMined != nil {
		updates["is_mined"] = *input.IsMined
	}
	if input.Status != nil {
		updates["status"] = *input.Status
	}
	if input.FailureReason != nil {
		updates["failure_reason"] = *input.FailureReason
	}

	var updated *schema.Transaction
	err := s.WithinTransaction(ctx, func(ctx context.Context) error {
		if len(updates) > 0 {
			result := s.conn(ctx).Model(&schema.Transaction{}).
				Where("id = ? AND is_mined = ?", id, false).
				Updates(updates)
			if result.Error != nil {
				return fmt.Errorf("failed to update transaction: %w", result.Error)
			}

			if result.RowsAffected == 0 {
				existing, err := s.GetTransactionByID(ctx, id)
				if err != nil {
					return err
				}
				if existing == nil {
					return domain.ErrTransactionNotFound
				}
				return domain.ErrTransactionAlreadyMined
			}
		}

		txn, err := s.GetTransactionByID(ctx, id)
		if err != nil {
			return err
		}
		if txn == nil {
			return domain.ErrTransactionNotFound
		}
		updated = txn
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteTransaction deletes a transaction
func (s *pgStore) DeleteTransaction(ctx context.Context, id int64) (bool, error) {
	result := s.conn(ctx).Where("id = ?", id).Delete(&schema.Transaction{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete transaction: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// =============================================================================
// Fungible tokens
// =============================================================================

// CreateFungibleToken inserts a token
func (s *pgStore) CreateFungibleToken(ctx context.Context, token *schema.FungibleToken) error {
	if err := s.conn(ctx).Create(token).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("failed to create fungible token: %w", domain.ErrConflict)
		}
		return fmt.Errorf("failed to create fungible token: %w", err)
	}
	return nil
}

// GetFungibleToken retrieves a token by its address
func (s *pgStore) GetFungibleToken(ctx context.Context, address string) (*schema.FungibleToken, error) {
	return s.getFungibleToken(s.conn(ctx), address)
}

// GetFungibleTokenForUpdate retrieves a token by its address and locks its row until the unit ends
func (s *pgStore) GetFungibleTokenForUpdate(ctx context.Context, address string) (*schema.FungibleToken, error) {
	return s.getFungibleToken(s.conn(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), address)
}

func (s *pgStore) getFungibleToken(db *gorm.DB, address string) (*schema.FungibleToken, error) {
	var token schema.FungibleToken
	err := db.Where("address = ?", address).First(&token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get fungible token: %w", err)
	}
	return &token, nil
}

// UpdateFungibleTokenSupply sets the total supply and stamps the change
func (s *pgStore) UpdateFungibleTokenSupply(ctx context.Context, input UpdateFungibleTokenSupplyInput) error {
	result := s.conn(ctx).Model(&schema.FungibleToken{}).
		Where("address = ?", input.Address).
		Updates(map[string]interface{}{
			"total_supply":     input.TotalSupply,
			"block_number":     input.BlockNumber,
			"transaction_hash": input.TransactionHash,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update fungible token supply: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrTokenNotFound
	}
	return nil
}

// ListFungibleTokens retrieves tokens ordered by address
func (s *pgStore) ListFungibleTokens(ctx context.Context, filter FungibleTokenQueryFilter) ([]schema.FungibleToken, uint64, error) {
	query := s.conn(ctx).Model(&schema.FungibleToken{})
	if filter.OwnerAddress != "" {
		query = query.Where("owner_address = ?", filter.OwnerAddress)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count fungible tokens: %w", err)
	}

	query = query.Order("created_at DESC, address ASC").Limit(filter.Limit).Offset(int(filter.Offset)) //nolint:gosec,G115

	var tokens []schema.FungibleToken
	if err := query.Find(&tokens).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list fungible tokens: %w", err)
	}

	return tokens, uint64(total), nil //nolint:gosec,G115
}

// =============================================================================
// Wallets
// =============================================================================

// GetWallet retrieves the wallet of an (owner, token) pair
func (s *pgStore) GetWallet(ctx context.Context, address, tokenAddress string) (*schema.Wallet, error) {
	return s.getWallet(s.conn(ctx), address, tokenAddress)
}

// GetWalletForUpdate retrieves the wallet of an (owner, token) pair and locks its row until the unit ends
func (s *pgStore) GetWalletForUpdate(ctx context.Context, address, tokenAddress string) (*schema.Wallet, error) {
	return s.getWallet(s.conn(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), address, tokenAddress)
}

func (s *pgStore) getWallet(db *gorm.DB, address, tokenAddress string) (*schema.Wallet, error) {
	var wallet schema.Wallet
	err := db.Where("address = ? AND token_address = ?", address, tokenAddress).First(&wallet).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	return &wallet, nil
}

// UpsertWallet inserts a wallet or overwrites the balance and stamp of the existing (owner, token) row
func (s *pgStore) UpsertWallet(ctx context.Context, wallet *schema.Wallet) error {
	err := s.conn(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "address"}, {Name: "token_address"}},
		DoUpdates: clause.AssignmentColumns([]string{"balance", "block_number", "transaction_hash", "updated_at"}),
	}).Create(wallet).Error
	if err != nil {
		return fmt.Errorf("failed to upsert wallet: %w", err)
	}
	return nil
}

// ListWallets retrieves wallets ordered by owner then token
func (s *pgStore) ListWallets(ctx context.Context, filter WalletQueryFilter) ([]schema.Wallet, uint64, error) {
	query := s.conn(ctx).Model(&schema.Wallet{})
	if filter.Address != "" {
		query = query.Where("address = ?", filter.Address)
	}
	if filter.TokenAddress != "" {
		query = query.Where("token_address = ?", filter.TokenAddress)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count wallets: %w", err)
	}

	query = query.Order("address ASC, token_address ASC").Limit(filter.Limit).Offset(int(filter.Offset)) //nolint:gosec,G115

	var wallets []schema.Wallet
	if err := query.Find(&wallets).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list wallets: %w", err)
	}

	return wallets, uint64(total), nil //nolint:gosec,G115
}

// =============================================================================
// Service context
// =============================================================================

// GetServiceContext retrieves the service context, creating it only when absent
func (s *pgStore) GetServiceContext(ctx context.Context) (*schema.ServiceContext, error) {
	var sc schema.ServiceContext
	err := s.conn(ctx).Where("id = ?", schema.SERVICE_CONTEXT_ID).First(&sc).Error
	if err == nil {
		return &sc, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get service context: %w", err)
	}

	sc = schema.ServiceContext{ID: schema.SERVICE_CONTEXT_ID}
	err = s.conn(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&sc).Error
	if err != nil {
		return nil, fmt.Errorf("failed to create service context: %w", err)
	}

	if err := s.conn(ctx).Where("id = ?", schema.SERVICE_CONTEXT_ID).First(&sc).Error; err != nil {
		return nil, fmt.Errorf("failed to get service context: %w", err)
	}
	return &sc, nil
}

// SetMaintenance sets the maintenance flag
func (s *pgStore) SetMaintenance(ctx context.Context, maintenance bool) (*schema.ServiceContext, error) {
	sc := schema.ServiceContext{
		ID:          schema.SERVICE_CONTEXT_ID,
		Maintenance: maintenance,
	}

	err := s.conn(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"maintenance", "updated_at"}),
	}).Create(&sc).Error
	if err != nil {
		return nil, fmt.Errorf("failed to set maintenance: %w", err)
	}

	return s.GetServiceContext(ctx)
}
