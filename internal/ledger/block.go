package ledger

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/feral-file/ff-ledger/internal/adapter"
	"github.com/feral-file/ff-ledger/internal/domain"
	"github.com/feral-file/ff-ledger/internal/logger"
	"github.com/feral-file/ff-ledger/internal/metrics"
	"github.com/feral-file/ff-ledger/internal/store"
	"github.com/feral-file/ff-ledger/internal/store/schema"
)

// DEFAULT_MAX_BLOCK_TRANSACTIONS is the number of pending transactions a block takes when not configured
const DEFAULT_MAX_BLOCK_TRANSACTIONS = 2

// BlockConfig holds the configuration for mining
type BlockConfig struct {
	// MaxTransactions is the largest number of pending transactions selected into one block
	MaxTransactions int
	// ConflictRetries is how many more times mining is attempted after losing a race for the chain tip
	ConflictRetries int
}

// BlockService mines blocks and serves the chain
//
//go:generate mockgen -source=block.go -destination=../mocks/block_service.go -package=mocks -mock_names=BlockService=MockBlockService
type BlockService interface {
	// Create mines a block out of the oldest pending transactions
	Create(ctx context.Context, minerAddress string) (*schema.Block, error)
	// List returns blocks newest first and the total number of matches
	List(ctx context.Context, filter store.BlockQueryFilter) ([]schema.Block, uint64, error)
	// Get returns a block by its number
	Get(ctx context.Context, blockNumber int64) (*schema.Block, error)
	// Delete removes a block by its number
	Delete(ctx context.Context, blockNumber int64) error
}

type blockService struct {
	config       BlockConfig
	transactor   store.Transactor
	blocks       store.BlockStore
	transactions store.TransactionStore
	executor     TransactionService
	ids          adapter.IDGenerator
	clock        adapter.Clock
	metrics      *metrics.Ledger
}

// NewBlockService creates a new block service
func NewBlockService(
	cfg BlockConfig,
	transactor store.Transactor,
	blocks store.BlockStore,
	transactions store.TransactionStore,
	executor TransactionService,
	ids adapter.IDGenerator,
	clock adapter.Clock,
	m *metrics.Ledger,
) BlockService {
	if cfg.MaxTransactions <= 0 {
		cfg.MaxTransactions = DEFAULT_MAX_BLOCK_TRANSACTIONS
	}
	if cfg.ConflictRetries < 0 {
		cfg.ConflictRetries = 0
	}
	return &blockService{
		config:       cfg,
		transactor:   transactor,
		blocks:       blocks,
		transactions: transactions,
		executor:     executor,
		ids:          ids,
		clock:        clock,
		metrics:      m,
	}
}

// Create mines one block.
// Selecting the pending transactions, persisting the block and executing every selected transaction
// happen in one unit; a concurrent miner skips the rows this one has locked. A miner that loses
// the race for the chain tip starts over on top of the new tip.
func (s *blockService) Create(ctx context.Context, minerAddress string) (*schema.Block, error) {
	if strings.TrimSpace(minerAddress) == "" {
		return nil, &domain.ValidationError{Reasons: []string{"Miner address is missing or empty."}}
	}

	started := s.clock.Now()
	var block *schema.Block
	var selected int

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 20 * time.Millisecond
	b.MaxInterval = 500 * time.Millisecond
	b.MaxElapsedTime = 0

	attempt := 0
	operation := func() error {
		attempt++
		var err error
		block, selected, err = s.mine(ctx, minerAddress)
		if err == nil {
			return nil
		}
		if !errors.Is(err, domain.ErrConflict) {
			return backoff.Permanent(err)
		}
		logger.WarnCtx(ctx, "Chain tip moved while mining, retrying",
			zap.String("miner", minerAddress),
			zap.Int("attempt", attempt),
		)
		return err
	}

	err := backoff.Retry(operation, backoff.WithContext(
		backoff.WithMaxRetries(b, uint64(s.config.ConflictRetries)), ctx)) //nolint:gosec,G115
	s.metrics.ObserveMine(err, selected, started)
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Block mined",
		zap.Int64("block_number", block.BlockNumber),
		zap.String("block_hash", block.BlockHash),
		zap.String("miner", block.MinerAddress),
		zap.Int("transactions", block.TransactionCount),
	)
	return block, nil
}

// mine makes one attempt at building, persisting and executing a block on the current tip
func (s *blockService) mine(ctx context.Context, minerAddress string) (*schema.Block, int, error) {
	var block *schema.Block
	var selected int

	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		pending, err := s.transactions.ListPendingTransactionsForUpdate(ctx, s.config.MaxTransactions)
		if err != nil {
			return err
		}
		selected = len(pending)

		parentHash := domain.GENESIS_PARENT_HASH
		latest, err := s.blocks.GetLatestBlock(ctx)
		if err != nil {
			return err
		}
		if latest != nil {
			parentHash = latest.BlockHash
		}

		block = &schema.Block{
			BlockHash:        s.ids.NewHash(),
			ParentHash:       parentHash,
			MinerAddress:     minerAddress,
			Timestamp:        s.clock.Now(),
			TransactionCount: len(pending),
		}
		if err := s.blocks.CreateBlock(ctx, block); err != nil {
			return err
		}

		for i := range pending {
			if _, err := s.executor.Execute(ctx, block.BlockNumber, &pending[i]); err != nil {
				return fmt.Errorf("failed to execute transaction %s: %w", pending[i].TransactionHash, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, selected, err
	}
	return block, selected, nil
}

func (s *blockService) List(ctx context.Context, filter store.BlockQueryFilter) ([]schema.Block, uint64, error) {
	return s.blocks.ListBlocks(ctx, filter)
}

func (s *blockService) Get(ctx context.Context, blockNumber int64) (*schema.Block, error) {
	block, err := s.blocks.GetBlockByNumber(ctx, blockNumber)
	if err != nil {
		return nil, err
	}
	if block == nil {
		return nil, domain.ErrBlockNotFound
	}
	return block, nil
}

func (s *blockService) Delete(ctx context.Context, blockNumber int64) error {
	deleted, err := s.blocks.DeleteBlock(ctx, blockNumber)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrBlockNotFound
	}
	return nil
}
