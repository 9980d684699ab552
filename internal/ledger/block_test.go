package ledger_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-ledger/internal/domain"
	"github.com/feral-file/ff-ledger/internal/ledger"
	"github.com/feral-file/ff-ledger/internal/store"
	"github.com/feral-file/ff-ledger/internal/store/schema"
)

func newTestBlockService(m *testLedgerMocks, maxTransactions int) ledger.BlockService {
	return newTestBlockServiceWithConfig(m, ledger.BlockConfig{MaxTransactions: maxTransactions})
}

func newTestBlockServiceWithConfig(m *testLedgerMocks, cfg ledger.BlockConfig) ledger.BlockService {
	return ledger.NewBlockService(
		cfg,
		m.store,
		m.store,
		m.store,
		m.txns,
		m.ids,
		m.clock,
		m.metrics,
	)
}

func TestBlockService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("first block links to genesis and executes snapshot in order", func(t *testing.T) {
		m := setupTestLedger(t)
		svc := newTestBlockService(m, 2)
		pending := []schema.Transaction{{ID: 1, TransactionHash: "0x01"}, {ID: 2, TransactionHash: "0x02"}}

		m.clock.EXPECT().Now().Return(fixedNow).Times(2)
		m.expectTransaction(1)
		m.store.EXPECT().ListPendingTransactionsForUpdate(gomock.Any(), 2).Return(pending, nil)
		m.store.EXPECT().GetLatestBlock(gomock.Any()).Return(nil, nil)
		m.ids.EXPECT().NewHash().Return(blockHash)
		m.store.EXPECT().CreateBlock(gomock.Any(), &schema.Block{
			BlockHash:        blockHash,
			ParentHash:       domain.GENESIS_PARENT_HASH,
			MinerAddress:     minerAddress,
			Timestamp:        fixedNow,
			TransactionCount: 2,
		}).DoAndReturn(func(_ context.Context, block *schema.Block) error {
			block.BlockNumber = 1
			return nil
		})
		gomock.InOrder(
			m.txns.EXPECT().Execute(gomock.Any(), int64(1), &pending[0]).Return(&schema.Transaction{}, nil),
			m.txns.EXPECT().Execute(gomock.Any(), int64(1), &pending[1]).Return(&schema.Transaction{}, nil),
		)

		block, err := svc.Create(ctx, minerAddress)
		require.NoError(t, err)
		assert.Equal(t, int64(1), block.BlockNumber)
		assert.Equal(t, domain.GENESIS_PARENT_HASH, block.ParentHash)
		assert.Equal(t, 2, block.TransactionCount)
	})

	t.Run("next block links to latest block", func(t *testing.T) {
		m := setupTestLedger(t)
		svc := newTestBlockService(m, 5)

		m.clock.EXPECT().Now().Return(fixedNow).Times(2)
		m.expectTransaction(1)
		m.store.EXPECT().ListPendingTransactionsForUpdate(gomock.Any(), 5).Return(nil, nil)
		m.store.EXPECT().GetLatestBlock(gomock.Any()).Return(&schema.Block{BlockNumber: 7, BlockHash: prevBlockHash}, nil)
		m.ids.EXPECT().NewHash().Return(blockHash)
		m.store.EXPECT().CreateBlock(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, block *schema.Block) error {
			block.BlockNumber = 8
			return nil
		})

		block, err := svc.Create(ctx, minerAddress)
		require.NoError(t, err)
		assert.Equal(t, prevBlockHash, block.ParentHash)
		assert.Equal(t, 0, block.TransactionCount)
	})

	t.Run("default page size", func(t *testing.T) {
		m := setupTestLedger(t)
		svc := newTestBlockService(m, 0)

		m.clock.EXPECT().Now().Return(fixedNow)
		m.expectTransaction(1)
		m.store.EXPECT().ListPendingTransactionsForUpdate(gomock.Any(), ledger.DEFAULT_MAX_BLOCK_TRANSACTIONS).
			Return(nil, errors.New("boom"))

		_, err := svc.Create(ctx, minerAddress)
		assert.Error(t, err)
	})

	t.Run("lost race is retried on the new tip", func(t *testing.T) {
		m := setupTestLedger(t)
		svc := newTestBlockServiceWithConfig(m, ledger.BlockConfig{MaxTransactions: 2, ConflictRetries: 2})
		pending := []schema.Transaction{{ID: 3, TransactionHash: "0x03"}}

		m.clock.EXPECT().Now().Return(fixedNow).Times(3)
		m.expectTransaction(2)
		m.store.EXPECT().ListPendingTransactionsForUpdate(gomock.Any(), 2).Return(pending, nil).Times(2)
		gomock.InOrder(
			m.store.EXPECT().GetLatestBlock(gomock.Any()).Return(nil, nil),
			m.store.EXPECT().GetLatestBlock(gomock.Any()).Return(&schema.Block{BlockNumber: 1, BlockHash: prevBlockHash}, nil),
		)
		m.ids.EXPECT().NewHash().Return(blockHash).Times(2)
		gomock.InOrder(
			m.store.EXPECT().CreateBlock(gomock.Any(), gomock.Any()).
				Return(fmt.Errorf("failed to create block: %w", domain.ErrConflict)),
			m.store.EXPECT().CreateBlock(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, block *schema.Block) error {
				block.BlockNumber = 2
				return nil
			}),
		)
		m.txns.EXPECT().Execute(gomock.Any(), int64(2), &pending[0]).Return(&schema.Transaction{}, nil)

		block, err := svc.Create(ctx, minerAddress)
		require.NoError(t, err)
		assert.Equal(t, int64(2), block.BlockNumber)
		assert.Equal(t, prevBlockHash, block.ParentHash)
		assert.Equal(t, 1, block.TransactionCount)
	})

	t.Run("conflict after the last retry is returned", func(t *testing.T) {
		m := setupTestLedger(t)
		svc := newTestBlockServiceWithConfig(m, ledger.BlockConfig{MaxTransactions: 2, ConflictRetries: 1})

		m.clock.EXPECT().Now().Return(fixedNow).Times(3)
		m.expectTransaction(2)
		m.store.EXPECT().ListPendingTransactionsForUpdate(gomock.Any(), 2).Return(nil, nil).Times(2)
		m.store.EXPECT().GetLatestBlock(gomock.Any()).Return(nil, nil).Times(2)
		m.ids.EXPECT().NewHash().Return(blockHash).Times(2)
		m.store.EXPECT().CreateBlock(gomock.Any(), gomock.Any()).Return(domain.ErrConflict).Times(2)

		_, err := svc.Create(ctx, minerAddress)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("other failures are not retried", func(t *testing.T) {
		m := setupTestLedger(t)
		svc := newTestBlockServiceWithConfig(m, ledger.BlockConfig{MaxTransactions: 2, ConflictRetries: 3})

		m.clock.EXPECT().Now().Return(fixedNow)
		m.expectTransaction(1)
		m.store.EXPECT().ListPendingTransactionsForUpdate(gomock.Any(), 2).Return(nil, errors.New("connection lost"))

		_, err := svc.Create(ctx, minerAddress)
		assert.ErrorContains(t, err, "connection lost")
	})

	t.Run("fork is a conflict without retries", func(t *testing.T) {
		m := setupTestLedger(t)
		svc := newTestBlockService(m, 2)

		m.clock.EXPECT().Now().Return(fixedNow).Times(2)
		m.expectTransaction(1)
		m.store.EXPECT().ListPendingTransactionsForUpdate(gomock.Any(), 2).Return(nil, nil)
		m.store.EXPECT().GetLatestBlock(gomock.Any()).Return(nil, nil)
		m.ids.EXPECT().NewHash().Return(blockHash)
		m.store.EXPECT().CreateBlock(gomock.Any(), gomock.Any()).Return(domain.ErrConflict)

		_, err := svc.Create(ctx, minerAddress)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("execution failure aborts the block", func(t *testing.T) {
		m := setupTestLedger(t)
		svc := newTestBlockService(m, 2)
		pending := []schema.Transaction{{ID: 1, TransactionHash: "0x01"}}

		m.clock.EXPECT().Now().Return(fixedNow).Times(2)
		m.expectTransaction(1)
		m.store.EXPECT().ListPendingTransactionsForUpdate(gomock.Any(), 2).Return(pending, nil)
		m.store.EXPECT().GetLatestBlock(gomock.Any()).Return(nil, nil)
		m.ids.EXPECT().NewHash().Return(blockHash)
		m.store.EXPECT().CreateBlock(gomock.Any(), gomock.Any()).Return(nil)
		m.txns.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("connection lost"))

		_, err := svc.Create(ctx, minerAddress)
		assert.ErrorContains(t, err, "connection lost")
	})

	t.Run("blank miner is rejected", func(t *testing.T) {
		m := setupTestLedger(t)
		svc := newTestBlockService(m, 2)

		_, err := svc.Create(ctx, "  ")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestBlockService_GetListDelete(t *testing.T) {
	m := setupTestLedger(t)
	ctx := context.Background()
	svc := newTestBlockService(m, 2)

	m.store.EXPECT().GetBlockByNumber(ctx, int64(1)).Return(&schema.Block{BlockNumber: 1}, nil)
	block, err := svc.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), block.BlockNumber)

	m.store.EXPECT().GetBlockByNumber(ctx, int64(9)).Return(nil, nil)
	_, err = svc.Get(ctx, 9)
	assert.ErrorIs(t, err, domain.ErrBlockNotFound)

	filter := store.BlockQueryFilter{Limit: 20}
	m.store.EXPECT().ListBlocks(ctx, filter).Return([]schema.Block{{BlockNumber: 2}, {BlockNumber: 1}}, uint64(2), nil)
	blocks, total, err := svc.List(ctx, filter)
	require.NoError(t, err)
	assert.Len(t, blocks, 2)
	assert.Equal(t, uint64(2), total)

	m.store.EXPECT().DeleteBlock(ctx, int64(1)).Return(true, nil)
	assert.NoError(t, svc.Delete(ctx, 1))

	m.store.EXPECT().DeleteBlock(ctx, int64(9)).Return(false, nil)
	assert.ErrorIs(t, svc.Delete(ctx, 9), domain.ErrBlockNotFound)
}
