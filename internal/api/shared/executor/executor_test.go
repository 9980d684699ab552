package executor_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-ledger/internal/api/shared/dto"
	apierrors "github.com/feral-file/ff-ledger/internal/api/shared/errors"
	"github.com/feral-file/ff-ledger/internal/api/shared/executor"
	"github.com/feral-file/ff-ledger/internal/domain"
	"github.com/feral-file/ff-ledger/internal/ledger"
	"github.com/feral-file/ff-ledger/internal/mocks"
	"github.com/feral-file/ff-ledger/internal/store"
	"github.com/feral-file/ff-ledger/internal/store/schema"
)

type testExecutorMocks struct {
	transactions *mocks.MockTransactionService
	blocks       *mocks.MockBlockService
	wallets      *mocks.MockWalletLedger
	tokens       *mocks.MockTokenRegistry
	maintenance  *mocks.MockMaintenanceService
	exec         executor.Executor
}

func setupTestExecutor(t *testing.T) *testExecutorMocks {
	ctrl := gomock.NewController(t)
	m := &testExecutorMocks{
		transactions: mocks.NewMockTransactionService(ctrl),
		blocks:       mocks.NewMockBlockService(ctrl),
		wallets:      mocks.NewMockWalletLedger(ctrl),
		tokens:       mocks.NewMockTokenRegistry(ctrl),
		maintenance:  mocks.NewMockMaintenanceService(ctrl),
	}
	m.exec = executor.NewExecutor(m.transactions, m.blocks, m.wallets, m.tokens, m.maintenance)
	return m
}

func requireAPIError(t *testing.T, err error, code apierrors.ErrorCode) *apierrors.APIError {
	t.Helper()
	var apiErr *apierrors.APIError
	require.True(t, errors.As(err, &apiErr), "expected APIError, got %v", err)
	assert.Equal(t, code, apiErr.Code)
	return apiErr
}

func TestCreateTransaction(t *testing.T) {
	m := setupTestExecutor(t)
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		FromAddress:     "0xowner",
		TransactionType: "INIT_FT",
		Value:           100,
		Data:            []byte(`{"symbol":"APPLE","name":"Apple","decimals":0}`),
	}

	m.transactions.EXPECT().
		Create(ctx, ledger.CreateTransactionInput{
			FromAddress:     "0xowner",
			TransactionType: "INIT_FT",
			Value:           100,
			Data:            req.Data,
		}).
		Return(&schema.Transaction{
			ID:              7,
			TransactionHash: "0xhash",
			FromAddress:     "0xowner",
			TransactionType: domain.TransactionTypeInitFT,
			Value:           100,
			Status:          domain.TransactionStatusRaw,
		}, nil)

	resp, err := m.exec.CreateTransaction(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "INIT_FT", resp.TransactionType)
	assert.Equal(t, "RAW", resp.Status)
	assert.False(t, resp.IsMined)
}

func TestCreateTransaction_ValidationError(t *testing.T) {
	m := setupTestExecutor(t)
	ctx := context.Background()

	m.transactions.EXPECT().
		Create(ctx, gomock.Any()).
		Return(nil, &domain.ValidationError{Reasons: []string{"Value must be positive."}})

	_, err := m.exec.CreateTransaction(ctx, dto.CreateTransactionRequest{})
	apiErr := requireAPIError(t, err, apierrors.ErrCodeValidationFailed)
	assert.Equal(t, "Value must be positive.", apiErr.Details)
}

func TestGetTransaction_NotFound(t *testing.T) {
	m := setupTestExecutor(t)
	ctx := context.Background()

	m.transactions.EXPECT().Get(ctx, "0xmissing").Return(nil, domain.ErrTransactionNotFound)

	_, err := m.exec.GetTransaction(ctx, "0xmissing")
	requireAPIError(t, err, apierrors.ErrCodeNotFound)
}

func TestGetTransactions(t *testing.T) {
	mined := false
	status := domain.TransactionStatusRaw

	tests := []struct {
		name       string
		limit      *int
		offset     *uint64
		wantLimit  int
		wantOffset uint64
		rows       int
		total      uint64
		wantNext   *uint64
	}{
		{
			name:      "defaults",
			wantLimit: 20,
			rows:      2,
			total:     2,
		},
		{
			name:       "capped limit with next page",
			limit:      intPtr(500),
			offset:     uint64Ptr(100),
			wantLimit:  100,
			wantOffset: 100,
			rows:       100,
			total:      250,
			wantNext:   uint64Ptr(200),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := setupTestExecutor(t)
			ctx := context.Background()

			rows := make([]schema.Transaction, tt.rows)
			for i := range rows {
				rows[i] = schema.Transaction{ID: int64(i + 1), Status: domain.TransactionStatusRaw}
			}

			m.transactions.EXPECT().
				List(ctx, store.TransactionQueryFilter{
					IsMined:     &mined,
					Status:      &status,
					FromAddress: "0xowner",
					Limit:       tt.wantLimit,
					Offset:      tt.wantOffset,
				}).
				Return(rows, tt.total, nil)

			resp, err := m.exec.GetTransactions(ctx, &mined, &status, "0xowner", "", tt.limit, tt.offset)
			require.NoError(t, err)
			assert.Len(t, resp.Transactions, tt.rows)
			assert.Equal(t, tt.total, resp.Total)
			assert.Equal(t, tt.wantNext, resp.Offset)
		})
	}
}

func TestDeleteTransaction(t *testing.T) {
	m := setupTestExecutor(t)
	ctx := context.Background()

	m.transactions.EXPECT().Delete(ctx, int64(3)).Return(nil)
	require.NoError(t, m.exec.DeleteTransaction(ctx, 3))

	m.transactions.EXPECT().Delete(ctx, int64(4)).Return(domain.ErrTransactionAlreadyMined)
	requireAPIError(t, m.exec.DeleteTransaction(ctx, 4), apierrors.ErrCodeConflict)
}

func TestCreateBlock(t *testing.T) {
	m := setupTestExecutor(t)
	ctx := context.Background()
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	m.blocks.EXPECT().Create(ctx, "0xminer").Return(&schema.Block{
		BlockNumber:      1,
		BlockHash:        "0xblock",
		ParentHash:       domain.GENESIS_PARENT_HASH,
		MinerAddress:     "0xminer",
		Timestamp:        now,
		TransactionCount: 2,
	}, nil)

	resp, err := m.exec.CreateBlock(ctx, "0xminer")
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.BlockNumber)
	assert.Equal(t, domain.GENESIS_PARENT_HASH, resp.ParentHash)
	assert.Equal(t, 2, resp.TransactionCount)
	assert.Equal(t, now, resp.Timestamp)
}

func TestCreateBlock_Errors(t *testing.T) {
	m := setupTestExecutor(t)
	ctx := context.Background()

	m.blocks.EXPECT().Create(ctx, "0xminer").Return(nil, domain.ErrConflict)
	_, err := m.exec.CreateBlock(ctx, "0xminer")
	requireAPIError(t, err, apierrors.ErrCodeConflict)

	m.blocks.EXPECT().Create(ctx, "0xminer").Return(nil, errors.New("connection reset"))
	_, err = m.exec.CreateBlock(ctx, "0xminer")
	apiErr := requireAPIError(t, err, apierrors.ErrCodeDatabaseError)
	assert.Equal(t, "Failed to mine block", apiErr.Message)
}

func TestGetBlocks(t *testing.T) {
	m := setupTestExecutor(t)
	ctx := context.Background()

	m.blocks.EXPECT().
		List(ctx, store.BlockQueryFilter{Limit: 2, Offset: 0}).
		Return([]schema.Block{{BlockNumber: 3}, {BlockNumber: 2}}, uint64(3), nil)

	resp, err := m.exec.GetBlocks(ctx, "", intPtr(2), nil)
	require.NoError(t, err)
	require.Len(t, resp.Blocks, 2)
	assert.Equal(t, int64(3), resp.Blocks[0].BlockNumber)
	assert.Equal(t, uint64Ptr(2), resp.Offset)
}

func TestGetBlock_DeleteBlock(t *testing.T) {
	m := setupTestExecutor(t)
	ctx := context.Background()

	m.blocks.EXPECT().Get(ctx, int64(9)).Return(nil, domain.ErrBlockNotFound)
	_, err := m.exec.GetBlock(ctx, 9)
	requireAPIError(t, err, apierrors.ErrCodeNotFound)

	m.blocks.EXPECT().Delete(ctx, int64(9)).Return(nil)
	assert.NoError(t, m.exec.DeleteBlock(ctx, 9))
}

func TestWallets(t *testing.T) {
	m := setupTestExecutor(t)
	ctx := context.Background()

	m.wallets.EXPECT().Get(ctx, "0xuser", "0xtoken").Return(&schema.Wallet{
		Address:      "0xuser",
		TokenAddress: "0xtoken",
		Balance:      30,
	}, nil)
	wallet, err := m.exec.GetWallet(ctx, "0xuser", "0xtoken")
	require.NoError(t, err)
	assert.Equal(t, int64(30), wallet.Balance)

	m.wallets.EXPECT().Get(ctx, "0xnobody", "0xtoken").Return(nil, domain.ErrWalletNotFound)
	_, err = m.exec.GetWallet(ctx, "0xnobody", "0xtoken")
	requireAPIError(t, err, apierrors.ErrCodeNotFound)

	m.wallets.EXPECT().
		List(ctx, store.WalletQueryFilter{TokenAddress: "0xtoken", Limit: 20}).
		Return([]schema.Wallet{{Address: "0xuser"}}, uint64(1), nil)
	list, err := m.exec.GetWallets(ctx, "", "0xtoken", nil, nil)
	require.NoError(t, err)
	assert.Len(t, list.Wallets, 1)
	assert.Nil(t, list.Offset)
}

func TestFungibleTokens(t *testing.T) {
	m := setupTestExecutor(t)
	ctx := context.Background()

	m.tokens.EXPECT().Get(ctx, "0xtoken").Return(&schema.FungibleToken{
		Address:     "0xtoken",
		Symbol:      "APPLE",
		TotalSupply: 150,
	}, nil)
	token, err := m.exec.GetFungibleToken(ctx, "0xtoken")
	require.NoError(t, err)
	assert.Equal(t, "APPLE", token.Symbol)
	assert.Equal(t, int64(150), token.TotalSupply)

	m.tokens.EXPECT().
		List(ctx, store.FungibleTokenQueryFilter{OwnerAddress: "0xowner", Limit: 20}).
		Return(nil, uint64(0), context.DeadlineExceeded)
	_, err = m.exec.GetFungibleTokens(ctx, "0xowner", nil, nil)
	requireAPIError(t, err, apierrors.ErrCodeServiceError)
}

func TestMaintenance(t *testing.T) {
	m := setupTestExecutor(t)
	ctx := context.Background()

	m.maintenance.EXPECT().Get(ctx).Return(&schema.ServiceContext{ID: schema.SERVICE_CONTEXT_ID}, nil)
	resp, err := m.exec.GetMaintenance(ctx)
	require.NoError(t, err)
	assert.False(t, resp.Maintenance)

	m.maintenance.EXPECT().Update(ctx, true).Return(&schema.ServiceContext{ID: schema.SERVICE_CONTEXT_ID, Maintenance: true}, nil)
	resp, err = m.exec.SetMaintenance(ctx, true)
	require.NoError(t, err)
	assert.True(t, resp.Maintenance)
}

func intPtr(v int) *int {
	return &v
}

func uint64Ptr(v uint64) *uint64 {
	return &v
}
