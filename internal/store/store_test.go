package store

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/feral-file/ff-ledger/internal/domain"
	"github.com/feral-file/ff-ledger/internal/store/schema"
)

// RunStoreTests runs every store test against a fresh store returned by initDB
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"Blocks", testBlocks},
		{"BlockConflicts", testBlockConflicts},
		{"Transactions", testTransactions},
		{"ListTransactionsFilters", testListTransactionsFilters},
		{"PendingTransactions", testPendingTransactions},
		{"UpdateTransaction", testUpdateTransaction},
		{"FungibleTokens", testFungibleTokens},
		{"Wallets", testWallets},
		{"ServiceContext", testServiceContext},
		{"WithinTransaction", testWithinTransaction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.fn(t, initDB(t))
		})
	}
}

// =============================================================================
// Test Data Builders
// =============================================================================

func testHash(prefix string, n int) string {
	return fmt.Sprintf("0x%s%0*d", prefix, 64-len(prefix), n)
}

func testAddress(n int) string {
	return fmt.Sprintf("0x%040d", n)
}

func buildTestBlock(hash, parentHash, miner string) *schema.Block {
	return &schema.Block{
		BlockHash:    hash,
		ParentHash:   parentHash,
		MinerAddress: miner,
		Timestamp:    time.Now().UTC(),
	}
}

func buildTestTransaction(hash string, txType domain.TransactionType, from, to string, value int64, data string) *schema.Transaction {
	return &schema.Transaction{
		TransactionHash: hash,
		FromAddress:     from,
		ToAddress:       to,
		TransactionType: txType,
		Value:           value,
		Data:            datatypes.JSON(data),
		Timestamp:       time.Now().UTC(),
		Status:          domain.TransactionStatusRaw,
	}
}

func buildTestToken(address, owner string, supply int64) *schema.FungibleToken {
	return &schema.FungibleToken{
		Address:         address,
		Symbol:          "TST",
		Name:            "Test Token",
		OwnerAddress:    owner,
		TotalSupply:     supply,
		BlockNumber:     1,
		TransactionHash: testHash("aa", 1),
	}
}

func boolPtr(b bool) *bool {
	return &b
}

func int64Ptr(n int64) *int64 {
	return &n
}

func statusPtr(s domain.TransactionStatus) *domain.TransactionStatus {
	return &s
}

// =============================================================================
// Test: Blocks
// =============================================================================

func testBlocks(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("latest block of an empty chain is nil", func(t *testing.T) {
		latest, err := store.GetLatestBlock(ctx)
		require.NoError(t, err)
		assert.Nil(t, latest)
	})

	first := buildTestBlock(testHash("b", 1), domain.GENESIS_PARENT_HASH, "miner-a")
	require.NoError(t, store.CreateBlock(ctx, first))
	require.NotZero(t, first.BlockNumber)

	second := buildTestBlock(testHash("b", 2), first.BlockHash, "miner-b")
	require.NoError(t, store.CreateBlock(ctx, second))
	assert.Greater(t, second.BlockNumber, first.BlockNumber)

	t.Run("latest block has the highest number", func(t *testing.T) {
		latest, err := store.GetLatestBlock(ctx)
		require.NoError(t, err)
		require.NotNil(t, latest)
		assert.Equal(t, second.BlockHash, latest.BlockHash)
		assert.Equal(t, first.BlockHash, latest.ParentHash)
	})

	t.Run("get by number", func(t *testing.T) {
		block, err := store.GetBlockByNumber(ctx, first.BlockNumber)
		require.NoError(t, err)
		require.NotNil(t, block)
		assert.Equal(t, domain.GENESIS_PARENT_HASH, block.ParentHash)
		assert.Equal(t, "miner-a", block.MinerAddress)

		missing, err := store.GetBlockByNumber(ctx, second.BlockNumber+100)
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("list newest first", func(t *testing.T) {
		blocks, total, err := store.ListBlocks(ctx, BlockQueryFilter{Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, uint64(2), total)
		require.Len(t, blocks, 2)
		assert.Equal(t, second.BlockNumber, blocks[0].BlockNumber)
		assert.Equal(t, first.BlockNumber, blocks[1].BlockNumber)
	})

	t.Run("list with miner filter and pagination", func(t *testing.T) {
		blocks, total, err := store.ListBlocks(ctx, BlockQueryFilter{MinerAddress: "miner-a", Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, uint64(1), total)
		require.Len(t, blocks, 1)
		assert.Equal(t, first.BlockHash, blocks[0].BlockHash)

		blocks, total, err = store.ListBlocks(ctx, BlockQueryFilter{Limit: 1, Offset: 1})
		require.NoError(t, err)
		assert.Equal(t, uint64(2), total)
		require.Len(t, blocks, 1)
		assert.Equal(t, first.BlockNumber, blocks[0].BlockNumber)
	})

	t.Run("delete block", func(t *testing.T) {
		deleted, err := store.DeleteBlock(ctx, second.BlockNumber)
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = store.DeleteBlock(ctx, second.BlockNumber)
		require.NoError(t, err)
		assert.False(t, deleted)

		latest, err := store.GetLatestBlock(ctx)
		require.NoError(t, err)
		assert.Equal(t, first.BlockNumber, latest.BlockNumber)
	})
}

func testBlockConflicts(t *testing.T, store Store) {
	ctx := context.Background()

	first := buildTestBlock(testHash("c", 1), domain.GENESIS_PARENT_HASH, "miner")
	require.NoError(t, store.CreateBlock(ctx, first))

	t.Run("second child of the same parent is a conflict", func(t *testing.T) {
		fork := buildTestBlock(testHash("c", 2), domain.GENESIS_PARENT_HASH, "miner")
		err := store.WithinTransaction(ctx, func(ctx context.Context) error {
			return store.CreateBlock(ctx, fork)
		})
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("duplicate block hash is a conflict", func(t *testing.T) {
		dup := buildTestBlock(first.BlockHash, testHash("c", 3), "miner")
		err := store.WithinTransaction(ctx, func(ctx context.Context) error {
			return store.CreateBlock(ctx, dup)
		})
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("store remains usable after a rolled back conflict", func(t *testing.T) {
		child := buildTestBlock(testHash("c", 4), first.BlockHash, "miner")
		require.NoError(t, store.CreateBlock(ctx, child))
	})
}

// =============================================================================
// Test: Transactions
// =============================================================================

func testTransactions(t *testing.T, store Store) {
	ctx := context.Background()

	txn := buildTestTransaction(testHash("t", 1), domain.TransactionTypeInitFT, "alice", "", 100,
		`{"symbol":"APPLE","name":"Apple"}`)
	require.NoError(t, store.CreateTransaction(ctx, txn))
	require.NotZero(t, txn.ID)

	t.Run("get by hash", func(t *testing.T) {
		found, err := store.GetTransactionByHash(ctx, txn.TransactionHash)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, txn.ID, found.ID)
		assert.Equal(t, domain.TransactionTypeInitFT, found.TransactionType)
		assert.Equal(t, domain.TransactionStatusRaw, found.Status)
		assert.False(t, found.IsMined)
		assert.Nil(t, found.BlockNumber)
		assert.Nil(t, found.FailureReason)
		assert.JSONEq(t, `{"symbol":"APPLE","name":"Apple"}`, string(found.Data))
	})

	t.Run("get by id", func(t *testing.T) {
		found, err := store.GetTransactionByID(ctx, txn.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, txn.TransactionHash, found.TransactionHash)
	})

	t.Run("missing transaction is nil", func(t *testing.T) {
		found, err := store.GetTransactionByHash(ctx, testHash("t", 999))
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("duplicate hash is a conflict", func(t *testing.T) {
		dup := buildTestTransaction(txn.TransactionHash, domain.TransactionTypeMintFT, "alice", "bob", 1, `{}`)
		err := store.WithinTransaction(ctx, func(ctx context.Context) error {
			return store.CreateTransaction(ctx, dup)
		})
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("delete", func(t *testing.T) {
		deleted, err := store.DeleteTransaction(ctx, txn.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = store.DeleteTransaction(ctx, txn.ID)
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}

func testListTransactionsFilters(t *testing.T, store Store) {
	ctx := context.Background()

	block := buildTestBlock(testHash("l", 1), domain.GENESIS_PARENT_HASH, "miner")
	require.NoError(t, store.CreateBlock(ctx, block))

	pending := buildTestTransaction(testHash("l", 2), domain.TransactionTypeTransferFT, "alice", "bob", 5, `{"token_address":"0x1"}`)
	require.NoError(t, store.CreateTransaction(ctx, pending))

	mined := buildTestTransaction(testHash("l", 3), domain.TransactionTypeTransferFT, "bob", "carol", 5, `{"token_address":"0x1"}`)
	require.NoError(t, store.CreateTransaction(ctx, mined))
	_, err := store.UpdateTransaction(ctx, mined.ID, UpdateTransactionInput{
		BlockNumber: int64Ptr(block.BlockNumber),
		IsMined:     boolPtr(true),
		Status:      statusPtr(domain.TransactionStatusSuccess),
	})
	require.NoError(t, err)

	tests := []struct {
		name           string
		filter         TransactionQueryFilter
		expectedHashes []string
	}{
		{
			name:           "no filters lists newest first",
			filter:         TransactionQueryFilter{Limit: 10},
			expectedHashes: []string{mined.TransactionHash, pending.TransactionHash},
		},
		{
			name:           "unmined only",
			filter:         TransactionQueryFilter{IsMined: boolPtr(false), Limit: 10},
			expectedHashes: []string{pending.TransactionHash},
		},
		{
			name:           "mined only",
			filter:         TransactionQueryFilter{IsMined: boolPtr(true), Limit: 10},
			expectedHashes: []string{mined.TransactionHash},
		},
		{
			name:           "by status",
			filter:         TransactionQueryFilter{Status: statusPtr(domain.TransactionStatusRaw), Limit: 10},
			expectedHashes: []string{pending.TransactionHash},
		},
		{
			name:           "by sender",
			filter:         TransactionQueryFilter{FromAddress: "bob", Limit: 10},
			expectedHashes: []string{mined.TransactionHash},
		},
		{
			name:           "by recipient",
			filter:         TransactionQueryFilter{ToAddress: "bob", Limit: 10},
			expectedHashes: []string{pending.TransactionHash},
		},
		{
			name:           "by block",
			filter:         TransactionQueryFilter{BlockNumber: int64Ptr(block.BlockNumber), Limit: 10},
			expectedHashes: []string{mined.TransactionHash},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txns, total, err := store.ListTransactions(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, uint64(len(tt.expectedHashes)), total)

			hashes := make([]string, 0, len(txns))
			for _, txn := range txns {
				hashes = append(hashes, txn.TransactionHash)
			}
			assert.Equal(t, tt.expectedHashes, hashes)
		})
	}

	t.Run("total counts beyond the page", func(t *testing.T) {
		txns, total, err := store.ListTransactions(ctx, TransactionQueryFilter{Limit: 1})
		require.NoError(t, err)
		assert.Equal(t, uint64(2), total)
		assert.Len(t, txns, 1)
	})
}

func testPendingTransactions(t *testing.T, store Store) {
	ctx := context.Background()

	var created []*schema.Transaction
	for i := 1; i <= 3; i++ {
		txn := buildTestTransaction(testHash("p", i), domain.TransactionTypeMintFT, "alice", "bob", int64(i), `{"token_address":"0x1"}`)
		require.NoError(t, store.CreateTransaction(ctx, txn))
		created = append(created, txn)
	}

	_, err := store.UpdateTransaction(ctx, created[0].ID, UpdateTransactionInput{
		IsMined: boolPtr(true),
		Status:  statusPtr(domain.TransactionStatusFail),
	})
	require.NoError(t, err)

	err = store.WithinTransaction(ctx, func(ctx context.Context) error {
		pending, err := store.ListPendingTransactionsForUpdate(ctx, 2)
		require.NoError(t, err)
		require.Len(t, pending, 2)
		assert.Equal(t, created[1].ID, pending[0].ID)
		assert.Equal(t, created[2].ID, pending[1].ID)

		pending, err = store.ListPendingTransactionsForUpdate(ctx, 1)
		require.NoError(t, err)
		require.Len(t, pending, 1)
		assert.Equal(t, created[1].ID, pending[0].ID)
		return nil
	})
	require.NoError(t, err)
}

func testUpdateTransaction(t *testing.T, store Store) {
	ctx := context.Background()

	block := buildTestBlock(testHash("u", 1), domain.GENESIS_PARENT_HASH, "miner")
	require.NoError(t, store.CreateBlock(ctx, block))

	txn := buildTestTransaction(testHash("u", 2), domain.TransactionTypeBurnFT, "alice", "", 1000, `{"token_address":"0x1"}`)
	require.NoError(t, store.CreateTransaction(ctx, txn))

	t.Run("empty update returns the current row", func(t *testing.T) {
		updated, err := store.UpdateTransaction(ctx, txn.ID, UpdateTransactionInput{})
		require.NoError(t, err)
		assert.Equal(t, domain.TransactionStatusRaw, updated.Status)
	})

	t.Run("finalize as failed", func(t *testing.T) {
		updated, err := store.UpdateTransaction(ctx, txn.ID, UpdateTransactionInput{
			BlockNumber:   int64Ptr(block.BlockNumber),
			IsMined:       boolPtr(true),
			Status:        statusPtr(domain.TransactionStatusFail),
			FailureReason: func() *string { s := "insufficient balance in sender's wallet"; return &s }(),
		})
		require.NoError(t, err)
		assert.True(t, updated.IsMined)
		assert.Equal(t, domain.TransactionStatusFail, updated.Status)
		require.NotNil(t, updated.BlockNumber)
		assert.Equal(t, block.BlockNumber, *updated.BlockNumber)
		require.NotNil(t, updated.FailureReason)
		assert.Equal(t, "insufficient balance in sender's wallet", *updated.FailureReason)
	})

	t.Run("mined transaction cannot change again", func(t *testing.T) {
		_, err := store.UpdateTransaction(ctx, txn.ID, UpdateTransactionInput{
			Status: statusPtr(domain.TransactionStatusSuccess),
		})
		assert.ErrorIs(t, err, domain.ErrTransactionAlreadyMined)

		found, err := store.GetTransactionByID(ctx, txn.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.TransactionStatusFail, found.Status)
	})

	t.Run("missing transaction", func(t *testing.T) {
		_, err := store.UpdateTransaction(ctx, txn.ID+1000, UpdateTransactionInput{IsMined: boolPtr(true)})
		assert.ErrorIs(t, err, domain.ErrTransactionNotFound)
	})
}

// =============================================================================
// Test: Fungible tokens
// =============================================================================

func testFungibleTokens(t *testing.T, store Store) {
	ctx := context.Background()

	apple := buildTestToken(testAddress(1), "alice", 100)
	pear := buildTestToken(testAddress(2), "bob", 5)
	require.NoError(t, store.CreateFungibleToken(ctx, apple))
	require.NoError(t, store.CreateFungibleToken(ctx, pear))

	t.Run("get", func(t *testing.T) {
		token, err := store.GetFungibleToken(ctx, apple.Address)
		require.NoError(t, err)
		require.NotNil(t, token)
		assert.Equal(t, int64(100), token.TotalSupply)
		assert.Equal(t, "alice", token.OwnerAddress)
		assert.Equal(t, int32(0), token.Decimals)

		missing, err := store.GetFungibleToken(ctx, testAddress(99))
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("update supply inside a unit", func(t *testing.T) {
		err := store.WithinTransaction(ctx, func(ctx context.Context) error {
			token, err := store.GetFungibleTokenForUpdate(ctx, apple.Address)
			if err != nil {
				return err
			}
			return store.UpdateFungibleTokenSupply(ctx, UpdateFungibleTokenSupplyInput{
				Address:         token.Address,
				TotalSupply:     token.TotalSupply + 50,
				BlockNumber:     2,
				TransactionHash: testHash("aa", 2),
			})
		})
		require.NoError(t, err)

		token, err := store.GetFungibleToken(ctx, apple.Address)
		require.NoError(t, err)
		assert.Equal(t, int64(150), token.TotalSupply)
		assert.Equal(t, int64(2), token.BlockNumber)
		assert.Equal(t, testHash("aa", 2), token.TransactionHash)
	})

	t.Run("negative supply violates the check constraint", func(t *testing.T) {
		err := store.WithinTransaction(ctx, func(ctx context.Context) error {
			return store.UpdateFungibleTokenSupply(ctx, UpdateFungibleTokenSupplyInput{
				Address:         pear.Address,
				TotalSupply:     -1,
				BlockNumber:     2,
				TransactionHash: testHash("aa", 3),
			})
		})
		assert.Error(t, err)
	})

	t.Run("update missing token", func(t *testing.T) {
		err := store.UpdateFungibleTokenSupply(ctx, UpdateFungibleTokenSupplyInput{Address: testAddress(99)})
		assert.ErrorIs(t, err, domain.ErrTokenNotFound)
	})

	t.Run("duplicate address is a conflict", func(t *testing.T) {
		err := store.WithinTransaction(ctx, func(ctx context.Context) error {
			return store.CreateFungibleToken(ctx, buildTestToken(apple.Address, "carol", 1))
		})
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("list by owner", func(t *testing.T) {
		tokens, total, err := store.ListFungibleTokens(ctx, FungibleTokenQueryFilter{OwnerAddress: "bob", Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, uint64(1), total)
		require.Len(t, tokens, 1)
		assert.Equal(t, pear.Address, tokens[0].Address)

		_, total, err = store.ListFungibleTokens(ctx, FungibleTokenQueryFilter{Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, uint64(2), total)
	})
}

// =============================================================================
// Test: Wallets
// =============================================================================

func testWallets(t *testing.T, store Store) {
	ctx := context.Background()

	token := buildTestToken(testAddress(10), "alice", 100)
	require.NoError(t, store.CreateFungibleToken(ctx, token))
	other := buildTestToken(testAddress(11), "alice", 100)
	require.NoError(t, store.CreateFungibleToken(ctx, other))

	t.Run("missing wallet is nil", func(t *testing.T) {
		wallet, err := store.GetWallet(ctx, "alice", token.Address)
		require.NoError(t, err)
		assert.Nil(t, wallet)
	})

	t.Run("upsert inserts then overwrites", func(t *testing.T) {
		err := store.UpsertWallet(ctx, &schema.Wallet{
			Address:         "alice",
			TokenAddress:    token.Address,
			Balance:         100,
			BlockNumber:     1,
			TransactionHash: testHash("w", 1),
		})
		require.NoError(t, err)

		err = store.UpsertWallet(ctx, &schema.Wallet{
			Address:         "alice",
			TokenAddress:    token.Address,
			Balance:         80,
			BlockNumber:     2,
			TransactionHash: testHash("w", 2),
		})
		require.NoError(t, err)

		wallet, err := store.GetWalletForUpdate(ctx, "alice", token.Address)
		require.NoError(t, err)
		require.NotNil(t, wallet)
		assert.Equal(t, int64(80), wallet.Balance)
		assert.Equal(t, int64(2), wallet.BlockNumber)
		assert.Equal(t, testHash("w", 2), wallet.TransactionHash)
	})

	t.Run("zero balance is kept", func(t *testing.T) {
		err := store.UpsertWallet(ctx, &schema.Wallet{
			Address:         "bob",
			TokenAddress:    token.Address,
			Balance:         0,
			BlockNumber:     3,
			TransactionHash: testHash("w", 3),
		})
		require.NoError(t, err)

		wallet, err := store.GetWallet(ctx, "bob", token.Address)
		require.NoError(t, err)
		require.NotNil(t, wallet)
		assert.Zero(t, wallet.Balance)
	})

	t.Run("wallet of an unknown token is rejected", func(t *testing.T) {
		err := store.WithinTransaction(ctx, func(ctx context.Context) error {
			return store.UpsertWallet(ctx, &schema.Wallet{
				Address:         "alice",
				TokenAddress:    testAddress(99),
				Balance:         1,
				BlockNumber:     1,
				TransactionHash: testHash("w", 4),
			})
		})
		assert.Error(t, err)
	})

	require.NoError(t, store.UpsertWallet(ctx, &schema.Wallet{
		Address:         "alice",
		TokenAddress:    other.Address,
		Balance:         7,
		BlockNumber:     1,
		TransactionHash: testHash("w", 5),
	}))

	t.Run("list filters", func(t *testing.T) {
		wallets, total, err := store.ListWallets(ctx, WalletQueryFilter{Address: "alice", Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, uint64(2), total)
		assert.Len(t, wallets, 2)

		wallets, total, err = store.ListWallets(ctx, WalletQueryFilter{TokenAddress: token.Address, Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, uint64(2), total)
		require.Len(t, wallets, 2)
		assert.Equal(t, "alice", wallets[0].Address)
		assert.Equal(t, "bob", wallets[1].Address)

		wallets, total, err = store.ListWallets(ctx, WalletQueryFilter{Address: "alice", TokenAddress: other.Address, Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, uint64(1), total)
		require.Len(t, wallets, 1)
		assert.Equal(t, int64(7), wallets[0].Balance)
	})
}

// =============================================================================
// Test: Service context
// =============================================================================

func testServiceContext(t *testing.T, store Store) {
	ctx := context.Background()

	sc, err := store.GetServiceContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, int16(schema.SERVICE_CONTEXT_ID), sc.ID)
	assert.False(t, sc.Maintenance)

	sc, err = store.SetMaintenance(ctx, true)
	require.NoError(t, err)
	assert.True(t, sc.Maintenance)

	sc, err = store.GetServiceContext(ctx)
	require.NoError(t, err)
	assert.True(t, sc.Maintenance)

	sc, err = store.SetMaintenance(ctx, false)
	require.NoError(t, err)
	assert.False(t, sc.Maintenance)
}

// =============================================================================
// Test: WithinTransaction
// =============================================================================

func testWithinTransaction(t *testing.T, store Store) {
	ctx := context.Background()
	errAbort := errors.New("abort")

	t.Run("error rolls back every write of the unit", func(t *testing.T) {
		token := buildTestToken(testAddress(20), "alice", 10)
		err := store.WithinTransaction(ctx, func(ctx context.Context) error {
			if err := store.CreateFungibleToken(ctx, token); err != nil {
				return err
			}
			if err := store.UpsertWallet(ctx, &schema.Wallet{
				Address:         "alice",
				TokenAddress:    token.Address,
				Balance:         10,
				BlockNumber:     1,
				TransactionHash: testHash("x", 1),
			}); err != nil {
				return err
			}
			return errAbort
		})
		assert.ErrorIs(t, err, errAbort)

		found, err := store.GetFungibleToken(ctx, token.Address)
		require.NoError(t, err)
		assert.Nil(t, found)
		wallet, err := store.GetWallet(ctx, "alice", token.Address)
		require.NoError(t, err)
		assert.Nil(t, wallet)
	})

	t.Run("nested failure keeps the outer unit", func(t *testing.T) {
		outer := buildTestToken(testAddress(21), "alice", 10)
		inner := buildTestToken(testAddress(22), "alice", 10)

		err := store.WithinTransaction(ctx, func(ctx context.Context) error {
			if err := store.CreateFungibleToken(ctx, outer); err != nil {
				return err
			}
			nestedErr := store.WithinTransaction(ctx, func(ctx context.Context) error {
				if err := store.CreateFungibleToken(ctx, inner); err != nil {
					return err
				}
				return errAbort
			})
			assert.ErrorIs(t, nestedErr, errAbort)
			return nil
		})
		require.NoError(t, err)

		found, err := store.GetFungibleToken(ctx, outer.Address)
		require.NoError(t, err)
		assert.NotNil(t, found)
		found, err = store.GetFungibleToken(ctx, inner.Address)
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}
