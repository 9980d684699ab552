package ledger

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/feral-file/ff-ledger/internal/adapter"
	"github.com/feral-file/ff-ledger/internal/domain"
	"github.com/feral-file/ff-ledger/internal/logger"
	"github.com/feral-file/ff-ledger/internal/metrics"
	"github.com/feral-file/ff-ledger/internal/store"
	"github.com/feral-file/ff-ledger/internal/store/schema"
)

// STORAGE_FAILURE_REASON is recorded for failures that are not ledger rule violations
const STORAGE_FAILURE_REASON = "storage error"

// reasonErrors are the errors whose message is recorded as a failure reason
var reasonErrors = []error{
	domain.ErrNotFound,
	domain.ErrUnauthorized,
	domain.ErrInsufficientBalance,
	domain.ErrInsufficientSupply,
	domain.ErrInvalidAmount,
	domain.ErrInvalidTokenMetadata,
	domain.ErrInvalidPayload,
	domain.ErrUnsupportedTransactionType,
	domain.ErrTransactionAlreadyMined,
	domain.ErrConflict,
	domain.ErrValidation,
}

// failureReason returns the message stored with a FAIL outcome
func failureReason(err error) string {
	for _, known := range reasonErrors {
		if errors.Is(err, known) {
			return err.Error()
		}
	}
	return STORAGE_FAILURE_REASON
}

// CreateTransactionInput is a transaction submitted by a caller
type CreateTransactionInput struct {
	FromAddress     string
	ToAddress       string
	TransactionType string
	Value           int64
	Data            []byte
}

// TransactionService accepts transactions and executes them when they are mined
//
//go:generate mockgen -source=transaction.go -destination=../mocks/transaction_service.go -package=mocks -mock_names=TransactionService=MockTransactionService
type TransactionService interface {
	// Create validates a submitted transaction and stores it as RAW
	Create(ctx context.Context, input CreateTransactionInput) (*schema.Transaction, error)
	// Get returns a transaction by its hash
	Get(ctx context.Context, hash string) (*schema.Transaction, error)
	// List returns transactions matching the filter and the total number of matches
	List(ctx context.Context, filter store.TransactionQueryFilter) ([]schema.Transaction, uint64, error)
	// Delete removes a transaction by its id
	Delete(ctx context.Context, id int64) error
	// Update applies a partial update to an unmined transaction
	Update(ctx context.Context, id int64, input store.UpdateTransactionInput) (*schema.Transaction, error)
	// Execute applies a transaction to the ledger as part of block blockNumber and records its outcome.
	// A rejected transaction is recorded as FAIL and is not an error.
	Execute(ctx context.Context, blockNumber int64, txn *schema.Transaction) (*schema.Transaction, error)
}

type transactionService struct {
	transactor   store.Transactor
	transactions store.TransactionStore
	wallets      WalletLedger
	tokens       TokenRegistry
	ids          adapter.IDGenerator
	clock        adapter.Clock
	metrics      *metrics.Ledger
}

// NewTransactionService creates a new transaction service
func NewTransactionService(
	transactor store.Transactor,
	transactions store.TransactionStore,
	wallets WalletLedger,
	tokens TokenRegistry,
	ids adapter.IDGenerator,
	clock adapter.Clock,
	m *metrics.Ledger,
) TransactionService {
	return &transactionService{
		transactor:   transactor,
		transactions: transactions,
		wallets:      wallets,
		tokens:       tokens,
		ids:          ids,
		clock:        clock,
		metrics:      m,
	}
}

func (s *transactionService) Create(ctx context.Context, input CreateTransactionInput) (*schema.Transaction, error) {
	txType := domain.ParseTransactionType(input.TransactionType)

	_, err := domain.ValidateTransaction(domain.TransactionCandidate{
		Type:        txType,
		FromAddress: input.FromAddress,
		ToAddress:   input.ToAddress,
		Value:       input.Value,
		Data:        input.Data,
	})
	s.metrics.ObserveSubmit(string(txType), err)
	if err != nil {
		return nil, err
	}

	txn := &schema.Transaction{
		TransactionHash: s.ids.NewHash(),
		FromAddress:     input.FromAddress,
		ToAddress:       input.ToAddress,
		TransactionType: txType,
		Value:           input.Value,
		Data:            datatypes.JSON(input.Data),
		Timestamp:       s.clock.Now(),
		IsMined:         false,
		Status:          domain.TransactionStatusRaw,
	}
	if err := s.transactions.CreateTransaction(ctx, txn); err != nil {
		return nil, err
	}

	logger.DebugCtx(ctx, "Transaction accepted",
		zap.String("hash", txn.TransactionHash),
		zap.String("type", string(txn.TransactionType)),
	)
	return txn, nil
}

func (s *transactionService) Get(ctx context.Context, hash string) (*schema.Transaction, error) {
	txn, err := s.transactions.GetTransactionByHash(ctx, hash)
	if err != nil {
		return nil, err
	}
	if txn == nil {
		return nil, domain.ErrTransactionNotFound
	}
	return txn, nil
}

func (s *transactionService) List(ctx context.Context, filter store.TransactionQueryFilter) ([]schema.Transaction, uint64, error) {
	return s.transactions.ListTransactions(ctx, filter)
}

func (s *transactionService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.transactions.DeleteTransaction(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrTransactionNotFound
	}
	return nil
}

func (s *transactionService) Update(ctx context.Context, id int64, input store.UpdateTransactionInput) (*schema.Transaction, error) {
	return s.transactions.UpdateTransaction(ctx, id, input)
}

func (s *transactionService) Execute(ctx context.Context, blockNumber int64, txn *schema.Transaction) (*schema.Transaction, error) {
	if txn.IsMined {
		return nil, domain.ErrTransactionAlreadyMined
	}

	stamp := Stamp{BlockNumber: blockNumber, TransactionHash: txn.TransactionHash}
	applyErr := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		return s.apply(ctx, txn, stamp)
	})

	status := domain.TransactionStatusSuccess
	var reason *string
	if applyErr != nil {
		status = domain.TransactionStatusFail
		msg := failureReason(applyErr)
		reason = &msg

		logger.WarnCtx(ctx, "Transaction failed",
			zap.String("hash", txn.TransactionHash),
			zap.String("type", string(txn.TransactionType)),
			zap.Int64("block_number", blockNumber),
			zap.Error(applyErr),
		)
	}

	mined := true
	updated, err := s.transactions.UpdateTransaction(ctx, txn.ID, store.UpdateTransactionInput{
		BlockNumber:   &blockNumber,
		IsMined:       &mined,
		Status:        &status,
		FailureReason: reason,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record outcome of transaction %s: %w", txn.TransactionHash, err)
	}

	s.metrics.ObserveExecute(string(txn.TransactionType), string(status))
	return updated, nil
}

// apply performs the state changes of one transaction
func (s *transactionService) apply(ctx context.Context, txn *schema.Transaction, stamp Stamp) error {
	payload, err := domain.DecodePayload(txn.TransactionType, txn.Data)
	if err != nil {
		if errors.Is(err, domain.ErrUnsupportedTransactionType) || errors.Is(err, domain.ErrInvalidPayload) {
			return err
		}
		return fmt.Errorf("%w: %v", domain.ErrInvalidPayload, err)
	}

	switch p := payload.(type) {
	case domain.InitFTPayload:
		return s.initFT(ctx, txn, p, stamp)
	case domain.MintFTPayload:
		return s.mintFT(ctx, txn, p, stamp)
	case domain.BurnFTPayload:
		return s.burnFT(ctx, txn, p, stamp)
	case domain.TransferFTPayload:
		return s.transferFT(ctx, txn, p, stamp)
	default:
		return domain.ErrUnsupportedTransactionType
	}
}

func (s *transactionService) initFT(ctx context.Context, txn *schema.Transaction, p domain.InitFTPayload, stamp Stamp) error {
	token := &schema.FungibleToken{
		Address:         s.ids.NewAddress(),
		Symbol:          p.Symbol,
		Name:            p.Name,
		OwnerAddress:    txn.FromAddress,
		Decimals:        p.Decimals,
		TotalSupply:     txn.Value,
		BlockNumber:     stamp.BlockNumber,
		TransactionHash: stamp.TransactionHash,
	}
	if err := s.tokens.Create(ctx, token); err != nil {
		return err
	}

	return s.wallets.Upsert(ctx, &schema.Wallet{
		Address:         txn.FromAddress,
		TokenAddress:    token.Address,
		Balance:         txn.Value,
		BlockNumber:     stamp.BlockNumber,
		TransactionHash: stamp.TransactionHash,
	})
}

func (s *transactionService) mintFT(ctx context.Context, txn *schema.Transaction, p domain.MintFTPayload, stamp Stamp) error {
	if _, err := s.tokens.Mint(ctx, p.TokenAddress, txn.FromAddress, txn.Value, stamp); err != nil {
		return err
	}
	_, err := s.wallets.Credit(ctx, txn.ToAddress, p.TokenAddress, txn.Value, stamp)
	return err
}

func (s *transactionService) burnFT(ctx context.Context, txn *schema.Transaction, p domain.BurnFTPayload, stamp Stamp) error {
	wallet, err := s.wallets.GetForUpdate(ctx, txn.FromAddress, p.TokenAddress)
	if err != nil {
		return err
	}
	if _, err := s.tokens.Burn(ctx, p.TokenAddress, wallet, txn.Value, stamp); err != nil {
		return err
	}
	_, err = s.wallets.Debit(ctx, txn.FromAddress, p.TokenAddress, txn.Value, stamp)
	return err
}

func (s *transactionService) transferFT(ctx context.Context, txn *schema.Transaction, p domain.TransferFTPayload, stamp Stamp) error {
	if _, err := s.wallets.Debit(ctx, txn.FromAddress, p.TokenAddress, txn.Value, stamp); err != nil {
		return err
	}
	_, err := s.wallets.Credit(ctx, txn.ToAddress, p.TokenAddress, txn.Value, stamp)
	return err
}
