package rest

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-ledger/internal/api/shared/dto"
	"github.com/feral-file/ff-ledger/internal/api/shared/executor"
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// CreateTransaction submits a transaction for mining
	// POST /api/v1/transactions
	CreateTransaction(c *gin.Context)

	// ListTransactions retrieves transactions with optional filters
	// GET /api/v1/transactions?is_mined=<bool>&status=<status>&from_address=<address>&to_address=<address>&limit=<limit>&offset=<offset>
	ListTransactions(c *gin.Context)

	// GetTransaction retrieves a single transaction by its hash
	// GET /api/v1/transactions/:hash
	GetTransaction(c *gin.Context)

	// DeleteTransaction removes a transaction by its id
	// DELETE /api/v1/transactions/:id
	DeleteTransaction(c *gin.Context)

	// CreateBlock mines a block out of the pending transactions
	// POST /api/v1/blocks
	CreateBlock(c *gin.Context)

	// ListBlocks retrieves blocks newest first
	// GET /api/v1/blocks?miner_address=<address>&limit=<limit>&offset=<offset>
	ListBlocks(c *gin.Context)

	// GetBlock retrieves a single block by its number
	// GET /api/v1/blocks/:number
	GetBlock(c *gin.Context)

	// DeleteBlock removes a block by its number
	// DELETE /api/v1/blocks/:number
	DeleteBlock(c *gin.Context)

	// ListWallets retrieves wallets with optional filters
	// GET /api/v1/wallets?address=<address>&token_address=<address>&limit=<limit>&offset=<offset>
	ListWallets(c *gin.Context)

	// GetWallet retrieves the wallet of an address for a token
	// GET /api/v1/wallets/:address/:token_address
	GetWallet(c *gin.Context)

	// ListFungibleTokens retrieves fungible tokens with optional filters
	// GET /api/v1/fts?owner_address=<address>&limit=<limit>&offset=<offset>
	ListFungibleTokens(c *gin.Context)

	// GetFungibleToken retrieves a fungible token by its address
	// GET /api/v1/fts/:address
	GetFungibleToken(c *gin.Context)

	// GetMaintenanceStatus returns the maintenance status (requires authentication)
	// GET /admin/maintenance/status
	GetMaintenanceStatus(c *gin.Context)

	// UpdateMaintenanceStatus turns maintenance mode on or off (requires authentication)
	// POST /admin/maintenance/status
	UpdateMaintenanceStatus(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(exec executor.Executor) Handler {
	return &handler{
		executor: exec,
	}
}

func (h *handler) CreateTransaction(c *gin.Context) {
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	txn, err := h.executor.CreateTransaction(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, txn)
}

func (h *handler) ListTransactions(c *gin.Context) {
	queryParams, err := ParseListTransactionsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.GetTransactions(
		c.Request.Context(),
		queryParams.IsMined,
		queryParams.status,
		queryParams.FromAddress,
		queryParams.ToAddress,
		&queryParams.Limit,
		&queryParams.Offset,
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) GetTransaction(c *gin.Context) {
	hash := c.Param("hash")
	if hash == "" {
		respondBadRequest(c, "Transaction hash is required")
		return
	}

	txn, err := h.executor.GetTransaction(c.Request.Context(), hash)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, txn)
}

func (h *handler) DeleteTransaction(c *gin.Context) {
	id, ok := parseInt64Param(c, "id")
	if !ok {
		respondBadRequest(c, "Invalid transaction id")
		return
	}

	if err := h.executor.DeleteTransaction(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *handler) CreateBlock(c *gin.Context) {
	var req dto.CreateBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, err)
		return
	}

	block, err := h.executor.CreateBlock(c.Request.Context(), req.MinerAddress)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, block)
}

func (h *handler) ListBlocks(c *gin.Context) {
	queryParams, err := ParseListBlocksQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.GetBlocks(
		c.Request.Context(),
		queryParams.MinerAddress,
		&queryParams.Limit,
		&queryParams.Offset,
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) GetBlock(c *gin.Context) {
	number, ok := parseInt64Param(c, "number")
	if !ok {
		respondBadRequest(c, "Invalid block number")
		return
	}

	block, err := h.executor.GetBlock(c.Request.Context(), number)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, block)
}

func (h *handler) DeleteBlock(c *gin.Context) {
	number, ok := parseInt64Param(c, "number")
	if !ok {
		respondBadRequest(c, "Invalid block number")
		return
	}

	if err := h.executor.DeleteBlock(c.Request.Context(), number); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *handler) ListWallets(c *gin.Context) {
	queryParams, err := ParseListWalletsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.GetWallets(
		c.Request.Context(),
		queryParams.Address,
		queryParams.TokenAddress,
		&queryParams.Limit,
		&queryParams.Offset,
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) GetWallet(c *gin.Context) {
	wallet, err := h.executor.GetWallet(c.Request.Context(), c.Param("address"), c.Param("token_address"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, wallet)
}

func (h *handler) ListFungibleTokens(c *gin.Context) {
	queryParams, err := ParseListFungibleTokensQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.GetFungibleTokens(
		c.Request.Context(),
		queryParams.OwnerAddress,
		&queryParams.Limit,
		&queryParams.Offset,
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) GetFungibleToken(c *gin.Context) {
	token, err := h.executor.GetFungibleToken(c.Request.Context(), c.Param("address"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, token)
}

func (h *handler) GetMaintenanceStatus(c *gin.Context) {
	status, err := h.executor.GetMaintenance(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}

func (h *handler) UpdateMaintenanceStatus(c *gin.Context) {
	var req dto.UpdateMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, err)
		return
	}

	status, err := h.executor.SetMaintenance(c.Request.Context(), *req.Maintenance)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "ff-ledger-api",
	})
}
