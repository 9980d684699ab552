package rest

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-ledger/internal/api/shared/constants"
	"github.com/feral-file/ff-ledger/internal/domain"
)

// PaginationQueryParams holds the pagination parameters shared by list endpoints
type PaginationQueryParams struct {
	Limit  int    `form:"limit,default=20"`
	Offset uint64 `form:"offset,default=0"`
}

func (p *PaginationQueryParams) normalize() {
	if p.Limit <= 0 {
		p.Limit = constants.DEFAULT_PAGE_SIZE
	}
	if p.Limit > constants.MAX_PAGE_SIZE {
		p.Limit = constants.MAX_PAGE_SIZE
	}
}

// ListTransactionsQueryParams holds query parameters for GET /transactions
type ListTransactionsQueryParams struct {
	IsMined     *bool  `form:"is_mined"`
	Status      string `form:"status"`
	FromAddress string `form:"from_address"`
	ToAddress   string `form:"to_address"`
	PaginationQueryParams

	status *domain.TransactionStatus
}

// ParseListTransactionsQuery parses query parameters for GET /transactions
func ParseListTransactionsQuery(c *gin.Context) (*ListTransactionsQueryParams, error) {
	var params ListTransactionsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	params.normalize()

	if params.Status != "" {
		status, err := domain.ParseTransactionStatus(params.Status)
		if err != nil {
			return nil, err
		}
		params.status = &status
	}
	params.FromAddress = strings.TrimSpace(params.FromAddress)
	params.ToAddress = strings.TrimSpace(params.ToAddress)

	return &params, nil
}

// ListBlocksQueryParams holds query parameters for GET /blocks
type ListBlocksQueryParams struct {
	MinerAddress string `form:"miner_address"`
	PaginationQueryParams
}

// ParseListBlocksQuery parses query parameters for GET /blocks
func ParseListBlocksQuery(c *gin.Context) (*ListBlocksQueryParams, error) {
	var params ListBlocksQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	params.normalize()
	params.MinerAddress = strings.TrimSpace(params.MinerAddress)
	return &params, nil
}

// ListWalletsQueryParams holds query parameters for GET /wallets
type ListWalletsQueryParams struct {
	Address      string `form:"address"`
	TokenAddress string `form:"token_address"`
	PaginationQueryParams
}

// ParseListWalletsQuery parses query parameters for GET /wallets
func ParseListWalletsQuery(c *gin.Context) (*ListWalletsQueryParams, error) {
	var params ListWalletsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	params.normalize()
	params.Address = strings.TrimSpace(params.Address)
	params.TokenAddress = strings.TrimSpace(params.TokenAddress)
	return &params, nil
}

// ListFungibleTokensQueryParams holds query parameters for GET /fts
type ListFungibleTokensQueryParams struct {
	OwnerAddress string `form:"owner_address"`
	PaginationQueryParams
}

// ParseListFungibleTokensQuery parses query parameters for GET /fts
func ParseListFungibleTokensQuery(c *gin.Context) (*ListFungibleTokensQueryParams, error) {
	var params ListFungibleTokensQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	params.normalize()
	params.OwnerAddress = strings.TrimSpace(params.OwnerAddress)
	return &params, nil
}

// parseInt64Param parses a positive integer path parameter
func parseInt64Param(c *gin.Context, name string) (int64, bool) {
	v, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}
