package explorer

import (
	"context"

	"github.com/kelsos/oklink-go/client"
	"github.com/kelsos/oklink-go/models"
)

// TokenListOptions filters the token list
type TokenListOptions struct {
	ProtocolType         models.ProtocolType
	TokenContractAddress string
	StartTime            string
	EndTime              string
	OrderBy              string
	Pagination
}

func (o TokenListOptions) apply(params *client.Params) {
	params.SetOptional("protocolType", o.ProtocolType.String())
	params.SetOptional("tokenContractAddress", o.TokenContractAddress)
	params.SetOptional("startTime", o.StartTime)
	params.SetOptional("endTime", o.EndTime)
	params.SetOptional("orderBy", o.OrderBy)
	o.Pagination.apply(params)
}

// PositionOptions filters token holder queries
type PositionOptions struct {
	HolderAddress string
	Pagination
}

func (o PositionOptions) apply(params *client.Params) {
	params.SetOptional("holderAddress", o.HolderAddress)
	o.Pagination.apply(params)
}

// TokenTransferOptions bounds token transfers by amount
type TokenTransferOptions struct {
	MaxAmount string
	MinAmount string
	Pagination
}

func (o TokenTransferOptions) apply(params *client.Params) {
	params.SetOptional("maxAmount", o.MaxAmount)
	params.SetOptional("minAmount", o.MinAmount)
	o.Pagination.apply(params)
}

// TokenStatsOptions orders token transaction statistics
type TokenStatsOptions struct {
	OrderBy string
	Pagination
}

func (o TokenStatsOptions) apply(params *client.Params) {
	params.SetOptional("orderBy", o.OrderBy)
	o.Pagination.apply(params)
}

// TokenList lists the tokens issued on the chain
func (c *Client) TokenList(ctx context.Context, opts TokenListOptions) (*models.TokenListResponse, error) {
	params := c.params()
	opts.apply(params)
	return client.Get[models.Items[models.TokenInfoPage]](ctx, c.api, "/token/token-list", params)
}

// TokenPositions lists the holders of a token
func (c *Client) TokenPositions(ctx context.Context, tokenContractAddress string, opts PositionOptions) (*models.TokenPositionsResponse, error) {
	params := c.params().Set("tokenContractAddress", tokenContractAddress)
	opts.apply(params)
	return client.Get[models.Items[models.TokenPositionPage]](ctx, c.api, "/token/position-list", params)
}

// TokenPositionStatistics returns holder statistics of a token
func (c *Client) TokenPositionStatistics(ctx context.Context, tokenContractAddress string, opts PositionOptions) (*models.TokenPositionsResponse, error) {
	params := c.params().Set("tokenContractAddress", tokenContractAddress)
	opts.apply(params)
	return client.Get[models.Items[models.TokenPositionPage]](ctx, c.api, "/token/position-statistics", params)
}

// TokenTransfers lists the transfers of a token
func (c *Client) TokenTransfers(ctx context.Context, tokenContractAddress string, opts TokenTransferOptions) (*models.TokenTransfersResponse, error) {
	params := c.params().Set("tokenContractAddress", tokenContractAddress)
	opts.apply(params)
	return client.Get[models.Items[models.TokenTransferPage]](ctx, c.api, "/token/transaction-list", params)
}

// BatchTokenTransactions lists the transfers of a token within a block range
func (c *Client) BatchTokenTransactions(ctx context.Context, tokenContractAddress, startBlockHeight, endBlockHeight string, page Pagination) (*models.TokenTransfersResponse, error) {
	params := c.params().
		Set("tokenContractAddress", tokenContractAddress).
		Set("startBlockHeight", startBlockHeight).
		Set("endBlockHeight", endBlockHeight)
	page.apply(params)
	return client.Get[models.Items[models.TokenTransferPage]](ctx, c.api, "/token/token-transaction-list-multi", params)
}

// TokenSupplyHistory returns the supply of a token at a block height
func (c *Client) TokenSupplyHistory(ctx context.Context, tokenContractAddress, height string) (*models.SupplyHistoryResponse, error) {
	params := c.params().
		Set("tokenContractAddress", tokenContractAddress).
		Set("height", height)
	return client.Get[models.Items[models.SupplyAtHeight]](ctx, c.api, "/token/supply-history", params)
}

// TokenTransactionStatistics ranks addresses by their transfers of a token
func (c *Client) TokenTransactionStatistics(ctx context.Context, tokenContractAddress string, opts TokenStatsOptions) (*models.TokenStatsResponse, error) {
	params := c.params().Set("tokenContractAddress", tokenContractAddress)
	opts.apply(params)
	return client.Get[models.Items[models.TokenStatsPage]](ctx, c.api, "/token/transaction-stats", params)
}
