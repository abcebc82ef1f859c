package explorer

import (
	"context"

	"github.com/kelsos/oklink-go/client"
	"github.com/kelsos/oklink-go/models"
)

// TokenBalanceOptions narrows token balance and token transaction queries
type TokenBalanceOptions struct {
	TokenContractAddress string
	Pagination
}

func (o TokenBalanceOptions) apply(params *client.Params) {
	params.SetOptional("tokenContractAddress", o.TokenContractAddress)
	o.Pagination.apply(params)
}

// TransactionListOptions filters the combined address transaction list
type TransactionListOptions struct {
	ProtocolType     models.ProtocolType
	Symbol           string
	StartBlockHeight string
	EndBlockHeight   string
	IsFromOrTo       string
	Pagination
}

func (o TransactionListOptions) apply(params *client.Params) {
	params.SetOptional("protocolType", o.ProtocolType.String())
	params.SetOptional("symbol", o.Symbol)
	params.SetOptional("startBlockHeight", o.StartBlockHeight)
	params.SetOptional("endBlockHeight", o.EndBlockHeight)
	params.SetOptional("isFromOrTo", o.IsFromOrTo)
	o.Pagination.apply(params)
}

// HistoryOptions filters normal and internal transaction histories
type HistoryOptions struct {
	StartBlockHeight string
	EndBlockHeight   string
	IsFromOrTo       string
	Pagination
}

func (o HistoryOptions) apply(params *client.Params) {
	params.SetOptional("startBlockHeight", o.StartBlockHeight)
	params.SetOptional("endBlockHeight", o.EndBlockHeight)
	params.SetOptional("isFromOrTo", o.IsFromOrTo)
	o.Pagination.apply(params)
}

// AddressSummary fetches the basic information of an address
func (c *Client) AddressSummary(ctx context.Context, address string) (*models.AddressSummaryResponse, error) {
	params := c.params().Set("address", address)
	return client.Get[models.Items[models.AddressSummary]](ctx, c.api, "/address/address-summary", params)
}

// EVMAddressInfo fetches the summary of an address on an EVM chain
func (c *Client) EVMAddressInfo(ctx context.Context, address string) (*models.AddressSummaryResponse, error) {
	params := c.params().Set("address", address)
	return client.Get[models.Items[models.AddressSummary]](ctx, c.api, "/address/information-evm", params)
}

// AddressActiveChains lists the chains on which address has been active
func (c *Client) AddressActiveChains(ctx context.Context, address string) (*models.ActiveChainsResponse, error) {
	params := c.params().Set("address", address)
	return client.Get[models.Items[models.ActiveChain]](ctx, c.api, "/address/address-active-chain", params)
}

// AddressTokenBalance lists the tokens of one standard held by address
func (c *Client) AddressTokenBalance(ctx context.Context, address string, protocolType models.ProtocolType, opts TokenBalanceOptions) (*models.TokenBalanceResponse, error) {
	params := c.params().
		Set("address", address).
		Set("protocolType", protocolType.String())
	opts.apply(params)
	return client.Get[models.Items[models.TokenBalancePage]](ctx, c.api, "/address/token-balance", params)
}

// AddressBalanceDetails lists token balances with price and value details
func (c *Client) AddressBalanceDetails(ctx context.Context, address string, protocolType models.ProtocolType, opts TokenBalanceOptions) (*models.TokenBalanceResponse, error) {
	params := c.params().
		Set("address", address).
		Set("protocolType", protocolType.String())
	opts.apply(params)
	return client.Get[models.Items[models.TokenBalancePage]](ctx, c.api, "/address/address-balance-fills", params)
}

// AddressBalanceHistory returns the balance of address at a block height,
// for the native token or for tokenContractAddress when set
func (c *Client) AddressBalanceHistory(ctx context.Context, address, height, tokenContractAddress string) (*models.BalanceHistoryResponse, error) {
	params := c.params().
		Set("address", address).
		Set("height", height).
		SetOptional("tokenContractAddress", tokenContractAddress)
	return client.Get[models.Items[models.BalanceAtHeight]](ctx, c.api, "/block/address-balance-history", params)
}

// AddressTransactions lists every kind of transaction of an address
func (c *Client) AddressTransactions(ctx context.Context, address string, opts TransactionListOptions) (*models.AddressTransactionsResponse, error) {
	params := c.params().Set("address", address)
	opts.apply(params)
	return client.Get[models.Items[models.AddressTransactionPage]](ctx, c.api, "/address/transaction-list", params)
}

// AddressNormalTransactions lists the regular transactions of an address
func (c *Client) AddressNormalTransactions(ctx context.Context, address string, opts HistoryOptions) (*models.NormalTransactionsResponse, error) {
	params := c.params().Set("address", address)
	opts.apply(params)
	return client.Get[models.Items[models.NormalTransactionPage]](ctx, c.api, "/address/normal-transaction-list", params)
}

// AddressInternalTransactions lists the internal transactions of an address
func (c *Client) AddressInternalTransactions(ctx context.Context, address string, opts HistoryOptions) (*models.InternalTransactionsResponse, error) {
	params := c.params().Set("address", address)
	opts.apply(params)
	return client.Get[models.Items[models.InternalTransactionPage]](ctx, c.api, "/address/internal-transaction-list", params)
}

// AddressTokenTransactions lists token transfers of an address
func (c *Client) AddressTokenTransactions(ctx context.Context, address string, protocolType models.ProtocolType, opts TokenBalanceOptions) (*models.TokenTransfersResponse, error) {
	params := c.params().
		Set("address", address).
		Set("protocolType", protocolType.String())
	opts.apply(params)
	return client.Get[models.Items[models.TokenTransferPage]](ctx, c.api, "/address/token-transaction-list", params)
}

// AddressEntityLabels returns the entity labels attached to address
func (c *Client) AddressEntityLabels(ctx context.Context, address string) (*models.EntityLabelsResponse, error) {
	params := c.params().Set("address", address)
	return client.Get[models.Items[models.EntityLabel]](ctx, c.api, "/address/entity-labels", params)
}

// RichList returns the top holders of the native token. When address is set
// only that address is looked up.
func (c *Client) RichList(ctx context.Context, address string) (*models.RichListResponse, error) {
	params := c.params().SetOptional("address", address)
	return client.Get[models.Items[models.RichListEntry]](ctx, c.api, "/address/rich-list", params)
}

// NativeTokenRanking pages through native token holders by amount
func (c *Client) NativeTokenRanking(ctx context.Context, page Pagination) (*models.NativeTokenRankingResponse, error) {
	params := c.params()
	page.apply(params)
	return client.Get[models.Items[models.NativeTokenPositionPage]](ctx, c.api, "/address/native-token-position-list", params)
}

// AddressUTXO lists the unspent outputs of an address on UTXO chains
func (c *Client) AddressUTXO(ctx context.Context, address string, page Pagination) (*models.UTXOResponse, error) {
	params := c.params().Set("address", address)
	page.apply(params)
	return client.Get[models.Items[models.UTXOPage]](ctx, c.api, "/address/utxo", params)
}
