package explorer

import (
	"context"

	"github.com/kelsos/oklink-go/client"
	"github.com/kelsos/oklink-go/models"
)

// ProtocolPageOptions filters paged queries by token standard
type ProtocolPageOptions struct {
	ProtocolType models.ProtocolType
	Pagination
}

func (o ProtocolPageOptions) apply(params *client.Params) {
	params.SetOptional("protocolType", o.ProtocolType.String())
	o.Pagination.apply(params)
}

// BatchTokenTransactionOptions filters batch token transfer histories
type BatchTokenTransactionOptions struct {
	Pagination
	ProtocolType         models.ProtocolType
	TokenContractAddress string
	IsFromOrTo           string
}

func (o BatchTokenTransactionOptions) apply(params *client.Params) {
	o.Pagination.apply(params)
	params.SetOptional("protocolType", o.ProtocolType.String())
	params.SetOptional("tokenContractAddress", o.TokenContractAddress)
	params.SetOptional("isFromOrTo", o.IsFromOrTo)
}

// BatchAddressBalances returns the native balance of 1 to 100 addresses. An
// empty or longer list is a *client.ValidationError and nothing is sent.
func (c *Client) BatchAddressBalances(ctx context.Context, addresses []string) (*models.AddressBalancesResponse, error) {
	if err := client.CheckBatch("addresses", len(addresses), MaxBalanceAddresses); err != nil {
		return nil, err
	}
	params := c.params().Join("addresses", addresses)
	return client.Get[models.Items[models.AddressBalancePage]](ctx, c.api, "/address/balance-multi", params)
}

// BatchAddressTokenBalances returns token balances of 1 to 50 addresses. An
// empty or longer list is a *client.ValidationError and nothing is sent.
func (c *Client) BatchAddressTokenBalances(ctx context.Context, addresses []string, opts ProtocolPageOptions) (*models.MultiTokenBalancesResponse, error) {
	if err := client.CheckBatch("addresses", len(addresses), MaxTokenBalanceAddresses); err != nil {
		return nil, err
	}
	params := c.params().Join("addresses", addresses)
	opts.apply(params)
	return client.Get[models.Items[models.MultiTokenBalancePage]](ctx, c.api, "/address/token-balance-multi", params)
}

// BatchAddressNormalTransactions lists regular transactions of 1 to 50
// addresses. An empty or longer list is a *client.ValidationError.
func (c *Client) BatchAddressNormalTransactions(ctx context.Context, addresses []string, opts HistoryOptions) (*models.NormalTransactionsResponse, error) {
	if err := client.CheckBatch("addresses", len(addresses), MaxNormalTransactionAddresses); err != nil {
		return nil, err
	}
	params := c.params().Join("addresses", addresses)
	opts.apply(params)
	return client.Get[models.Items[models.NormalTransactionPage]](ctx, c.api, "/address/normal-transaction-list-multi", params)
}

// BatchAddressInternalTransactions lists internal transactions of 1 to 20
// addresses. An empty or longer list is a *client.ValidationError.
func (c *Client) BatchAddressInternalTransactions(ctx context.Context, addresses []string, opts HistoryOptions) (*models.InternalTransactionsResponse, error) {
	if err := client.CheckBatch("addresses", len(addresses), MaxInternalTransactionAddresses); err != nil {
		return nil, err
	}
	params := c.params().Join("addresses", addresses)
	opts.apply(params)
	return client.Get[models.Items[models.InternalTransactionPage]](ctx, c.api, "/address/internal-transaction-list-multi", params)
}

// BatchAddressTokenTransactions lists token transfers of 1 to 20 addresses
// within a block range. An empty or longer list is a *client.ValidationError.
func (c *Client) BatchAddressTokenTransactions(ctx context.Context, addresses []string, startBlockHeight, endBlockHeight string, opts BatchTokenTransactionOptions) (*models.TokenTransfersResponse, error) {
	if err := client.CheckBatch("addresses", len(addresses), MaxTokenTransactionAddresses); err != nil {
		return nil, err
	}
	params := c.params().
		Join("addresses", addresses).
		Set("startBlockHeight", startBlockHeight).
		Set("endBlockHeight", endBlockHeight)
	opts.apply(params)
	return client.Get[models.Items[models.TokenTransferPage]](ctx, c.api, "/address/token-transaction-list-multi", params)
}

// BatchTransactionDetails returns 1 to 20 transactions by id. An empty or
// longer list is a *client.ValidationError.
func (c *Client) BatchTransactionDetails(ctx context.Context, txIDs []string) (*models.TransactionsResponse, error) {
	if err := client.CheckBatch("txIds", len(txIDs), MaxTransactionIDs); err != nil {
		return nil, err
	}
	params := c.params().Join("txIds", txIDs)
	return client.Get[models.Items[models.NormalTransaction]](ctx, c.api, "/transaction/transaction-multi", params)
}

// BatchInternalTransactionDetails returns the internal transactions of 1 to 20
// transactions. An empty or longer list is a *client.ValidationError.
func (c *Client) BatchInternalTransactionDetails(ctx context.Context, txIDs []string) (*models.InternalTransactionListResponse, error) {
	if err := client.CheckBatch("txIds", len(txIDs), MaxTransactionIDs); err != nil {
		return nil, err
	}
	params := c.params().Join("txIds", txIDs)
	return client.Get[models.Items[models.InternalTransaction]](ctx, c.api, "/transaction/internal-transaction-multi", params)
}

// BatchTokenTransactionDetails returns the token transfers of 1 to 20
// transactions. An empty or longer list is a *client.ValidationError.
func (c *Client) BatchTokenTransactionDetails(ctx context.Context, txIDs []string, opts ProtocolPageOptions) (*models.TokenTransfersResponse, error) {
	if err := client.CheckBatch("txIds", len(txIDs), MaxTransactionIDs); err != nil {
		return nil, err
	}
	params := c.params().Join("txIds", txIDs)
	opts.apply(params)
	return client.Get[models.Items[models.TokenTransferPage]](ctx, c.api, "/transaction/token-transfer-multi", params)
}
