package explorer

import (
	"context"

	"github.com/kelsos/oklink-go/client"
	"github.com/kelsos/oklink-go/models"
)

// BlockTransactionsOptions selects the block whose transactions are listed
type BlockTransactionsOptions struct {
	BlockHash string
	Height    string
	Pagination
}

func (o BlockTransactionsOptions) apply(params *client.Params) {
	params.SetOptional("blockHash", o.BlockHash)
	params.SetOptional("height", o.Height)
	o.Pagination.apply(params)
}

// LargeTransactionsOptions filters large transfers
type LargeTransactionsOptions struct {
	Type   string
	Height string
	Pagination
}

func (o LargeTransactionsOptions) apply(params *client.Params) {
	params.SetOptional("type", o.Type)
	params.SetOptional("height", o.Height)
	o.Pagination.apply(params)
}

// BlockTransactions lists transactions of the chain, narrowed to a block
// by hash or height
func (c *Client) BlockTransactions(ctx context.Context, opts BlockTransactionsOptions) (*models.ChainTransactionsResponse, error) {
	params := c.params()
	opts.apply(params)
	return client.Get[models.Items[models.ChainTransactionPage]](ctx, c.api, "/transaction/transaction-list", params)
}

// LargeTransactions lists large value transfers
func (c *Client) LargeTransactions(ctx context.Context, opts LargeTransactionsOptions) (*models.ChainTransactionsResponse, error) {
	params := c.params()
	opts.apply(params)
	return client.Get[models.Items[models.ChainTransactionPage]](ctx, c.api, "/transaction/large-transaction-list", params)
}

// UnconfirmedTransactions lists transactions waiting in the mempool
func (c *Client) UnconfirmedTransactions(ctx context.Context, page Pagination) (*models.ChainTransactionsResponse, error) {
	params := c.params()
	page.apply(params)
	return client.Get[models.Items[models.ChainTransactionPage]](ctx, c.api, "/transaction/unconfirmed-transaction-list", params)
}

// InternalTransactionDetails lists the internal transactions of txID
func (c *Client) InternalTransactionDetails(ctx context.Context, txID string, page Pagination) (*models.InternalTransactionsResponse, error) {
	params := c.params().Set("txId", txID)
	page.apply(params)
	return client.Get[models.Items[models.InternalTransactionPage]](ctx, c.api, "/transaction/internal-transaction-detail", params)
}

// TokenTransactionDetails lists the token transfers of txID
func (c *Client) TokenTransactionDetails(ctx context.Context, txID string, opts ProtocolPageOptions) (*models.TokenTransfersResponse, error) {
	params := c.params().Set("txId", txID)
	opts.apply(params)
	return client.Get[models.Items[models.TokenTransferPage]](ctx, c.api, "/transaction/token-transaction-detail", params)
}

// TransactionDetails returns the full detail of txID
func (c *Client) TransactionDetails(ctx context.Context, txID string) (*models.TransactionDetailResponse, error) {
	params := c.params().Set("txId", txID)
	return client.Get[models.Items[models.TransactionDetail]](ctx, c.api, "/transaction/transaction-fills", params)
}
