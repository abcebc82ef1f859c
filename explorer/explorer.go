// Package explorer exposes one typed method per OKLink explorer endpoint.
//
// Every method takes the target chain from the Client, places the primary
// identifier and required arguments first, then appends optional arguments
// only when they are set. Option structs use the empty string for "absent".
package explorer

import (
	"github.com/kelsos/oklink-go/client"
)

// Batch ceilings enforced before a multi-entity request is sent
const (
	MaxBalanceAddresses             = 100
	MaxTokenBalanceAddresses        = 50
	MaxNormalTransactionAddresses   = 50
	MaxInternalTransactionAddresses = 20
	MaxTokenTransactionAddresses    = 20
	MaxTransactionIDs               = 20
)

// Client binds an APIClient to one chain
type Client struct {
	api   *client.APIClient
	chain string
}

// New binds api to its configured chain
func New(api *client.APIClient) *Client {
	return &Client{api: api, chain: api.ChainShortName()}
}

// NewWithKey creates a client for apiKey with default settings
func NewWithKey(apiKey string, opts ...client.Option) *Client {
	return New(client.New(apiKey, opts...))
}

// WithChain returns a copy of c that queries another chain
func (c *Client) WithChain(chainShortName string) *Client {
	return &Client{api: c.api, chain: chainShortName}
}

// Chain returns the chain short name sent with every request
func (c *Client) Chain() string {
	return c.chain
}

// Pagination selects a page of a paged endpoint
type Pagination struct {
	Page  string
	Limit string
}

func (p Pagination) apply(params *client.Params) {
	params.SetOptional("page", p.Page)
	params.SetOptional("limit", p.Limit)
}

func (c *Client) params() *client.Params {
	return client.NewParams(c.chain)
}
