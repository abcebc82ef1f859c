package explorer

import (
	"context"

	"github.com/kelsos/oklink-go/client"
	"github.com/kelsos/oklink-go/models"
)

// ChainSummary returns the headline state of the chain
func (c *Client) ChainSummary(ctx context.Context) (*models.ChainSummaryResponse, error) {
	return client.Get[models.Items[models.ChainSummary]](ctx, c.api, "/blockchain/summary", c.params())
}

// BlockDetails returns the block at height
func (c *Client) BlockDetails(ctx context.Context, height string) (*models.BlockDetailResponse, error) {
	params := c.params().Set("height", height)
	return client.Get[models.Items[models.BlockDetail]](ctx, c.api, "/block/block-fills", params)
}
