package api

import (
	"context"
	"net/url"
)

// GetInsiderTransactions fetches insider transactions for a symbol between
// from and to (inclusive, YYYY-MM-DD).
func (c *Client) GetInsiderTransactions(ctx context.Context, symbol, from, to string) ([]APIInsiderTransaction, error) {
	query := url.Values{}
	query.Set("symbol", symbol)
	if from != "" {
		query.Set("from", from)
	}
	if to != "" {
		query.Set("to", to)
	}

	var resp insiderResponse
	if err := c.get(ctx, "/stock/insider-transactions", query, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}
