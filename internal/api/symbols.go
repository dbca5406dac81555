package api

import (
	"context"
	"net/url"
)

// GetSymbols fetches the symbol directory for an exchange.
func (c *Client) GetSymbols(ctx context.Context, exchange string) ([]APISymbol, error) {
	query := url.Values{}
	query.Set("exchange", exchange)

	var symbols []APISymbol
	if err := c.get(ctx, "/stock/symbol", query, &symbols); err != nil {
		return nil, err
	}
	return symbols, nil
}
