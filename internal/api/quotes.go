package api

import (
	"context"
	"net/url"
)

// GetQuote fetches the live quote for a symbol.
func (c *Client) GetQuote(ctx context.Context, symbol string) (*APIQuote, error) {
	query := url.Values{}
	query.Set("symbol", symbol)

	var quote APIQuote
	if err := c.get(ctx, "/quote", query, &quote); err != nil {
		return nil, err
	}
	return &quote, nil
}

// GetProfile fetches the company profile (including the logo URL) for a symbol.
func (c *Client) GetProfile(ctx context.Context, symbol string) (*APIProfile, error) {
	query := url.Values{}
	query.Set("symbol", symbol)

	var profile APIProfile
	if err := c.get(ctx, "/stock/profile", query, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}
