package api

import (
	"context"
	"net/url"
)

// GetEconomicCalendar fetches macro calendar events between from and to
// (inclusive, YYYY-MM-DD).
func (c *Client) GetEconomicCalendar(ctx context.Context, from, to string) ([]APICalendarEvent, error) {
	query := url.Values{}
	if from != "" {
		query.Set("from", from)
	}
	if to != "" {
		query.Set("to", to)
	}

	var resp calendarResponse
	if err := c.get(ctx, "/calendar/economic", query, &resp); err != nil {
		return nil, err
	}
	return resp.Events, nil
}
