package api

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// GetMarketHours fetches the hours of a single market.
// Exactly one of authorization and apiKey must be set. A nil date lets the
// server pick the current trading date.
func (c *Client) GetMarketHours(ctx context.Context, authorization, apiKey, market string, date *string) (MarketHoursResult, error) {
	query := url.Values{}
	if date != nil {
		query.Set("date", *date)
	}

	var resp MarketHoursResult
	path := "/marketdata/" + url.PathEscape(market) + "/hours"
	if err := c.get(ctx, path, query, authorization, apiKey, &resp); err != nil {
		return nil, fmt.Errorf("get market hours %s: %w", market, err)
	}

	return resp, nil
}

// GetMultiMarketHours fetches the hours of several markets in one request.
// The markets are sent comma-separated.
func (c *Client) GetMultiMarketHours(ctx context.Context, authorization, apiKey string, markets []string, date *string) (MarketHoursResult, error) {
	query := url.Values{}
	query.Set("markets", strings.Join(markets, ","))
	if date != nil {
		query.Set("date", *date)
	}

	var resp MarketHoursResult
	if err := c.get(ctx, "/marketdata/hours", query, authorization, apiKey, &resp); err != nil {
		return nil, fmt.Errorf("get market hours %s: %w", query.Get("markets"), err)
	}

	return resp, nil
}
