package tdameritrade

import (
	"context"
	"fmt"
)

// marketSelector picks the endpoint shape: the single-market path or the
// comma-joined multi-market query.
type marketSelector struct {
	markets []Market
	multi   bool
}

// GetMarketHours returns the hours of one market on date, or on the
// server's current trading date when date is nil. The default credential
// is used if configured.
func (c *Client) GetMarketHours(ctx context.Context, market Market, date *Date) (MarketHoursResult, error) {
	return c.GetMarketHoursWithToken(ctx, "", market, date)
}

// GetMarketHoursWithToken is GetMarketHours authenticated with refreshToken.
// An empty refreshToken falls back to the default credential.
func (c *Client) GetMarketHoursWithToken(ctx context.Context, refreshToken string, market Market, date *Date) (MarketHoursResult, error) {
	return c.fetchMarketHours(ctx, refreshToken, marketSelector{markets: []Market{market}}, date)
}

// GetMultiMarketHours returns the hours of several markets in one request.
func (c *Client) GetMultiMarketHours(ctx context.Context, markets []Market, date *Date) (MarketHoursResult, error) {
	return c.GetMultiMarketHoursWithToken(ctx, "", markets, date)
}

// GetMultiMarketHoursWithToken is GetMultiMarketHours authenticated with refreshToken.
func (c *Client) GetMultiMarketHoursWithToken(ctx context.Context, refreshToken string, markets []Market, date *Date) (MarketHoursResult, error) {
	return c.fetchMarketHours(ctx, refreshToken, marketSelector{markets: markets, multi: true}, date)
}

func (c *Client) fetchMarketHours(ctx context.Context, refreshToken string, sel marketSelector, date *Date) (MarketHoursResult, error) {
	if err := validateMarkets(sel.markets); err != nil {
		return nil, err
	}
	if date != nil && !date.valid() {
		return nil, fmt.Errorf("%w: date %s is not a calendar date", ErrInvalidQuery, date)
	}

	dateStr := formatDate(date)
	return dispatch(ctx, c, refreshToken, func(ctx context.Context, authorization, apiKey string) (MarketHoursResult, error) {
		if sel.multi {
			return c.api.GetMultiMarketHours(ctx, authorization, apiKey, marketNames(sel.markets), dateStr)
		}
		return c.api.GetMarketHours(ctx, authorization, apiKey, string(sel.markets[0]), dateStr)
	})
}
