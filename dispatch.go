package tdameritrade

import (
	"context"
	"fmt"
)

// dispatch resolves the credential for one request and invokes call in the
// matching authentication mode; exactly one of authorization and apiKey is
// non-empty when call runs. It performs at most one token exchange and
// one call, and never falls back to public access after an exchange fails.
func dispatch[T any](ctx context.Context, c *Client, refreshToken string, call func(ctx context.Context, authorization, apiKey string) (T, error)) (T, error) {
	var zero T

	explicit := refreshToken != ""
	if !explicit {
		refreshToken = c.refreshToken
	}

	if refreshToken == "" {
		c.logger.Debug("dispatching request", "mode", "public")
		result, err := call(ctx, "", c.clientID)
		if err != nil {
			return zero, fmt.Errorf("%w: %w", ErrAPIRequest, err)
		}
		return result, nil
	}

	accessToken, err := c.tokens.Exchange(ctx, refreshToken)
	if err != nil {
		return zero, fmt.Errorf("%w: %w", ErrAuthentication, err)
	}

	c.logger.Debug("dispatching request", "mode", "bearer", "explicit_token", explicit)
	result, err := call(ctx, accessToken, "")
	if err != nil {
		return zero, fmt.Errorf("%w: %w", ErrAPIRequest, err)
	}
	return result, nil
}
