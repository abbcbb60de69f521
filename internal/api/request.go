package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/rickgao/tdameritrade/internal/version"
)

var (
	// ErrConflictingAuth is returned when a request carries both a bearer
	// token and an apikey.
	ErrConflictingAuth = errors.New("authorization and apikey are mutually exclusive")

	// ErrMissingAuth is returned when a request carries neither a bearer
	// token nor an apikey.
	ErrMissingAuth = errors.New("authorization or apikey is required")

	// ErrMalformedResponse is returned when a 2xx body cannot be decoded.
	ErrMalformedResponse = errors.New("malformed response")
)

// APIError represents an error from the TD Ameritrade API.
type APIError struct {
	StatusCode int
	Message    string
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("tdameritrade api error %d: %s", e.StatusCode, e.Message)
}

// IsRetryable returns true if the error should trigger a retry.
func (e *APIError) IsRetryable() bool {
	return e.StatusCode >= 500 || e.StatusCode == 429
}

// authorize validates the authentication inputs and adds the apikey to
// query when the public mode is used. It returns the Authorization header
// value, empty for the public mode.
func authorize(query url.Values, authorization, apiKey string) (string, error) {
	switch {
	case authorization != "" && apiKey != "":
		return "", ErrConflictingAuth
	case authorization != "":
		return "Bearer " + authorization, nil
	case apiKey != "":
		query.Set("apikey", apiKey)
		return "", nil
	default:
		return "", ErrMissingAuth
	}
}

// doRequest performs an HTTP request with the given method and path.
func (c *Client) doRequest(ctx context.Context, method, path string, query url.Values, authHeader string) ([]byte, error) {
	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", version.UserAgent())
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    http.StatusText(resp.StatusCode),
			Body:       body,
		}
	}

	return body, nil
}

// doWithRetry performs a request with exponential backoff retry.
func (c *Client) doWithRetry(ctx context.Context, method, path string, query url.Values, authHeader string) ([]byte, error) {
	var lastErr error
	backoff := c.retryBackoff
	requestID := uuid.NewString()

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			// Add jitter: backoff * (0.5 to 1.5)
			var jitter time.Duration
			if backoff > 0 {
				jitter = backoff/2 + time.Duration(rand.Int64N(int64(backoff)))
			}
			c.logger.Debug("retrying request",
				"request_id", requestID,
				"attempt", attempt,
				"backoff", jitter,
				"path", path,
			)

			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(jitter):
			}

			backoff *= 2
		}

		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, fmt.Errorf("rate limit wait: %w", err)
			}
		}

		c.logger.Debug("sending request",
			"request_id", requestID,
			"method", method,
			"path", path,
			"bearer", authHeader != "",
		)

		body, err := c.doRequest(ctx, method, path, query, authHeader)
		if err == nil {
			return body, nil
		}

		lastErr = err

		var apiErr *APIError
		if !errors.As(err, &apiErr) || !apiErr.IsRetryable() {
			return nil, err
		}
	}

	if c.maxRetries == 0 {
		return nil, lastErr
	}
	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}

// get performs an authenticated GET request and decodes the JSON body.
func (c *Client) get(ctx context.Context, path string, query url.Values, authorization, apiKey string, result any) error {
	if query == nil {
		query = url.Values{}
	}

	authHeader, err := authorize(query, authorization, apiKey)
	if err != nil {
		return err
	}

	body, err := c.doWithRetry(ctx, http.MethodGet, path, query, authHeader)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	return nil
}
