// Package auth exchanges long-lived refresh tokens for short-lived access
// tokens using the OAuth2 refresh_token grant.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

// DefaultTokenURL is the production token endpoint.
const DefaultTokenURL = "https://api.tdameritrade.com/v1/oauth2/token"

var (
	// ErrMissingRefreshToken is returned when Exchange is called without a token.
	ErrMissingRefreshToken = errors.New("refresh token is required")

	// ErrEmptyAccessToken is returned when a 2xx token response carries no access token.
	ErrEmptyAccessToken = errors.New("token response has no access token")
)

// Exchanger trades refresh tokens for access tokens. Each call performs one
// grant; nothing is cached between calls.
type Exchanger struct {
	config     oauth2.Config
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures an Exchanger.
type Option func(*Exchanger)

// WithHTTPClient sets the HTTP client used for token requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(e *Exchanger) {
		e.httpClient = hc
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Exchanger) {
		e.logger = logger
	}
}

// NewExchanger creates an Exchanger for the given OAuth client id.
// An empty tokenURL selects DefaultTokenURL.
func NewExchanger(clientID, tokenURL string, opts ...Option) *Exchanger {
	if tokenURL == "" {
		tokenURL = DefaultTokenURL
	}

	e := &Exchanger{
		config: oauth2.Config{
			ClientID: clientID,
			Endpoint: oauth2.Endpoint{
				TokenURL: tokenURL,
				// client_id travels in the form body; there is no secret.
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Exchange returns a fresh access token for refreshToken.
// Rejections by the token endpoint surface as *oauth2.RetrieveError.
func (e *Exchanger) Exchange(ctx context.Context, refreshToken string) (string, error) {
	if refreshToken == "" {
		return "", ErrMissingRefreshToken
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, e.httpClient)

	start := time.Now()
	tok, err := e.config.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken}).Token()
	if err != nil {
		if isMissingAccessToken(err) {
			return "", fmt.Errorf("exchange refresh token: %w", ErrEmptyAccessToken)
		}
		return "", fmt.Errorf("exchange refresh token: %w", err)
	}
	if tok.AccessToken == "" {
		return "", fmt.Errorf("exchange refresh token: %w", ErrEmptyAccessToken)
	}

	e.logger.Debug("access token issued",
		"token_url", e.config.Endpoint.TokenURL,
		"expiry", tok.Expiry,
		"duration", time.Since(start),
	)

	return tok.AccessToken, nil
}

// isMissingAccessToken detects oauth2's unexported error for a 2xx response
// without access_token. Endpoint rejections are *oauth2.RetrieveError instead.
func isMissingAccessToken(err error) bool {
	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) {
		return false
	}
	return strings.Contains(err.Error(), "missing access_token")
}
