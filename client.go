package tdameritrade

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/rickgao/tdameritrade/internal/api"
	"github.com/rickgao/tdameritrade/internal/auth"
)

// DefaultBaseURL is the production REST endpoint.
const DefaultBaseURL = "https://api.tdameritrade.com/v1"

// Config holds the immutable settings of a Client.
type Config struct {
	// ClientID is the public application key used when no credential is available.
	ClientID string

	// RefreshToken is the default credential for calls that do not pass one.
	// Empty means public access.
	RefreshToken string

	BaseURL    string        // defaults to DefaultBaseURL
	TokenURL   string        // defaults to auth.DefaultTokenURL
	Timeout    time.Duration // per HTTP request, 0 keeps the transport default
	MaxRetries int           // retries of the HTTP layer on 5xx/429; 0 means single attempt
	RateLimit  float64       // requests per second, 0 disables limiting
}

// TokenExchanger trades a refresh token for a short-lived access token.
type TokenExchanger interface {
	Exchange(ctx context.Context, refreshToken string) (string, error)
}

// marketHoursAPI is the underlying HTTP surface. Each operation takes either
// an access token or an apikey, never both.
type marketHoursAPI interface {
	GetMarketHours(ctx context.Context, authorization, apiKey, market string, date *string) (api.MarketHoursResult, error)
	GetMultiMarketHours(ctx context.Context, authorization, apiKey string, markets []string, date *string) (api.MarketHoursResult, error)
}

// Client is safe for concurrent use. Its fields are never written after NewClient.
type Client struct {
	clientID     string
	refreshToken string

	api    marketHoursAPI
	tokens TokenExchanger
	logger *slog.Logger
}

type settings struct {
	logger     *slog.Logger
	httpClient *http.Client
	tokens     TokenExchanger
}

// Option configures a Client.
type Option func(*settings)

// WithLogger sets the logger for the client and its collaborators.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithHTTPClient sets the HTTP client used for both token and data requests.
// Config.Timeout is ignored when a custom client is given.
func WithHTTPClient(hc *http.Client) Option {
	return func(s *settings) {
		s.httpClient = hc
	}
}

// WithTokenExchanger replaces the OAuth2 token exchange.
func WithTokenExchanger(te TokenExchanger) Option {
	return func(s *settings) {
		s.tokens = te
	}
}

// NewClient creates a Client from cfg.
func NewClient(cfg Config, opts ...Option) (*Client, error) {
	if cfg.ClientID == "" {
		return nil, errors.New("client id is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	s := settings{logger: slog.Default()}
	for _, opt := range opts {
		opt(&s)
	}

	apiOpts := []api.ClientOption{
		api.WithLogger(s.logger),
		api.WithRetries(cfg.MaxRetries, time.Second),
		api.WithRateLimit(cfg.RateLimit),
	}
	authOpts := []auth.Option{auth.WithLogger(s.logger)}
	if s.httpClient != nil {
		apiOpts = append(apiOpts, api.WithHTTPClient(s.httpClient))
		authOpts = append(authOpts, auth.WithHTTPClient(s.httpClient))
	} else if cfg.Timeout > 0 {
		apiOpts = append(apiOpts, api.WithTimeout(cfg.Timeout))
		authOpts = append(authOpts, auth.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}))
	}

	tokens := s.tokens
	if tokens == nil {
		tokens = auth.NewExchanger(cfg.ClientID, cfg.TokenURL, authOpts...)
	}

	return &Client{
		clientID:     cfg.ClientID,
		refreshToken: cfg.RefreshToken,
		api:          api.NewClient(cfg.BaseURL, apiOpts...),
		tokens:       tokens,
		logger:       s.logger,
	}, nil
}
