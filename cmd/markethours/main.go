package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/rickgao/tdameritrade"
	"github.com/rickgao/tdameritrade/internal/config"
	"github.com/rickgao/tdameritrade/internal/version"
)

func main() {
	configPath := flag.String("config", "configs/markethours.yaml", "path to config file")
	envPath := flag.String("env", ".env", "dotenv file loaded before the config (optional)")
	marketsFlag := flag.String("markets", "EQUITY", "comma-separated markets: EQUITY, OPTION, FUTURE, BOND, FOREX")
	dateFlag := flag.String("date", "", "trading date as YYYY-MM-DD (default: server's current date)")
	refreshToken := flag.String("refresh-token", "", "refresh token overriding api.refresh_token")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	if err := run(*configPath, *envPath, *marketsFlag, *dateFlag, *refreshToken); err != nil {
		slog.Error("market hours request failed", "error", err, "kind", errorKind(err))
		os.Exit(1)
	}
}

func run(configPath, envPath, marketsFlag, dateFlag, refreshToken string) error {
	if err := godotenv.Load(envPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load env file: %w", err)
	}

	cfg, err := config.LoadAndValidate(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := newLogger(cfg.Logging)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	logger.Info("starting markethours",
		"version", version.Version,
		"commit", version.Commit,
		"config", configPath,
		"api_url", cfg.API.BaseURL,
		"default_credential", cfg.API.RefreshToken != "",
	)
	if len(cfg.UnsetEnv) > 0 {
		logger.Warn("config references unset environment variables", "names", cfg.UnsetEnv)
	}

	markets, err := tdameritrade.ParseMarkets(marketsFlag)
	if err != nil {
		return err
	}

	var date *tdameritrade.Date
	if dateFlag != "" {
		d, err := tdameritrade.ParseDate(dateFlag)
		if err != nil {
			return err
		}
		date = &d
	}

	client, err := tdameritrade.NewClient(tdameritrade.Config{
		ClientID:     cfg.API.ClientID,
		RefreshToken: cfg.API.RefreshToken,
		BaseURL:      cfg.API.BaseURL,
		TokenURL:     cfg.API.TokenURL,
		Timeout:      cfg.API.Timeout,
		MaxRetries:   cfg.API.MaxRetries,
		RateLimit:    cfg.API.RateLimit,
	}, tdameritrade.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, 2*cfg.API.Timeout)
	defer cancel()

	start := time.Now()
	var hours tdameritrade.MarketHoursResult
	if len(markets) == 1 {
		hours, err = client.GetMarketHoursWithToken(ctx, refreshToken, markets[0], date)
	} else {
		hours, err = client.GetMultiMarketHoursWithToken(ctx, refreshToken, markets, date)
	}
	if err != nil {
		return err
	}

	logger.Info("market hours fetched",
		"markets", len(hours),
		"duration", time.Since(start),
	)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(hours)
}

func newLogger(cfg config.LoggingConfig) (*slog.Logger, error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}

	// Logs go to stderr so stdout carries only the JSON result.
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts)), nil
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts)), nil
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, tdameritrade.ErrAuthentication):
		return "authentication"
	case errors.Is(err, tdameritrade.ErrAPIRequest):
		return "api_request"
	case errors.Is(err, tdameritrade.ErrInvalidQuery):
		return "invalid_query"
	default:
		return "setup"
	}
}
