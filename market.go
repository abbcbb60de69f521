package tdameritrade

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Market is a market category accepted by the market-hours endpoints.
type Market string

const (
	MarketEquity Market = "EQUITY"
	MarketOption Market = "OPTION"
	MarketFuture Market = "FUTURE"
	MarketBond   Market = "BOND"
	MarketForex  Market = "FOREX"
)

// Markets returns every valid market category in a new slice.
func Markets() []Market {
	return []Market{MarketEquity, MarketOption, MarketFuture, MarketBond, MarketForex}
}

// ParseMarket converts a case-insensitive name into a Market.
func ParseMarket(s string) (Market, error) {
	m := Market(strings.ToUpper(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", fmt.Errorf("%w: unknown market %q", ErrInvalidQuery, s)
	}
	return m, nil
}

// Valid reports whether m is one of the known categories.
func (m Market) Valid() bool {
	switch m {
	case MarketEquity, MarketOption, MarketFuture, MarketBond, MarketForex:
		return true
	}
	return false
}

// ParseMarkets parses a comma-separated list such as "equity,option".
func ParseMarkets(s string) ([]Market, error) {
	var markets []Market
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		m, err := ParseMarket(part)
		if err != nil {
			return nil, err
		}
		markets = append(markets, m)
	}
	return markets, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

type marketQuery struct {
	Markets []Market `validate:"required,min=1,dive,oneof=EQUITY OPTION FUTURE BOND FOREX"`
}

func validateMarkets(markets []Market) error {
	if err := validate.Struct(marketQuery{Markets: markets}); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidQuery, err)
	}
	return nil
}

func marketNames(markets []Market) []string {
	out := make([]string, len(markets))
	for i, m := range markets {
		out[i] = string(m)
	}
	return out
}
