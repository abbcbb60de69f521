package api

import "time"

// MarketHoursResult from GET /marketdata/{market}/hours and
// GET /marketdata/hours, keyed by market name (e.g. "equity").
type MarketHoursResult map[string]MarketHoursResponse

// MarketHoursResponse holds the hours of every product in one market,
// keyed by product code (e.g. "EQ").
type MarketHoursResponse map[string]MarketHours

// MarketHours represents the hours of operation of a single product.
type MarketHours struct {
	Category    string `json:"category"`
	Date        string `json:"date"`
	Exchange    string `json:"exchange"`
	IsOpen      bool   `json:"isOpen"`
	MarketType  string `json:"marketType"`
	Product     string `json:"product"`
	ProductName string `json:"productName"`

	// Session name (preMarket, regularMarket, postMarket) to intervals.
	// Absent when the market is closed for the day.
	SessionHours map[string][]SessionInterval `json:"sessionHours,omitempty"`
}

// SessionInterval is one trading window. Timestamps carry the exchange offset.
type SessionInterval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}
