package tdameritrade

import "github.com/rickgao/tdameritrade/internal/api"

type (
	// MarketHoursResult maps market name (e.g. "equity") to its products.
	MarketHoursResult = api.MarketHoursResult

	// MarketHoursResponse maps product code (e.g. "EQ") to its hours.
	MarketHoursResponse = api.MarketHoursResponse

	// MarketHours is the hours-of-operation record of one product.
	MarketHours = api.MarketHours

	// SessionInterval is one trading window within a session.
	SessionInterval = api.SessionInterval
)
