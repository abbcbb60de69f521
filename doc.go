// Package tdameritrade is a client for the TD Ameritrade market-data REST API.
//
// Every operation resolves its credential the same way: an explicit refresh
// token wins, otherwise the default from Config.RefreshToken is used. With a
// credential the call exchanges it for an access token and authenticates
// with a bearer header; without one it falls back to the public client id
// sent as the apikey query parameter.
//
//	c, err := tdameritrade.NewClient(tdameritrade.Config{ClientID: "APPKEY@AMER.OAUTHAP"})
//	if err != nil {
//		return err
//	}
//	date := tdameritrade.NewDate(2024, time.March, 5)
//	hours, err := c.GetMarketHours(ctx, tdameritrade.MarketEquity, &date)
package tdameritrade
