// Package api provides the low-level TD Ameritrade REST client.
//
// REST endpoint:
//   - Production: https://api.tdameritrade.com/v1
//
// Every operation accepts two mutually exclusive authentication inputs:
// a bearer access token (Authorization header) or a public client id
// (apikey query parameter). Choosing between them is the caller's job.
package api
