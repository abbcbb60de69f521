package tdameritrade

import (
	"errors"

	"github.com/rickgao/tdameritrade/internal/api"
)

// Failure kinds. Errors returned by Client match exactly one of these with
// errors.Is; the collaborator's original error stays reachable via errors.As.
var (
	// ErrAuthentication reports a refresh token the token endpoint rejected.
	ErrAuthentication = errors.New("authentication failed")

	// ErrAPIRequest reports a failed market-data request: transport error,
	// non-2xx status or an undecodable body.
	ErrAPIRequest = errors.New("api request failed")

	// ErrInvalidQuery reports parameters rejected before any network call.
	ErrInvalidQuery = errors.New("invalid query")
)

// APIError is the error returned for non-2xx market-data responses.
type APIError = api.APIError
