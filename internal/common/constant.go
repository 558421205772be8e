// Package common contains constants shared by the client and the mock
// backend.
package common

const (
	// AuthorizationHeader carries the bearer token on outbound requests.
	AuthorizationHeader = "Authorization"

	// BearerPrefix precedes the token in AuthorizationHeader.
	BearerPrefix = "Bearer "

	// RequestIDHeader is set by the mock backend on every response.
	RequestIDHeader = "X-Request-ID"

	// ContentTypeJSON is used for every request and response body.
	ContentTypeJSON = "application/json"
)

// Keys of the client's local metadata table.
const (
	TokenMetadataKey      = "token"
	TokenSetAtMetadataKey = "token_set_at"
	UserMetadataKey       = "user"
)
