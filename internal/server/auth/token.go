// Package auth issues the mock backend's session tokens.
package auth

import (
	"strconv"
	"time"
)

// TokenPrefix starts every token issued by the mock backend.
const TokenPrefix = "mock_token_"

// NewMockToken returns "mock_token_<unix milliseconds>". Tokens are not
// signed and carry no identity; two logins in the same millisecond get the
// same token.
func NewMockToken(now time.Time) string {
	return TokenPrefix + strconv.FormatInt(now.UnixMilli(), 10)
}
