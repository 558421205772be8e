// Package tokenstore persists the session token between client runs.
//
// The web client kept the token in browser local storage; the CLI keeps it in
// the metadata table of its SQLite file, or in memory when no file is
// configured.
package tokenstore

import (
	"context"
	"time"
)

// Store holds at most one session token.
type Store interface {
	// Get returns the stored token and whether one is present.
	Get(ctx context.Context) (string, bool, error)

	// Set replaces the stored token. An empty token is rejected with
	// common.ErrEmptyToken.
	Set(ctx context.Context, token string) error

	// Clear removes the token. Clearing an empty store is not an error.
	Clear(ctx context.Context) error

	// IssuedAt reports when the current token was stored.
	IssuedAt(ctx context.Context) (time.Time, bool, error)
}
