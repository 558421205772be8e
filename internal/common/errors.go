package common

import "errors"

var (
	// ErrEmptyToken is returned when an empty bearer token is stored.
	ErrEmptyToken = errors.New("empty token")

	// ErrNotLoggedIn is returned by operations that need a live session.
	ErrNotLoggedIn = errors.New("not logged in")
)
