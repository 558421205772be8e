// Package cli provides the interactive fitsched command-line client.
//
// It wires configuration, local storage, the REST API client and the
// services into a REPL. On start the stored session is restored; a 401
// from any call drops the user back to the logged-out prompt.
//
// Commands cover the whole API: login / register / logout, profile
// constraints and fatigue log, workout plans and sessions, calendar events
// and Google Calendar sync.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
