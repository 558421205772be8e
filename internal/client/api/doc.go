// Package api is the client side of the fitness-scheduling REST API.
//
// A single Client is built per process around a base URL and a token source.
// Every request passes through a chain of request interceptors, the first of
// which attaches the bearer token. A 401 response clears the token and
// notifies the owner through Options.OnSessionInvalidated; the call still
// fails with an *Error of KindUnauthorized.
//
// The Auth, Workouts and Calendar facades map one method to one endpoint and
// decode into the typed records of package models.
package api
