// Package services contains application services for the fitsched client.
// This file defines the authentication service: login, registration,
// session restore on start, logout and the cached current user.
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/fitsched/internal/client/api"
	"github.com/dmitrijs2005/fitsched/internal/client/models"
	"github.com/dmitrijs2005/fitsched/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/fitsched/internal/client/tokenstore"
	"github.com/dmitrijs2005/fitsched/internal/common"
	"github.com/dmitrijs2005/fitsched/internal/logging"
)

// AuthService owns the client session.
//
// Contract:
//   - Login / Register: call the server, then store the token and the user.
//   - Restore: verify a stored token on start; a rejected token is dropped.
//   - Logout: wipe the local session state (token, its timestamp, user).
//   - SessionInvalidated: react to a 401 seen by any API call.
//   - CurrentUser: the user of the live session, if any.
//   - SessionStarted: when the stored token was issued to this client.
type AuthService interface {
	Login(ctx context.Context, email string, password []byte) (*models.User, error)
	Register(ctx context.Context, email, username string, password []byte) (*models.User, error)
	Restore(ctx context.Context) (*models.User, error)
	Logout(ctx context.Context) error
	SessionInvalidated(ctx context.Context)
	CurrentUser() (*models.User, bool)
	SessionStarted(ctx context.Context) (time.Time, bool, error)
}

type authClient interface {
	Login(ctx context.Context, email, password string) (*models.AuthResponse, error)
	Register(ctx context.Context, email, username, password string) (*models.AuthResponse, error)
	VerifyToken(ctx context.Context) (*models.User, error)
}

type authService struct {
	client authClient
	tokens tokenstore.Store
	meta   metadata.Repository
	logger logging.Logger

	mu   sync.RWMutex
	user *models.User
}

// NewAuthService builds the service. meta keeps the cached user next to the
// token; pass a metadata.MemoryRepository for an ephemeral session.
func NewAuthService(client authClient, tokens tokenstore.Store, meta metadata.Repository, logger logging.Logger) AuthService {
	if logger == nil {
		logger = logging.Nop()
	}
	return &authService{
		client: client,
		tokens: tokens,
		meta:   meta,
		logger: logger.With("module", "auth_service"),
	}
}

func (a *authService) Login(ctx context.Context, email string, password []byte) (*models.User, error) {
	resp, err := a.client.Login(ctx, email, string(password))
	if err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}
	if err := a.startSession(ctx, resp); err != nil {
		return nil, err
	}
	a.logger.Info(ctx, "logged in", "user_id", resp.User.ID)
	return &resp.User, nil
}

func (a *authService) Register(ctx context.Context, email, username string, password []byte) (*models.User, error) {
	resp, err := a.client.Register(ctx, email, username, string(password))
	if err != nil {
		return nil, fmt.Errorf("register error: %w", err)
	}
	if err := a.startSession(ctx, resp); err != nil {
		return nil, err
	}
	a.logger.Info(ctx, "registered", "user_id", resp.User.ID)
	return &resp.User, nil
}

func (a *authService) startSession(ctx context.Context, resp *models.AuthResponse) error {
	if err := a.tokens.Set(ctx, resp.Token); err != nil {
		return fmt.Errorf("token saving error: %w", err)
	}

	if err := a.saveUser(ctx, resp.User); err != nil {
		// the session works without the cache
		a.logger.Warn(ctx, "failed to cache user", "error", err)
	}

	u := resp.User
	a.setUser(&u)
	return nil
}

// Restore returns the user of a stored token. It returns common.ErrNotLoggedIn
// when there is no token or the server rejects it. When the server cannot be
// reached the cached user is returned so the session survives a flaky
// network.
func (a *authService) Restore(ctx context.Context) (*models.User, error) {
	_, ok, err := a.tokens.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("token loading error: %w", err)
	}
	if !ok {
		return nil, common.ErrNotLoggedIn
	}

	user, err := a.client.VerifyToken(ctx)
	switch {
	case err == nil:
		if err := a.saveUser(ctx, *user); err != nil {
			a.logger.Warn(ctx, "failed to cache user", "error", err)
		}
		a.setUser(user)
		return user, nil

	case errors.Is(err, api.ErrUnauthorized):
		// the API client has already cleared the token
		a.SessionInvalidated(ctx)
		return nil, common.ErrNotLoggedIn

	case errors.Is(err, api.ErrTransport):
		cached, cerr := a.loadUser(ctx)
		if cerr != nil || cached == nil {
			return nil, fmt.Errorf("verify token error: %w", err)
		}
		a.logger.Warn(ctx, "server unreachable, using cached user", "error", err)
		a.setUser(cached)
		return cached, nil

	default:
		return nil, fmt.Errorf("verify token error: %w", err)
	}
}

func (a *authService) Logout(ctx context.Context) error {
	a.setUser(nil)

	if err := a.tokens.Clear(ctx); err != nil {
		return fmt.Errorf("token clearing error: %w", err)
	}
	if err := a.meta.Clear(ctx); err != nil {
		return fmt.Errorf("local session clearing error: %w", err)
	}
	return nil
}

func (a *authService) SessionInvalidated(ctx context.Context) {
	a.setUser(nil)
	if err := a.meta.Delete(ctx, common.UserMetadataKey); err != nil {
		a.logger.Warn(ctx, "failed to drop cached user", "error", err)
	}
}

func (a *authService) CurrentUser() (*models.User, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.user == nil {
		return nil, false
	}
	u := *a.user
	return &u, true
}

func (a *authService) SessionStarted(ctx context.Context) (time.Time, bool, error) {
	at, ok, err := a.tokens.IssuedAt(ctx)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("token loading error: %w", err)
	}
	return at, ok, nil
}

func (a *authService) setUser(u *models.User) {
	a.mu.Lock()
	a.user = u
	a.mu.Unlock()
}

func (a *authService) saveUser(ctx context.Context, u models.User) error {
	b, err := json.Marshal(u)
	if err != nil {
		return err
	}
	return a.meta.Set(ctx, common.UserMetadataKey, b)
}

func (a *authService) loadUser(ctx context.Context) (*models.User, error) {
	b, err := a.meta.Get(ctx, common.UserMetadataKey)
	if err != nil || b == nil {
		return nil, err
	}
	var u models.User
	if err := json.Unmarshal(b, &u); err != nil {
		return nil, err
	}
	return &u, nil
}
