package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dmitrijs2005/fitsched/internal/client/models"
	"github.com/dmitrijs2005/fitsched/internal/client/tokenstore"
	"github.com/dmitrijs2005/fitsched/internal/server/rest"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockBackend(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	srv := httptest.NewServer(rest.NewRouter(rest.RouterConfig{AllowedOrigin: "http://localhost:3000"}))
	t.Cleanup(srv.Close)
	return srv
}

func TestE2E_Login(t *testing.T) {
	srv := newMockBackend(t)
	c := newClient(t, srv.URL+"/api", tokenstore.NewMemoryStore(), Options{})

	resp, err := c.Auth().Login(context.Background(), "a@x.com", "pw")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(resp.Token, "mock_token_"), resp.Token)
	assert.Equal(t, models.User{ID: "1", Email: "a@x.com", Username: "testuser", Name: "Test User"}, resp.User)
}

func TestE2E_Register(t *testing.T) {
	srv := newMockBackend(t)
	c := newClient(t, srv.URL+"/api", tokenstore.NewMemoryStore(), Options{})

	resp, err := c.Auth().Register(context.Background(), "a@x.com", "alice", "pw")
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "alice", resp.User.Username)
}

func TestE2E_WorkoutPlansEmpty(t *testing.T) {
	srv := newMockBackend(t)
	c := newClient(t, srv.URL+"/api", tokenstore.NewMemoryStore(), Options{})

	plans, err := c.Workouts().GetWorkoutPlans(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, plans)
	assert.Empty(t, plans)
}

func TestE2E_UnmatchedRoute(t *testing.T) {
	srv := newMockBackend(t)
	c := newClient(t, srv.URL+"/api", tokenstore.NewMemoryStore(), Options{})

	err := c.Do(context.Background(), http.MethodGet, "/nope/", nil, nil)
	require.ErrorIs(t, err, ErrStatus)

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.JSONEq(t, `{"error":"Not found"}`, string(apiErr.Payload))
	assert.Equal(t, "Not found", apiErr.Message)
}

func TestE2E_ProfileRoundTrip(t *testing.T) {
	srv := newMockBackend(t)
	store := tokenstore.NewMemoryStore()
	c := newClient(t, srv.URL+"/api", store, Options{})
	ctx := context.Background()

	auth, err := c.Auth().Login(ctx, "a@x.com", "pw")
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, auth.Token))

	user, err := c.Auth().VerifyToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "test@example.com", user.Email)

	name := "Alice"
	p, err := c.Workouts().UpdateUserProfile(ctx, models.UpdateProfileRequest{
		Name:         &name,
		Availability: models.Availability{"mon": {"18:00-19:00"}},
		Equipment:    []string{"kettlebell"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice", p.Name)
	assert.Equal(t, "Alice", p.User.Name)
	assert.Equal(t, []string{"18:00-19:00"}, p.Availability["mon"])
	assert.Equal(t, []string{"kettlebell"}, p.Equipment)
	assert.Empty(t, p.FatigueLog)
}

func TestE2E_NotMockedEndpoints(t *testing.T) {
	srv := newMockBackend(t)
	c := newClient(t, srv.URL+"/api", tokenstore.NewMemoryStore(), Options{})

	_, err := c.Calendar().SyncWithGoogle(context.Background())
	require.ErrorIs(t, err, ErrStatus)

	_, err = c.Workouts().UpdateWorkoutSession(context.Background(), 1, models.StatusCompleted, "")
	require.ErrorIs(t, err, ErrStatus)
}
