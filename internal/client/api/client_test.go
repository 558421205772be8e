package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/fitsched/internal/client/models"
	"github.com/dmitrijs2005/fitsched/internal/client/tokenstore"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorded struct {
	method string
	path   string
	auth   string
	ctype  string
	body   string
}

type recorder struct {
	mu   sync.Mutex
	reqs []recorded
}

func (r *recorder) last() recorded {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.reqs[len(r.reqs)-1]
}

// newBackend serves status/body for every request and records what it got.
func newBackend(t *testing.T, status int, body string) (*httptest.Server, *recorder) {
	t.Helper()
	rec := &recorder{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		rec.mu.Lock()
		rec.reqs = append(rec.reqs, recorded{
			method: r.Method,
			path:   r.URL.Path,
			auth:   r.Header.Get("Authorization"),
			ctype:  r.Header.Get("Content-Type"),
			body:   string(b),
		})
		rec.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv, rec
}

func newClient(t *testing.T, baseURL string, tokens TokenSource, opts Options) *Client {
	t.Helper()
	c, err := New(baseURL, tokens, opts)
	require.NoError(t, err)
	return c
}

func TestNew_Validation(t *testing.T) {
	store := tokenstore.NewMemoryStore()

	_, err := New("", store, Options{})
	require.Error(t, err)

	_, err = New("localhost:8000/api", store, Options{})
	require.Error(t, err)

	_, err = New("http://localhost:8000/api", nil, Options{})
	require.Error(t, err)

	c, err := New("http://localhost:8000/api", store, Options{})
	require.NoError(t, err)
	assert.Equal(t, defaultTimeout, c.httpClient.Timeout)

	c, err = New("http://localhost:8000/api", store, Options{Timeout: time.Second})
	require.NoError(t, err)
	assert.Equal(t, time.Second, c.httpClient.Timeout)
}

func TestBearerHeader_PresentWhenTokenSet(t *testing.T) {
	srv, rec := newBackend(t, http.StatusOK, `[]`)
	store := tokenstore.NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), "mock_token_1"))

	c := newClient(t, srv.URL+"/api", store, Options{})
	_, err := c.Workouts().GetWorkoutPlans(context.Background())
	require.NoError(t, err)

	got := rec.last()
	assert.Equal(t, "Bearer mock_token_1", got.auth)
	assert.Equal(t, "application/json", got.ctype)
	assert.Equal(t, "/api/workout-plans/", got.path)
}

func TestBearerHeader_AbsentWithoutToken(t *testing.T) {
	srv, rec := newBackend(t, http.StatusOK, `[]`)
	c := newClient(t, srv.URL+"/api", tokenstore.NewMemoryStore(), Options{})

	_, err := c.Workouts().GetWorkoutSessions(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rec.last().auth)
}

func TestBearerHeader_FollowsStoreChanges(t *testing.T) {
	srv, rec := newBackend(t, http.StatusOK, `[]`)
	store := tokenstore.NewMemoryStore()
	c := newClient(t, srv.URL+"/api", store, Options{})
	ctx := context.Background()

	for _, tok := range []string{"a", "b"} {
		require.NoError(t, store.Set(ctx, tok))
		_, err := c.Workouts().GetWorkoutPlans(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Bearer "+tok, rec.last().auth)
	}

	require.NoError(t, store.Clear(ctx))
	_, err := c.Workouts().GetWorkoutPlans(ctx)
	require.NoError(t, err)
	assert.Empty(t, rec.last().auth)
}

type failingTokens struct{ cleared int }

func (f *failingTokens) Get(context.Context) (string, bool, error) {
	return "", false, errors.New("disk on fire")
}
func (f *failingTokens) Clear(context.Context) error { f.cleared++; return nil }

func TestBearerHeader_StoreErrorSendsUnauthenticated(t *testing.T) {
	srv, rec := newBackend(t, http.StatusOK, `[]`)
	c := newClient(t, srv.URL+"/api", &failingTokens{}, Options{})

	_, err := c.Workouts().GetWorkoutPlans(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rec.last().auth)
}

func TestUnauthorized_ClearsTokenAndNotifiesOnce(t *testing.T) {
	srv, _ := newBackend(t, http.StatusUnauthorized, `{"detail":"Invalid token."}`)
	store := tokenstore.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "stale"))

	calls := 0
	c := newClient(t, srv.URL+"/api", store, Options{
		OnSessionInvalidated: func(context.Context) { calls++ },
	})

	_, err := c.Workouts().GetUserProfile(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnauthorized))

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, KindUnauthorized, apiErr.Kind)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "Invalid token.", apiErr.Message)

	_, ok, _ := store.Get(ctx)
	assert.False(t, ok, "token must be cleared after 401")
	assert.Equal(t, 1, calls)

	// a second 401 notifies again, once
	_, err = c.Auth().VerifyToken(ctx)
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, 2, calls)
}

func TestUnauthorized_WithoutCallback(t *testing.T) {
	srv, _ := newBackend(t, http.StatusUnauthorized, ``)
	tokens := &failingTokens{}
	c := newClient(t, srv.URL+"/api", tokens, Options{})

	_, err := c.Auth().VerifyToken(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, 1, tokens.cleared)
}

func TestStatusErrors_CarryPayload(t *testing.T) {
	tests := []struct {
		status  int
		body    string
		message string
	}{
		{http.StatusBadRequest, `{"error":"Invalid status"}`, "Invalid status"},
		{http.StatusNotFound, `{"error":"Not found"}`, "Not found"},
		{http.StatusInternalServerError, `{"message":"boom"}`, "boom"},
		{http.StatusBadGateway, `<html>bad gateway</html>`, ""},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv, _ := newBackend(t, tt.status, tt.body)
			store := tokenstore.NewMemoryStore()
			require.NoError(t, store.Set(context.Background(), "keep"))
			c := newClient(t, srv.URL+"/api", store, Options{
				OnSessionInvalidated: func(context.Context) { t.Fatal("must not be called") },
			})

			_, err := c.Workouts().UpdateWorkoutSession(context.Background(), 7, models.StatusCompleted, "")
			require.ErrorIs(t, err, ErrStatus)
			assert.False(t, errors.Is(err, ErrUnauthorized))

			var apiErr *Error
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.body, string(apiErr.Payload))
			assert.Equal(t, tt.message, apiErr.Message)

			tok, ok, _ := store.Get(context.Background())
			assert.True(t, ok)
			assert.Equal(t, "keep", tok)
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `not json`},
		{"wrong shape", `{"token": 5}`},
		{"missing token", `{"user":{"id":"1"}}`},
		{"empty body", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newBackend(t, http.StatusOK, tt.body)
			c := newClient(t, srv.URL+"/api", tokenstore.NewMemoryStore(), Options{})

			_, err := c.Auth().Login(context.Background(), "a@x.com", "pw")
			require.ErrorIs(t, err, ErrDecode)
			assert.False(t, errors.Is(err, ErrTransport))
		})
	}
}

func TestDecodeErrors_InvalidListItem(t *testing.T) {
	srv, _ := newBackend(t, http.StatusOK, `[{"id":1,"status":"planned"},{"id":2,"status":"skipped"}]`)
	c := newClient(t, srv.URL+"/api", tokenstore.NewMemoryStore(), Options{})

	_, err := c.Workouts().GetWorkoutSessions(context.Background())
	require.ErrorIs(t, err, ErrDecode)
}

func TestTransportError(t *testing.T) {
	srv, _ := newBackend(t, http.StatusOK, `[]`)
	url := srv.URL
	srv.Close()

	c := newClient(t, url+"/api", tokenstore.NewMemoryStore(), Options{})
	_, err := c.Workouts().GetWorkoutPlans(context.Background())
	require.ErrorIs(t, err, ErrTransport)

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Zero(t, apiErr.Status)
	assert.Nil(t, apiErr.Payload)
}

func TestTimeoutIsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	t.Cleanup(srv.Close)

	c := newClient(t, srv.URL+"/api", tokenstore.NewMemoryStore(), Options{Timeout: 50 * time.Millisecond})
	_, err := c.Workouts().GetWorkoutPlans(context.Background())
	require.ErrorIs(t, err, ErrTransport)
}

func TestContextCancellation(t *testing.T) {
	srv, _ := newBackend(t, http.StatusOK, `[]`)
	c := newClient(t, srv.URL+"/api", tokenstore.NewMemoryStore(), Options{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Workouts().GetWorkoutPlans(ctx)
	require.ErrorIs(t, err, ErrTransport)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSuccess_ParsedBodyMatchesPayload(t *testing.T) {
	payload := `[{"id":3,"user_profile":1,"start_date":"2026-01-05","weeks":4,"rationale":"base",
		"sessions":[{"id":9,"plan":3,"date":"2026-01-05","exercises":[{"name":"Squat","sets":3,"reps":10}],"status":"planned","notes":""}]}]`
	srv, _ := newBackend(t, http.StatusOK, payload)
	c := newClient(t, srv.URL+"/api", tokenstore.NewMemoryStore(), Options{})

	plans, err := c.Workouts().GetWorkoutPlans(context.Background())
	require.NoError(t, err)

	var want []models.WorkoutPlan
	require.NoError(t, json.Unmarshal([]byte(payload), &want))
	assert.Empty(t, cmp.Diff(want, plans))

	got, err := json.Marshal(plans)
	require.NoError(t, err)
	assert.JSONEq(t, payload, string(got))
}

func TestRoutes(t *testing.T) {
	tests := []struct {
		name   string
		call   func(c *Client) error
		method string
		path   string
		body   string
		resp   string
	}{
		{"login", func(c *Client) error {
			_, err := c.Auth().Login(context.Background(), "a@x.com", "pw")
			return err
		}, http.MethodPost, "/api/auth/login/", `{"email":"a@x.com","password":"pw"}`, `{"token":"t","user":{"id":"1"}}`},
		{"register", func(c *Client) error {
			_, err := c.Auth().Register(context.Background(), "a@x.com", "alice", "pw")
			return err
		}, http.MethodPost, "/api/auth/register/", `{"email":"a@x.com","username":"alice","password":"pw"}`, `{"token":"t","user":{"id":1}}`},
		{"verify", func(c *Client) error {
			_, err := c.Auth().VerifyToken(context.Background())
			return err
		}, http.MethodGet, "/api/auth/verify/", ``, `{"id":"1"}`},
		{"get profile", func(c *Client) error {
			_, err := c.Workouts().GetUserProfile(context.Background())
			return err
		}, http.MethodGet, "/api/user-profile/", ``, `{"id":"1"}`},
		{"update profile", func(c *Client) error {
			name := "Alice"
			_, err := c.Workouts().UpdateUserProfile(context.Background(), models.UpdateProfileRequest{Name: &name})
			return err
		}, http.MethodPatch, "/api/user-profile/", `{"name":"Alice"}`, `{"id":"1"}`},
		{"list plans", func(c *Client) error {
			_, err := c.Workouts().GetWorkoutPlans(context.Background())
			return err
		}, http.MethodGet, "/api/workout-plans/", ``, `[]`},
		{"create plan", func(c *Client) error {
			_, err := c.Workouts().CreateWorkoutPlan(context.Background(), models.CreateWorkoutPlanRequest{Weeks: 4})
			return err
		}, http.MethodPost, "/api/workout-plans/", `{"weeks":4}`, `{"id":1}`},
		{"update session", func(c *Client) error {
			_, err := c.Workouts().UpdateWorkoutSession(context.Background(), 12, models.StatusMissed, "sick")
			return err
		}, http.MethodPost, "/api/workout-sessions/12/update_status/", `{"status":"missed","notes":"sick"}`, `{"status":"updated"}`},
		{"list sessions", func(c *Client) error {
			_, err := c.Workouts().GetWorkoutSessions(context.Background())
			return err
		}, http.MethodGet, "/api/workout-sessions/", ``, `[]`},
		{"sync calendar", func(c *Client) error {
			_, err := c.Calendar().SyncWithGoogle(context.Background())
			return err
		}, http.MethodPost, "/api/calendar/sync/", ``, `{"status":"ok"}`},
		{"list events", func(c *Client) error {
			_, err := c.Calendar().GetCalendarEvents(context.Background())
			return err
		}, http.MethodGet, "/api/calendar/events/", ``,
			`[{"id":"e1","title":"Run","start":"2026-01-05T18:00:00Z","end":"2026-01-05T19:00:00Z"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, rec := newBackend(t, http.StatusOK, tt.resp)
			c := newClient(t, srv.URL+"/api/", tokenstore.NewMemoryStore(), Options{})

			require.NoError(t, tt.call(c))

			got := rec.last()
			assert.Equal(t, tt.method, got.method)
			assert.Equal(t, tt.path, got.path)
			if tt.body == "" {
				assert.Empty(t, got.body)
			} else {
				assert.JSONEq(t, tt.body, got.body)
			}
		})
	}
}

func TestExtraInterceptors_RunAfterBearer(t *testing.T) {
	srv, _ := newBackend(t, http.StatusOK, `[]`)
	store := tokenstore.NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), "tok"))

	var seen string
	c := newClient(t, srv.URL+"/api", store, Options{
		RequestInterceptors: []RequestInterceptor{
			Header("X-Client", "cli"),
			func(_ context.Context, r *http.Request) error {
				seen = r.Header.Get("Authorization") + "|" + r.Header.Get("X-Client")
				return nil
			},
		},
	})

	_, err := c.Workouts().GetWorkoutPlans(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok|cli", seen)
}

func TestInterceptorError_AbortsRequest(t *testing.T) {
	srv, rec := newBackend(t, http.StatusOK, `[]`)
	c := newClient(t, srv.URL+"/api", tokenstore.NewMemoryStore(), Options{
		RequestInterceptors: []RequestInterceptor{
			func(context.Context, *http.Request) error { return errors.New("nope") },
		},
	})

	_, err := c.Workouts().GetWorkoutPlans(context.Background())
	require.ErrorIs(t, err, ErrTransport)
	assert.Empty(t, rec.reqs)
}

func TestDo_Generic(t *testing.T) {
	srv, rec := newBackend(t, http.StatusNoContent, ``)
	c := newClient(t, srv.URL+"/api", tokenstore.NewMemoryStore(), Options{})

	var out map[string]any
	require.NoError(t, c.Do(context.Background(), http.MethodDelete, "/things/1/", nil, &out))
	assert.Nil(t, out)
	assert.Equal(t, "/api/things/1/", rec.last().path)
	assert.Equal(t, "http://"+srv.Listener.Addr().String()+"/api", c.BaseURL())
}
