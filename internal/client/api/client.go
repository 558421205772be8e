package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/fitsched/internal/common"
	"github.com/dmitrijs2005/fitsched/internal/logging"
)

const defaultTimeout = 15 * time.Second

// Options overrides the client's dependencies. The zero value is usable.
type Options struct {
	// HTTPClient is used as is; Timeout is ignored when it is set.
	HTTPClient *http.Client
	Logger     logging.Logger
	Timeout    time.Duration

	// OnSessionInvalidated runs once for every 401 response, after the
	// token has been cleared.
	OnSessionInvalidated func(ctx context.Context)

	// RequestInterceptors run after the bearer token interceptor, in order.
	RequestInterceptors []RequestInterceptor
}

// Client sends JSON requests to the fitness-scheduling API. It is safe for
// concurrent use; build one per process and reach the endpoints through
// Auth, Workouts and Calendar.
type Client struct {
	baseURL      *url.URL
	httpClient   *http.Client
	tokens       TokenSource
	logger       logging.Logger
	interceptors []RequestInterceptor
	onInvalid    func(ctx context.Context)
}

// New validates baseURL (http or https) and builds a Client whose requests
// carry the bearer token from tokens. On a 401 the token is cleared and
// opts.OnSessionInvalidated is called.
func New(baseURL string, tokens TokenSource, opts Options) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("baseURL is empty")
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse baseURL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("baseURL %q: scheme must be http or https", baseURL)
	}
	if tokens == nil {
		return nil, errors.New("token source is nil")
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.Nop()
	}
	logger = logger.With("module", "api")

	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	interceptors := make([]RequestInterceptor, 0, len(opts.RequestInterceptors)+1)
	interceptors = append(interceptors, BearerToken(tokens, logger))
	interceptors = append(interceptors, opts.RequestInterceptors...)

	return &Client{
		baseURL:      parsed,
		httpClient:   httpClient,
		tokens:       tokens,
		logger:       logger,
		interceptors: interceptors,
		onInvalid:    opts.OnSessionInvalidated,
	}, nil
}

// BaseURL returns the configured API root.
func (c *Client) BaseURL() string { return c.baseURL.String() }

// Auth, Workouts and Calendar return the typed endpoint groups.
func (c *Client) Auth() *AuthAPI         { return &AuthAPI{c: c} }
func (c *Client) Workouts() *WorkoutAPI  { return &WorkoutAPI{c: c} }
func (c *Client) Calendar() *CalendarAPI { return &CalendarAPI{c: c} }

// Do sends a JSON request to path (relative to the base URL, trailing slash
// kept) and decodes a 2xx body into out. in and out may be nil.
func (c *Client) Do(ctx context.Context, method, path string, in, out any) error {
	return c.do(ctx, method+" "+path, method, path, in, out)
}

func (c *Client) do(ctx context.Context, op, method, path string, in, out any) error {
	req, err := c.newRequest(ctx, method, path, in)
	if err != nil {
		return &Error{Op: op, Kind: KindTransport, Err: err}
	}

	for _, intercept := range c.interceptors {
		if err := intercept(ctx, req); err != nil {
			return &Error{Op: op, Kind: KindTransport, Err: err}
		}
	}

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn(ctx, "request failed", "method", method, "path", path, "error", err)
		return &Error{Op: op, Kind: KindTransport, Err: err}
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Op: op, Kind: KindTransport, Status: resp.StatusCode, Err: fmt.Errorf("read body: %w", err)}
	}

	c.logger.Debug(ctx, "request completed",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(started),
	)

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		c.invalidateSession(ctx)
		return &Error{
			Op:      op,
			Kind:    KindUnauthorized,
			Status:  resp.StatusCode,
			Message: serverMessage(payload),
			Payload: payload,
			Err:     ErrUnauthorized,
		}
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return &Error{
			Op:      op,
			Kind:    KindStatus,
			Status:  resp.StatusCode,
			Message: serverMessage(payload),
			Payload: payload,
			Err:     fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}

	if out == nil {
		return nil
	}
	if len(bytes.TrimSpace(payload)) == 0 {
		if resp.StatusCode == http.StatusNoContent {
			return nil
		}
		return &Error{Op: op, Kind: KindDecode, Status: resp.StatusCode, Err: errors.New("empty body")}
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return &Error{Op: op, Kind: KindDecode, Status: resp.StatusCode, Payload: payload, Err: err}
	}
	if err := validateBody(out); err != nil {
		return &Error{Op: op, Kind: KindDecode, Status: resp.StatusCode, Payload: payload, Err: err}
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, in any) (*http.Request, error) {
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + "/" + strings.TrimLeft(path, "/")
	u.RawPath = ""

	var body io.Reader
	if in != nil {
		buf := &bytes.Buffer{}
		if err := json.NewEncoder(buf).Encode(in); err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		body = buf
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", common.ContentTypeJSON)
	req.Header.Set("Accept", common.ContentTypeJSON)
	return req, nil
}

func (c *Client) invalidateSession(ctx context.Context) {
	if err := c.tokens.Clear(ctx); err != nil {
		c.logger.Error(ctx, "failed to clear token after 401", "error", err)
	}
	c.logger.Info(ctx, "session invalidated by server")
	if c.onInvalid != nil {
		c.onInvalid(ctx)
	}
}
