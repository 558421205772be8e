package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/fitsched/internal/common"
	"github.com/dmitrijs2005/fitsched/internal/logging"
)

// TokenSource is the part of the token store the client needs.
type TokenSource interface {
	Get(ctx context.Context) (string, bool, error)
	Clear(ctx context.Context) error
}

// RequestInterceptor may modify an outgoing request. A non-nil error aborts
// the call with KindTransport.
type RequestInterceptor func(ctx context.Context, req *http.Request) error

// BearerToken attaches "Authorization: Bearer <token>" when the source holds
// a token and leaves the header unset otherwise. A failing source is logged
// and the request goes out unauthenticated.
func BearerToken(tokens TokenSource, logger logging.Logger) RequestInterceptor {
	return func(ctx context.Context, req *http.Request) error {
		req.Header.Del(common.AuthorizationHeader)

		token, ok, err := tokens.Get(ctx)
		if err != nil {
			logger.Warn(ctx, "token read failed, sending request without credentials", "error", err)
			return nil
		}
		if ok && token != "" {
			req.Header.Set(common.AuthorizationHeader, common.BearerPrefix+token)
		}
		return nil
	}
}

// Header returns an interceptor that sets a fixed header.
func Header(name, value string) RequestInterceptor {
	return func(_ context.Context, req *http.Request) error {
		req.Header.Set(name, value)
		return nil
	}
}
