// Package rest is the mock backend's HTTP surface: a gin engine serving a
// fixed subset of the API routes with canned or echoed responses.
package rest

import (
	"net/http"
	"time"

	"github.com/dmitrijs2005/fitsched/internal/logging"
	"github.com/gin-gonic/gin"
)

// RouterConfig configures NewRouter.
type RouterConfig struct {
	AllowedOrigin string
	Logger        logging.Logger
	// Now defaults to time.Now; tests pin it to get stable tokens.
	Now func() time.Time
}

// NewRouter builds the mock API. Paths are matched literally, including the
// trailing slash; anything else, including a known path with the wrong
// method, is answered with 404 {"error":"Not found"}.
func NewRouter(cfg RouterConfig) *gin.Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Nop()
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	r := gin.New()
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false
	r.HandleMethodNotAllowed = false

	r.Use(gin.Recovery(), RequestLogger(logger), CORS(cfg.AllowedOrigin))

	h := &handlers{logger: logger.With("module", "handlers"), now: now}

	api := r.Group("/api")
	{
		api.POST("/auth/register/", h.register)
		api.POST("/auth/login/", h.login)
		api.GET("/auth/verify/", h.verify)

		api.GET("/user-profile/", h.getProfile)
		api.PATCH("/user-profile/", h.updateProfile)

		api.GET("/workout-plans/", h.emptyList)
		api.GET("/workout-sessions/", h.emptyList)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})

	return r
}
