package rest

import (
	"net/http"
	"time"

	"github.com/dmitrijs2005/fitsched/internal/common"
	"github.com/dmitrijs2005/fitsched/internal/logging"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDKey = "request_id"

// CORS sets the JSON content type and the CORS headers on every response and
// answers preflight requests with an empty 200.
func CORS(allowedOrigin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", allowedOrigin)
		h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		h.Set("Access-Control-Allow-Credentials", "true")
		// set before any render so gin keeps it without a charset suffix
		h.Set("Content-Type", common.ContentTypeJSON)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}
		c.Next()
	}
}

// RequestLogger tags each request with a UUID, echoed in X-Request-ID, and
// logs it once the handler chain has finished.
func RequestLogger(logger logging.Logger) gin.HandlerFunc {
	logger = logger.With("module", "http")

	return func(c *gin.Context) {
		start := time.Now()

		id := uuid.NewString()
		c.Set(requestIDKey, id)
		c.Writer.Header().Set(common.RequestIDHeader, id)

		c.Next()

		logger.Info(c.Request.Context(), "request completed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"ip", c.ClientIP(),
			"duration", time.Since(start),
			requestIDKey, id,
		)
	}
}
