package rest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/dmitrijs2005/fitsched/internal/logging"
	"github.com/dmitrijs2005/fitsched/internal/server/auth"
	"github.com/gin-gonic/gin"
)

const (
	mockUserID     = "1"
	mockEmail      = "test@example.com"
	mockUsername   = "testuser"
	mockFullName   = "Test User"
	errInvalidJSON = "Invalid JSON"
)

type handlers struct {
	logger logging.Logger
	now    func() time.Time
}

type user struct {
	ID       string `json:"id"`
	Email    any    `json:"email,omitempty"`
	Username any    `json:"username,omitempty"`
	Name     any    `json:"name,omitempty"`
}

type authResponse struct {
	Token string `json:"token"`
	User  user   `json:"user"`
}

type profile struct {
	ID           string `json:"id"`
	User         user   `json:"user"`
	Name         any    `json:"name"`
	Availability any    `json:"availability"`
	Equipment    any    `json:"equipment"`
	FatigueLog   any    `json:"fatigue_log"`
}

// credentials is loose on purpose: the mock echoes whatever it was sent.
type credentials struct {
	Email    any `json:"email"`
	Username any `json:"username"`
	Password any `json:"password"`
}

type profilePatch struct {
	Name         any `json:"name"`
	Availability any `json:"availability"`
	Equipment    any `json:"equipment"`
	FatigueLog   any `json:"fatigue_log"`
}

func cannedUser() user {
	return user{ID: mockUserID, Email: mockEmail, Username: mockUsername, Name: mockFullName}
}

func badJSON(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidJSON})
}

// bindObject decodes a JSON object body into dst. Anything else, including
// null, an array or an empty body, is rejected.
func bindObject(c *gin.Context, dst any) bool {
	body, err := c.GetRawData()
	if err != nil {
		return false
	}
	body = bytes.TrimSpace(body)
	if len(body) == 0 || body[0] != '{' {
		return false
	}
	return json.Unmarshal(body, dst) == nil
}

func (h *handlers) register(c *gin.Context) {
	var req credentials
	if !bindObject(c, &req) {
		badJSON(c)
		return
	}
	h.logger.Debug(c.Request.Context(), "registration", "email", req.Email, "username", req.Username)

	c.JSON(http.StatusOK, authResponse{
		Token: auth.NewMockToken(h.now()),
		User:  user{ID: mockUserID, Email: req.Email, Username: req.Username, Name: req.Username},
	})
}

func (h *handlers) login(c *gin.Context) {
	var req credentials
	if !bindObject(c, &req) {
		badJSON(c)
		return
	}
	h.logger.Debug(c.Request.Context(), "login", "email", req.Email)

	c.JSON(http.StatusOK, authResponse{
		Token: auth.NewMockToken(h.now()),
		User:  user{ID: mockUserID, Email: req.Email, Username: mockUsername, Name: mockFullName},
	})
}

func (h *handlers) verify(c *gin.Context) {
	c.JSON(http.StatusOK, cannedUser())
}

func (h *handlers) getProfile(c *gin.Context) {
	c.JSON(http.StatusOK, profile{
		ID:           mockUserID,
		User:         cannedUser(),
		Name:         mockFullName,
		Availability: map[string]any{},
		Equipment:    []any{},
		FatigueLog:   []any{},
	})
}

// updateProfile echoes the patch, replacing missing or falsy fields with
// the canned defaults.
func (h *handlers) updateProfile(c *gin.Context) {
	var req profilePatch
	if !bindObject(c, &req) {
		badJSON(c)
		return
	}

	name := orDefault(req.Name, mockFullName)
	u := cannedUser()
	u.Name = name

	c.JSON(http.StatusOK, profile{
		ID:           mockUserID,
		User:         u,
		Name:         name,
		Availability: orDefault(req.Availability, map[string]any{}),
		Equipment:    orDefault(req.Equipment, []any{}),
		FatigueLog:   orDefault(req.FatigueLog, []any{}),
	})
}

func (h *handlers) emptyList(c *gin.Context) {
	c.JSON(http.StatusOK, []any{})
}

// orDefault returns def when v is absent, null, false, zero or "".
func orDefault(v, def any) any {
	switch x := v.(type) {
	case nil:
		return def
	case bool:
		if !x {
			return def
		}
	case float64:
		if x == 0 {
			return def
		}
	case string:
		if x == "" {
			return def
		}
	}
	return v
}
