package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/fitsched/internal/client/models"
)

// WorkoutAPI covers the user profile, workout plans and workout sessions.
type WorkoutAPI struct {
	c *Client
}

// GetUserProfile loads the caller's profile: GET /user-profile/.
func (w *WorkoutAPI) GetUserProfile(ctx context.Context) (*models.UserProfile, error) {
	var out models.UserProfile
	if err := w.c.do(ctx, "GetUserProfile", http.MethodGet, "/user-profile/", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateUserProfile sends the non-nil fields of req: PATCH /user-profile/.
func (w *WorkoutAPI) UpdateUserProfile(ctx context.Context, req models.UpdateProfileRequest) (*models.UserProfile, error) {
	var out models.UserProfile
	if err := w.c.do(ctx, "UpdateUserProfile", http.MethodPatch, "/user-profile/", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetWorkoutPlans lists the caller's plans: GET /workout-plans/.
func (w *WorkoutAPI) GetWorkoutPlans(ctx context.Context) ([]models.WorkoutPlan, error) {
	out := []models.WorkoutPlan{}
	if err := w.c.do(ctx, "GetWorkoutPlans", http.MethodGet, "/workout-plans/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateWorkoutPlan generates a plan, or regenerates req.PlanID:
// POST /workout-plans/.
func (w *WorkoutAPI) CreateWorkoutPlan(ctx context.Context, req models.CreateWorkoutPlanRequest) (*models.WorkoutPlan, error) {
	var out models.WorkoutPlan
	if err := w.c.do(ctx, "CreateWorkoutPlan", http.MethodPost, "/workout-plans/", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateWorkoutSession sets a session's status and notes:
// POST /workout-sessions/{id}/update_status/.
func (w *WorkoutAPI) UpdateWorkoutSession(ctx context.Context, id int64, status models.SessionStatus, notes string) (*models.UpdateSessionStatusResult, error) {
	var out models.UpdateSessionStatusResult
	path := "/workout-sessions/" + strconv.FormatInt(id, 10) + "/update_status/"
	req := models.UpdateSessionStatusRequest{Status: status, Notes: notes}
	if err := w.c.do(ctx, "UpdateWorkoutSession", http.MethodPost, path, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetWorkoutSessions lists the caller's sessions: GET /workout-sessions/.
func (w *WorkoutAPI) GetWorkoutSessions(ctx context.Context) ([]models.WorkoutSession, error) {
	out := []models.WorkoutSession{}
	if err := w.c.do(ctx, "GetWorkoutSessions", http.MethodGet, "/workout-sessions/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
