package models

import (
	"fmt"
	"time"
)

// SessionStatus is the lifecycle state of a scheduled workout session.
type SessionStatus string

const (
	StatusPlanned     SessionStatus = "planned"
	StatusCompleted   SessionStatus = "completed"
	StatusMissed      SessionStatus = "missed"
	StatusRescheduled SessionStatus = "rescheduled"
)

// SessionStatuses lists every accepted status in display order.
var SessionStatuses = []SessionStatus{StatusPlanned, StatusCompleted, StatusMissed, StatusRescheduled}

func ParseSessionStatus(s string) (SessionStatus, error) {
	for _, st := range SessionStatuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("invalid session status %q", s)
}

type Exercise struct {
	Name   string  `json:"name"`
	Sets   int     `json:"sets"`
	Reps   int     `json:"reps"`
	Weight float64 `json:"weight,omitempty"`
}

type WorkoutSession struct {
	ID          int64         `json:"id" validate:"required"`
	UserProfile int64         `json:"user_profile,omitempty"`
	Plan        *int64        `json:"plan,omitempty"`
	Date        string        `json:"date"`
	Exercises   []Exercise    `json:"exercises"`
	Status      SessionStatus `json:"status" validate:"omitempty,oneof=planned completed missed rescheduled"`
	Notes       string        `json:"notes"`
}

type WorkoutPlan struct {
	ID          int64            `json:"id" validate:"required"`
	UserProfile int64            `json:"user_profile,omitempty"`
	StartDate   string           `json:"start_date"`
	Weeks       int              `json:"weeks"`
	Rationale   string           `json:"rationale"`
	LastUpdated *time.Time       `json:"last_updated,omitempty"`
	CreatedAt   *time.Time       `json:"created_at,omitempty"`
	Sessions    []WorkoutSession `json:"sessions" validate:"dive"`
}

// CreateWorkoutPlanRequest asks the backend to generate (or regenerate, with
// PlanID) a plan.
type CreateWorkoutPlanRequest struct {
	StartDate string `json:"start_date,omitempty"`
	Weeks     int    `json:"weeks,omitempty"`
	PlanID    int64  `json:"plan_id,omitempty"`
}

type UpdateSessionStatusRequest struct {
	Status SessionStatus `json:"status"`
	Notes  string        `json:"notes,omitempty"`
}

type UpdateSessionStatusResult struct {
	Status string `json:"status"`
}
