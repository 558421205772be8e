package models

import "time"

// Availability maps a weekday name ("Monday") to hourly slots such as
// "18:00-19:00".
type Availability map[string][]string

type FatigueEntry struct {
	Date  string `json:"date"`
	Level int    `json:"level" validate:"gte=0"`
}

type UserProfile struct {
	ID           ID             `json:"id"`
	User         User           `json:"user"`
	Name         string         `json:"name"`
	Availability Availability   `json:"availability"`
	Equipment    []string       `json:"equipment"`
	FatigueLog   []FatigueEntry `json:"fatigue_log" validate:"dive"`
	CreatedAt    *time.Time     `json:"created_at,omitempty"`
	UpdatedAt    *time.Time     `json:"updated_at,omitempty"`
}

// UpdateProfileRequest is a partial profile; nil fields are not sent.
type UpdateProfileRequest struct {
	Name         *string        `json:"name,omitempty"`
	Availability Availability   `json:"availability,omitempty"`
	Equipment    []string       `json:"equipment,omitempty"`
	FatigueLog   []FatigueEntry `json:"fatigue_log,omitempty"`
}

// Empty reports whether the request would send no fields.
func (r UpdateProfileRequest) Empty() bool {
	return r.Name == nil && r.Availability == nil && r.Equipment == nil && r.FatigueLog == nil
}
