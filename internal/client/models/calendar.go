package models

import "time"

type CalendarEvent struct {
	ID          ID        `json:"id"`
	Title       string    `json:"title"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end" validate:"gtefield=Start"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status,omitempty"`
}

type SyncResult struct {
	Status  string `json:"status,omitempty"`
	Message string `json:"message,omitempty"`
	Synced  int    `json:"synced,omitempty"`
}
