package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/fitsched/internal/client/models"
)

// CalendarAPI covers the Google Calendar integration.
type CalendarAPI struct {
	c *Client
}

// SyncWithGoogle pushes the sessions to Google Calendar: POST /calendar/sync/.
func (c *CalendarAPI) SyncWithGoogle(ctx context.Context) (*models.SyncResult, error) {
	var out models.SyncResult
	if err := c.c.do(ctx, "SyncWithGoogle", http.MethodPost, "/calendar/sync/", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetCalendarEvents lists the synced events: GET /calendar/events/.
func (c *CalendarAPI) GetCalendarEvents(ctx context.Context) ([]models.CalendarEvent, error) {
	out := []models.CalendarEvent{}
	if err := c.c.do(ctx, "GetCalendarEvents", http.MethodGet, "/calendar/events/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
