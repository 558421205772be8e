package cli

import (
	"context"
	"fmt"
)

// Events lists the calendar events of the user's sessions.
func (a *App) Events(ctx context.Context) error {
	events, err := a.calendar.GetCalendarEvents(ctx)
	if err != nil {
		return a.report(ctx, "Loading events", err)
	}
	if len(events) == 0 {
		printlnFn("No calendar events")
		return nil
	}
	return writeEvents(a.out, events)
}

// Sync pushes the sessions to Google Calendar.
func (a *App) Sync(ctx context.Context) error {
	res, err := a.calendar.SyncWithGoogle(ctx)
	if err != nil {
		return a.report(ctx, "Calendar sync", err)
	}

	msg := res.Message
	if msg == "" {
		msg = "Calendar synced"
	}
	if res.Synced > 0 {
		msg = fmt.Sprintf("%s (%d events)", msg, res.Synced)
	}
	printlnFn(msg)
	return nil
}
