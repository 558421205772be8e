package cli

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dmitrijs2005/fitsched/internal/client/models"
)

const eventTimeLayout = "2006-01-02 15:04"

var weekdayOrder = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// sortedDays returns the keys of av in weekday order; unknown keys follow
// alphabetically.
func sortedDays(av models.Availability) []string {
	days := make([]string, 0, len(av))
	for d := range av {
		days = append(days, d)
	}
	rank := func(d string) int {
		if i := slices.Index(weekdayOrder, d); i >= 0 {
			return i
		}
		return len(weekdayOrder)
	}
	slices.SortFunc(days, func(x, y string) int {
		if rx, ry := rank(x), rank(y); rx != ry {
			return rx - ry
		}
		return strings.Compare(x, y)
	})
	return days
}

func formatExercises(ex []models.Exercise) string {
	if len(ex) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(ex))
	for _, e := range ex {
		s := fmt.Sprintf("%s %dx%d", e.Name, e.Sets, e.Reps)
		if e.Weight > 0 {
			s += fmt.Sprintf(" @%g", e.Weight)
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, ", ")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func writeProfile(w io.Writer, p *models.UserProfile) error {
	t := newTable(w)
	fmt.Fprintf(t, "Name:\t%s\n", orDash(p.Name))
	fmt.Fprintf(t, "Email:\t%s\n", orDash(p.User.Email))
	fmt.Fprintf(t, "Equipment:\t%s\n", orDash(strings.Join(p.Equipment, ", ")))

	if len(p.Availability) == 0 {
		fmt.Fprintf(t, "Availability:\t-\n")
	} else {
		fmt.Fprintf(t, "Availability:\t\n")
		for _, d := range sortedDays(p.Availability) {
			fmt.Fprintf(t, "  %s\t%s\n", d, orDash(strings.Join(p.Availability[d], ", ")))
		}
	}

	if len(p.FatigueLog) == 0 {
		fmt.Fprintf(t, "Fatigue log:\t-\n")
	} else {
		fmt.Fprintf(t, "Fatigue log:\t\n")
		for _, e := range p.FatigueLog {
			fmt.Fprintf(t, "  %s\t%d\n", e.Date, e.Level)
		}
	}
	return t.Flush()
}

func writeSessions(w io.Writer, sessions []models.WorkoutSession) error {
	t := newTable(w)
	fmt.Fprintln(t, "ID\tDATE\tSTATUS\tEXERCISES\tNOTES")
	for _, s := range sessions {
		fmt.Fprintf(t, "%d\t%s\t%s\t%s\t%s\n", s.ID, s.Date, orDash(string(s.Status)), formatExercises(s.Exercises), orDash(s.Notes))
	}
	return t.Flush()
}

func writePlan(w io.Writer, p models.WorkoutPlan) error {
	fmt.Fprintf(w, "Plan #%d: %d week(s) from %s\n", p.ID, p.Weeks, orDash(p.StartDate))
	if p.Rationale != "" {
		fmt.Fprintf(w, "Rationale: %s\n", p.Rationale)
	}
	if p.LastUpdated != nil {
		fmt.Fprintf(w, "Last updated: %s\n", p.LastUpdated.Local().Format(eventTimeLayout))
	}
	if len(p.Sessions) == 0 {
		fmt.Fprintln(w, "No sessions")
		return nil
	}
	return writeSessions(w, p.Sessions)
}

func writeEvents(w io.Writer, events []models.CalendarEvent) error {
	t := newTable(w)
	fmt.Fprintln(t, "ID\tTITLE\tSTART\tEND\tSTATUS")
	for _, e := range events {
		fmt.Fprintf(t, "%s\t%s\t%s\t%s\t%s\n", e.ID, e.Title, formatTime(e.Start), formatTime(e.End), orDash(e.Status))
	}
	return t.Flush()
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(eventTimeLayout)
}
