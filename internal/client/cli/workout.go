package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/fitsched/internal/client/models"
)

var errUsage = errors.New("invalid command arguments")

// Plans lists the workout plans with their sessions.
func (a *App) Plans(ctx context.Context) error {
	plans, err := a.workouts.GetWorkoutPlans(ctx)
	if err != nil {
		return a.report(ctx, "Loading plans", err)
	}
	if len(plans) == 0 {
		printlnFn("No workout plans yet. Use 'newplan' to generate one.")
		return nil
	}
	for i, p := range plans {
		if i > 0 {
			fmt.Fprintln(a.out)
		}
		if err := writePlan(a.out, p); err != nil {
			return err
		}
	}
	return nil
}

// NewPlan asks the backend to generate a plan. Both arguments are optional:
//
//	newplan [weeks] [start YYYY-MM-DD]
func (a *App) NewPlan(ctx context.Context, args []string) error {
	var req models.CreateWorkoutPlanRequest
	if len(args) > 2 {
		printlnFn("Usage: newplan [weeks] [start YYYY-MM-DD]")
		return errUsage
	}
	if len(args) > 0 {
		weeks, err := strconv.Atoi(args[0])
		if err != nil || weeks <= 0 {
			printlnFn("Weeks must be a positive number")
			return errUsage
		}
		req.Weeks = weeks
	}
	if len(args) > 1 {
		if _, err := time.Parse(time.DateOnly, args[1]); err != nil {
			printlnFn("Start date must look like 2006-01-02")
			return errUsage
		}
		req.StartDate = args[1]
	}

	p, err := a.workouts.CreateWorkoutPlan(ctx, req)
	if err != nil {
		return a.report(ctx, "Creating plan", err)
	}
	printlnFn("Plan created")
	return writePlan(a.out, *p)
}

// Regenerate rebuilds an existing plan from the current profile.
func (a *App) Regenerate(ctx context.Context, args []string) error {
	if len(args) != 1 {
		printlnFn("Usage: regen <plan id>")
		return errUsage
	}
	id, err := parseID(args[0])
	if err != nil {
		printlnFn("Plan id must be a positive number")
		return errUsage
	}

	p, err := a.workouts.CreateWorkoutPlan(ctx, models.CreateWorkoutPlanRequest{PlanID: id})
	if err != nil {
		return a.report(ctx, "Regenerating plan", err)
	}
	printlnFn("Plan regenerated")
	return writePlan(a.out, *p)
}

// Sessions lists every workout session of the user.
func (a *App) Sessions(ctx context.Context) error {
	sessions, err := a.workouts.GetWorkoutSessions(ctx)
	if err != nil {
		return a.report(ctx, "Loading sessions", err)
	}
	if len(sessions) == 0 {
		printlnFn("No workout sessions")
		return nil
	}
	return writeSessions(a.out, sessions)
}

// Mark sets the status of a session; the words after the status become its
// notes.
//
//	mark <session id> <status> [notes...]
func (a *App) Mark(ctx context.Context, args []string) error {
	if len(args) < 2 {
		printlnFn("Usage: mark <session id> <planned|completed|missed|rescheduled> [notes]")
		return errUsage
	}
	id, err := parseID(args[0])
	if err != nil {
		printlnFn("Session id must be a positive number")
		return errUsage
	}
	status, err := models.ParseSessionStatus(args[1])
	if err != nil {
		printlnFn(err)
		return errUsage
	}
	notes := strings.Join(args[2:], " ")

	res, err := a.workouts.UpdateWorkoutSession(ctx, id, status, notes)
	if err != nil {
		return a.report(ctx, "Updating session", err)
	}
	printlnFn(fmt.Sprintf("Session %d: %s", id, res.Status))
	return nil
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, fmt.Errorf("id must be positive, got %d", id)
	}
	return id, nil
}
