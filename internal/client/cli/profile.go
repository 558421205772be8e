package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/fitsched/internal/client/models"
	"github.com/dmitrijs2005/fitsched/internal/client/services"
)

// getLines is swapped in tests like getSimpleText.
var getLines = GetLines

// Profile prints the training constraints stored on the server.
func (a *App) Profile(ctx context.Context) error {
	p, err := a.profile.Get(ctx)
	if err != nil {
		return a.report(ctx, "Loading profile", err)
	}
	return writeProfile(a.out, p)
}

// EditProfile asks for a new name, equipment list and weekly availability.
// Empty answers keep the current values.
func (a *App) EditProfile(ctx context.Context) error {
	var req models.UpdateProfileRequest

	name, err := getSimpleText(a.reader, "Name (empty to keep)", a.out)
	if err != nil {
		return err
	}
	if name != "" {
		req.Name = &name
	}

	equipment, err := getSimpleText(a.reader, "Equipment, comma separated (empty to keep)", a.out)
	if err != nil {
		return err
	}
	if items := ParseList(equipment); len(items) > 0 {
		req.Equipment = items
	}

	lines, err := getLines(a.reader, "Availability as Day=HH:MM-HH:MM[,HH:MM-HH:MM] (no lines to keep)", a.out)
	if err != nil {
		return err
	}
	if len(lines) > 0 {
		av, err := ParseAvailability(lines)
		if err != nil {
			printlnFn(err)
			return err
		}
		req.Availability = av
	}

	p, err := a.profile.Update(ctx, req)
	if errors.Is(err, services.ErrNothingToUpdate) {
		printlnFn("Nothing to update")
		return nil
	}
	if err != nil {
		return a.report(ctx, "Updating profile", err)
	}

	printlnFn("Profile updated")
	return writeProfile(a.out, p)
}

// Fatigue appends today's fatigue level to the profile.
func (a *App) Fatigue(ctx context.Context, args []string) error {
	if len(args) != 1 {
		printlnFn("Usage: fatigue <level>")
		return errUsage
	}
	level, err := strconv.Atoi(args[0])
	if err != nil || level < 0 {
		printlnFn("Fatigue level must be a non-negative number")
		return errUsage
	}

	if _, err := a.profile.LogFatigue(ctx, level); err != nil {
		return a.report(ctx, "Logging fatigue", err)
	}
	printlnFn(fmt.Sprintf("Fatigue level %d logged", level))
	return nil
}
