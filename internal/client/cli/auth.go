package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/fitsched/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for email, username and password and creates an account.
// A successful registration starts a session. The password byte slice is
// wiped before returning.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	u, err := a.auth.Register(ctx, email, username, password)
	if err != nil {
		a.expiredNotice = false
		return a.report(ctx, "Registration", err)
	}

	printlnFn(fmt.Sprintf("Registered and logged in as %s", displayName(u)))
	return nil
}

// Login prompts for credentials and starts a session.
// The password is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	u, err := a.auth.Login(ctx, email, password)
	if err != nil {
		// rejected credentials come back as 401 with the server's reason
		a.expiredNotice = false
		return a.report(ctx, "Login", err)
	}

	printlnFn(fmt.Sprintf("Logged in as %s", displayName(u)))
	return nil
}

// Logout forgets the token and the cached user.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return a.report(ctx, "Logout", err)
	}
	printlnFn("Logged out")
	return nil
}

// WhoAmI prints the user of the current session.
func (a *App) WhoAmI(ctx context.Context) error {
	u, ok := a.auth.CurrentUser()
	if !ok {
		printlnFn("Not logged in")
		return common.ErrNotLoggedIn
	}
	w := newTable(a.out)
	fmt.Fprintf(w, "ID:\t%s\n", u.ID)
	fmt.Fprintf(w, "Email:\t%s\n", u.Email)
	fmt.Fprintf(w, "Username:\t%s\n", u.Username)
	fmt.Fprintf(w, "Name:\t%s\n", u.Name)

	since, ok, err := a.auth.SessionStarted(ctx)
	if err != nil {
		a.logger.Warn(ctx, "session start unknown", "error", err)
	} else if ok {
		fmt.Fprintf(w, "Logged in since:\t%s\n", since.Local().Format(eventTimeLayout))
	}
	return w.Flush()
}
