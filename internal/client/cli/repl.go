package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Profile(ctx context.Context) error
	EditProfile(ctx context.Context) error
	Fatigue(ctx context.Context, args []string) error
	Plans(ctx context.Context) error
	NewPlan(ctx context.Context, args []string) error
	Regenerate(ctx context.Context, args []string) error
	Sessions(ctx context.Context) error
	Mark(ctx context.Context, args []string) error
	Events(ctx context.Context) error
	Sync(ctx context.Context) error
}

const (
	helpGuest = "Available commands: register, login, exit"
	helpUser  = "Available commands: whoami, profile, editprofile, fatigue <1-10>, plans, " +
		"newplan [weeks] [start YYYY-MM-DD], regen <plan id>, sessions, " +
		"mark <session id> <planned|completed|missed|rescheduled> [notes], events, sync, logout, exit"
)

// runREPL starts a simple read-eval-print loop for the fitsched CLI.
//
// It reads a line from reader, parses the first token as the command and
// dispatches to methods on 'a'; the remaining tokens are passed as
// arguments. The loop exits on EOF or when the user types "exit" or "quit".
//
// The prompt shows the current status (from statusFn). Commands other than
// help, register, login and exit need a live session.
//
// Errors returned by command handlers are ignored here; handlers print
// their own messages.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("fs> %s > ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpUser)
			} else {
				printlnFn(helpGuest)
			}
			continue

		case "register":
			_ = a.Register(ctx)
			continue

		case "login":
			_ = a.Login(ctx)
			continue

		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		if !a.isLoggedIn() {
			if isUserCommand(cmd) {
				printlnFn("Please log in first")
			} else {
				printlnFn("Unknown command:", cmd)
			}
			continue
		}

		switch cmd {
		case "whoami":
			_ = a.WhoAmI(ctx)
		case "profile":
			_ = a.Profile(ctx)
		case "editprofile":
			_ = a.EditProfile(ctx)
		case "fatigue":
			_ = a.Fatigue(ctx, args)
		case "plans":
			_ = a.Plans(ctx)
		case "newplan":
			_ = a.NewPlan(ctx, args)
		case "regen":
			_ = a.Regenerate(ctx, args)
		case "sessions":
			_ = a.Sessions(ctx)
		case "mark":
			_ = a.Mark(ctx, args)
		case "events":
			_ = a.Events(ctx)
		case "sync":
			_ = a.Sync(ctx)
		case "logout":
			_ = a.Logout(ctx)
		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func isUserCommand(cmd string) bool {
	switch cmd {
	case "whoami", "profile", "editprofile", "fatigue", "plans", "newplan",
		"regen", "sessions", "mark", "events", "sync", "logout":
		return true
	}
	return false
}
