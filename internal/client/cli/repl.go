package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = func(a ...any) { fmt.Println(a...) }

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Predict(ctx context.Context) error
	History(ctx context.Context) error
	Show(ctx context.Context, id string) error
	Profile(ctx context.Context) error
	SetName(ctx context.Context) error
	Avatar(ctx context.Context, path string) error
	Symptoms(query string) error
	WhoAmI(ctx context.Context) error
}

// runREPL starts the read–eval–print loop for the medadvisor CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers report
// their own failures. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("med %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		arg := ""
		if len(parts) > 1 {
			arg = parts[1]
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: predict, history, show <id>, profile, setname, avatar <path>, symptoms [filter], whoami, logout, exit")
			} else {
				printlnFn("Available commands: register, login, symptoms [filter], exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "predict":
			_ = a.Predict(ctx)

		case "h", "history":
			_ = a.History(ctx)

		case "show":
			_ = a.Show(ctx, arg)

		case "profile":
			_ = a.Profile(ctx)

		case "setname":
			_ = a.SetName(ctx)

		case "avatar":
			_ = a.Avatar(ctx, arg)

		case "symptoms":
			_ = a.Symptoms(arg)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
