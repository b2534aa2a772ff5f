package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/caremate-ai/caremate/internal/client/session"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL needs to operate. The real
// App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	state() session.State
	Onboard(ctx context.Context) error
	Consent(ctx context.Context) error
	Signup(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Intake(ctx context.Context) error
	Predict(ctx context.Context) error
	Chat(ctx context.Context, text string) error
	Doctors(ctx context.Context) error
	Book(ctx context.Context) error
	Reports(ctx context.Context) error
	Report(ctx context.Context, id string) error
	Dashboard(ctx context.Context) error
	Ping(ctx context.Context) error
	Reset(ctx context.Context) error
}

// authCommands are available before the user is authenticated; mainCommands
// unlock once the gating progression reaches the authenticated state.
var (
	authCommands = map[string]bool{
		"onboard": true, "consent": true, "signup": true, "login": true,
	}
	mainCommands = map[string]bool{
		"whoami": true, "intake": true, "predict": true, "chat": true,
		"doctors": true, "book": true, "reports": true, "report": true,
		"dashboard": true, "logout": true,
	}
)

// runREPL reads a line from the scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands are gated: before authentication only the progression commands
// (onboard, consent, signup, login) are accepted, and each of those checks
// its own precondition; the health commands require the authenticated state.
// "help", "ping", "reset", and "exit" work in any state.
//
// Errors returned by command handlers are printed and swallowed here so the
// loop stays alive.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("caremate %s %s> ", a.state(), statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		state := a.state()

		if mainCommands[cmd] && state != session.StateAuthenticated {
			printlnFn(gatePrompt(state))
			continue
		}
		if authCommands[cmd] && state == session.StateAuthenticated {
			printlnFn("Already logged in. Type 'logout' first.")
			continue
		}

		var err error
		switch cmd {
		case "help":
			printHelp(state)

		case "onboard":
			err = a.Onboard(ctx)
		case "consent":
			err = a.Consent(ctx)
		case "signup":
			err = a.Signup(ctx)
		case "login":
			err = a.Login(ctx)
		case "logout":
			err = a.Logout(ctx)
		case "whoami":
			err = a.Whoami(ctx)

		case "intake":
			err = a.Intake(ctx)
		case "predict":
			err = a.Predict(ctx)
		case "chat":
			err = a.Chat(ctx, strings.Join(args, " "))
		case "doctors":
			err = a.Doctors(ctx)
		case "book":
			err = a.Book(ctx)
		case "reports":
			err = a.Reports(ctx)
		case "report":
			if len(args) == 0 {
				printlnFn("Usage: report <id>")
				continue
			}
			err = a.Report(ctx, args[0])
		case "dashboard":
			err = a.Dashboard(ctx)

		case "ping":
			err = a.Ping(ctx)
		case "reset":
			err = a.Reset(ctx)

		case "exit", "quit":
			printlnFn("Take care!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err.Error())
		}
	}
}

// gatePrompt tells the user which progression step is still missing.
func gatePrompt(state session.State) string {
	switch state {
	case session.StateNeedsOnboarding:
		return "Please finish onboarding first (type 'onboard')."
	case session.StateNeedsConsent:
		return "Please review the consent notice first (type 'consent')."
	default:
		return "Please log in first (type 'login' or 'signup')."
	}
}

func printHelp(state session.State) {
	switch state {
	case session.StateNeedsOnboarding:
		printlnFn("Available commands: onboard, ping, reset, exit")
	case session.StateNeedsConsent:
		printlnFn("Available commands: consent, ping, reset, exit")
	case session.StateNeedsLogin:
		printlnFn("Available commands: signup, login, ping, reset, exit")
	default:
		printlnFn("Available commands: whoami, intake, predict, chat <message>, doctors, book, reports, report <id>, dashboard, logout, ping, reset, exit")
	}
}
