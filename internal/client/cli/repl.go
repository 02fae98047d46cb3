package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. The real App
// satisfies it; tests provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	Home(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL reads one command per line from reader and dispatches it.
//
//	Signed out:
//	  - help             show available commands
//	  - login            sign in
//	  - signup|register  create an account and sign in
//	  - exit|quit        leave the program
//
//	Signed in:
//	  - help             show available commands
//	  - home|whoami      show the profile card
//	  - logout           sign out after confirmation
//	  - exit|quit        leave the program
//
// The auth screens are refused while signed in, the home commands while
// signed out. Handler errors are ignored here; handlers report their own.
// The loop exits on EOF, on "exit"/"quit" or when ctx is done.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}

		printlnFn(fmt.Sprintf("authshell (%s)> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := strings.ToLower(parts[0])

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: home, whoami, logout, help, exit")
			} else {
				printlnFn("Available commands: login, signup, help, exit")
			}

		case "login", "signup", "register":
			if a.isLoggedIn() {
				printlnFn("Already logged in. Use 'logout' first.")
				continue
			}
			if cmd == "login" {
				_ = a.Login(ctx)
			} else {
				_ = a.Signup(ctx)
			}

		case "home", "whoami", "logout":
			if !a.isLoggedIn() {
				printlnFn("Please login first.")
				continue
			}
			if cmd == "logout" {
				_ = a.Logout(ctx)
			} else {
				_ = a.Home(ctx)
			}

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
