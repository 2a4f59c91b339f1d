package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a
// lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Home(ctx context.Context) error
	Blogs(ctx context.Context) error
	Refresh(ctx context.Context) error
	AddBlog(ctx context.Context) error
	Profile(ctx context.Context) error
	EditBlog(ctx context.Context) error
	DeleteBlog(ctx context.Context) error
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	ToggleTheme(ctx context.Context) error
	About(ctx context.Context) error
}

// runREPL starts a read-eval-print loop over the app's views.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers
// surface their own errors. This keeps the REPL loop resilient and focused
// on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner, w io.Writer) {
	for {
		fmt.Fprintf(w, "blog %s> ", statusFn())
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(w, "Available commands: home, (b)logs, refresh, add, profile, edit, delete, theme, about, logout, exit")
			} else {
				fmt.Fprintln(w, "Available commands: home, (b)logs, refresh, login, register, theme, about, exit")
			}

		case "home":
			_ = a.Home(ctx)

		case "b", "blogs":
			_ = a.Blogs(ctx)

		case "refresh":
			_ = a.Refresh(ctx)

		case "add":
			_ = a.AddBlog(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "edit":
			_ = a.EditBlog(ctx)

		case "delete":
			_ = a.DeleteBlog(ctx)

		case "login":
			_ = a.Login(ctx)

		case "register":
			_ = a.Register(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "theme":
			_ = a.ToggleTheme(ctx)

		case "about":
			_ = a.About(ctx)

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}
	}
}
