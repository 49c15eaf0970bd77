package admincli

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/hisabkitab/cli/internal/client/guard"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface defines the command surface the admin REPL dispatches to.
type execIface interface {
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Stats(ctx context.Context) error
	Users(ctx context.Context, page int) error
	Logs(ctx context.Context, page int) error
	Ban(ctx context.Context) error
	Unban(ctx context.Context) error
	flushNotifications()
}

// runREPL drives the admin command loop. Every command except login/exit is
// gated on the admin guard: an unauthenticated or non-admin session is sent
// back to the login prompt.
func runREPL(ctx context.Context, a execIface, guardFn func() guard.State, scanner *bufio.Scanner) {
	for {
		printlnFn("hk-admin> ")
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if guardFn() == guard.Granted {
				printlnFn("Available commands: stats, users [page], logs [page], ban, unban, logout, exit")
			} else {
				printlnFn("Available commands: login, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		case "stats", "users", "logs", "ban", "unban", "logout":
			if !allowed(guardFn()) {
				break
			}
			switch cmd {
			case "stats":
				_ = a.Stats(ctx)
			case "users":
				_ = a.Users(ctx, pageArg(parts))
			case "logs":
				_ = a.Logs(ctx, pageArg(parts))
			case "ban":
				_ = a.Ban(ctx)
			case "unban":
				_ = a.Unban(ctx)
			case "logout":
				_ = a.Logout(ctx)
			}

		default:
			printlnFn("Unknown command:", cmd)
		}

		a.flushNotifications()
	}
}

func allowed(s guard.State) bool {
	switch s {
	case guard.Loading:
		printlnFn("Session is still loading, try again in a moment.")
		return false
	case guard.Denied:
		printlnFn("Admin login required (login).")
		return false
	default:
		return true
	}
}

// pageArg parses an optional trailing page number, defaulting to 1.
func pageArg(parts []string) int {
	if len(parts) < 2 {
		return 1
	}
	page, err := strconv.Atoi(parts[1])
	if err != nil || page < 1 {
		return 1
	}
	return page
}
