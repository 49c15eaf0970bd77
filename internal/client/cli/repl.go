package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/hisabkitab/cli/internal/client/guard"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Login(ctx context.Context) error
	ProviderLogin(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error

	Dashboard(ctx context.Context) error
	ListExpenses(ctx context.Context) error
	AddExpense(ctx context.Context) error
	EditExpense(ctx context.Context) error
	DeleteExpense(ctx context.Context) error
	Export(ctx context.Context, format string) error
	ListBudgets(ctx context.Context) error
	AddBudget(ctx context.Context) error
	EditBudget(ctx context.Context) error
	DeleteBudget(ctx context.Context) error
	ListGoals(ctx context.Context) error
	AddGoal(ctx context.Context) error
	EditGoal(ctx context.Context) error
	DeleteGoal(ctx context.Context) error
	ListCategories(ctx context.Context) error
	AddCategory(ctx context.Context) error
	Insights(ctx context.Context) error
	Chat(ctx context.Context) error
	ParseTranscript(ctx context.Context) error

	flushNotifications()
}

// runREPL starts a read–eval–print loop. It reads a line from the scanner,
// parses the first token as the command, and dispatches to methods on 'a'.
// Protected commands are gated by guardFn: Loading prints a placeholder,
// Denied redirects the user to the login prompt, Granted dispatches. The loop
// exits on scanner EOF or when the user types "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers report
// through the notification bus, which is flushed after every command.
func runREPL(ctx context.Context, a execIface, guardFn func() guard.State, statusFn func() string, scanner *bufio.Scanner) {
	open := map[string]func(context.Context) error{
		"login":    a.Login,
		"glogin":   a.ProviderLogin,
		"register": a.Register,
	}
	protected := map[string]func(context.Context) error{
		"dashboard":  a.Dashboard,
		"expenses":   a.ListExpenses,
		"add":        a.AddExpense,
		"edit":       a.EditExpense,
		"del":        a.DeleteExpense,
		"budgets":    a.ListBudgets,
		"addbudget":  a.AddBudget,
		"editbudget": a.EditBudget,
		"delbudget":  a.DeleteBudget,
		"goals":      a.ListGoals,
		"addgoal":    a.AddGoal,
		"editgoal":   a.EditGoal,
		"delgoal":    a.DeleteGoal,
		"categories": a.ListCategories,
		"addcat":     a.AddCategory,
		"insights":   a.Insights,
		"chat":       a.Chat,
		"parse":      a.ParseTranscript,
		"whoami":     a.WhoAmI,
		"logout":     a.Logout,
	}

	for {
		printlnFn(fmt.Sprintf("hk %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch {
		case cmd == "help":
			if guardFn() == guard.Granted {
				printlnFn("Available commands: dashboard, expenses, add, edit, del, export csv|pdf,")
				printlnFn("  budgets, addbudget, editbudget, delbudget, goals, addgoal, editgoal,")
				printlnFn("  delgoal, categories, addcat, insights, chat, parse, whoami, logout, exit")
			} else {
				printlnFn("Available commands: login, glogin, register, exit")
			}

		case cmd == "exit" || cmd == "quit":
			printlnFn("Bye!")
			return

		case cmd == "export":
			if !allowed(guardFn()) {
				break
			}
			format := "csv"
			if len(parts) > 1 {
				format = parts[1]
			}
			_ = a.Export(ctx, format)

		default:
			if h, ok := open[cmd]; ok {
				_ = h(ctx)
				break
			}
			if h, ok := protected[cmd]; ok {
				if allowed(guardFn()) {
					_ = h(ctx)
				}
				break
			}
			printlnFn("Unknown command:", cmd)
		}

		a.flushNotifications()
	}
}

// allowed prints the guard's verdict for non-granted states.
func allowed(s guard.State) bool {
	switch s {
	case guard.Loading:
		printlnFn("Session is still loading, try again in a moment.")
		return false
	case guard.Denied:
		printlnFn("Please log in first (login).")
		return false
	default:
		return true
	}
}
