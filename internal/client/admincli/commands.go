package admincli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/hisabkitab/cli/internal/client/api"
)

const (
	userPageSize = 20
	logPageSize  = 50
)

// Stats prints the system-wide counters.
func (a *App) Stats(ctx context.Context) error {
	stats, err := a.admin.Stats(ctx)
	if err != nil {
		a.bus.Error(api.Detail(err, "Could not load stats"))
		return err
	}

	printlnFn(fmt.Sprintf("Users: %d (%d active)", stats.TotalUsers, stats.ActiveUsers))
	printlnFn(fmt.Sprintf("Expenses: %d totalling %s", stats.TotalExpenses, stats.TotalAmount.StringFixed(2)))
	printlnFn(fmt.Sprintf("AI features used: %d", stats.AIFeaturesUsed))
	return nil
}

// Users prints one page of the user listing.
func (a *App) Users(ctx context.Context, page int) error {
	users, err := a.admin.Users(ctx, page, userPageSize)
	if err != nil {
		a.bus.Error(api.Detail(err, "Could not load users"))
		return err
	}

	for _, u := range users.Items {
		state := "active"
		if !u.IsActive {
			state = "banned"
		}
		printlnFn(fmt.Sprintf("#%d  %-30s %-8s %d expenses, %s spent",
			u.ID, u.Email, state, u.ExpenseCount, u.TotalSpent.StringFixed(2)))
	}
	printlnFn(fmt.Sprintf("Page %d, %d users total", page, users.Total))
	return nil
}

// Logs prints one page of the audit log.
func (a *App) Logs(ctx context.Context, page int) error {
	logs, err := a.admin.Logs(ctx, page, logPageSize)
	if err != nil {
		a.bus.Error(api.Detail(err, "Could not load audit logs"))
		return err
	}

	for _, l := range logs.Items {
		printlnFn(fmt.Sprintf("%s  %-20s user=%d  %s",
			l.Timestamp.Format("2006-01-02 15:04:05"), l.EventType, l.UserID, l.Description))
	}
	printlnFn(fmt.Sprintf("Page %d, %d records total", page, logs.Total))
	return nil
}

// Ban disables a user account by id.
func (a *App) Ban(ctx context.Context) error {
	id, err := a.promptUserID()
	if err != nil {
		return err
	}
	if err := a.admin.BanUser(ctx, id); err != nil {
		a.bus.Error(api.Detail(err, "Could not ban user"))
		return err
	}
	a.bus.Success(fmt.Sprintf("User #%d banned", id))
	return nil
}

// Unban re-enables a user account by id.
func (a *App) Unban(ctx context.Context) error {
	id, err := a.promptUserID()
	if err != nil {
		return err
	}
	if err := a.admin.UnbanUser(ctx, id); err != nil {
		a.bus.Error(api.Detail(err, "Could not unban user"))
		return err
	}
	a.bus.Success(fmt.Sprintf("User #%d unbanned", id))
	return nil
}

func (a *App) promptUserID() (int, error) {
	text, err := getSimpleText(a.reader, "Enter user id", os.Stdout)
	if err != nil {
		return 0, err
	}
	id, err := strconv.Atoi(text)
	if err != nil || id <= 0 {
		a.bus.Warning(fmt.Sprintf("Invalid user id %q", text))
		return 0, fmt.Errorf("invalid user id %q", text)
	}
	return id, nil
}
