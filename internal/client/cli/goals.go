package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/hisabkitab/cli/internal/client/models"
)

// ListGoals prints all savings goals with their progress.
func (a *App) ListGoals(ctx context.Context) error {
	goals, err := a.goals.List(ctx)
	if err != nil {
		a.reportErr(err, "Could not load goals")
		return err
	}

	if len(goals) == 0 {
		printlnFn("No goals yet.")
		return nil
	}
	for _, g := range goals {
		status := ""
		if g.IsCompleted {
			status = "  [done]"
		}
		printlnFn(fmt.Sprintf("#%d  %-20s %s/%s%s",
			g.ID, g.Name, g.CurrentAmount.StringFixed(2), g.TargetAmount.StringFixed(2), status))
	}
	return nil
}

// AddGoal collects the goal fields interactively and creates it.
func (a *App) AddGoal(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter goal name", os.Stdout)
	if err != nil {
		return err
	}

	targetText, err := getSimpleText(a.reader, "Enter target amount", os.Stdout)
	if err != nil {
		return err
	}
	target, err := decimal.NewFromString(targetText)
	if err != nil {
		a.bus.Warning(fmt.Sprintf("Invalid amount %q", targetText))
		return err
	}

	targetDate, err := getSimpleText(a.reader, "Enter target date (YYYY-MM-DD, optional)", os.Stdout)
	if err != nil {
		return err
	}

	created, err := a.goals.Create(ctx, models.GoalCreate{
		Name:         name,
		TargetAmount: target,
		TargetDate:   targetDate,
	})
	if err != nil {
		a.reportErr(err, "Could not save goal")
		return err
	}

	a.bus.Success(fmt.Sprintf("Goal %q saved", created.Name))
	return nil
}

// EditGoal records progress on a goal by setting its saved amount.
func (a *App) EditGoal(ctx context.Context) error {
	id, err := a.promptID("Enter goal id")
	if err != nil {
		return err
	}

	savedText, err := getSimpleText(a.reader, "Enter saved amount", os.Stdout)
	if err != nil {
		return err
	}
	saved, err := decimal.NewFromString(savedText)
	if err != nil {
		a.bus.Warning(fmt.Sprintf("Invalid amount %q", savedText))
		return err
	}

	updated, err := a.goals.Update(ctx, id, models.GoalUpdate{CurrentAmount: &saved})
	if err != nil {
		a.reportErr(err, "Could not update goal")
		return err
	}

	if updated.IsCompleted {
		a.bus.Success(fmt.Sprintf("Goal %q reached!", updated.Name))
	} else {
		a.bus.Success(fmt.Sprintf("Goal #%d updated", id))
	}
	return nil
}

// DeleteGoal removes a goal by id.
func (a *App) DeleteGoal(ctx context.Context) error {
	id, err := a.promptID("Enter goal id")
	if err != nil {
		return err
	}

	if err := a.goals.Delete(ctx, id); err != nil {
		a.reportErr(err, "Could not delete goal")
		return err
	}

	a.bus.Success(fmt.Sprintf("Goal #%d deleted", id))
	return nil
}

// ListCategories prints the available expense categories.
func (a *App) ListCategories(ctx context.Context) error {
	categories, err := a.categories.List(ctx)
	if err != nil {
		a.reportErr(err, "Could not load categories")
		return err
	}

	for _, c := range categories {
		printlnFn(fmt.Sprintf("#%d  %s", c.ID, c.Name))
	}
	return nil
}

// AddCategory creates a custom expense category.
func (a *App) AddCategory(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter category name", os.Stdout)
	if err != nil {
		return err
	}

	created, err := a.categories.Create(ctx, models.CategoryCreate{Name: name})
	if err != nil {
		a.reportErr(err, "Could not save category")
		return err
	}

	a.bus.Success(fmt.Sprintf("Category %q saved", created.Name))
	return nil
}
