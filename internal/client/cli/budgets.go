package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/hisabkitab/cli/internal/client/models"
	"github.com/hisabkitab/cli/internal/client/services"
)

// ListBudgets prints all budgets with their server-computed usage.
func (a *App) ListBudgets(ctx context.Context) error {
	budgets, err := a.budgets.List(ctx)
	if err != nil {
		a.reportErr(err, "Could not load budgets")
		return err
	}

	if len(budgets) == 0 {
		printlnFn("No budgets yet.")
		return nil
	}
	for _, b := range budgets {
		printlnFn(fmt.Sprintf("#%d  %-20s %s/%s %s (%.0f%% used, %s left)",
			b.ID, b.Name, b.Spent.StringFixed(2), b.Amount.StringFixed(2), b.Period,
			b.PercentageUsed, b.Remaining.StringFixed(2)))
	}
	return nil
}

// AddBudget collects the budget fields interactively and creates it.
func (a *App) AddBudget(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter budget name", os.Stdout)
	if err != nil {
		return err
	}

	amountText, err := getSimpleText(a.reader, "Enter amount", os.Stdout)
	if err != nil {
		return err
	}
	amount, err := decimal.NewFromString(amountText)
	if err != nil {
		a.bus.Warning(fmt.Sprintf("Invalid amount %q", amountText))
		return err
	}

	periodText, err := getDefaultedText(a.reader, "Enter period (daily/weekly/monthly)", string(services.PeriodMonthly), os.Stdout)
	if err != nil {
		return err
	}
	period, err := services.ParsePeriod(periodText)
	if err != nil {
		a.bus.Warning(err.Error())
		return err
	}

	created, err := a.budgets.Create(ctx, models.BudgetCreate{
		Name:   name,
		Amount: amount,
		Period: string(period),
	})
	if err != nil {
		a.reportErr(err, "Could not save budget")
		return err
	}

	a.bus.Success(fmt.Sprintf("Budget %q saved", created.Name))
	return nil
}

// EditBudget re-collects the budget fields and updates an existing budget.
func (a *App) EditBudget(ctx context.Context) error {
	id, err := a.promptID("Enter budget id")
	if err != nil {
		return err
	}

	name, err := getSimpleText(a.reader, "Enter budget name", os.Stdout)
	if err != nil {
		return err
	}

	amountText, err := getSimpleText(a.reader, "Enter amount", os.Stdout)
	if err != nil {
		return err
	}
	amount, err := decimal.NewFromString(amountText)
	if err != nil {
		a.bus.Warning(fmt.Sprintf("Invalid amount %q", amountText))
		return err
	}

	periodText, err := getDefaultedText(a.reader, "Enter period (daily/weekly/monthly)", string(services.PeriodMonthly), os.Stdout)
	if err != nil {
		return err
	}
	period, err := services.ParsePeriod(periodText)
	if err != nil {
		a.bus.Warning(err.Error())
		return err
	}

	if _, err := a.budgets.Update(ctx, id, models.BudgetCreate{
		Name:   name,
		Amount: amount,
		Period: string(period),
	}); err != nil {
		a.reportErr(err, "Could not update budget")
		return err
	}

	a.bus.Success(fmt.Sprintf("Budget #%d updated", id))
	return nil
}

// DeleteBudget removes a budget by id.
func (a *App) DeleteBudget(ctx context.Context) error {
	id, err := a.promptID("Enter budget id")
	if err != nil {
		return err
	}

	if err := a.budgets.Delete(ctx, id); err != nil {
		a.reportErr(err, "Could not delete budget")
		return err
	}

	a.bus.Success(fmt.Sprintf("Budget #%d deleted", id))
	return nil
}
