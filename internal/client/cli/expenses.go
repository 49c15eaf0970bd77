package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/hisabkitab/cli/internal/client/models"
	"github.com/hisabkitab/cli/internal/filex"
)

const expensePageSize = 20

// exportDir is where downloaded reports are written, relative to the working
// directory.
const exportDir = "reports"

// ListExpenses prints the most recent expenses.
func (a *App) ListExpenses(ctx context.Context) error {
	expenses, err := a.expenses.List(ctx, 0, expensePageSize)
	if err != nil {
		a.reportErr(err, "Could not load expenses")
		return err
	}

	if len(expenses) == 0 {
		printlnFn("No expenses yet.")
		return nil
	}
	for _, e := range expenses {
		printlnFn(fmt.Sprintf("#%d  %s  %s  %s  %s",
			e.ID, e.Date.Format("2006-01-02"), e.Amount.StringFixed(2), e.CategoryName, e.Description))
	}
	return nil
}

// AddExpense collects the expense fields interactively and creates it. An
// empty category triggers an AI suggestion based on the description.
func (a *App) AddExpense(ctx context.Context) error {
	exp, err := a.promptExpense(ctx)
	if err != nil {
		return err
	}

	created, err := a.expenses.Create(ctx, *exp)
	if err != nil {
		a.reportErr(err, "Could not save expense")
		return err
	}

	a.bus.Success(fmt.Sprintf("Expense #%d saved", created.ID))
	return nil
}

// EditExpense updates an existing expense by id.
func (a *App) EditExpense(ctx context.Context) error {
	id, err := a.promptID("Enter expense id")
	if err != nil {
		return err
	}
	exp, err := a.promptExpense(ctx)
	if err != nil {
		return err
	}

	if _, err := a.expenses.Update(ctx, id, *exp); err != nil {
		a.reportErr(err, "Could not update expense")
		return err
	}

	a.bus.Success(fmt.Sprintf("Expense #%d updated", id))
	return nil
}

// DeleteExpense removes an expense by id.
func (a *App) DeleteExpense(ctx context.Context) error {
	id, err := a.promptID("Enter expense id")
	if err != nil {
		return err
	}

	if err := a.expenses.Delete(ctx, id); err != nil {
		a.reportErr(err, "Could not delete expense")
		return err
	}

	a.bus.Success(fmt.Sprintf("Expense #%d deleted", id))
	return nil
}

// Export downloads the CSV or PDF report into the local reports directory.
func (a *App) Export(ctx context.Context, format string) error {
	var (
		name string
		data []byte
		err  error
	)
	switch format {
	case "csv":
		name, data, err = a.expenses.ExportCSV(ctx)
	case "pdf":
		name, data, err = a.expenses.ExportPDF(ctx)
	default:
		printlnFn("Usage: export csv|pdf")
		return nil
	}
	if err != nil {
		a.reportErr(err, "Export failed")
		return err
	}

	dir, err := filex.EnsureSubDir(exportDir)
	if err != nil {
		a.reportErr(err, "Export failed")
		return err
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o660); err != nil {
		a.reportErr(err, "Export failed")
		return err
	}

	a.bus.Success(fmt.Sprintf("Report saved to %s", path))
	return nil
}

// promptExpense collects the fields shared by add and edit.
func (a *App) promptExpense(ctx context.Context) (*models.ExpenseCreate, error) {
	amountText, err := getSimpleText(a.reader, "Enter amount", os.Stdout)
	if err != nil {
		return nil, err
	}
	amount, err := decimal.NewFromString(amountText)
	if err != nil {
		a.bus.Warning(fmt.Sprintf("Invalid amount %q", amountText))
		return nil, err
	}

	description, err := getSimpleText(a.reader, "Enter description", os.Stdout)
	if err != nil {
		return nil, err
	}

	categoryText, err := getSimpleText(a.reader, "Enter category id (empty for AI suggestion)", os.Stdout)
	if err != nil {
		return nil, err
	}

	exp := &models.ExpenseCreate{Amount: amount, Description: description}
	if categoryText == "" {
		if suggestion, err := a.ai.SuggestCategory(ctx, description, amount); err == nil {
			exp.CategoryID = suggestion.CategoryID
			printlnFn(fmt.Sprintf("Suggested category: %s", suggestion.CategoryName))
		}
	} else {
		id, err := strconv.Atoi(categoryText)
		if err != nil {
			a.bus.Warning(fmt.Sprintf("Invalid category id %q", categoryText))
			return nil, err
		}
		exp.CategoryID = id
	}
	return exp, nil
}

// promptID reads a positive integer id.
func (a *App) promptID(prompt string) (int, error) {
	text, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return 0, err
	}
	id, err := strconv.Atoi(text)
	if err != nil || id <= 0 {
		a.bus.Warning(fmt.Sprintf("Invalid id %q", text))
		return 0, fmt.Errorf("invalid id %q", text)
	}
	return id, nil
}
