package cli

import (
	"context"
	"fmt"

	"github.com/hisabkitab/cli/internal/client/api"
	"github.com/hisabkitab/cli/internal/client/services"
)

// Dashboard loads the analytics summary, recent transactions and AI insights
// concurrently and renders each panel independently: a failed read degrades
// only its own section.
func (a *App) Dashboard(ctx context.Context) error {
	data := a.dashboard.Load(ctx, services.PeriodMonthly)
	if data.Failed() {
		a.bus.Error("Dashboard could not be loaded, run 'dashboard' to retry")
		return nil
	}

	printlnFn("--- Summary (monthly) ---")
	if data.AnalyticsErr != nil {
		printlnFn("Summary unavailable: " + api.Detail(data.AnalyticsErr, "request failed"))
	} else {
		s := data.Analytics.Summary
		printlnFn(fmt.Sprintf("Total %s over %d expenses (avg %s)",
			s.Total.StringFixed(2), s.Count, s.Average.StringFixed(2)))
		if mom := data.Analytics.MonthOverMonth; mom != nil {
			printlnFn(fmt.Sprintf("Month over month: %+.1f%%", *mom))
		}
		for _, c := range data.Analytics.CategoryBreakdown {
			printlnFn(fmt.Sprintf("  %-20s %s (%.0f%%)", c.CategoryName, c.Total.StringFixed(2), c.Percentage))
		}
	}

	printlnFn("--- Recent transactions ---")
	if data.RecentErr != nil {
		printlnFn("Recent transactions unavailable: " + api.Detail(data.RecentErr, "request failed"))
	} else if len(data.Recent) == 0 {
		printlnFn("No expenses yet.")
	} else {
		for _, e := range data.Recent {
			printlnFn(fmt.Sprintf("#%d  %s  %s  %s",
				e.ID, e.Date.Format("2006-01-02"), e.Amount.StringFixed(2), e.Description))
		}
	}

	printlnFn("--- Insights ---")
	if data.InsightsErr != nil {
		printlnFn("Insights unavailable: " + api.Detail(data.InsightsErr, "request failed"))
	} else if len(data.Insights.Insights) == 0 {
		printlnFn("No insights yet.")
	} else {
		for _, line := range data.Insights.Insights {
			printlnFn("* " + line)
		}
	}
	return nil
}
