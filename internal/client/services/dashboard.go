package services

import (
	"context"
	"sync"

	"github.com/hisabkitab/cli/internal/client/models"
)

const recentExpenseCount = 5

// DashboardData aggregates the three independent dashboard reads. Each part
// resolves on its own: one failing fetch degrades only its own panel and
// leaves the other two intact.
type DashboardData struct {
	Analytics    *models.AnalyticsSummary
	AnalyticsErr error

	Recent    []models.Expense
	RecentErr error

	Insights    *models.Insights
	InsightsErr error
}

// Failed reports whether every panel failed; callers offer a retry then.
func (d *DashboardData) Failed() bool {
	return d.AnalyticsErr != nil && d.RecentErr != nil && d.InsightsErr != nil
}

// DashboardService joins the analytics summary, the most recent expenses and
// the AI insights for the landing view.
type DashboardService struct {
	analytics *AnalyticsService
	expenses  *ExpenseService
	ai        *AIService
}

func NewDashboardService(analytics *AnalyticsService, expenses *ExpenseService, ai *AIService) *DashboardService {
	return &DashboardService{analytics: analytics, expenses: expenses, ai: ai}
}

// Load fires the three reads concurrently and waits for all of them.
func (s *DashboardService) Load(ctx context.Context, period Period) *DashboardData {
	data := &DashboardData{}

	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		data.Analytics, data.AnalyticsErr = s.analytics.Summary(ctx, period)
	}()
	go func() {
		defer wg.Done()
		data.Recent, data.RecentErr = s.expenses.List(ctx, 0, recentExpenseCount)
	}()
	go func() {
		defer wg.Done()
		data.Insights, data.InsightsErr = s.ai.Insights(ctx)
	}()

	wg.Wait()
	return data
}
