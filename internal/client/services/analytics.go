package services

import (
	"context"
	"fmt"
	"net/url"

	"github.com/hisabkitab/cli/internal/client/models"
)

// Period selects the analytics aggregation window.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

// ParsePeriod validates a user-supplied period string.
func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case PeriodDaily, PeriodWeekly, PeriodMonthly:
		return Period(s), nil
	default:
		return "", fmt.Errorf("unknown period %q (want daily, weekly or monthly)", s)
	}
}

// AnalyticsService wraps the analytics summary endpoint.
type AnalyticsService struct {
	gw Gateway
}

func NewAnalyticsService(gw Gateway) *AnalyticsService {
	return &AnalyticsService{gw: gw}
}

func (s *AnalyticsService) Summary(ctx context.Context, period Period) (*models.AnalyticsSummary, error) {
	query := url.Values{}
	query.Set("period", string(period))

	var summary models.AnalyticsSummary
	if err := s.gw.Get(ctx, "/analytics/summary", query, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}
