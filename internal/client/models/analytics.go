package models

import "github.com/shopspring/decimal"

// SpendingSummary aggregates the period's totals.
type SpendingSummary struct {
	Total   decimal.Decimal `json:"total"`
	Average decimal.Decimal `json:"average"`
	Count   int             `json:"count"`
}

// CategoryBreakdown is one slice of the per-category spend distribution.
type CategoryBreakdown struct {
	CategoryID   int             `json:"category_id"`
	CategoryName string          `json:"category_name"`
	Total        decimal.Decimal `json:"total"`
	Percentage   float64         `json:"percentage"`
	Count        int             `json:"count"`
}

// TrendPoint is one day of the recent spending trend.
type TrendPoint struct {
	Date   string          `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

// AnalyticsSummary is the body of GET /analytics/summary.
type AnalyticsSummary struct {
	Summary           SpendingSummary     `json:"summary"`
	CategoryBreakdown []CategoryBreakdown `json:"category_breakdown"`
	RecentTrends      []TrendPoint        `json:"recent_trends"`
	MonthOverMonth    *float64            `json:"month_over_month"`
}
