package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget mirrors the backend budget response. Spent, Remaining and
// PercentageUsed are computed server-side; the client never derives them.
type Budget struct {
	ID             int             `json:"id"`
	Name           string          `json:"name"`
	Amount         decimal.Decimal `json:"amount"`
	Period         string          `json:"period"`
	CategoryID     int             `json:"category_id,omitempty"`
	Spent          decimal.Decimal `json:"spent"`
	Remaining      decimal.Decimal `json:"remaining"`
	PercentageUsed float64         `json:"percentage_used"`
	CreatedAt      time.Time       `json:"created_at"`
}

// BudgetCreate is the payload for POST /budgets/ and PUT /budgets/{id}.
type BudgetCreate struct {
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	Period     string          `json:"period"`
	CategoryID int             `json:"category_id,omitempty"`
}
