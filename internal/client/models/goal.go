package models

import "github.com/shopspring/decimal"

// Goal mirrors the backend savings-goal response.
type Goal struct {
	ID            int             `json:"id"`
	UserID        int             `json:"user_id"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	TargetDate    string          `json:"target_date,omitempty"`
	Color         string          `json:"color,omitempty"`
	IsCompleted   bool            `json:"is_completed"`
}

// GoalCreate is the payload for POST /goals/.
type GoalCreate struct {
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	TargetAmount decimal.Decimal `json:"target_amount"`
	TargetDate   string          `json:"target_date,omitempty"`
	Color        string          `json:"color,omitempty"`
}

// GoalUpdate is the partial payload for PUT /goals/{id}.
type GoalUpdate struct {
	Name          string           `json:"name,omitempty"`
	Description   string           `json:"description,omitempty"`
	TargetAmount  *decimal.Decimal `json:"target_amount,omitempty"`
	CurrentAmount *decimal.Decimal `json:"current_amount,omitempty"`
	TargetDate    string           `json:"target_date,omitempty"`
	IsCompleted   *bool            `json:"is_completed,omitempty"`
}
