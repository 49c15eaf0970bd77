package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense mirrors the backend expense response.
type Expense struct {
	ID            int             `json:"id"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	Notes         string          `json:"notes,omitempty"`
	CategoryID    int             `json:"category_id,omitempty"`
	CategoryName  string          `json:"category_name,omitempty"`
	Date          time.Time       `json:"date"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	Tags          string          `json:"tags,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ExpenseCreate is the payload for POST /expenses/ and PUT /expenses/{id}.
// Zero-valued optional fields are omitted so partial updates stay partial.
type ExpenseCreate struct {
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	CategoryID    int             `json:"category_id,omitempty"`
	Date          string          `json:"date,omitempty"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	Tags          string          `json:"tags,omitempty"`
}

// ExpenseList is the paginated envelope some list endpoints return.
type ExpenseList struct {
	Items    []Expense `json:"items"`
	Total    int       `json:"total"`
	Page     int       `json:"page"`
	PageSize int       `json:"page_size"`
}
