package models

import "github.com/shopspring/decimal"

// Insights is the body of GET /ai/insights.
type Insights struct {
	Insights []string `json:"insights"`
}

// ChatRequest is the payload for POST /ai/chat.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the assistant's reply.
type ChatResponse struct {
	Response string `json:"response"`
}

// CategorizeRequest asks the backend to suggest a category for an expense.
type CategorizeRequest struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// CategorizeResponse carries the suggested category.
type CategorizeResponse struct {
	CategoryID   int     `json:"category_id"`
	CategoryName string  `json:"category_name"`
	Confidence   float64 `json:"confidence,omitempty"`
}

// ParseVoiceRequest sends a free-text transcript for expense extraction.
type ParseVoiceRequest struct {
	Message string `json:"message"`
}

// ParsedExpense is the draft expense extracted from a transcript.
type ParsedExpense struct {
	Amount       decimal.Decimal `json:"amount"`
	Description  string          `json:"description"`
	CategoryID   int             `json:"category_id,omitempty"`
	CategoryName string          `json:"category_name,omitempty"`
	Date         string          `json:"date,omitempty"`
}

// ToExpenseCreate converts the draft into a create payload.
func (p ParsedExpense) ToExpenseCreate() ExpenseCreate {
	return ExpenseCreate{
		Amount:      p.Amount,
		Description: p.Description,
		CategoryID:  p.CategoryID,
		Date:        p.Date,
	}
}
