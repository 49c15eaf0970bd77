package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AdminStats is the body of GET /admin/stats.
type AdminStats struct {
	TotalUsers     int             `json:"total_users"`
	ActiveUsers    int             `json:"active_users"`
	TotalExpenses  int             `json:"total_expenses"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	AIFeaturesUsed int             `json:"ai_features_used"`
}

// AdminUser is one row of the admin user listing.
type AdminUser struct {
	ID           int             `json:"id"`
	Email        string          `json:"email"`
	FullName     string          `json:"full_name"`
	IsActive     bool            `json:"is_active"`
	IsAdmin      bool            `json:"is_admin"`
	CreatedAt    time.Time       `json:"created_at"`
	ExpenseCount int             `json:"expense_count"`
	TotalSpent   decimal.Decimal `json:"total_spent"`
	Occupation   string          `json:"occupation,omitempty"`
	PhoneNumber  string          `json:"phone_number,omitempty"`
}

// AdminUserPage is the paginated envelope of GET /admin/users.
type AdminUserPage struct {
	Items []AdminUser `json:"items"`
	Total int         `json:"total"`
}

// AdminLog is one audit-log record.
type AdminLog struct {
	ID          int       `json:"id"`
	UserID      int       `json:"user_id"`
	EventType   string    `json:"event_type"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
	UserEmail   string    `json:"user_email,omitempty"`
}

// AdminLogPage is the paginated envelope of GET /admin/logs.
type AdminLogPage struct {
	Items []AdminLog `json:"items"`
	Total int        `json:"total"`
}
