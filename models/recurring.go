package models

import "time"

// RecurringExpense mirrors the recurring_expenses table. The table is created
// by the schema setup but no route reads or writes it yet.
type RecurringExpense struct {
	ID             int       `json:"id"`
	UserID         *int      `json:"user_id"`
	CategoryID     *int      `json:"category_id"`
	Amount         float64   `json:"amount"`
	Currency       *string   `json:"currency"`
	Description    *string   `json:"description"`
	Frequency      string    `json:"frequency"`
	NextOccurrence time.Time `json:"next_occurrence"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}
