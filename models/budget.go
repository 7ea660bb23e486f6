package models

import "time"

// Budget is a row from the budgets table.
type Budget struct {
	ID          int       `json:"id"`
	UserID      *int      `json:"user_id"`
	CategoryID  *int      `json:"category_id"`
	Amount      float64   `json:"amount"`
	PeriodStart time.Time `json:"period_start"`
	PeriodEnd   time.Time `json:"period_end"`
	CreatedAt   time.Time `json:"created_at"`
}

// BudgetWithSpending is a budget joined with its category plus the spend in
// that category over the trailing 30 days. The window is fixed and does not
// follow the budget's own period.
type BudgetWithSpending struct {
	Budget
	CategoryName  *string `json:"category_name"`
	CategoryColor *string `json:"category_color"`
	SpentAmount   float64 `json:"spent_amount"`
}

// CreateBudgetRequest validates POST /api/budgets bodies.
type CreateBudgetRequest struct {
	Amount      float64 `json:"amount" binding:"required"`
	CategoryID  *int    `json:"category_id"`
	PeriodStart string  `json:"period_start" binding:"required"`
	PeriodEnd   string  `json:"period_end" binding:"required"`
	UserID      *int    `json:"user_id"`
}
