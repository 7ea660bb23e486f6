package models

import "time"

// Expense is a row from the expenses table. Nullable columns use pointers so
// NULL round-trips as JSON null. CategoryName and CategoryColor are filled by
// the list query's LEFT JOIN against categories.
type Expense struct {
	ID          int       `json:"id"`
	UserID      *int      `json:"user_id"`
	CategoryID  *int      `json:"category_id"`
	Amount      float64   `json:"amount"`
	Currency    *string   `json:"currency"`
	Description *string   `json:"description"`
	ExpenseDate time.Time `json:"expense_date"`
	ReceiptURL  *string   `json:"receipt_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	CategoryName  *string `json:"category_name,omitempty"`
	CategoryColor *string `json:"category_color,omitempty"`
}

// CreateExpenseRequest validates POST /api/expenses bodies. Amount and
// expense_date are the only required fields; everything else becomes NULL
// when absent, except currency which defaults to EUR.
type CreateExpenseRequest struct {
	Amount      float64 `json:"amount" binding:"required"`
	Currency    *string `json:"currency"`
	Description *string `json:"description"`
	ExpenseDate string  `json:"expense_date" binding:"required"`
	CategoryID  *int    `json:"category_id"`
	ReceiptURL  *string `json:"receipt_url"`
}

// UpdateExpenseRequest is a full replace: fields absent from the body are
// written as NULL, matching the PUT contract.
type UpdateExpenseRequest struct {
	Amount      *float64 `json:"amount"`
	Currency    *string  `json:"currency"`
	Description *string  `json:"description"`
	ExpenseDate *string  `json:"expense_date"`
	CategoryID  *int     `json:"category_id"`
	ReceiptURL  *string  `json:"receipt_url"`
}

// ExpenseList is the GET /api/expenses envelope. Total is the number of rows
// in this page, not the full matching count.
type ExpenseList struct {
	Expenses []Expense `json:"expenses"`
	Total    int       `json:"total"`
	Limit    int       `json:"limit"`
	Offset   int       `json:"offset"`
}
