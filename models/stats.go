package models

import "time"

// CurrentMonthStats holds the count and sum of the current calendar month's
// expenses.
type CurrentMonthStats struct {
	TotalExpenses int     `json:"total_expenses"`
	TotalAmount   float64 `json:"total_amount"`
}

// CategoryBreakdown is one row of the per-category aggregation for the
// current month. Categories without expenses appear with zero count/total.
type CategoryBreakdown struct {
	Category string  `json:"category"`
	Color    *string `json:"color"`
	Count    int     `json:"count"`
	Total    float64 `json:"total"`
}

// DailyTotal is the summed spend for one calendar day.
type DailyTotal struct {
	Date  time.Time `json:"date"`
	Total float64   `json:"total"`
}

// BudgetUsage is one row of the budget-utilization aggregation: a budget
// whose period covers today, with its trailing-30-day spend and the share of
// the budget that spend represents.
type BudgetUsage struct {
	BudgetAmount   float64 `json:"budget_amount"`
	Category       *string `json:"category"`
	Color          *string `json:"color"`
	SpentAmount    float64 `json:"spent_amount"`
	PercentageUsed float64 `json:"percentage_used"`
}

// DashboardStats is the GET /api/stats/dashboard response.
type DashboardStats struct {
	CurrentMonth       CurrentMonthStats   `json:"currentMonth"`
	ExpensesByCategory []CategoryBreakdown `json:"expensesByCategory"`
	RecentExpenses     []DailyTotal        `json:"recentExpenses"`
	BudgetOverview     []BudgetUsage       `json:"budgetOverview"`
}

// MonthlyStat is one month of the trailing-12-month trend.
type MonthlyStat struct {
	Month time.Time `json:"month"`
	Total float64   `json:"total"`
	Count int       `json:"count"`
}
