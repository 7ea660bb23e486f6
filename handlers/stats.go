package handlers

import (
	"database/sql"
	"log"
	"net/http"

	"expense-tracker-api/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

type StatsHandler struct {
	DB *sql.DB
}

// GetDashboard runs the four dashboard aggregations concurrently and joins
// them all-or-nothing: the first failing query fails the whole request.
func (h *StatsHandler) GetDashboard(c *gin.Context) {
	var (
		currentMonth models.CurrentMonthStats
		byCategory   []models.CategoryBreakdown
		recent       []models.DailyTotal
		budgets      []models.BudgetUsage
	)

	g, ctx := errgroup.WithContext(c.Request.Context())

	g.Go(func() error {
		return h.DB.QueryRowContext(ctx, `
			SELECT COUNT(*) AS total_expenses,
			       COALESCE(SUM(amount), 0) AS total_amount
			FROM expenses
			WHERE DATE_TRUNC('month', expense_date) = DATE_TRUNC('month', CURRENT_DATE)
		`).Scan(&currentMonth.TotalExpenses, &currentMonth.TotalAmount)
	})

	g.Go(func() error {
		rows, err := h.DB.QueryContext(ctx, `
			SELECT c.name AS category, c.color,
			       COUNT(e.id) AS count,
			       COALESCE(SUM(e.amount), 0) AS total
			FROM categories c
			LEFT JOIN expenses e ON c.id = e.category_id
				AND DATE_TRUNC('month', e.expense_date) = DATE_TRUNC('month', CURRENT_DATE)
			GROUP BY c.id, c.name, c.color
			ORDER BY total DESC
		`)
		if err != nil {
			return err
		}
		defer rows.Close()

		byCategory = []models.CategoryBreakdown{}
		for rows.Next() {
			var b models.CategoryBreakdown
			if err := rows.Scan(&b.Category, &b.Color, &b.Count, &b.Total); err != nil {
				return err
			}
			byCategory = append(byCategory, b)
		}
		return rows.Err()
	})

	g.Go(func() error {
		rows, err := h.DB.QueryContext(ctx, `
			SELECT DATE(expense_date) AS date,
			       COALESCE(SUM(amount), 0) AS total
			FROM expenses
			WHERE expense_date >= CURRENT_DATE - INTERVAL '7 days'
			GROUP BY DATE(expense_date)
			ORDER BY date ASC
		`)
		if err != nil {
			return err
		}
		defer rows.Close()

		recent = []models.DailyTotal{}
		for rows.Next() {
			var d models.DailyTotal
			if err := rows.Scan(&d.Date, &d.Total); err != nil {
				return err
			}
			recent = append(recent, d)
		}
		return rows.Err()
	})

	g.Go(func() error {
		rows, err := h.DB.QueryContext(ctx, `
			SELECT b.amount AS budget_amount,
			       c.name AS category, c.color,
			       COALESCE(spent.total, 0) AS spent_amount,
			       CASE
			           WHEN b.amount > 0 THEN (COALESCE(spent.total, 0) / b.amount * 100)
			           ELSE 0
			       END AS percentage_used
			FROM budgets b
			LEFT JOIN categories c ON b.category_id = c.id
			LEFT JOIN (
				SELECT category_id, SUM(amount) AS total
				FROM expenses
				WHERE expense_date >= CURRENT_DATE - INTERVAL '30 days'
				GROUP BY category_id
			) spent ON b.category_id = spent.category_id
			WHERE b.period_start <= CURRENT_DATE AND b.period_end >= CURRENT_DATE
		`)
		if err != nil {
			return err
		}
		defer rows.Close()

		budgets = []models.BudgetUsage{}
		for rows.Next() {
			var b models.BudgetUsage
			if err := rows.Scan(&b.BudgetAmount, &b.Category, &b.Color, &b.SpentAmount, &b.PercentageUsed); err != nil {
				return err
			}
			budgets = append(budgets, b)
		}
		return rows.Err()
	})

	if err := g.Wait(); err != nil {
		log.Printf("❌ Error fetching dashboard stats: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch dashboard statistics"})
		return
	}

	c.JSON(http.StatusOK, models.DashboardStats{
		CurrentMonth:       currentMonth,
		ExpensesByCategory: byCategory,
		RecentExpenses:     recent,
		BudgetOverview:     budgets,
	})
}

// GetMonthly returns per-month totals for the trailing 12 months, oldest
// month first.
func (h *StatsHandler) GetMonthly(c *gin.Context) {
	rows, err := h.DB.Query(`
		SELECT DATE_TRUNC('month', expense_date) AS month,
		       COALESCE(SUM(amount), 0) AS total,
		       COUNT(*) AS count
		FROM expenses
		WHERE expense_date >= CURRENT_DATE - INTERVAL '12 months'
		GROUP BY DATE_TRUNC('month', expense_date)
		ORDER BY month ASC
	`)
	if err != nil {
		log.Printf("❌ Error fetching monthly stats: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch monthly statistics"})
		return
	}
	defer rows.Close()

	stats := []models.MonthlyStat{}
	for rows.Next() {
		var m models.MonthlyStat
		if err := rows.Scan(&m.Month, &m.Total, &m.Count); err != nil {
			log.Printf("❌ Error fetching monthly stats: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch monthly statistics"})
			return
		}
		stats = append(stats, m)
	}

	c.JSON(http.StatusOK, stats)
}
