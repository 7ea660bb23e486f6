package handlers

import (
	"database/sql"
	"log"
	"net/http"

	"expense-tracker-api/models"

	"github.com/gin-gonic/gin"
)

type BudgetHandler struct {
	DB *sql.DB
}

// GetBudgets returns every budget with its category and a spent_amount
// computed over the trailing 30 days, newest budgets first.
func (h *BudgetHandler) GetBudgets(c *gin.Context) {
	rows, err := h.DB.Query(`
		SELECT b.id, b.user_id, b.category_id, b.amount, b.period_start, b.period_end, b.created_at,
		       c.name AS category_name, c.color AS category_color,
		       COALESCE(spent.total, 0) AS spent_amount
		FROM budgets b
		LEFT JOIN categories c ON b.category_id = c.id
		LEFT JOIN (
			SELECT category_id, SUM(amount) AS total
			FROM expenses
			WHERE expense_date >= CURRENT_DATE - INTERVAL '30 days'
			GROUP BY category_id
		) spent ON b.category_id = spent.category_id
		ORDER BY b.created_at DESC
	`)
	if err != nil {
		log.Printf("❌ Error fetching budgets: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch budgets"})
		return
	}
	defer rows.Close()

	budgets := []models.BudgetWithSpending{}
	for rows.Next() {
		var b models.BudgetWithSpending
		if err := rows.Scan(&b.ID, &b.UserID, &b.CategoryID, &b.Amount,
			&b.PeriodStart, &b.PeriodEnd, &b.CreatedAt,
			&b.CategoryName, &b.CategoryColor, &b.SpentAmount); err != nil {
			log.Printf("❌ Error fetching budgets: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch budgets"})
			return
		}
		budgets = append(budgets, b)
	}

	c.JSON(http.StatusOK, budgets)
}

// CreateBudget inserts a new budget and returns the inserted row.
func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	var req models.CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Amount, period_start, and period_end are required"})
		return
	}

	var b models.Budget
	err := h.DB.QueryRow(`
		INSERT INTO budgets (amount, category_id, period_start, period_end, user_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, category_id, amount, period_start, period_end, created_at
	`, req.Amount, req.CategoryID, req.PeriodStart, req.PeriodEnd, req.UserID).
		Scan(&b.ID, &b.UserID, &b.CategoryID, &b.Amount, &b.PeriodStart, &b.PeriodEnd, &b.CreatedAt)
	if err != nil {
		log.Printf("❌ Error creating budget: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create budget"})
		return
	}

	c.JSON(http.StatusCreated, b)
}
