package handlers

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"expense-tracker-api/models"

	"github.com/gin-gonic/gin"
)

type ExpenseHandler struct {
	DB *sql.DB
}

const expenseColumns = `e.id, e.user_id, e.category_id, e.amount, e.currency,
	       e.description, e.expense_date, e.receipt_url, e.created_at, e.updated_at`

// buildExpenseListQuery assembles the filtered list query. Filters are bound
// in a fixed order: category_id, then start_date, then end_date, with
// limit/offset always last.
func buildExpenseListQuery(categoryID, startDate, endDate string, limit, offset int) (string, []interface{}) {
	query := `
		SELECT ` + expenseColumns + `,
		       c.name AS category_name, c.color AS category_color
		FROM expenses e
		LEFT JOIN categories c ON e.category_id = c.id
		WHERE 1=1`
	args := []interface{}{}

	if categoryID != "" {
		args = append(args, categoryID)
		query += fmt.Sprintf(" AND e.category_id = $%d", len(args))
	}
	if startDate != "" {
		args = append(args, startDate)
		query += fmt.Sprintf(" AND e.expense_date >= $%d", len(args))
	}
	if endDate != "" {
		args = append(args, endDate)
		query += fmt.Sprintf(" AND e.expense_date <= $%d", len(args))
	}

	query += " ORDER BY e.expense_date DESC, e.created_at DESC"

	args = append(args, limit)
	query += fmt.Sprintf(" LIMIT $%d", len(args))
	args = append(args, offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	return query, args
}

// GetExpenses lists expenses with optional category/date filters. The total
// field counts the rows in this page, not the full matching set.
func (h *ExpenseHandler) GetExpenses(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil {
		limit = 50
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil {
		offset = 0
	}

	query, args := buildExpenseListQuery(
		c.Query("category_id"),
		c.Query("start_date"),
		c.Query("end_date"),
		limit, offset,
	)

	rows, err := h.DB.Query(query, args...)
	if err != nil {
		log.Printf("❌ Error fetching expenses: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch expenses"})
		return
	}
	defer rows.Close()

	expenses := []models.Expense{}
	for rows.Next() {
		var e models.Expense
		if err := rows.Scan(&e.ID, &e.UserID, &e.CategoryID, &e.Amount, &e.Currency,
			&e.Description, &e.ExpenseDate, &e.ReceiptURL, &e.CreatedAt, &e.UpdatedAt,
			&e.CategoryName, &e.CategoryColor); err != nil {
			log.Printf("❌ Error fetching expenses: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch expenses"})
			return
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		log.Printf("❌ Error fetching expenses: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch expenses"})
		return
	}

	c.JSON(http.StatusOK, models.ExpenseList{
		Expenses: expenses,
		Total:    len(expenses),
		Limit:    limit,
		Offset:   offset,
	})
}

// CreateExpense inserts a new expense and returns the inserted row.
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var req models.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Amount and expense_date are required"})
		return
	}

	currency := "EUR"
	if req.Currency != nil {
		currency = *req.Currency
	}

	var e models.Expense
	err := h.DB.QueryRow(`
		INSERT INTO expenses (amount, currency, description, expense_date, category_id, receipt_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, user_id, category_id, amount, currency, description,
		          expense_date, receipt_url, created_at, updated_at
	`, req.Amount, currency, req.Description, req.ExpenseDate, req.CategoryID, req.ReceiptURL).
		Scan(&e.ID, &e.UserID, &e.CategoryID, &e.Amount, &e.Currency,
			&e.Description, &e.ExpenseDate, &e.ReceiptURL, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		log.Printf("❌ Error creating expense: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create expense"})
		return
	}

	c.JSON(http.StatusCreated, e)
}

// UpdateExpense fully replaces the mutable fields of an expense. Fields
// absent from the body are written as NULL.
func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	id := c.Param("id")

	var req models.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var e models.Expense
	err := h.DB.QueryRow(`
		UPDATE expenses
		SET amount = $1, currency = $2, description = $3, expense_date = $4,
		    category_id = $5, receipt_url = $6, updated_at = CURRENT_TIMESTAMP
		WHERE id = $7
		RETURNING id, user_id, category_id, amount, currency, description,
		          expense_date, receipt_url, created_at, updated_at
	`, req.Amount, req.Currency, req.Description, req.ExpenseDate, req.CategoryID, req.ReceiptURL, id).
		Scan(&e.ID, &e.UserID, &e.CategoryID, &e.Amount, &e.Currency,
			&e.Description, &e.ExpenseDate, &e.ReceiptURL, &e.CreatedAt, &e.UpdatedAt)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Expense not found"})
		return
	}
	if err != nil {
		log.Printf("❌ Error updating expense: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update expense"})
		return
	}

	c.JSON(http.StatusOK, e)
}

// DeleteExpense removes an expense by id.
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	id := c.Param("id")

	var deletedID int
	err := h.DB.QueryRow(`DELETE FROM expenses WHERE id = $1 RETURNING id`, id).Scan(&deletedID)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Expense not found"})
		return
	}
	if err != nil {
		log.Printf("❌ Error deleting expense: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete expense"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted successfully"})
}
