package routes

import (
	"database/sql"

	"expense-tracker-api/handlers"

	"github.com/gin-gonic/gin"
)

// SetupExpenseRoutes mounts the expense CRUD routes.
func SetupExpenseRoutes(rg *gin.RouterGroup, db *sql.DB) {
	h := &handlers.ExpenseHandler{DB: db}

	rg.GET("/expenses", h.GetExpenses)
	rg.POST("/expenses", h.CreateExpense)
	rg.PUT("/expenses/:id", h.UpdateExpense)
	rg.DELETE("/expenses/:id", h.DeleteExpense)
}

// SetupCategoryRoutes mounts the category routes.
func SetupCategoryRoutes(rg *gin.RouterGroup, db *sql.DB) {
	h := &handlers.CategoryHandler{DB: db}

	rg.GET("/categories", h.GetCategories)
	rg.POST("/categories", h.CreateCategory)
}

// SetupBudgetRoutes mounts the budget routes.
func SetupBudgetRoutes(rg *gin.RouterGroup, db *sql.DB) {
	h := &handlers.BudgetHandler{DB: db}

	rg.GET("/budgets", h.GetBudgets)
	rg.POST("/budgets", h.CreateBudget)
}

// SetupStatsRoutes mounts the aggregation routes.
func SetupStatsRoutes(rg *gin.RouterGroup, db *sql.DB) {
	h := &handlers.StatsHandler{DB: db}

	rg.GET("/stats/dashboard", h.GetDashboard)
	rg.GET("/stats/monthly", h.GetMonthly)
}
