package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newExpenseRouter() *gin.Engine {
	h := &ExpenseHandler{}
	r := gin.New()
	r.GET("/expenses", h.GetExpenses)
	r.POST("/expenses", h.CreateExpense)
	r.PUT("/expenses/:id", h.UpdateExpense)
	return r
}

func TestBuildExpenseListQueryNoFilters(t *testing.T) {
	query, args := buildExpenseListQuery("", "", "", 50, 0)

	require.Len(t, args, 2)
	assert.Equal(t, 50, args[0])
	assert.Equal(t, 0, args[1])
	assert.Contains(t, query, "LIMIT $1")
	assert.Contains(t, query, "OFFSET $2")
	assert.NotContains(t, query, "category_id =")
	assert.Contains(t, query, "ORDER BY e.expense_date DESC, e.created_at DESC")
}

func TestBuildExpenseListQueryFilterOrder(t *testing.T) {
	query, args := buildExpenseListQuery("3", "2025-06-01", "2025-06-30", 10, 20)

	// Fixed binding order: category, start date, end date, then limit/offset.
	require.Len(t, args, 5)
	assert.Equal(t, "3", args[0])
	assert.Equal(t, "2025-06-01", args[1])
	assert.Equal(t, "2025-06-30", args[2])
	assert.Equal(t, 10, args[3])
	assert.Equal(t, 20, args[4])

	assert.Contains(t, query, "e.category_id = $1")
	assert.Contains(t, query, "e.expense_date >= $2")
	assert.Contains(t, query, "e.expense_date <= $3")
	assert.Contains(t, query, "LIMIT $4")
	assert.Contains(t, query, "OFFSET $5")
}

func TestBuildExpenseListQueryCategoryOnly(t *testing.T) {
	query, args := buildExpenseListQuery("1", "", "", 50, 0)

	require.Len(t, args, 3)
	assert.Equal(t, "1", args[0])
	assert.Contains(t, query, "e.category_id = $1")
	assert.Contains(t, query, "LIMIT $2")
	assert.Contains(t, query, "OFFSET $3")
}

func TestBuildExpenseListQueryDateRangeOnly(t *testing.T) {
	query, args := buildExpenseListQuery("", "2025-01-01", "2025-12-31", 50, 0)

	require.Len(t, args, 4)
	assert.Equal(t, "2025-01-01", args[0])
	assert.Contains(t, query, "e.expense_date >= $1")
	assert.Contains(t, query, "e.expense_date <= $2")
}

func TestCreateExpenseMissingAmount(t *testing.T) {
	r := newExpenseRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/expenses",
		strings.NewReader(`{"expense_date":"2025-06-01"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Amount and expense_date are required"}`, w.Body.String())
}

func TestCreateExpenseMissingDate(t *testing.T) {
	r := newExpenseRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/expenses",
		strings.NewReader(`{"amount":12.50}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Amount and expense_date are required"}`, w.Body.String())
}

func TestCreateExpenseMalformedBody(t *testing.T) {
	r := newExpenseRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/expenses", strings.NewReader(`{not json`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateExpenseMalformedBody(t *testing.T) {
	r := newExpenseRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/expenses/1", strings.NewReader(`{not json`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
