package handlers

import (
	"database/sql"
	"log"
	"net/http"

	"expense-tracker-api/models"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	DB *sql.DB
}

// GetCategories returns every category, defaults first, alphabetical within
// each group.
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	rows, err := h.DB.Query(`
		SELECT id, name, color, icon, user_id, is_default, created_at
		FROM categories
		ORDER BY is_default DESC, name ASC
	`)
	if err != nil {
		log.Printf("❌ Error fetching categories: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
		return
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var cat models.Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.Color, &cat.Icon,
			&cat.UserID, &cat.IsDefault, &cat.CreatedAt); err != nil {
			log.Printf("❌ Error fetching categories: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
		categories = append(categories, cat)
	}

	c.JSON(http.StatusOK, categories)
}

// CreateCategory inserts a user-created category. is_default is always
// forced to false here; only the schema seed creates default rows.
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req models.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}

	var cat models.Category
	err := h.DB.QueryRow(`
		INSERT INTO categories (name, color, icon, user_id, is_default)
		VALUES ($1, $2, $3, $4, false)
		RETURNING id, name, color, icon, user_id, is_default, created_at
	`, req.Name, req.Color, req.Icon, req.UserID).
		Scan(&cat.ID, &cat.Name, &cat.Color, &cat.Icon, &cat.UserID, &cat.IsDefault, &cat.CreatedAt)
	if err != nil {
		log.Printf("❌ Error creating category: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
		return
	}

	c.JSON(http.StatusCreated, cat)
}
