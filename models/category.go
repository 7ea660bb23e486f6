package models

import "time"

// Category is a row from the categories table. Default categories are seeded
// by the schema setup and are never user-owned.
type Category struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Color     *string   `json:"color"`
	Icon      *string   `json:"icon"`
	UserID    *int      `json:"user_id"`
	IsDefault bool      `json:"is_default"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateCategoryRequest validates POST /api/categories bodies. User-created
// categories always get is_default = false.
type CreateCategoryRequest struct {
	Name   string  `json:"name" binding:"required"`
	Color  *string `json:"color"`
	Icon   *string `json:"icon"`
	UserID *int    `json:"user_id"`
}
