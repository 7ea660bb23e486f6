package config

import (
	"database/sql"
	"log"
)

// RunMigrations creates the schema idempotently: every table and index uses
// IF NOT EXISTS, and the default categories are seeded only when none exist.
// Statements run independently, without a wrapping transaction.
func RunMigrations(db *sql.DB) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			email VARCHAR(255) UNIQUE NOT NULL,
			password_hash VARCHAR(255) NOT NULL,
			first_name VARCHAR(100),
			last_name VARCHAR(100),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS categories (
			id SERIAL PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			color VARCHAR(7),
			icon VARCHAR(50),
			user_id INTEGER REFERENCES users(id) ON DELETE CASCADE,
			is_default BOOLEAN DEFAULT FALSE,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS expenses (
			id SERIAL PRIMARY KEY,
			user_id INTEGER REFERENCES users(id) ON DELETE CASCADE,
			category_id INTEGER REFERENCES categories(id),
			amount DECIMAL(10,2) NOT NULL CHECK (amount >= 0),
			currency VARCHAR(3) DEFAULT 'EUR',
			description TEXT,
			expense_date DATE NOT NULL,
			receipt_url VARCHAR(500),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS budgets (
			id SERIAL PRIMARY KEY,
			user_id INTEGER REFERENCES users(id) ON DELETE CASCADE,
			category_id INTEGER REFERENCES categories(id),
			amount DECIMAL(10,2) NOT NULL CHECK (amount >= 0),
			period_start DATE NOT NULL,
			period_end DATE NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS recurring_expenses (
			id SERIAL PRIMARY KEY,
			user_id INTEGER REFERENCES users(id) ON DELETE CASCADE,
			category_id INTEGER REFERENCES categories(id),
			amount DECIMAL(10,2) NOT NULL CHECK (amount >= 0),
			currency VARCHAR(3) DEFAULT 'EUR',
			description TEXT,
			frequency VARCHAR(20) NOT NULL,
			next_occurrence DATE NOT NULL,
			is_active BOOLEAN DEFAULT TRUE,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
	}

	for _, migration := range migrations {
		if _, err := db.Exec(migration); err != nil {
			return err
		}
	}

	if err := seedDefaultCategories(db); err != nil {
		return err
	}

	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_expenses_user_id ON expenses(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_expenses_category_id ON expenses(category_id)`,
		`CREATE INDEX IF NOT EXISTS idx_expenses_date ON expenses(expense_date)`,
		`CREATE INDEX IF NOT EXISTS idx_budgets_user_id ON budgets(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_recurring_expenses_user_id ON recurring_expenses(user_id)`,
	}

	for _, index := range indexes {
		if _, err := db.Exec(index); err != nil {
			return err
		}
	}

	return nil
}

// seedDefaultCategories inserts the nine built-in categories, once.
func seedDefaultCategories(db *sql.DB) error {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM categories WHERE is_default = true`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		log.Println("✅ Default categories already exist")
		return nil
	}

	_, err := db.Exec(`
		INSERT INTO categories (name, color, icon, is_default) VALUES
		('Food & Dining', '#FF6B6B', 'restaurant', TRUE),
		('Transportation', '#4ECDC4', 'directions_car', TRUE),
		('Shopping', '#45B7D1', 'shopping_cart', TRUE),
		('Entertainment', '#96CEB4', 'movie', TRUE),
		('Bills & Utilities', '#FFEAA7', 'receipt', TRUE),
		('Healthcare', '#DDA0DD', 'local_hospital', TRUE),
		('Travel', '#98D8C8', 'flight', TRUE),
		('Education', '#F7DC6F', 'school', TRUE),
		('Other', '#AED6F1', 'category', TRUE)
	`)
	if err != nil {
		return err
	}
	log.Println("✅ Default categories inserted")
	return nil
}
