package config

import (
	"database/sql"
	"errors"
	"log"
)

type sampleExpense struct {
	amount      float64
	currency    string
	description string
	date        string
	category    string
	fallbackID  int
}

type sampleBudget struct {
	amount      float64
	category    string
	fallbackID  int
	periodStart string
	periodEnd   string
}

var sampleExpenses = []sampleExpense{
	{45.50, "EUR", "Grocery shopping at Supermarket", "2025-06-04", "Food & Dining", 1},
	{12.80, "EUR", "Coffee and pastry", "2025-06-03", "Food & Dining", 1},
	{89.99, "EUR", "Monthly gym membership", "2025-06-02", "Healthcare", 6},
	{25.00, "EUR", "Taxi to airport", "2025-06-01", "Transportation", 2},
	{156.75, "EUR", "New running shoes", "2025-05-31", "Shopping", 3},
	{28.50, "EUR", "Movie tickets", "2025-05-30", "Entertainment", 4},
	{120.00, "EUR", "Monthly internet bill", "2025-05-29", "Bills & Utilities", 5},
	{67.30, "EUR", "Gas station fill-up", "2025-05-28", "Transportation", 2},
	{15.95, "EUR", "Online course subscription", "2025-05-27", "Education", 8},
	{234.60, "EUR", "Weekend trip accommodation", "2025-05-26", "Travel", 7},
}

var sampleBudgets = []sampleBudget{
	{300.00, "Food & Dining", 1, "2025-06-01", "2025-06-30"},
	{150.00, "Transportation", 2, "2025-06-01", "2025-06-30"},
	{200.00, "Entertainment", 4, "2025-06-01", "2025-06-30"},
}

// SeedSampleData inserts the fixed sample expenses and budgets, but only
// into an empty expenses table. Category ids are resolved by name, falling
// back to the seed order's numeric ids when a name is missing.
func SeedSampleData(db *sql.DB) error {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM expenses`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		log.Println("✅ Sample data already exists")
		return nil
	}

	categoryIDs, err := loadCategoryIDs(db)
	if err != nil {
		return err
	}
	if len(categoryIDs) == 0 {
		return errors.New("no categories found, run setupdb first")
	}

	resolve := func(name string, fallback int) int {
		if id, ok := categoryIDs[name]; ok {
			return id
		}
		return fallback
	}

	for _, e := range sampleExpenses {
		_, err := db.Exec(`
			INSERT INTO expenses (amount, currency, description, expense_date, category_id)
			VALUES ($1, $2, $3, $4, $5)
		`, e.amount, e.currency, e.description, e.date, resolve(e.category, e.fallbackID))
		if err != nil {
			return err
		}
	}
	log.Printf("✅ Added %d sample expenses", len(sampleExpenses))

	for _, b := range sampleBudgets {
		_, err := db.Exec(`
			INSERT INTO budgets (amount, category_id, period_start, period_end)
			VALUES ($1, $2, $3, $4)
		`, b.amount, resolve(b.category, b.fallbackID), b.periodStart, b.periodEnd)
		if err != nil {
			return err
		}
	}
	log.Printf("✅ Added %d sample budgets", len(sampleBudgets))

	return nil
}

func loadCategoryIDs(db *sql.DB) (map[string]int, error) {
	rows, err := db.Query(`SELECT id, name FROM categories ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make(map[string]int)
	for rows.Next() {
		var id int
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		ids[name] = id
	}
	return ids, rows.Err()
}
