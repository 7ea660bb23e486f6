// One-shot sample-data seeder: inserts ten fixed expenses and three fixed
// budgets into an otherwise empty database.
package main

import (
	"log"
	"os"

	"expense-tracker-api/config"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Printf("❌ Error adding sample data: %v", err)
		os.Exit(1)
	}
	defer db.Close()

	log.Println("🎯 Adding sample expense data...")

	if err := config.SeedSampleData(db); err != nil {
		log.Printf("❌ Error adding sample data: %v", err)
		os.Exit(1)
	}

	log.Println("🎉 Sample data setup completed successfully!")
}
