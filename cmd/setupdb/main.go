// One-shot schema setup: creates all tables idempotently, seeds the default
// categories when missing, then builds the supporting indexes.
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
		log.Printf("❌ Error setting up database: %v", err)
		os.Exit(1)
	}
	defer db.Close()

	log.Println("🔨 Creating expense tracker database tables...")

	if err := config.RunMigrations(db); err != nil {
		log.Printf("❌ Error setting up database: %v", err)
		os.Exit(1)
	}

	log.Println("🎉 Database setup completed successfully!")
}
