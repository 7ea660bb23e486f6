package config

import (
	"database/sql"
	"fmt"
	"log"
	"strings"

	_ "github.com/lib/pq"
)

// InitDB opens the connection pool against PostgreSQL. A diagnostic ping is
// issued at startup purely to log connectivity status; a failed ping is not
// fatal, so the server can come up before the database does.
func InitDB(cfg *Config) (*sql.DB, error) {
	dsn := cfg.DatabaseURL
	if cfg.IsProduction() && !strings.Contains(dsn, "sslmode=") {
		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}
		dsn += sep + "sslmode=require"
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	if err := db.Ping(); err != nil {
		log.Printf("❌ Error connecting to the database: %v", err)
	} else {
		log.Println("✅ Database connected successfully")
	}

	return db, nil
}
