package database

import (
	"context"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql" // Supported for self-hosted MySQL deployments
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // Default PostgreSQL driver (Supabase-compatible)
)

// New creates a new database connection (supports both PostgreSQL and MySQL)
func New(databaseURL string) (*sqlx.DB, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable not set")
	}

	// Auto-detect driver from URL
	const (
		driverMySQL    = "mysql"
		driverPostgres = "postgres"
	)
	driver := driverMySQL
	if len(databaseURL) > 8 && databaseURL[:8] == driverPostgres {
		driver = driverPostgres
	}

	db, err := sqlx.Open(driver, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Configure connection pool settings
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}
