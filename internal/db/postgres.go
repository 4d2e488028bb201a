package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("✅ Connected to PostgreSQL")

	// Initialize schema
	if err := initSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return db
}

const usersSchema = `
	CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) UNIQUE NOT NULL,
		password VARCHAR(255) NOT NULL,
		role VARCHAR(50) NOT NULL DEFAULT 'VENDOR',
		latitude DOUBLE PRECISION NULL,
		longitude DOUBLE PRECISION NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)
`

const suppliesSchema = `
	CREATE TABLE IF NOT EXISTS supplies (
		id SERIAL PRIMARY KEY,
		item_name VARCHAR(255) NOT NULL,
		quantity INT NOT NULL,
		unit VARCHAR(50) NOT NULL,
		quality_status VARCHAR(100) NOT NULL,
		expiry_days INT NOT NULL,
		expiry_date DATE NULL,
		photo_url VARCHAR(500) NULL,
		ai_notes TEXT NULL,
		owner_name VARCHAR(255) NOT NULL DEFAULT 'Pedagang Pasar',
		location VARCHAR(255) NOT NULL DEFAULT 'Pasar Tradisional',
		latitude DOUBLE PRECISION NULL,
		longitude DOUBLE PRECISION NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)
`

// supply_id is a loose reference, not a foreign key: cooking hard-deletes
// the consumed supply rows while their completed orders stay as history. A
// constraint here would make every cook of ordered stock fail.
const ordersSchema = `
	CREATE TABLE IF NOT EXISTS orders (
		id SERIAL PRIMARY KEY,
		supply_id INT NOT NULL,
		qty_ordered INT NOT NULL,
		buyer_name VARCHAR(255) NOT NULL,
		status VARCHAR(50) NOT NULL DEFAULT 'pending',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)
`

const mealProductionsSchema = `
	CREATE TABLE IF NOT EXISTS meal_productions (
		id SERIAL PRIMARY KEY,
		menu_name VARCHAR(255) NOT NULL,
		qty_produced INT NOT NULL,
		expiry_datetime TIMESTAMP NOT NULL,
		status VARCHAR(50) NOT NULL DEFAULT 'fresh',
		storage_tips TEXT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)
`

const iotLogsSchema = `
	CREATE TABLE IF NOT EXISTS iot_logs (
		id SERIAL PRIMARY KEY,
		temperature DOUBLE PRECISION NOT NULL,
		humidity DOUBLE PRECISION NOT NULL,
		device_id VARCHAR(100) NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)
`

// initSchema creates or updates the database schema
func initSchema(db *pgxpool.Pool) error {
	ctx := context.Background()

	schemas := []string{
		usersSchema,
		suppliesSchema,
		ordersSchema,
		mealProductionsSchema,
		iotLogsSchema,
	}

	for _, ddl := range schemas {
		if _, err := db.Exec(ctx, ddl); err != nil {
			return err
		}
	}

	log.Println("✅ Schema initialized successfully")
	return nil
}
