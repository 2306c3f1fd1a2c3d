// Package main seeds the database with demo CRM data.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/matiascamiletti/mc-odata-go/internal/infrastructure/storage/postgres"
	"github.com/matiascamiletti/mc-odata-go/pkg/logger"
)

const schema = `
CREATE TABLE IF NOT EXISTS companies (
	id         UUID PRIMARY KEY,
	name       TEXT NOT NULL,
	industry   TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS contacts (
	id         UUID PRIMARY KEY,
	first_name TEXT NOT NULL,
	last_name  TEXT NOT NULL,
	email      TEXT,
	age        INT,
	balance    NUMERIC(12,2) NOT NULL DEFAULT 0,
	active     BOOLEAN NOT NULL DEFAULT true,
	company_id UUID REFERENCES companies(id),
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_contacts_company_id ON contacts(company_id);
CREATE INDEX IF NOT EXISTS idx_contacts_last_name ON contacts(last_name);
`

func main() {
	_ = godotenv.Load()

	log, err := logger.New(logger.Config{Level: "info", Development: true})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(dsn))
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, schema); err != nil {
		log.Fatalw("failed to create schema", "error", err)
	}
	log.Info("schema ready")

	if err := seed(ctx, pool); err != nil {
		log.Fatalw("seeding failed", "error", err)
	}
	log.Info("demo data inserted")
}

func seed(ctx context.Context, pool *postgres.Pool) error {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	acme := uuid.New()
	globex := uuid.New()

	companies := psql.Insert("companies").
		Columns("id", "name", "industry").
		Values(acme, "Acme Corp", "Manufacturing").
		Values(globex, "Globex", "Energy")

	query, args, err := companies.ToSql()
	if err != nil {
		return fmt.Errorf("build companies insert: %w", err)
	}
	if _, err := pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("insert companies: %w", err)
	}

	type row struct {
		first   string
		last    string
		email   *string
		age     *int
		balance decimal.Decimal
		active  bool
		company *uuid.UUID
	}

	strPtr := func(s string) *string { return &s }
	intPtr := func(n int) *int { return &n }

	rows := []row{
		{"Jane", "Doe", strPtr("jane.doe@acme.example"), intPtr(34), decimal.NewFromFloat(1250.50), true, &acme},
		{"John", "Smith", strPtr("john.smith@acme.example"), intPtr(45), decimal.NewFromFloat(98.00), true, &acme},
		{"Alice", "Johnson", strPtr("alice@globex.example"), intPtr(29), decimal.NewFromFloat(4300.75), true, &globex},
		{"Bob", "Brown", nil, intPtr(52), decimal.Zero, false, &globex},
		{"Carol", "Davis", strPtr("carol@freelance.example"), nil, decimal.NewFromFloat(310.10), true, nil},
	}

	contacts := psql.Insert("contacts").
		Columns("id", "first_name", "last_name", "email", "age", "balance", "active", "company_id")
	for _, r := range rows {
		contacts = contacts.Values(uuid.New(), r.first, r.last, r.email, r.age, r.balance, r.active, r.company)
	}

	query, args, err = contacts.ToSql()
	if err != nil {
		return fmt.Errorf("build contacts insert: %w", err)
	}
	if _, err := pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("insert contacts: %w", err)
	}
	return nil
}
