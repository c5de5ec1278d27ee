// Package main provides a CLI tool for creating the schema and seeding
// the database with a demo shop and reference data.
package main

import (
	"context"
	"fmt"
	"os"

	"salesdesk/internal/core/id"
	"salesdesk/internal/domain/auth"
	"salesdesk/internal/infrastructure/storage/postgres"
	"salesdesk/internal/infrastructure/storage/postgres/auth_repo"
	"salesdesk/pkg/logger"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS shops (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		secret_hash TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS towns (
		id   UUID PRIMARY KEY,
		name TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS buyers (
		id      UUID PRIMARY KEY,
		name    TEXT NOT NULL,
		town_id UUID REFERENCES towns(id),
		phone   TEXT,
		email   TEXT,
		address TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS sales (
		id             UUID PRIMARY KEY,
		shop_id        TEXT NOT NULL,
		buyer_id       TEXT,
		invoice_number TEXT NOT NULL DEFAULT '',
		product_name   TEXT NOT NULL DEFAULT '',
		quantity       INTEGER NOT NULL DEFAULT 0,
		sale_date      TIMESTAMPTZ NOT NULL,
		amount         NUMERIC(14,2) NOT NULL DEFAULT 0,
		removed        BOOLEAN NOT NULL DEFAULT FALSE,
		created_at     TIMESTAMPTZ NOT NULL,
		updated_at     TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sales_shop_live ON sales (shop_id) WHERE NOT removed`,
	`CREATE INDEX IF NOT EXISTS idx_sales_sale_date ON sales (sale_date)`,
	`CREATE TABLE IF NOT EXISTS audit_log (
		id                 UUID PRIMARY KEY,
		entity_type        TEXT NOT NULL,
		entity_id          UUID NOT NULL,
		action             TEXT NOT NULL,
		shop_id            TEXT NOT NULL DEFAULT '',
		changes            JSONB,
		changes_compressed BYTEA,
		compression_algo   TEXT NOT NULL DEFAULT 'none',
		created_at         TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_audit_entity ON audit_log (entity_type, entity_id)`,
}

func main() {
	log, err := logger.New(logger.Config{
		Level:       "info",
		Development: true,
	})
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(dbURL))
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	log.Info("connected to database")

	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			log.Fatalw("failed to apply schema", "error", err)
		}
	}
	log.Info("schema applied")

	if err := seedShop(ctx, pool, log); err != nil {
		log.Fatalw("failed to seed shop", "error", err)
	}

	if os.Getenv("SEED_DEMO_DATA") == "true" {
		if err := seedDemoData(ctx, pool, log); err != nil {
			log.Fatalw("failed to seed demo data", "error", err)
		}
	}

	log.Info("seeding completed successfully")
}

func seedShop(ctx context.Context, pool *postgres.Pool, log *logger.Logger) error {
	shopID := os.Getenv("SHOP_ID")
	if shopID == "" {
		shopID = "demo-shop"
	}
	shopSecret := os.Getenv("SHOP_SECRET")
	if shopSecret == "" {
		shopSecret = "demo-secret"
	}

	hash, err := auth.HashSecret(shopSecret)
	if err != nil {
		return fmt.Errorf("hash shop secret: %w", err)
	}

	txm := postgres.NewTxManager(pool)
	shops := auth_repo.NewShopRepo(txm)

	if err := shops.Upsert(ctx, &auth.Shop{
		ID:         shopID,
		Name:       "Demo Shop",
		SecretHash: hash,
	}); err != nil {
		return err
	}

	log.Infow("shop seeded", "shop_id", shopID)
	return nil
}

func seedDemoData(ctx context.Context, pool *postgres.Pool, log *logger.Logger) error {
	towns := []string{"Springfield", "Riverton", "Lakeside"}

	townIDs := make([]id.ID, 0, len(towns))
	for _, name := range towns {
		townID := id.New()
		_, err := pool.Exec(ctx,
			`INSERT INTO towns (id, name) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			townID, name,
		)
		if err != nil {
			return fmt.Errorf("insert town %s: %w", name, err)
		}
		townIDs = append(townIDs, townID)
	}

	buyers := []struct {
		name  string
		town  id.ID
		email string
	}{
		{"Jane Cooper", townIDs[0], "jane@example.com"},
		{"Wade Warren", townIDs[1], "wade@example.com"},
		{"Esther Howard", townIDs[2], "esther@example.com"},
	}

	for _, b := range buyers {
		_, err := pool.Exec(ctx,
			`INSERT INTO buyers (id, name, town_id, email) VALUES ($1, $2, $3, $4) ON CONFLICT DO NOTHING`,
			id.New(), b.name, b.town, b.email,
		)
		if err != nil {
			return fmt.Errorf("insert buyer %s: %w", b.name, err)
		}
	}

	log.Infow("demo data seeded", "towns", len(towns), "buyers", len(buyers))
	return nil
}
