package migrations

import (
	"github.com/NeuralTrust/Marketplace/pkg/infra/database"
	"gorm.io/gorm"
)

// Tables: products, customers, orders. Order numbers come from a sequence.
func init() {
	database.RegisterMigration(database.Migration{
		ID:   "20240101_marketplace_schema",
		Name: "Create marketplace tables: products, customers, orders",

		Up: func(db *gorm.DB) error {
			statements := []string{
				`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
				`CREATE TABLE IF NOT EXISTS products (
					id          UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					tenant_id   TEXT NOT NULL,
					name        TEXT NOT NULL,
					description TEXT,
					price       NUMERIC(12,2) NOT NULL CHECK (price >= 0),
					stock       INTEGER NOT NULL DEFAULT 0 CHECK (stock >= 0),
					created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);`,
				`CREATE INDEX IF NOT EXISTS idx_products_tenant ON products (tenant_id);`,
				`CREATE TABLE IF NOT EXISTS customers (
					id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					tenant_id  TEXT NOT NULL,
					name       TEXT NOT NULL,
					email      TEXT NOT NULL,
					address    TEXT,
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);`,
				`CREATE UNIQUE INDEX IF NOT EXISTS idx_customer_tenant_email ON customers (tenant_id, email);`,
				`CREATE SEQUENCE IF NOT EXISTS order_number_seq START 1000;`,
				`CREATE TABLE IF NOT EXISTS orders (
					id           UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					tenant_id    TEXT NOT NULL,
					order_number BIGINT NOT NULL,
					customer_id  UUID NOT NULL REFERENCES customers(id) ON DELETE RESTRICT,
					product_id   UUID NOT NULL REFERENCES products(id) ON DELETE RESTRICT,
					quantity     INTEGER NOT NULL CHECK (quantity > 0),
					order_date   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);`,
				`CREATE UNIQUE INDEX IF NOT EXISTS idx_orders_tenant_number ON orders (tenant_id, order_number);`,
			}
			for _, stmt := range statements {
				if err := db.Exec(stmt).Error; err != nil {
					return err
				}
			}
			return nil
		},
	})
}
