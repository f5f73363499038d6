package repository_test

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS groups (
  id BIGINT PRIMARY KEY,
  name VARCHAR(255) NOT NULL,
  created_by VARCHAR(255) NOT NULL
);
CREATE TABLE IF NOT EXISTS users (
  id UUID PRIMARY KEY,
  name VARCHAR(255) NOT NULL,
  email VARCHAR(320) NOT NULL UNIQUE,
  group_id BIGINT,
  created_by VARCHAR(255) NOT NULL,
  created_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
  modified_by VARCHAR(255),
  modified_date TIMESTAMPTZ,
  is_deleted BOOLEAN NOT NULL DEFAULT FALSE
);
`

func setupDB(t *testing.T) (*gorm.DB, *pgxpool.Pool) {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL is not set")
	}

	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect db: %v", err)
	}
	if err := gdb.Exec(schemaSQL).Error; err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
	if err := gdb.Exec("TRUNCATE users, groups").Error; err != nil {
		t.Fatalf("failed to truncate tables: %v", err)
	}

	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		t.Fatalf("failed to create pgx pool: %v", err)
	}
	t.Cleanup(pool.Close)

	return gdb, pool
}
