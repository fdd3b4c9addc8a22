package db

import (
	"database/sql"
	"fmt"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id                 TEXT PRIMARY KEY,
		name               TEXT NOT NULL,
		level              INTEGER NOT NULL DEFAULT 1,
		xp                 INTEGER NOT NULL DEFAULT 0,
		coins              INTEGER NOT NULL DEFAULT 0,
		last_active        TEXT,
		baseline           TEXT NOT NULL,
		goals              TEXT NOT NULL,
		streaks            TEXT NOT NULL DEFAULT '{}',
		category_counts    TEXT NOT NULL DEFAULT '{}',
		completed_missions TEXT NOT NULL DEFAULT '[]',
		unlocked           TEXT NOT NULL DEFAULT '[]',
		responses          TEXT NOT NULL DEFAULT '[]',
		missions           TEXT NOT NULL DEFAULT '[]',
		created_at         TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_users_created_at ON users(created_at)`,
}

// Migrate runs all schema migrations. Statements are idempotent so the full
// list re-runs safely on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
