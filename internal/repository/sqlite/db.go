package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// OpenDB opens the tracker database at path, creating parent directories as
// needed. ":memory:" yields a throwaway in-memory database. The connection
// comes back with WAL journaling, foreign keys enabled and the schema
// migrated.
func OpenDB(path string) (*sql.DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// WAL keeps readers unblocked while a write is in flight
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA foreign_keys = ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("applying %q: %w", pragma, err)
		}
	}

	if err := Migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating schema: %w", err)
	}

	return db, nil
}

// Migrate applies every schema statement in order. Statements are written to
// be idempotent so reopening an existing database is safe.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS exercises (
		id              INTEGER PRIMARY KEY AUTOINCREMENT,
		date            TEXT NOT NULL,
		sport           TEXT NOT NULL
		                CHECK(sport IN ('running','swimming','cycling','pullups','pushups','weights')),
		details         TEXT NOT NULL,
		calories_burned REAL NOT NULL CHECK(calories_burned >= 0)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_exercises_sport ON exercises(sport)`,
}
