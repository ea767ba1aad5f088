package testutil

import (
	"database/sql"
	"testing"

	"alcyxob/training-tracker/internal/repository/sqlite"
)

// NewTestDB opens an in-memory SQLite database with the schema applied and
// closes it when the test finishes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := sqlite.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}
