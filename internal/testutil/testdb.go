// Package testutil provides shared test fixtures.
package testutil

import (
	"database/sql"
	"testing"

	"greenlight/internal/db"
)

// NewTestDB opens an in-memory SQLite database with migrations applied.
// Closed automatically when the test finishes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	database, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	return database
}
