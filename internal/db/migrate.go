package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS assessments (
		id          TEXT PRIMARY KEY,
		title       TEXT NOT NULL DEFAULT '',
		context     TEXT NOT NULL
		            CHECK(context IN ('UK','EU')),
		verdict     TEXT NOT NULL
		            CHECK(verdict IN ('GREEN','AMBER','RED')),
		risk_score  REAL NOT NULL,
		confidence  TEXT NOT NULL
		            CHECK(confidence IN ('Low','Medium','High')),
		input_hash  TEXT NOT NULL,
		input_json  TEXT NOT NULL,
		output_json TEXT NOT NULL,
		created_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_assessments_created ON assessments(created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_assessments_hash ON assessments(input_hash)`,
}
