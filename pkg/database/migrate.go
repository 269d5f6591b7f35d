package database

import (
	"database/sql"
	"fmt"
)

const schema = `
CREATE TABLE IF NOT EXISTS anime (
	rowid_ord INTEGER PRIMARY KEY AUTOINCREMENT,
	title     TEXT,
	genre     TEXT,
	type      TEXT,
	source    TEXT,
	studio    TEXT,
	score     REAL,
	episodes  INTEGER,
	aired     TEXT
);

CREATE INDEX IF NOT EXISTS idx_anime_title ON anime(title);
`

// Migrate applies the catalog schema. Safe to run repeatedly.
func Migrate(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
