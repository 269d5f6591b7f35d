package dataset

import (
	"context"
	"database/sql"
	"fmt"

	"animehub/pkg/models"
)

// LoadSQLite reads the anime table from the imported sqlite catalog,
// preserving import order so index builds are stable across restarts.
func LoadSQLite(ctx context.Context, db *sql.DB) (*Table, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT title, genre, type, source, studio, score, episodes, aired
		FROM anime
		ORDER BY rowid_ord
	`)
	if err != nil {
		return nil, fmt.Errorf("query anime: %w", err)
	}
	defer rows.Close()

	var out []models.Anime
	for rows.Next() {
		var (
			title    sql.NullString
			genre    sql.NullString
			typ      sql.NullString
			source   sql.NullString
			studio   sql.NullString
			score    sql.NullFloat64
			episodes sql.NullInt64
			aired    sql.NullString
		)
		if err := rows.Scan(&title, &genre, &typ, &source, &studio, &score, &episodes, &aired); err != nil {
			return nil, fmt.Errorf("scan anime row: %w", err)
		}

		var a models.Anime
		if title.Valid {
			a.Title = &title.String
		}
		if genre.Valid {
			a.Genre = &genre.String
		}
		if typ.Valid {
			a.Type = &typ.String
		}
		if source.Valid {
			a.Source = &source.String
		}
		if studio.Valid {
			a.Studio = &studio.String
		}
		if score.Valid {
			a.Score = &score.Float64
		}
		if episodes.Valid {
			n := int(episodes.Int64)
			a.Episodes = &n
		}
		if aired.Valid {
			a.Aired = &aired.String
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows err: %w", err)
	}

	return &Table{Rows: out, Columns: knownColumns}, nil
}
