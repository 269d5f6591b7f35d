package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"time"

	"animehub/internal/dataset"
	"animehub/pkg/database"
	"animehub/pkg/models"
)

func main() {
	var (
		in    = flag.String("csv", "final_animedataset.csv", "input CSV path for anime")
		reset = flag.Bool("reset", false, "clear the anime table before importing")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	db := database.MustOpen(database.DefaultConfig())
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	table, err := dataset.LoadCSV(*in)
	if err != nil {
		log.Fatalf("load csv failed: %v", err)
	}

	if *reset {
		if _, err := db.ExecContext(ctx, `DELETE FROM anime`); err != nil {
			log.Fatalf("reset anime table failed: %v", err)
		}
	}

	if err := importAnime(ctx, db, table.Rows); err != nil {
		log.Fatalf("import anime failed: %v", err)
	}

	log.Printf("imported %d anime from %s", len(table.Rows), *in)
}

func importAnime(ctx context.Context, db *sql.DB, rows []models.Anime) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO anime (title, genre, type, source, studio, score, episodes, aired)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, a := range rows {
		if _, err := stmt.ExecContext(ctx,
			nullStr(a.Title),
			nullStr(a.Genre),
			nullStr(a.Type),
			nullStr(a.Source),
			nullStr(a.Studio),
			nullFloat(a.Score),
			nullInt(a.Episodes),
			nullStr(a.Aired),
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func nullStr(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func nullFloat(f *float64) any {
	if f == nil {
		return nil
	}
	return *f
}

func nullInt(n *int) any {
	if n == nil {
		return nil
	}
	return *n
}
