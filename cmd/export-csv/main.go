package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"animehub/internal/dataset"
	"animehub/pkg/database"
)

// Dumps the sqlite catalog back to a headered CSV, the inverse of
// cmd/import-csv.
func main() {
	out := flag.String("out", "anime_export.csv", "output CSV path")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	db := database.MustOpen(database.DefaultConfig())
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	table, err := dataset.LoadSQLite(ctx, db)
	if err != nil {
		log.Fatalf("load catalog failed: %v", err)
	}

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("create %s: %v", *out, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"title", "genre", "type", "source", "studio", "score", "episodes", "aired"}); err != nil {
		log.Fatalf("write header: %v", err)
	}

	for _, a := range table.Rows {
		rec := []string{
			strVal(a.Title),
			strVal(a.Genre),
			strVal(a.Type),
			strVal(a.Source),
			strVal(a.Studio),
			floatVal(a.Score),
			intVal(a.Episodes),
			strVal(a.Aired),
		}
		if err := w.Write(rec); err != nil {
			log.Fatalf("write row: %v", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		log.Fatalf("flush csv: %v", err)
	}

	fmt.Printf("exported %d anime to %s\n", len(table.Rows), *out)
}

func strVal(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func floatVal(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}

func intVal(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}
