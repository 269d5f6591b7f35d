// Package dataset loads the anime table from CSV or the sqlite catalog
// and applies the one-time startup subsample. The engine only ever sees
// the immutable Table produced here.
package dataset

import (
	"math/rand"
	"strconv"
	"strings"

	"animehub/pkg/models"
)

// Table is an ordered, immutable snapshot of the dataset plus the set of
// columns that were actually present in the source. Row order is
// significant: every derived structure in the engine is aligned to it.
type Table struct {
	Rows    []models.Anime
	Columns []string
}

// knownColumns is the recognized schema, in reporting order.
var knownColumns = []string{"title", "genre", "type", "source", "score", "episodes", "aired", "studio"}

// Sample returns t unchanged when it has at most max rows, otherwise a
// random subsample of exactly max rows. The seed is fixed by the caller
// so repeated startups build the same index from the same file.
func Sample(t *Table, max int, seed int64) *Table {
	if max <= 0 || len(t.Rows) <= max {
		return t
	}
	rng := rand.New(rand.NewSource(seed))
	perm := rng.Perm(len(t.Rows))

	rows := make([]models.Anime, max)
	for i := 0; i < max; i++ {
		rows[i] = t.Rows[perm[i]]
	}
	return &Table{Rows: rows, Columns: t.Columns}
}

// strPtr maps an empty cell to nil so "missing" survives the load.
func strPtr(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

// parseScore parses a 0-10 score, nil on anything unparseable.
func parseScore(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

// parseEpisodes parses an episode count. The raw column stores counts as
// integers or floats ("24", "24.0") with "Unknown" for unaired entries,
// so the float form is accepted and truncated.
func parseEpisodes(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		return &n
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	n := int(f)
	return &n
}
