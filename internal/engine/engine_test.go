package engine

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"animehub/internal/dataset"
	"animehub/pkg/models"
)

func mkAnime(title, genre, typ, source string, score float64, episodes int, aired string) models.Anime {
	return models.Anime{
		Title:    strp(title),
		Genre:    strp(genre),
		Type:     strp(typ),
		Source:   strp(source),
		Score:    f64p(score),
		Episodes: intp(episodes),
		Aired:    strp(aired),
	}
}

// testTable is large enough that TF-IDF pruning leaves a real
// vocabulary: genres, types and bucket tokens recur across rows.
func testTable() *dataset.Table {
	rows := []models.Anime{
		mkAnime("Naruto", "Action, Shounen", "TV", "Manga", 7.9, 220, "2002"),
		mkAnime("Naruto: Shippuuden", "Action, Shounen", "TV", "Manga", 8.1, 500, "2007"),
		mkAnime("One Piece", "Action, Shounen, Adventure", "TV", "Manga", 8.5, 1000, "1999"),
		mkAnime("OnePunch Man", "Action, Comedy", "TV", "Web manga", 8.7, 12, "2015"),
		mkAnime("Bleach", "Action, Shounen", "TV", "Manga", 7.8, 366, "2004"),
		mkAnime("Death Note", "Mystery, Thriller", "TV", "Manga", 8.6, 37, "2006"),
		// Duplicate title on a distinct row.
		mkAnime("Bleach", "Action", "Movie", "Manga", 7.2, 1, "2006"),
	}
	return &dataset.Table{
		Rows:    rows,
		Columns: []string{"title", "genre", "type", "source", "score", "episodes", "aired"},
	}
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	eng, err := New(testTable(), nil)
	require.NoError(t, err)
	return eng
}

func TestNewRejectsEmptyDataset(t *testing.T) {
	_, err := New(&dataset.Table{}, nil)
	assert.Error(t, err)
}

func TestNewRejectsDegenerateCorpus(t *testing.T) {
	// Two rows with nothing in common: every term is pruned.
	rows := []models.Anime{
		{Title: strp("Alpha Omega")},
		{Title: strp("Beta Gamma")},
	}
	_, err := New(&dataset.Table{Rows: rows, Columns: []string{"title"}}, nil)
	assert.ErrorIs(t, err, ErrEmptyVocabulary)
}

func TestSimilarityMatrixProperties(t *testing.T) {
	eng := newTestEngine(t)

	n, m := eng.sim.Dims()
	require.Equal(t, eng.Len(), n)
	require.Equal(t, n, m)

	for i := 0; i < n; i++ {
		assert.InDelta(t, 1.0, eng.sim.At(i, i), 1e-9, "self-similarity of row %d", i)
		for j := 0; j < n; j++ {
			assert.InDelta(t, eng.sim.At(i, j), eng.sim.At(j, i), 1e-12, "symmetry at (%d,%d)", i, j)
			assert.GreaterOrEqual(t, eng.sim.At(i, j), 0.0)
			assert.LessOrEqual(t, eng.sim.At(i, j), 1.0+1e-9)
		}
	}
}

func TestTitleIndexLastOccurrenceWins(t *testing.T) {
	ix := newTitleIndex(testTable().Rows)

	i, ok := ix.resolve("Bleach")
	require.True(t, ok)
	assert.Equal(t, 6, i, "duplicate titles resolve to the later row")
}

func TestTitleIndexCaseInsensitiveFallback(t *testing.T) {
	ix := newTitleIndex(testTable().Rows)

	exact, ok := ix.resolve("Naruto")
	require.True(t, ok)

	folded, ok := ix.resolve("NARUTO")
	require.True(t, ok)
	assert.Equal(t, exact, folded)

	_, ok = ix.resolve("Nonexistent Anime XYZ")
	assert.False(t, ok)
}

func TestRecommendProperties(t *testing.T) {
	eng := newTestEngine(t)

	recs := eng.Recommend("Naruto", 5)
	require.NotEmpty(t, recs)
	assert.LessOrEqual(t, len(recs), 5)

	seen := make(map[string]bool)
	prev := 2.0
	for _, r := range recs {
		assert.NotEqual(t, "Naruto", r.Title, "query row must never be recommended")
		assert.False(t, seen[r.Title], "title %q recommended twice", r.Title)
		seen[r.Title] = true

		assert.LessOrEqual(t, r.Similarity, prev, "results must be sorted by similarity")
		prev = r.Similarity
	}
}

func TestRecommendCaseInsensitive(t *testing.T) {
	eng := newTestEngine(t)

	upper := eng.Recommend("NARUTO", 3)
	exact := eng.Recommend("Naruto", 3)
	assert.Equal(t, exact, upper)
}

func TestRecommendUnknownTitle(t *testing.T) {
	eng := newTestEngine(t)
	assert.Empty(t, eng.Recommend("Nonexistent Anime XYZ", 5))
}

func TestRecommendDeduplicatesTitles(t *testing.T) {
	eng := newTestEngine(t)

	// Two rows share the title "Bleach"; asking for everything must
	// still emit it once.
	recs := eng.Recommend("Naruto", 50)
	count := 0
	for _, r := range recs {
		if r.Title == "Bleach" {
			count++
		}
	}
	assert.Equal(t, 1, count)

	// 7 rows, one is the query, two share a title: 5 unique candidates.
	assert.Len(t, recs, 5)
}

func TestRecommendCarriesMetadata(t *testing.T) {
	eng := newTestEngine(t)

	recs := eng.Recommend("Naruto", 50)
	require.NotEmpty(t, recs)

	for _, r := range recs {
		assert.NotEmpty(t, r.Genre)
		assert.NotEmpty(t, r.Type)
		assert.NotEmpty(t, r.Source)
		require.NotNil(t, r.Score)
		require.NotNil(t, r.Episodes)
		require.NotNil(t, r.Aired)

		// 4-decimal rounding.
		assert.Equal(t, math.Round(r.Similarity*1e4)/1e4, r.Similarity)
	}
}

func TestSearchTitles(t *testing.T) {
	eng := newTestEngine(t)

	matches := eng.SearchTitles("one", 3)
	assert.LessOrEqual(t, len(matches), 3)
	require.NotEmpty(t, matches)
	for _, m := range matches {
		assert.Contains(t, strings.ToLower(m), "one")
	}

	assert.Empty(t, eng.SearchTitles("zzzz", 10))
}

func TestSearchTitlesDatasetOrder(t *testing.T) {
	eng := newTestEngine(t)

	matches := eng.SearchTitles("naruto", 10)
	assert.Equal(t, []string{"Naruto", "Naruto: Shippuuden"}, matches)
}

func TestGetRandom(t *testing.T) {
	eng := newTestEngine(t)

	titles := eng.GetRandom(5)
	assert.Len(t, titles, 5)

	seen := make(map[string]bool)
	for _, title := range titles {
		assert.False(t, seen[title], "random sample repeated %q", title)
		seen[title] = true
	}

	// Clamped low and high.
	assert.Len(t, eng.GetRandom(0), 1)
	assert.Len(t, eng.GetRandom(100), 7)
}

func TestTitlesSortedUnique(t *testing.T) {
	eng := newTestEngine(t)

	titles := eng.Titles()
	assert.Equal(t, []string{
		"Bleach", "Death Note", "Naruto", "Naruto: Shippuuden", "One Piece", "OnePunch Man",
	}, titles)
}

func TestInfo(t *testing.T) {
	eng := newTestEngine(t)

	a, ok := eng.Info("death note")
	require.True(t, ok)
	assert.Equal(t, "Death Note", *a.Title)

	_, ok = eng.Info("Nonexistent Anime XYZ")
	assert.False(t, ok)
}

func TestDatasetStats(t *testing.T) {
	eng := newTestEngine(t)

	st := eng.DatasetStats()
	assert.Equal(t, 7, st.TotalAnime)
	assert.Len(t, st.SampleTitles, 5)
	assert.Equal(t, 6, st.Types["TV"])
	assert.Equal(t, 1, st.Types["Movie"])
	assert.Equal(t, 5, st.TotalGenres)
}
