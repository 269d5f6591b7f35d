// Package engine builds the content-similarity index over the anime
// dataset and answers recommendation queries from it. Everything is
// computed eagerly in New; after that the engine is immutable and all
// query methods are safe for concurrent callers without locking.
package engine

import (
	"errors"
	"math"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"

	"animehub/internal/dataset"
	"animehub/pkg/models"
)

type Engine struct {
	table    *dataset.Table
	features *mat.Dense
	vocab    []string
	sim      *mat.Dense
	titles   *titleIndex
	logger   *logrus.Entry
}

// Stats summarizes the loaded dataset for the /stats endpoint.
type Stats struct {
	TotalAnime   int            `json:"total_anime"`
	Columns      []string       `json:"columns"`
	SampleTitles []string       `json:"sample_titles"`
	Types        map[string]int `json:"types,omitempty"`
	TotalGenres  int            `json:"total_genres,omitempty"`
}

// New runs the full build pipeline: tag strings, TF-IDF features,
// all-pairs similarity, title index. Any failure here is fatal to the
// caller; a degenerate corpus surfaces as ErrEmptyVocabulary.
func New(table *dataset.Table, logger *logrus.Entry) (*Engine, error) {
	if table == nil || len(table.Rows) == 0 {
		return nil, errors.New("engine: empty dataset")
	}
	if logger == nil {
		logger = logrus.NewEntry(logrus.New())
	}

	start := time.Now()

	tags := make([]string, len(table.Rows))
	for i, r := range table.Rows {
		tags[i] = TagString(r)
	}

	features, vocab, err := fitTransform(tags)
	if err != nil {
		return nil, err
	}
	logger.Infof("Vectorized %d anime into %d features", len(tags), len(vocab))

	sim := similarityMatrix(features)
	titles := newTitleIndex(table.Rows)

	logger.Infof("Similarity index ready in %s (%d unique titles)",
		time.Since(start).Round(time.Millisecond), len(titles.exact))

	return &Engine{
		table:    table,
		features: features,
		vocab:    vocab,
		sim:      sim,
		titles:   titles,
		logger:   logger,
	}, nil
}

// Len returns the number of rows in the indexed dataset.
func (e *Engine) Len() int {
	return len(e.table.Rows)
}

// VocabSize returns the number of TF-IDF features.
func (e *Engine) VocabSize() int {
	return len(e.vocab)
}

// Recommend returns up to topN anime most similar to the named title.
// The title is resolved exactly first, then case-insensitively; an
// unknown title yields an empty list, indistinguishable from "no
// candidates" (the HTTP layer turns that into a 404 with suggestions).
// The queried row itself is never returned and each title appears at
// most once even when the dataset holds duplicate rows for it.
func (e *Engine) Recommend(title string, topN int) []models.Recommendation {
	index, ok := e.titles.resolve(title)
	if !ok {
		return []models.Recommendation{}
	}

	scores := e.sim.RawRowView(index)

	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	// Stable sort keeps original row order among equal scores.
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	seen := make(map[string]struct{}, topN)
	recs := make([]models.Recommendation, 0, topN)

	for _, idx := range order {
		if idx == index {
			continue
		}
		row := e.table.Rows[idx]

		var t string
		if row.Title != nil {
			t = *row.Title
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}

		recs = append(recs, models.Recommendation{
			Title:      t,
			Genre:      deref(row.Genre),
			Type:       deref(row.Type),
			Source:     deref(row.Source),
			Similarity: math.Round(scores[idx]*1e4) / 1e4,
			Score:      row.Score,
			Episodes:   row.Episodes,
			Aired:      row.Aired,
			Studio:     row.Studio,
		})
		if len(recs) == topN {
			break
		}
	}

	return recs
}

// SearchTitles returns titles containing the query as a case-insensitive
// substring, in dataset order, at most limit of them.
func (e *Engine) SearchTitles(query string, limit int) []string {
	q := strings.ToLower(query)
	matches := []string{}

	for _, r := range e.table.Rows {
		if r.Title == nil {
			continue
		}
		if strings.Contains(strings.ToLower(*r.Title), q) {
			matches = append(matches, *r.Title)
			if len(matches) >= limit {
				break
			}
		}
	}
	return matches
}

// GetRandom returns count titles drawn uniformly without replacement
// from the rows that have one. Count is clamped to [1,50] and to the
// number of available titles. Results vary across calls.
func (e *Engine) GetRandom(count int) []string {
	if count < 1 {
		count = 1
	}
	if count > 50 {
		count = 50
	}

	titles := e.nonNilTitles()
	if count > len(titles) {
		count = len(titles)
	}

	out := make([]string, 0, count)
	for _, i := range rand.Perm(len(titles))[:count] {
		out = append(out, titles[i])
	}
	return out
}

// Titles returns every distinct title in the dataset, sorted.
func (e *Engine) Titles() []string {
	set := make(map[string]struct{})
	for _, r := range e.table.Rows {
		if r.Title != nil {
			set[*r.Title] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for t := range set {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// Info looks up the full record for a title, exact match first and then
// case-insensitive, scanning in dataset order.
func (e *Engine) Info(title string) (models.Anime, bool) {
	for _, r := range e.table.Rows {
		if r.Title != nil && *r.Title == title {
			return r, true
		}
	}
	lower := strings.ToLower(title)
	for _, r := range e.table.Rows {
		if r.Title != nil && strings.ToLower(*r.Title) == lower {
			return r, true
		}
	}
	return models.Anime{}, false
}

// DatasetStats reports dataset-level numbers for the /stats endpoint.
func (e *Engine) DatasetStats() Stats {
	titles := e.nonNilTitles()
	sample := titles
	if len(sample) > 5 {
		sample = sample[:5]
	}

	st := Stats{
		TotalAnime:   len(e.table.Rows),
		Columns:      e.table.Columns,
		SampleTitles: sample,
	}

	if e.hasColumn("type") {
		st.Types = make(map[string]int)
		for _, r := range e.table.Rows {
			if r.Type != nil {
				st.Types[*r.Type]++
			}
		}
	}
	if e.hasColumn("genre") {
		distinct := make(map[string]struct{})
		for _, r := range e.table.Rows {
			if r.Genre != nil {
				distinct[*r.Genre] = struct{}{}
			}
		}
		st.TotalGenres = len(distinct)
	}
	return st
}

func (e *Engine) hasColumn(name string) bool {
	for _, c := range e.table.Columns {
		if c == name {
			return true
		}
	}
	return false
}

func (e *Engine) nonNilTitles() []string {
	out := make([]string, 0, len(e.table.Rows))
	for _, r := range e.table.Rows {
		if r.Title != nil {
			out = append(out, *r.Title)
		}
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
