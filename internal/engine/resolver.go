package engine

import (
	"strings"

	"animehub/pkg/models"
)

// titleIndex maps titles to row indices, once case-preserved and once
// lowercased. Rows without a title are never indexed. When the same
// title appears on several rows the later row wins; lookups stay
// deterministic either way since row order is fixed at build time.
type titleIndex struct {
	exact map[string]int
	lower map[string]int
}

func newTitleIndex(rows []models.Anime) *titleIndex {
	ix := &titleIndex{
		exact: make(map[string]int),
		lower: make(map[string]int),
	}
	for i, r := range rows {
		if r.Title == nil {
			continue
		}
		ix.exact[*r.Title] = i
		ix.lower[strings.ToLower(*r.Title)] = i
	}
	return ix
}

// resolve tries an exact match first and falls back to a
// case-insensitive match, so "NARUTO" still finds the row stored as
// "Naruto".
func (ix *titleIndex) resolve(title string) (int, bool) {
	if i, ok := ix.exact[title]; ok {
		return i, true
	}
	if i, ok := ix.lower[strings.ToLower(title)]; ok {
		return i, true
	}
	return 0, false
}
