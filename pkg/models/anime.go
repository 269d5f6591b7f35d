package models

// Anime is the normalized, internal form of one dataset row.
//
// Only the title column is guaranteed to exist in the source data;
// individual values may still be missing, so every field is a pointer
// and nil means "absent". All loaders map into this structure first.
type Anime struct {
	Title    *string  `json:"title"`
	Genre    *string  `json:"genre,omitempty"`    // comma-delimited genre list as stored
	Type     *string  `json:"type,omitempty"`     // "TV", "Movie", "OVA", ...
	Source   *string  `json:"source,omitempty"`   // adaptation source, e.g. "Manga"
	Studio   *string  `json:"studio,omitempty"`
	Score    *float64 `json:"score,omitempty"`    // 0-10 community score
	Episodes *int     `json:"episodes,omitempty"`
	Aired    *string  `json:"aired,omitempty"`    // free-text air date / range
}

// Recommendation is one entry returned by the recommendation engine.
// Optional metadata is carried over from the source row when present.
type Recommendation struct {
	Title      string   `json:"title"`
	Genre      string   `json:"genre"`
	Type       string   `json:"type"`
	Source     string   `json:"source"`
	Similarity float64  `json:"similarity"` // cosine similarity, rounded to 4 decimals
	Score      *float64 `json:"score,omitempty"`
	Episodes   *int     `json:"episodes,omitempty"`
	Aired      *string  `json:"aired,omitempty"`
	Studio     *string  `json:"studio,omitempty"`
}
