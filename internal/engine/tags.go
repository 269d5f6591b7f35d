package engine

import (
	"regexp"
	"strconv"
	"strings"

	"animehub/pkg/models"
)

var yearPattern = regexp.MustCompile(`\b(19\d{2}|20\d{2})\b`)

// TagString flattens one record into the whitespace-joined token string
// the vectorizer consumes. Fields that matter more for similarity are
// repeated so TF-IDF weights them up: the title three times, every genre
// twice. Score, episode count and air year are collapsed into categorical
// bucket tokens; absent or unparseable fields contribute nothing.
func TagString(a models.Anime) string {
	var tags []string

	if a.Title != nil {
		tags = append(tags, *a.Title, *a.Title, *a.Title)
	}

	if a.Genre != nil {
		genres := strings.Fields(strings.ReplaceAll(*a.Genre, ",", " "))
		tags = append(tags, genres...)
		tags = append(tags, genres...)
	}

	if a.Type != nil {
		tags = append(tags, *a.Type)
	}
	if a.Source != nil {
		tags = append(tags, *a.Source)
	}
	if a.Studio != nil {
		tags = append(tags, strings.ReplaceAll(*a.Studio, ",", " "))
	}

	if a.Score != nil {
		switch s := *a.Score; {
		case s >= 8.0:
			tags = append(tags, "highly_rated")
		case s >= 7.0:
			tags = append(tags, "well_rated")
		case s >= 6.0:
			tags = append(tags, "decent_rated")
		}
	}

	if a.Episodes != nil {
		switch eps := *a.Episodes; {
		case eps == 1:
			tags = append(tags, "movie_format")
		case eps <= 13:
			tags = append(tags, "short_series")
		case eps <= 26:
			tags = append(tags, "standard_series")
		default:
			tags = append(tags, "long_series")
		}
	}

	if a.Aired != nil {
		if m := yearPattern.FindString(*a.Aired); m != "" {
			year, _ := strconv.Atoi(m)
			switch {
			case year >= 2020:
				tags = append(tags, "recent_anime")
			case year >= 2010:
				tags = append(tags, "modern_era")
			case year >= 2000:
				tags = append(tags, "early_2000s")
			default:
				tags = append(tags, "classic_anime")
			}
		}
	}

	return strings.Join(tags, " ")
}
