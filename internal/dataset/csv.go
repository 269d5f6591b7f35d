package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"animehub/pkg/models"
)

// LoadCSV reads the anime dataset from a headered CSV file. Column order
// in the file does not matter; unknown columns are ignored and missing
// columns simply leave their fields nil on every row.
func LoadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := readHeader(r)
	if err != nil {
		return nil, err
	}
	if _, ok := header["title"]; !ok {
		return nil, fmt.Errorf("csv %s: missing required column %q", path, "title")
	}

	var rows []models.Anime
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}
		if len(row) == 0 {
			continue
		}

		rows = append(rows, models.Anime{
			Title:    strPtr(valueAt(header, row, "title")),
			Genre:    strPtr(valueAt(header, row, "genre")),
			Type:     strPtr(valueAt(header, row, "type")),
			Source:   strPtr(valueAt(header, row, "source")),
			Studio:   strPtr(valueAt(header, row, "studio")),
			Score:    parseScore(valueAt(header, row, "score")),
			Episodes: parseEpisodes(valueAt(header, row, "episodes")),
			Aired:    strPtr(valueAt(header, row, "aired")),
		})
	}

	var cols []string
	for _, c := range knownColumns {
		if _, ok := header[c]; ok {
			cols = append(cols, c)
		}
	}

	return &Table{Rows: rows, Columns: cols}, nil
}

func readHeader(r *csv.Reader) (map[string]int, error) {
	row, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	header := make(map[string]int, len(row))
	for i, name := range row {
		header[name] = i
	}
	return header, nil
}

func valueAt(header map[string]int, row []string, name string) string {
	i, ok := header[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}
