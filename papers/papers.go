// Package papers loads and writes the per-year ICLR submission tables and
// joins them against the labeled author profiles.
package papers

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Paper is one submission row. Score columns stay strings because the
// scraped tables carry "N/A" for papers without reviews.
type Paper struct {
	Year              int
	ID                string
	Title             string
	Abstract          string
	Authors           string
	FirstAuthor       string
	Decision          string
	Score             string
	SoundnessScore    string
	PresentationScore string
	ContributionScore string
	Contributions     string
	Introduction      string
	Conclusion        string
}

var paperColumns = []string{
	"year", "id", "title", "abstract", "authors", "first_author",
	"decision", "score", "soundness_score", "presentation_score",
	"contribution_score", "contributions", "introduction", "conclusion",
}

// Read loads a paper table from a CSV or Parquet file, dispatching on the
// file extension.
func Read(path string) ([]Paper, error) {
	if strings.EqualFold(filepath.Ext(path), ".parquet") {
		return readParquet(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening paper file: %w", err)
	}
	defer f.Close()

	return ReadCSV(f)
}

// ReadCSV parses a paper table. Rows missing the id column are skipped.
func ReadCSV(r io.Reader) ([]Paper, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing papers CSV: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	cols := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}

	var all []Paper
	for _, row := range rows[1:] {
		cell := func(name string) string {
			i, ok := cols[name]
			if !ok || i >= len(row) {
				return ""
			}
			return row[i]
		}

		p := Paper{
			ID:                cell("id"),
			Title:             cell("title"),
			Abstract:          cell("abstract"),
			Authors:           cell("authors"),
			FirstAuthor:       cell("first_author"),
			Decision:          cell("decision"),
			Score:             cell("score"),
			SoundnessScore:    cell("soundness_score"),
			PresentationScore: cell("presentation_score"),
			ContributionScore: cell("contribution_score"),
			Contributions:     cell("contributions"),
			Introduction:      cell("introduction"),
			Conclusion:        cell("conclusion"),
		}
		if p.ID == "" {
			continue
		}
		if year, err := strconv.Atoi(strings.TrimSpace(cell("year"))); err == nil {
			p.Year = year
		}
		if p.FirstAuthor == "" {
			p.FirstAuthor = FirstAuthor(p.Authors)
		}
		all = append(all, p)
	}

	return all, nil
}

// WriteCSV serializes a paper table.
func WriteCSV(w io.Writer, all []Paper) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(paperColumns); err != nil {
		return fmt.Errorf("writing papers header: %w", err)
	}

	for _, p := range all {
		row := []string{
			strconv.Itoa(p.Year), p.ID, p.Title, p.Abstract, p.Authors,
			p.FirstAuthor, p.Decision, p.Score, p.SoundnessScore,
			p.PresentationScore, p.ContributionScore, p.Contributions,
			p.Introduction, p.Conclusion,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("writing paper row %s: %w", p.ID, err)
		}
	}

	writer.Flush()
	return writer.Error()
}
