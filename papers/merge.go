package papers

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/Will-Wei7/iclr-analysis/authors"
)

// LabeledPaper is a submission joined with its first author's label.
type LabeledPaper struct {
	Paper
	Speaker authors.Label
}

// Merge joins papers to the labeled author table by first author name.
// Unmatched authors default to Unknown.
func Merge(all []Paper, table *authors.Table) []LabeledPaper {
	merged := make([]LabeledPaper, 0, len(all))
	for _, p := range all {
		name := p.FirstAuthor
		if name == "" {
			name = FirstAuthor(p.Authors)
		}

		speaker := authors.Unknown
		if a, ok := table.Get(name); ok {
			speaker = a.Speaker
		}

		merged = append(merged, LabeledPaper{Paper: p, Speaker: speaker})
	}
	return merged
}

// WriteMergedCSV serializes labeled papers with the english_speaker column
// appended.
func WriteMergedCSV(w io.Writer, merged []LabeledPaper) error {
	writer := csv.NewWriter(w)

	header := append(append([]string{}, paperColumns...), "english_speaker")
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("writing merged papers header: %w", err)
	}

	for _, p := range merged {
		row := []string{
			strconv.Itoa(p.Year), p.ID, p.Title, p.Abstract, p.Authors,
			p.FirstAuthor, p.Decision, p.Score, p.SoundnessScore,
			p.PresentationScore, p.ContributionScore, p.Contributions,
			p.Introduction, p.Conclusion, p.Speaker.String(),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("writing merged paper row %s: %w", p.ID, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// ReadMergedCSV parses a merged table back, recovering the label column.
func ReadMergedCSV(r io.Reader) ([]LabeledPaper, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing merged papers CSV: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	cols := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		cols[name] = i
	}

	var merged []LabeledPaper
	for _, row := range rows[1:] {
		cell := func(name string) string {
			i, ok := cols[name]
			if !ok || i >= len(row) {
				return ""
			}
			return row[i]
		}

		p := LabeledPaper{
			Paper: Paper{
				ID:          cell("id"),
				Title:       cell("title"),
				Abstract:    cell("abstract"),
				Authors:     cell("authors"),
				FirstAuthor: cell("first_author"),
				Decision:    cell("decision"),
			},
			Speaker: authors.ParseLabel(cell("english_speaker")),
		}
		if p.ID == "" {
			continue
		}
		if year, err := strconv.Atoi(cell("year")); err == nil {
			p.Year = year
		}
		merged = append(merged, p)
	}

	return merged, nil
}
