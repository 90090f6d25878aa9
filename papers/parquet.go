package papers

import (
	"fmt"

	"github.com/parquet-go/parquet-go"
)

// parquetPaper mirrors the column set of the scraped parquet paper files
// (iclr24.parquet, iclr25.parquet). All columns are optional because the
// files come from several scraper revisions with drifting schemas.
type parquetPaper struct {
	Year              int64  `parquet:"year,optional"`
	ID                string `parquet:"id,optional"`
	Title             string `parquet:"title,optional"`
	Abstract          string `parquet:"abstract,optional"`
	Authors           string `parquet:"authors,optional"`
	FirstAuthor       string `parquet:"first_author,optional"`
	Decision          string `parquet:"decision,optional"`
	Score             string `parquet:"score,optional"`
	SoundnessScore    string `parquet:"soundness_score,optional"`
	PresentationScore string `parquet:"presentation_score,optional"`
	ContributionScore string `parquet:"contribution_score,optional"`
	Contributions     string `parquet:"contributions,optional"`
	Introduction      string `parquet:"introduction,optional"`
	Conclusion        string `parquet:"conclusion,optional"`
}

func readParquet(path string) ([]Paper, error) {
	rows, err := parquet.ReadFile[parquetPaper](path)
	if err != nil {
		return nil, fmt.Errorf("reading parquet paper file %s: %w", path, err)
	}

	all := make([]Paper, 0, len(rows))
	for _, row := range rows {
		p := Paper{
			Year:              int(row.Year),
			ID:                row.ID,
			Title:             row.Title,
			Abstract:          row.Abstract,
			Authors:           row.Authors,
			FirstAuthor:       row.FirstAuthor,
			Decision:          row.Decision,
			Score:             row.Score,
			SoundnessScore:    row.SoundnessScore,
			PresentationScore: row.PresentationScore,
			ContributionScore: row.ContributionScore,
			Contributions:     row.Contributions,
			Introduction:      row.Introduction,
			Conclusion:        row.Conclusion,
		}
		if p.ID == "" {
			continue
		}
		if p.FirstAuthor == "" {
			p.FirstAuthor = FirstAuthor(p.Authors)
		}
		all = append(all, p)
	}

	return all, nil
}
