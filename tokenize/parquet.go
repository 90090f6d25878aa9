package tokenize

import (
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/Will-Wei7/iclr-analysis/papers"
)

// SentenceRow is one tokenized sentence in the output schema expected by
// the downstream analysis (sentence, paper_id, first_author).
type SentenceRow struct {
	Sentence    []string `parquet:"sentence,list"`
	PaperID     string   `parquet:"paper_id"`
	FirstAuthor string   `parquet:"first_author"`
}

// Rows tokenizes each paper's abstract and flattens the result into
// sentence rows tagged with the paper id and first author.
func Rows(all []papers.LabeledPaper) []SentenceRow {
	var rows []SentenceRow
	for _, p := range all {
		for _, sentence := range Abstract(p.Abstract) {
			rows = append(rows, SentenceRow{
				Sentence:    sentence,
				PaperID:     p.ID,
				FirstAuthor: p.FirstAuthor,
			})
		}
	}
	return rows
}

// WriteParquet writes sentence rows to a parquet file.
func WriteParquet(path string, rows []SentenceRow) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating tokenized output %s: %w", path, err)
	}

	writer := parquet.NewGenericWriter[SentenceRow](f)
	if _, err := writer.Write(rows); err != nil {
		f.Close()
		return fmt.Errorf("writing tokenized rows to %s: %w", path, err)
	}
	if err := writer.Close(); err != nil {
		f.Close()
		return fmt.Errorf("closing parquet writer for %s: %w", path, err)
	}
	return f.Close()
}
