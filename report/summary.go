// Package report computes the run summary printed after classification.
// The summary is informational only; it is not part of any file contract.
package report

import (
	"fmt"
	"io"

	"github.com/Will-Wei7/iclr-analysis/authors"
)

// Summary aggregates label counts over a labeled author table.
type Summary struct {
	Total         int
	WithCountries int
	English       int
	NonEnglish    int
	Unknown       int
}

// Compute tallies the table.
func Compute(t *authors.Table) Summary {
	s := Summary{Total: t.Len()}
	for _, a := range t.Authors {
		if len(a.EducationCountries) > 0 {
			s.WithCountries++
		}
		switch a.Speaker {
		case authors.EnglishSpeaking:
			s.English++
		case authors.NonEnglishSpeaking:
			s.NonEnglish++
		default:
			s.Unknown++
		}
	}
	return s
}

// Print writes the human-readable breakdown.
func (s Summary) Print(w io.Writer) {
	fmt.Fprintf(w, "Total authors: %d\n", s.Total)
	fmt.Fprintf(w, "  With country data:       %6d (%s)\n", s.WithCountries, s.percent(s.WithCountries))
	fmt.Fprintf(w, "  English speakers (1):    %6d (%s)\n", s.English, s.percent(s.English))
	fmt.Fprintf(w, "  Non-English speakers (0):%6d (%s)\n", s.NonEnglish, s.percent(s.NonEnglish))
	fmt.Fprintf(w, "  Unknown (-1):            %6d (%s)\n", s.Unknown, s.percent(s.Unknown))
}

func (s Summary) percent(n int) string {
	if s.Total == 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", float64(n)/float64(s.Total)*100)
}
