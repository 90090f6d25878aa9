package refdata

import (
	"regexp"
	"strings"
	"unicode"
)

// institutionStopWords are removed from institution names before matching.
// Removal is substring-based, not word-boundary-based; that quirk affects
// matching outcomes for some names and is kept deliberately, since the
// reference dataset was indexed the same way.
var institutionStopWords = []string{
	"university", "college", "institute", "school", "of", "the", "and",
	"technology", "science", "engineering", "medical", "state", "national",
	"international", "private", "public", "community",
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// NormalizeInstitution lowercases a name, strips the stop words, removes
// punctuation, and collapses whitespace, producing the key used for both
// indexing and matching.
func NormalizeInstitution(name string) string {
	normalized := strings.ToLower(name)

	for _, word := range institutionStopWords {
		normalized = strings.ReplaceAll(normalized, word, "")
	}

	normalized = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, normalized)

	normalized = whitespaceRun.ReplaceAllString(normalized, " ")
	return strings.TrimSpace(normalized)
}
