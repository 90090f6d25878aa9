package papers

import "strings"

// FirstAuthor extracts the first name from a comma-joined author string.
// This is the join key between papers and author profiles.
func FirstAuthor(authorsStr string) string {
	authorsStr = strings.TrimSpace(authorsStr)
	if authorsStr == "" {
		return ""
	}
	first, _, _ := strings.Cut(authorsStr, ",")
	return strings.TrimSpace(first)
}

// UniqueFirstAuthors collects distinct first authors across paper sets,
// keeping the first occurrence order. Papers without a first author are
// skipped.
func UniqueFirstAuthors(yearSets ...[]Paper) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, set := range yearSets {
		for _, p := range set {
			name := p.FirstAuthor
			if name == "" {
				name = FirstAuthor(p.Authors)
			}
			if name == "" {
				continue
			}
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	return names
}
