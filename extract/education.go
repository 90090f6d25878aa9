package extract

import (
	"strings"

	"github.com/tidwall/gjson"
)

// Institutions pulls institution names out of the education-background
// field, a JSON-encoded array of {institution, position, year} objects.
// The field is scraped and frequently garbage; anything that is not a JSON
// array of objects yields nil rather than an error. Entries with an empty
// institution name are skipped.
func Institutions(educationBackground string) []string {
	raw := strings.TrimSpace(educationBackground)
	if raw == "" || !gjson.Valid(raw) {
		return nil
	}

	parsed := gjson.Parse(raw)
	if !parsed.IsArray() {
		return nil
	}

	var institutions []string
	for _, entry := range parsed.Array() {
		if institution := entry.Get("institution").String(); institution != "" {
			institutions = append(institutions, institution)
		}
	}
	return institutions
}
