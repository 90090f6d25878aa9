// Package resolve matches extracted institution names and email domains
// against the reference datasets to produce a set of country codes.
package resolve

import (
	"strings"
	"unicode/utf8"

	"github.com/Will-Wei7/iclr-analysis/refdata"
)

// Fuzzy-match thresholds. Empirically chosen; downstream statistics depend
// on their exact effect, so they are not tunable.
const (
	minFuzzyQueryLen = 3
	minContainedLen  = 4
)

// Countries resolves institutions and filtered email domains to a set of
// country codes.
//
// Each institution is normalized, then looked up exactly; on a miss, the
// institution index is scanned in insertion order and the first key where
// one string contains the other (with the contained side at least
// minContainedLen runes) wins. Each domain is looked up exactly in the
// domain table, falling back to TLD inference. Domains get no fuzzy
// matching.
func Countries(set *refdata.Set, institutions, domains []string) map[string]struct{} {
	codes := make(map[string]struct{})

	for _, institution := range institutions {
		normalized := refdata.NormalizeInstitution(institution)
		if normalized == "" {
			continue
		}

		if code, ok := set.Institutions.Get(normalized); ok {
			codes[code] = struct{}{}
			continue
		}

		// Threshold lengths count runes, not bytes, so multibyte names
		// do not slip past them.
		queryLen := utf8.RuneCountInString(normalized)
		if queryLen < minFuzzyQueryLen {
			continue
		}

		set.Institutions.Range(func(name, code string) bool {
			nameLen := utf8.RuneCountInString(name)
			if nameLen < minFuzzyQueryLen {
				return true
			}
			if (strings.Contains(name, normalized) && queryLen >= minContainedLen) ||
				(strings.Contains(normalized, name) && nameLen >= minContainedLen) {
				codes[code] = struct{}{}
				return false
			}
			return true
		})
	}

	for _, domain := range domains {
		if code, ok := set.DomainCountry[domain]; ok {
			codes[code] = struct{}{}
			continue
		}
		if code, ok := refdata.TLDCountry(domain); ok {
			codes[code] = struct{}{}
		}
	}

	return codes
}
