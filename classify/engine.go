// Package classify assigns the tri-state English-speaker label to author
// records. It derives matching signals, resolves countries, applies the
// TOEFL exemption rule, and enforces the label/country consistency
// invariant across reruns: a valid label must always be backed by country
// data, and no country data always means Unknown.
package classify

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/Will-Wei7/iclr-analysis/authors"
	"github.com/Will-Wei7/iclr-analysis/extract"
	"github.com/Will-Wei7/iclr-analysis/refdata"
	"github.com/Will-Wei7/iclr-analysis/resolve"
)

// Engine classifies authors against a loaded reference data set.
type Engine struct {
	ref *refdata.Set
}

// NewEngine returns an engine over the given reference data.
func NewEngine(ref *refdata.Set) *Engine {
	return &Engine{ref: ref}
}

// Preserved returns the names of authors whose stored label is already a
// definite classification. These authors keep their label across the run
// as long as their country data is intact.
//
// The set is computed once up front and passed through the per-record
// procedure, so no record's outcome depends on another's.
func (e *Engine) Preserved(t *authors.Table) map[string]bool {
	preserved := make(map[string]bool)
	for _, a := range t.Authors {
		if a.Speaker.Valid() {
			preserved[a.Name] = true
		}
	}
	if len(preserved) > 0 {
		slog.Info("found authors with existing valid labels", "count", len(preserved))
	}
	return preserved
}

// Process runs one classification pass over the table, then repairs any
// remaining label/country inconsistencies. Records are independent; the
// pass is order-insensitive.
func (e *Engine) Process(t *authors.Table) {
	for _, a := range t.Authors {
		a.EmailPrimaryDomains = extract.EmailDomains(a.EmailPrimary)
		a.AllEmailsDomains = extract.EmailDomains(a.AllEmails)
		a.FilteredEmailDomains = extract.FilterDomains(a.AllEmailsDomains)
		a.InstitutionsFromEducation = extract.Institutions(a.EducationBackground)
	}

	preserved := e.Preserved(t)

	for i, a := range t.Authors {
		if (i+1)%1000 == 0 {
			slog.Info("classifying authors", "processed", i+1, "total", t.Len())
		}
		e.classify(a, preserved[a.Name])
	}

	e.Repair(t)
}

// classify applies the per-author decision procedure.
func (e *Engine) classify(a *authors.Author, hasPreservedLabel bool) {
	if hasPreservedLabel {
		// Keep the stored label only while its backing country data is
		// intact; otherwise reset both fields so the invariant holds on
		// legacy rows too.
		if len(a.EducationCountries) == 0 {
			a.Speaker = authors.Unknown
			a.EducationCountries = nil
		}
		return
	}

	codes := resolve.Countries(e.ref, a.InstitutionsFromEducation, a.FilteredEmailDomains)

	// When resolution found nothing at all, fall back to raw TLD
	// countries from the remaining domains.
	if len(codes) == 0 {
		for _, domain := range a.FilteredEmailDomains {
			if code, ok := refdata.TLDCountry(domain); ok {
				codes[code] = struct{}{}
			}
		}
	}

	resolvedAny := len(codes) > 0

	currentCountry, hasCurrentCountry := cleanCurrentCountry(a.CurrentCountry)
	if hasCurrentCountry {
		if _, ok := codes[currentCountry]; !ok {
			codes[currentCountry] = struct{}{}
		}
	}

	if !resolvedAny && !hasCurrentCountry {
		a.EducationCountries = nil
		a.Speaker = authors.Unknown
		return
	}

	a.EducationCountries = sortedCodes(codes)
	a.Speaker = e.label(codes)
}

// label applies the TOEFL exemption rule: default non-English, upgraded as
// soon as any resolved country is exempt.
func (e *Engine) label(codes map[string]struct{}) authors.Label {
	if len(codes) == 0 {
		return authors.Unknown
	}
	for code := range codes {
		if e.ref.Exempt(code) {
			return authors.EnglishSpeaking
		}
	}
	return authors.NonEnglishSpeaking
}

// Repair enforces the consistency invariant over the whole table: a row
// without country data must carry the Unknown label, however the mismatch
// arose.
func (e *Engine) Repair(t *authors.Table) {
	fixed := 0
	for _, a := range t.Authors {
		if len(a.EducationCountries) == 0 && a.Speaker != authors.Unknown {
			a.Speaker = authors.Unknown
			a.EducationCountries = nil
			fixed++
		}
	}
	if fixed > 0 {
		slog.Info("repaired rows with labels but no country data", "count", fixed)
	}
}

// cleanCurrentCountry trims the self-reported country and treats
// stringified missing values as absent.
func cleanCurrentCountry(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", false
	}
	switch strings.ToLower(trimmed) {
	case "nan", "none":
		return "", false
	}
	return trimmed, true
}

func sortedCodes(codes map[string]struct{}) []string {
	if len(codes) == 0 {
		return nil
	}
	sorted := make([]string, 0, len(codes))
	for code := range codes {
		sorted = append(sorted, code)
	}
	sort.Strings(sorted)
	return sorted
}
