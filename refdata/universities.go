// Package refdata loads the static reference datasets used for country
// resolution: the worldwide university directory, the TOEFL requirement
// table, and the TLD-to-country table. All lookup structures are built once
// at load time and are read-only afterward.
package refdata

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// University is one record of the world universities directory.
type University struct {
	Name         string   `json:"name"`
	AlphaTwoCode string   `json:"alpha_two_code"`
	Country      string   `json:"country"`
	Domains      []string `json:"domains"`
}

// Set holds the lookup structures derived from the reference datasets.
type Set struct {
	// DomainCountry maps a lowercased internet domain to a country code.
	DomainCountry map[string]string

	// Institutions maps normalized institution names to country codes,
	// preserving insertion order so fuzzy scans are reproducible.
	Institutions *InstitutionIndex

	// CountryName maps a country code to its display name. The first name
	// seen for a code wins.
	CountryName map[string]string

	// TOEFL maps a lowercased country display name to its TOEFL
	// requirement string. The value "Exempt" marks native-English countries.
	TOEFL map[string]string
}

// NewSet returns an empty Set ready for population.
func NewSet() *Set {
	return &Set{
		DomainCountry: make(map[string]string),
		Institutions:  NewInstitutionIndex(),
		CountryName:   make(map[string]string),
		TOEFL:         make(map[string]string),
	}
}

// AddUniversity indexes one directory record into the lookup structures.
func (s *Set) AddUniversity(u University) {
	for _, domain := range u.Domains {
		s.DomainCountry[strings.ToLower(domain)] = u.AlphaTwoCode
	}

	if u.Name != "" {
		if normalized := NormalizeInstitution(u.Name); normalized != "" {
			s.Institutions.Put(normalized, u.AlphaTwoCode)
		}
	}

	if u.AlphaTwoCode != "" && u.Country != "" {
		if _, ok := s.CountryName[u.AlphaTwoCode]; !ok {
			s.CountryName[u.AlphaTwoCode] = u.Country
		}
	}
}

// Load reads the university directory and the TOEFL requirement table.
// Both files are required inputs; any read or parse failure is fatal to
// the caller.
func Load(universitiesPath, toeflPath string) (*Set, error) {
	set := NewSet()

	data, err := os.ReadFile(universitiesPath)
	if err != nil {
		return nil, fmt.Errorf("reading universities file: %w", err)
	}

	var universities []University
	if err := json.Unmarshal(data, &universities); err != nil {
		return nil, fmt.Errorf("parsing universities file %s: %w", universitiesPath, err)
	}

	for _, u := range universities {
		set.AddUniversity(u)
	}

	if err := set.loadTOEFL(toeflPath); err != nil {
		return nil, err
	}

	slog.Info("loaded reference data",
		"universities", len(universities),
		"domains", len(set.DomainCountry),
		"institutions", set.Institutions.Len(),
		"toeflCountries", len(set.TOEFL))

	return set, nil
}

// InstitutionIndex is an insertion-ordered mapping from normalized
// institution name to country code. Fuzzy matching is first-match-wins, so
// the scan order must not depend on map iteration order.
type InstitutionIndex struct {
	keys  []string
	codes map[string]string
}

// NewInstitutionIndex returns an empty index.
func NewInstitutionIndex() *InstitutionIndex {
	return &InstitutionIndex{codes: make(map[string]string)}
}

// Put records a name-to-code mapping. A repeated name keeps its original
// position but takes the new code (last-write-wins).
func (ix *InstitutionIndex) Put(name, code string) {
	if _, ok := ix.codes[name]; !ok {
		ix.keys = append(ix.keys, name)
	}
	ix.codes[name] = code
}

// Get returns the country code for an exact normalized name.
func (ix *InstitutionIndex) Get(name string) (string, bool) {
	code, ok := ix.codes[name]
	return code, ok
}

// Len returns the number of distinct normalized names.
func (ix *InstitutionIndex) Len() int {
	return len(ix.keys)
}

// Range calls fn for each entry in insertion order until fn returns false.
func (ix *InstitutionIndex) Range(fn func(name, code string) bool) {
	for _, key := range ix.keys {
		if !fn(key, ix.codes[key]) {
			return
		}
	}
}
