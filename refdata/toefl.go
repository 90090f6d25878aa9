package refdata

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// ExemptRequirement is the requirement string that marks a country whose
// nationals are not required to prove English proficiency.
const ExemptRequirement = "Exempt"

// loadTOEFL reads the country-to-TOEFL-requirement table. Rows with an
// empty country name are skipped; everything else is indexed by lowercased
// country name.
func (s *Set) loadTOEFL(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("reading TOEFL requirements file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return fmt.Errorf("parsing TOEFL requirements file %s: %w", path, err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("TOEFL requirements file %s is empty", path)
	}

	countryCol, requirementCol := -1, -1
	for i, col := range rows[0] {
		switch strings.ToLower(strings.TrimSpace(col)) {
		case "country":
			countryCol = i
		case "toefl requirement":
			requirementCol = i
		}
	}
	if countryCol < 0 || requirementCol < 0 {
		return fmt.Errorf("TOEFL requirements file %s: missing Country or TOEFL requirement column", path)
	}

	for _, row := range rows[1:] {
		if countryCol >= len(row) {
			continue
		}
		country := strings.TrimSpace(row[countryCol])
		if country == "" {
			continue
		}
		requirement := ""
		if requirementCol < len(row) {
			requirement = strings.TrimSpace(row[requirementCol])
		}
		s.TOEFL[strings.ToLower(country)] = requirement
	}

	return nil
}

// Exempt reports whether the given country code resolves, via its display
// name, to a TOEFL requirement of exactly "Exempt". A code with no display
// name, or a name with no table entry, is not exempt.
func (s *Set) Exempt(code string) bool {
	name, ok := s.CountryName[code]
	if !ok || name == "" {
		return false
	}
	return s.TOEFL[strings.ToLower(name)] == ExemptRequirement
}
