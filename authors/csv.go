package authors

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ListSeparator joins multi-value cells in the persisted table.
const ListSeparator = "; "

// countryPlaceholders are stored education_countries values that mean "no
// data" despite being non-empty: stringified NaN/None from earlier runs,
// or a serialized object that leaked into the column.
func isCountryPlaceholder(raw string) bool {
	return raw == "" || raw == "nan" || raw == "None" || strings.HasPrefix(raw, "{")
}

// outputColumns is the persisted column order.
var outputColumns = []string{
	"author_name",
	"profile_name",
	"profile_id",
	"email_primary",
	"all_emails",
	"current_position",
	"current_institution",
	"current_country",
	"education_background",
	"total_positions",
	"email_primary_domains",
	"all_emails_domains",
	"filtered_email_domains",
	"institutions_from_education",
	"education_countries",
	"english_speaker",
}

// ReadCSV parses an author profile table. Unknown columns are ignored and
// missing optional columns leave their fields zero; rows shorter than the
// header are skipped. The english_speaker and education_countries columns,
// when present, are cleaned on the way in: invalid labels coerce to
// Unknown and placeholder country values to absent.
func ReadCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing author profiles CSV: %w", err)
	}
	if len(rows) == 0 {
		return NewTable(nil), nil
	}

	cols := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := cols["author_name"]; !ok {
		return nil, fmt.Errorf("author profiles CSV: missing author_name column")
	}

	table := NewTable(nil)
	for _, row := range rows[1:] {
		cell := func(name string) string {
			i, ok := cols[name]
			if !ok || i >= len(row) {
				return ""
			}
			return row[i]
		}

		name := strings.TrimSpace(cell("author_name"))
		if name == "" {
			continue
		}

		a := &Author{
			Name:                name,
			ProfileName:         cell("profile_name"),
			ProfileID:           cell("profile_id"),
			EmailPrimary:        cell("email_primary"),
			AllEmails:           cell("all_emails"),
			CurrentPosition:     cell("current_position"),
			CurrentInstitution:  cell("current_institution"),
			CurrentCountry:      cell("current_country"),
			EducationBackground: cell("education_background"),
			Speaker:             ParseLabel(cell("english_speaker")),
		}
		if n, err := strconv.Atoi(strings.TrimSpace(cell("total_positions"))); err == nil {
			a.TotalPositions = n
		}

		if countries := strings.TrimSpace(cell("education_countries")); !isCountryPlaceholder(countries) {
			a.EducationCountries = splitList(countries)
		}

		table.Add(a)
	}

	return table, nil
}

// WriteCSV serializes the table with the full output column set. An absent
// country set writes an empty cell.
func WriteCSV(w io.Writer, t *Table) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(outputColumns); err != nil {
		return fmt.Errorf("writing author profiles header: %w", err)
	}

	for _, a := range t.Authors {
		row := []string{
			a.Name,
			a.ProfileName,
			a.ProfileID,
			a.EmailPrimary,
			a.AllEmails,
			a.CurrentPosition,
			a.CurrentInstitution,
			a.CurrentCountry,
			a.EducationBackground,
			strconv.Itoa(a.TotalPositions),
			strings.Join(a.EmailPrimaryDomains, ListSeparator),
			strings.Join(a.AllEmailsDomains, ListSeparator),
			strings.Join(a.FilteredEmailDomains, ListSeparator),
			strings.Join(a.InstitutionsFromEducation, ListSeparator),
			strings.Join(a.EducationCountries, ListSeparator),
			a.Speaker.String(),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("writing author row %s: %w", a.Name, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func splitList(raw string) []string {
	var values []string
	for _, part := range strings.Split(raw, ";") {
		if part = strings.TrimSpace(part); part != "" {
			values = append(values, part)
		}
	}
	return values
}
