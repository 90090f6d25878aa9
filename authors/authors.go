// Package authors holds the author profile table: one record per distinct
// first author, the derived matching-signal columns, and the tri-state
// English-speaker label. Records are created by the profile fetch stage and
// mutated in place by the classification stage.
package authors

// Author is one row of the author profile table.
type Author struct {
	Name                string
	ProfileName         string
	ProfileID           string
	EmailPrimary        string
	AllEmails           string
	CurrentPosition     string
	CurrentInstitution  string
	CurrentCountry      string
	EducationBackground string
	TotalPositions      int

	// Derived signal columns, recomputed on every classification run.
	EmailPrimaryDomains       []string
	AllEmailsDomains          []string
	FilteredEmailDomains      []string
	InstitutionsFromEducation []string

	// EducationCountries is the resolved country set, sorted on output.
	// nil means absent, which is distinct from an empty value downstream.
	EducationCountries []string

	Speaker Label
}

// Table is an ordered collection of authors with name lookup.
type Table struct {
	Authors []*Author

	byName map[string]*Author
}

// NewTable builds a table from a slice of authors. Later duplicates of a
// name shadow earlier ones in lookups but all rows are kept.
func NewTable(records []*Author) *Table {
	t := &Table{
		Authors: records,
		byName:  make(map[string]*Author, len(records)),
	}
	for _, a := range records {
		t.byName[a.Name] = a
	}
	return t
}

// Add appends an author to the table.
func (t *Table) Add(a *Author) {
	t.Authors = append(t.Authors, a)
	t.byName[a.Name] = a
}

// Get returns the author with the given name.
func (t *Table) Get(name string) (*Author, bool) {
	a, ok := t.byName[name]
	return a, ok
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Authors)
}
