package classify

import (
	"reflect"
	"testing"

	"github.com/Will-Wei7/iclr-analysis/authors"
	"github.com/Will-Wei7/iclr-analysis/refdata"
)

func testRef(t *testing.T) *refdata.Set {
	t.Helper()
	set := refdata.NewSet()
	for _, u := range []refdata.University{
		{Name: "Massachusetts Institute of Technology", AlphaTwoCode: "US", Country: "United States", Domains: []string{"mit.edu"}},
		{Name: "Tsinghua University", AlphaTwoCode: "CN", Country: "China", Domains: []string{"tsinghua.edu.cn"}},
		{Name: "Technical University of Munich", AlphaTwoCode: "DE", Country: "Germany", Domains: []string{"tum.de"}},
	} {
		set.AddUniversity(u)
	}
	set.TOEFL["united states"] = "Exempt"
	set.TOEFL["china"] = "Required"
	set.TOEFL["germany"] = "Required"
	return set
}

func process(t *testing.T, records ...*authors.Author) *authors.Table {
	t.Helper()
	table := authors.NewTable(records)
	NewEngine(testRef(t)).Process(table)
	return table
}

func TestEmptySignalsYieldUnknown(t *testing.T) {
	table := process(t, &authors.Author{Name: "Nobody Author"})

	a := table.Authors[0]
	if a.Speaker != authors.Unknown {
		t.Errorf("label = %v, want Unknown", a.Speaker)
	}
	if a.EducationCountries != nil {
		t.Errorf("countries = %v, want absent", a.EducationCountries)
	}
}

func TestTOEFLUpgradeRule(t *testing.T) {
	// CN is not exempt, US is; any exempt country upgrades the label.
	table := process(t, &authors.Author{
		Name:      "Mixed Author",
		AllEmails: "a@tsinghua.edu.cn; a@mit.edu",
	})

	a := table.Authors[0]
	if a.Speaker != authors.EnglishSpeaking {
		t.Errorf("label = %v, want EnglishSpeaking", a.Speaker)
	}
	if want := []string{"CN", "US"}; !reflect.DeepEqual(a.EducationCountries, want) {
		t.Errorf("countries = %v, want %v", a.EducationCountries, want)
	}
}

func TestNonExemptCountriesLabelNonEnglish(t *testing.T) {
	table := process(t, &authors.Author{
		Name:                "Tsinghua Author",
		EducationBackground: `[{"institution": "Tsinghua University", "position": "PhD"}]`,
	})

	a := table.Authors[0]
	if a.Speaker != authors.NonEnglishSpeaking {
		t.Errorf("label = %v, want NonEnglishSpeaking", a.Speaker)
	}
	if want := []string{"CN"}; !reflect.DeepEqual(a.EducationCountries, want) {
		t.Errorf("countries = %v, want %v", a.EducationCountries, want)
	}
}

func TestGenericProviderNeverContributes(t *testing.T) {
	// gmail.com is filtered before resolution, so not even its .com TLD
	// (which has no country anyway) nor any directory entry can match.
	table := process(t, &authors.Author{
		Name:      "Gmail Author",
		AllEmails: "someone@gmail.com",
	})

	a := table.Authors[0]
	if a.Speaker != authors.Unknown {
		t.Errorf("label = %v, want Unknown", a.Speaker)
	}
	if a.EducationCountries != nil {
		t.Errorf("countries = %v, want absent", a.EducationCountries)
	}
}

func TestSelfReportIsAdditive(t *testing.T) {
	table := process(t, &authors.Author{
		Name:           "Munich Author",
		AllEmails:      "a@tum.de",
		CurrentCountry: "France",
	})

	a := table.Authors[0]
	if want := []string{"DE", "France"}; !reflect.DeepEqual(a.EducationCountries, want) {
		t.Errorf("countries = %v, want %v", a.EducationCountries, want)
	}
	// France has no TOEFL entry under that exact name, DE is Required.
	if a.Speaker != authors.NonEnglishSpeaking {
		t.Errorf("label = %v, want NonEnglishSpeaking", a.Speaker)
	}
}

func TestSelfReportAloneIsFallback(t *testing.T) {
	table := process(t, &authors.Author{
		Name:           "Unaffiliated Author",
		CurrentCountry: "  Brazil  ",
	})

	a := table.Authors[0]
	if want := []string{"Brazil"}; !reflect.DeepEqual(a.EducationCountries, want) {
		t.Errorf("countries = %v, want %v", a.EducationCountries, want)
	}
	if a.Speaker != authors.NonEnglishSpeaking {
		t.Errorf("label = %v, want NonEnglishSpeaking", a.Speaker)
	}
}

func TestStringifiedMissingSelfReportIgnored(t *testing.T) {
	for _, junk := range []string{"nan", "None", "NONE", "  "} {
		table := process(t, &authors.Author{
			Name:           "Junk Country Author",
			CurrentCountry: junk,
		})

		a := table.Authors[0]
		if a.Speaker != authors.Unknown || a.EducationCountries != nil {
			t.Errorf("current_country %q: label = %v countries = %v, want Unknown/absent",
				junk, a.Speaker, a.EducationCountries)
		}
	}
}

func TestPreservedLabelKeptWithIntactCountries(t *testing.T) {
	table := process(t, &authors.Author{
		Name:               "Labeled Author",
		Speaker:            authors.EnglishSpeaking,
		EducationCountries: []string{"US"},
		// Signals that would resolve differently are ignored for
		// preserved authors.
		AllEmails: "a@tsinghua.edu.cn",
	})

	a := table.Authors[0]
	if a.Speaker != authors.EnglishSpeaking {
		t.Errorf("label = %v, want preserved EnglishSpeaking", a.Speaker)
	}
	if want := []string{"US"}; !reflect.DeepEqual(a.EducationCountries, want) {
		t.Errorf("countries = %v, want preserved %v", a.EducationCountries, want)
	}
}

func TestSelfHealingResetsLabelWithoutCountries(t *testing.T) {
	table := process(t, &authors.Author{
		Name:    "Corrupted Author",
		Speaker: authors.EnglishSpeaking,
		// Valid label but no backing country data: forced back to
		// Unknown, countries cleared.
		EducationCountries: nil,
	})

	a := table.Authors[0]
	if a.Speaker != authors.Unknown {
		t.Errorf("label = %v, want Unknown after self-healing", a.Speaker)
	}
	if a.EducationCountries != nil {
		t.Errorf("countries = %v, want absent", a.EducationCountries)
	}
}

func TestRepairEnforcesInvariant(t *testing.T) {
	table := authors.NewTable([]*authors.Author{
		{Name: "Inconsistent", Speaker: authors.NonEnglishSpeaking},
		{Name: "Fine", Speaker: authors.EnglishSpeaking, EducationCountries: []string{"US"}},
	})

	NewEngine(testRef(t)).Repair(table)

	if table.Authors[0].Speaker != authors.Unknown {
		t.Errorf("inconsistent row label = %v, want Unknown", table.Authors[0].Speaker)
	}
	if table.Authors[1].Speaker != authors.EnglishSpeaking {
		t.Errorf("consistent row label = %v, want untouched", table.Authors[1].Speaker)
	}
}

func TestProcessIsIdempotent(t *testing.T) {
	fresh := []*authors.Author{
		{Name: "A", AllEmails: "a@mit.edu"},
		{Name: "B", EducationBackground: `[{"institution": "Tsinghua University"}]`},
		{Name: "C"},
		{Name: "D", CurrentCountry: "France"},
	}
	table := authors.NewTable(fresh)
	engine := NewEngine(testRef(t))
	engine.Process(table)

	snapshot := make([]struct {
		label     authors.Label
		countries []string
	}, len(fresh))
	for i, a := range table.Authors {
		snapshot[i].label = a.Speaker
		snapshot[i].countries = append([]string(nil), a.EducationCountries...)
	}

	engine.Process(table)

	for i, a := range table.Authors {
		if a.Speaker != snapshot[i].label {
			t.Errorf("author %s label changed on second pass: %v -> %v", a.Name, snapshot[i].label, a.Speaker)
		}
		if !reflect.DeepEqual(a.EducationCountries, snapshot[i].countries) &&
			!(len(a.EducationCountries) == 0 && len(snapshot[i].countries) == 0) {
			t.Errorf("author %s countries changed on second pass: %v -> %v",
				a.Name, snapshot[i].countries, a.EducationCountries)
		}
	}

	// Invariant: Unknown iff no country data, over every row.
	for _, a := range table.Authors {
		hasCountries := len(a.EducationCountries) > 0
		if (a.Speaker == authors.Unknown) == hasCountries {
			t.Errorf("author %s violates label/country invariant: label=%v countries=%v",
				a.Name, a.Speaker, a.EducationCountries)
		}
	}
}

func TestTLDSafetyNet(t *testing.T) {
	// Domain absent from the directory resolves through the TLD both in
	// the resolver and in the engine's safety net; either way CN is found.
	table := process(t, &authors.Author{
		Name:      "TLD Author",
		AllEmails: "a@student.unlisted.edu.cn",
	})

	a := table.Authors[0]
	if want := []string{"CN"}; !reflect.DeepEqual(a.EducationCountries, want) {
		t.Errorf("countries = %v, want %v", a.EducationCountries, want)
	}
	if a.Speaker != authors.NonEnglishSpeaking {
		t.Errorf("label = %v, want NonEnglishSpeaking", a.Speaker)
	}
}
