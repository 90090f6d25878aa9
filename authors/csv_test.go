package authors

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
)

func TestParseLabel(t *testing.T) {
	cases := []struct {
		raw  string
		want Label
	}{
		{"1", EnglishSpeaking},
		{"0", NonEnglishSpeaking},
		{"-1", Unknown},
		{"1.0", EnglishSpeaking},
		{"0.0", NonEnglishSpeaking},
		{"-1.0", Unknown},
		{" 1 ", EnglishSpeaking},
		{"", Unknown},
		{"nan", Unknown},
		{"NaN", Unknown},
		{"2", Unknown},
		{"-3", Unknown},
		{"yes", Unknown},
	}
	for _, tc := range cases {
		if got := ParseLabel(tc.raw); got != tc.want {
			t.Errorf("ParseLabel(%q) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}

func TestLabelString(t *testing.T) {
	cases := []struct {
		label Label
		want  string
	}{
		{EnglishSpeaking, "1"},
		{NonEnglishSpeaking, "0"},
		{Unknown, "-1"},
	}
	for _, tc := range cases {
		if got := tc.label.String(); got != tc.want {
			t.Errorf("%d.String() = %q, want %q", tc.label, got, tc.want)
		}
	}
}

func TestReadCSVCleansStoredValues(t *testing.T) {
	input := strings.Join([]string{
		"author_name,education_countries,english_speaker",
		"Clean Author,CN; US,1",
		"Nan Countries,nan,0",
		"None Countries,None,1",
		"Object Countries,\"{'CN'}\",0",
		"Bad Label,US,maybe",
		",US,1",
	}, "\n")

	table, err := ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if table.Len() != 5 {
		t.Fatalf("Len() = %d, want 5 (empty-name row skipped)", table.Len())
	}

	clean, _ := table.Get("Clean Author")
	if want := []string{"CN", "US"}; !reflect.DeepEqual(clean.EducationCountries, want) {
		t.Errorf("clean countries = %v, want %v", clean.EducationCountries, want)
	}
	if clean.Speaker != EnglishSpeaking {
		t.Errorf("clean label = %v, want EnglishSpeaking", clean.Speaker)
	}

	for _, name := range []string{"Nan Countries", "None Countries", "Object Countries"} {
		a, ok := table.Get(name)
		if !ok {
			t.Fatalf("missing row %q", name)
		}
		if a.EducationCountries != nil {
			t.Errorf("%s countries = %v, want absent", name, a.EducationCountries)
		}
	}

	bad, _ := table.Get("Bad Label")
	if bad.Speaker != Unknown {
		t.Errorf("non-numeric label = %v, want Unknown", bad.Speaker)
	}
}

func TestReadCSVRequiresAuthorName(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("name,email\nA,a@b.co\n"))
	if err == nil {
		t.Fatal("expected error for CSV without author_name column")
	}
}

func TestReadCSVShortRowsAndUnknownColumns(t *testing.T) {
	input := strings.Join([]string{
		"author_name,mystery_column,total_positions",
		"Short Row",
		"Full Row,ignored,3",
	}, "\n")

	table, err := ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if table.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", table.Len())
	}
	full, _ := table.Get("Full Row")
	if full.TotalPositions != 3 {
		t.Errorf("TotalPositions = %d, want 3", full.TotalPositions)
	}
	short, _ := table.Get("Short Row")
	if short.TotalPositions != 0 {
		t.Errorf("short row TotalPositions = %d, want 0", short.TotalPositions)
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	original := NewTable([]*Author{
		{
			Name:               "Round Trip",
			ProfileName:        "Trip, Round",
			EmailPrimary:       "rt@mit.edu",
			AllEmails:          "rt@mit.edu; rt@gmail.com",
			CurrentCountry:     "United States",
			TotalPositions:     2,
			EducationCountries: []string{"DE", "US"},
			Speaker:            EnglishSpeaking,
		},
		{
			Name:    "Absent Countries",
			Speaker: Unknown,
		},
	})

	var buf bytes.Buffer
	if err := WriteCSV(&buf, original); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	restored, err := ReadCSV(&buf)
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}

	rt, ok := restored.Get("Round Trip")
	if !ok {
		t.Fatal("missing Round Trip row")
	}
	if rt.Speaker != EnglishSpeaking || rt.TotalPositions != 2 {
		t.Errorf("restored row = %+v", rt)
	}
	if want := []string{"DE", "US"}; !reflect.DeepEqual(rt.EducationCountries, want) {
		t.Errorf("restored countries = %v, want %v", rt.EducationCountries, want)
	}

	absent, _ := restored.Get("Absent Countries")
	if absent.EducationCountries != nil {
		t.Errorf("absent countries round-tripped to %v, want nil", absent.EducationCountries)
	}
	if absent.Speaker != Unknown {
		t.Errorf("absent label = %v, want Unknown", absent.Speaker)
	}
}
