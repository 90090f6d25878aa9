package extract

import (
	"reflect"
	"testing"
)

func TestEmailDomains(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"whitespace", "   ", nil},
		{"single", "alice@mit.edu", []string{"mit.edu"}},
		{"semicolon joined", "a@mit.edu; a@cs.mit.edu", []string{"mit.edu", "cs.mit.edu"}},
		{"comma joined", "a@mit.edu, b@tum.de", []string{"mit.edu", "tum.de"}},
		{"dedupe keeps first-seen order", "a@tum.de; b@mit.edu; c@tum.de", []string{"tum.de", "mit.edu"}},
		{"no at sign", "not an email", nil},
		{"tld too short", "a@host.x", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := EmailDomains(tc.in); !reflect.DeepEqual(got, tc.want) {
				t.Errorf("EmailDomains(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestFilterDomains(t *testing.T) {
	cases := []struct {
		name string
		in   []string
		want []string
	}{
		{"nil", nil, nil},
		{"drops generic providers", []string{"gmail.com", "mit.edu", "qq.com"}, []string{"mit.edu"}},
		{"case insensitive", []string{"Gmail.COM", "MIT.edu"}, []string{"mit.edu"}},
		{"preserves order", []string{"tum.de", "yahoo.com", "ox.ac.uk"}, []string{"tum.de", "ox.ac.uk"}},
		{"all generic", []string{"gmail.com", "163.com"}, nil},
		{"blank entries skipped", []string{"", "  ", "mit.edu"}, []string{"mit.edu"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FilterDomains(tc.in); !reflect.DeepEqual(got, tc.want) {
				t.Errorf("FilterDomains(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestInstitutions(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"not json", "went to MIT", nil},
		{"json object not array", `{"institution": "MIT"}`, nil},
		{"valid", `[{"institution": "MIT", "position": "PhD", "year": "2020"}]`, []string{"MIT"}},
		{
			"multiple entries",
			`[{"institution": "Tsinghua University"}, {"institution": "MIT"}]`,
			[]string{"Tsinghua University", "MIT"},
		},
		{"missing institution keys skipped", `[{"position": "PhD"}, {"institution": "MIT"}]`, []string{"MIT"}},
		{"empty institution skipped", `[{"institution": ""}]`, nil},
		{"truncated json", `[{"institution": "MIT"`, nil},
		{"empty array", `[]`, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Institutions(tc.in); !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Institutions(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}
