package refdata

import (
	"path/filepath"
	"testing"
)

func loadTestSet(t *testing.T) *Set {
	t.Helper()
	set, err := Load(
		filepath.Join("testdata", "universities.json"),
		filepath.Join("testdata", "toefl.csv"),
	)
	if err != nil {
		t.Fatalf("loading reference data: %v", err)
	}
	return set
}

func TestLoadMissingFilesFail(t *testing.T) {
	if _, err := Load("testdata/nope.json", "testdata/toefl.csv"); err == nil {
		t.Error("expected error for missing universities file")
	}
	if _, err := Load("testdata/universities.json", "testdata/nope.csv"); err == nil {
		t.Error("expected error for missing TOEFL file")
	}
}

func TestDomainIndexIsLowercased(t *testing.T) {
	set := loadTestSet(t)

	if code := set.DomainCountry["mails.tsinghua.edu.cn"]; code != "CN" {
		t.Errorf("mails.tsinghua.edu.cn = %q, want CN", code)
	}
	if _, ok := set.DomainCountry["MAILS.TSINGHUA.EDU.CN"]; ok {
		t.Error("uppercase domain key should not exist after indexing")
	}
}

func TestInstitutionIndexNormalizesKeys(t *testing.T) {
	set := loadTestSet(t)

	cases := []struct {
		key  string
		want string
	}{
		{"massachusetts", "US"},
		{"tsinghua", "CN"},
		{"oxford", "GB"},
		{"technical munich", "DE"},
	}
	for _, tc := range cases {
		code, ok := set.Institutions.Get(tc.key)
		if !ok {
			t.Errorf("institution key %q not indexed", tc.key)
			continue
		}
		if code != tc.want {
			t.Errorf("institution %q = %q, want %q", tc.key, code, tc.want)
		}
	}
}

func TestInstitutionCollisionLastWriteWins(t *testing.T) {
	set := loadTestSet(t)

	// Both Trinity College records normalize to the same key; the later
	// record takes it.
	code, ok := set.Institutions.Get("trinity")
	if !ok {
		t.Fatal("trinity not indexed")
	}
	if code != "IE" {
		t.Errorf("trinity = %q, want IE (last record wins)", code)
	}
}

func TestCountryNameFirstWins(t *testing.T) {
	set := loadTestSet(t)

	if name := set.CountryName["US"]; name != "United States" {
		t.Errorf("US display name = %q, want first-seen %q", name, "United States")
	}
}

func TestInstitutionIndexInsertionOrder(t *testing.T) {
	ix := NewInstitutionIndex()
	ix.Put("beta", "B")
	ix.Put("alpha", "A")
	ix.Put("beta", "B2") // re-put keeps position, takes new code

	var keys []string
	ix.Range(func(name, code string) bool {
		keys = append(keys, name)
		return true
	})

	if len(keys) != 2 || keys[0] != "beta" || keys[1] != "alpha" {
		t.Errorf("iteration order = %v, want [beta alpha]", keys)
	}
	if code, _ := ix.Get("beta"); code != "B2" {
		t.Errorf("beta = %q, want B2", code)
	}
}

func TestExempt(t *testing.T) {
	set := loadTestSet(t)

	cases := []struct {
		code string
		want bool
	}{
		{"US", true},
		{"GB", true},
		{"IE", true},
		{"CN", false}, // Required
		{"DE", false}, // Required
		{"JP", false}, // no display name mapping
		{"ZZ", false}, // unknown code
	}
	for _, tc := range cases {
		if got := set.Exempt(tc.code); got != tc.want {
			t.Errorf("Exempt(%q) = %v, want %v", tc.code, got, tc.want)
		}
	}
}

func TestNormalizeInstitution(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Massachusetts Institute of Technology", "massachusetts"},
		{"Tsinghua University", "tsinghua"},
		{"University of Oxford", "oxford"},
		{"École Polytechnique", "école polytechnique"},
		{"St. John's College", "st johns"},
		{"University", ""},
		{"", ""},
		// Stop-word removal is substring-based, not word-boundary-based:
		// "state" eats the middle of "Upstate".
		{"Upstate Medical", "up"},
	}
	for _, tc := range cases {
		if got := NormalizeInstitution(tc.in); got != tc.want {
			t.Errorf("NormalizeInstitution(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTLDCountry(t *testing.T) {
	cases := []struct {
		domain string
		want   string
		ok     bool
	}{
		{"student.tsinghua.edu.cn", "CN", true},
		{"ox.ac.uk", "GB", true},
		{"example.de", "DE", true},
		{"example.com", "", false},
		{"localhost", "", false},
	}
	for _, tc := range cases {
		got, ok := TLDCountry(tc.domain)
		if got != tc.want || ok != tc.ok {
			t.Errorf("TLDCountry(%q) = (%q, %v), want (%q, %v)", tc.domain, got, ok, tc.want, tc.ok)
		}
	}
}
