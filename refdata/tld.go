package refdata

import "strings"

// tldCountry maps a country-code top-level domain to its ISO alpha-2
// country code. Used as a fallback when an email domain has no entry in
// the university directory.
var tldCountry = map[string]string{
	".cn": "CN", ".in": "IN", ".uk": "GB", ".ca": "CA", ".au": "AU",
	".de": "DE", ".fr": "FR", ".jp": "JP", ".kr": "KR", ".sg": "SG",
	".hk": "HK", ".tw": "TW", ".my": "MY", ".th": "TH", ".ph": "PH",
	".id": "ID", ".vn": "VN", ".bd": "BD", ".pk": "PK", ".lk": "LK",
	".np": "NP", ".mm": "MM", ".kh": "KH", ".la": "LA", ".bn": "BN",
	".mx": "MX", ".br": "BR", ".ar": "AR", ".cl": "CL", ".co": "CO",
	".pe": "PE", ".ve": "VE", ".ec": "EC", ".uy": "UY", ".py": "PY",
	".bo": "BO", ".za": "ZA", ".ng": "NG", ".ke": "KE", ".eg": "EG",
	".ma": "MA", ".tn": "TN", ".dz": "DZ", ".ru": "RU", ".ua": "UA",
	".by": "BY", ".kz": "KZ", ".uz": "UZ", ".kg": "KG", ".tj": "TJ",
	".tm": "TM", ".af": "AF", ".ir": "IR", ".iq": "IQ", ".sy": "SY",
	".lb": "LB", ".jo": "JO", ".il": "IL", ".ps": "PS", ".sa": "SA",
	".ae": "AE", ".qa": "QA", ".kw": "KW", ".bh": "BH", ".om": "OM",
	".ye": "YE", ".tr": "TR", ".cy": "CY", ".gr": "GR", ".bg": "BG",
	".ro": "RO", ".md": "MD", ".hu": "HU", ".sk": "SK", ".cz": "CZ",
	".pl": "PL", ".lt": "LT", ".lv": "LV", ".ee": "EE", ".fi": "FI",
	".se": "SE", ".no": "NO", ".dk": "DK", ".is": "IS", ".ie": "IE",
	".pt": "PT", ".es": "ES", ".it": "IT", ".ch": "CH", ".at": "AT",
	".be": "BE", ".nl": "NL", ".lu": "LU", ".nz": "NZ",
}

// TLDCountry infers a country code from the final dot-suffix of a domain.
// Domains without at least two labels never match.
func TLDCountry(domain string) (string, bool) {
	parts := strings.Split(domain, ".")
	if len(parts) < 2 {
		return "", false
	}
	code, ok := tldCountry["."+parts[len(parts)-1]]
	return code, ok
}
