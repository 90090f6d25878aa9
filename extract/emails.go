// Package extract derives per-author matching signals from raw profile
// fields: email domains from the email columns and institution names from
// the education-history JSON. Malformed input always degrades to an empty
// result, never an error.
package extract

import (
	"regexp"
	"strings"
)

// emailDomainRegex captures the domain of an email address embedded
// anywhere in a string, so semicolon- or comma-joined lists parse without
// splitting first.
var emailDomainRegex = regexp.MustCompile(`@([a-zA-Z0-9.-]+\.[a-zA-Z]{2,})`)

// genericMailProviders are consumer email domains that carry no
// institutional signal.
var genericMailProviders = map[string]struct{}{
	"gmail.com":      {},
	"yahoo.com":      {},
	"hotmail.com":    {},
	"outlook.com":    {},
	"icloud.com":     {},
	"aol.com":        {},
	"live.com":       {},
	"msn.com":        {},
	"protonmail.com": {},
	"yandex.com":     {},
	"mail.ru":        {},
	"qq.com":         {},
	"163.com":        {},
	"sina.com":       {},
	"sohu.com":       {},
}

// EmailDomains extracts the domain of every email address in raw,
// deduplicated in first-seen order. Empty input yields nil.
func EmailDomains(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	matches := emailDomainRegex.FindAllStringSubmatch(raw, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(matches))
	var domains []string
	for _, m := range matches {
		domain := m[1]
		if _, ok := seen[domain]; ok {
			continue
		}
		seen[domain] = struct{}{}
		domains = append(domains, domain)
	}
	return domains
}

// FilterDomains drops generic consumer providers and lowercases the
// survivors, preserving order.
func FilterDomains(domains []string) []string {
	var filtered []string
	for _, domain := range domains {
		domain = strings.TrimSpace(domain)
		if domain == "" {
			continue
		}
		lowered := strings.ToLower(domain)
		if _, generic := genericMailProviders[lowered]; generic {
			continue
		}
		filtered = append(filtered, lowered)
	}
	return filtered
}
