package openreview

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/Will-Wei7/iclr-analysis/authors"
)

// educationEntry is one position in a profile's history, persisted as JSON
// in the education_background column.
type educationEntry struct {
	Position    string `json:"position"`
	Institution string `json:"institution"`
	Year        string `json:"year,omitempty"`
}

// SearchProfile looks an author up by name, trying the v1 search endpoint
// first and falling back to v2. Authors without a findable profile get an
// empty record with a nil error; a non-nil error means the lookup itself
// failed and the returned empty record should not be treated as definitive.
func (c *Client) SearchProfile(ctx context.Context, authorName string) (*authors.Author, error) {
	first, last := splitName(authorName)

	params := url.Values{"first": {first}}
	if last != "" {
		params.Set("last", last)
	}

	data, err := c.getJSON(ctx, c.V1BaseURL+"/profiles/search", params)
	if err != nil || len(data.Get("profiles").Array()) == 0 {
		data, err = c.getJSON(ctx, c.V2BaseURL+"/profiles/search", url.Values{
			"term": {strings.TrimSpace(first + " " + last)},
		})
	}
	if err != nil {
		return emptyProfile(authorName), fmt.Errorf("profile lookup for %s: %w", authorName, err)
	}

	profiles := data.Get("profiles").Array()
	if len(profiles) == 0 {
		return emptyProfile(authorName), nil
	}

	return profileToAuthor(authorName, profiles[0]), nil
}

func profileToAuthor(authorName string, profile gjson.Result) *authors.Author {
	content := profile.Get("content")

	var emails []string
	for _, e := range content.Get("emailsConfirmed").Array() {
		emails = append(emails, e.String())
	}
	if len(emails) == 0 {
		for _, e := range content.Get("emails").Array() {
			emails = append(emails, e.String())
		}
	}

	a := &authors.Author{
		Name:        authorName,
		ProfileName: preferredName(content, authorName),
		ProfileID:   profile.Get("id").String(),
		AllEmails:   strings.Join(emails, "; "),
		Speaker:     authors.Unknown,
	}
	if len(emails) > 0 {
		a.EmailPrimary = emails[0]
	}

	history := content.Get("history").Array()
	a.TotalPositions = len(history)

	for _, entry := range history {
		end := entry.Get("end")
		if !end.Exists() || end.Type == gjson.Null || end.String() == "Present" {
			a.CurrentPosition = entry.Get("position").String()
			a.CurrentInstitution = entry.Get("institution.name").String()
			a.CurrentCountry = entry.Get("institution.country").String()
			break
		}
	}

	var education []educationEntry
	for _, entry := range history {
		position := entry.Get("position").String()
		if position == "" {
			continue
		}
		year := entry.Get("end").String()
		if year == "" {
			year = entry.Get("start").String()
		}
		education = append(education, educationEntry{
			Position:    position,
			Institution: entry.Get("institution.name").String(),
			Year:        year,
		})
	}
	if len(education) > 0 {
		if encoded, err := json.Marshal(education); err == nil {
			a.EducationBackground = string(encoded)
		}
	}

	return a
}

// preferredName picks the name marked preferred in the profile, falling
// back to the first listed name and then the search name.
func preferredName(content gjson.Result, fallback string) string {
	names := content.Get("names").Array()
	for _, n := range names {
		if n.Get("preferred").Bool() {
			if full := fullName(n); full != "" {
				return full
			}
		}
	}
	if len(names) > 0 {
		if full := fullName(names[0]); full != "" {
			return full
		}
	}
	return fallback
}

func fullName(n gjson.Result) string {
	if full := n.Get("fullname").String(); full != "" {
		return full
	}
	parts := []string{n.Get("first").String(), n.Get("middle").String(), n.Get("last").String()}
	var nonEmpty []string
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, " ")
}

func emptyProfile(authorName string) *authors.Author {
	return &authors.Author{
		Name:        authorName,
		ProfileName: authorName,
		Speaker:     authors.Unknown,
	}
}

func splitName(name string) (first, last string) {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return name, ""
	}
	first = parts[0]
	if len(parts) >= 2 {
		last = parts[len(parts)-1]
	}
	return first, last
}
