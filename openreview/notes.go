package openreview

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/Will-Wei7/iclr-analysis/papers"
)

const (
	pageSize    = 1000
	maxV2Offset = 50000
)

// yearConfig pins the per-year API shape: invitation names changed across
// ICLR iterations and the whole API changed for 2024.
type yearConfig struct {
	apiV2        bool
	invitation   string // v1
	decisionName string // v1: substring identifying decision replies
	venueID      string // v2
}

var yearConfigs = map[int]yearConfig{
	2018: {invitation: "ICLR.cc/2018/Conference/-/Blind_Submission", decisionName: "Acceptance_Decision"},
	2019: {invitation: "ICLR.cc/2019/Conference/-/Blind_Submission", decisionName: "Decision"},
	2020: {invitation: "ICLR.cc/2020/Conference/-/Blind_Submission", decisionName: "Decision"},
	2021: {invitation: "ICLR.cc/2021/Conference/-/Blind_Submission", decisionName: "Decision"},
	2022: {invitation: "ICLR.cc/2022/Conference/-/Blind_Submission", decisionName: "Decision"},
	2023: {invitation: "ICLR.cc/2023/Conference/-/Blind_Submission", decisionName: "Decision"},
	2024: {apiV2: true, venueID: "ICLR.cc/2024/Conference"},
	2025: {apiV2: true, venueID: "ICLR.cc/2025/Conference"},
}

// Notes fetches all submissions for a conference year.
func (c *Client) Notes(ctx context.Context, year int) ([]papers.Paper, error) {
	cfg, ok := yearConfigs[year]
	if !ok {
		return nil, fmt.Errorf("no API configuration for year %d", year)
	}
	if cfg.apiV2 {
		return c.notesV2(ctx, year, cfg)
	}
	return c.notesV1(ctx, year, cfg)
}

// notesV1 paginates the v1 notes endpoint with direct replies attached,
// pulling decisions and mean review scores out of each note's replies.
func (c *Client) notesV1(ctx context.Context, year int, cfg yearConfig) ([]papers.Paper, error) {
	var all []papers.Paper

	for offset := 0; ; offset += pageSize {
		params := url.Values{
			"invitation": {cfg.invitation},
			"details":    {"directReplies"},
			"limit":      {strconv.Itoa(pageSize)},
			"offset":     {strconv.Itoa(offset)},
		}

		data, err := c.getJSON(ctx, c.V1BaseURL+"/notes", params)
		if err != nil {
			return nil, err
		}

		batch := data.Get("notes").Array()
		if len(batch) == 0 {
			break
		}

		for _, note := range batch {
			all = append(all, noteV1ToPaper(year, note, cfg.decisionName))
		}

		if len(batch) < pageSize {
			break
		}
	}

	return all, nil
}

func noteV1ToPaper(year int, note gjson.Result, decisionName string) papers.Paper {
	content := note.Get("content")

	var authorNames []string
	for _, a := range content.Get("authors").Array() {
		authorNames = append(authorNames, a.String())
	}

	contributions := content.Get("main_contributions").String()
	if contributions == "" {
		contributions = content.Get("abstract").String()
	}

	p := papers.Paper{
		Year:              year,
		ID:                note.Get("id").String(),
		Title:             content.Get("title").String(),
		Abstract:          content.Get("abstract").String(),
		Authors:           strings.Join(authorNames, ", "),
		Decision:          "Reject/Unknown",
		Score:             "N/A",
		SoundnessScore:    "N/A",
		PresentationScore: "N/A",
		ContributionScore: "N/A",
		Contributions:     contributions,
		Introduction:      "PDF Parsing Required",
		Conclusion:        "PDF Parsing Required",
	}
	if len(authorNames) > 0 {
		p.FirstAuthor = authorNames[0]
	}

	replies := note.Get("details.directReplies").Array()

	for _, reply := range replies {
		if strings.Contains(reply.Get("invitation").String(), decisionName) {
			decision := reply.Get("content.decision").String()
			if decision == "" {
				decision = reply.Get("content.title").String()
			}
			if decision == "" {
				decision = "Unknown"
			}
			p.Decision = decision
			break
		}
	}

	var ratings, soundness, presentation, contribution []int
	for _, reply := range replies {
		invitation := reply.Get("invitation").String()
		if !strings.Contains(invitation, "Review") {
			continue
		}
		content := reply.Get("content")
		if v, ok := leadingInt(content.Get("rating")); ok {
			ratings = append(ratings, v)
		}
		if v, ok := leadingInt(content.Get("soundness")); ok {
			soundness = append(soundness, v)
		}
		if v, ok := leadingInt(content.Get("presentation")); ok {
			presentation = append(presentation, v)
		}
		if v, ok := leadingInt(content.Get("contribution")); ok {
			contribution = append(contribution, v)
		}
	}

	if s, ok := meanScore(ratings); ok {
		p.Score = s
	}
	if s, ok := meanScore(soundness); ok {
		p.SoundnessScore = s
	}
	if s, ok := meanScore(presentation); ok {
		p.PresentationScore = s
	}
	if s, ok := meanScore(contribution); ok {
		p.ContributionScore = s
	}

	return p
}

// notesV2 queries the v2 notes endpoint by venue id. Withdrawn, rejected,
// and desk-rejected submissions live under separate venue suffixes, which
// also determine the decision. Content values arrive wrapped in
// {"value": ...} envelopes.
func (c *Client) notesV2(ctx context.Context, year int, cfg yearConfig) ([]papers.Paper, error) {
	buckets := []struct {
		suffix   string
		decision string
	}{
		{"", "Pending/Unknown"},
		{"/Withdrawn_Submission", "Withdrawn"},
		{"/Rejected_Submission", "Reject"},
		{"/Desk_Rejected_Submission", "Desk Reject"},
	}

	var all []papers.Paper
	seen := make(map[string]struct{})

	for _, bucket := range buckets {
		for offset := 0; offset < maxV2Offset; offset += pageSize {
			params := url.Values{
				"content.venueid": {cfg.venueID + bucket.suffix},
				"offset":          {strconv.Itoa(offset)},
				"limit":           {strconv.Itoa(pageSize)},
				"details":         {"basic"},
			}

			data, err := c.getJSON(ctx, c.V2BaseURL+"/notes", params)
			if err != nil {
				return nil, err
			}

			batch := data.Get("notes").Array()
			if len(batch) == 0 {
				break
			}

			for _, note := range batch {
				id := note.Get("id").String()
				if _, ok := seen[id]; ok {
					continue
				}
				seen[id] = struct{}{}
				all = append(all, noteV2ToPaper(year, note, bucket.decision))
			}

			if len(batch) < pageSize {
				break
			}
		}
	}

	return all, nil
}

func noteV2ToPaper(year int, note gjson.Result, decision string) papers.Paper {
	content := note.Get("content")

	var authorNames []string
	for _, a := range content.Get("authors.value").Array() {
		authorNames = append(authorNames, a.String())
	}

	p := papers.Paper{
		Year:              year,
		ID:                note.Get("id").String(),
		Title:             content.Get("title.value").String(),
		Abstract:          content.Get("abstract.value").String(),
		Authors:           strings.Join(authorNames, ", "),
		Decision:          decision,
		Score:             "N/A",
		SoundnessScore:    "N/A",
		PresentationScore: "N/A",
		ContributionScore: "N/A",
		Contributions:     content.Get("keywords.value").Raw,
		Introduction:      "PDF Parsing Required",
		Conclusion:        "PDF Parsing Required",
	}
	if len(authorNames) > 0 {
		p.FirstAuthor = authorNames[0]
	}

	return p
}

// leadingInt parses review score fields of the shape "8: accept, good
// paper" down to their leading integer.
func leadingInt(v gjson.Result) (int, bool) {
	if !v.Exists() {
		return 0, false
	}
	s, _, _ := strings.Cut(v.String(), ":")
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return n, true
}

func meanScore(values []int) (string, bool) {
	if len(values) == 0 {
		return "", false
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return strconv.FormatFloat(float64(sum)/float64(len(values)), 'f', 2, 64), true
}
