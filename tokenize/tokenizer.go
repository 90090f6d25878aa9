// Package tokenize segments paper abstracts into sentences of tokens for
// downstream text analysis, and writes the grouped results as parquet.
package tokenize

import (
	"strings"
	"unicode/utf8"

	"github.com/jdkato/prose/v2"
)

const (
	// minAbstractLen filters out placeholder or truncated abstracts.
	minAbstractLen = 50

	// minSentenceTokens drops fragments that segmentation produces from
	// headings and formulas.
	minSentenceTokens = 5
)

// Abstract tokenizes an abstract into sentences, each a list of tokens
// with whitespace tokens removed. Abstracts shorter than minAbstractLen
// and sentences with minSentenceTokens or fewer tokens are dropped.
// Anything the segmenter cannot handle yields nil.
func Abstract(text string) [][]string {
	text = strings.TrimSpace(text)
	if utf8.RuneCountInString(text) < minAbstractLen {
		return nil
	}

	doc, err := prose.NewDocument(text,
		prose.WithTagging(false),
		prose.WithExtraction(false))
	if err != nil {
		return nil
	}

	var sentences [][]string
	for _, sent := range doc.Sentences() {
		tokens := tokenizeSentence(sent.Text)
		if len(tokens) > minSentenceTokens {
			sentences = append(sentences, tokens)
		}
	}
	return sentences
}

func tokenizeSentence(text string) []string {
	doc, err := prose.NewDocument(text,
		prose.WithSegmentation(false),
		prose.WithTagging(false),
		prose.WithExtraction(false))
	if err != nil {
		return nil
	}

	var tokens []string
	for _, tok := range doc.Tokens() {
		if strings.TrimSpace(tok.Text) == "" {
			continue
		}
		tokens = append(tokens, tok.Text)
	}
	return tokens
}
