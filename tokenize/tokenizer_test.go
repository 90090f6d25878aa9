package tokenize

import (
	"strings"
	"testing"
)

func TestAbstractDropsShortText(t *testing.T) {
	for _, text := range []string{"", "Too short.", "   padded but still short   "} {
		if got := Abstract(text); got != nil {
			t.Errorf("Abstract(%q) = %v, want nil", text, got)
		}
	}
}

func TestAbstractLengthCountsRunes(t *testing.T) {
	// 30 characters but 60 bytes; still below the 50-character minimum.
	text := strings.Repeat("é", 30)
	if got := Abstract(text); got != nil {
		t.Errorf("Abstract(%q) = %v, want nil", text, got)
	}
}

func TestAbstractSegmentsAndTokenizes(t *testing.T) {
	text := "We propose a new method for training deep neural networks efficiently. " +
		"Experiments on three standard benchmarks show consistent improvements over strong baselines."

	sentences := Abstract(text)
	if len(sentences) != 2 {
		t.Fatalf("sentence count = %d, want 2", len(sentences))
	}
	for i, tokens := range sentences {
		if len(tokens) <= minSentenceTokens {
			t.Errorf("sentence %d has %d tokens, want > %d", i, len(tokens), minSentenceTokens)
		}
		for _, tok := range tokens {
			if strings.TrimSpace(tok) == "" {
				t.Errorf("sentence %d contains whitespace token %q", i, tok)
			}
		}
	}
	if sentences[0][0] != "We" {
		t.Errorf("first token = %q, want We", sentences[0][0])
	}
}

func TestAbstractDropsShortSentences(t *testing.T) {
	// The heading fragment tokenizes to fewer than the minimum and must
	// not survive, while the full sentence does.
	text := "1 Introduction. " +
		"This paper studies how architectural choices influence the generalization of modern language models in practice."

	sentences := Abstract(text)
	for _, tokens := range sentences {
		if len(tokens) <= minSentenceTokens {
			t.Errorf("kept short sentence %v", tokens)
		}
	}
	if len(sentences) != 1 {
		t.Errorf("sentence count = %d, want 1 (fragment dropped)", len(sentences))
	}
}
