// Package analysis implements the deterministic text-analysis pipeline:
// cleaning, tokenization, syllable counting and the metric calculation.
package analysis

import (
	"regexp"
	"strings"

	"ArticleMetrics/internal/lexicon"
)

// wordExpr matches one word token: alphabetic runs, allowing internal
// apostrophes ("don't", "o'clock"). Digits and punctuation act as separators.
var wordExpr = regexp.MustCompile(`[A-Za-z]+(?:'[A-Za-z]+)*`)

// Clean lowercases the word tokens of text and drops stopwords. Punctuation
// and digit-only tokens never survive tokenization. Empty input yields an
// empty stream, not an error.
func Clean(text string, stopwords lexicon.Set) []string {
	raw := wordExpr.FindAllString(text, -1)
	cleaned := make([]string, 0, len(raw))
	for _, tok := range raw {
		tok = strings.ToLower(tok)
		if stopwords.Contains(tok) {
			continue
		}
		cleaned = append(cleaned, tok)
	}
	return cleaned
}
