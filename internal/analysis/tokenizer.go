package analysis

import (
	"regexp"
	"strings"
)

// sentenceExpr marks a sentence boundary: a run of terminators followed by
// whitespace or end of input. Consecutive terminators count once, and a
// period inside "3.14" is not a boundary.
var sentenceExpr = regexp.MustCompile(`[.!?]+(?:\s+|$)`)

// Tokenize returns the sentence count and the raw word count of text. The
// raw word count is taken before stopword removal so downstream averages
// reflect all words. Sentence count is floored at 1 for non-empty text to
// keep later divisions defined; whitespace-only text yields (0, 0).
func Tokenize(text string) (sentenceCount, rawWordCount int) {
	rawWordCount = len(wordExpr.FindAllString(text, -1))

	if strings.TrimSpace(text) == "" {
		return 0, rawWordCount
	}

	for _, segment := range sentenceExpr.Split(text, -1) {
		if strings.TrimSpace(segment) != "" {
			sentenceCount++
		}
	}
	if sentenceCount == 0 {
		sentenceCount = 1
	}
	return sentenceCount, rawWordCount
}
