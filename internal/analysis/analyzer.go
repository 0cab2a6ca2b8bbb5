package analysis

import (
	"regexp"

	"ArticleMetrics/internal/domain"
	"ArticleMetrics/internal/lexicon"
)

// epsilon keeps ratio denominators away from zero.
const epsilon = 0.000001

// complexSyllables is the threshold above which a word counts as complex.
const complexSyllables = 2

// Analyze computes the thirteen metrics for one document. It is a pure
// function of its inputs: no I/O, no hidden state, and calling it twice on
// the same document and lexicon yields identical records. It never fails;
// empty or degenerate text produces a record of zeros.
func Analyze(doc domain.Document, lex *lexicon.Lexicon) domain.MetricRecord {
	rec := domain.MetricRecord{URLID: doc.URLID, URL: doc.URL}

	cleaned := Clean(doc.Text, lex.Stopwords)
	wordCount := len(cleaned)
	sentenceCount, rawWordCount := Tokenize(doc.Text)

	var positive, negative int
	var complexCount, totalSyllables, totalChars int
	for _, word := range cleaned {
		if lex.Positive.Contains(word) {
			positive++
		}
		if lex.Negative.Contains(word) {
			negative++
		}
		s := Syllables(word)
		totalSyllables += s
		if s > complexSyllables {
			complexCount++
		}
		totalChars += len(word)
	}

	rec.PositiveScore = positive
	// Negative score is the plain non-negative hit count.
	rec.NegativeScore = negative
	rec.PolarityScore = float64(positive-negative) / (float64(positive+negative) + epsilon)
	rec.SubjectivityScore = float64(positive+negative) / (float64(wordCount) + epsilon)

	if sentenceCount > 0 {
		rec.AvgSentenceLength = float64(rawWordCount) / float64(sentenceCount)
	}
	rec.ComplexWordCount = complexCount
	rec.WordCount = wordCount
	if wordCount > 0 {
		rec.PercentageComplexWords = float64(complexCount) / float64(wordCount)
		rec.SyllablesPerWord = float64(totalSyllables) / float64(wordCount)
		rec.AvgWordLength = float64(totalChars) / float64(wordCount)
	}

	// Gunning Fog wants the complex-word share on a 0-100 scale; the record
	// field itself stays a 0-1 fraction.
	rec.FogIndex = 0.4 * (rec.AvgSentenceLength + rec.PercentageComplexWords*100)
	rec.AvgWordsPerSentence = rec.AvgSentenceLength

	rec.PersonalPronouns = CountPersonalPronouns(doc.Text)

	return rec
}

var (
	pronounExpr     = regexp.MustCompile(`(?i)\b(?:we|my|ours|us)\b`)
	firstPersonExpr = regexp.MustCompile(`\bI\b`)
	usCountryExpr   = regexp.MustCompile(`\bUS\b`)
)

// CountPersonalPronouns counts word-boundary occurrences of I, we, my, ours
// and us in the raw text, so the pronouns inside contractions ("I'm",
// "we're") count too. "I" must be uppercase; the others match any casing,
// except the standalone token "US" which is read as the country name.
func CountPersonalPronouns(text string) int {
	count := len(pronounExpr.FindAllString(text, -1))
	count += len(firstPersonExpr.FindAllString(text, -1))
	count -= len(usCountryExpr.FindAllString(text, -1))
	if count < 0 {
		return 0
	}
	return count
}
