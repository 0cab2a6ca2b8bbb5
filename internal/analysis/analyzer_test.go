package analysis

import (
	"math"
	"testing"

	"ArticleMetrics/internal/domain"
	"ArticleMetrics/internal/lexicon"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-4
}

func TestAnalyzeEndToEnd(t *testing.T) {
	t.Parallel()

	lex := lexicon.New(
		[]string{"the", "it", "is", "and"},
		[]string{"happy"},
		[]string{"bad"},
	)
	doc := domain.Document{
		URLID: "doc-1",
		URL:   "https://example.org/a",
		Text:  "The quick brown fox jumps. It is happy and bad.",
	}

	rec := Analyze(doc, lex)

	if rec.WordCount != 6 {
		t.Fatalf("word count: got %d, want 6", rec.WordCount)
	}
	if rec.PositiveScore != 1 || rec.NegativeScore != 1 {
		t.Fatalf("scores: got +%d/-%d, want 1/1", rec.PositiveScore, rec.NegativeScore)
	}
	if !almostEqual(rec.PolarityScore, 0) {
		t.Fatalf("polarity: got %f, want ~0", rec.PolarityScore)
	}
	if !almostEqual(rec.SubjectivityScore, 2.0/6.000001) {
		t.Fatalf("subjectivity: got %f, want ~0.3333", rec.SubjectivityScore)
	}
	// 10 raw words over 2 sentences.
	if !almostEqual(rec.AvgSentenceLength, 5) {
		t.Fatalf("avg sentence length: got %f, want 5", rec.AvgSentenceLength)
	}
	if rec.AvgWordsPerSentence != rec.AvgSentenceLength {
		t.Fatalf("avg words per sentence must mirror avg sentence length")
	}
	if rec.ComplexWordCount != 0 {
		t.Fatalf("complex words: got %d, want 0", rec.ComplexWordCount)
	}
	if !almostEqual(rec.FogIndex, 0.4*5) {
		t.Fatalf("fog index: got %f, want 2", rec.FogIndex)
	}
	// quick brown fox jumps happy bad -> 1+1+1+1+2+1 syllables.
	if !almostEqual(rec.SyllablesPerWord, 7.0/6.0) {
		t.Fatalf("syllables per word: got %f", rec.SyllablesPerWord)
	}
	// 5+5+3+5+5+3 characters over 6 words.
	if !almostEqual(rec.AvgWordLength, 26.0/6.0) {
		t.Fatalf("avg word length: got %f", rec.AvgWordLength)
	}
	if rec.PersonalPronouns != 0 {
		t.Fatalf("personal pronouns: got %d, want 0", rec.PersonalPronouns)
	}
}

func TestAnalyzeEmptyDocument(t *testing.T) {
	t.Parallel()

	lex := lexicon.New([]string{"the"}, []string{"good"}, []string{"bad"})
	rec := Analyze(domain.Document{URLID: "empty", Text: ""}, lex)

	zero := domain.MetricRecord{URLID: "empty"}
	if rec != zero {
		t.Fatalf("empty document must produce an all-zero record, got %+v", rec)
	}
}

func TestAnalyzeIsIdempotent(t *testing.T) {
	t.Parallel()

	lex := lexicon.New([]string{"a", "of"}, []string{"great"}, []string{"awful"})
	doc := domain.Document{
		URLID: "doc-2",
		Text:  "A great storm of awful proportions! It was unbelievable. We survived.",
	}

	first := Analyze(doc, lex)
	second := Analyze(doc, lex)
	if first != second {
		t.Fatalf("records differ across calls:\n%+v\n%+v", first, second)
	}
}

func TestAnalyzeScoreBounds(t *testing.T) {
	t.Parallel()

	lex := lexicon.New(nil, []string{"good"}, []string{"bad"})
	texts := []string{
		"",
		"good good good",
		"bad bad bad bad",
		"good bad neutral words here",
		"no sentiment at all",
	}

	for _, text := range texts {
		rec := Analyze(domain.Document{Text: text}, lex)
		if rec.PolarityScore < -1 || rec.PolarityScore > 1 {
			t.Fatalf("polarity out of range for %q: %f", text, rec.PolarityScore)
		}
		if rec.SubjectivityScore < 0 || rec.SubjectivityScore > 1 {
			t.Fatalf("subjectivity out of range for %q: %f", text, rec.SubjectivityScore)
		}
		if rec.ComplexWordCount > rec.WordCount {
			t.Fatalf("complex count exceeds word count for %q", text)
		}
	}
}

func TestCountPersonalPronouns(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		text string
		want int
	}{
		// "US" reads as the country; the lowercase "us" still counts.
		{"country exclusion", "I think we should help US and us", 3},
		{"lowercase i is not the pronoun", "i think i know", 0},
		{"case-insensitive others", "My dog and OURS chased Us. WE laughed.", 4},
		// Pronouns inside contractions still sit on word boundaries.
		{"contractions", "I'm sure we're ready and my plan holds", 3},
		{"no pronouns", "the quick brown fox", 0},
		{"empty", "", 0},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := CountPersonalPronouns(tc.text); got != tc.want {
				t.Fatalf("got %d, want %d", got, tc.want)
			}
		})
	}
}
