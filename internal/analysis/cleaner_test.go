package analysis

import (
	"reflect"
	"testing"

	"ArticleMetrics/internal/lexicon"
)

func TestCleanDropsStopwordsAndPunctuation(t *testing.T) {
	t.Parallel()

	lex := lexicon.New([]string{"the", "is", "and"}, nil, nil)

	got := Clean("The fox is quick, bold AND 42 years old!", lex.Stopwords)
	want := []string{"fox", "quick", "bold", "years", "old"}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected cleaned stream: %v", got)
	}
}

func TestCleanKeepsInternalApostrophes(t *testing.T) {
	t.Parallel()

	lex := lexicon.New(nil, nil, nil)

	got := Clean("Don't panic, it's o'clock somewhere.", lex.Stopwords)
	want := []string{"don't", "panic", "it's", "o'clock", "somewhere"}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected cleaned stream: %v", got)
	}
}

func TestCleanIsCaseInsensitiveOnStopwords(t *testing.T) {
	t.Parallel()

	lex := lexicon.New([]string{"the"}, nil, nil)

	got := Clean("THE The the end", lex.Stopwords)
	want := []string{"end"}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("stopword matching should ignore case, got %v", got)
	}
}

func TestCleanEmptyInput(t *testing.T) {
	t.Parallel()

	lex := lexicon.New([]string{"the"}, nil, nil)

	if got := Clean("", lex.Stopwords); len(got) != 0 {
		t.Fatalf("expected empty stream, got %v", got)
	}
	if got := Clean("  \n\t ", lex.Stopwords); len(got) != 0 {
		t.Fatalf("expected empty stream for whitespace, got %v", got)
	}
}
