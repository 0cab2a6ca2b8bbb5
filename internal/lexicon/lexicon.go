// Package lexicon loads and holds the word sets driving classification:
// stopwords plus the positive/negative sentiment dictionaries.
package lexicon

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	positiveFile = "positive-words.txt"
	negativeFile = "negative-words.txt"
)

// Set is a case-insensitive membership set of words.
type Set map[string]struct{}

// Contains reports whether word belongs to the set, ignoring case.
func (s Set) Contains(word string) bool {
	_, ok := s[strings.ToLower(word)]
	return ok
}

func (s Set) add(word string) {
	word = strings.ToLower(strings.TrimSpace(word))
	if word != "" {
		s[word] = struct{}{}
	}
}

// Lexicon groups the three read-only word sets for one run. It is built once
// at startup and shared by reference across documents.
type Lexicon struct {
	Stopwords Set
	Positive  Set
	Negative  Set
}

// New builds a Lexicon from raw word lists. Sentiment words that also appear
// in the stopword set are dropped, so a stopword can never score.
func New(stopwords, positive, negative []string) *Lexicon {
	lex := &Lexicon{
		Stopwords: make(Set, len(stopwords)),
		Positive:  make(Set, len(positive)),
		Negative:  make(Set, len(negative)),
	}
	for _, w := range stopwords {
		lex.Stopwords.add(w)
	}
	for _, w := range positive {
		if !lex.Stopwords.Contains(w) {
			lex.Positive.add(w)
		}
	}
	for _, w := range negative {
		if !lex.Stopwords.Contains(w) {
			lex.Negative.add(w)
		}
	}
	return lex
}

// Load reads every .txt file under stopwordsDir and the positive/negative
// dictionaries under dictionaryDir. Any unreadable source is fatal: the run
// cannot proceed without lexicons.
func Load(stopwordsDir, dictionaryDir string) (*Lexicon, error) {
	entries, err := os.ReadDir(stopwordsDir)
	if err != nil {
		return nil, fmt.Errorf("read stopwords dir %s: %w", stopwordsDir, err)
	}

	var stopwords []string
	loaded := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}
		words, err := readWordFile(filepath.Join(stopwordsDir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("stopword file %s: %w", entry.Name(), err)
		}
		stopwords = append(stopwords, words...)
		loaded++
	}
	if loaded == 0 {
		return nil, fmt.Errorf("no stopword files found in %s", stopwordsDir)
	}

	positive, err := readWordFile(filepath.Join(dictionaryDir, positiveFile))
	if err != nil {
		return nil, fmt.Errorf("positive dictionary: %w", err)
	}
	negative, err := readWordFile(filepath.Join(dictionaryDir, negativeFile))
	if err != nil {
		return nil, fmt.Errorf("negative dictionary: %w", err)
	}

	return New(stopwords, positive, negative), nil
}

// readWordFile parses a one-word-per-line list. Comment lines start with ';'
// and entries may carry a trailing "| source" annotation, both are ignored.
func readWordFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	var words []string
	scan := bufio.NewScanner(file)
	for scan.Scan() {
		line := strings.TrimSpace(scan.Text())
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}
		if idx := strings.IndexByte(line, '|'); idx >= 0 {
			line = strings.TrimSpace(line[:idx])
		}
		if line != "" {
			words = append(words, line)
		}
	}
	if err := scan.Err(); err != nil {
		return nil, fmt.Errorf("scan %s: %w", path, err)
	}

	return words, nil
}
