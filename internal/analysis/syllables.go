package analysis

import "strings"

const vowels = "aeiouy"

// Syllables estimates the syllable count of a word by counting maximal vowel
// runs, discounting the silent "es"/"ed" suffixes. Every word counts as at
// least one syllable. This is a heuristic, not a dictionary lookup, and is
// applied identically to every word.
func Syllables(word string) int {
	word = strings.ToLower(word)

	count := 0
	prevVowel := false
	for _, r := range word {
		isVowel := strings.ContainsRune(vowels, r)
		if isVowel && !prevVowel {
			count++
		}
		prevVowel = isVowel
	}

	if strings.HasSuffix(word, "es") || strings.HasSuffix(word, "ed") {
		count--
	}

	if count < 1 {
		return 1
	}
	return count
}
