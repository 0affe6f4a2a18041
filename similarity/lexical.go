package similarity

import (
	"math"
	"regexp"
	"strings"
)

var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}]+`)

// words returns the set of lowercase letter and digit runs in text.
func words(text string) map[string]struct{} {
	tokens := tokenPattern.FindAllString(strings.ToLower(text), -1)
	set := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		set[token] = struct{}{}
	}
	return set
}

// Lexical returns the Jaccard index of the word sets of a and b as a
// percentage. Two texts without words are identical (100); a text without
// words shares nothing with one that has words (0).
func Lexical(a, b string) int {
	wordsA, wordsB := words(a), words(b)
	if len(wordsA) == 0 && len(wordsB) == 0 {
		return 100
	}
	if len(wordsA) == 0 || len(wordsB) == 0 {
		return 0
	}

	shared := 0
	for word := range wordsA {
		if _, ok := wordsB[word]; ok {
			shared++
		}
	}
	union := len(wordsA) + len(wordsB) - shared
	return int(math.Round(float64(shared) / float64(union) * 100))
}
