package stats

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// Segmenter splits text into words and sentences.
type Segmenter interface {
	// Words returns the number of word-like units in text.
	Words(text string) int

	// Sentences returns the number of sentence units in text.
	Sentences(text string) int
}

// UnicodeSegmenter counts using the UAX #29 word and sentence boundary rules.
type UnicodeSegmenter struct{}

var _ Segmenter = UnicodeSegmenter{}

// Words counts word segments that contain at least one letter or number,
// so runs of spaces and punctuation are not counted.
func (UnicodeSegmenter) Words(text string) int {
	count := 0
	state := -1
	var word string
	for len(text) > 0 {
		word, text, state = uniseg.FirstWordInString(text, state)
		if isWordLike(word) {
			count++
		}
	}
	return count
}

// Sentences counts every sentence segment.
func (UnicodeSegmenter) Sentences(text string) int {
	count := 0
	state := -1
	for len(text) > 0 {
		_, text, state = uniseg.FirstSentenceInString(text, state)
		count++
	}
	return count
}

func isWordLike(segment string) bool {
	return strings.IndexFunc(segment, func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsNumber(r)
	}) >= 0
}

var (
	wordPattern = regexp.MustCompile(`[\p{L}\p{N}]+`)

	// Latin, Devanagari danda and double danda, CJK full stop, fullwidth
	// question and exclamation marks, Arabic question mark, and newline.
	sentenceBoundaryPattern = regexp.MustCompile(`[.!?।॥。？！؟\n]+`)
)

// FallbackSegmenter approximates segmentation with regular expressions.
// It does not depend on boundary tables and always gives the same answer.
type FallbackSegmenter struct{}

var _ Segmenter = FallbackSegmenter{}

// Words counts maximal runs of letters and digits.
func (FallbackSegmenter) Words(text string) int {
	return len(wordPattern.FindAllStringIndex(text, -1))
}

// Sentences counts non-blank spans between runs of sentence terminators.
func (FallbackSegmenter) Sentences(text string) int {
	count := 0
	for _, span := range sentenceBoundaryPattern.Split(trim(text), -1) {
		if trim(span) != "" {
			count++
		}
	}
	return count
}

// probeText mixes scripts so a segmenter that cannot handle one of them is rejected.
const probeText = "Hello world. नमस्ते दुनिया। 你好世界。"

// Probe returns the Unicode segmenter if it works on this host, and the
// regular expression fallback otherwise.
func Probe() Segmenter {
	if segmenterWorks(UnicodeSegmenter{}) {
		return UnicodeSegmenter{}
	}
	return FallbackSegmenter{}
}

func segmenterWorks(s Segmenter) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return s.Words(probeText) > 0 && s.Sentences(probeText) > 0
}
