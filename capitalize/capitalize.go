// Package capitalize uppercases the first letter of every sentence.
package capitalize

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// terminators end a sentence when followed by whitespace: Latin, Devanagari
// danda and double danda, CJK full stop, and fullwidth ! and ?.
const terminators = ".!?।॥。！？"

// Sentences uppercases each lowercase letter that starts the text or follows
// a sentence terminator and at least one whitespace character. The full case
// mapping is used, so a letter may expand (ß becomes SS). No other character
// changes, so Sentences(Sentences(s)) == Sentences(s).
func Sentences(text string) string {
	if text == "" {
		return text
	}

	// A Caser keeps state between calls and must not be shared.
	upper := cases.Upper(language.Und)

	var b strings.Builder
	b.Grow(len(text))

	trigger := true // start of text
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])

		if trigger && unicode.IsLower(r) {
			b.WriteString(upper.String(string(r)))
			i += size
			trigger = false
			continue
		}
		b.WriteString(text[i : i+size])
		i += size
		trigger = false

		if strings.ContainsRune(terminators, r) {
			n := spaceRun(text[i:])
			if n > 0 {
				b.WriteString(text[i : i+n])
				i += n
				trigger = true
			}
		}
	}
	return b.String()
}

// spaceRun returns the byte length of the whitespace prefix of s.
func spaceRun(s string) int {
	n := 0
	for n < len(s) {
		r, size := utf8.DecodeRuneInString(s[n:])
		if !isSpace(r) {
			break
		}
		n += size
	}
	return n
}

// isSpace matches Unicode white space and the byte order mark, but not NEL
// (U+0085).
func isSpace(r rune) bool {
	return (unicode.IsSpace(r) && r != '\u0085') || r == '\uFEFF'
}
