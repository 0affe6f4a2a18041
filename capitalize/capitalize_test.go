package capitalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentences(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"basic", "hello. world", "Hello. World"},
		{"question and exclamation", "what? yes! ok", "What? Yes! Ok"},
		{"only the first letter changes", "hello there. general kenobi", "Hello there. General kenobi"},
		{"terminator without whitespace", "e.g. fine.nope", "E.g. Fine.nope"},
		{"several spaces and newlines", "one.  \n\ttwo", "One.  \n\tTwo"},
		{"already uppercase", "Hello. World", "Hello. World"},
		{"digit after terminator", "pay 5. 10 items. done", "Pay 5. 10 items. Done"},
		{"leading whitespace is not a trigger", "  hello", "  hello"},
		{"punctuation before letter", "end. \"quoted\"", "End. \"quoted\""},
		{"accented letters", "ça va. élan", "Ça va. Élan"},
		{"cyrillic", "привет. мир", "Привет. Мир"},
		{"greek", "γεια. σας", "Γεια. Σας"},
		{"devanagari danda", "ok। next", "Ok। Next"},
		{"cjk full stop", "fin。 next", "Fin。 Next"},
		{"fullwidth marks", "hi！ there？ you", "Hi！ There？ You"},
		{"scripts without case", "नमस्ते। दुनिया", "नमस्ते। दुनिया"},
		{"sharp s expands", "ß. ß", "SS. SS"},
		{"ligature expands", "ﬁne. ﬁne", "FIne. FIne"},
		{"apostrophe n", "ŉ. ŉ", "ʼN. ʼN"},
		{"digraph", "ǆemal. ǆ", "Ǆemal. Ǆ"},
		{"ellipsis", "wait... what", "Wait... What"},
		{"ideographic space", "done.　next", "Done.　Next"},
		{"next line is not a space", "done.\u0085next", "Done.\u0085next"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Sentences(tt.input))
		})
	}
}

func TestSentences_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"hello. world",
		"a. b. c. d",
		"ǆemal. ǆ",
		"ß. ß",
		"ﬁne. ﬁne",
		"mixed नमस्ते। and 你好。 text! yes? no",
		"\xff. invalid utf8",
		"trailing. ",
	}

	for _, input := range inputs {
		once := Sentences(input)
		assert.Equal(t, once, Sentences(once), "input %q", input)
	}
}

func TestSentences_PreservesLength(t *testing.T) {
	input := "\xff. x"
	assert.Equal(t, "\xff. X", Sentences(input))
}
