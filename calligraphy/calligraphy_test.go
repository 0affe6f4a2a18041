package calligraphy

import (
	"testing"

	"github.com/rivo/uniseg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeys(t *testing.T) {
	expected := []string{
		"bold", "italic", "bold-italic", "script", "bold-script", "fraktur",
		"bold-fraktur", "double-struck", "sans", "sans-bold", "sans-italic",
		"monospace", "circled", "circled-negative", "squared", "fullwidth",
		"small-caps", "strikethrough", "underline",
	}
	assert.Equal(t, expected, Keys())
}

func TestStyles_OrderAndDeterminism(t *testing.T) {
	first := Styles("Text Centre")
	second := Styles("Text Centre")
	assert.Equal(t, first, second)

	require.Len(t, first, len(Keys()))
	for i, key := range Keys() {
		assert.Equal(t, key, first[i].Key)
		assert.NotEmpty(t, first[i].Name)
	}
}

func TestStyles_Empty(t *testing.T) {
	for _, entry := range Styles("") {
		assert.Empty(t, entry.Content, entry.Key)
	}
}

func TestRender(t *testing.T) {
	tests := []struct {
		key      string
		input    string
		expected string
	}{
		{"bold", "Ab1", "\U0001D400\U0001D41B\U0001D7CF"},
		{"italic", "ah", "\U0001D44Eℎ"},
		{"script", "Be", "ℬℯ"},
		{"script", "A", "\U0001D49C"},
		{"fraktur", "Cz", "ℭ\U0001D537"},
		{"double-struck", "R1", "ℝ\U0001D7D9"},
		{"monospace", "a0", "\U0001D68A\U0001D7F6"},
		{"circled", "a0 1 9", "ⓐ⓪ ① ⑨"},
		{"circled-negative", "a0 1", "🅐⓿ ❶"},
		{"squared", "aB", "🄰🄱"},
		{"fullwidth", "A z9", "Ａ ｚ９"},
		{"small-caps", "Hi", "ʜɪ"},
		{"strikethrough", "a b", "a\u0336 b\u0336"},
		{"underline", "Z9", "Z\u03329\u0332"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"/"+tt.input, func(t *testing.T) {
			got, err := Render(tt.key, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestRender_UnknownStyle(t *testing.T) {
	_, err := Render("comic-sans", "hi")
	assert.ErrorIs(t, err, ErrUnknownStyle)
}

func TestStyles_PassThrough(t *testing.T) {
	input := "नमस्ते, 你好! ~ @#"
	for _, entry := range Styles(input) {
		assert.Equal(t, input, entry.Content, entry.Key)
	}
}

func TestStyles_PreservesPerceivedLength(t *testing.T) {
	input := "Text Centre 2025! ça va?"
	want := uniseg.GraphemeClusterCount(input)
	for _, entry := range Styles(input) {
		assert.Equal(t, want, uniseg.GraphemeClusterCount(entry.Content), entry.Key)
	}
}

func TestCatalog_Complete(t *testing.T) {
	for _, s := range catalog {
		for r := 'a'; r <= 'z'; r++ {
			assert.NotEmpty(t, s.table[r], "%s: %q", s.key, r)
			assert.NotEmpty(t, s.table[r-'a'+'A'], "%s: %q", s.key, r-'a'+'A')
		}
	}
}
