// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package calligraphy

// table maps a base character to its stylized replacement.
type table map[rune]string

type style struct {
	key   string
	name  string
	table table
}

const noDigits rune = -1

// alphabet builds a table for a contiguous block of styled capitals, small
// letters and, unless zero is noDigits, digits. Holes in the Mathematical
// Alphanumeric Symbols block are filled from exceptions.
func alphabet(upper, lower, zero rune, exceptions map[rune]rune) table {
	t := make(table, 62)
	for i := rune(0); i < 26; i++ {
		t['A'+i] = string(upper + i)
		t['a'+i] = string(lower + i)
	}
	if zero != noDigits {
		for i := rune(0); i < 10; i++ {
			t['0'+i] = string(zero + i)
		}
	}
	for from, to := range exceptions {
		t[from] = string(to)
	}
	return t
}

// caseless builds a table for styles with a single letter form.
func caseless(base rune) table {
	t := make(table, 52)
	for i := rune(0); i < 26; i++ {
		t['A'+i] = string(base + i)
		t['a'+i] = string(base + i)
	}
	return t
}

// letters builds a table from a 26 character alphabet used for both cases.
func letters(forms string) table {
	t := make(table, 52)
	i := rune(0)
	for _, r := range forms {
		t['A'+i] = string(r)
		t['a'+i] = string(r)
		i++
	}
	return t
}

// overlay appends a combining mark to every letter and digit.
func overlay(mark rune) table {
	t := make(table, 62)
	add := func(from, to rune) {
		for r := from; r <= to; r++ {
			t[r] = string([]rune{r, mark})
		}
	}
	add('A', 'Z')
	add('a', 'z')
	add('0', '9')
	return t
}

// withDigits returns t extended with digits 1-9 starting at one and 0 mapped
// to zero.
func withDigits(t table, zero, one rune) table {
	t['0'] = string(zero)
	for i := rune(0); i < 9; i++ {
		t['1'+i] = string(one + i)
	}
	return t
}

var catalog = []style{
	{"bold", "Bold", alphabet(0x1D400, 0x1D41A, 0x1D7CE, nil)},
	{"italic", "Italic", alphabet(0x1D434, 0x1D44E, noDigits, map[rune]rune{
		'h': 'ℎ',
	})},
	{"bold-italic", "Bold Italic", alphabet(0x1D468, 0x1D482, noDigits, nil)},
	{"script", "Script", alphabet(0x1D49C, 0x1D4B6, noDigits, map[rune]rune{
		'B': 'ℬ', 'E': 'ℰ', 'F': 'ℱ', 'H': 'ℋ', 'I': 'ℐ', 'L': 'ℒ', 'M': 'ℳ', 'R': 'ℛ',
		'e': 'ℯ', 'g': 'ℊ', 'o': 'ℴ',
	})},
	{"bold-script", "Bold Script", alphabet(0x1D4D0, 0x1D4EA, noDigits, nil)},
	{"fraktur", "Fraktur", alphabet(0x1D504, 0x1D51E, noDigits, map[rune]rune{
		'C': 'ℭ', 'H': 'ℌ', 'I': 'ℑ', 'R': 'ℜ', 'Z': 'ℨ',
	})},
	{"bold-fraktur", "Bold Fraktur", alphabet(0x1D56C, 0x1D586, noDigits, nil)},
	{"double-struck", "Double Struck", alphabet(0x1D538, 0x1D552, 0x1D7D8, map[rune]rune{
		'C': 'ℂ', 'H': 'ℍ', 'N': 'ℕ', 'P': 'ℙ', 'Q': 'ℚ', 'R': 'ℝ', 'Z': 'ℤ',
	})},
	{"sans", "Sans Serif", alphabet(0x1D5A0, 0x1D5BA, 0x1D7E2, nil)},
	{"sans-bold", "Sans Serif Bold", alphabet(0x1D5D4, 0x1D5EE, 0x1D7EC, nil)},
	{"sans-italic", "Sans Serif Italic", alphabet(0x1D608, 0x1D622, noDigits, nil)},
	{"monospace", "Monospace", alphabet(0x1D670, 0x1D68A, 0x1D7F6, nil)},
	{"circled", "Circled", withDigits(alphabet(0x24B6, 0x24D0, noDigits, nil), 0x24EA, 0x2460)},
	{"circled-negative", "Negative Circled", withDigits(caseless(0x1F150), 0x24FF, 0x2776)},
	{"squared", "Squared", caseless(0x1F130)},
	{"fullwidth", "Fullwidth", alphabet(0xFF21, 0xFF41, 0xFF10, nil)},
	{"small-caps", "Small Caps", letters("ᴀʙᴄᴅᴇꜰɢʜɪᴊᴋʟᴍɴᴏᴘǫʀꜱᴛᴜᴠᴡxʏᴢ")},
	{"strikethrough", "Strikethrough", overlay('\u0336')},
	{"underline", "Underline", overlay('\u0332')},
}

var byKey = func() map[string]*style {
	m := make(map[string]*style, len(catalog))
	for i := range catalog {
		m[catalog[i].key] = &catalog[i]
	}
	return m
}()
