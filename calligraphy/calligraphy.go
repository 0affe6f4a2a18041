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

import (
	"fmt"
	"strings"
)

// StyleEntry is one rendering of the input text.
type StyleEntry struct {
	// Name is the display label.
	Name string `json:"name"`
	// Key identifies the style independently of locale.
	Key string `json:"key"`
	// Content is the input rendered in this style.
	Content string `json:"content"`
}

// Styles renders text in every catalog style, in catalog order.
func Styles(text string) []StyleEntry {
	entries := make([]StyleEntry, len(catalog))
	for i := range catalog {
		entries[i] = StyleEntry{
			Name:    catalog[i].name,
			Key:     catalog[i].key,
			Content: catalog[i].table.apply(text),
		}
	}
	return entries
}

// Keys returns the catalog keys in catalog order.
func Keys() []string {
	keys := make([]string, len(catalog))
	for i := range catalog {
		keys[i] = catalog[i].key
	}
	return keys
}

// Render renders text in the style identified by key.
func Render(key, text string) (string, error) {
	s, ok := byKey[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStyle, key)
	}
	return s.table.apply(text), nil
}

func (t table) apply(text string) string {
	var b strings.Builder
	b.Grow(len(text) * 4)
	for _, r := range text {
		if mapped, ok := t[r]; ok {
			b.WriteString(mapped)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
