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

// Package calligraphy renders text in stylized Unicode alphabets.
//
// The catalog maps the ASCII letters and digits onto the Mathematical
// Alphanumeric Symbols block, enclosed alphanumerics, fullwidth forms,
// small capitals and combining overlays. Anything without an entry, such as
// spaces, punctuation and non-Latin scripts, passes through unchanged.
//
// # Styles
//
//	for _, s := range calligraphy.Styles("Text Centre") {
//		fmt.Printf("%-20s %s\n", s.Name, s.Content)
//	}
//
// Styles is pure and safe for concurrent use. The catalog is built once when
// the package is initialized and never changes afterwards, so the order of
// the returned entries and their keys are stable.
//
// # Font previews
//
// FontPreviewer loads web font stylesheets for named fonts. Each normalized
// font name is requested at most once per previewer:
//
//	previewer, _ := calligraphy.NewFontPreviewer(calligraphy.NewHTTPFetcher(5 * time.Second))
//	preview := previewer.Preview(ctx, "tangerine")
//	// preview.Name == "Tangerine"
//	// preview.URL  == "https://fonts.googleapis.com/css?family=Tangerine"
//
// Fetch failures are logged and otherwise ignored; the preview then carries no
// stylesheet.
package calligraphy
