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
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultFontBaseURL is the Google Fonts CSS endpoint.
const DefaultFontBaseURL = "https://fonts.googleapis.com/css"

// StylesheetFetcher retrieves a font stylesheet.
type StylesheetFetcher interface {
	FetchStylesheet(ctx context.Context, url string) (string, error)
}

// FontPreview describes a previewed font.
type FontPreview struct {
	// Name is the normalized font family name.
	Name string `json:"name"`
	// URL is the stylesheet location for Name.
	URL string `json:"url"`
	// Stylesheet is the fetched CSS, empty when the fetch failed.
	Stylesheet string `json:"stylesheet,omitempty"`
	// Loaded reports whether the stylesheet was fetched successfully.
	Loaded bool `json:"loaded"`
}

type fontLoad struct {
	done       chan struct{}
	stylesheet string
	err        error
}

// FontPreviewer requests font stylesheets, each normalized name at most
// once, and keeps the list of previewed fonts. It is safe for concurrent use.
type FontPreviewer struct {
	fetcher StylesheetFetcher
	baseURL string
	logger  *slog.Logger

	mu    sync.Mutex
	loads map[string]*fontLoad
	fonts []string
}

// Option configures a FontPreviewer.
type Option func(*FontPreviewer)

// WithBaseURL sets the stylesheet endpoint.
// Default is DefaultFontBaseURL.
func WithBaseURL(baseURL string) Option {
	return func(p *FontPreviewer) {
		if baseURL = strings.TrimSpace(baseURL); baseURL != "" {
			p.baseURL = strings.TrimRight(baseURL, "?")
		}
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *FontPreviewer) {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
	}
}

// NewFontPreviewer creates a previewer that loads stylesheets through fetcher.
func NewFontPreviewer(fetcher StylesheetFetcher, opts ...Option) (*FontPreviewer, error) {
	if fetcher == nil {
		return nil, ErrFetcherRequired
	}

	p := &FontPreviewer{
		fetcher: fetcher,
		baseURL: DefaultFontBaseURL,
		logger:  slog.Default(),
		loads:   make(map[string]*fontLoad),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.logger = p.logger.With("component", "font-previewer")
	return p, nil
}

// NormalizeFontName trims name and title-cases each word, so "open SANS"
// becomes "Open Sans".
func NormalizeFontName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	return cases.Title(language.Und).String(name)
}

// StylesheetURL returns the stylesheet location for an already normalized name.
func (p *FontPreviewer) StylesheetURL(name string) string {
	return p.baseURL + "?family=" + strings.ReplaceAll(name, " ", "+")
}

// Preview normalizes name, records it in the font list and returns its
// stylesheet. The stylesheet is requested only the first time a name is
// seen; later and concurrent calls share that result. The request runs
// detached from ctx and is bounded by the fetcher's own timeout, so a caller
// that gives up early returns without a stylesheet while the fetch finishes
// for everyone else. A failed fetch is not retried and only leaves the
// preview without a stylesheet.
func (p *FontPreviewer) Preview(ctx context.Context, name string) (FontPreview, error) {
	normalized := NormalizeFontName(name)
	if normalized == "" {
		return FontPreview{}, ErrEmptyFontName
	}
	preview := FontPreview{Name: normalized, URL: p.StylesheetURL(normalized)}

	p.mu.Lock()
	load, seen := p.loads[normalized]
	if !seen {
		load = &fontLoad{done: make(chan struct{})}
		p.loads[normalized] = load
	}
	if !slices.Contains(p.fonts, normalized) {
		p.fonts = slices.Insert(p.fonts, 0, normalized)
	}
	p.mu.Unlock()

	if !seen {
		go p.fetch(context.WithoutCancel(ctx), load, preview.URL)
	}

	select {
	case <-load.done:
	case <-ctx.Done():
		return preview, nil
	}

	if load.err == nil {
		preview.Stylesheet = load.stylesheet
		preview.Loaded = true
	}
	return preview, nil
}

func (p *FontPreviewer) fetch(ctx context.Context, load *fontLoad, url string) {
	defer close(load.done)

	p.logger.Debug("fetching stylesheet", "url", url)
	load.stylesheet, load.err = p.fetcher.FetchStylesheet(ctx, url)
	if load.err != nil {
		p.logger.Warn("failed to fetch stylesheet", "url", url, "err", load.err)
	}
}

// Requested reports whether a stylesheet request was already made for name.
func (p *FontPreviewer) Requested(name string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.loads[NormalizeFontName(name)]
	return ok
}

// Fonts returns the previewed font names, most recent first.
func (p *FontPreviewer) Fonts() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return slices.Clone(p.fonts)
}

// Remove drops name from the font list. The stylesheet stays loaded, so
// previewing the name again does not fetch it a second time.
func (p *FontPreviewer) Remove(name string) bool {
	normalized := NormalizeFontName(name)

	p.mu.Lock()
	defer p.mu.Unlock()
	i := slices.Index(p.fonts, normalized)
	if i < 0 {
		return false
	}
	p.fonts = slices.Delete(p.fonts, i, i+1)
	return true
}
