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

// Package textcentre wires the text utilities into a single Toolkit.
package textcentre

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/poiesic/textcentre/ai"
	"github.com/poiesic/textcentre/ai/openai"
	"github.com/poiesic/textcentre/calligraphy"
	"github.com/poiesic/textcentre/capitalize"
	"github.com/poiesic/textcentre/config"
	"github.com/poiesic/textcentre/similarity"
	"github.com/poiesic/textcentre/stats"
)

// warmupText is embedded once when the embedding provider loads, so an
// unreachable or misconfigured service fails the load instead of every call.
const warmupText = "warm up"

const defaultFontTimeout = 10 * time.Second

type Toolkit struct {
	provider   ai.AIProvider
	embeddings *similarity.Provider
	engine     *similarity.Engine
	previewer  *calligraphy.FontPreviewer
	logger     *slog.Logger
}

// ToolkitOption configures a Toolkit.
type ToolkitOption func(*toolkitOptions)

type toolkitOptions struct {
	aiConfig    *ai.Config
	aiProvider  ai.AIProvider
	fetcher     calligraphy.StylesheetFetcher
	fontBaseURL string
	fontTimeout time.Duration
	poolSize    int
	logger      *slog.Logger
}

// WithAIConfig sets the configuration of the OpenAI-compatible services.
func WithAIConfig(config *ai.Config) ToolkitOption {
	return func(o *toolkitOptions) {
		o.aiConfig = config
	}
}

// WithAIProvider supplies an already constructed AI provider. WithAIConfig is
// ignored when a provider is given.
func WithAIProvider(provider ai.AIProvider) ToolkitOption {
	return func(o *toolkitOptions) {
		o.aiProvider = provider
	}
}

// WithStylesheetFetcher overrides how font stylesheets are downloaded.
func WithStylesheetFetcher(fetcher calligraphy.StylesheetFetcher) ToolkitOption {
	return func(o *toolkitOptions) {
		o.fetcher = fetcher
	}
}

// WithFontBaseURL sets the font stylesheet endpoint.
func WithFontBaseURL(baseURL string) ToolkitOption {
	return func(o *toolkitOptions) {
		o.fontBaseURL = baseURL
	}
}

// WithFontTimeout sets the stylesheet request timeout of the default fetcher.
func WithFontTimeout(timeout time.Duration) ToolkitOption {
	return func(o *toolkitOptions) {
		o.fontTimeout = timeout
	}
}

// WithPoolSize sets the number of workers used for batch comparisons.
// Zero keeps the default.
func WithPoolSize(size int) ToolkitOption {
	return func(o *toolkitOptions) {
		o.poolSize = size
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) ToolkitOption {
	return func(o *toolkitOptions) {
		o.logger = logger
	}
}

// NewToolkit creates a Toolkit. No AI service is contacted until the first
// similarity comparison or proofreading request.
func NewToolkit(opts ...ToolkitOption) (*Toolkit, error) {
	options := &toolkitOptions{
		aiConfig:    ai.DefaultConfig(),
		fontTimeout: defaultFontTimeout,
	}
	for _, opt := range opts {
		opt(options)
	}
	if options.logger == nil {
		options.logger = slog.Default()
	}

	provider := options.aiProvider
	if provider == nil {
		var err error
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			return nil, err
		}
	}

	embeddings, err := similarity.NewProvider(warmLoader(provider),
		similarity.WithProviderLogger(options.logger))
	if err != nil {
		provider.Close()
		return nil, err
	}

	engineOpts := []similarity.Option{similarity.WithLogger(options.logger)}
	if options.poolSize > 0 {
		engineOpts = append(engineOpts, similarity.WithPoolSize(options.poolSize))
	}
	engine, err := similarity.NewEngine(embeddings, engineOpts...)
	if err != nil {
		provider.Close()
		return nil, err
	}

	fetcher := options.fetcher
	if fetcher == nil {
		fetcher = calligraphy.NewHTTPFetcher(options.fontTimeout)
	}
	previewer, err := calligraphy.NewFontPreviewer(fetcher,
		calligraphy.WithBaseURL(options.fontBaseURL),
		calligraphy.WithLogger(options.logger))
	if err != nil {
		engine.Release()
		provider.Close()
		return nil, err
	}

	return &Toolkit{
		provider:   provider,
		embeddings: embeddings,
		engine:     engine,
		previewer:  previewer,
		logger:     options.logger.With("component", "toolkit"),
	}, nil
}

// NewToolkitFromConfig creates a Toolkit from loaded configuration. Extra
// options are applied after the configured ones.
func NewToolkitFromConfig(cfg *config.Config, opts ...ToolkitOption) (*Toolkit, error) {
	base := []ToolkitOption{
		WithAIConfig(cfg.AIConfig()),
		WithFontBaseURL(cfg.Fonts.BaseURL),
		WithFontTimeout(cfg.FontTimeout()),
		WithPoolSize(cfg.Similarity.PoolSize),
	}
	return NewToolkit(append(base, opts...)...)
}

// warmLoader acquires the provider's embedder and checks it answers.
func warmLoader(provider ai.AIProvider) similarity.Loader {
	return func(ctx context.Context) (ai.Embedder, error) {
		embedder := provider.Embedder()
		if embedder == nil {
			return nil, fmt.Errorf("provider has no embedder")
		}
		if _, err := embedder.EmbedText(ctx, warmupText); err != nil {
			return nil, fmt.Errorf("warm up embedder: %w", err)
		}
		return embedder, nil
	}
}

func (t *Toolkit) Close() error {
	t.engine.Release()
	if err := t.provider.Close(); err != nil {
		t.logger.Error("error closing AI provider", "err", err)
		return err
	}
	return nil
}

// Stats counts words, characters, sentences and paragraphs in text.
func (t *Toolkit) Stats(text string) stats.Stats {
	return stats.Compute(text)
}

// Capitalize uppercases the first letter of every sentence in text.
func (t *Toolkit) Capitalize(text string) string {
	return capitalize.Sentences(text)
}

// Styles renders text in every calligraphy style.
func (t *Toolkit) Styles(text string) []calligraphy.StyleEntry {
	return calligraphy.Styles(text)
}

// Compare scores the similarity of a and b.
func (t *Toolkit) Compare(ctx context.Context, a, b string) similarity.Result {
	return t.engine.Compare(ctx, a, b)
}

// CompareAll scores many pairs concurrently, keeping their order.
func (t *Toolkit) CompareAll(ctx context.Context, pairs []similarity.Pair, progress *similarity.ProgressTracker) ([]similarity.Result, error) {
	return t.engine.CompareAll(ctx, pairs, progress)
}

// EmbeddingState reports the lifecycle stage of the embedding provider.
func (t *Toolkit) EmbeddingState() similarity.State {
	return t.embeddings.State()
}

// PreviewFont loads the stylesheet for a font, at most once per name.
func (t *Toolkit) PreviewFont(ctx context.Context, name string) (calligraphy.FontPreview, error) {
	return t.previewer.Preview(ctx, name)
}

// Fonts lists previewed fonts, most recent first.
func (t *Toolkit) Fonts() []string {
	return t.previewer.Fonts()
}

// RemoveFont drops a font from the previewed list.
func (t *Toolkit) RemoveFont(name string) bool {
	return t.previewer.Remove(name)
}

// Proofread corrects text written in the language identified by
// languageCode, such as "en" or "pt-BR".
func (t *Toolkit) Proofread(ctx context.Context, text, languageCode string) (*ai.Proofreading, error) {
	language, err := ai.LookupLanguage(languageCode)
	if err != nil {
		return nil, err
	}
	return t.provider.Proofreader().Proofread(ctx, text, language)
}
