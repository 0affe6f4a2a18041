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

package similarity

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"strings"

	"github.com/panjf2000/ants/v2"
)

// Result is the outcome of comparing two texts.
type Result struct {
	LexicalScore  int    `json:"lexical_score"`
	SemanticScore int    `json:"semantic_score"`
	Explanation   string `json:"explanation"`
}

// Engine compares texts using a shared embedding Provider.
// An Engine is safe for concurrent use.
type Engine struct {
	provider *Provider
	pool     *ants.Pool
	logger   *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine) error

// WithPoolSize sets the number of workers CompareAll uses.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(e *Engine) error {
		if size < 1 {
			size = 1
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		if e.pool != nil {
			e.pool.Release()
		}
		e.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// NewEngine creates an Engine backed by provider.
func NewEngine(provider *Provider, opts ...Option) (*Engine, error) {
	if provider == nil {
		return nil, ErrProviderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		provider: provider,
		pool:     pool,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		if optErr := opt(e); optErr != nil {
			e.Release()
			return nil, optErr
		}
	}
	e.logger = e.logger.With("component", "similarity")
	return e, nil
}

// Provider returns the embedding provider the engine uses.
func (e *Engine) Provider() *Provider {
	return e.provider
}

// Compare scores a against b after trimming surrounding whitespace. It
// never fails: when no embedding is available the semantic score equals the
// lexical score.
func (e *Engine) Compare(ctx context.Context, a, b string) Result {
	a, b = strings.TrimSpace(a), strings.TrimSpace(b)

	lexical := Lexical(a, b)
	semantic, err := e.semantic(ctx, a, b)
	if err != nil {
		e.logger.Warn("semantic similarity unavailable, using lexical score", "err", err)
		semantic = lexical
	}

	return Result{
		LexicalScore:  lexical,
		SemanticScore: semantic,
		Explanation:   Explain(semantic),
	}
}

func (e *Engine) semantic(ctx context.Context, a, b string) (int, error) {
	embedder, err := e.provider.Acquire(ctx)
	if err != nil {
		return 0, err
	}

	vectors, err := embedder.EmbedTexts(ctx, []string{a, b})
	if err != nil {
		return 0, fmt.Errorf("embed texts: %w", err)
	}
	if len(vectors) != 2 {
		return 0, fmt.Errorf("%w: expected 2, received %d", ErrEmbeddingMismatch, len(vectors))
	}

	return Percent(Cosine(NormalizeVector(vectors[0]), NormalizeVector(vectors[1]))), nil
}

// Release releases the worker pool. The engine should not be used for
// CompareAll after calling Release.
func (e *Engine) Release() {
	if e.pool != nil {
		e.pool.Release()
	}
}
