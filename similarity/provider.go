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
	"sync"
	"time"

	"github.com/poiesic/textcentre/ai"
)

// State is the lifecycle stage of a Provider.
type State int

const (
	StateUninitialized State = iota
	StateLoading
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Loader acquires the embedding capability. It is called at most once per
// Provider.
type Loader func(ctx context.Context) (ai.Embedder, error)

// StaticLoader returns a Loader that hands out an already constructed embedder.
func StaticLoader(embedder ai.Embedder) Loader {
	return func(context.Context) (ai.Embedder, error) {
		if embedder == nil {
			return nil, fmt.Errorf("nil embedder")
		}
		return embedder, nil
	}
}

// Provider lazily acquires an embedder and shares it with every caller.
// Ready and Failed are terminal: a failed load is never retried.
type Provider struct {
	load   Loader
	logger *slog.Logger

	mu       sync.Mutex
	state    State
	done     chan struct{}
	embedder ai.Embedder
	err      error
}

// ProviderOption configures a Provider.
type ProviderOption func(*Provider)

// WithProviderLogger sets a custom logger.
// Default is slog.Default().
func WithProviderLogger(logger *slog.Logger) ProviderOption {
	return func(p *Provider) {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
	}
}

// NewProvider creates a Provider in the Uninitialized state. Nothing is
// loaded until the first call to Acquire.
func NewProvider(load Loader, opts ...ProviderOption) (*Provider, error) {
	if load == nil {
		return nil, ErrLoaderRequired
	}

	p := &Provider{
		load:   load,
		logger: slog.Default(),
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.logger = p.logger.With("component", "embedding-provider")
	return p, nil
}

// State returns the current lifecycle stage.
func (p *Provider) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Acquire returns the embedder, starting the load if this is the first call
// and waiting for it if a load is in flight. If ctx ends first, Acquire
// returns ctx.Err() and the load carries on for later callers.
func (p *Provider) Acquire(ctx context.Context) (ai.Embedder, error) {
	p.mu.Lock()
	switch p.state {
	case StateReady:
		embedder := p.embedder
		p.mu.Unlock()
		return embedder, nil
	case StateFailed:
		err := p.err
		p.mu.Unlock()
		return nil, err
	case StateUninitialized:
		p.state = StateLoading
		go p.run(context.WithoutCancel(ctx))
	}
	p.mu.Unlock()

	select {
	case <-p.done:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state == StateReady {
		return p.embedder, nil
	}
	return nil, p.err
}

// Wait blocks until the provider has left the Loading state or ctx ends.
// It does not start a load.
func (p *Provider) Wait(ctx context.Context) (State, error) {
	p.mu.Lock()
	state := p.state
	p.mu.Unlock()
	if state != StateLoading {
		return state, nil
	}

	select {
	case <-p.done:
		return p.State(), nil
	case <-ctx.Done():
		return StateLoading, ctx.Err()
	}
}

func (p *Provider) run(ctx context.Context) {
	start := time.Now()
	p.logger.Info("loading embedding provider")

	embedder, err := p.callLoader(ctx)
	if err == nil && embedder == nil {
		err = fmt.Errorf("loader returned no embedder")
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	defer close(p.done)

	if err != nil {
		p.state = StateFailed
		p.err = fmt.Errorf("%w: %w", ErrProviderFailed, err)
		p.logger.Warn("embedding provider failed to load", "duration", time.Since(start), "err", err)
		return
	}
	p.state = StateReady
	p.embedder = embedder
	p.logger.Info("embedding provider ready", "duration", time.Since(start))
}

func (p *Provider) callLoader(ctx context.Context) (embedder ai.Embedder, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("loader panic: %v", r)
		}
	}()
	return p.load(ctx)
}
