package similarity

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/textcentre/ai"
	"github.com/poiesic/textcentre/ai/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T, load Loader, opts ...Option) *Engine {
	t.Helper()
	provider, err := NewProvider(load)
	require.NoError(t, err)
	engine, err := NewEngine(provider, opts...)
	require.NoError(t, err)
	t.Cleanup(engine.Release)
	return engine
}

func fixedVectors(a, b []float32) *mock.MockEmbedder {
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextsFunc = func(context.Context, []string) ([][]float32, error) {
		return [][]float32{a, b}, nil
	}
	return embedder
}

func TestNewEngine_RequiresProvider(t *testing.T) {
	_, err := NewEngine(nil)
	assert.ErrorIs(t, err, ErrProviderRequired)
}

func TestCompare_IdenticalTexts(t *testing.T) {
	engine := newTestEngine(t, StaticLoader(mock.NewMockEmbedder()))

	result := engine.Compare(context.Background(), "The quick brown fox.", "the quick brown fox")
	assert.Equal(t, 100, result.LexicalScore)
	assert.Equal(t, 100, result.SemanticScore)
	assert.Equal(t, Explain(100), result.Explanation)
}

func TestCompare_SemanticFromVectors(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float32
		expected int
	}{
		{"orthogonal", []float32{1, 0}, []float32{0, 1}, 0},
		{"forty five degrees", []float32{1, 1}, []float32{1, 0}, 71},
		{"opposite clamps to zero", []float32{1, 0}, []float32{-1, 0}, 0},
		{"unnormalized parallel", []float32{2, 4}, []float32{1, 2}, 100},
		{"zero vector", []float32{0, 0}, []float32{1, 2}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := newTestEngine(t, StaticLoader(fixedVectors(tt.a, tt.b)))
			result := engine.Compare(context.Background(), "alpha beta", "beta gamma")
			assert.Equal(t, 33, result.LexicalScore)
			assert.Equal(t, tt.expected, result.SemanticScore)
			assert.Equal(t, Explain(tt.expected), result.Explanation)
		})
	}
}

func TestCompare_TrimsInput(t *testing.T) {
	var seen []string
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextsFunc = func(_ context.Context, texts []string) ([][]float32, error) {
		seen = texts
		return [][]float32{{1}, {1}}, nil
	}
	engine := newTestEngine(t, StaticLoader(embedder))

	engine.Compare(context.Background(), "  hello \n", "\tworld ")
	assert.Equal(t, []string{"hello", "world"}, seen)
}

func TestCompare_FailedProviderFallsBackToLexical(t *testing.T) {
	var calls atomic.Int32
	engine := newTestEngine(t, func(context.Context) (ai.Embedder, error) {
		calls.Add(1)
		return nil, errors.New("no model")
	})

	result := engine.Compare(context.Background(), "the cat sat", "the cat ran")
	assert.Equal(t, 50, result.LexicalScore)
	assert.Equal(t, 50, result.SemanticScore)
	assert.Equal(t, Explain(50), result.Explanation)
	assert.Equal(t, StateFailed, engine.Provider().State())

	result = engine.Compare(context.Background(), "a", "b")
	assert.Equal(t, 0, result.SemanticScore)
	assert.Equal(t, int32(1), calls.Load())
}

func TestCompare_EmbedErrorFallsBackToLexical(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextsFunc = func(context.Context, []string) ([][]float32, error) {
		return nil, errors.New("rate limited")
	}
	engine := newTestEngine(t, StaticLoader(embedder))

	result := engine.Compare(context.Background(), "one two three", "one two")
	assert.Equal(t, 67, result.LexicalScore)
	assert.Equal(t, 67, result.SemanticScore)
	assert.Equal(t, StateReady, engine.Provider().State())
}

func TestCompare_EmbeddingMismatchFallsBack(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextsFunc = func(context.Context, []string) ([][]float32, error) {
		return [][]float32{{1, 0}}, nil
	}
	engine := newTestEngine(t, StaticLoader(embedder))

	result := engine.Compare(context.Background(), "x y", "y z")
	assert.Equal(t, result.LexicalScore, result.SemanticScore)
}

func TestCompare_CancelledContextFallsBack(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	engine := newTestEngine(t, func(context.Context) (ai.Embedder, error) {
		<-release
		return mock.NewMockEmbedder(), nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	result := engine.Compare(ctx, "red green", "green blue")
	assert.Equal(t, 33, result.LexicalScore)
	assert.Equal(t, 33, result.SemanticScore)
}

func TestCompare_ConcurrentFirstUseLoadsOnce(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})
	engine := newTestEngine(t, func(context.Context) (ai.Embedder, error) {
		calls.Add(1)
		<-release
		return mock.NewMockEmbedder(), nil
	})

	var wg sync.WaitGroup
	results := make([]Result, 20)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = engine.Compare(context.Background(), "same words here", "same words here")
		}(i)
	}
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for _, r := range results {
		assert.Equal(t, 100, r.SemanticScore)
	}
}

func TestCompareAll_PreservesOrder(t *testing.T) {
	var calls atomic.Int32
	embedder := mock.NewMockEmbedder()
	engine := newTestEngine(t, func(context.Context) (ai.Embedder, error) {
		calls.Add(1)
		return embedder, nil
	}, WithPoolSize(4))

	pairs := make([]Pair, 40)
	for i := range pairs {
		pairs[i] = Pair{
			A: fmt.Sprintf("item %d shared words", i),
			B: fmt.Sprintf("item %d other words %d", i%3, i),
		}
	}

	var out bytes.Buffer
	results, err := engine.CompareAll(context.Background(), pairs, NewProgressTracker(&out, len(pairs), 10))
	require.NoError(t, err)
	require.Len(t, results, len(pairs))

	for i, pair := range pairs {
		assert.Equal(t, engine.Compare(context.Background(), pair.A, pair.B), results[i], "pair %d", i)
	}
	assert.Equal(t, int32(1), calls.Load())
	assert.Contains(t, out.String(), "40/40")
}

func TestCompareAll_Empty(t *testing.T) {
	engine := newTestEngine(t, StaticLoader(mock.NewMockEmbedder()))

	results, err := engine.CompareAll(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestCompareAll_CancelledContext(t *testing.T) {
	engine := newTestEngine(t, StaticLoader(mock.NewMockEmbedder()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := engine.CompareAll(ctx, []Pair{{A: "a", B: "b"}}, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCompareAll_ReleasedPool(t *testing.T) {
	engine := newTestEngine(t, StaticLoader(mock.NewMockEmbedder()))
	engine.Release()

	_, err := engine.CompareAll(context.Background(), []Pair{{A: "a", B: "b"}}, nil)
	assert.ErrorIs(t, err, ants.ErrPoolClosed)
}
