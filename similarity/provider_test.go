package similarity

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/poiesic/textcentre/ai"
	"github.com/poiesic/textcentre/ai/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingLoader hands out an embedder once release is closed.
type countingLoader struct {
	calls    atomic.Int32
	release  chan struct{}
	embedder ai.Embedder
	err      error
	ctxErr   atomic.Value
}

func newCountingLoader() *countingLoader {
	return &countingLoader{
		release:  make(chan struct{}),
		embedder: mock.NewMockEmbedder(),
	}
}

func (l *countingLoader) load(ctx context.Context) (ai.Embedder, error) {
	l.calls.Add(1)
	<-l.release
	if err := ctx.Err(); err != nil {
		l.ctxErr.Store(err)
	}
	if l.err != nil {
		return nil, l.err
	}
	return l.embedder, nil
}

func TestNewProvider_RequiresLoader(t *testing.T) {
	_, err := NewProvider(nil)
	assert.ErrorIs(t, err, ErrLoaderRequired)
}

func TestProvider_LazyAcquisition(t *testing.T) {
	loader := newCountingLoader()
	close(loader.release)

	p, err := NewProvider(loader.load)
	require.NoError(t, err)
	assert.Equal(t, StateUninitialized, p.State())
	assert.Zero(t, loader.calls.Load())

	embedder, err := p.Acquire(context.Background())
	require.NoError(t, err)
	assert.Same(t, loader.embedder, embedder)
	assert.Equal(t, StateReady, p.State())

	_, err = p.Acquire(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(1), loader.calls.Load())
}

func TestProvider_ConcurrentCallersShareOneLoad(t *testing.T) {
	loader := newCountingLoader()
	p, err := NewProvider(loader.load)
	require.NoError(t, err)

	const callers = 50
	var wg sync.WaitGroup
	embedders := make([]ai.Embedder, callers)
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			embedders[i], errs[i] = p.Acquire(context.Background())
		}(i)
	}

	require.Eventually(t, func() bool { return p.State() == StateLoading }, time.Second, time.Millisecond)
	close(loader.release)
	wg.Wait()

	assert.Equal(t, int32(1), loader.calls.Load())
	for i := range embedders {
		require.NoError(t, errs[i])
		assert.Same(t, loader.embedder, embedders[i])
	}
}

func TestProvider_FailureIsTerminal(t *testing.T) {
	loader := newCountingLoader()
	loader.err = errors.New("model download failed")
	close(loader.release)

	p, err := NewProvider(loader.load)
	require.NoError(t, err)

	_, err = p.Acquire(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProviderFailed)
	assert.ErrorIs(t, err, loader.err)
	assert.Equal(t, StateFailed, p.State())

	_, err = p.Acquire(context.Background())
	assert.ErrorIs(t, err, ErrProviderFailed)
	assert.Equal(t, int32(1), loader.calls.Load())
}

func TestProvider_LoaderPanic(t *testing.T) {
	p, err := NewProvider(func(context.Context) (ai.Embedder, error) {
		panic("boom")
	})
	require.NoError(t, err)

	_, err = p.Acquire(context.Background())
	assert.ErrorIs(t, err, ErrProviderFailed)
	assert.Equal(t, StateFailed, p.State())
}

func TestProvider_NilEmbedderFails(t *testing.T) {
	p, err := NewProvider(StaticLoader(nil))
	require.NoError(t, err)

	_, err = p.Acquire(context.Background())
	assert.ErrorIs(t, err, ErrProviderFailed)
}

func TestProvider_CallerCancellationDoesNotAbortLoad(t *testing.T) {
	loader := newCountingLoader()
	p, err := NewProvider(loader.load)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		_, err := p.Acquire(ctx)
		errCh <- err
	}()

	require.Eventually(t, func() bool { return loader.calls.Load() == 1 }, time.Second, time.Millisecond)
	cancel()
	assert.ErrorIs(t, <-errCh, context.Canceled)
	assert.Equal(t, StateLoading, p.State())

	close(loader.release)
	state, err := p.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StateReady, state)
	assert.Nil(t, loader.ctxErr.Load(), "loader context must outlive the caller")

	embedder, err := p.Acquire(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, embedder)
	assert.Equal(t, int32(1), loader.calls.Load())
}

func TestProvider_WaitDoesNotStartLoad(t *testing.T) {
	loader := newCountingLoader()
	p, err := NewProvider(loader.load)
	require.NoError(t, err)

	state, err := p.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StateUninitialized, state)
	assert.Zero(t, loader.calls.Load())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "uninitialized", StateUninitialized.String())
	assert.Equal(t, "loading", StateLoading.String())
	assert.Equal(t, "ready", StateReady.String())
	assert.Equal(t, "failed", StateFailed.String())
	assert.Equal(t, "State(9)", State(9).String())
}
