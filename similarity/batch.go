package similarity

import (
	"context"
	"fmt"
	"sync"
)

// Pair is two texts to compare.
type Pair struct {
	A string `json:"a"`
	B string `json:"b"`
}

// CompareAll compares every pair on the engine's worker pool. Results are
// in the same order as pairs. progress may be nil. An error is returned only
// when ctx ends before every pair was scheduled or the pool refuses work.
func (e *Engine) CompareAll(ctx context.Context, pairs []Pair, progress *ProgressTracker) ([]Result, error) {
	results := make([]Result, len(pairs))
	if len(pairs) == 0 {
		return results, nil
	}

	if progress != nil {
		progress.Start()
	}

	var wg sync.WaitGroup
	for i, pair := range pairs {
		if err := ctx.Err(); err != nil {
			wg.Wait()
			return nil, err
		}

		wg.Add(1)
		err := e.pool.Submit(func() {
			defer wg.Done()
			results[i] = e.Compare(ctx, pair.A, pair.B)
			if progress != nil {
				progress.Increment(1)
			}
		})
		if err != nil {
			wg.Done()
			wg.Wait()
			return nil, fmt.Errorf("submit comparison %d: %w", i, err)
		}
	}
	wg.Wait()

	if progress != nil {
		progress.Finish()
	}
	e.logger.Debug("compared pairs", "pairs", len(pairs))
	return results, nil
}
