package mock

import (
	"context"
	"sync/atomic"

	"github.com/poiesic/textcentre/ai"
)

// MockProofreader is a test double for ai.Proofreader.
// It allows custom behavior injection via function fields.
type MockProofreader struct {
	// ProofreadFunc is called by Proofread if set.
	// If nil, the text is returned unchanged with no corrections.
	ProofreadFunc func(ctx context.Context, text string, language ai.Language) (*ai.Proofreading, error)

	callCount atomic.Int64
}

// NewMockProofreader creates a mock proofreader with default behavior.
// Note: Returns concrete type to allow test assertions via GetMockProofreader().
func NewMockProofreader() *MockProofreader {
	return &MockProofreader{}
}

// Proofread returns the configured result or echoes the text back.
func (m *MockProofreader) Proofread(ctx context.Context, text string, language ai.Language) (*ai.Proofreading, error) {
	m.callCount.Add(1)

	if m.ProofreadFunc != nil {
		return m.ProofreadFunc(ctx, text, language)
	}

	return &ai.Proofreading{CorrectedText: text, Corrections: []ai.Correction{}}, nil
}

// CallCount returns the number of times Proofread was called.
func (m *MockProofreader) CallCount() int {
	return int(m.callCount.Load())
}

// Reset clears the call count and custom functions.
func (m *MockProofreader) Reset() {
	m.callCount.Store(0)
	m.ProofreadFunc = nil
}
