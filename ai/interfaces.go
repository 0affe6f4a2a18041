package ai

import "context"

// Embedder generates vector embeddings from text for semantic similarity scoring.
// Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// The returned vector represents the semantic meaning of the text.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a batch.
	// Batch processing is more efficient than calling EmbedText multiple times.
	// The returned slice contains embeddings in the same order as the input texts.
	// Returns an error if any embedding generation fails.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// Proofreader checks text for grammar and spelling mistakes.
// Implementations must be thread-safe for concurrent use.
type Proofreader interface {
	// Proofread corrects text written in the given language and lists
	// every individual change it made.
	// Returns an error if the language is unsupported or the service fails.
	Proofread(ctx context.Context, text string, language Language) (*Proofreading, error)
}

// Proofreading is the outcome of a proofreading request.
type Proofreading struct {
	// CorrectedText is the full input text with all corrections applied.
	CorrectedText string

	// Corrections lists the individual changes in the order they appear.
	Corrections []Correction
}

// Correction describes one change made by a Proofreader.
type Correction struct {
	// Original is the fragment as it appeared in the input.
	Original string

	// Replacement is the corrected fragment.
	Replacement string

	// Reason is a short human-readable explanation of the change.
	Reason string
}

// AIProvider aggregates AI services for convenient initialization and lifecycle management.
// A provider creates and manages Embedder and Proofreader instances,
// ensuring they share configuration and resources appropriately.
type AIProvider interface {
	// Embedder returns the text embedding service.
	// The returned Embedder is safe for concurrent use.
	Embedder() Embedder

	// Proofreader returns the grammar checking service.
	// The returned Proofreader is safe for concurrent use.
	Proofreader() Proofreader

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
