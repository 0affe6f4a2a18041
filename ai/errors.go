package ai

import "errors"

var (
	// ErrUnsupportedLanguage is returned when a language code does not map to a SupportedLanguages entry.
	ErrUnsupportedLanguage = errors.New("unsupported language")

	// ErrInvalidMaxAttempts is returned when maxAttempts is <= 0
	ErrInvalidMaxAttempts = errors.New("maxAttempts must be greater than 0")

	// ErrEmptyText is returned when there is nothing to proofread.
	ErrEmptyText = errors.New("text cannot be empty")
)
