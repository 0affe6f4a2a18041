package config

import (
	"github.com/poiesic/textcentre/ai"
	"github.com/poiesic/textcentre/calligraphy"
)

const (
	defaultLogLevel           = "info"
	defaultFontTimeoutSeconds = 10
)

// Default returns a Config populated with defaults for a local
// OpenAI-compatible server.
func Default() Config {
	defaults := ai.DefaultConfig()
	return Config{
		LogLevel: defaultLogLevel,
		AI: AI{
			EmbeddingHost:    defaults.EmbeddingHost,
			ProofreaderHost:  defaults.ProofreaderHost,
			EmbeddingModel:   defaults.EmbeddingModel,
			ProofreaderModel: defaults.ProofreaderModel,
			Token:            defaults.Token,
			MaxRetries:       defaults.MaxRetries,
			RetryDelayMillis: int(defaults.RetryDelay.Milliseconds()),
		},
		Fonts: Fonts{
			BaseURL:        calligraphy.DefaultFontBaseURL,
			TimeoutSeconds: defaultFontTimeoutSeconds,
		},
	}
}
