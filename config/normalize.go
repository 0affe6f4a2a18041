package config

import (
	"strings"

	"github.com/poiesic/textcentre/ai"
)

func (c *Config) normalize() {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
	c.normalizeAI()
	c.normalizeFonts()
}

func (c *Config) normalizeAI() {
	c.AI.Host = strings.TrimSpace(c.AI.Host)
	if c.AI.Host != "" {
		defaults := ai.DefaultConfig()
		if c.AI.EmbeddingHost == "" || c.AI.EmbeddingHost == defaults.EmbeddingHost {
			c.AI.EmbeddingHost = c.AI.Host
		}
		if c.AI.ProofreaderHost == "" || c.AI.ProofreaderHost == defaults.ProofreaderHost {
			c.AI.ProofreaderHost = c.AI.Host
		}
	}
	c.AI.EmbeddingHost = strings.TrimSpace(c.AI.EmbeddingHost)
	c.AI.ProofreaderHost = strings.TrimSpace(c.AI.ProofreaderHost)
	c.AI.EmbeddingModel = strings.TrimSpace(c.AI.EmbeddingModel)
	c.AI.ProofreaderModel = strings.TrimSpace(c.AI.ProofreaderModel)
}

func (c *Config) normalizeFonts() {
	c.Fonts.BaseURL = strings.TrimSpace(c.Fonts.BaseURL)
}
