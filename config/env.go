package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

const envPrefix = "TEXTCENTRE_"

func (c *Config) applyEnv() {
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)

	if host := getEnv("AI_HOST", ""); host != "" {
		c.AI.Host = host
	}
	c.AI.EmbeddingHost = getEnv("EMBEDDING_HOST", c.AI.EmbeddingHost)
	c.AI.ProofreaderHost = getEnv("PROOFREADER_HOST", c.AI.ProofreaderHost)
	c.AI.EmbeddingModel = getEnv("EMBEDDING_MODEL", c.AI.EmbeddingModel)
	c.AI.ProofreaderModel = getEnv("PROOFREADER_MODEL", c.AI.ProofreaderModel)
	c.AI.Token = getEnv("AI_TOKEN", c.AI.Token)
	c.AI.MaxRetries = getEnvInt("AI_MAX_RETRIES", c.AI.MaxRetries)

	c.Similarity.PoolSize = getEnvInt("POOL_SIZE", c.Similarity.PoolSize)

	c.Fonts.BaseURL = getEnv("FONTS_BASE_URL", c.Fonts.BaseURL)
	c.Fonts.TimeoutSeconds = getEnvInt("FONTS_TIMEOUT_SECONDS", c.Fonts.TimeoutSeconds)
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(envPrefix + key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		slog.Warn("ignoring invalid integer environment variable", "key", envPrefix+key, "value", value)
		return defaultValue
	}
	return parsed
}
