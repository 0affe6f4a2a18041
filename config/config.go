package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"github.com/poiesic/textcentre/ai"
)

// AI contains connection settings for the embedding and proofreading services.
type AI struct {
	// Host sets both service hosts unless they are given individually.
	Host             string `toml:"host"`
	EmbeddingHost    string `toml:"embedding_host"`
	ProofreaderHost  string `toml:"proofreader_host"`
	EmbeddingModel   string `toml:"embedding_model"`
	ProofreaderModel string `toml:"proofreader_model"`
	Token            string `toml:"token"`
	MaxRetries       int    `toml:"max_retries"`
	RetryDelayMillis int    `toml:"retry_delay_ms"`
}

// Similarity contains settings for the similarity engine.
type Similarity struct {
	// PoolSize is the number of workers used for batch comparisons.
	// Zero selects a size from the CPU count.
	PoolSize int `toml:"pool_size"`
}

// Fonts contains settings for font previews.
type Fonts struct {
	BaseURL        string `toml:"base_url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// Config encapsulates all configuration values for textcentre.
type Config struct {
	LogLevel   string     `toml:"log_level"`
	AI         AI         `toml:"ai"`
	Similarity Similarity `toml:"similarity"`
	Fonts      Fonts      `toml:"fonts"`
}

// DefaultConfigPath returns the default configuration file location.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "textcentre", "config.toml"), nil
}

// Load reads the configuration at path, or at DefaultConfigPath when path is
// empty. A missing file is not an error; defaults and environment variables
// still apply. A .env file in the working directory is loaded first.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	if path == "" {
		defaultPath, err := DefaultConfigPath()
		if err == nil {
			path = defaultPath
		}
	}

	if path != "" {
		if err := cfg.decodeFile(path); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv()
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) decodeFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	decoder := toml.NewDecoder(file)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// AIConfig converts the [ai] section into an ai.Config.
func (c *Config) AIConfig() *ai.Config {
	return ai.NewConfig(
		ai.WithEmbeddingHost(c.AI.EmbeddingHost),
		ai.WithProofreaderHost(c.AI.ProofreaderHost),
		ai.WithEmbeddingModel(c.AI.EmbeddingModel),
		ai.WithProofreaderModel(c.AI.ProofreaderModel),
		ai.WithToken(c.AI.Token),
		ai.WithMaxRetries(c.AI.MaxRetries),
		ai.WithRetryDelay(time.Duration(c.AI.RetryDelayMillis)*time.Millisecond),
	)
}

// FontTimeout returns the stylesheet request timeout.
func (c *Config) FontTimeout() time.Duration {
	return time.Duration(c.Fonts.TimeoutSeconds) * time.Second
}
