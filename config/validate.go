package config

import (
	"fmt"
	"net/url"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.AIConfig().Validate(); err != nil {
		return err
	}
	if err := c.validateSimilarity(); err != nil {
		return err
	}
	return c.validateFonts()
}

func (c *Config) validateLogging() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("log_level must be one of debug, info, warn or error, got %q", c.LogLevel)
	}
}

func (c *Config) validateSimilarity() error {
	if c.Similarity.PoolSize < 0 {
		return fmt.Errorf("similarity.pool_size cannot be negative")
	}
	return nil
}

func (c *Config) validateFonts() error {
	if c.Fonts.TimeoutSeconds < 0 {
		return fmt.Errorf("fonts.timeout_seconds cannot be negative")
	}
	if c.Fonts.BaseURL == "" {
		return fmt.Errorf("fonts.base_url is required")
	}
	parsed, err := url.Parse(c.Fonts.BaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("fonts.base_url must be an absolute URL, got %q", c.Fonts.BaseURL)
	}
	return nil
}
