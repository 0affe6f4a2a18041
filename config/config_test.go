package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "http://localhost:11434/v1", cfg.AI.EmbeddingHost)
	assert.Equal(t, "all-minilm", cfg.AI.EmbeddingModel)
	assert.Equal(t, "https://fonts.googleapis.com/css", cfg.Fonts.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.FontTimeout())
	assert.Zero(t, cfg.Similarity.PoolSize)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
log_level = "DEBUG"

[ai]
host = "http://models.internal:8080"
embedding_model = "nomic-embed-text"
token = "secret"
retry_delay_ms = 250

[similarity]
pool_size = 6

[fonts]
timeout_seconds = 3
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "http://models.internal:8080", cfg.AI.EmbeddingHost)
	assert.Equal(t, "http://models.internal:8080", cfg.AI.ProofreaderHost)
	assert.Equal(t, 6, cfg.Similarity.PoolSize)
	assert.Equal(t, 3*time.Second, cfg.FontTimeout())

	aiCfg := cfg.AIConfig()
	require.NoError(t, aiCfg.Validate())
	assert.Equal(t, "http://models.internal:8080/v1", aiCfg.EmbeddingHost)
	assert.Equal(t, "nomic-embed-text", aiCfg.EmbeddingModel)
	assert.Equal(t, "qwen2.5:3b", aiCfg.ProofreaderModel)
	assert.Equal(t, "secret", aiCfg.Token)
	assert.Equal(t, 250*time.Millisecond, aiCfg.RetryDelay)
}

func TestLoad_HostDoesNotOverrideExplicitHosts(t *testing.T) {
	path := writeConfig(t, `
[ai]
host = "http://shared:11434"
proofreader_host = "http://chat:9000/v1"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://shared:11434", cfg.AI.EmbeddingHost)
	assert.Equal(t, "http://chat:9000/v1", cfg.AI.ProofreaderHost)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	path := writeConfig(t, `
log_level = "warn"

[similarity]
pool_size = 2
`)
	t.Setenv("TEXTCENTRE_LOG_LEVEL", "error")
	t.Setenv("TEXTCENTRE_POOL_SIZE", "8")
	t.Setenv("TEXTCENTRE_EMBEDDING_MODEL", "mxbai-embed-large")
	t.Setenv("TEXTCENTRE_FONTS_BASE_URL", "http://localhost:9999/css")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, 8, cfg.Similarity.PoolSize)
	assert.Equal(t, "mxbai-embed-large", cfg.AI.EmbeddingModel)
	assert.Equal(t, "http://localhost:9999/css", cfg.Fonts.BaseURL)
}

func TestLoad_InvalidIntegerEnvironmentIgnored(t *testing.T) {
	t.Setenv("TEXTCENTRE_POOL_SIZE", "many")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Zero(t, cfg.Similarity.PoolSize)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		contains string
	}{
		{"malformed toml", `log_level = `, "parse config"},
		{"unknown key", `colour = "blue"`, "parse config"},
		{"bad log level", `log_level = "loud"`, "log_level"},
		{"negative pool", "[similarity]\npool_size = -1", "similarity.pool_size"},
		{"negative timeout", "[fonts]\ntimeout_seconds = -5", "fonts.timeout_seconds"},
		{"relative font url", "[fonts]\nbase_url = \"fonts/css\"", "fonts.base_url"},
		{"empty model", "[ai]\nembedding_model = \" \"", "EmbeddingModel"},
		{"zero retries", "[ai]\nmax_retries = 0", "MaxRetries"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.contents))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	cfg.normalize()
	assert.NoError(t, cfg.Validate())
}
