package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadFresh(t *testing.T) (*Config, error) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	return LoadConfig()
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("SPOONACULAR_API_KEY", "test-key")

	cfg, err := loadFresh(t)
	require.NoError(t, err)

	assert.Equal(t, "test-key", cfg.Spoonacular.APIKey)
	assert.Equal(t, "https://api.spoonacular.com", cfg.Spoonacular.BaseURL)
	assert.Equal(t, 20, cfg.Spoonacular.DefaultNumber)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 4, cfg.Tips.Workers)
	assert.False(t, cfg.OpenRouter.Enabled)
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, "memory", cfg.Cache.Backend)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfigRequiresSpoonacularKey(t *testing.T) {
	t.Setenv("SPOONACULAR_API_KEY", "")

	_, err := loadFresh(t)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "SPOONACULAR_API_KEY")
}

func TestLoadConfigRequiresOpenRouterKeyWhenEnabled(t *testing.T) {
	t.Setenv("SPOONACULAR_API_KEY", "test-key")
	t.Setenv("OPENROUTER_ENABLED", "true")
	t.Setenv("OPENROUTER_API_KEY", "")

	_, err := loadFresh(t)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENROUTER_API_KEY")
}

func TestLoadConfigRejectsUnknownCacheBackend(t *testing.T) {
	t.Setenv("SPOONACULAR_API_KEY", "test-key")
	t.Setenv("CACHE_ENABLED", "true")
	t.Setenv("CACHE_BACKEND", "memcached")

	_, err := loadFresh(t)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "cache backend")
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("SPOONACULAR_API_KEY", "test-key")
	t.Setenv("OPENROUTER_ENABLED", "true")
	t.Setenv("OPENROUTER_API_KEY", "or-key")
	t.Setenv("OPENROUTER_MODEL", "test/model")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := loadFresh(t)
	require.NoError(t, err)

	assert.True(t, cfg.OpenRouter.Enabled)
	assert.Equal(t, "or-key", cfg.OpenRouter.APIKey)
	assert.Equal(t, "test/model", cfg.OpenRouter.Model)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestMaskAPIKey(t *testing.T) {
	assert.Equal(t, "****", maskAPIKey(""))
	assert.Equal(t, "****", maskAPIKey("short"))
	assert.Equal(t, "abcd...wxyz", maskAPIKey("abcdefghijklmnopqrstuvwxyz"))
}
