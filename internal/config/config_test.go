package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("should create a default config when none exists", func(t *testing.T) {
		home := t.TempDir()

		cfg, err := LoadConfig(home)
		require.NoError(t, err)

		assert.Equal(t, "en", cfg.Language)
		assert.Equal(t, FormatMarkdown, cfg.DefaultFormat)
		assert.Equal(t, ProviderAPI, cfg.ActiveProvider)
		assert.NotEmpty(t, cfg.APIBaseURL)
		assert.FileExists(t, filepath.Join(home, ".mate-backlog", "config.json"))
	})

	t.Run("should load an existing config file", func(t *testing.T) {
		home := t.TempDir()
		configDir := filepath.Join(home, ".mate-backlog")
		require.NoError(t, os.MkdirAll(configDir, 0755))

		raw := `{"language":"es","default_format":"json","license_key":"mate-123","active_provider":"gemini","gemini_api_key":"g-key"}`
		require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.json"), []byte(raw), 0644))

		cfg, err := LoadConfig(home)
		require.NoError(t, err)

		assert.Equal(t, "es", cfg.Language)
		assert.Equal(t, FormatJSON, cfg.DefaultFormat)
		assert.Equal(t, "mate-123", cfg.LicenseKey)
		assert.Equal(t, ProviderGemini, cfg.ActiveProvider)
		// los campos ausentes toman los defaults
		assert.NotEmpty(t, cfg.APIBaseURL)
		assert.NotEmpty(t, cfg.GeminiModel)
	})

	t.Run("should accept a direct path to a json file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "custom.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"language":"es"}`), 0644))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)

		assert.Equal(t, "es", cfg.Language)
		assert.Equal(t, path, cfg.PathFile)
	})

	t.Run("should fail on malformed json", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "broken.json")
		require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0644))

		_, err := LoadConfig(path)
		assert.Error(t, err)
	})

	t.Run("should reject an unknown provider", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "config.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"active_provider":"openai"}`), 0644))

		_, err := LoadConfig(path)
		assert.Error(t, err)
	})
}

func TestSaveConfig(t *testing.T) {
	t.Run("should round-trip through disk", func(t *testing.T) {
		home := t.TempDir()

		cfg, err := LoadConfig(home)
		require.NoError(t, err)

		cfg.Language = "es"
		cfg.LicenseKey = "mate-789"
		require.NoError(t, SaveConfig(cfg))

		reloaded, err := LoadConfig(home)
		require.NoError(t, err)
		assert.Equal(t, "es", reloaded.Language)
		assert.Equal(t, "mate-789", reloaded.LicenseKey)
	})

	t.Run("should refuse to save an invalid format", func(t *testing.T) {
		home := t.TempDir()

		cfg, err := LoadConfig(home)
		require.NoError(t, err)

		cfg.DefaultFormat = "yaml"
		assert.Error(t, SaveConfig(cfg))
	})

	t.Run("should fail without a backing file path", func(t *testing.T) {
		cfg := &Config{DefaultFormat: FormatMarkdown, ActiveProvider: ProviderAPI}
		assert.Error(t, SaveConfig(cfg))
	})
}
