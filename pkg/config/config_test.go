package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults apply without config file", func(t *testing.T) {
		Reset()

		cfg, err := Load(filepath.Join(t.TempDir(), ".loom", "settings.yaml"))
		require.NoError(t, err)

		assert.Equal(t, "ollama", cfg.Provider)
		assert.Equal(t, "http://localhost:11434", cfg.Ollama.URL)
		assert.Equal(t, 90*time.Second, cfg.Ollama.Timeout)
		assert.Equal(t, "info", cfg.Logging.Level)
		assert.Contains(t, cfg.Tools.Enabled, "bash")
	})

	t.Run("config file overrides defaults", func(t *testing.T) {
		Reset()

		dir := t.TempDir()
		cfgPath := filepath.Join(dir, "settings.yaml")
		content := []byte("ollama:\n  model: llama3:latest\nlogging:\n  level: debug\ntools:\n  enabled:\n    - git\n")
		require.NoError(t, os.WriteFile(cfgPath, content, 0644))

		cfg, err := Load(cfgPath)
		require.NoError(t, err)

		assert.Equal(t, "llama3:latest", cfg.Ollama.Model)
		assert.Equal(t, "debug", cfg.Logging.Level)
		assert.Equal(t, []string{"git"}, cfg.Tools.Enabled)
		// Untouched values keep their defaults
		assert.Equal(t, "http://localhost:11434", cfg.Ollama.URL)
	})

	t.Run("get panics before load", func(t *testing.T) {
		Reset()
		assert.Panics(t, func() { Get() })
	})

	t.Run("get returns loaded config", func(t *testing.T) {
		Reset()

		_, err := Load(filepath.Join(t.TempDir(), "settings.yaml"))
		require.NoError(t, err)
		assert.NotNil(t, Get())
	})
}

func TestBuildSettingsPath(t *testing.T) {
	assert.Equal(t, filepath.Join(".loom", "system.log"), BuildSettingsPath("system.log"))
}
