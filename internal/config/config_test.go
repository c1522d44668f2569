package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Reads values from the YAML file", func(t *testing.T) {
		// Given: a config file with every key set
		path := writeConfig(t, `
log-level: debug
console:
  prompt: "ttt> "
  no-color: true
  moves-descending: true
`)

		// When: loading it
		conf, err := Load(path)

		// Then: the values should come from the file
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "ttt> ", conf.Console.Prompt)
		assert.True(t, conf.Console.NoColor)
		assert.True(t, conf.Console.MovesDescending)
	})

	t.Run("Applies defaults for missing keys", func(t *testing.T) {
		// Given: an almost empty config file
		path := writeConfig(t, "console: {}\n")

		// When: loading it
		conf, err := Load(path)

		// Then: defaults should be filled in
		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, "> ", conf.Console.Prompt)
		assert.False(t, conf.Console.NoColor)
		assert.False(t, conf.Console.MovesDescending)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		// Given: a file and an env variable for the same key
		path := writeConfig(t, "log-level: info\n")
		t.Setenv("LOG_LEVEL", "warn")

		// When: loading it
		conf, err := Load(path)

		// Then: the env value should win
		require.NoError(t, err)
		assert.Equal(t, "warn", conf.LogLevel)
	})

	t.Run("Missing file falls back to environment", func(t *testing.T) {
		// Given: a path that does not exist
		path := filepath.Join(t.TempDir(), "absent.yml")
		t.Setenv("CONSOLE_PROMPT", "$ ")

		// When: loading it
		conf, err := Load(path)

		// Then: defaults and env should be used
		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, "$ ", conf.Console.Prompt)
	})

	t.Run("Malformed file is an error", func(t *testing.T) {
		path := writeConfig(t, "log-level: [unterminated\n")

		_, err := Load(path)

		require.Error(t, err)
	})
}

func TestMustLoad(t *testing.T) {
	path := writeConfig(t, "log-level: [unterminated\n")

	assert.Panics(t, func() { MustLoad(path) })
}
