package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("parses the environment", func(t *testing.T) {
		cfg, err := Load([]string{"HOME=/home/u", "XDG_DATA_HOME=/x", "EQ=a=b", "garbage"})
		require.NoError(t, err)
		require.Equal(t, map[string]string{"HOME": "/home/u", "XDG_DATA_HOME": "/x", "EQ": "a=b"}, cfg.Env)
		require.Equal(t, slog.LevelWarn, cfg.LogLevel)
	})

	t.Run("reads the log level", func(t *testing.T) {
		cfg, err := Load([]string{"TRASH_LOG_LEVEL=debug"})
		require.NoError(t, err)
		require.Equal(t, slog.LevelDebug, cfg.LogLevel)
	})

	t.Run("rejects an unknown log level", func(t *testing.T) {
		_, err := Load([]string{"TRASH_LOG_LEVEL=loud"})
		require.Error(t, err)
	})

	t.Run("keeps empty values", func(t *testing.T) {
		cfg, err := Load([]string{"XDG_DATA_HOME="})
		require.NoError(t, err)
		v, ok := cfg.Env["XDG_DATA_HOME"]
		require.True(t, ok)
		require.Empty(t, v)
	})

	t.Run("ignores a relative xdg data home", func(t *testing.T) {
		cfg, err := Load([]string{"XDG_DATA_HOME=./data", "HOME=/home/u"})
		require.NoError(t, err)
		require.NotContains(t, cfg.Env, "XDG_DATA_HOME")
		require.Equal(t, "/home/u", cfg.Env["HOME"])
	})

	t.Run("rejects a nil environment", func(t *testing.T) {
		require.Error(t, (&Config{}).Validate())
	})
}
