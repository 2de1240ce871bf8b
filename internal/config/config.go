package config

import (
	"fmt"
	"log/slog"
	"strings"
)

type Config struct {
	// Env is the process environment, consulted for XDG_DATA_HOME and HOME.
	Env      map[string]string
	LogLevel slog.Level
}

// Load builds the configuration from environ, formatted like os.Environ.
func Load(environ []string) (*Config, error) {
	env := parseEnviron(environ)

	level, err := parseLevel(getEnv(env, "TRASH_LOG_LEVEL", "warn"))
	if err != nil {
		return nil, err
	}

	// Relative XDG base directories are invalid and must be ignored.
	if v := env["XDG_DATA_HOME"]; v != "" && !strings.HasPrefix(v, "/") {
		delete(env, "XDG_DATA_HOME")
	}

	cfg := &Config{
		Env:      env,
		LogLevel: level,
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Env == nil {
		return fmt.Errorf("environment cannot be nil")
	}

	if c.LogLevel < slog.LevelDebug || c.LogLevel > slog.LevelError {
		return fmt.Errorf("log level %s out of range", c.LogLevel)
	}

	return nil
}

func parseEnviron(environ []string) map[string]string {
	env := make(map[string]string, len(environ))
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			continue
		}
		env[key] = value
	}

	return env
}

func parseLevel(raw string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		return 0, fmt.Errorf("TRASH_LOG_LEVEL: %w", err)
	}

	return level, nil
}

func getEnv(env map[string]string, key string, fallback string) string {
	v := strings.TrimSpace(env[key])
	if v == "" {
		return fallback
	}

	return v
}
