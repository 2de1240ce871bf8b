package main

import (
	"log/slog"
	"os"

	"trash-cli/internal/app"
	"trash-cli/internal/config"
	"trash-cli/internal/logger"
)

func main() {
	cfg, err := config.Load(os.Environ())
	if err != nil {
		logger.New(os.Stderr, slog.LevelWarn).Error("failed to load config", "error", err)
		os.Exit(1)
	}

	log := logger.New(os.Stderr, cfg.LogLevel)
	slog.SetDefault(log)

	cmd, err := app.NewListCmd(os.Stdout, os.Stderr, app.SystemDeps(cfg, log))
	if err != nil {
		log.Error("failed to initialize command", "error", err)
		os.Exit(1)
	}

	if err := cmd.Run(os.Args...); err != nil {
		log.Error("trash-list failed", "error", err)
		os.Exit(app.ExitStatus(err))
	}
}
