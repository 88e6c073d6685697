package main

import (
	"github.com/famplan/famplan-server/internal/config"
	"github.com/famplan/famplan-server/internal/logger"
)

// initLogger installs the process-wide logger from app configuration.
func initLogger(cfg *config.Config) {
	logger.InitLogger(logger.Config{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: cfg.ServiceName,
		Version:     cfg.Version,
		Environment: cfg.Environment,
		// Source info only in dev
		AddSource: cfg.Environment == "dev" || cfg.Environment == "development",
	})
}
