// Package main is the entry point for the confession wall API server.
//
// main stays minimal: read configuration, build the logger, open the store,
// start the server. All actual logic lives in internal/.
package main

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/sakif/confession-wall/internal/config"
	"github.com/sakif/confession-wall/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	// Ensure the SQLite data directory exists (like `mkdir -p`).
	if cfg.DBDriver == config.DriverSQLite {
		dbDir := filepath.Dir(cfg.DBPath)
		if err := os.MkdirAll(dbDir, 0755); err != nil {
			logger.Error("failed to create database directory",
				slog.String("dir", dbDir),
				slog.String("error", err.Error()),
			)
			os.Exit(1)
		}
	}

	store, err := server.OpenStore(cfg, logger)
	if err != nil {
		logger.Error("failed to open store",
			slog.String("driver", cfg.DBDriver),
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}

	// Start() blocks until the server is shut down (via Ctrl+C or SIGTERM)
	// and closes the store on the way out.
	if err := server.New(cfg, store, logger).Start(); err != nil {
		logger.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
