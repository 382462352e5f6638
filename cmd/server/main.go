// Package main implements the entry point for the tasks API server,
// which exposes CRUD operations over tasks stored in MongoDB.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/phrazzld/tasks-api/internal/platform/mongodb"
)

// main is the entry point for the tasks-api server.
// It initializes configuration, sets up logging, connects to MongoDB,
// injects dependencies, and runs the HTTP server until a shutdown signal.
func main() {
	if err := run(context.Background()); err != nil {
		log.Fatalf("Failed to run application: %v", err)
	}
}

// run wires the application together and blocks until the server stops.
func run(ctx context.Context) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	logger, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}

	logger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"database", cfg.Database.Name,
		"collection", cfg.Database.Collection)

	client, err := setupAppDatabase(ctx, cfg, logger)
	if err != nil {
		return err
	}

	app, err := newApplication(ctx, cfg, logger, client)
	if err != nil {
		if dErr := mongodb.Disconnect(client, cfg.Server.ShutdownTimeout); dErr != nil {
			logger.Error("Error closing database connection", "error", dErr)
		}
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}
