package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/tasks-api/internal/config"
	"github.com/phrazzld/tasks-api/internal/platform/mongodb"
	"go.mongodb.org/mongo-driver/mongo"
)

// setupAppDatabase connects to MongoDB and verifies the connection.
// Returns the client if successful, or an error if the server cannot be reached
// within the configured connect timeout.
func setupAppDatabase(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*mongo.Client, error) {
	client, err := mongodb.Connect(ctx, cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	logger.Info("Database connection established")
	return client, nil
}
