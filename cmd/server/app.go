package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/tasks-api/internal/api"
	"github.com/phrazzld/tasks-api/internal/config"
	"github.com/phrazzld/tasks-api/internal/platform/mongodb"
	"github.com/phrazzld/tasks-api/internal/service"
	"github.com/phrazzld/tasks-api/internal/store"
	"go.mongodb.org/mongo-driver/mongo"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger      *slog.Logger
	mongoClient *mongo.Client

	// Stores (using interfaces for proper abstraction)
	taskStore store.TaskStore

	// Service interfaces
	taskService service.TaskService

	// pinger backs the health endpoint
	pinger api.Pinger
}

// newApplication creates a new application instance with all dependencies initialized.
// The MongoDB client must already be connected; newApplication makes sure the
// task collection carries its indexes before any handler can use it.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	client *mongo.Client,
) (*application, error) {
	app := &application{
		config:      cfg,
		logger:      logger,
		mongoClient: client,
		pinger:      mongodb.NewPinger(client),
	}

	coll := client.Database(cfg.Database.Name).Collection(cfg.Database.Collection)
	taskStore := mongodb.NewTaskStore(coll, logger, cfg.Database.OperationTimeout)
	if err := taskStore.EnsureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("failed to prepare task collection: %w", err)
	}
	app.taskStore = taskStore

	var err error
	app.taskService, err = service.NewTaskService(app.taskStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.mongoClient != nil {
		if err := mongodb.Disconnect(app.mongoClient, app.config.Server.ShutdownTimeout); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
