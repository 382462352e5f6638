package mongodb

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/tasks-api/internal/config"
	"github.com/phrazzld/tasks-api/internal/redact"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Connect opens a MongoDB client for cfg.URI and verifies it with a ping to
// the primary. Both steps are bounded by cfg.ConnectTimeout. The caller owns
// the returned client and must call Disconnect on shutdown.
func Connect(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*mongo.Client, error) {
	if logger == nil {
		logger = slog.Default()
	}
	log := logger.With(slog.String("component", "mongodb"))

	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ConnectTimeout)

	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		log.Error("MongoDB connection error", slog.String("error", redact.Error(err)))
		return nil, fmt.Errorf("failed to create mongodb client: %w", err)
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		log.Error("MongoDB connection error", slog.String("error", redact.Error(err)))
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	log.Info("Connected to MongoDB database", slog.String("database", cfg.Name))
	return client, nil
}

// Disconnect closes client, waiting at most timeout for in-flight operations.
func Disconnect(client *mongo.Client, timeout time.Duration) error {
	if client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect mongodb: %w", err)
	}
	return nil
}

// Pinger reports whether the database answers. It backs the health endpoint.
type Pinger struct {
	client *mongo.Client
}

// NewPinger wraps client for health checks.
func NewPinger(client *mongo.Client) *Pinger {
	return &Pinger{client: client}
}

// Ping checks connectivity to the primary.
func (p *Pinger) Ping(ctx context.Context) error {
	return p.client.Ping(ctx, readpref.Primary())
}
