package mongodb

import (
	"errors"
	"fmt"

	"github.com/phrazzld/tasks-api/internal/store"
	"go.mongodb.org/mongo-driver/mongo"
)

// MapError maps a driver error to an appropriate store error.
// It wraps the original error to preserve context for logging.
// Errors without a specific mapping are returned unchanged.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("%w: %v", store.ErrNotFound, err)
	}

	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: %v", store.ErrDuplicate, err)
	}

	return err
}

// IsNotFoundError checks if the given error represents a "not found" scenario.
// This handles both mongo.ErrNoDocuments and errors that are or wrap store.ErrNotFound.
func IsNotFoundError(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments) || errors.Is(err, store.ErrNotFound)
}
