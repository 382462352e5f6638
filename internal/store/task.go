package store

import (
	"context"

	"github.com/phrazzld/tasks-api/internal/domain"
)

// TaskStore defines the interface for task persistence.
// Tasks are addressed by their public TaskID, never by a storage-native key.
// Every method is a single round trip to the backing store; errors that do
// not map to a sentinel below are returned unchanged.
type TaskStore interface {
	// Create saves a new task.
	// Returns ErrTaskIDExists if the task_id is already taken.
	Create(ctx context.Context, task *domain.Task) error

	// List returns every stored task in storage order.
	// Returns an empty slice when the collection is empty.
	List(ctx context.Context) ([]*domain.Task, error)

	// GetByID retrieves a task by its task_id.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, taskID string) (*domain.Task, error)

	// Update replaces title and description of the matching task and
	// returns the task as it is after the update.
	// Returns ErrTaskNotFound if the task does not exist.
	Update(ctx context.Context, taskID, title, description string) (*domain.Task, error)

	// Delete removes the matching task and returns it as it was stored.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, taskID string) (*domain.Task, error)
}
