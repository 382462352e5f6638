package mongodb

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/redact"
	"github.com/phrazzld/tasks-api/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// taskIDIndexName is the name of the unique index on task_id.
const taskIDIndexName = "task_id_unique"

// taskDocument is the stored shape of a task. The ObjectID is assigned by
// the server and never leaves this package.
type taskDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	TaskID      string             `bson:"task_id"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
}

func (d *taskDocument) toDomain() *domain.Task {
	return &domain.Task{
		TaskID:      d.TaskID,
		Title:       d.Title,
		Description: d.Description,
	}
}

// TaskStore implements the store.TaskStore interface
// using a MongoDB collection as the storage backend.
type TaskStore struct {
	coll      *mongo.Collection
	logger    *slog.Logger
	opTimeout time.Duration
}

// Ensure TaskStore implements store.TaskStore interface
var _ store.TaskStore = (*TaskStore)(nil)

// NewTaskStore creates a new MongoDB implementation of the TaskStore interface.
// A non-positive opTimeout leaves operations bounded only by the caller's context.
func NewTaskStore(coll *mongo.Collection, logger *slog.Logger, opTimeout time.Duration) *TaskStore {
	if logger == nil {
		logger = slog.Default()
	}

	return &TaskStore{
		coll:      coll,
		logger:    logger.With(slog.String("component", "task_store")),
		opTimeout: opTimeout,
	}
}

func (s *TaskStore) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.opTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.opTimeout)
}

func byTaskID(taskID string) bson.D {
	return bson.D{{Key: "task_id", Value: taskID}}
}

// EnsureIndexes creates the unique task_id index if it does not exist yet.
func (s *TaskStore) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	model := mongo.IndexModel{
		Keys:    bson.D{{Key: "task_id", Value: 1}},
		Options: options.Index().SetUnique(true).SetName(taskIDIndexName),
	}

	name, err := s.coll.Indexes().CreateOne(ctx, model)
	if err != nil {
		s.logger.Error("failed to create task_id index",
			slog.String("error", redact.Error(err)))
		return fmt.Errorf("failed to create task_id index: %w", err)
	}

	s.logger.Debug("index ready", slog.String("index", name))
	return nil
}

// Create implements store.TaskStore.Create
func (s *TaskStore) Create(ctx context.Context, task *domain.Task) error {
	if err := task.Validate(); err != nil {
		s.logger.Warn("task validation failed during creation",
			slog.String("error", err.Error()))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	doc := taskDocument{
		TaskID:      task.TaskID,
		Title:       task.Title,
		Description: task.Description,
	}

	if _, err := s.coll.InsertOne(ctx, doc); err != nil {
		mapped := MapError(err)
		if store.IsDuplicateError(mapped) {
			s.logger.Warn("task_id already exists",
				slog.String("task_id", task.TaskID))
			return store.ErrTaskIDExists
		}
		s.logger.Error("failed to insert task",
			slog.String("error", redact.Error(err)),
			slog.String("task_id", task.TaskID))
		return store.NewStoreError("task", "create", "insert failed", mapped)
	}

	s.logger.Debug("task created successfully", slog.String("task_id", task.TaskID))
	return nil
}

// List implements store.TaskStore.List
func (s *TaskStore) List(ctx context.Context) ([]*domain.Task, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	cursor, err := s.coll.Find(ctx, bson.D{})
	if err != nil {
		s.logger.Error("failed to query tasks", slog.String("error", redact.Error(err)))
		return nil, store.NewStoreError("task", "list", "find failed", MapError(err))
	}

	var docs []taskDocument
	if err := cursor.All(ctx, &docs); err != nil {
		s.logger.Error("failed to decode tasks", slog.String("error", redact.Error(err)))
		return nil, store.NewStoreError("task", "list", "decode failed", err)
	}

	tasks := make([]*domain.Task, 0, len(docs))
	for i := range docs {
		tasks = append(tasks, docs[i].toDomain())
	}

	s.logger.Debug("tasks listed", slog.Int("count", len(tasks)))
	return tasks, nil
}

// GetByID implements store.TaskStore.GetByID
func (s *TaskStore) GetByID(ctx context.Context, taskID string) (*domain.Task, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var doc taskDocument
	err := s.coll.FindOne(ctx, byTaskID(taskID)).Decode(&doc)
	if err != nil {
		return nil, s.singleResultError("get", taskID, err)
	}

	return doc.toDomain(), nil
}

// Update implements store.TaskStore.Update
func (s *TaskStore) Update(
	ctx context.Context,
	taskID, title, description string,
) (*domain.Task, error) {
	if err := domain.ValidateContent(title, description); err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "title", Value: title},
		{Key: "description", Value: description},
	}}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc taskDocument
	err := s.coll.FindOneAndUpdate(ctx, byTaskID(taskID), update, opts).Decode(&doc)
	if err != nil {
		return nil, s.singleResultError("update", taskID, err)
	}

	s.logger.Debug("task updated successfully", slog.String("task_id", taskID))
	return doc.toDomain(), nil
}

// Delete implements store.TaskStore.Delete
func (s *TaskStore) Delete(ctx context.Context, taskID string) (*domain.Task, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var doc taskDocument
	err := s.coll.FindOneAndDelete(ctx, byTaskID(taskID)).Decode(&doc)
	if err != nil {
		return nil, s.singleResultError("delete", taskID, err)
	}

	s.logger.Debug("task deleted successfully", slog.String("task_id", taskID))
	return doc.toDomain(), nil
}

// singleResultError translates the error of a single-document operation.
func (s *TaskStore) singleResultError(operation, taskID string, err error) error {
	if IsNotFoundError(err) {
		s.logger.Debug("task not found",
			slog.String("operation", operation),
			slog.String("task_id", taskID))
		return store.ErrTaskNotFound
	}

	s.logger.Error("task operation failed",
		slog.String("operation", operation),
		slog.String("task_id", taskID),
		slog.String("error", redact.Error(err)))
	return store.NewStoreError("task", operation, "query failed", MapError(err))
}
