package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/platform/logger"
	"github.com/phrazzld/tasks-api/internal/redact"
	"github.com/phrazzld/tasks-api/internal/store"
)

// TaskService provides task-related operations
type TaskService interface {
	// CreateTask builds a task with a fresh task_id and persists it
	CreateTask(ctx context.Context, title, description string) (*domain.Task, error)

	// ListTasks returns every stored task
	ListTasks(ctx context.Context) ([]*domain.Task, error)

	// GetTask retrieves a task by its task_id
	GetTask(ctx context.Context, taskID string) (*domain.Task, error)

	// UpdateTask replaces title and description and returns the updated task
	UpdateTask(ctx context.Context, taskID, title, description string) (*domain.Task, error)

	// DeleteTask removes a task and returns it as it was stored
	DeleteTask(ctx context.Context, taskID string) (*domain.Task, error)
}

// TaskServiceError wraps errors from the task service with context.
type TaskServiceError struct {
	// Operation is the operation that failed (e.g., "create_task", "delete_task")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for TaskServiceError.
func (e *TaskServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("task service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("task service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *TaskServiceError) Unwrap() error {
	return e.Err
}

// NewTaskServiceError creates a new TaskServiceError.
// It returns known sentinel errors and validation errors directly without wrapping.
func NewTaskServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrTaskNotFound) || store.IsNotFoundError(err) {
		return ErrTaskNotFound
	}

	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return &TaskServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	taskStore store.TaskStore
	logger    *slog.Logger
}

// NewTaskService creates a new TaskService.
// It returns an error if the store is nil.
func NewTaskService(taskStore store.TaskStore, logger *slog.Logger) (TaskService, error) {
	if taskStore == nil {
		return nil, &TaskServiceError{
			Operation: "create_service",
			Message:   "taskStore cannot be nil",
		}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &taskServiceImpl{
		taskStore: taskStore,
		logger:    logger.With("component", "task_service"),
	}, nil
}

// CreateTask implements TaskService.CreateTask
func (s *taskServiceImpl) CreateTask(
	ctx context.Context,
	title, description string,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := domain.NewTask(title, description)
	if err != nil {
		log.Debug("rejected task content", "error", err)
		return nil, err
	}

	if err := s.taskStore.Create(ctx, task); err != nil {
		log.Error("failed to save task",
			"error", redact.Error(err),
			"task_id", task.TaskID)
		return nil, NewTaskServiceError("create_task", "failed to save task", err)
	}

	log.Info("task created successfully", "task_id", task.TaskID)
	return task, nil
}

// ListTasks implements TaskService.ListTasks
func (s *taskServiceImpl) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	tasks, err := s.taskStore.List(ctx)
	if err != nil {
		log.Error("failed to list tasks", "error", redact.Error(err))
		return nil, NewTaskServiceError("list_tasks", "failed to list tasks", err)
	}

	if tasks == nil {
		tasks = []*domain.Task{}
	}

	log.Debug("listed tasks", "count", len(tasks))
	return tasks, nil
}

// GetTask implements TaskService.GetTask
func (s *taskServiceImpl) GetTask(ctx context.Context, taskID string) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := s.taskStore.GetByID(ctx, taskID)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("task not found", "task_id", taskID)
			return nil, ErrTaskNotFound
		}
		log.Error("failed to retrieve task",
			"error", redact.Error(err),
			"task_id", taskID)
		return nil, NewTaskServiceError("get_task", "failed to retrieve task", err)
	}

	return task, nil
}

// UpdateTask implements TaskService.UpdateTask
func (s *taskServiceImpl) UpdateTask(
	ctx context.Context,
	taskID, title, description string,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := domain.ValidateContent(title, description); err != nil {
		log.Debug("rejected task content", "error", err, "task_id", taskID)
		return nil, err
	}

	task, err := s.taskStore.Update(ctx, taskID, title, description)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("task not found for update", "task_id", taskID)
			return nil, ErrTaskNotFound
		}
		log.Error("failed to update task",
			"error", redact.Error(err),
			"task_id", taskID)
		return nil, NewTaskServiceError("update_task", "failed to update task", err)
	}

	log.Info("task updated successfully", "task_id", taskID)
	return task, nil
}

// DeleteTask implements TaskService.DeleteTask
func (s *taskServiceImpl) DeleteTask(ctx context.Context, taskID string) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := s.taskStore.Delete(ctx, taskID)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("task not found for deletion", "task_id", taskID)
			return nil, ErrTaskNotFound
		}
		log.Error("failed to delete task",
			"error", redact.Error(err),
			"task_id", taskID)
		return nil, NewTaskServiceError("delete_task", "failed to delete task", err)
	}

	log.Info("task deleted successfully", "task_id", taskID)
	return task, nil
}
