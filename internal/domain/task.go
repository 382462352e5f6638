package domain

import (
	"strings"

	"github.com/google/uuid"
)

// Common validation errors for Task
var (
	ErrEmptyTaskID          = NewValidationError("task_id", "cannot be empty", ErrInvalidID)
	ErrEmptyTaskTitle       = NewValidationError("title", "cannot be empty", ErrEmptyContent)
	ErrEmptyTaskDescription = NewValidationError("description", "cannot be empty", ErrEmptyContent)
)

// Task is the single resource managed by the service.
// TaskID is the public identifier; it is assigned once by NewTask and never
// changes. Storage engines may keep their own internal key alongside it.
type Task struct {
	TaskID      string `json:"task_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// NewTask creates a Task with a freshly generated TaskID.
// Returns a validation error if title or description is blank.
func NewTask(title, description string) (*Task, error) {
	task := &Task{
		TaskID:      uuid.NewString(),
		Title:       title,
		Description: description,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
func (t *Task) Validate() error {
	if strings.TrimSpace(t.TaskID) == "" {
		return ErrEmptyTaskID
	}

	return ValidateContent(t.Title, t.Description)
}

// ValidateContent checks the mutable fields of a task. Update uses it on its
// own since a replacement only carries title and description.
func ValidateContent(title, description string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTaskTitle
	}

	if strings.TrimSpace(description) == "" {
		return ErrEmptyTaskDescription
	}

	return nil
}
