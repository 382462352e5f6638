package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/tasks-api/internal/api/shared"
	"github.com/phrazzld/tasks-api/internal/platform/logger"
	"github.com/phrazzld/tasks-api/internal/service"
)

// Success messages
const (
	msgTaskCreated = "Task created successfully"
	msgSuccess     = "success"
)

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	taskService service.TaskService
	logger      *slog.Logger
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskService service.TaskService, logger *slog.Logger) *TaskHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TaskHandler{
		taskService: taskService,
		logger:      logger.With(slog.String("component", "task_handler")),
	}
}

// CreateTask handles POST /tasks requests
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req TaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	task, err := h.taskService.CreateTask(r.Context(), req.Title, req.Description)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create task")
		return
	}

	shared.RespondWithEnvelope(w, r, http.StatusCreated, msgTaskCreated, task)
}

// ListTasks handles GET /tasks requests
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskService.ListTasks(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to retrieve tasks")
		return
	}

	shared.RespondWithEnvelope(w, r, http.StatusOK, "", tasks)
}

// GetTask handles GET /tasks/{id} requests
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	taskID := getPathTaskID(r)

	task, err := h.taskService.GetTask(r.Context(), taskID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to retrieve task")
		return
	}

	shared.RespondWithEnvelope(w, r, http.StatusOK, msgSuccess, task)
}

// UpdateTask handles PUT /tasks/{id} requests.
// The update is a full replacement of title and description and answers 202.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	taskID := getPathTaskID(r)

	var req TaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	task, err := h.taskService.UpdateTask(r.Context(), taskID, req.Title, req.Description)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update task")
		return
	}

	shared.RespondWithEnvelope(w, r, http.StatusAccepted, msgSuccess, task)
}

// DeleteTask handles DELETE /tasks/{id} requests and echoes the removed task.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	taskID := getPathTaskID(r)

	task, err := h.taskService.DeleteTask(r.Context(), taskID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to delete task")
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).
		Debug("task removed", slog.String("task_id", task.TaskID))
	shared.RespondWithEnvelope(w, r, http.StatusOK, msgSuccess, task)
}
