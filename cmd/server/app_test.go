package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/phrazzld/tasks-api/internal/config"
	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/platform/logger"
	"github.com/phrazzld/tasks-api/internal/service"
	"github.com/phrazzld/tasks-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTaskStore is a minimal in-memory store.TaskStore for router tests.
type fakeTaskStore struct {
	mu    sync.Mutex
	tasks map[string]domain.Task
}

func (s *fakeTaskStore) Create(ctx context.Context, task *domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks[task.TaskID] = *task
	return nil
}

func (s *fakeTaskStore) List(ctx context.Context) ([]*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tasks := make([]*domain.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		t := t
		tasks = append(tasks, &t)
	}
	return tasks, nil
}

func (s *fakeTaskStore) GetByID(ctx context.Context, taskID string) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tasks[taskID]
	if !ok {
		return nil, store.ErrTaskNotFound
	}
	return &t, nil
}

func (s *fakeTaskStore) Update(
	ctx context.Context,
	taskID, title, description string,
) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tasks[taskID]
	if !ok {
		return nil, store.ErrTaskNotFound
	}
	t.Title, t.Description = title, description
	s.tasks[taskID] = t
	return &t, nil
}

func (s *fakeTaskStore) Delete(ctx context.Context, taskID string) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tasks[taskID]
	if !ok {
		return nil, store.ErrTaskNotFound
	}
	delete(s.tasks, taskID)
	return &t, nil
}

type fakePinger struct{ err error }

func (p fakePinger) Ping(ctx context.Context) error { return p.err }

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:               0,
			LogLevel:           "debug",
			ReadTimeout:        time.Second,
			WriteTimeout:       time.Second,
			ShutdownTimeout:    time.Second,
			CORSAllowedOrigins: []string{"*"},
		},
		Database: config.DatabaseConfig{
			URI:              "mongodb://127.0.0.1:27017",
			Name:             "taskDB",
			Collection:       "tasks",
			ConnectTimeout:   time.Second,
			OperationTimeout: time.Second,
		},
	}
}

func newTestApplication(t *testing.T, pingErr error) *application {
	t.Helper()
	log, _ := logger.NewTestLogger()
	taskStore := &fakeTaskStore{tasks: make(map[string]domain.Task)}

	svc, err := service.NewTaskService(taskStore, log)
	require.NoError(t, err)

	return &application{
		config:      testConfig(),
		logger:      log,
		taskStore:   taskStore,
		taskService: svc,
		pinger:      fakePinger{err: pingErr},
	}
}

func TestRouter_TaskLifecycle(t *testing.T) {
	router := newTestApplication(t, nil).setupRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/tasks",
		strings.NewReader(`{"title":"Ship it","description":"Tag the release"}`)))
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		Data domain.Task `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEmpty(t, created.Data.TaskID)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tasks/"+created.Data.TaskID, nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/tasks/"+created.Data.TaskID, nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tasks/"+created.Data.TaskID, nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var notFound map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &notFound))
	assert.Equal(t, "Task not found", notFound["message"])
	assert.Len(t, notFound["trace_id"], 32, "trace middleware is wired")
}

func TestRouter_Health(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		rec := httptest.NewRecorder()
		newTestApplication(t, nil).setupRouter().
			ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	})

	t.Run("store down", func(t *testing.T) {
		rec := httptest.NewRecorder()
		newTestApplication(t, errors.New("no reachable servers")).setupRouter().
			ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestRouter_CORS(t *testing.T) {
	router := newTestApplication(t, nil).setupRouter()

	req := httptest.NewRequest(http.MethodOptions, "/tasks", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
}

func TestRouter_RecoversFromPanics(t *testing.T) {
	app := newTestApplication(t, nil)
	app.taskService = panickingService{}
	router := app.setupRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tasks", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

type panickingService struct{ service.TaskService }

func (panickingService) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	panic("boom")
}

func TestStartHTTPServer_StopsOnContextCancel(t *testing.T) {
	app := newTestApplication(t, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := app.startHTTPServer(ctx, app.setupRouter())
	assert.NoError(t, err)
}
