package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/phrazzld/studyplan/internal/api/shared"
	"github.com/phrazzld/studyplan/internal/domain"
	"github.com/phrazzld/studyplan/internal/platform/logger"
	"github.com/phrazzld/studyplan/internal/service"
)

// errMalformedBody marks a request body that is not a task object or array.
var errMalformedBody = errors.New("malformed request body")

// TaskHandler handles task HTTP requests.
type TaskHandler struct {
	taskService service.TaskService
	logger      *slog.Logger
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService service.TaskService, logger *slog.Logger) *TaskHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for TaskHandler")
	}

	return &TaskHandler{
		taskService: taskService,
		logger:      logger.With(slog.String("component", "task_handler")),
	}
}

// ListTasks handles GET /api/tasks.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	tasks, err := h.taskService.ListTasks(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list tasks")
		return
	}

	log.Debug("listed tasks", slog.Int("count", len(tasks)))
	shared.RespondWithJSON(w, r, http.StatusOK, ListTasksResponse{
		Tasks: tasksToResponse(tasks),
		Total: len(tasks),
	})
}

// CreateTasks handles POST /api/tasks. The body is either one task object,
// answered with the created task, or an array of them, created all or
// nothing and answered with CreateTasksResponse.
func (h *TaskHandler) CreateTasks(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	requests, isBatch, err := decodeTaskRequests(w, r)
	if err != nil {
		log.Debug("invalid task request body", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	inputs := make([]domain.TaskInput, 0, len(requests))
	for i := range requests {
		if err := shared.ValidateRequest(&requests[i]); err != nil {
			HandleAPIError(w, r, err, "")
			return
		}
		inputs = append(inputs, requests[i].ToInput())
	}

	if !isBatch {
		task, err := h.taskService.CreateTask(r.Context(), inputs[0])
		if err != nil {
			HandleAPIError(w, r, err, "Failed to create task")
			return
		}

		log.Info("task created", slog.String("task_id", task.ID.String()))
		shared.RespondWithJSON(w, r, http.StatusCreated, taskToResponse(task))
		return
	}

	tasks, err := h.taskService.CreateTasks(r.Context(), inputs)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create tasks")
		return
	}

	log.Info("tasks created", slog.Int("count", len(tasks)))
	shared.RespondWithJSON(w, r, http.StatusCreated, CreateTasksResponse{
		Tasks: tasksToResponse(tasks),
	})
}

// decodeTaskRequests reads a task object or array of task objects. The
// second result reports whether the body was an array.
func decodeTaskRequests(w http.ResponseWriter, r *http.Request) ([]CreateTaskRequest, bool, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, shared.MaxRequestBodyBytes))
	if err != nil {
		return nil, false, fmt.Errorf("%w: %w", errMalformedBody, err)
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, false, fmt.Errorf("%w: empty body", errMalformedBody)
	}

	if trimmed[0] == '[' {
		var reqs []CreateTaskRequest
		if err := json.Unmarshal(trimmed, &reqs); err != nil {
			return nil, true, fmt.Errorf("%w: %w", errMalformedBody, err)
		}
		return reqs, true, nil
	}

	var req CreateTaskRequest
	if err := json.Unmarshal(trimmed, &req); err != nil {
		return nil, false, fmt.Errorf("%w: %w", errMalformedBody, err)
	}
	return []CreateTaskRequest{req}, false, nil
}
