package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/studyplan/internal/api/shared"
	"github.com/phrazzld/studyplan/internal/domain"
	"github.com/phrazzld/studyplan/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleTask(title string) *domain.Task {
	return &domain.Task{
		ID:            uuid.New(),
		Title:         title,
		DueDate:       "2024-01-05",
		Importance:    2,
		DurationHours: 1.5,
		CreatedAt:     time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) shared.ErrorResponse {
	t.Helper()
	var resp shared.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestNewTaskHandler_NilLogger(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { NewTaskHandler(&mocks.MockTaskService{}, nil) })
}

func TestTaskHandler_ListTasks(t *testing.T) {
	t.Parallel()

	t.Run("returns tasks and total", func(t *testing.T) {
		svc := &mocks.MockTaskService{Tasks: []*domain.Task{sampleTask("Reading"), sampleTask("Essay")}}
		h := NewTaskHandler(svc, testLogger())

		rec := httptest.NewRecorder()
		h.ListTasks(rec, httptest.NewRequest(http.MethodGet, "/api/tasks", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var resp ListTasksResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, 2, resp.Total)
		require.Len(t, resp.Tasks, 2)
		assert.Equal(t, "Reading", resp.Tasks[0].Title)
		assert.Equal(t, "2024-01-01T09:00:00Z", resp.Tasks[0].CreatedAt)
	})

	t.Run("empty list encodes as array", func(t *testing.T) {
		h := NewTaskHandler(&mocks.MockTaskService{}, testLogger())

		rec := httptest.NewRecorder()
		h.ListTasks(rec, httptest.NewRequest(http.MethodGet, "/api/tasks", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"tasks":[],"total":0}`, rec.Body.String())
	})

	t.Run("store failure is hidden", func(t *testing.T) {
		svc := &mocks.MockTaskService{Err: errors.New("disk I/O error at /var/lib/db")}
		h := NewTaskHandler(svc, testLogger())

		rec := httptest.NewRecorder()
		h.ListTasks(rec, httptest.NewRequest(http.MethodGet, "/api/tasks", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Failed to list tasks", decodeError(t, rec).Error)
	})
}

func TestTaskHandler_CreateTasks(t *testing.T) {
	t.Parallel()

	t.Run("single object", func(t *testing.T) {
		var got domain.TaskInput
		svc := &mocks.MockTaskService{
			CreateTaskFn: func(ctx context.Context, in domain.TaskInput) (*domain.Task, error) {
				got = in
				return domain.NewTask(in)
			},
		}
		h := NewTaskHandler(svc, testLogger())

		body := `{"title":" Essay ","subject":"History","due_date":"2024-01-10","importance":"5","duration_hours":2}`
		rec := httptest.NewRecorder()
		h.CreateTasks(rec, httptest.NewRequest(http.MethodPost, "/api/tasks", strings.NewReader(body)))

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, 5, got.Importance)
		assert.Equal(t, 2.0, got.DurationHours)

		var resp TaskResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "Essay", resp.Title)
		assert.Equal(t, "History", resp.Subject)
		assert.NotEqual(t, uuid.Nil, resp.ID)
	})

	t.Run("array", func(t *testing.T) {
		var got []domain.TaskInput
		svc := &mocks.MockTaskService{
			CreateTasksFn: func(ctx context.Context, inputs []domain.TaskInput) ([]*domain.Task, error) {
				got = inputs
				out := make([]*domain.Task, 0, len(inputs))
				for _, in := range inputs {
					task, err := domain.NewTask(in)
					require.NoError(t, err)
					out = append(out, task)
				}
				return out, nil
			},
		}
		h := NewTaskHandler(svc, testLogger())

		body := `  [{"title":"a"},{"title":"b","importance":2}]`
		rec := httptest.NewRecorder()
		h.CreateTasks(rec, httptest.NewRequest(http.MethodPost, "/api/tasks", strings.NewReader(body)))

		require.Equal(t, http.StatusCreated, rec.Code)
		require.Len(t, got, 2)
		assert.Equal(t, domain.DefaultImportance, got[0].Importance)
		assert.Equal(t, 2, got[1].Importance)

		var resp CreateTasksResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Len(t, resp.Tasks, 2)
	})

	t.Run("empty title", func(t *testing.T) {
		h := NewTaskHandler(&mocks.MockTaskService{}, testLogger())

		rec := httptest.NewRecorder()
		h.CreateTasks(rec, httptest.NewRequest(http.MethodPost, "/api/tasks", strings.NewReader(`{"title":"   "}`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid title: is required", decodeError(t, rec).Error)
	})

	t.Run("long text fields are accepted", func(t *testing.T) {
		long := strings.Repeat("x", 6000)
		h := NewTaskHandler(&mocks.MockTaskService{}, testLogger())

		body := `{"title":"` + long + `","subject":"` + long + `","due_date":"` + long + `","notes":"` + long + `"}`
		rec := httptest.NewRecorder()
		h.CreateTasks(rec, httptest.NewRequest(http.MethodPost, "/api/tasks", strings.NewReader(body)))

		require.Equal(t, http.StatusCreated, rec.Code)
		var resp TaskResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, long, resp.Title)
		assert.Equal(t, long, resp.Notes)
	})

	t.Run("malformed bodies", func(t *testing.T) {
		for _, body := range []string{"", "   ", "{", "[{]", `"title"`} {
			h := NewTaskHandler(&mocks.MockTaskService{}, testLogger())

			rec := httptest.NewRecorder()
			h.CreateTasks(rec, httptest.NewRequest(http.MethodPost, "/api/tasks", strings.NewReader(body)))

			assert.Equal(t, http.StatusBadRequest, rec.Code, "body %q", body)
			assert.Equal(t, "Invalid request format", decodeError(t, rec).Error, "body %q", body)
		}
	})

	t.Run("empty array", func(t *testing.T) {
		svc := &mocks.MockTaskService{
			CreateTasksFn: func(ctx context.Context, inputs []domain.TaskInput) ([]*domain.Task, error) {
				return nil, domain.NewValidationError("tasks", "must contain at least one task", nil)
			},
		}
		h := NewTaskHandler(svc, testLogger())

		rec := httptest.NewRecorder()
		h.CreateTasks(rec, httptest.NewRequest(http.MethodPost, "/api/tasks", strings.NewReader(`[]`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("service failure", func(t *testing.T) {
		svc := &mocks.MockTaskService{Err: errors.New("constraint failed")}
		h := NewTaskHandler(svc, testLogger())

		rec := httptest.NewRecorder()
		h.CreateTasks(rec, httptest.NewRequest(http.MethodPost, "/api/tasks", strings.NewReader(`{"title":"a"}`)))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Failed to create task", decodeError(t, rec).Error)
	})
}
