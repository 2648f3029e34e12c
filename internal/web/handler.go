package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/studyplan/internal/domain"
	"github.com/phrazzld/studyplan/internal/domain/plan"
	"github.com/phrazzld/studyplan/internal/platform/logger"
	"github.com/phrazzld/studyplan/internal/redact"
	"github.com/phrazzld/studyplan/internal/service"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Form field names posted by the add-task form.
const (
	fieldTitle         = "title"
	fieldSubject       = "subject"
	fieldDueDate       = "due_date"
	fieldImportance    = "importance"
	fieldDurationHours = "duration_hours"
	fieldNotes         = "notes"
)

// maxFormBytes bounds the add-task form body.
const maxFormBytes = 64 << 10

type indexData struct {
	Tasks []*domain.Task
}

// Handler renders the task page and accepts form submissions.
type Handler struct {
	tasks  service.TaskService
	tmpl   *template.Template
	static http.Handler
	logger *slog.Logger
}

// NewHandler parses the embedded templates and creates a Handler.
func NewHandler(tasks service.TaskService, logger *slog.Logger) (*Handler, error) {
	if tasks == nil {
		return nil, fmt.Errorf("web handler: task service cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("web handler: logger cannot be nil")
	}

	tmpl, err := template.New("index.html").
		Funcs(template.FuncMap{"hours": plan.FormatHours}).
		ParseFS(templateFS, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse page templates: %w", err)
	}

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("failed to open static assets: %w", err)
	}

	return &Handler{
		tasks:  tasks,
		tmpl:   tmpl,
		static: http.StripPrefix("/static/", http.FileServer(http.FS(static))),
		logger: logger.With(slog.String("component", "web_handler")),
	}, nil
}

// Mount registers the page, the form target and the static assets on r.
func (h *Handler) Mount(r chi.Router) {
	r.Get("/", h.Index)
	r.Post("/", h.CreateTask)
	r.Handle("/static/*", h.static)
}

// Index renders every stored task in store order.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	tasks, err := h.tasks.ListTasks(r.Context())
	if err != nil {
		log.Error("failed to list tasks for page", slog.String("error", redact.Error(err)))
		http.Error(w, "Failed to load tasks", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.Execute(w, indexData{Tasks: tasks}); err != nil {
		log.Error("failed to render page", slog.String("error", err.Error()))
	}
}

// CreateTask stores the submitted task when it has a title and redirects
// back to the page. A blank title stores nothing.
func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		log.Debug("invalid form submission", slog.String("error", err.Error()))
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	in, ok := FormInput(r.PostForm)
	if !ok {
		log.Debug("form submitted without a title")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	task, err := h.tasks.CreateTask(r.Context(), in)
	if err != nil {
		log.Error("failed to create task from form", slog.String("error", redact.Error(err)))
		http.Error(w, "Failed to save task", http.StatusInternalServerError)
		return
	}

	log.Info("task created", slog.String("task_id", task.ID.String()))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
