package api

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/studyplan/internal/domain"
	"github.com/phrazzld/studyplan/internal/domain/plan"
)

// FlexValue holds a JSON scalar as text so that clients may send numeric
// fields either as numbers or as strings.
type FlexValue struct {
	Text string
	Set  bool
}

// UnmarshalJSON accepts strings, numbers, booleans and null. Anything else is
// kept as raw text and later coerced to the field's default.
func (f *FlexValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = FlexValue{}
		return nil
	}

	f.Set = true
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &f.Text)
	}
	f.Text = string(data)
	return nil
}

// CreateTaskRequest is the payload for creating a task.
type CreateTaskRequest struct {
	Title         string    `json:"title"`
	Subject       string    `json:"subject"`
	DueDate       string    `json:"due_date"`
	Importance    FlexValue `json:"importance"`
	DurationHours FlexValue `json:"duration_hours"`
	Notes         string    `json:"notes"`
}

// ToInput coerces the request into a domain.TaskInput. Missing or malformed
// numbers fall back to the domain defaults; title checks are left to
// domain.NewTask.
func (r CreateTaskRequest) ToInput() domain.TaskInput {
	return domain.TaskInput{
		Title:         r.Title,
		Subject:       r.Subject,
		DueDate:       r.DueDate,
		Importance:    parseImportance(r.Importance),
		DurationHours: domain.ParseDurationHours(r.DurationHours.Text),
		Notes:         r.Notes,
	}
}

// parseImportance applies domain.ParseImportance, first rewriting integral
// JSON numbers such as 4.0 or 4e0 in plain integer form.
func parseImportance(v FlexValue) int {
	if !v.Set {
		return domain.DefaultImportance
	}
	text := strings.TrimSpace(v.Text)
	if f, err := strconv.ParseFloat(text, 64); err == nil &&
		f == math.Trunc(f) && math.Abs(f) < 1e15 {
		text = strconv.FormatFloat(f, 'f', 0, 64)
	}
	return domain.ParseImportance(text)
}

// TaskResponse is a stored task as returned to clients.
type TaskResponse struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Subject       string    `json:"subject"`
	DueDate       string    `json:"due_date"`
	Importance    int       `json:"importance"`
	DurationHours float64   `json:"duration_hours"`
	Notes         string    `json:"notes"`
	CreatedAt     string    `json:"created_at"`
}

// ListTasksResponse wraps every stored task.
type ListTasksResponse struct {
	Tasks []TaskResponse `json:"tasks"`
	Total int            `json:"total"`
}

// CreateTasksResponse is returned when a batch of tasks was created.
type CreateTasksResponse struct {
	Tasks []TaskResponse `json:"tasks"`
}

// PlanRequest is the optional payload for the plan endpoint.
type PlanRequest struct {
	ExtraInfo string `json:"extra_info"`
}

// PlanDay is one day of a generated plan.
type PlanDay struct {
	Day     int            `json:"day"`
	Date    string         `json:"date"`
	Weekday string         `json:"weekday"`
	Label   string         `json:"label"`
	Tasks   []TaskResponse `json:"tasks"`
}

// PlanResponse carries the narrative plus the structured schedule.
type PlanResponse struct {
	Plan string    `json:"plan"`
	Days []PlanDay `json:"days"`
}

func taskToResponse(t *domain.Task) TaskResponse {
	return TaskResponse{
		ID:            t.ID,
		Title:         t.Title,
		Subject:       t.Subject,
		DueDate:       t.DueDate,
		Importance:    t.Importance,
		DurationHours: t.DurationHours,
		Notes:         t.Notes,
		CreatedAt:     t.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func tasksToResponse(tasks []*domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, taskToResponse(t))
	}
	return out
}

func planToResponse(p *plan.Plan) PlanResponse {
	resp := PlanResponse{Plan: p.Text, Days: make([]PlanDay, 0, plan.DaysInPlan)}
	if p.Schedule == nil {
		return resp
	}
	for _, d := range p.Schedule.Days {
		resp.Days = append(resp.Days, PlanDay{
			Day:     d.Index + 1,
			Date:    d.Date.Format("2006-01-02"),
			Weekday: d.Date.Weekday().String(),
			Label:   d.Label(),
			Tasks:   tasksToResponse(d.Tasks),
		})
	}
	return resp
}
