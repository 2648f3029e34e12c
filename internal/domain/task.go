package domain

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Defaults applied when optional task fields are missing or malformed.
const (
	// DefaultImportance is used when importance is absent or not an integer.
	DefaultImportance = 0

	// DefaultFormImportance is what the add-task form submits when the
	// importance field is left out of the request entirely.
	DefaultFormImportance = 3

	// DefaultDurationHours is used when the duration is absent, malformed,
	// or not a positive number.
	DefaultDurationHours = 1.0

	// DefaultSubject is shown for tasks that were saved without a subject.
	DefaultSubject = "General"
)

// Common validation errors for Task
var (
	ErrEmptyTaskID    = errors.New("task ID cannot be empty")
	ErrEmptyTaskTitle = errors.New("task title cannot be empty")
)

// Task is a single piece of study work entered by the user.
//
// DueDate holds the text exactly as entered (trimmed). It is expected to be a
// YYYY-MM-DD calendar date, but nothing enforces that; the planner treats
// anything it cannot parse as "no deadline".
type Task struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Subject       string    `json:"subject"`
	DueDate       string    `json:"due_date"`
	Importance    int       `json:"importance"`
	DurationHours float64   `json:"duration_hours"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"created_at"`
}

// TaskInput carries the user-supplied fields for a new task, already coerced
// to their target types.
type TaskInput struct {
	Title         string
	Subject       string
	DueDate       string
	Importance    int
	DurationHours float64
	Notes         string
}

// NewTask creates a new Task from the given input.
// Text fields are trimmed, the duration is normalised, and a fresh UUID and
// creation timestamp are assigned. Returns a validation error when the
// trimmed title is empty.
func NewTask(in TaskInput) (*Task, error) {
	task := &Task{
		ID:            uuid.New(),
		Title:         strings.TrimSpace(in.Title),
		Subject:       strings.TrimSpace(in.Subject),
		DueDate:       strings.TrimSpace(in.DueDate),
		Importance:    NormalizeImportance(in.Importance),
		DurationHours: NormalizeDurationHours(in.DurationHours),
		Notes:         strings.TrimSpace(in.Notes),
		CreatedAt:     time.Now().UTC(),
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
// Only the ID and title are checked; every other field is optional.
func (t *Task) Validate() error {
	if t.ID == uuid.Nil {
		return NewValidationError("id", "is required", ErrEmptyTaskID)
	}

	if strings.TrimSpace(t.Title) == "" {
		return NewValidationError("title", "is required", ErrEmptyTaskTitle)
	}

	return nil
}

// DisplaySubject returns the subject, or DefaultSubject when none was given.
func (t *Task) DisplaySubject() string {
	if t.Subject == "" {
		return DefaultSubject
	}
	return t.Subject
}

// ParseImportance converts user text to an importance level.
// Anything that is not an integer in the 32-bit range yields
// DefaultImportance.
func ParseImportance(s string) int {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return DefaultImportance
	}
	return int(v)
}

// NormalizeImportance replaces levels outside the 32-bit range, which the
// importance column cannot hold, with DefaultImportance.
func NormalizeImportance(v int) int {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return DefaultImportance
	}
	return v
}

// ParseDurationHours converts user text to an estimated duration in hours.
// Malformed, non-finite, zero, or negative values yield DefaultDurationHours.
func ParseDurationHours(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return DefaultDurationHours
	}
	return NormalizeDurationHours(v)
}

// NormalizeDurationHours replaces durations that cannot describe real work
// with DefaultDurationHours.
func NormalizeDurationHours(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) || h <= 0 {
		return DefaultDurationHours
	}
	return h
}
