package domain

import (
	"errors"
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	t.Parallel()

	task, err := NewTask(TaskInput{
		Title:         "  Essay draft ",
		Subject:       " History",
		DueDate:       "2024-01-10 ",
		Importance:    5,
		DurationHours: 2.5,
		Notes:         " outline first ",
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, task.ID, "ID should be assigned")
	assert.Equal(t, "Essay draft", task.Title)
	assert.Equal(t, "History", task.Subject)
	assert.Equal(t, "2024-01-10", task.DueDate)
	assert.Equal(t, 5, task.Importance)
	assert.Equal(t, 2.5, task.DurationHours)
	assert.Equal(t, "outline first", task.Notes)
	assert.False(t, task.CreatedAt.IsZero(), "CreatedAt should be set")
}

func TestNewTask_EmptyTitle(t *testing.T) {
	t.Parallel()

	for _, title := range []string{"", "   ", "\t\n"} {
		task, err := NewTask(TaskInput{Title: title})
		assert.Nil(t, task)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrEmptyTaskTitle), "expected ErrEmptyTaskTitle, got %v", err)
		assert.True(t, errors.Is(err, ErrValidation), "expected ErrValidation, got %v", err)

		var vErr *ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.Equal(t, "title", vErr.Field)
	}
}

func TestNewTask_NormalizesDuration(t *testing.T) {
	t.Parallel()

	task, err := NewTask(TaskInput{Title: "Quiz", DurationHours: 0})
	require.NoError(t, err)
	assert.Equal(t, DefaultDurationHours, task.DurationHours)
}

func TestTaskValidate(t *testing.T) {
	t.Parallel()

	valid := Task{ID: uuid.New(), Title: "Reading"}
	assert.NoError(t, valid.Validate())

	noID := valid
	noID.ID = uuid.Nil
	assert.ErrorIs(t, noID.Validate(), ErrEmptyTaskID)

	noTitle := valid
	noTitle.Title = " "
	assert.ErrorIs(t, noTitle.Validate(), ErrEmptyTaskTitle)
}

func TestDisplaySubject(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "General", (&Task{}).DisplaySubject())
	assert.Equal(t, "Maths", (&Task{Subject: "Maths"}).DisplaySubject())
}

func TestParseImportance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want int
	}{
		{"5", 5},
		{" 2 ", 2},
		{"-1", -1},
		{"", 0},
		{"high", 0},
		{"3.5", 0},
		{"2147483647", math.MaxInt32},
		{"-2147483648", math.MinInt32},
		{"2147483648", 0},
		{"-2147483649", 0},
		{"99999999999", 0},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseImportance(tc.in))
		})
	}
}

func TestNormalizeImportance(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 4, NormalizeImportance(4))
	assert.Equal(t, math.MaxInt32, NormalizeImportance(math.MaxInt32))

	tooHigh := int64(math.MaxInt32) + 1
	tooLow := int64(math.MinInt32) - 1
	assert.Equal(t, DefaultImportance, NormalizeImportance(int(tooHigh)))
	assert.Equal(t, DefaultImportance, NormalizeImportance(int(tooLow)))

	task, err := NewTask(TaskInput{Title: "x", Importance: int(tooHigh)})
	require.NoError(t, err)
	assert.Equal(t, DefaultImportance, task.Importance)
}

func TestParseDurationHours(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want float64
	}{
		{"2", 2},
		{"1.5", 1.5},
		{" 0.25 ", 0.25},
		{"", 1},
		{"abc", 1},
		{"0", 1},
		{"-3", 1},
		{"NaN", 1},
		{"Inf", 1},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseDurationHours(tc.in))
		})
	}
}

func TestNormalizeDurationHours(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 3.0, NormalizeDurationHours(3))
	assert.Equal(t, 1.0, NormalizeDurationHours(math.NaN()))
	assert.Equal(t, 1.0, NormalizeDurationHours(math.Inf(1)))
	assert.Equal(t, 1.0, NormalizeDurationHours(-0.5))
}
