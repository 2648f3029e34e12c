package plan

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/phrazzld/studyplan/internal/domain"
)

// DaysInPlan is the number of consecutive days a plan covers.
const DaysInPlan = 7

// ErrNoTasks is returned when a plan is requested for an empty task list.
var ErrNoTasks = errors.New("no tasks available")

// dueDateLayouts are tried in order. The second accepts unpadded months and
// days such as 2024-1-5.
var dueDateLayouts = []string{"2006-01-02", "2006-1-2"}

// Day is one bucket of the plan.
type Day struct {
	// Index is the zero-based position of the day within the plan.
	Index int
	// Date is midnight of the day in the plan's location.
	Date time.Time
	// Tasks are assigned in sorted order.
	Tasks []*domain.Task
}

// Label returns "Today" for the first day, "Tomorrow" for the second, and
// the weekday name for the rest.
func (d Day) Label() string {
	switch d.Index {
	case 0:
		return "Today"
	case 1:
		return "Tomorrow"
	default:
		return d.Date.Weekday().String()
	}
}

// Header returns the heading line used for the day in the narrative,
// without the trailing colon.
func (d Day) Header() string {
	weekday := d.Date.Weekday().String()
	switch d.Index {
	case 0, 1:
		return fmt.Sprintf("Day %d – %s (%s)", d.Index+1, weekday, d.Label())
	default:
		return fmt.Sprintf("Day %d – %s", d.Index+1, weekday)
	}
}

// Schedule is the result of distributing tasks across the plan's days.
type Schedule struct {
	// Start is midnight of the first day.
	Start time.Time
	// Days holds one bucket per day, in calendar order.
	Days [DaysInPlan]Day
	// Order is every input task in the order it was dealt out.
	Order []*domain.Task
}

// ParseDueDate interprets a task's due date text.
// The second result is false when the text is blank or not a calendar date,
// which the planner treats as "no deadline".
func ParseDueDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dueDateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}

// sortEntry pairs a task with its parsed due date.
type sortEntry struct {
	task   *domain.Task
	due    time.Time
	hasDue bool
}

// compareEntries orders by due date ascending with undated entries last,
// then by importance descending.
func compareEntries(a, b sortEntry) int {
	switch {
	case a.hasDue && !b.hasDue:
		return -1
	case !a.hasDue && b.hasDue:
		return 1
	case a.hasDue && b.hasDue && !a.due.Equal(b.due):
		return a.due.Compare(b.due)
	}
	// Higher importance first.
	return cmp.Compare(b.task.Importance, a.task.Importance)
}

// SortTasks returns the tasks in planning order without modifying the input.
// The sort is stable: tasks that tie on both keys keep their input order.
// Nil entries are dropped.
func SortTasks(tasks []*domain.Task) []*domain.Task {
	entries := make([]sortEntry, 0, len(tasks))
	for _, t := range tasks {
		if t == nil {
			continue
		}
		due, ok := ParseDueDate(t.DueDate)
		entries = append(entries, sortEntry{task: t, due: due, hasDue: ok})
	}

	slices.SortStableFunc(entries, compareEntries)

	sorted := make([]*domain.Task, len(entries))
	for i, e := range entries {
		sorted[i] = e.task
	}
	return sorted
}

// BuildSchedule sorts the tasks and deals them out across DaysInPlan days
// beginning on the calendar day of start (in start's location). The k-th
// task in sorted order lands on day k mod DaysInPlan.
//
// Returns ErrNoTasks when there is nothing to plan.
func BuildSchedule(tasks []*domain.Task, start time.Time) (*Schedule, error) {
	sorted := SortTasks(tasks)
	if len(sorted) == 0 {
		return nil, ErrNoTasks
	}

	y, m, d := start.Date()
	first := time.Date(y, m, d, 0, 0, 0, 0, start.Location())

	s := &Schedule{
		Start: first,
		Order: sorted,
	}
	for i := range s.Days {
		s.Days[i] = Day{
			Index: i,
			Date:  first.AddDate(0, 0, i),
		}
	}

	for k, t := range sorted {
		day := &s.Days[k%DaysInPlan]
		day.Tasks = append(day.Tasks, t)
	}

	return s, nil
}
