package plan

import (
	"strings"
	"testing"

	"github.com/phrazzld/studyplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedSource always returns the same draw, folded into range.
type fixedSource int

func (f fixedSource) IntN(n int) int {
	return int(f) % n
}

// recordingSource returns 0 and remembers every n it was asked for.
type recordingSource struct {
	requests []int
}

func (r *recordingSource) IntN(n int) int {
	r.requests = append(r.requests, n)
	return 0
}

func TestRender_Structure(t *testing.T) {
	t.Parallel()

	phrases := DefaultPhrases()
	tasks := []*domain.Task{
		{Title: "Essay", Subject: "History", DueDate: "2024-01-10", Importance: 5, DurationHours: 2},
		{Title: "Reading", DueDate: "2024-01-05", Importance: 1, DurationHours: 1.5, Notes: "chapters 3-4"},
		{Title: "Revise", DurationHours: 1},
	}

	s, err := BuildSchedule(tasks, monday)
	require.NoError(t, err)

	text := Render(s, "", phrases, fixedSource(1))
	lines := strings.Split(text, "\n")

	assert.Equal(t, phrases.Openings[1], lines[0], "opening should come from the draw")
	assert.Equal(t, phrases.Closing, lines[len(lines)-1], "closing should be last")
	assert.NotContains(t, text, "You mentioned about your schedule")

	assert.Contains(t, lines, "Day 1 – Monday (Today):")
	assert.Contains(t, lines, "Day 2 – Tuesday (Tomorrow):")
	assert.Contains(t, lines, "Day 3 – Wednesday:")
	assert.Contains(t, lines, "Day 7 – Sunday:")

	assert.Contains(t, lines, "  • Spend about 1.5 hour(s) on 'Reading' (General), due 2024-01-05. Notes: chapters 3-4")
	assert.Contains(t, lines, "  • Spend about 2.0 hour(s) on 'Essay' (History), due 2024-01-10.")
	assert.Contains(t, lines, "  • Spend about 1.0 hour(s) on 'Revise' (General), due no due date.")

	// Four of the seven days are empty.
	restLine := "  • " + phrases.RestDay
	assert.Equal(t, 4, countLines(lines, restLine))

	// One tip per day, each chosen with the same draw.
	assert.Equal(t, DaysInPlan, countLines(lines, "  Tip: "+phrases.Tips[1]))
}

func TestRender_DayOrderAndTaskPlacement(t *testing.T) {
	t.Parallel()

	tasks := []*domain.Task{
		{Title: "Essay", DueDate: "2024-01-10", Importance: 5, DurationHours: 1},
		{Title: "Quiz", DueDate: "2024-01-10", Importance: 2, DurationHours: 1},
		{Title: "Reading", DueDate: "2024-01-05", Importance: 1, DurationHours: 1},
	}

	s, err := BuildSchedule(tasks, monday)
	require.NoError(t, err)

	text := Render(s, "", DefaultPhrases(), fixedSource(0))

	day1 := strings.Index(text, "Day 1 ")
	day2 := strings.Index(text, "Day 2 ")
	day3 := strings.Index(text, "Day 3 ")
	day4 := strings.Index(text, "Day 4 ")
	reading := strings.Index(text, "'Reading'")
	essay := strings.Index(text, "'Essay'")
	quiz := strings.Index(text, "'Quiz'")

	assert.True(t, day1 < reading && reading < day2, "Reading belongs to day 1")
	assert.True(t, day2 < essay && essay < day3, "Essay belongs to day 2")
	assert.True(t, day3 < quiz && quiz < day4, "Quiz belongs to day 3")
}

func TestRender_ExtraInfo(t *testing.T) {
	t.Parallel()

	s, err := BuildSchedule([]*domain.Task{{Title: "x", DurationHours: 1}}, monday)
	require.NoError(t, err)

	text := Render(s, "  I work late on Fridays  ", DefaultPhrases(), fixedSource(0))
	lines := strings.Split(text, "\n")

	require.GreaterOrEqual(t, len(lines), 3)
	assert.Equal(t, "", lines[1])
	assert.Equal(t, "You mentioned about your schedule: I work late on Fridays", lines[2])

	blank := Render(s, "   ", DefaultPhrases(), fixedSource(0))
	assert.NotContains(t, blank, "You mentioned")
}

func TestRender_DrawOrder(t *testing.T) {
	t.Parallel()

	phrases := DefaultPhrases()
	s, err := BuildSchedule([]*domain.Task{{Title: "x", DurationHours: 1}}, monday)
	require.NoError(t, err)

	src := &recordingSource{}
	_ = Render(s, "", phrases, src)

	want := []int{len(phrases.Openings)}
	for i := 0; i < DaysInPlan; i++ {
		want = append(want, len(phrases.Tips))
	}
	assert.Equal(t, want, src.requests)
}

func TestRender_IsDeterministicForSameDraws(t *testing.T) {
	t.Parallel()

	s, err := BuildSchedule([]*domain.Task{{Title: "x", DurationHours: 1}}, monday)
	require.NoError(t, err)

	a := Render(s, "note", DefaultPhrases(), fixedSource(2))
	b := Render(s, "note", DefaultPhrases(), fixedSource(2))
	assert.Equal(t, a, b)
}

func TestRender_EmptyPhraseLists(t *testing.T) {
	t.Parallel()

	s, err := BuildSchedule([]*domain.Task{{Title: "x", DurationHours: 1}}, monday)
	require.NoError(t, err)

	src := &recordingSource{}
	text := Render(s, "", Phrases{RestDay: "rest", Closing: "bye"}, src)

	assert.Empty(t, src.requests, "no draws should be taken without options")
	assert.True(t, strings.HasSuffix(text, "bye"))
}

func TestRender_NilSource(t *testing.T) {
	t.Parallel()

	s, err := BuildSchedule([]*domain.Task{{Title: "x", DurationHours: 1}}, monday)
	require.NoError(t, err)

	var text string
	require.NotPanics(t, func() { text = Render(s, "", DefaultPhrases(), nil) })
	assert.Contains(t, DefaultPhrases().Openings, strings.Split(text, "\n")[0])
}

func TestRender_Wording(t *testing.T) {
	t.Parallel()

	s, err := BuildSchedule([]*domain.Task{{Title: "x", DurationHours: 1}}, monday)
	require.NoError(t, err)

	text := Render(s, "", DefaultPhrases(), fixedSource(0))
	lines := strings.Split(text, "\n")

	assert.Equal(t, "Here’s a focused 7‑day study plan I created from your tasks.", lines[0])
	assert.Contains(t, lines, "Let’s break it down day by day:")
	assert.Contains(t, lines, "  Tip: Keep sessions short (25–30 minutes) with 5‑minute breaks.")
	assert.Equal(t,
		"This is a starting point—feel free to move tasks between days if your real schedule changes.",
		lines[len(lines)-1])
}

func TestPhrasesPick(t *testing.T) {
	t.Parallel()

	p := Phrases{Openings: []string{"a", "b", "c"}, Tips: []string{"x", "y"}}

	assert.Equal(t, "a", p.Opening(0))
	assert.Equal(t, "c", p.Opening(2))
	assert.Equal(t, "a", p.Opening(3), "draws wrap around")
	assert.Equal(t, "c", p.Opening(-1), "negative draws wrap around")
	assert.Equal(t, "y", p.Tip(1))
	assert.Equal(t, "", Phrases{}.Tip(4))
}

func TestFormatHours(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		want string
	}{
		{1, "1.0"},
		{2, "2.0"},
		{1.5, "1.5"},
		{0.25, "0.25"},
		{0, "1.0"},
		{-2, "1.0"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, FormatHours(tc.in), "FormatHours(%v)", tc.in)
	}
}

func TestDefaultSource(t *testing.T) {
	t.Parallel()

	src := NewDefaultSource()
	for i := 0; i < 100; i++ {
		v := src.IntN(5)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 5)
	}
}

func countLines(lines []string, want string) int {
	n := 0
	for _, l := range lines {
		if l == want {
			n++
		}
	}
	return n
}
