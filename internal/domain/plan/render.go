package plan

import (
	"math"
	"strconv"
	"strings"

	"github.com/phrazzld/studyplan/internal/domain"
)

const (
	noDueDateText = "no due date"
	bullet        = "  • "
	breakdownLine = "Let’s break it down day by day:"
)

// Render writes the schedule up as the narrative plan text.
//
// Draws are taken from src in a fixed order: one for the opening sentence,
// then one tip per day from the first day to the last. A blank extraInfo is
// omitted; otherwise it is echoed back after the opening. A nil src uses
// NewDefaultSource.
func Render(s *Schedule, extraInfo string, phrases Phrases, src RandomSource) string {
	if src == nil {
		src = NewDefaultSource()
	}

	var lines []string

	lines = append(lines, phrases.Opening(draw(src, len(phrases.Openings))))

	if note := strings.TrimSpace(extraInfo); note != "" {
		lines = append(lines, "", "You mentioned about your schedule: "+note)
	}

	lines = append(lines, "", breakdownLine, "")

	for _, day := range s.Days {
		lines = append(lines, day.Header()+":")

		if len(day.Tasks) == 0 {
			lines = append(lines, bullet+phrases.RestDay)
		} else {
			for _, t := range day.Tasks {
				lines = append(lines, taskLine(t))
			}
		}

		lines = append(lines, "  Tip: "+phrases.Tip(draw(src, len(phrases.Tips))), "")
	}

	lines = append(lines, phrases.Closing)

	return strings.Join(lines, "\n")
}

// taskLine formats a single assignment.
func taskLine(t *domain.Task) string {
	due := t.DueDate
	if due == "" {
		due = noDueDateText
	}

	var b strings.Builder
	b.WriteString(bullet)
	b.WriteString("Spend about ")
	b.WriteString(FormatHours(t.DurationHours))
	b.WriteString(" hour(s) on '")
	b.WriteString(t.Title)
	b.WriteString("' (")
	b.WriteString(t.DisplaySubject())
	b.WriteString("), due ")
	b.WriteString(due)
	b.WriteString(".")
	if t.Notes != "" {
		b.WriteString(" Notes: ")
		b.WriteString(t.Notes)
	}
	return b.String()
}

// FormatHours renders a duration the way it is shown to users: whole numbers
// keep one decimal place (1.0, 2.0) and fractions use the shortest exact form
// (1.5, 0.25). Unusable durations render as the default.
func FormatHours(h float64) string {
	h = domain.NormalizeDurationHours(h)
	if h == math.Trunc(h) && h < 1e15 {
		return strconv.FormatFloat(h, 'f', 1, 64)
	}
	return strconv.FormatFloat(h, 'f', -1, 64)
}
