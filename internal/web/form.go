package web

import (
	"net/url"
	"strings"

	"github.com/phrazzld/studyplan/internal/domain"
)

// FormInput converts an add-task form into a TaskInput. The second result is
// false when the trimmed title is empty, in which case nothing should be
// stored.
//
// An importance field left out of the form entirely counts as
// domain.DefaultFormImportance; one that is present but empty or malformed
// counts as domain.DefaultImportance.
func FormInput(form url.Values) (domain.TaskInput, bool) {
	title := strings.TrimSpace(form.Get(fieldTitle))
	if title == "" {
		return domain.TaskInput{}, false
	}

	importance := domain.DefaultFormImportance
	if form.Has(fieldImportance) {
		importance = domain.ParseImportance(form.Get(fieldImportance))
	}

	return domain.TaskInput{
		Title:         title,
		Subject:       form.Get(fieldSubject),
		DueDate:       form.Get(fieldDueDate),
		Importance:    importance,
		DurationHours: domain.ParseDurationHours(form.Get(fieldDurationHours)),
		Notes:         form.Get(fieldNotes),
	}, true
}
