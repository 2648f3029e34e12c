package web

import (
	"net/url"
	"testing"

	"github.com/phrazzld/studyplan/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		form           url.Values
		wantOK         bool
		wantImportance int
		wantDuration   float64
	}{
		{
			name:           "all fields",
			form:           url.Values{"title": {"Essay"}, "importance": {"5"}, "duration_hours": {"2.5"}},
			wantOK:         true,
			wantImportance: 5,
			wantDuration:   2.5,
		},
		{
			name:           "importance omitted",
			form:           url.Values{"title": {"Essay"}},
			wantOK:         true,
			wantImportance: domain.DefaultFormImportance,
			wantDuration:   domain.DefaultDurationHours,
		},
		{
			name:           "importance empty",
			form:           url.Values{"title": {"Essay"}, "importance": {""}},
			wantOK:         true,
			wantImportance: domain.DefaultImportance,
			wantDuration:   domain.DefaultDurationHours,
		},
		{
			name:           "malformed numbers",
			form:           url.Values{"title": {"Essay"}, "importance": {"very"}, "duration_hours": {"-1"}},
			wantOK:         true,
			wantImportance: domain.DefaultImportance,
			wantDuration:   domain.DefaultDurationHours,
		},
		{
			name:           "importance beyond 32 bits",
			form:           url.Values{"title": {"Essay"}, "importance": {"99999999999"}},
			wantOK:         true,
			wantImportance: domain.DefaultImportance,
			wantDuration:   domain.DefaultDurationHours,
		},
		{
			name:   "blank title",
			form:   url.Values{"title": {"   "}, "importance": {"5"}},
			wantOK: false,
		},
		{
			name:   "missing title",
			form:   url.Values{},
			wantOK: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in, ok := FormInput(tc.form)
			assert.Equal(t, tc.wantOK, ok)
			if !tc.wantOK {
				return
			}
			assert.Equal(t, "Essay", in.Title)
			assert.Equal(t, tc.wantImportance, in.Importance)
			assert.Equal(t, tc.wantDuration, in.DurationHours)
		})
	}
}
