package plan

import (
	"time"

	"github.com/phrazzld/studyplan/internal/domain"
)

// Plan is a generated study plan.
type Plan struct {
	// Schedule is the structured assignment of tasks to days.
	Schedule *Schedule
	// Text is the rendered narrative, lines joined with "\n".
	Text string
}

// Planner produces plans with a fixed phrase set and randomness source.
// A Planner holds no mutable state of its own; it is as safe for concurrent
// use as its RandomSource.
type Planner struct {
	phrases Phrases
	source  RandomSource
}

// Option configures a Planner.
type Option func(*Planner)

// WithSource overrides the randomness source used to pick phrases.
func WithSource(src RandomSource) Option {
	return func(p *Planner) {
		if src != nil {
			p.source = src
		}
	}
}

// WithPhrases overrides the stock wording.
func WithPhrases(phrases Phrases) Option {
	return func(p *Planner) {
		p.phrases = phrases
	}
}

// NewPlanner creates a Planner using DefaultPhrases and NewDefaultSource
// unless overridden by opts.
func NewPlanner(opts ...Option) *Planner {
	p := &Planner{
		phrases: DefaultPhrases(),
		source:  NewDefaultSource(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Plan distributes tasks over the DaysInPlan days starting on start's
// calendar day and renders the narrative. extraInfo is an optional free-text
// note from the user.
//
// Returns ErrNoTasks when tasks is empty.
func (p *Planner) Plan(tasks []*domain.Task, start time.Time, extraInfo string) (*Plan, error) {
	schedule, err := BuildSchedule(tasks, start)
	if err != nil {
		return nil, err
	}

	return &Plan{
		Schedule: schedule,
		Text:     Render(schedule, extraInfo, p.phrases, p.source),
	}, nil
}

// Generate is shorthand for NewPlanner(WithSource(src)).Plan(...).
func Generate(tasks []*domain.Task, start time.Time, extraInfo string, src RandomSource) (*Plan, error) {
	return NewPlanner(WithSource(src)).Plan(tasks, start, extraInfo)
}
