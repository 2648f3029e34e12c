package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/studyplan/internal/domain"
	"github.com/phrazzld/studyplan/internal/domain/plan"
	"github.com/phrazzld/studyplan/internal/platform/logger"
)

// TaskLister is the read side of the task store.
type TaskLister interface {
	List(ctx context.Context) ([]*domain.Task, error)
}

// PlanService generates study plans from stored tasks.
type PlanService interface {
	// GeneratePlan distributes every stored task over the seven days starting
	// today. extraInfo is an optional note echoed into the narrative.
	// Returns ErrNoTasks when nothing is stored.
	GeneratePlan(ctx context.Context, extraInfo string) (*plan.Plan, error)
}

// PlanServiceOption configures the plan service.
type PlanServiceOption func(*planServiceImpl)

// WithClock overrides time.Now, which decides what "today" is.
func WithClock(now func() time.Time) PlanServiceOption {
	return func(s *planServiceImpl) {
		if now != nil {
			s.now = now
		}
	}
}

type planServiceImpl struct {
	tasks    TaskLister
	planner  *plan.Planner
	location *time.Location
	now      func() time.Time
	logger   *slog.Logger
}

// NewPlanService creates a PlanService. A nil planner uses plan.NewPlanner()
// and a nil location uses time.Local.
func NewPlanService(
	tasks TaskLister,
	planner *plan.Planner,
	location *time.Location,
	logger *slog.Logger,
	opts ...PlanServiceOption,
) (PlanService, error) {
	if tasks == nil {
		return nil, errors.New("plan service: tasks cannot be nil")
	}
	if planner == nil {
		planner = plan.NewPlanner()
	}
	if location == nil {
		location = time.Local
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &planServiceImpl{
		tasks:    tasks,
		planner:  planner,
		location: location,
		now:      time.Now,
		logger:   logger.With("component", "plan_service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// GeneratePlan implements PlanService.
func (s *planServiceImpl) GeneratePlan(ctx context.Context, extraInfo string) (*plan.Plan, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	tasks, err := s.tasks.List(ctx)
	if err != nil {
		log.Error("failed to load tasks for plan", "error", err)
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}
	if len(tasks) == 0 {
		return nil, ErrNoTasks
	}

	today := s.now().In(s.location)
	p, err := s.planner.Plan(tasks, today, extraInfo)
	if err != nil {
		if errors.Is(err, plan.ErrNoTasks) {
			return nil, ErrNoTasks
		}
		return nil, fmt.Errorf("failed to build plan: %w", err)
	}

	log.Info("plan generated",
		"task_count", len(p.Schedule.Order),
		"start", p.Schedule.Start.Format(time.DateOnly),
		"busy_days", busyDays(p.Schedule))
	return p, nil
}

func busyDays(s *plan.Schedule) int {
	n := 0
	for _, d := range s.Days {
		if len(d.Tasks) > 0 {
			n++
		}
	}
	return n
}
