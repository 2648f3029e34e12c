package mocks

import (
	"context"

	"github.com/phrazzld/studyplan/internal/domain/plan"
	"github.com/phrazzld/studyplan/internal/service"
)

// MockPlanService implements service.PlanService for testing
type MockPlanService struct {
	GeneratePlanFn func(ctx context.Context, extraInfo string) (*plan.Plan, error)

	// Default values used when GeneratePlanFn is nil
	Plan *plan.Plan
	Err  error
}

var _ service.PlanService = (*MockPlanService)(nil)

// GeneratePlan implements service.PlanService
func (m *MockPlanService) GeneratePlan(ctx context.Context, extraInfo string) (*plan.Plan, error) {
	if m.GeneratePlanFn != nil {
		return m.GeneratePlanFn(ctx, extraInfo)
	}
	return m.Plan, m.Err
}
