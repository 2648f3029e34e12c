package api

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/phrazzld/studyplan/internal/api/shared"
	"github.com/phrazzld/studyplan/internal/platform/logger"
	"github.com/phrazzld/studyplan/internal/service"
)

// PlanHandler handles study plan requests.
type PlanHandler struct {
	planService service.PlanService
	logger      *slog.Logger
}

// NewPlanHandler creates a new PlanHandler.
func NewPlanHandler(planService service.PlanService, logger *slog.Logger) *PlanHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for PlanHandler")
	}

	return &PlanHandler{
		planService: planService,
		logger:      logger.With(slog.String("component", "plan_handler")),
	}
}

// GeneratePlan handles POST /api/plan. The JSON body is optional.
func (h *PlanHandler) GeneratePlan(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req PlanRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil && !errors.Is(err, io.EOF) {
		log.Debug("invalid plan request body", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	p, err := h.planService.GeneratePlan(r.Context(), req.ExtraInfo)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to generate plan")
		return
	}

	log.Debug("plan generated", slog.Int("length", len(p.Text)))
	shared.RespondWithJSON(w, r, http.StatusOK, planToResponse(p))
}
