package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/studyplan/internal/config"
	"github.com/phrazzld/studyplan/internal/domain/plan"
	"github.com/phrazzld/studyplan/internal/service"
	"github.com/phrazzld/studyplan/internal/service/auth"
	"github.com/phrazzld/studyplan/internal/web"
)

// application holds the shared dependencies of the server.
type application struct {
	config *config.Config
	logger *slog.Logger

	taskService service.TaskService
	planService service.PlanService
	jwtService  auth.JWTService
	web         *web.Handler
}

// newApplication wires services and handlers on top of an open backend.
// The JWT service and the browser UI are mutually exclusive: the UI is only
// served when no JWT secret is configured.
func newApplication(cfg *config.Config, logger *slog.Logger, b *backend) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	var err error
	app.taskService, err = service.NewTaskService(service.NewTaskRepositoryAdapter(b.tasks, b.db), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}

	location, err := cfg.Planner.Location()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve planner timezone: %w", err)
	}

	app.planService, err = service.NewPlanService(b.tasks, plan.NewPlanner(), location, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create plan service: %w", err)
	}

	if cfg.Auth.Enabled() {
		app.jwtService, err = auth.NewJWTService(cfg.Auth)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
		}
		logger.Info("API authentication enabled; browser UI disabled")
	} else {
		app.web, err = web.NewHandler(app.taskService, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create web handler: %w", err)
		}
	}

	logger.Info("application initialized successfully")
	return app, nil
}

// Run serves HTTP until ctx is cancelled.
func (app *application) Run(ctx context.Context) error {
	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
