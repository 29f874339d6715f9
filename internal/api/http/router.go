package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/spec-kit/job-portal/internal/api/http/handlers"
	"github.com/spec-kit/job-portal/internal/auth"
	"github.com/spec-kit/job-portal/internal/observability"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health       *handlers.HealthHandler
	Auth         *handlers.AuthHandler
	Jobs         *handlers.JobsHandler
	Applications *handlers.ApplicationsHandler
	Gate         *auth.Gate
	LoginLimiter *auth.LoginLimiter
	Metrics      *observability.Metrics
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/", cfg.Health.Root)
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	if cfg.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(cfg.Metrics.Handler()))
	}

	app.Post("/jwt", cfg.LoginLimiter.Handle, cfg.Auth.IssueToken)
	app.Post("/logout", cfg.Auth.Logout)

	gate := cfg.Gate.Handle

	jobs := app.Group("/jobs")
	jobs.Get("/", cfg.Gate.Optional, cfg.Jobs.ListJobs)
	// Registered before /:id so the literal segment wins.
	jobs.Get("/myposted", gate, cfg.Jobs.ListMyPosted)
	jobs.Get("/:id", cfg.Jobs.GetJob)
	jobs.Post("/", gate, cfg.Jobs.CreateJob)

	app.Get("/job-application", gate, cfg.Applications.ListMine)

	applications := app.Group("/job-applications")
	applications.Get("/jobs/:job_id", cfg.Applications.ListForJob)
	applications.Post("/", gate, cfg.Applications.Apply)
	applications.Patch("/:id", gate, cfg.Applications.UpdateStatus)
}
