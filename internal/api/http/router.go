package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/job-board/internal/api/http/handlers"
	"github.com/spec-kit/job-board/internal/auth"
	"github.com/spec-kit/job-board/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Jobs           *handlers.JobsHandler
	Applications   *handlers.ApplicationsHandler
	SavedJobs      *handlers.SavedJobsHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Get("/profile/:id", cfg.Auth.GetProfile)

	authProtected := authGroup.Group("", cfg.AuthMiddleware.Handle)
	authProtected.Get("/me", cfg.Auth.Me)
	authProtected.Post("/refresh-token", cfg.Auth.Refresh)
	authProtected.Put("/profile/:id", cfg.Auth.UpdateProfile)
	authProtected.Put("/change-password", cfg.Auth.ChangePassword)
	authProtected.Post("/logout", cfg.Auth.Logout)

	jobs := api.Group("/jobs")
	jobs.Get("/", cfg.Jobs.List)
	jobs.Get("/employer/:employerId", cfg.Jobs.ListByEmployer)
	jobs.Get("/:id", cfg.AuthMiddleware.Optional, cfg.Jobs.Get)
	jobs.Post("/", cfg.AuthMiddleware.Handle,
		auth.RequireRole(domain.RoleEmployer, domain.RoleAdmin), cfg.Jobs.Create)
	jobs.Put("/:id", cfg.AuthMiddleware.Handle, cfg.Jobs.Update)
	jobs.Delete("/:id", cfg.AuthMiddleware.Handle, cfg.Jobs.Delete)
	jobs.Patch("/:id/toggle-active", cfg.AuthMiddleware.Handle, cfg.Jobs.ToggleActive)

	applications := api.Group("/applications", cfg.AuthMiddleware.Handle)
	applications.Post("/", auth.RequireCandidate(), cfg.Applications.Submit)
	applications.Get("/job/:jobId", cfg.Applications.ListForJob)
	applications.Get("/user/:userId", cfg.Applications.ListForUser)
	applications.Get("/stats/employer/:employerId", cfg.Applications.StatsForEmployer)
	applications.Get("/:id", cfg.Applications.Get)
	applications.Patch("/:id/status", cfg.Applications.UpdateStatus)
	applications.Delete("/:id", cfg.Applications.Delete)

	savedJobs := api.Group("/saved-jobs", cfg.AuthMiddleware.Handle)
	savedJobs.Post("/", auth.RequireCandidate(), cfg.SavedJobs.Save)
	savedJobs.Get("/user/:userId", cfg.SavedJobs.ListForUser)
	savedJobs.Get("/check/:jobId", cfg.SavedJobs.Check)
	savedJobs.Delete("/:id", cfg.SavedJobs.Remove)
}
