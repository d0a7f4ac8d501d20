package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/careerhub/internal/api/http/handlers"
	"github.com/spec-kit/careerhub/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Accounts       *handlers.AccountsHandler
	Companies      *handlers.CompaniesHandler
	Opportunities  *handlers.OpportunitiesHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Accounts.Register)
	authGroup.Post("/login", cfg.Accounts.Login)
	authGroup.Get("/me", cfg.AuthMiddleware.Handle, auth.RequirePrincipal(), cfg.Accounts.Me)

	me := app.Group("/me", cfg.AuthMiddleware.Handle, auth.RequirePrincipal())
	me.Put("/resume", cfg.Accounts.UpdateResume)
	me.Post("/password", cfg.Accounts.ChangePassword)
	me.Delete("/", cfg.Accounts.Unregister)

	companies := app.Group("/companies")
	companies.Get("/:handle", cfg.Companies.Get)
	companies.Get("/:handle/opportunities", cfg.Opportunities.List)

	companiesAuthed := companies.Group("", cfg.AuthMiddleware.Handle, auth.RequirePrincipal())
	companiesAuthed.Post("/", cfg.Companies.Register)
	companiesAuthed.Delete("/:handle", cfg.Companies.Unregister)
	companiesAuthed.Post("/:handle/recruiters", cfg.Companies.AddRecruiter)
	companiesAuthed.Delete("/:handle/recruiters/:username", cfg.Companies.RemoveRecruiter)
	companiesAuthed.Post("/:handle/opportunities", cfg.Opportunities.Create)

	opportunities := app.Group("/opportunities", cfg.AuthMiddleware.Handle, auth.RequirePrincipal())
	opportunities.Put("/:id", cfg.Opportunities.Update)
	opportunities.Delete("/:id", cfg.Opportunities.Delete)
	opportunities.Post("/:id/applications", cfg.Opportunities.Apply)
	opportunities.Get("/:id/applications", cfg.Opportunities.ListApplications)
}
