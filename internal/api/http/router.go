package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/bookstore-service/internal/api/http/handlers"
	"github.com/spec-kit/bookstore-service/internal/auth"
	"github.com/spec-kit/bookstore-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health        *handlers.HealthHandler
	Auth          *handlers.AuthHandler
	Categories    *handlers.CategoriesHandler
	Partners      *handlers.PartnersHandler
	PartnerGroups *handlers.PartnerGroupsHandler
	Roles         *handlers.RolesHandler
	Users         *handlers.UsersHandler
	Gate          *auth.Middleware
}

// RegisterRoutes wires HTTP routes. Public routes are registered before the
// authentication gate; everything under /api/v1 requires a bearer token.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/authenticate", cfg.Auth.Authenticate)
	authGroup.Get("/confirm-account", cfg.Auth.ConfirmAccount)
	authGroup.Post("/forgot-password", cfg.Auth.ForgotPassword)
	authGroup.Post("/reset-password", cfg.Auth.ResetPassword)

	app.Use(cfg.Gate.Handle)

	api := app.Group("/api/v1", auth.RequireAuthenticated())

	categories := api.Group("/categories")
	categories.Post("", cfg.Categories.Create)
	categories.Get("", cfg.Categories.List)
	categories.Get("/search", cfg.Categories.Search)
	categories.Get("/:id", cfg.Categories.Get)
	categories.Put("/:id", cfg.Categories.Update)
	categories.Delete("/:id", cfg.Categories.Delete)

	groups := api.Group("/partner-groups")
	groups.Post("", cfg.PartnerGroups.Create)
	groups.Get("", cfg.PartnerGroups.List)
	groups.Get("/search", cfg.PartnerGroups.Search)
	groups.Get("/:id", cfg.PartnerGroups.Get)
	groups.Put("/:id", cfg.PartnerGroups.Update)
	groups.Delete("/:id", cfg.PartnerGroups.Delete)

	partners := api.Group("/partners")
	partners.Post("", cfg.Partners.Create)
	partners.Get("", cfg.Partners.List)
	partners.Get("/search", cfg.Partners.Search)
	partners.Get("/:id", cfg.Partners.Get)
	partners.Put("/:id", cfg.Partners.Update)
	partners.Delete("/:id", cfg.Partners.Delete)

	roles := api.Group("/roles", auth.RequireRole(domain.RoleAdmin))
	roles.Post("", cfg.Roles.Create)
	roles.Get("", cfg.Roles.List)
	roles.Get("/:id", cfg.Roles.Get)
	roles.Put("/:id", cfg.Roles.Update)
	roles.Delete("/:id", cfg.Roles.Delete)

	users := api.Group("/users", auth.RequireRole(domain.RoleAdmin))
	users.Post("", cfg.Users.Create)
	users.Get("", cfg.Users.List)
	users.Get("/:id", cfg.Users.Get)
	users.Put("/:id", cfg.Users.Update)
	users.Delete("/:id", cfg.Users.Delete)
}
