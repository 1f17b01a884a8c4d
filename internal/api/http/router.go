package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/employee-service/internal/api/http/handlers"
	"github.com/spec-kit/employee-service/internal/auth"
	"github.com/spec-kit/employee-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Employees      *handlers.EmployeesHandler
	Departments    *handlers.DepartmentsHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes with their role requirements.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health", cfg.Health.Check)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Get("/me", cfg.AuthMiddleware.Handle, cfg.Auth.Me)

	employees := api.Group("/employees", cfg.AuthMiddleware.Handle)
	employees.Get("/stats", cfg.Employees.Stats)
	employees.Get("/", cfg.Employees.List)
	employees.Get("/:id", cfg.Employees.Get)
	employees.Post("/", auth.RequireRole(domain.RoleAdmin, domain.RoleHR), cfg.Employees.Create)
	employees.Put("/:id", auth.RequireRole(domain.RoleAdmin, domain.RoleHR), cfg.Employees.Update)
	employees.Delete("/:id", auth.RequireRole(domain.RoleAdmin), cfg.Employees.Delete)

	departments := api.Group("/departments", cfg.AuthMiddleware.Handle)
	departments.Get("/", cfg.Departments.List)
	departments.Post("/", auth.RequireRole(domain.RoleAdmin, domain.RoleHR), cfg.Departments.Create)

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "API endpoint not found"})
	})
}
