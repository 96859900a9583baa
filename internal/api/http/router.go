package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-dashboard/internal/api/http/handlers"
	"github.com/spec-kit/helpdesk-dashboard/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Reports        *handlers.ReportsHandler
	Tickets        *handlers.TicketsHandler
	Employees      *handlers.EmployeesHandler
	Auth           *handlers.AuthHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes. Paths mirror the dashboard frontend's
// expectations, including the legacy /employees/:id pair outside /api.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/", cfg.Health.Home)
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")
	api.Get("/dates", cfg.Reports.Dates)
	api.Get("/Product_Name", cfg.Reports.Products)
	api.Get("/companies", cfg.Reports.Companies)
	api.Get("/stats", cfg.Reports.Stats)
	api.Get("/charts", cfg.Reports.Charts)
	api.Get("/monthly-trends", cfg.Reports.MonthlyTrends)

	api.Get("/tickets", cfg.Tickets.ListByCompany)
	api.Get("/get-comments", cfg.Tickets.GetComments)
	api.Put("/comments", cfg.Tickets.AppendComments)

	api.Post("/employees", cfg.Employees.Create)
	api.Get("/getemployees", cfg.Employees.List)
	app.Put("/employees/:id", cfg.Employees.Update)
	app.Delete("/employees/:id", cfg.Employees.Delete)

	api.Post("/auth/login", cfg.Auth.Login)
	api.Get("/protected", cfg.AuthMiddleware.Handle, cfg.Auth.Protected)
}
