package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hrms-service/internal/api/http/handlers"
	"github.com/spec-kit/hrms-service/internal/auth"
	"github.com/spec-kit/hrms-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Employees      *handlers.EmployeesHandler
	Attendance     *handlers.AttendanceHandler
	Payroll        *handlers.PayrollHandler
	Tasks          *handlers.TasksHandler
	Holidays       *handlers.HolidaysHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes. Authorization policy is declared
// here per route and nowhere else.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")

	// Public routes.
	api.Post("/login", cfg.Auth.Login)
	api.Post("/employees/register", cfg.Employees.Register)
	api.Post("/request-otp", cfg.Auth.RequestOTP)
	api.Post("/verify-otp", cfg.Auth.VerifyOTP)
	api.Post("/reset-password", cfg.Auth.ResetPassword)

	// Everything below requires a valid bearer token.
	protected := api.Group("", cfg.AuthMiddleware.Handle)

	protected.Post("/auth/refresh-token", cfg.Auth.Refresh)
	protected.Post("/auth/logout", cfg.Auth.Logout)

	protected.Get("/employees", auth.RequireRole(domain.RoleAdmin), cfg.Employees.List)
	protected.Get("/employees/:id", cfg.Employees.Get)
	protected.Put("/employees/:employeeId", auth.RequireSelfOrAdmin("employeeId"), cfg.Employees.Update)
	protected.Delete("/employees/:employeeId", auth.RequireRole(domain.RoleAdmin), cfg.Employees.Delete)

	protected.Post("/mark-attendance", cfg.Attendance.Mark)
	protected.Get("/attendance/:employeeId", auth.RequireSelfOrAdmin("employeeId"), cfg.Attendance.List)

	protected.Post("/payroll", auth.RequireRole(domain.RoleAdmin), cfg.Payroll.Save)
	protected.Get("/payroll/:employeeId", auth.RequireSelfOrAdmin("employeeId"), cfg.Payroll.Get)

	protected.Post("/tasks", auth.RequireRole(domain.RoleAdmin), cfg.Tasks.Assign)
	protected.Get("/tasks/:employeeId", auth.RequireSelfOrAdmin("employeeId"), cfg.Tasks.List)
	protected.Put("/tasks/:id/status", cfg.Tasks.UpdateStatus)

	protected.Get("/holidays", cfg.Holidays.List)
	protected.Post("/holidays", auth.RequireRole(domain.RoleAdmin), cfg.Holidays.Create)
	protected.Delete("/holidays/:id", auth.RequireRole(domain.RoleAdmin), cfg.Holidays.Delete)
}
